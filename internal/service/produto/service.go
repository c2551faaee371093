package produto

import (
	"context"
	"errors"

	"produto-service/internal/domain"
	produtorepo "produto-service/internal/repository/produto"
)

// Service enforces the single business rule of the registry: a SKU may only
// be registered once. Everything else passes through to the repository.
type Service struct {
	repo produtorepo.Repository
}

func New(repo produtorepo.Repository) *Service {
	return &Service{repo: repo}
}

// Register persists a new produto after checking that no record holds its SKU.
// The check ignores ids entirely: any existing record with the same SKU
// rejects the registration, even one carrying the input's own id.
func (s *Service) Register(ctx context.Context, p domain.Produto) (*domain.Produto, error) {
	_, err := s.repo.FindBySKU(ctx, p.SKU)
	if err == nil {
		return nil, domain.ErrSKUConflict
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	return s.repo.Save(ctx, p)
}

// Update forces the produto's id to the given one and saves unconditionally.
// There is no existence check and no SKU re-check on this path: updating an
// absent id inserts, and a SKU collision is left to the store's unique index.
func (s *Service) Update(ctx context.Context, id int64, p domain.Produto) (*domain.Produto, error) {
	p.ID = id
	return s.repo.Save(ctx, p)
}

func (s *Service) FindBySKU(ctx context.Context, sku string) (*domain.Produto, error) {
	return s.repo.FindBySKU(ctx, sku)
}

func (s *Service) FindByID(ctx context.Context, id int64) (*domain.Produto, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) ListAll(ctx context.Context) ([]domain.Produto, error) {
	return s.repo.ListAll(ctx)
}
