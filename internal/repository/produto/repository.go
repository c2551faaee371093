package produto

import (
	"context"

	"produto-service/internal/domain"
)

// Repository is the persistence contract for produtos. Save inserts when the
// produto has no id yet and fully replaces the stored record otherwise.
type Repository interface {
	Save(ctx context.Context, p domain.Produto) (*domain.Produto, error)
	FindBySKU(ctx context.Context, sku string) (*domain.Produto, error)
	FindByID(ctx context.Context, id int64) (*domain.Produto, error)
	ListAll(ctx context.Context) ([]domain.Produto, error)
}
