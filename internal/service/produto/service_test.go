package produto

import (
	"context"
	"errors"
	"testing"

	"produto-service/internal/domain"
)

type stubRepo struct {
	findBySKU    *domain.Produto
	findBySKUErr error
	findByID     *domain.Produto
	findByIDErr  error
	saveResult   *domain.Produto
	saveErr      error
	saveCalls    int
	lastSaved    domain.Produto
	listResult   []domain.Produto
	listErr      error
	lastSKU      string
	lastID       int64
}

func (s *stubRepo) Save(_ context.Context, p domain.Produto) (*domain.Produto, error) {
	s.saveCalls++
	s.lastSaved = p
	return s.saveResult, s.saveErr
}

func (s *stubRepo) FindBySKU(_ context.Context, sku string) (*domain.Produto, error) {
	s.lastSKU = sku
	return s.findBySKU, s.findBySKUErr
}

func (s *stubRepo) FindByID(_ context.Context, id int64) (*domain.Produto, error) {
	s.lastID = id
	return s.findByID, s.findByIDErr
}

func (s *stubRepo) ListAll(_ context.Context) ([]domain.Produto, error) {
	return s.listResult, s.listErr
}

func TestRegisterHappyPath(t *testing.T) {
	saved := &domain.Produto{ID: 1, Nome: "Notebook Dell", SKU: "SKU123", Preco: 2500.00}
	repo := &stubRepo{findBySKUErr: domain.ErrNotFound, saveResult: saved}
	svc := New(repo)

	got, err := svc.Register(context.Background(), domain.Produto{Nome: "Notebook Dell", SKU: "SKU123", Preco: 2500.00})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != saved {
		t.Fatalf("unexpected produto: %+v", got)
	}
	if got.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if repo.lastSKU != "SKU123" {
		t.Fatalf("expected sku lookup before save, got %q", repo.lastSKU)
	}
}

func TestRegisterDuplicateSKU(t *testing.T) {
	existing := &domain.Produto{ID: 7, Nome: "Other", SKU: "SKU123", Preco: 10}
	repo := &stubRepo{findBySKU: existing}
	svc := New(repo)

	_, err := svc.Register(context.Background(), domain.Produto{Nome: "Notebook Dell", SKU: "SKU123", Preco: 2500.00})
	if !errors.Is(err, domain.ErrSKUConflict) {
		t.Fatalf("expected ErrSKUConflict, got %v", err)
	}
	if err.Error() != "SKU já cadastrado!" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
	if repo.saveCalls != 0 {
		t.Fatalf("save must not be called on duplicate sku")
	}
}

func TestRegisterDuplicateSKUIgnoresOwnID(t *testing.T) {
	// A collision with a record carrying the same id is still rejected.
	existing := &domain.Produto{ID: 1, Nome: "Same", SKU: "SKU123", Preco: 10}
	repo := &stubRepo{findBySKU: existing}
	svc := New(repo)

	_, err := svc.Register(context.Background(), domain.Produto{ID: 1, Nome: "Same", SKU: "SKU123", Preco: 10})
	if !errors.Is(err, domain.ErrSKUConflict) {
		t.Fatalf("expected ErrSKUConflict, got %v", err)
	}
}

func TestRegisterLookupError(t *testing.T) {
	repo := &stubRepo{findBySKUErr: errors.New("boom")}
	svc := New(repo)

	_, err := svc.Register(context.Background(), domain.Produto{Nome: "X", SKU: "S", Preco: 1})
	if err == nil || err.Error() != "boom" {
		t.Fatalf("expected repo error, got %v", err)
	}
	if repo.saveCalls != 0 {
		t.Fatalf("save must not be called on lookup failure")
	}
}

func TestUpdateOverridesPayloadID(t *testing.T) {
	saved := &domain.Produto{ID: 1, Nome: "Notebook Dell Updated", SKU: "SKU123", Preco: 2600.00}
	repo := &stubRepo{saveResult: saved}
	svc := New(repo)

	got, err := svc.Update(context.Background(), 1, domain.Produto{ID: 99, Nome: "Notebook Dell Updated", SKU: "SKU123", Preco: 2600.00})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != saved {
		t.Fatalf("unexpected produto: %+v", got)
	}
	if repo.lastSaved.ID != 1 {
		t.Fatalf("expected id argument to override payload id, saved with %d", repo.lastSaved.ID)
	}
	if repo.lastSKU != "" {
		t.Fatalf("update must not perform a sku lookup")
	}
}

func TestUpdateRepoError(t *testing.T) {
	repo := &stubRepo{saveErr: errors.New("save failed")}
	svc := New(repo)

	_, err := svc.Update(context.Background(), 1, domain.Produto{Nome: "X", SKU: "S", Preco: 1})
	if err == nil || err.Error() != "save failed" {
		t.Fatalf("expected repo error, got %v", err)
	}
}

func TestFindBySKUPassesThrough(t *testing.T) {
	expected := &domain.Produto{ID: 3, Nome: "Teclado", SKU: "SKU-KB", Preco: 150}
	repo := &stubRepo{findBySKU: expected}
	svc := New(repo)

	got, err := svc.FindBySKU(context.Background(), "SKU-KB")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != expected {
		t.Fatalf("unexpected produto: %+v", got)
	}
}

func TestFindBySKUAbsent(t *testing.T) {
	repo := &stubRepo{findBySKUErr: domain.ErrNotFound}
	svc := New(repo)

	_, err := svc.FindBySKU(context.Background(), "SKU_NAO_EXISTE")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound untransformed, got %v", err)
	}
}

func TestFindByIDPassesThrough(t *testing.T) {
	expected := &domain.Produto{ID: 3, Nome: "Teclado", SKU: "SKU-KB", Preco: 150}
	repo := &stubRepo{findByID: expected}
	svc := New(repo)

	got, err := svc.FindByID(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != expected || repo.lastID != 3 {
		t.Fatalf("unexpected produto: %+v", got)
	}
}

func TestListAll(t *testing.T) {
	repo := &stubRepo{listResult: []domain.Produto{{ID: 1}, {ID: 2}}}
	svc := New(repo)

	got, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 produtos, got %d", len(got))
	}
}

func TestListAllEmpty(t *testing.T) {
	svc := New(&stubRepo{})

	got, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty list, got %d", len(got))
	}
}
