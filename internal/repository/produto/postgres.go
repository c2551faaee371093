package produto

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"produto-service/internal/domain"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

// Save inserts when p.ID is zero and upserts by id otherwise. A SKU collision
// surfaces as the unique-index violation from Postgres; that index is the only
// guard against concurrent registrations of the same SKU.
func (r *postgresRepo) Save(ctx context.Context, p domain.Produto) (*domain.Produto, error) {
	if p.ID == 0 {
		const q = `
INSERT INTO produtos (nome, sku, preco)
VALUES ($1, $2, $3)
RETURNING id
`
		res := p
		if err := r.pool.QueryRow(ctx, q, p.Nome, p.SKU, p.Preco).Scan(&res.ID); err != nil {
			r.logger.Printf("produto repo: insert sku=%s error=%v", p.SKU, err)
			return nil, err
		}
		r.logger.Printf("produto repo: inserted sku=%s id=%d", res.SKU, res.ID)
		return &res, nil
	}

	const q = `
INSERT INTO produtos (id, nome, sku, preco)
VALUES ($1, $2, $3, $4)
ON CONFLICT (id) DO UPDATE SET
    nome = EXCLUDED.nome,
    sku = EXCLUDED.sku,
    preco = EXCLUDED.preco
RETURNING id
`
	res := p
	if err := r.pool.QueryRow(ctx, q, p.ID, p.Nome, p.SKU, p.Preco).Scan(&res.ID); err != nil {
		r.logger.Printf("produto repo: save id=%d sku=%s error=%v", p.ID, p.SKU, err)
		return nil, err
	}
	r.logger.Printf("produto repo: saved id=%d sku=%s", res.ID, res.SKU)
	return &res, nil
}

func (r *postgresRepo) FindBySKU(ctx context.Context, sku string) (*domain.Produto, error) {
	const q = `
SELECT id, nome, sku, preco
FROM produtos
WHERE sku = $1
`
	var p domain.Produto
	err := r.pool.QueryRow(ctx, q, sku).Scan(&p.ID, &p.Nome, &p.SKU, &p.Preco)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("produto repo: find sku=%s error=%v", sku, err)
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) FindByID(ctx context.Context, id int64) (*domain.Produto, error) {
	const q = `
SELECT id, nome, sku, preco
FROM produtos
WHERE id = $1
`
	var p domain.Produto
	err := r.pool.QueryRow(ctx, q, id).Scan(&p.ID, &p.Nome, &p.SKU, &p.Preco)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("produto repo: find id=%d error=%v", id, err)
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) ListAll(ctx context.Context) ([]domain.Produto, error) {
	const q = `
SELECT id, nome, sku, preco
FROM produtos
ORDER BY id
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("produto repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Produto
	for rows.Next() {
		var p domain.Produto
		if err := rows.Scan(&p.ID, &p.Nome, &p.SKU, &p.Preco); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("produto repo: list rows error=%v", err)
		return nil, err
	}
	r.logger.Printf("produto repo: list count=%d", len(result))
	return result, nil
}
