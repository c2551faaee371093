package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"produto-service/internal/domain"
)

// Apply inserts basic seed data for manual testing. It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	produtos := []domain.Produto{
		{Nome: "Notebook Dell", SKU: "SKU-DEMO-NOTEBOOK", Preco: 2500.00},
		{Nome: "Mouse sem fio", SKU: "SKU-DEMO-MOUSE", Preco: 99.90},
		{Nome: "Teclado mecânico", SKU: "SKU-DEMO-TECLADO", Preco: 349.00},
	}

	for _, p := range produtos {
		if err := upsertProduto(ctx, pool, p); err != nil {
			return fmt.Errorf("upsert produto %s: %w", p.SKU, err)
		}
	}

	return nil
}

func upsertProduto(ctx context.Context, pool *pgxpool.Pool, p domain.Produto) error {
	const q = `
INSERT INTO produtos (nome, sku, preco)
VALUES ($1, $2, $3)
ON CONFLICT (sku) DO UPDATE
SET nome = EXCLUDED.nome,
    preco = EXCLUDED.preco
`
	_, err := pool.Exec(ctx, q, p.Nome, p.SKU, p.Preco)
	return err
}
