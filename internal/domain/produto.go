package domain

// Produto is the product record managed by the service. ID is assigned by the
// store on first save; zero means not yet persisted.
type Produto struct {
	ID    int64   `json:"id"`
	Nome  string  `json:"nome"`
	SKU   string  `json:"sku"`
	Preco float64 `json:"preco"`
}
