package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Produto é um item vendável; sua ficha técnica vive em FichaItem.
type Produto struct {
	ID         int64           `json:"id_produto"`
	SKU        string          `json:"sku_produto"`
	Nome       string          `json:"nome_produto"`
	PrecoVenda decimal.Decimal `json:"preco_venda"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
