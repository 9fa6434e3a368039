package request

import (
	"github.com/Luke2905/sistema-avivar/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type ProdutoRequest struct {
	SKU        string          `json:"sku_produto" binding:"required"`
	Nome       string          `json:"nome_produto" binding:"required"`
	PrecoVenda decimal.Decimal `json:"preco_venda"`
}

func (r ProdutoRequest) ToEntity() entities.Produto {
	return entities.Produto{
		SKU:        r.SKU,
		Nome:       r.Nome,
		PrecoVenda: r.PrecoVenda,
	}
}
