package request

import "github.com/shopspring/decimal"

// FichaAddRequest adiciona uma linha de insumo à ficha técnica de um produto.
type FichaAddRequest struct {
	IDProduto  int64           `json:"id_produto" binding:"required"`
	IDMateria  int64           `json:"id_materia" binding:"required"`
	QtdConsumo decimal.Decimal `json:"qtd_consumo" binding:"required"`
}
