package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Despesa é um lançamento financeiro manual (conta de luz, aluguel...).
// Compras de insumos entram no extrato junto com as despesas, marcadas pela
// origem.

type OrigemLancamento string

const (
	OrigemDespesa OrigemLancamento = "DESPESA"
	OrigemCompra  OrigemLancamento = "COMPRA"
)

type Despesa struct {
	ID             int64           `json:"id_despesa"`
	Descricao      string          `json:"descricao"`
	Valor          decimal.Decimal `json:"valor"`
	Categoria      string          `json:"categoria"`
	DataVencimento time.Time       `json:"data_vencimento"`
	Pago           bool            `json:"pago"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
