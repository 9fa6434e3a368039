package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// FichaItem é uma linha da ficha técnica (receita) de um produto: quanto de
// um insumo é consumido para fabricar uma unidade.
//
// CustoUnitario é denormalizado na leitura com o custo atual do insumo; ele
// não é gravado na linha, então alterações de custo aparecem no próximo
// recarregamento da ficha.
type FichaItem struct {
	ID            int64           `json:"id_ficha"`
	IDProduto     int64           `json:"id_produto"`
	IDMateria     int64           `json:"id_materia"`
	NomeMateria   string          `json:"nome_materia"`
	UnidadeMedida string          `json:"unidade_medida"`
	QtdConsumo    decimal.Decimal `json:"qtd_consumo"`
	CustoUnitario decimal.Decimal `json:"custo_unitario"`
	CreatedAt     time.Time       `json:"created_at"`
}

// CustoLinha = consumo x custo unitário do insumo.
func (f FichaItem) CustoLinha() decimal.Decimal {
	return f.QtdConsumo.Mul(f.CustoUnitario)
}
