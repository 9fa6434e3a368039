package response

import (
	"github.com/Luke2905/sistema-avivar/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type FichaLinhaResponse struct {
	ID            int64           `json:"id_ficha"`
	IDProduto     int64           `json:"id_produto"`
	IDMateria     int64           `json:"id_materia"`
	NomeMateria   string          `json:"nome_materia"`
	UnidadeMedida string          `json:"unidade_medida"`
	QtdConsumo    decimal.Decimal `json:"qtd_consumo"`
	CustoUnitario decimal.Decimal `json:"custo_unitario"`
	CustoLinha    decimal.Decimal `json:"custo_linha"`
}

func FromFichaItem(f entities.FichaItem) FichaLinhaResponse {
	return FichaLinhaResponse{
		ID:            f.ID,
		IDProduto:     f.IDProduto,
		IDMateria:     f.IDMateria,
		NomeMateria:   f.NomeMateria,
		UnidadeMedida: f.UnidadeMedida,
		QtdConsumo:    f.QtdConsumo,
		CustoUnitario: f.CustoUnitario,
		CustoLinha:    f.CustoLinha(),
	}
}

func FromFichaItens(linhas []entities.FichaItem) []FichaLinhaResponse {
	out := make([]FichaLinhaResponse, 0, len(linhas))
	for _, linha := range linhas {
		out = append(out, FromFichaItem(linha))
	}
	return out
}
