package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Luke2905/sistema-avivar/internal/domain/entities"
	"github.com/Luke2905/sistema-avivar/internal/usecase/interfaces"
)

// Previsao é a projeção de demanda de um produto a partir do histórico de
// pedidos.
type Previsao struct {
	IDProduto    int64           `json:"id_produto"`
	SKUProduto   string          `json:"sku_produto"`
	NomeProduto  string          `json:"nome_produto"`
	MediaMensal  decimal.Decimal `json:"media_mensal"`
	UltimoMes    int             `json:"vendas_ultimo_mes"`
	CrescimentoP decimal.Decimal `json:"crescimento_pct"`
	Tendencia    string          `json:"tendencia"` // ALTA, BAIXA ou ESTAVEL
	Sugestao     string          `json:"sugestao"`
}

type IPredicaoUseCase interface {
	Previsoes(ctx context.Context) ([]Previsao, error)
}

// PredicaoUseCase deriva médias mensais de venda por produto e classifica a
// tendência comparando o último mês com a média histórica. Pedidos cancelados
// ficam de fora.
type PredicaoUseCase struct {
	pedidoRepo interfaces.IPedidoRepository
}

var _ IPredicaoUseCase = (*PredicaoUseCase)(nil)

func NewPredicaoUseCase(pedidoRepo interfaces.IPedidoRepository) *PredicaoUseCase {
	return &PredicaoUseCase{pedidoRepo: pedidoRepo}
}

// Margem acima da qual a variação vira tendência (em pontos percentuais).
var limiteTendencia = decimal.NewFromInt(10)

func (u *PredicaoUseCase) Previsoes(ctx context.Context) ([]Previsao, error) {
	pedidos, err := u.pedidoRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	type acumulado struct {
		sku       string
		nome      string
		total     int
		ultimoMes int
		meses     map[string]struct{}
	}

	inicioMes := time.Now().UTC().AddDate(0, -1, 0)
	porProduto := map[int64]*acumulado{}
	for _, p := range pedidos {
		if p.Status == entities.StatusCancelado {
			continue
		}
		for _, item := range p.Itens {
			acc := porProduto[item.IDProduto]
			if acc == nil {
				acc = &acumulado{sku: item.SKUProduto, nome: item.NomeProduto, meses: map[string]struct{}{}}
				porProduto[item.IDProduto] = acc
			}
			acc.total += item.Quantidade
			acc.meses[p.DataPedido.Format("2006-01")] = struct{}{}
			if p.DataPedido.After(inicioMes) {
				acc.ultimoMes += item.Quantidade
			}
		}
	}

	previsoes := make([]Previsao, 0, len(porProduto))
	for id, acc := range porProduto {
		meses := len(acc.meses)
		if meses == 0 {
			continue
		}
		media := decimal.NewFromInt(int64(acc.total)).Div(decimal.NewFromInt(int64(meses)))

		var crescimento decimal.Decimal
		if media.IsPositive() {
			crescimento = decimal.NewFromInt(int64(acc.ultimoMes)).Sub(media).Div(media).Mul(cem)
		}

		tendencia := "ESTAVEL"
		sugestao := "Demanda estável, manter nível de produção atual."
		switch {
		case crescimento.GreaterThan(limiteTendencia):
			tendencia = "ALTA"
			sugestao = "Demanda em alta, considere reforçar o estoque de insumos."
		case crescimento.LessThan(limiteTendencia.Neg()):
			tendencia = "BAIXA"
			sugestao = "Demanda em queda, evite compras grandes de insumo."
		}

		previsoes = append(previsoes, Previsao{
			IDProduto:    id,
			SKUProduto:   acc.sku,
			NomeProduto:  acc.nome,
			MediaMensal:  media.Round(2),
			UltimoMes:    acc.ultimoMes,
			CrescimentoP: crescimento.Round(1),
			Tendencia:    tendencia,
			Sugestao:     sugestao,
		})
	}

	sort.Slice(previsoes, func(i, j int) bool {
		return previsoes[i].IDProduto < previsoes[j].IDProduto
	})
	return previsoes, nil
}
