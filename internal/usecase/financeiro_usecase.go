package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Luke2905/sistema-avivar/internal/domain/entities"
	"github.com/Luke2905/sistema-avivar/internal/usecase/interfaces"
)

var (
	ErrDespesaNotFound = errors.New("despesa nao encontrada")
	ErrDespesaInvalida = errors.New("despesa invalida")
)

// ResumoFinanceiro agrega os indicadores do painel financeiro.
type ResumoFinanceiro struct {
	Faturamento   decimal.Decimal `json:"faturamento"`
	AReceber      decimal.Decimal `json:"a_receber"`
	DespesasPagas decimal.Decimal `json:"despesas_pagas"`
	ContasAPagar  decimal.Decimal `json:"contas_a_pagar"`
	LucroEstimado decimal.Decimal `json:"lucro_estimado"`
}

// Lancamento é uma linha do extrato unificado (despesas manuais + compras de
// insumo).
type Lancamento struct {
	ID         int64                     `json:"id"`
	Descricao  string                    `json:"descricao"`
	Valor      decimal.Decimal           `json:"valor"`
	Categoria  string                    `json:"categoria,omitempty"`
	Data       time.Time                 `json:"data"`
	Pago       bool                      `json:"pago"`
	TipoOrigem entities.OrigemLancamento `json:"tipo_origem"`
}

type IFinanceiroUseCase interface {
	Resumo(ctx context.Context) (ResumoFinanceiro, error)
	Extrato(ctx context.Context) ([]Lancamento, error)
	CriarDespesa(ctx context.Context, d entities.Despesa) (entities.Despesa, error)
	AtualizarDespesa(ctx context.Context, d entities.Despesa) (entities.Despesa, error)
	MarcarPago(ctx context.Context, id int64, pago bool) (entities.Despesa, error)
	ExcluirDespesa(ctx context.Context, id int64) error
}

type FinanceiroUseCase struct {
	pedidoRepo  interfaces.IPedidoRepository
	despesaRepo interfaces.IDespesaRepository
	compraRepo  interfaces.ICompraRepository
}

var _ IFinanceiroUseCase = (*FinanceiroUseCase)(nil)

func NewFinanceiroUseCase(pedidoRepo interfaces.IPedidoRepository, despesaRepo interfaces.IDespesaRepository, compraRepo interfaces.ICompraRepository) *FinanceiroUseCase {
	return &FinanceiroUseCase{pedidoRepo: pedidoRepo, despesaRepo: despesaRepo, compraRepo: compraRepo}
}

// Resumo calcula os KPIs do painel:
//
//	faturamento     soma dos pedidos não cancelados
//	a_receber       pedidos ainda não enviados nem cancelados
//	despesas_pagas  despesas quitadas mais compras de insumo
//	contas_a_pagar  despesas em aberto
//	lucro_estimado  faturamento menos despesas pagas
func (u *FinanceiroUseCase) Resumo(ctx context.Context) (ResumoFinanceiro, error) {
	pedidos, err := u.pedidoRepo.List(ctx)
	if err != nil {
		return ResumoFinanceiro{}, err
	}
	despesas, err := u.despesaRepo.List(ctx)
	if err != nil {
		return ResumoFinanceiro{}, err
	}
	compras, err := u.compraRepo.List(ctx)
	if err != nil {
		return ResumoFinanceiro{}, err
	}

	var resumo ResumoFinanceiro
	for _, p := range pedidos {
		if p.Status == entities.StatusCancelado {
			continue
		}
		resumo.Faturamento = resumo.Faturamento.Add(p.ValorTotal)
		if p.Status != entities.StatusEnviado {
			resumo.AReceber = resumo.AReceber.Add(p.ValorTotal)
		}
	}
	for _, d := range despesas {
		if d.Pago {
			resumo.DespesasPagas = resumo.DespesasPagas.Add(d.Valor)
		} else {
			resumo.ContasAPagar = resumo.ContasAPagar.Add(d.Valor)
		}
	}
	for _, c := range compras {
		resumo.DespesasPagas = resumo.DespesasPagas.Add(c.CustoTotal)
	}
	resumo.LucroEstimado = resumo.Faturamento.Sub(resumo.DespesasPagas)
	return resumo, nil
}

// Extrato devolve despesas e compras em uma lista única, mais recente
// primeiro.
func (u *FinanceiroUseCase) Extrato(ctx context.Context) ([]Lancamento, error) {
	despesas, err := u.despesaRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	compras, err := u.compraRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	extrato := make([]Lancamento, 0, len(despesas)+len(compras))
	for _, d := range despesas {
		extrato = append(extrato, Lancamento{
			ID:         d.ID,
			Descricao:  d.Descricao,
			Valor:      d.Valor,
			Categoria:  d.Categoria,
			Data:       d.DataVencimento,
			Pago:       d.Pago,
			TipoOrigem: entities.OrigemDespesa,
		})
	}
	for _, c := range compras {
		extrato = append(extrato, Lancamento{
			ID:         c.ID,
			Descricao:  "Compra de insumo: " + c.NomeMateria,
			Valor:      c.CustoTotal,
			Categoria:  "Insumos",
			Data:       c.DataCompra,
			Pago:       true,
			TipoOrigem: entities.OrigemCompra,
		})
	}
	sort.SliceStable(extrato, func(i, j int) bool {
		return extrato[i].Data.After(extrato[j].Data)
	})
	return extrato, nil
}

func (u *FinanceiroUseCase) CriarDespesa(ctx context.Context, d entities.Despesa) (entities.Despesa, error) {
	if err := validarDespesa(d); err != nil {
		return entities.Despesa{}, err
	}
	if d.DataVencimento.IsZero() {
		d.DataVencimento = time.Now().UTC()
	}
	return u.despesaRepo.Create(ctx, d)
}

func (u *FinanceiroUseCase) AtualizarDespesa(ctx context.Context, d entities.Despesa) (entities.Despesa, error) {
	if err := validarDespesa(d); err != nil {
		return entities.Despesa{}, err
	}
	atual, err := u.despesaRepo.GetByID(ctx, d.ID)
	if err != nil {
		return entities.Despesa{}, err
	}
	if atual.ID == 0 {
		return entities.Despesa{}, ErrDespesaNotFound
	}
	return u.despesaRepo.Update(ctx, d)
}

// MarcarPago alterna a flag de quitação sem exigir o payload completo da
// despesa.
func (u *FinanceiroUseCase) MarcarPago(ctx context.Context, id int64, pago bool) (entities.Despesa, error) {
	atual, err := u.despesaRepo.GetByID(ctx, id)
	if err != nil {
		return entities.Despesa{}, err
	}
	if atual.ID == 0 {
		return entities.Despesa{}, ErrDespesaNotFound
	}
	atual.Pago = pago
	return u.despesaRepo.Update(ctx, atual)
}

func (u *FinanceiroUseCase) ExcluirDespesa(ctx context.Context, id int64) error {
	atual, err := u.despesaRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if atual.ID == 0 {
		return ErrDespesaNotFound
	}
	return u.despesaRepo.Delete(ctx, id)
}

func validarDespesa(d entities.Despesa) error {
	if d.Descricao == "" || !d.Valor.IsPositive() {
		return ErrDespesaInvalida
	}
	return nil
}
