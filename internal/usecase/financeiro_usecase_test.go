package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Luke2905/sistema-avivar/internal/domain/entities"
	mock_interfaces "github.com/Luke2905/sistema-avivar/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestFinanceiroUseCase_Resumo(t *testing.T) {
	t.Run("kpis do painel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pedidoRepo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		despesaRepo := mock_interfaces.NewMockIDespesaRepository(ctrl)
		compraRepo := mock_interfaces.NewMockICompraRepository(ctrl)
		uc := NewFinanceiroUseCase(pedidoRepo, despesaRepo, compraRepo)

		pedidoRepo.EXPECT().List(gomock.Any()).Return([]entities.Pedido{
			{ID: 1, Status: entities.StatusEnviado, ValorTotal: decimal.NewFromInt(100)},
			{ID: 2, Status: entities.StatusProducao, ValorTotal: decimal.NewFromInt(40)},
			{ID: 3, Status: entities.StatusCancelado, ValorTotal: decimal.NewFromInt(999)},
		}, nil)
		despesaRepo.EXPECT().List(gomock.Any()).Return([]entities.Despesa{
			{ID: 1, Valor: decimal.NewFromInt(30), Pago: true},
			{ID: 2, Valor: decimal.NewFromInt(25), Pago: false},
		}, nil)
		compraRepo.EXPECT().List(gomock.Any()).Return([]entities.Compra{
			{ID: 1, CustoTotal: decimal.NewFromInt(10)},
		}, nil)

		resumo, err := uc.Resumo(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !resumo.Faturamento.Equal(decimal.NewFromInt(140)) {
			t.Fatalf("expected faturamento 140, got %s", resumo.Faturamento)
		}
		if !resumo.AReceber.Equal(decimal.NewFromInt(40)) {
			t.Fatalf("expected a receber 40, got %s", resumo.AReceber)
		}
		if !resumo.DespesasPagas.Equal(decimal.NewFromInt(40)) {
			t.Fatalf("expected despesas pagas 40, got %s", resumo.DespesasPagas)
		}
		if !resumo.ContasAPagar.Equal(decimal.NewFromInt(25)) {
			t.Fatalf("expected contas a pagar 25, got %s", resumo.ContasAPagar)
		}
		if !resumo.LucroEstimado.Equal(decimal.NewFromInt(100)) {
			t.Fatalf("expected lucro 100, got %s", resumo.LucroEstimado)
		}
	})

	t.Run("erro do repositorio propaga", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pedidoRepo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		uc := NewFinanceiroUseCase(pedidoRepo, nil, nil)

		pedidoRepo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		if _, err := uc.Resumo(context.Background()); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestFinanceiroUseCase_Extrato(t *testing.T) {
	t.Run("mistura despesas e compras mais recente primeiro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pedidoRepo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		despesaRepo := mock_interfaces.NewMockIDespesaRepository(ctrl)
		compraRepo := mock_interfaces.NewMockICompraRepository(ctrl)
		uc := NewFinanceiroUseCase(pedidoRepo, despesaRepo, compraRepo)

		ontem := time.Now().UTC().AddDate(0, 0, -1)
		semanaPassada := time.Now().UTC().AddDate(0, 0, -7)
		despesaRepo.EXPECT().List(gomock.Any()).Return([]entities.Despesa{
			{ID: 1, Descricao: "Aluguel", Valor: decimal.NewFromInt(800), DataVencimento: semanaPassada},
		}, nil)
		compraRepo.EXPECT().List(gomock.Any()).Return([]entities.Compra{
			{ID: 2, NomeMateria: "Tinta", CustoTotal: decimal.NewFromInt(50), DataCompra: ontem},
		}, nil)

		extrato, err := uc.Extrato(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(extrato) != 2 {
			t.Fatalf("expected 2 lancamentos, got %d", len(extrato))
		}
		if extrato[0].TipoOrigem != entities.OrigemCompra || extrato[1].TipoOrigem != entities.OrigemDespesa {
			t.Fatalf("extrato fora de ordem: %+v", extrato)
		}
		if extrato[0].Descricao != "Compra de insumo: Tinta" {
			t.Fatalf("unexpected descricao: %q", extrato[0].Descricao)
		}
		if !extrato[0].Pago {
			t.Fatalf("compra entra como paga")
		}
	})
}

func TestFinanceiroUseCase_Despesas(t *testing.T) {
	t.Run("despesa sem descricao", func(t *testing.T) {
		uc := NewFinanceiroUseCase(nil, nil, nil)
		_, err := uc.CriarDespesa(context.Background(), entities.Despesa{Valor: decimal.NewFromInt(10)})
		if !errors.Is(err, ErrDespesaInvalida) {
			t.Fatalf("expected ErrDespesaInvalida, got %v", err)
		}
	})

	t.Run("despesa sem valor", func(t *testing.T) {
		uc := NewFinanceiroUseCase(nil, nil, nil)
		_, err := uc.CriarDespesa(context.Background(), entities.Despesa{Descricao: "Luz"})
		if !errors.Is(err, ErrDespesaInvalida) {
			t.Fatalf("expected ErrDespesaInvalida, got %v", err)
		}
	})

	t.Run("cria com vencimento default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		despesaRepo := mock_interfaces.NewMockIDespesaRepository(ctrl)
		uc := NewFinanceiroUseCase(nil, despesaRepo, nil)

		despesaRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Despesa{})).DoAndReturn(
			func(_ context.Context, d entities.Despesa) (entities.Despesa, error) {
				if d.DataVencimento.IsZero() {
					t.Fatalf("vencimento deveria ser preenchido")
				}
				d.ID = 9
				return d, nil
			},
		)

		despesa, err := uc.CriarDespesa(context.Background(), entities.Despesa{
			Descricao: "Luz",
			Valor:     decimal.NewFromInt(120),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if despesa.ID != 9 {
			t.Fatalf("unexpected despesa: %+v", despesa)
		}
	})

	t.Run("atualizar despesa inexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		despesaRepo := mock_interfaces.NewMockIDespesaRepository(ctrl)
		uc := NewFinanceiroUseCase(nil, despesaRepo, nil)

		despesaRepo.EXPECT().GetByID(gomock.Any(), int64(9)).Return(entities.Despesa{}, nil)

		_, err := uc.AtualizarDespesa(context.Background(), entities.Despesa{
			ID:        9,
			Descricao: "Luz",
			Valor:     decimal.NewFromInt(120),
		})
		if !errors.Is(err, ErrDespesaNotFound) {
			t.Fatalf("expected ErrDespesaNotFound, got %v", err)
		}
	})

	t.Run("marcar pago preserva os demais campos", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		despesaRepo := mock_interfaces.NewMockIDespesaRepository(ctrl)
		uc := NewFinanceiroUseCase(nil, despesaRepo, nil)

		despesaRepo.EXPECT().GetByID(gomock.Any(), int64(9)).Return(entities.Despesa{
			ID:        9,
			Descricao: "Luz",
			Valor:     decimal.NewFromInt(120),
			Categoria: "Fixas",
			Pago:      false,
		}, nil)
		despesaRepo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Despesa{})).DoAndReturn(
			func(_ context.Context, d entities.Despesa) (entities.Despesa, error) {
				if !d.Pago {
					t.Fatalf("pago deveria ter sido marcado")
				}
				if d.Descricao != "Luz" || !d.Valor.Equal(decimal.NewFromInt(120)) {
					t.Fatalf("campos da despesa nao deveriam mudar: %+v", d)
				}
				return d, nil
			},
		)

		despesa, err := uc.MarcarPago(context.Background(), 9, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !despesa.Pago {
			t.Fatalf("unexpected despesa: %+v", despesa)
		}
	})

	t.Run("desmarcar pago", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		despesaRepo := mock_interfaces.NewMockIDespesaRepository(ctrl)
		uc := NewFinanceiroUseCase(nil, despesaRepo, nil)

		despesaRepo.EXPECT().GetByID(gomock.Any(), int64(9)).Return(entities.Despesa{ID: 9, Descricao: "Luz", Valor: decimal.NewFromInt(120), Pago: true}, nil)
		despesaRepo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Despesa{})).DoAndReturn(
			func(_ context.Context, d entities.Despesa) (entities.Despesa, error) {
				if d.Pago {
					t.Fatalf("pago deveria ter sido desmarcado")
				}
				return d, nil
			},
		)

		despesa, err := uc.MarcarPago(context.Background(), 9, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if despesa.Pago {
			t.Fatalf("unexpected despesa: %+v", despesa)
		}
	})

	t.Run("marcar pago em despesa inexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		despesaRepo := mock_interfaces.NewMockIDespesaRepository(ctrl)
		uc := NewFinanceiroUseCase(nil, despesaRepo, nil)

		despesaRepo.EXPECT().GetByID(gomock.Any(), int64(9)).Return(entities.Despesa{}, nil)

		if _, err := uc.MarcarPago(context.Background(), 9, true); !errors.Is(err, ErrDespesaNotFound) {
			t.Fatalf("expected ErrDespesaNotFound, got %v", err)
		}
	})

	t.Run("excluir despesa inexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		despesaRepo := mock_interfaces.NewMockIDespesaRepository(ctrl)
		uc := NewFinanceiroUseCase(nil, despesaRepo, nil)

		despesaRepo.EXPECT().GetByID(gomock.Any(), int64(9)).Return(entities.Despesa{}, nil)

		if err := uc.ExcluirDespesa(context.Background(), 9); !errors.Is(err, ErrDespesaNotFound) {
			t.Fatalf("expected ErrDespesaNotFound, got %v", err)
		}
	})
}
