package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Luke2905/sistema-avivar/internal/domain/entities"
	mock_interfaces "github.com/Luke2905/sistema-avivar/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestBaixaEstoqueUseCase_BaixarEstoque(t *testing.T) {
	t.Run("pedido nao encontrado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pedidoRepo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		uc := NewBaixaEstoqueUseCase(pedidoRepo, nil, nil)

		pedidoRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.Pedido{}, nil)

		_, err := uc.BaixarEstoque(context.Background(), 1)
		if !errors.Is(err, ErrPedidoNotFound) {
			t.Fatalf("expected ErrPedidoNotFound, got %v", err)
		}
	})

	t.Run("pedido sem itens", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pedidoRepo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		uc := NewBaixaEstoqueUseCase(pedidoRepo, nil, nil)

		pedidoRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.Pedido{ID: 1}, nil)

		_, err := uc.BaixarEstoque(context.Background(), 1)
		if !errors.Is(err, ErrPedidoSemItens) {
			t.Fatalf("expected ErrPedidoSemItens, got %v", err)
		}
	})

	t.Run("produto sem ficha bloqueia com o nome do produto", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pedidoRepo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		fichaRepo := mock_interfaces.NewMockIFichaRepository(ctrl)
		uc := NewBaixaEstoqueUseCase(pedidoRepo, fichaRepo, nil)

		pedidoRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.Pedido{
			ID: 1,
			Itens: []entities.PedidoItem{
				{IDProduto: 10, NomeProduto: "Caneca Branca", Quantidade: 2},
			},
		}, nil)
		fichaRepo.EXPECT().ListByProduto(gomock.Any(), int64(10)).Return(nil, nil)

		_, err := uc.BaixarEstoque(context.Background(), 1)
		if !errors.Is(err, ErrFichaVazia) {
			t.Fatalf("expected ErrFichaVazia, got %v", err)
		}
		if !strings.Contains(err.Error(), "Caneca Branca") {
			t.Fatalf("expected product name in error, got %v", err)
		}
	})

	t.Run("consolida consumo entre itens e fichas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pedidoRepo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		fichaRepo := mock_interfaces.NewMockIFichaRepository(ctrl)
		estoqueRepo := mock_interfaces.NewMockIEstoqueRepository(ctrl)
		uc := NewBaixaEstoqueUseCase(pedidoRepo, fichaRepo, estoqueRepo)

		pedidoRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.Pedido{
			ID: 1,
			Itens: []entities.PedidoItem{
				{IDProduto: 10, NomeProduto: "Caneca", Quantidade: 2},
				{IDProduto: 11, NomeProduto: "Camiseta", Quantidade: 1},
			},
		}, nil)
		// Caneca consome 1 un de tinta; Camiseta consome 0.5 de tinta e 1 de malha.
		fichaRepo.EXPECT().ListByProduto(gomock.Any(), int64(10)).Return([]entities.FichaItem{
			{IDMateria: 100, NomeMateria: "Tinta", QtdConsumo: decimal.NewFromInt(1)},
		}, nil)
		fichaRepo.EXPECT().ListByProduto(gomock.Any(), int64(11)).Return([]entities.FichaItem{
			{IDMateria: 100, NomeMateria: "Tinta", QtdConsumo: decimal.RequireFromString("0.5")},
			{IDMateria: 200, NomeMateria: "Malha", QtdConsumo: decimal.NewFromInt(1)},
		}, nil)

		estoqueRepo.EXPECT().DebitarSaldos(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, debitos []entities.DebitoInsumo) error {
				if len(debitos) != 2 {
					t.Fatalf("expected 2 debitos, got %d", len(debitos))
				}
				if debitos[0].IDMateria != 100 || !debitos[0].Quantidade.Equal(decimal.RequireFromString("2.5")) {
					t.Fatalf("unexpected debito de tinta: %+v", debitos[0])
				}
				if debitos[1].IDMateria != 200 || !debitos[1].Quantidade.Equal(decimal.NewFromInt(1)) {
					t.Fatalf("unexpected debito de malha: %+v", debitos[1])
				}
				return nil
			},
		)

		baixados, err := uc.BaixarEstoque(context.Background(), 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if baixados != 2 {
			t.Fatalf("expected 2 insumos baixados, got %d", baixados)
		}
	})

	t.Run("saldo insuficiente propaga da transacao", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pedidoRepo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		fichaRepo := mock_interfaces.NewMockIFichaRepository(ctrl)
		estoqueRepo := mock_interfaces.NewMockIEstoqueRepository(ctrl)
		uc := NewBaixaEstoqueUseCase(pedidoRepo, fichaRepo, estoqueRepo)

		pedidoRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.Pedido{
			ID:    1,
			Itens: []entities.PedidoItem{{IDProduto: 10, NomeProduto: "Caneca", Quantidade: 5}},
		}, nil)
		fichaRepo.EXPECT().ListByProduto(gomock.Any(), int64(10)).Return([]entities.FichaItem{
			{IDMateria: 100, NomeMateria: "Tinta", QtdConsumo: decimal.NewFromInt(1)},
		}, nil)
		estoqueRepo.EXPECT().DebitarSaldos(gomock.Any(), gomock.Any()).
			Return(errors.New("saldo insuficiente para Tinta"))

		_, err := uc.BaixarEstoque(context.Background(), 1)
		if err == nil || !strings.Contains(err.Error(), "Tinta") {
			t.Fatalf("expected transact error, got %v", err)
		}
	})
}
