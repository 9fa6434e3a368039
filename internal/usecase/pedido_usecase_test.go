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

func TestPedidoUseCase_Criar(t *testing.T) {
	t.Run("cliente obrigatorio", func(t *testing.T) {
		uc := NewPedidoUseCase(nil, nil)
		_, err := uc.Criar(context.Background(), entities.Pedido{
			Itens: []entities.PedidoItem{{IDProduto: 1, Quantidade: 1}},
		})
		if !errors.Is(err, ErrClienteObrigatorio) {
			t.Fatalf("expected ErrClienteObrigatorio, got %v", err)
		}
	})

	t.Run("pedido sem itens", func(t *testing.T) {
		uc := NewPedidoUseCase(nil, nil)
		_, err := uc.Criar(context.Background(), entities.Pedido{NomeCliente: "Maria"})
		if !errors.Is(err, ErrPedidoSemItensForm) {
			t.Fatalf("expected ErrPedidoSemItensForm, got %v", err)
		}
	})

	t.Run("item sem produto ou quantidade", func(t *testing.T) {
		uc := NewPedidoUseCase(nil, nil)
		_, err := uc.Criar(context.Background(), entities.Pedido{
			NomeCliente: "Maria",
			Itens:       []entities.PedidoItem{{IDProduto: 1, Quantidade: 0}},
		})
		if !errors.Is(err, ErrItemInvalido) {
			t.Fatalf("expected ErrItemInvalido, got %v", err)
		}
	})

	t.Run("denormaliza produto e recomputa o total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		produtoRepo := mock_interfaces.NewMockIProdutoRepository(ctrl)
		uc := NewPedidoUseCase(repo, produtoRepo)

		produtoRepo.EXPECT().GetByID(gomock.Any(), int64(10)).Return(entities.Produto{
			ID: 10, SKU: "CAN-01", Nome: "Caneca", PrecoVenda: decimal.NewFromInt(25),
		}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Pedido{})).DoAndReturn(
			func(_ context.Context, p entities.Pedido) (entities.Pedido, error) {
				if p.Status != entities.StatusEntrada {
					t.Fatalf("status default deveria ser ENTRADA, got %s", p.Status)
				}
				if p.NumPedidoPlataforma != "BALCÃO" {
					t.Fatalf("numero default deveria ser BALCÃO, got %q", p.NumPedidoPlataforma)
				}
				if p.DataPedido.IsZero() {
					t.Fatalf("data do pedido deveria ser preenchida")
				}
				if p.Itens[0].SKUProduto != "CAN-01" || p.Itens[0].NomeProduto != "Caneca" {
					t.Fatalf("item deveria ser denormalizado: %+v", p.Itens[0])
				}
				if !p.ValorTotal.Equal(decimal.NewFromInt(50)) {
					t.Fatalf("expected total 50, got %s", p.ValorTotal)
				}
				p.ID = 1
				return p, nil
			},
		)

		pedido, err := uc.Criar(context.Background(), entities.Pedido{
			NomeCliente: "Maria",
			// Total informado pelo cliente e ignorado; o servidor recalcula.
			ValorTotal: decimal.NewFromInt(9999),
			Itens:      []entities.PedidoItem{{IDProduto: 10, Quantidade: 2, ValorUnitario: decimal.NewFromInt(25)}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if pedido.ID != 1 {
			t.Fatalf("unexpected pedido: %+v", pedido)
		}
	})

	t.Run("produto inexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		produtoRepo := mock_interfaces.NewMockIProdutoRepository(ctrl)
		uc := NewPedidoUseCase(repo, produtoRepo)

		produtoRepo.EXPECT().GetByID(gomock.Any(), int64(10)).Return(entities.Produto{}, nil)

		_, err := uc.Criar(context.Background(), entities.Pedido{
			NomeCliente: "Maria",
			Itens:       []entities.PedidoItem{{IDProduto: 10, Quantidade: 1}},
		})
		if !errors.Is(err, ErrProdutoNotFound) {
			t.Fatalf("expected ErrProdutoNotFound, got %v", err)
		}
	})
}

func TestPedidoUseCase_Buscar(t *testing.T) {
	t.Run("pedido nao encontrado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		uc := NewPedidoUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), int64(9)).Return(entities.Pedido{}, nil)

		if _, err := uc.Buscar(context.Background(), 9); !errors.Is(err, ErrPedidoNotFound) {
			t.Fatalf("expected ErrPedidoNotFound, got %v", err)
		}
	})
}

func TestPedidoUseCase_Atualizar(t *testing.T) {
	t.Run("preserva status nota fiscal e data originais", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		produtoRepo := mock_interfaces.NewMockIProdutoRepository(ctrl)
		uc := NewPedidoUseCase(repo, produtoRepo)

		dataOriginal := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
		repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.Pedido{
			ID: 1, NomeCliente: "Maria", Status: entities.StatusProducao,
			NumNotaFiscal: "NF-77", DataPedido: dataOriginal,
		}, nil)
		produtoRepo.EXPECT().GetByID(gomock.Any(), int64(10)).Return(entities.Produto{
			ID: 10, SKU: "CAN-01", Nome: "Caneca", PrecoVenda: decimal.NewFromInt(25),
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Pedido{})).DoAndReturn(
			func(_ context.Context, p entities.Pedido) (entities.Pedido, error) {
				if p.Status != entities.StatusProducao || p.NumNotaFiscal != "NF-77" {
					t.Fatalf("status e NF nao sao editaveis pelo formulario: %+v", p)
				}
				if !p.DataPedido.Equal(dataOriginal) {
					t.Fatalf("data original deveria ser preservada: %v", p.DataPedido)
				}
				return p, nil
			},
		)

		_, err := uc.Atualizar(context.Background(), entities.Pedido{
			ID:          1,
			NomeCliente: "Maria Souza",
			Status:      entities.StatusEntrada,
			Itens:       []entities.PedidoItem{{IDProduto: 10, Quantidade: 1}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPedidoUseCase_RegistrarNotaFiscal(t *testing.T) {
	t.Run("grava o numero aparado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		uc := NewPedidoUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.Pedido{ID: 1}, nil)
		repo.EXPECT().UpdateNotaFiscal(gomock.Any(), int64(1), "NF-123").Return(nil)

		if err := uc.RegistrarNotaFiscal(context.Background(), 1, " NF-123 "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("numero vazio limpa a nota", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		uc := NewPedidoUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.Pedido{ID: 1}, nil)
		repo.EXPECT().UpdateNotaFiscal(gomock.Any(), int64(1), "").Return(nil)

		if err := uc.RegistrarNotaFiscal(context.Background(), 1, "  "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("pedido nao encontrado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		uc := NewPedidoUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), int64(9)).Return(entities.Pedido{}, nil)

		err := uc.RegistrarNotaFiscal(context.Background(), 9, "NF-1")
		if !errors.Is(err, ErrPedidoNotFound) {
			t.Fatalf("expected ErrPedidoNotFound, got %v", err)
		}
	})
}
