package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/Luke2905/sistema-avivar/internal/domain/entities"
	mock_interfaces "github.com/Luke2905/sistema-avivar/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestParseCodigoOP(t *testing.T) {
	t.Run("aceita codigo visual e numero cru", func(t *testing.T) {
		for _, codigo := range []string{"OP-15", "op-15", " 15 ", "15"} {
			id, err := parseCodigoOP(codigo)
			if err != nil || id != 15 {
				t.Fatalf("codigo %q: expected 15, got %d err=%v", codigo, id, err)
			}
		}
	})

	t.Run("recusa lixo", func(t *testing.T) {
		for _, codigo := range []string{"", "OP-", "abc", "OP-abc", "0", "-3"} {
			if _, err := parseCodigoOP(codigo); !errors.Is(err, ErrCodigoOPInvalido) {
				t.Fatalf("codigo %q: expected ErrCodigoOPInvalido, got %v", codigo, err)
			}
		}
	})
}

func TestProducaoUseCase_Pendentes(t *testing.T) {
	t.Run("filtra pedidos que ja tem OP", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		producaoRepo := mock_interfaces.NewMockIProducaoRepository(ctrl)
		pedidoRepo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		uc := NewProducaoUseCase(producaoRepo, pedidoRepo)

		pedidoRepo.EXPECT().ListByStatus(gomock.Any(), entities.StatusImprimindo).Return([]entities.Pedido{
			{ID: 1, Itens: []entities.PedidoItem{{NomeProduto: "Caneca", Quantidade: 2}}},
			{ID: 2},
		}, nil)
		producaoRepo.EXPECT().GetByPedido(gomock.Any(), int64(1)).Return(entities.ProducaoOrdem{}, nil)
		producaoRepo.EXPECT().GetByPedido(gomock.Any(), int64(2)).Return(entities.ProducaoOrdem{ID: 9, IDPedido: 2}, nil)

		pendentes, err := uc.Pendentes(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(pendentes) != 1 || pendentes[0].Pedido.ID != 1 {
			t.Fatalf("unexpected pendentes: %+v", pendentes)
		}
		if pendentes[0].Resumo != "2x Caneca" {
			t.Fatalf("unexpected resumo: %q", pendentes[0].Resumo)
		}
	})
}

func TestProducaoUseCase_Gerar(t *testing.T) {
	t.Run("cria OP aberta para pedido em impressao", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		producaoRepo := mock_interfaces.NewMockIProducaoRepository(ctrl)
		pedidoRepo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		uc := NewProducaoUseCase(producaoRepo, pedidoRepo)

		pedidoRepo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(entities.Pedido{ID: 3, Status: entities.StatusImprimindo}, nil)
		producaoRepo.EXPECT().GetByPedido(gomock.Any(), int64(3)).Return(entities.ProducaoOrdem{}, nil)
		producaoRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ProducaoOrdem{})).DoAndReturn(
			func(_ context.Context, op entities.ProducaoOrdem) (entities.ProducaoOrdem, error) {
				if op.IDPedido != 3 || op.Status != entities.OPAberta {
					t.Fatalf("unexpected op: %+v", op)
				}
				op.ID = 15
				op.Codigo = entities.CodigoOP(15)
				return op, nil
			},
		)

		op, err := uc.Gerar(context.Background(), 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if op.ID != 15 || op.Codigo != "OP-15" {
			t.Fatalf("unexpected op: %+v", op)
		}
	})

	t.Run("pedido fora da fase de impressao", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		producaoRepo := mock_interfaces.NewMockIProducaoRepository(ctrl)
		pedidoRepo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		uc := NewProducaoUseCase(producaoRepo, pedidoRepo)

		pedidoRepo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(entities.Pedido{ID: 3, Status: entities.StatusEntrada}, nil)

		_, err := uc.Gerar(context.Background(), 3)
		if !errors.Is(err, ErrPedidoForaDaFase) {
			t.Fatalf("expected ErrPedidoForaDaFase, got %v", err)
		}
	})

	t.Run("pedido ja tem OP", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		producaoRepo := mock_interfaces.NewMockIProducaoRepository(ctrl)
		pedidoRepo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		uc := NewProducaoUseCase(producaoRepo, pedidoRepo)

		pedidoRepo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(entities.Pedido{ID: 3, Status: entities.StatusImprimindo}, nil)
		producaoRepo.EXPECT().GetByPedido(gomock.Any(), int64(3)).Return(entities.ProducaoOrdem{ID: 8, IDPedido: 3}, nil)

		_, err := uc.Gerar(context.Background(), 3)
		if !errors.Is(err, ErrOPDuplicada) {
			t.Fatalf("expected ErrOPDuplicada, got %v", err)
		}
	})

	t.Run("pedido nao encontrado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		producaoRepo := mock_interfaces.NewMockIProducaoRepository(ctrl)
		pedidoRepo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		uc := NewProducaoUseCase(producaoRepo, pedidoRepo)

		pedidoRepo.EXPECT().GetByID(gomock.Any(), int64(99)).Return(entities.Pedido{}, nil)

		_, err := uc.Gerar(context.Background(), 99)
		if !errors.Is(err, ErrPedidoNotFound) {
			t.Fatalf("expected ErrPedidoNotFound, got %v", err)
		}
	})
}

func TestProducaoUseCase_Excluir(t *testing.T) {
	t.Run("op nao encontrada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		producaoRepo := mock_interfaces.NewMockIProducaoRepository(ctrl)
		uc := NewProducaoUseCase(producaoRepo, nil)

		producaoRepo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(entities.ProducaoOrdem{}, nil)

		if err := uc.Excluir(context.Background(), 5); !errors.Is(err, ErrOPNotFound) {
			t.Fatalf("expected ErrOPNotFound, got %v", err)
		}
	})

	t.Run("remove op existente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		producaoRepo := mock_interfaces.NewMockIProducaoRepository(ctrl)
		uc := NewProducaoUseCase(producaoRepo, nil)

		producaoRepo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(entities.ProducaoOrdem{ID: 5}, nil)
		producaoRepo.EXPECT().Delete(gomock.Any(), int64(5)).Return(nil)

		if err := uc.Excluir(context.Background(), 5); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestProducaoUseCase_ProcessarCodigo(t *testing.T) {
	t.Run("primeira bipada inicia a producao", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		producaoRepo := mock_interfaces.NewMockIProducaoRepository(ctrl)
		pedidoRepo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		uc := NewProducaoUseCase(producaoRepo, pedidoRepo)

		producaoRepo.EXPECT().GetByID(gomock.Any(), int64(15)).Return(entities.ProducaoOrdem{
			ID: 15, IDPedido: 3, Codigo: "OP-15", Status: entities.OPAberta,
		}, nil)
		pedidoRepo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(entities.Pedido{ID: 3}, nil)
		producaoRepo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.ProducaoOrdem{})).DoAndReturn(
			func(_ context.Context, op entities.ProducaoOrdem) (entities.ProducaoOrdem, error) {
				if op.Status != entities.OPEmAndamento || op.Responsavel != "maria" {
					t.Fatalf("unexpected op: %+v", op)
				}
				if op.DataInicio.IsZero() {
					t.Fatalf("data de inicio deveria ser preenchida")
				}
				return op, nil
			},
		)

		leitura, err := uc.ProcessarCodigo(context.Background(), "OP-15", "maria")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if leitura.Acao != "INICIO" || leitura.Pedido.ID != 3 {
			t.Fatalf("unexpected leitura: %+v", leitura)
		}
	})

	t.Run("segunda bipada finaliza", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		producaoRepo := mock_interfaces.NewMockIProducaoRepository(ctrl)
		pedidoRepo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		uc := NewProducaoUseCase(producaoRepo, pedidoRepo)

		producaoRepo.EXPECT().GetByID(gomock.Any(), int64(15)).Return(entities.ProducaoOrdem{
			ID: 15, IDPedido: 3, Codigo: "OP-15", Status: entities.OPEmAndamento, Responsavel: "maria",
		}, nil)
		pedidoRepo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(entities.Pedido{ID: 3}, nil)
		producaoRepo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.ProducaoOrdem{})).DoAndReturn(
			func(_ context.Context, op entities.ProducaoOrdem) (entities.ProducaoOrdem, error) {
				if op.Status != entities.OPConcluida {
					t.Fatalf("unexpected status: %s", op.Status)
				}
				if op.DataFim.IsZero() {
					t.Fatalf("data de fim deveria ser preenchida")
				}
				return op, nil
			},
		)

		leitura, err := uc.ProcessarCodigo(context.Background(), "15", "joao")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if leitura.Acao != "FIM" {
			t.Fatalf("unexpected leitura: %+v", leitura)
		}
	})

	t.Run("op concluida so avisa", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		producaoRepo := mock_interfaces.NewMockIProducaoRepository(ctrl)
		pedidoRepo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		uc := NewProducaoUseCase(producaoRepo, pedidoRepo)

		producaoRepo.EXPECT().GetByID(gomock.Any(), int64(15)).Return(entities.ProducaoOrdem{
			ID: 15, IDPedido: 3, Codigo: "OP-15", Status: entities.OPConcluida,
		}, nil)
		pedidoRepo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(entities.Pedido{ID: 3}, nil)

		leitura, err := uc.ProcessarCodigo(context.Background(), "OP-15", "maria")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if leitura.Acao != "" || leitura.Mensagem == "" {
			t.Fatalf("unexpected leitura: %+v", leitura)
		}
	})

	t.Run("op nao encontrada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		producaoRepo := mock_interfaces.NewMockIProducaoRepository(ctrl)
		uc := NewProducaoUseCase(producaoRepo, nil)

		producaoRepo.EXPECT().GetByID(gomock.Any(), int64(15)).Return(entities.ProducaoOrdem{}, nil)

		_, err := uc.ProcessarCodigo(context.Background(), "OP-15", "maria")
		if !errors.Is(err, ErrOPNotFound) {
			t.Fatalf("expected ErrOPNotFound, got %v", err)
		}
	})
}
