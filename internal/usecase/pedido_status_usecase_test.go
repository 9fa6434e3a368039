package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/Luke2905/sistema-avivar/internal/domain/entities"
	mock_interfaces "github.com/Luke2905/sistema-avivar/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

// baixaStub evita ciclo de importação com o pacote de mocks dos handlers.
type baixaStub struct {
	baixados int
	err      error
	chamadas int
}

func (s *baixaStub) BaixarEstoque(_ context.Context, _ int64) (int, error) {
	s.chamadas++
	return s.baixados, s.err
}

func TestPedidoStatusUseCase_Avancar(t *testing.T) {
	t.Run("avanca para a proxima fase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		uc := NewPedidoStatusUseCase(repo, &baixaStub{})

		repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.Pedido{ID: 1, Status: entities.StatusEntrada}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), int64(1), entities.StatusAguardandoArte).Return(nil)

		res, err := uc.Avancar(context.Background(), 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Movido || res.Pedido.Status != entities.StatusAguardandoArte {
			t.Fatalf("unexpected resultado: %+v", res)
		}
		if res.InsumosBaixados != 0 {
			t.Fatalf("baixa nao deveria rodar fora de PRODUCAO, got %d", res.InsumosBaixados)
		}
	})

	t.Run("pedido nao encontrado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		uc := NewPedidoStatusUseCase(repo, &baixaStub{})

		repo.EXPECT().GetByID(gomock.Any(), int64(99)).Return(entities.Pedido{}, nil)

		_, err := uc.Avancar(context.Background(), 99)
		if !errors.Is(err, ErrPedidoNotFound) {
			t.Fatalf("expected ErrPedidoNotFound, got %v", err)
		}
	})

	t.Run("status desconhecido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		uc := NewPedidoStatusUseCase(repo, &baixaStub{})

		repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.Pedido{ID: 1, Status: "QUALQUER"}, nil)

		_, err := uc.Avancar(context.Background(), 1)
		if !errors.Is(err, ErrStatusInvalido) {
			t.Fatalf("expected ErrStatusInvalido, got %v", err)
		}
	})

	t.Run("cancelado nao avanca", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		baixa := &baixaStub{}
		uc := NewPedidoStatusUseCase(repo, baixa)

		repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.Pedido{ID: 1, Status: entities.StatusCancelado}, nil)

		_, err := uc.Avancar(context.Background(), 1)
		if !errors.Is(err, ErrPedidoCancelado) {
			t.Fatalf("expected ErrPedidoCancelado, got %v", err)
		}
		if baixa.chamadas != 0 {
			t.Fatalf("baixa nao deveria rodar para pedido cancelado")
		}
	})

	t.Run("enviado nao avanca e nao persiste", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		uc := NewPedidoStatusUseCase(repo, &baixaStub{})

		repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.Pedido{ID: 1, Status: entities.StatusEnviado}, nil)

		res, err := uc.Avancar(context.Background(), 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Movido {
			t.Fatalf("ENVIADO nao deveria avancar")
		}
		if res.Pedido.Status != entities.StatusEnviado {
			t.Fatalf("status nao deveria mudar, got %s", res.Pedido.Status)
		}
	})

	t.Run("producao exige baixa de estoque antes de enviar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		baixa := &baixaStub{baixados: 3}
		uc := NewPedidoStatusUseCase(repo, baixa)

		repo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(entities.Pedido{ID: 7, Status: entities.StatusProducao}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), int64(7), entities.StatusEnviado).Return(nil)

		res, err := uc.Avancar(context.Background(), 7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if baixa.chamadas != 1 {
			t.Fatalf("expected 1 baixa, got %d", baixa.chamadas)
		}
		if res.InsumosBaixados != 3 || res.Pedido.Status != entities.StatusEnviado {
			t.Fatalf("unexpected resultado: %+v", res)
		}
	})

	t.Run("falha na baixa aborta sem gravar status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		baixa := &baixaStub{err: ErrSaldoInsuficiente}
		uc := NewPedidoStatusUseCase(repo, baixa)

		repo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(entities.Pedido{ID: 7, Status: entities.StatusProducao}, nil)

		_, err := uc.Avancar(context.Background(), 7)
		if !errors.Is(err, ErrSaldoInsuficiente) {
			t.Fatalf("expected ErrSaldoInsuficiente, got %v", err)
		}
	})

	t.Run("erro de persistencia propaga", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		uc := NewPedidoStatusUseCase(repo, &baixaStub{})

		repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.Pedido{ID: 1, Status: entities.StatusCriacao}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), int64(1), entities.StatusImprimindo).Return(errors.New("db"))

		_, err := uc.Avancar(context.Background(), 1)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestPedidoStatusUseCase_Voltar(t *testing.T) {
	t.Run("cancelado nao volta para enviado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		uc := NewPedidoStatusUseCase(repo, &baixaStub{})

		repo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(entities.Pedido{ID: 3, Status: entities.StatusCancelado}, nil)

		_, err := uc.Voltar(context.Background(), 3)
		if !errors.Is(err, ErrPedidoCancelado) {
			t.Fatalf("expected ErrPedidoCancelado, got %v", err)
		}
	})

	t.Run("volta para a fase anterior", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		uc := NewPedidoStatusUseCase(repo, &baixaStub{})

		repo.EXPECT().GetByID(gomock.Any(), int64(2)).Return(entities.Pedido{ID: 2, Status: entities.StatusCriacao}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), int64(2), entities.StatusAguardandoArte).Return(nil)

		res, err := uc.Voltar(context.Background(), 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Movido || res.Pedido.Status != entities.StatusAguardandoArte {
			t.Fatalf("unexpected resultado: %+v", res)
		}
	})

	t.Run("entrada nao volta e nao persiste", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		uc := NewPedidoStatusUseCase(repo, &baixaStub{})

		repo.EXPECT().GetByID(gomock.Any(), int64(2)).Return(entities.Pedido{ID: 2, Status: entities.StatusEntrada}, nil)

		res, err := uc.Voltar(context.Background(), 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Movido {
			t.Fatalf("ENTRADA nao deveria voltar")
		}
	})

	t.Run("voltar de enviado nao roda baixa", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		baixa := &baixaStub{}
		uc := NewPedidoStatusUseCase(repo, baixa)

		repo.EXPECT().GetByID(gomock.Any(), int64(2)).Return(entities.Pedido{ID: 2, Status: entities.StatusEnviado}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), int64(2), entities.StatusProducao).Return(nil)

		res, err := uc.Voltar(context.Background(), 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if baixa.chamadas != 0 {
			t.Fatalf("voltar nao deveria baixar estoque")
		}
		if res.Pedido.Status != entities.StatusProducao {
			t.Fatalf("unexpected status: %s", res.Pedido.Status)
		}
	})
}

func TestPedidoStatusUseCase_AtualizarStatus(t *testing.T) {
	t.Run("grava status direto", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		uc := NewPedidoStatusUseCase(repo, &baixaStub{})

		repo.EXPECT().GetByID(gomock.Any(), int64(4)).Return(entities.Pedido{ID: 4, Status: entities.StatusEntrada}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), int64(4), entities.StatusProducao).Return(nil)

		pedido, err := uc.AtualizarStatus(context.Background(), 4, entities.StatusProducao)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if pedido.Status != entities.StatusProducao {
			t.Fatalf("unexpected status: %s", pedido.Status)
		}
	})

	t.Run("status desconhecido recusado", func(t *testing.T) {
		uc := NewPedidoStatusUseCase(nil, nil)
		_, err := uc.AtualizarStatus(context.Background(), 4, "FASE_X")
		if !errors.Is(err, ErrStatusInvalido) {
			t.Fatalf("expected ErrStatusInvalido, got %v", err)
		}
	})

	t.Run("cancelado so pela operacao de cancelamento", func(t *testing.T) {
		uc := NewPedidoStatusUseCase(nil, nil)
		_, err := uc.AtualizarStatus(context.Background(), 4, entities.StatusCancelado)
		if !errors.Is(err, ErrStatusInvalido) {
			t.Fatalf("expected ErrStatusInvalido, got %v", err)
		}
	})
}

func TestPedidoStatusUseCase_Cancelar(t *testing.T) {
	t.Run("cancela pedido ativo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		uc := NewPedidoStatusUseCase(repo, &baixaStub{})

		repo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(entities.Pedido{ID: 5, Status: entities.StatusCriacao}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), int64(5), entities.StatusCancelado).Return(nil)

		pedido, err := uc.Cancelar(context.Background(), 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if pedido.Status != entities.StatusCancelado {
			t.Fatalf("unexpected status: %s", pedido.Status)
		}
	})

	t.Run("cancelar duas vezes e idempotente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		uc := NewPedidoStatusUseCase(repo, &baixaStub{})

		repo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(entities.Pedido{ID: 5, Status: entities.StatusCancelado}, nil)

		pedido, err := uc.Cancelar(context.Background(), 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if pedido.Status != entities.StatusCancelado {
			t.Fatalf("unexpected status: %s", pedido.Status)
		}
	})

	t.Run("pedido nao encontrado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		uc := NewPedidoStatusUseCase(repo, &baixaStub{})

		repo.EXPECT().GetByID(gomock.Any(), int64(99)).Return(entities.Pedido{}, nil)

		_, err := uc.Cancelar(context.Background(), 99)
		if !errors.Is(err, ErrPedidoNotFound) {
			t.Fatalf("expected ErrPedidoNotFound, got %v", err)
		}
	})
}
