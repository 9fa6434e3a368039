package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/Luke2905/sistema-avivar/internal/domain/entities"
	"github.com/Luke2905/sistema-avivar/internal/usecase/interfaces"
)

var (
	ErrPedidoNotFound  = errors.New("pedido not found")
	ErrStatusInvalido  = errors.New("status invalido")
	ErrPedidoCancelado = errors.New("pedido cancelado nao pode ser movido")
)

// ResultadoMovimento descreve o efeito de um avançar/voltar.
//
// Movido == false significa no-op de borda (já estava na primeira/última
// fase alcançável); nenhuma chamada de persistência aconteceu.
type ResultadoMovimento struct {
	Pedido          entities.Pedido
	Movido          bool
	InsumosBaixados int
}

// IPedidoStatusUseCase é a máquina de estados do Kanban de pedidos.
//
// Regras:
//   - Avancar: próxima fase da sequência; sair de PRODUCAO exige baixa de
//     estoque bem-sucedida ANTES de gravar ENVIADO. Falha na baixa aborta
//     sem tocar no status.
//   - Voltar: fase anterior, sem guarda de estoque.
//   - Pedido CANCELADO não se move em nenhuma direção (ErrPedidoCancelado).
//   - AtualizarStatus: gravação direta (contrato do PATCH /pedidos/:id/status).
//   - Cancelar: única forma de chegar em CANCELADO; fora da sequência linear.

type IPedidoStatusUseCase interface {
	Avancar(ctx context.Context, pedidoID int64) (ResultadoMovimento, error)
	Voltar(ctx context.Context, pedidoID int64) (ResultadoMovimento, error)
	AtualizarStatus(ctx context.Context, pedidoID int64, novoStatus entities.StatusPedido) (entities.Pedido, error)
	Cancelar(ctx context.Context, pedidoID int64) (entities.Pedido, error)
}

// IBaixaEstoqueUseCase é o pedágio de estoque chamado ao finalizar a
// produção. Devolve quantos insumos foram debitados.
type IBaixaEstoqueUseCase interface {
	BaixarEstoque(ctx context.Context, pedidoID int64) (int, error)
}

type PedidoStatusUseCase struct {
	repo  interfaces.IPedidoRepository
	baixa IBaixaEstoqueUseCase
}

var _ IPedidoStatusUseCase = (*PedidoStatusUseCase)(nil)

func NewPedidoStatusUseCase(repo interfaces.IPedidoRepository, baixa IBaixaEstoqueUseCase) *PedidoStatusUseCase {
	return &PedidoStatusUseCase{repo: repo, baixa: baixa}
}

func (u *PedidoStatusUseCase) Avancar(ctx context.Context, pedidoID int64) (ResultadoMovimento, error) {
	pedido, err := u.repo.GetByID(ctx, pedidoID)
	if err != nil {
		return ResultadoMovimento{}, err
	}
	if pedido.ID == 0 {
		return ResultadoMovimento{}, ErrPedidoNotFound
	}
	if pedido.Status == entities.StatusCancelado {
		return ResultadoMovimento{}, ErrPedidoCancelado
	}

	idx := entities.IndiceFase(pedido.Status)
	if idx < 0 {
		return ResultadoMovimento{}, ErrStatusInvalido
	}
	// Trava fim da linha: ENVIADO não avança.
	if idx >= len(entities.FasesOrdem)-2 {
		return ResultadoMovimento{Pedido: pedido, Movido: false}, nil
	}

	proxima := entities.FasesOrdem[idx+1]
	baixados := 0

	// Pedágio de estoque: sair de PRODUCAO só depois da baixa confirmada.
	if pedido.Status == entities.StatusProducao {
		baixados, err = u.baixa.BaixarEstoque(ctx, pedido.ID)
		if err != nil {
			log.Printf("[pedido][status] baixa de estoque bloqueou avanço id=%d err=%v", pedido.ID, err)
			return ResultadoMovimento{}, err
		}
	}

	if err := u.repo.UpdateStatus(ctx, pedido.ID, proxima); err != nil {
		return ResultadoMovimento{}, err
	}
	pedido.Status = proxima
	return ResultadoMovimento{Pedido: pedido, Movido: true, InsumosBaixados: baixados}, nil
}

func (u *PedidoStatusUseCase) Voltar(ctx context.Context, pedidoID int64) (ResultadoMovimento, error) {
	pedido, err := u.repo.GetByID(ctx, pedidoID)
	if err != nil {
		return ResultadoMovimento{}, err
	}
	if pedido.ID == 0 {
		return ResultadoMovimento{}, ErrPedidoNotFound
	}
	if pedido.Status == entities.StatusCancelado {
		return ResultadoMovimento{}, ErrPedidoCancelado
	}

	idx := entities.IndiceFase(pedido.Status)
	if idx < 0 {
		return ResultadoMovimento{}, ErrStatusInvalido
	}
	if idx <= 0 {
		return ResultadoMovimento{Pedido: pedido, Movido: false}, nil
	}

	anterior := entities.FasesOrdem[idx-1]
	if err := u.repo.UpdateStatus(ctx, pedido.ID, anterior); err != nil {
		return ResultadoMovimento{}, err
	}
	pedido.Status = anterior
	return ResultadoMovimento{Pedido: pedido, Movido: true}, nil
}

func (u *PedidoStatusUseCase) AtualizarStatus(ctx context.Context, pedidoID int64, novoStatus entities.StatusPedido) (entities.Pedido, error) {
	if !entities.StatusValido(novoStatus) || novoStatus == entities.StatusCancelado {
		// CANCELADO só entra pela operação explícita de cancelamento.
		return entities.Pedido{}, ErrStatusInvalido
	}
	pedido, err := u.repo.GetByID(ctx, pedidoID)
	if err != nil {
		return entities.Pedido{}, err
	}
	if pedido.ID == 0 {
		return entities.Pedido{}, ErrPedidoNotFound
	}
	if err := u.repo.UpdateStatus(ctx, pedido.ID, novoStatus); err != nil {
		return entities.Pedido{}, err
	}
	pedido.Status = novoStatus
	return pedido, nil
}

func (u *PedidoStatusUseCase) Cancelar(ctx context.Context, pedidoID int64) (entities.Pedido, error) {
	pedido, err := u.repo.GetByID(ctx, pedidoID)
	if err != nil {
		return entities.Pedido{}, err
	}
	if pedido.ID == 0 {
		return entities.Pedido{}, ErrPedidoNotFound
	}
	if pedido.Status == entities.StatusCancelado {
		return pedido, nil
	}
	if err := u.repo.UpdateStatus(ctx, pedido.ID, entities.StatusCancelado); err != nil {
		return entities.Pedido{}, err
	}
	pedido.Status = entities.StatusCancelado
	return pedido, nil
}
