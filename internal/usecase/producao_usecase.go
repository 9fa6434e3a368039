package usecase

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/Luke2905/sistema-avivar/internal/domain/entities"
	"github.com/Luke2905/sistema-avivar/internal/usecase/interfaces"
)

var (
	ErrOPNotFound       = errors.New("ordem de producao nao encontrada")
	ErrOPDuplicada      = errors.New("pedido ja possui ordem de producao")
	ErrPedidoForaDaFase = errors.New("pedido nao esta na fase de impressao")
	ErrCodigoOPInvalido = errors.New("codigo de ordem de producao invalido")
)

// PedidoPendente junta o pedido pronto para fabricar com o resumo exibido na
// fila de geração de OP.
type PedidoPendente struct {
	Pedido entities.Pedido
	Resumo string
}

// LeituraScanner é o resultado de uma bipada no chão de fábrica.
type LeituraScanner struct {
	Ordem    entities.ProducaoOrdem
	Pedido   entities.Pedido
	Acao     string // INICIO ou FIM
	Mensagem string
}

type IProducaoUseCase interface {
	Pendentes(ctx context.Context) ([]PedidoPendente, error)
	Todas(ctx context.Context) ([]entities.ProducaoOrdem, error)
	MinhaProducao(ctx context.Context) ([]entities.ProducaoOrdem, error)
	Gerar(ctx context.Context, pedidoID int64) (entities.ProducaoOrdem, error)
	Excluir(ctx context.Context, opID int64) error
	ProcessarCodigo(ctx context.Context, codigo, operador string) (LeituraScanner, error)
}

// ProducaoUseCase controla o ciclo de vida das ordens de produção e o fluxo
// do scanner de etiquetas.
type ProducaoUseCase struct {
	producaoRepo interfaces.IProducaoRepository
	pedidoRepo   interfaces.IPedidoRepository
}

var _ IProducaoUseCase = (*ProducaoUseCase)(nil)

func NewProducaoUseCase(producaoRepo interfaces.IProducaoRepository, pedidoRepo interfaces.IPedidoRepository) *ProducaoUseCase {
	return &ProducaoUseCase{producaoRepo: producaoRepo, pedidoRepo: pedidoRepo}
}

// Pendentes lista os pedidos em IMPRIMINDO que ainda não possuem OP.
func (u *ProducaoUseCase) Pendentes(ctx context.Context) ([]PedidoPendente, error) {
	pedidos, err := u.pedidoRepo.ListByStatus(ctx, entities.StatusImprimindo)
	if err != nil {
		return nil, err
	}

	pendentes := make([]PedidoPendente, 0, len(pedidos))
	for _, pedido := range pedidos {
		op, err := u.producaoRepo.GetByPedido(ctx, pedido.ID)
		if err != nil {
			return nil, err
		}
		if op.ID != 0 {
			continue
		}
		pendentes = append(pendentes, PedidoPendente{Pedido: pedido, Resumo: pedido.ResumoItens()})
	}
	return pendentes, nil
}

func (u *ProducaoUseCase) Todas(ctx context.Context) ([]entities.ProducaoOrdem, error) {
	return u.producaoRepo.List(ctx)
}

// MinhaProducao retorna as OPs em andamento. A tela do scanner consulta este
// endpoint em polling; falhas aqui não interrompem o operador.
func (u *ProducaoUseCase) MinhaProducao(ctx context.Context) ([]entities.ProducaoOrdem, error) {
	ordens, err := u.producaoRepo.ListByStatus(ctx, entities.OPEmAndamento)
	if err != nil {
		log.Printf("[producao] falha ao listar OPs em andamento: %v", err)
		return nil, err
	}
	return ordens, nil
}

// Gerar cria a OP de um pedido em IMPRIMINDO que ainda não tenha uma.
func (u *ProducaoUseCase) Gerar(ctx context.Context, pedidoID int64) (entities.ProducaoOrdem, error) {
	pedido, err := u.pedidoRepo.GetByID(ctx, pedidoID)
	if err != nil {
		return entities.ProducaoOrdem{}, err
	}
	if pedido.ID == 0 {
		return entities.ProducaoOrdem{}, ErrPedidoNotFound
	}
	if pedido.Status != entities.StatusImprimindo {
		return entities.ProducaoOrdem{}, ErrPedidoForaDaFase
	}

	existente, err := u.producaoRepo.GetByPedido(ctx, pedido.ID)
	if err != nil {
		return entities.ProducaoOrdem{}, err
	}
	if existente.ID != 0 {
		return entities.ProducaoOrdem{}, ErrOPDuplicada
	}

	op, err := u.producaoRepo.Create(ctx, entities.ProducaoOrdem{
		IDPedido: pedido.ID,
		Status:   entities.OPAberta,
	})
	if err != nil {
		return entities.ProducaoOrdem{}, err
	}
	return op, nil
}

// Excluir remove uma OP e devolve o pedido à fila de geração.
func (u *ProducaoUseCase) Excluir(ctx context.Context, opID int64) error {
	op, err := u.producaoRepo.GetByID(ctx, opID)
	if err != nil {
		return err
	}
	if op.ID == 0 {
		return ErrOPNotFound
	}
	return u.producaoRepo.Delete(ctx, opID)
}

// ProcessarCodigo trata uma bipada do scanner. Aceita o código visual
// completo ("OP-15") ou apenas o número ("15").
//
// ABERTA inicia a produção; EM_ANDAMENTO finaliza; CONCLUIDA só avisa.
func (u *ProducaoUseCase) ProcessarCodigo(ctx context.Context, codigo, operador string) (LeituraScanner, error) {
	opID, err := parseCodigoOP(codigo)
	if err != nil {
		return LeituraScanner{}, err
	}

	op, err := u.producaoRepo.GetByID(ctx, opID)
	if err != nil {
		return LeituraScanner{}, err
	}
	if op.ID == 0 {
		return LeituraScanner{}, ErrOPNotFound
	}

	pedido, err := u.pedidoRepo.GetByID(ctx, op.IDPedido)
	if err != nil {
		return LeituraScanner{}, err
	}

	switch op.Status {
	case entities.OPAberta:
		op.Status = entities.OPEmAndamento
		op.Responsavel = operador
		op.DataInicio = time.Now().UTC()
		op, err = u.producaoRepo.Update(ctx, op)
		if err != nil {
			return LeituraScanner{}, err
		}
		return LeituraScanner{
			Ordem:    op,
			Pedido:   pedido,
			Acao:     "INICIO",
			Mensagem: "Produção iniciada: " + op.Codigo,
		}, nil

	case entities.OPEmAndamento:
		op.Status = entities.OPConcluida
		op.DataFim = time.Now().UTC()
		op, err = u.producaoRepo.Update(ctx, op)
		if err != nil {
			return LeituraScanner{}, err
		}
		return LeituraScanner{
			Ordem:    op,
			Pedido:   pedido,
			Acao:     "FIM",
			Mensagem: "Produção concluída: " + op.Codigo,
		}, nil

	default:
		return LeituraScanner{
			Ordem:    op,
			Pedido:   pedido,
			Mensagem: "Ordem " + op.Codigo + " já foi concluída",
		}, nil
	}
}

func parseCodigoOP(codigo string) (int64, error) {
	s := strings.TrimSpace(codigo)
	s = strings.TrimPrefix(strings.ToUpper(s), "OP-")
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrCodigoOPInvalido
	}
	return id, nil
}
