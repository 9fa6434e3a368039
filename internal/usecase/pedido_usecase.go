package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Luke2905/sistema-avivar/internal/domain/entities"
	"github.com/Luke2905/sistema-avivar/internal/usecase/interfaces"
)

var (
	ErrClienteObrigatorio = errors.New("nome do cliente obrigatorio")
	ErrPedidoSemItensForm = errors.New("pedido precisa de ao menos um item")
	ErrItemInvalido       = errors.New("item com produto ou quantidade invalida")
)

type IPedidoUseCase interface {
	Criar(ctx context.Context, p entities.Pedido) (entities.Pedido, error)
	Listar(ctx context.Context) ([]entities.Pedido, error)
	Buscar(ctx context.Context, id int64) (entities.Pedido, error)
	Atualizar(ctx context.Context, p entities.Pedido) (entities.Pedido, error)
	Excluir(ctx context.Context, id int64) error
	RegistrarNotaFiscal(ctx context.Context, id int64, numeroNota string) error
}

type PedidoUseCase struct {
	repo        interfaces.IPedidoRepository
	produtoRepo interfaces.IProdutoRepository
}

var _ IPedidoUseCase = (*PedidoUseCase)(nil)

func NewPedidoUseCase(repo interfaces.IPedidoRepository, produtoRepo interfaces.IProdutoRepository) *PedidoUseCase {
	return &PedidoUseCase{repo: repo, produtoRepo: produtoRepo}
}

func (u *PedidoUseCase) Criar(ctx context.Context, p entities.Pedido) (entities.Pedido, error) {
	if err := u.validar(&p); err != nil {
		return entities.Pedido{}, err
	}
	if err := u.preencherItens(ctx, &p); err != nil {
		return entities.Pedido{}, err
	}

	if p.Status == "" {
		p.Status = entities.StatusEntrada
	}
	if p.NumPedidoPlataforma == "" {
		p.NumPedidoPlataforma = "BALCÃO"
	}
	if p.DataPedido.IsZero() {
		p.DataPedido = time.Now().UTC()
	}
	// O total gravado é sempre recomputado dos itens; o servidor é a
	// autoridade sobre esse valor.
	p.CalcularTotal()

	return u.repo.Create(ctx, p)
}

func (u *PedidoUseCase) Listar(ctx context.Context) ([]entities.Pedido, error) {
	return u.repo.List(ctx)
}

func (u *PedidoUseCase) Buscar(ctx context.Context, id int64) (entities.Pedido, error) {
	pedido, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Pedido{}, err
	}
	if pedido.ID == 0 {
		return entities.Pedido{}, ErrPedidoNotFound
	}
	return pedido, nil
}

func (u *PedidoUseCase) Atualizar(ctx context.Context, p entities.Pedido) (entities.Pedido, error) {
	atual, err := u.Buscar(ctx, p.ID)
	if err != nil {
		return entities.Pedido{}, err
	}
	if err := u.validar(&p); err != nil {
		return entities.Pedido{}, err
	}
	if err := u.preencherItens(ctx, &p); err != nil {
		return entities.Pedido{}, err
	}

	// Status e NF não são editáveis pelo formulário de pedido; preserva.
	p.Status = atual.Status
	p.NumNotaFiscal = atual.NumNotaFiscal
	p.DataPedido = atual.DataPedido
	p.CalcularTotal()

	return u.repo.Update(ctx, p)
}

func (u *PedidoUseCase) Excluir(ctx context.Context, id int64) error {
	if _, err := u.Buscar(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}

// RegistrarNotaFiscal grava (ou limpa, com numero vazio) a NF do pedido.
func (u *PedidoUseCase) RegistrarNotaFiscal(ctx context.Context, id int64, numeroNota string) error {
	if _, err := u.Buscar(ctx, id); err != nil {
		return err
	}
	return u.repo.UpdateNotaFiscal(ctx, id, strings.TrimSpace(numeroNota))
}

func (u *PedidoUseCase) validar(p *entities.Pedido) error {
	p.NomeCliente = strings.TrimSpace(p.NomeCliente)
	if p.NomeCliente == "" {
		return ErrClienteObrigatorio
	}
	if len(p.Itens) == 0 {
		return ErrPedidoSemItensForm
	}
	for _, item := range p.Itens {
		if item.IDProduto == 0 || item.Quantidade <= 0 {
			return ErrItemInvalido
		}
	}
	return nil
}

// preencherItens denormaliza SKU/nome do produto em cada item.
func (u *PedidoUseCase) preencherItens(ctx context.Context, p *entities.Pedido) error {
	for i := range p.Itens {
		produto, err := u.produtoRepo.GetByID(ctx, p.Itens[i].IDProduto)
		if err != nil {
			return err
		}
		if produto.ID == 0 {
			return ErrProdutoNotFound
		}
		p.Itens[i].SKUProduto = produto.SKU
		p.Itens[i].NomeProduto = produto.Nome
		if p.Itens[i].ValorUnitario.IsZero() {
			p.Itens[i].ValorUnitario = produto.PrecoVenda
		}
	}
	return nil
}
