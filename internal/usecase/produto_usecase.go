package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/Luke2905/sistema-avivar/internal/domain/entities"
	"github.com/Luke2905/sistema-avivar/internal/usecase/interfaces"
)

var (
	ErrSKUObrigatorio  = errors.New("sku obrigatorio")
	ErrNomeObrigatorio = errors.New("nome obrigatorio")
	ErrSKUDuplicado    = errors.New("sku ja cadastrado")
	ErrPrecoInvalido   = errors.New("preco de venda invalido")
)

type IProdutoUseCase interface {
	Criar(ctx context.Context, p entities.Produto) (entities.Produto, error)
	Listar(ctx context.Context) ([]entities.Produto, error)
	Excluir(ctx context.Context, id int64) error
}

type ProdutoUseCase struct {
	repo interfaces.IProdutoRepository
}

var _ IProdutoUseCase = (*ProdutoUseCase)(nil)

func NewProdutoUseCase(repo interfaces.IProdutoRepository) *ProdutoUseCase {
	return &ProdutoUseCase{repo: repo}
}

func (u *ProdutoUseCase) Criar(ctx context.Context, p entities.Produto) (entities.Produto, error) {
	p.SKU = strings.TrimSpace(p.SKU)
	p.Nome = strings.TrimSpace(p.Nome)
	if p.SKU == "" {
		return entities.Produto{}, ErrSKUObrigatorio
	}
	if p.Nome == "" {
		return entities.Produto{}, ErrNomeObrigatorio
	}
	if p.PrecoVenda.IsNegative() {
		return entities.Produto{}, ErrPrecoInvalido
	}

	if existente, err := u.repo.GetBySKU(ctx, p.SKU); err != nil {
		return entities.Produto{}, err
	} else if existente.ID != 0 {
		return entities.Produto{}, ErrSKUDuplicado
	}

	return u.repo.Create(ctx, p)
}

func (u *ProdutoUseCase) Listar(ctx context.Context) ([]entities.Produto, error) {
	return u.repo.List(ctx)
}

func (u *ProdutoUseCase) Excluir(ctx context.Context, id int64) error {
	produto, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if produto.ID == 0 {
		return ErrProdutoNotFound
	}
	return u.repo.Delete(ctx, id)
}
