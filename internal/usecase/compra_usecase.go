package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/Luke2905/sistema-avivar/internal/domain/entities"
	"github.com/Luke2905/sistema-avivar/internal/usecase/interfaces"
)

var (
	ErrQtdCompraInvalida   = errors.New("quantidade comprada invalida")
	ErrCustoCompraInvalido = errors.New("custo total invalido")
)

type ICompraUseCase interface {
	Registrar(ctx context.Context, c entities.Compra) (entities.Compra, error)
	Listar(ctx context.Context) ([]entities.Compra, error)
}

// CompraUseCase registra entradas de insumo: grava a compra, credita o
// saldo e atualiza o custo unitário do insumo para o custo da compra
// (política de último custo: a calculadora de ficha sempre lê o custo mais
// recente).
type CompraUseCase struct {
	compraRepo  interfaces.ICompraRepository
	estoqueRepo interfaces.IEstoqueRepository
}

var _ ICompraUseCase = (*CompraUseCase)(nil)

func NewCompraUseCase(compraRepo interfaces.ICompraRepository, estoqueRepo interfaces.IEstoqueRepository) *CompraUseCase {
	return &CompraUseCase{compraRepo: compraRepo, estoqueRepo: estoqueRepo}
}

func (u *CompraUseCase) Registrar(ctx context.Context, c entities.Compra) (entities.Compra, error) {
	if !c.QtdComprada.IsPositive() {
		return entities.Compra{}, ErrQtdCompraInvalida
	}
	if !c.CustoTotal.IsPositive() {
		return entities.Compra{}, ErrCustoCompraInvalido
	}

	materia, err := u.estoqueRepo.GetByID(ctx, c.IDMateria)
	if err != nil {
		return entities.Compra{}, err
	}
	if materia.ID == 0 {
		return entities.Compra{}, ErrMateriaNotFound
	}

	c.NomeMateria = materia.Nome
	c.SKUMateria = materia.SKU
	c.UnidadeMedida = materia.UnidadeMedida
	if c.DataCompra.IsZero() {
		c.DataCompra = time.Now().UTC()
	}

	compra, err := u.compraRepo.Create(ctx, c)
	if err != nil {
		return entities.Compra{}, err
	}

	novoCusto := c.CustoTotal.Div(c.QtdComprada)
	if err := u.estoqueRepo.CreditarSaldo(ctx, materia.ID, c.QtdComprada, novoCusto); err != nil {
		// A compra ficou registrada; o crédito de saldo é reportado para o
		// operador refazer via ajuste de inventário.
		log.Printf("[compras] compra %d gravada mas credito de saldo falhou materia=%d err=%v", compra.ID, materia.ID, err)
		return compra, err
	}
	return compra, nil
}

func (u *CompraUseCase) Listar(ctx context.Context) ([]entities.Compra, error) {
	return u.compraRepo.List(ctx)
}
