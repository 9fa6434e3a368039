package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/Luke2905/sistema-avivar/internal/domain/entities"
	"github.com/Luke2905/sistema-avivar/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var (
	ErrSaldoInvalido   = errors.New("saldo invalido")
	ErrUnidadeInvalida = errors.New("unidade de medida obrigatoria")
)

type IEstoqueUseCase interface {
	Criar(ctx context.Context, m entities.Materia) (entities.Materia, error)
	Listar(ctx context.Context) ([]entities.Materia, error)
	Atualizar(ctx context.Context, m entities.Materia) (entities.Materia, error)
	AjustarSaldo(ctx context.Context, id int64, novoSaldo decimal.Decimal) error
	Excluir(ctx context.Context, id int64) error
}

type EstoqueUseCase struct {
	repo interfaces.IEstoqueRepository
}

var _ IEstoqueUseCase = (*EstoqueUseCase)(nil)

func NewEstoqueUseCase(repo interfaces.IEstoqueRepository) *EstoqueUseCase {
	return &EstoqueUseCase{repo: repo}
}

func (u *EstoqueUseCase) Criar(ctx context.Context, m entities.Materia) (entities.Materia, error) {
	if err := validarMateria(&m); err != nil {
		return entities.Materia{}, err
	}
	return u.repo.Create(ctx, m)
}

func (u *EstoqueUseCase) Listar(ctx context.Context) ([]entities.Materia, error) {
	return u.repo.List(ctx)
}

func (u *EstoqueUseCase) Atualizar(ctx context.Context, m entities.Materia) (entities.Materia, error) {
	atual, err := u.repo.GetByID(ctx, m.ID)
	if err != nil {
		return entities.Materia{}, err
	}
	if atual.ID == 0 {
		return entities.Materia{}, ErrMateriaNotFound
	}
	if err := validarMateria(&m); err != nil {
		return entities.Materia{}, err
	}
	return u.repo.Update(ctx, m)
}

// AjustarSaldo é o ajuste de inventário: o operador digita o saldo real
// contado na prateleira.
func (u *EstoqueUseCase) AjustarSaldo(ctx context.Context, id int64, novoSaldo decimal.Decimal) error {
	if novoSaldo.IsNegative() {
		return ErrSaldoInvalido
	}
	materia, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if materia.ID == 0 {
		return ErrMateriaNotFound
	}
	return u.repo.AtualizarSaldo(ctx, id, novoSaldo)
}

func (u *EstoqueUseCase) Excluir(ctx context.Context, id int64) error {
	materia, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if materia.ID == 0 {
		return ErrMateriaNotFound
	}
	return u.repo.Delete(ctx, id)
}

func validarMateria(m *entities.Materia) error {
	m.SKU = strings.TrimSpace(m.SKU)
	m.Nome = strings.TrimSpace(m.Nome)
	m.UnidadeMedida = strings.TrimSpace(m.UnidadeMedida)
	if m.SKU == "" {
		return ErrSKUObrigatorio
	}
	if m.Nome == "" {
		return ErrNomeObrigatorio
	}
	if m.UnidadeMedida == "" {
		return ErrUnidadeInvalida
	}
	if m.SaldoEstoque.IsNegative() || m.CustoUnitario.IsNegative() {
		return ErrSaldoInvalido
	}
	return nil
}
