package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/Luke2905/sistema-avivar/internal/domain/entities"
	mock_interfaces "github.com/Luke2905/sistema-avivar/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestEstoqueUseCase_Criar(t *testing.T) {
	t.Run("unidade obrigatoria", func(t *testing.T) {
		uc := NewEstoqueUseCase(nil)
		_, err := uc.Criar(context.Background(), entities.Materia{SKU: "TIN-01", Nome: "Tinta"})
		if !errors.Is(err, ErrUnidadeInvalida) {
			t.Fatalf("expected ErrUnidadeInvalida, got %v", err)
		}
	})

	t.Run("saldo negativo recusado", func(t *testing.T) {
		uc := NewEstoqueUseCase(nil)
		_, err := uc.Criar(context.Background(), entities.Materia{
			SKU: "TIN-01", Nome: "Tinta", UnidadeMedida: "ml",
			SaldoEstoque: decimal.NewFromInt(-5),
		})
		if !errors.Is(err, ErrSaldoInvalido) {
			t.Fatalf("expected ErrSaldoInvalido, got %v", err)
		}
	})

	t.Run("cria insumo valido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstoqueRepository(ctrl)
		uc := NewEstoqueUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Materia{})).DoAndReturn(
			func(_ context.Context, m entities.Materia) (entities.Materia, error) {
				if m.SKU != "TIN-01" || m.UnidadeMedida != "ml" {
					t.Fatalf("campos deveriam ser aparados: %+v", m)
				}
				m.ID = 1
				return m, nil
			},
		)

		materia, err := uc.Criar(context.Background(), entities.Materia{
			SKU: " TIN-01 ", Nome: "Tinta", UnidadeMedida: " ml ",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if materia.ID != 1 {
			t.Fatalf("unexpected materia: %+v", materia)
		}
	})
}

func TestEstoqueUseCase_Atualizar(t *testing.T) {
	t.Run("materia nao encontrada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstoqueRepository(ctrl)
		uc := NewEstoqueUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), int64(9)).Return(entities.Materia{}, nil)

		_, err := uc.Atualizar(context.Background(), entities.Materia{
			ID: 9, SKU: "TIN-01", Nome: "Tinta", UnidadeMedida: "ml",
		})
		if !errors.Is(err, ErrMateriaNotFound) {
			t.Fatalf("expected ErrMateriaNotFound, got %v", err)
		}
	})

	t.Run("atualiza materia existente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstoqueRepository(ctrl)
		uc := NewEstoqueUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.Materia{ID: 1}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, m entities.Materia) (entities.Materia, error) {
				return m, nil
			},
		)

		materia, err := uc.Atualizar(context.Background(), entities.Materia{
			ID: 1, SKU: "TIN-01", Nome: "Tinta Azul", UnidadeMedida: "ml",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if materia.Nome != "Tinta Azul" {
			t.Fatalf("unexpected materia: %+v", materia)
		}
	})
}

func TestEstoqueUseCase_AjustarSaldo(t *testing.T) {
	t.Run("saldo negativo recusado", func(t *testing.T) {
		uc := NewEstoqueUseCase(nil)
		err := uc.AjustarSaldo(context.Background(), 1, decimal.NewFromInt(-1))
		if !errors.Is(err, ErrSaldoInvalido) {
			t.Fatalf("expected ErrSaldoInvalido, got %v", err)
		}
	})

	t.Run("materia nao encontrada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstoqueRepository(ctrl)
		uc := NewEstoqueUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), int64(9)).Return(entities.Materia{}, nil)

		err := uc.AjustarSaldo(context.Background(), 9, decimal.NewFromInt(10))
		if !errors.Is(err, ErrMateriaNotFound) {
			t.Fatalf("expected ErrMateriaNotFound, got %v", err)
		}
	})

	t.Run("grava o saldo contado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstoqueRepository(ctrl)
		uc := NewEstoqueUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.Materia{ID: 1}, nil)
		repo.EXPECT().AtualizarSaldo(gomock.Any(), int64(1), decimal.NewFromInt(37)).Return(nil)

		if err := uc.AjustarSaldo(context.Background(), 1, decimal.NewFromInt(37)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("zerar o saldo e permitido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstoqueRepository(ctrl)
		uc := NewEstoqueUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.Materia{ID: 1}, nil)
		repo.EXPECT().AtualizarSaldo(gomock.Any(), int64(1), decimal.Zero).Return(nil)

		if err := uc.AjustarSaldo(context.Background(), 1, decimal.Zero); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestMateriaAlertaBaixo(t *testing.T) {
	m := entities.Materia{
		SaldoEstoque:  decimal.NewFromInt(3),
		EstoqueMinimo: decimal.NewFromInt(5),
	}
	if !m.AlertaBaixo() {
		t.Fatalf("saldo 3 abaixo do minimo 5 deveria alertar")
	}
	m.SaldoEstoque = decimal.NewFromInt(5)
	if m.AlertaBaixo() {
		t.Fatalf("saldo igual ao minimo nao alerta")
	}
}
