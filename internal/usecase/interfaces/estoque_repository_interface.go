package interfaces

import (
	"context"
	"errors"

	"github.com/Luke2905/sistema-avivar/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ErrSaldoInsuficiente is returned by DebitarSaldos when any debit in the
// batch would drive a saldo negative. Implementations wrap it with the
// material name.
var ErrSaldoInsuficiente = errors.New("estoque insuficiente")

// IEstoqueRepository abstracts DynamoDB persistence for Materia (insumos).
//
// DebitarSaldos is the transactional guard of the production flow: every
// debit carries a saldo >= quantidade condition and the whole batch commits
// or fails as one unit. ErrSaldoInsuficiente (wrapped with the material name)
// reports which item blocked the transaction.

type IEstoqueRepository interface {
	Create(ctx context.Context, m entities.Materia) (entities.Materia, error)
	GetByID(ctx context.Context, id int64) (entities.Materia, error)
	List(ctx context.Context) ([]entities.Materia, error)
	Update(ctx context.Context, m entities.Materia) (entities.Materia, error)
	AtualizarSaldo(ctx context.Context, id int64, novoSaldo decimal.Decimal) error
	CreditarSaldo(ctx context.Context, id int64, qtd decimal.Decimal, novoCusto decimal.Decimal) error
	DebitarSaldos(ctx context.Context, debitos []entities.DebitoInsumo) error
	Delete(ctx context.Context, id int64) error
}
