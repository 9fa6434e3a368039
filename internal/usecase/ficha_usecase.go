package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/Luke2905/sistema-avivar/internal/domain/entities"
	"github.com/Luke2905/sistema-avivar/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var (
	ErrProdutoNotFound = errors.New("produto not found")
	ErrMateriaNotFound = errors.New("materia not found")
	ErrFichaNotFound   = errors.New("item de ficha not found")
	ErrConsumoInvalido = errors.New("quantidade de consumo invalida")
)

var cem = decimal.NewFromInt(100)

// AnaliseFicha é a saída da calculadora de custo e margem.
type AnaliseFicha struct {
	CustoMaterial decimal.Decimal `json:"custo_material"`
	PrecoSugerido decimal.Decimal `json:"preco_sugerido"`
	PrecoAtual    decimal.Decimal `json:"preco_atual"`
	LucroReal     decimal.Decimal `json:"lucro_real"`
	MargemRealPct decimal.Decimal `json:"margem_real_pct"`
	PrecoAbaixo   bool            `json:"preco_abaixo_do_sugerido"`
}

// CalcularPreco é a calculadora pura de precificação:
//
//	custo_material = soma(qtd_consumo x custo_unitario)
//	preco_sugerido = custo x (1 + margem/100)
//	lucro_real     = preco_atual - custo
//	margem_real    = custo > 0 ? lucro/custo x 100 : 0 (nunca divide por zero)
func CalcularPreco(ficha []entities.FichaItem, margemPct decimal.Decimal, precoAtual decimal.Decimal) AnaliseFicha {
	custo := decimal.Zero
	for _, linha := range ficha {
		custo = custo.Add(linha.CustoLinha())
	}

	sugerido := custo.Mul(decimal.NewFromInt(1).Add(margemPct.Div(cem)))
	lucro := precoAtual.Sub(custo)

	margemReal := decimal.Zero
	if custo.IsPositive() {
		margemReal = lucro.Div(custo).Mul(cem)
	}

	return AnaliseFicha{
		CustoMaterial: custo,
		PrecoSugerido: sugerido,
		PrecoAtual:    precoAtual,
		LucroReal:     lucro,
		MargemRealPct: margemReal,
		PrecoAbaixo:   precoAtual.LessThan(sugerido),
	}
}

type IFichaUseCase interface {
	Adicionar(ctx context.Context, produtoID, materiaID int64, qtdConsumo decimal.Decimal) (entities.FichaItem, error)
	Remover(ctx context.Context, fichaID int64) error
	Listar(ctx context.Context, produtoID int64) ([]entities.FichaItem, error)
	Analisar(ctx context.Context, produtoID int64, margemPct decimal.Decimal) (AnaliseFicha, error)
}

type FichaUseCase struct {
	fichaRepo   interfaces.IFichaRepository
	produtoRepo interfaces.IProdutoRepository
	estoqueRepo interfaces.IEstoqueRepository
}

var _ IFichaUseCase = (*FichaUseCase)(nil)

func NewFichaUseCase(fichaRepo interfaces.IFichaRepository, produtoRepo interfaces.IProdutoRepository, estoqueRepo interfaces.IEstoqueRepository) *FichaUseCase {
	return &FichaUseCase{fichaRepo: fichaRepo, produtoRepo: produtoRepo, estoqueRepo: estoqueRepo}
}

func (u *FichaUseCase) Adicionar(ctx context.Context, produtoID, materiaID int64, qtdConsumo decimal.Decimal) (entities.FichaItem, error) {
	if !qtdConsumo.IsPositive() {
		return entities.FichaItem{}, ErrConsumoInvalido
	}

	produto, err := u.produtoRepo.GetByID(ctx, produtoID)
	if err != nil {
		return entities.FichaItem{}, err
	}
	if produto.ID == 0 {
		return entities.FichaItem{}, ErrProdutoNotFound
	}

	materia, err := u.estoqueRepo.GetByID(ctx, materiaID)
	if err != nil {
		return entities.FichaItem{}, err
	}
	if materia.ID == 0 {
		return entities.FichaItem{}, ErrMateriaNotFound
	}

	item := entities.FichaItem{
		IDProduto:     produtoID,
		IDMateria:     materia.ID,
		NomeMateria:   materia.Nome,
		UnidadeMedida: materia.UnidadeMedida,
		QtdConsumo:    qtdConsumo,
	}
	return u.fichaRepo.Add(ctx, item)
}

func (u *FichaUseCase) Remover(ctx context.Context, fichaID int64) error {
	item, err := u.fichaRepo.GetByID(ctx, fichaID)
	if err != nil {
		return err
	}
	if item.ID == 0 {
		return ErrFichaNotFound
	}
	return u.fichaRepo.Remove(ctx, fichaID)
}

// Listar devolve a ficha do produto com o custo unitário ATUAL de cada
// insumo; o custo não fica gravado na linha.
func (u *FichaUseCase) Listar(ctx context.Context, produtoID int64) ([]entities.FichaItem, error) {
	ficha, err := u.fichaRepo.ListByProduto(ctx, produtoID)
	if err != nil {
		return nil, err
	}
	for i := range ficha {
		materia, err := u.estoqueRepo.GetByID(ctx, ficha[i].IDMateria)
		if err != nil {
			return nil, err
		}
		if materia.ID == 0 {
			return nil, fmt.Errorf("%w: id=%d", ErrMateriaNotFound, ficha[i].IDMateria)
		}
		ficha[i].CustoUnitario = materia.CustoUnitario
		ficha[i].NomeMateria = materia.Nome
		ficha[i].UnidadeMedida = materia.UnidadeMedida
	}
	return ficha, nil
}

func (u *FichaUseCase) Analisar(ctx context.Context, produtoID int64, margemPct decimal.Decimal) (AnaliseFicha, error) {
	produto, err := u.produtoRepo.GetByID(ctx, produtoID)
	if err != nil {
		return AnaliseFicha{}, err
	}
	if produto.ID == 0 {
		return AnaliseFicha{}, ErrProdutoNotFound
	}

	ficha, err := u.Listar(ctx, produtoID)
	if err != nil {
		return AnaliseFicha{}, err
	}
	return CalcularPreco(ficha, margemPct, produto.PrecoVenda), nil
}
