package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/Luke2905/sistema-avivar/internal/domain/entities"
	"github.com/Luke2905/sistema-avivar/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var (
	ErrPedidoSemItens = errors.New("pedido sem itens para baixar")
	ErrFichaVazia     = errors.New("produto sem ficha tecnica cadastrada")

	// ErrSaldoInsuficiente re-exports the repository contract error so
	// handlers map every baixa failure from one package.
	ErrSaldoInsuficiente = interfaces.ErrSaldoInsuficiente
)

// BaixaEstoqueUseCase expande os itens do pedido pelas fichas técnicas dos
// produtos e debita os insumos em uma única transação. Nada é debitado se
// qualquer insumo ficar negativo.
type BaixaEstoqueUseCase struct {
	pedidoRepo  interfaces.IPedidoRepository
	fichaRepo   interfaces.IFichaRepository
	estoqueRepo interfaces.IEstoqueRepository
}

var _ IBaixaEstoqueUseCase = (*BaixaEstoqueUseCase)(nil)

func NewBaixaEstoqueUseCase(pedidoRepo interfaces.IPedidoRepository, fichaRepo interfaces.IFichaRepository, estoqueRepo interfaces.IEstoqueRepository) *BaixaEstoqueUseCase {
	return &BaixaEstoqueUseCase{pedidoRepo: pedidoRepo, fichaRepo: fichaRepo, estoqueRepo: estoqueRepo}
}

func (u *BaixaEstoqueUseCase) BaixarEstoque(ctx context.Context, pedidoID int64) (int, error) {
	pedido, err := u.pedidoRepo.GetByID(ctx, pedidoID)
	if err != nil {
		return 0, err
	}
	if pedido.ID == 0 {
		return 0, ErrPedidoNotFound
	}
	if len(pedido.Itens) == 0 {
		return 0, ErrPedidoSemItens
	}

	// Consolida o consumo por insumo: um mesmo insumo pode aparecer na
	// ficha de mais de um produto do pedido.
	consumo := map[int64]entities.DebitoInsumo{}
	ordem := []int64{}
	for _, item := range pedido.Itens {
		ficha, err := u.fichaRepo.ListByProduto(ctx, item.IDProduto)
		if err != nil {
			return 0, err
		}
		if len(ficha) == 0 {
			return 0, fmt.Errorf("%w: %s", ErrFichaVazia, item.NomeProduto)
		}
		qtdItem := decimal.NewFromInt(int64(item.Quantidade))
		for _, linha := range ficha {
			total := linha.QtdConsumo.Mul(qtdItem)
			deb, ok := consumo[linha.IDMateria]
			if !ok {
				ordem = append(ordem, linha.IDMateria)
				deb = entities.DebitoInsumo{IDMateria: linha.IDMateria, NomeInsumo: linha.NomeMateria}
			}
			deb.Quantidade = deb.Quantidade.Add(total)
			consumo[linha.IDMateria] = deb
		}
	}

	debitos := make([]entities.DebitoInsumo, 0, len(ordem))
	for _, id := range ordem {
		debitos = append(debitos, consumo[id])
	}

	if err := u.estoqueRepo.DebitarSaldos(ctx, debitos); err != nil {
		log.Printf("[producao][baixa] transacao de debito falhou pedido=%d err=%v", pedidoID, err)
		return 0, err
	}

	log.Printf("[producao][baixa] pedido=%d insumos_baixados=%d", pedidoID, len(debitos))
	return len(debitos), nil
}
