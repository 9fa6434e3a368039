package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/Luke2905/sistema-avivar/internal/domain/entities"
	"github.com/Luke2905/sistema-avivar/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

var (
	ErrImportacaoVazia   = errors.New("nenhum pedido para importar")
	ErrPlanilhaInvalida  = errors.New("planilha invalida")
	ErrPlanilhaSemLinhas = errors.New("planilha sem linhas de dados")
)

// Linha é um registro cru da planilha: coluna -> valor textual.
type Linha map[string]string

// ResultadoImportacao resume um lote importado. Falhas de linha (SKU não
// cadastrado) não interrompem o restante do lote.
type ResultadoImportacao struct {
	PedidosCriados  int
	ItensVinculados int
	Falhas          []string
	Detalhes        string
}

type IImportacaoUseCase interface {
	Importar(ctx context.Context, pedidos []entities.PedidoImportado) (ResultadoImportacao, error)
	ImportarPlanilha(ctx context.Context, planilha io.Reader) (ResultadoImportacao, error)
}

type ImportacaoUseCase struct {
	pedidoRepo  interfaces.IPedidoRepository
	produtoRepo interfaces.IProdutoRepository
}

var _ IImportacaoUseCase = (*ImportacaoUseCase)(nil)

func NewImportacaoUseCase(pedidoRepo interfaces.IPedidoRepository, produtoRepo interfaces.IProdutoRepository) *ImportacaoUseCase {
	return &ImportacaoUseCase{pedidoRepo: pedidoRepo, produtoRepo: produtoRepo}
}

// AgruparLinhas reduz as linhas cruas da planilha em agregados de pedido.
//
// Regras (iguais à tela de importação original):
//   - chave = NumeroPedido, senão Pedido, senão uma chave gerada por linha
//     (linhas sem número viram pedidos isolados, de propósito);
//   - a primeira linha de cada chave define o cabeçalho; linhas seguintes da
//     mesma chave só contribuem itens, sem sobrescrever o cabeçalho;
//   - SKU vazio não gera item (linha só-cabeçalho é válida);
//   - Qtd ausente ou não numérica vale 1; SKUs repetidos não são somados;
//   - a saída preserva a ordem de primeira aparição de cada chave.
func AgruparLinhas(linhas []Linha) []entities.PedidoImportado {
	mapa := map[string]*entities.PedidoImportado{}
	ordem := []string{}

	for _, row := range linhas {
		chave := campo(row, "NumeroPedido", "Pedido")
		if chave == "" {
			chave = "SEM-NUM-" + uuid.NewString()
		}

		agg, ok := mapa[chave]
		if !ok {
			cliente := campo(row, "Cliente", "Nome")
			if cliente == "" {
				cliente = "Consumidor"
			}
			plataforma := campo(row, "Plataforma")
			if plataforma == "" {
				plataforma = "Excel"
			}
			data := parseDataPlanilha(campo(row, "Data"))
			valor := parseValor(campo(row, "ValorTotalPedido", "Valor"))

			agg = &entities.PedidoImportado{
				NumPedido:   chave,
				NomeCliente: cliente,
				Plataforma:  plataforma,
				Data:        data,
				ValorTotal:  valor,
				Itens:       []entities.ItemImportado{},
			}
			mapa[chave] = agg
			ordem = append(ordem, chave)
		}

		if sku := campo(row, "SKU"); sku != "" {
			qtd := 1
			if q := campo(row, "Qtd", "Quantidade"); q != "" {
				if n, err := strconv.Atoi(strings.TrimSpace(q)); err == nil && n > 0 {
					qtd = n
				}
			}
			agg.Itens = append(agg.Itens, entities.ItemImportado{SKU: sku, Qtd: qtd})
		}
	}

	saida := make([]entities.PedidoImportado, 0, len(ordem))
	for _, chave := range ordem {
		saida = append(saida, *mapa[chave])
	}
	return saida
}

// LerPlanilha lê a primeira aba de um xlsx: primeira linha são os nomes das
// colunas, demais linhas viram registros coluna -> valor.
func LerPlanilha(r io.Reader) ([]Linha, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPlanilhaInvalida, err)
	}
	defer f.Close()

	abas := f.GetSheetList()
	if len(abas) == 0 {
		return nil, ErrPlanilhaSemLinhas
	}
	rows, err := f.GetRows(abas[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPlanilhaInvalida, err)
	}
	if len(rows) < 2 {
		return nil, ErrPlanilhaSemLinhas
	}

	cabecalho := rows[0]
	linhas := make([]Linha, 0, len(rows)-1)
	for _, row := range rows[1:] {
		registro := Linha{}
		vazio := true
		for i, nome := range cabecalho {
			nome = strings.TrimSpace(nome)
			if nome == "" || i >= len(row) {
				continue
			}
			valor := strings.TrimSpace(row[i])
			if valor != "" {
				vazio = false
			}
			registro[nome] = valor
		}
		if !vazio {
			linhas = append(linhas, registro)
		}
	}
	return linhas, nil
}

func (u *ImportacaoUseCase) Importar(ctx context.Context, pedidos []entities.PedidoImportado) (ResultadoImportacao, error) {
	if len(pedidos) == 0 {
		return ResultadoImportacao{}, ErrImportacaoVazia
	}

	res := ResultadoImportacao{}
	for _, imp := range pedidos {
		itens := make([]entities.PedidoItem, 0, len(imp.Itens))
		for _, item := range imp.Itens {
			produto, err := u.produtoRepo.GetBySKU(ctx, item.SKU)
			if err != nil {
				return res, err
			}
			if produto.ID == 0 {
				res.Falhas = append(res.Falhas, fmt.Sprintf("pedido %s: SKU %q não cadastrado", imp.NumPedido, item.SKU))
				continue
			}
			itens = append(itens, entities.PedidoItem{
				IDProduto:     produto.ID,
				SKUProduto:    produto.SKU,
				NomeProduto:   produto.Nome,
				Quantidade:    item.Qtd,
				ValorUnitario: produto.PrecoVenda,
			})
		}

		data := imp.Data
		if data.IsZero() {
			data = time.Now().UTC()
		}
		pedido := entities.Pedido{
			NumPedidoPlataforma: imp.NumPedido,
			NomeCliente:         imp.NomeCliente,
			PlataformaOrigem:    imp.Plataforma,
			ValorTotal:          imp.ValorTotal,
			Status:              entities.StatusEntrada,
			DataPedido:          data,
			Itens:               itens,
		}
		// Valor declarado na planilha prevalece quando informado; sem ele,
		// o total vem dos preços de venda atuais.
		if pedido.ValorTotal.IsZero() {
			pedido.CalcularTotal()
		}

		if _, err := u.pedidoRepo.Create(ctx, pedido); err != nil {
			return res, err
		}
		res.PedidosCriados++
		res.ItensVinculados += len(itens)
	}

	res.Detalhes = fmt.Sprintf("%d pedidos importados, %d itens vinculados", res.PedidosCriados, res.ItensVinculados)
	if n := len(res.Falhas); n > 0 {
		res.Detalhes = fmt.Sprintf("%s (%d itens ignorados por SKU desconhecido)", res.Detalhes, n)
	}
	log.Printf("[pedidos][importacao] %s", res.Detalhes)
	return res, nil
}

func (u *ImportacaoUseCase) ImportarPlanilha(ctx context.Context, planilha io.Reader) (ResultadoImportacao, error) {
	linhas, err := LerPlanilha(planilha)
	if err != nil {
		return ResultadoImportacao{}, err
	}
	return u.Importar(ctx, AgruparLinhas(linhas))
}

func campo(row Linha, nomes ...string) string {
	for _, nome := range nomes {
		if v := strings.TrimSpace(row[nome]); v != "" {
			return v
		}
	}
	return ""
}

func parseValor(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	s = strings.ReplaceAll(s, ",", ".")
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return v
}

func parseDataPlanilha(s string) time.Time {
	if s == "" {
		return time.Now().UTC()
	}
	// Formatos usuais: ISO e a forma de exibição que o Excel dá às datas.
	for _, layout := range []string{"2006-01-02", "02/01/2006", "01-02-06"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Now().UTC()
}
