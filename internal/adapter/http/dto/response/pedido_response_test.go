package response

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/Luke2905/sistema-avivar/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromPedido(t *testing.T) {
	data := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	pedido := entities.Pedido{
		ID:                  7,
		NumPedidoPlataforma: "SHP-123",
		NomeCliente:         "Maria",
		PlataformaOrigem:    "Shopee",
		ValorTotal:          decimal.NewFromFloat(77.20),
		Status:              entities.StatusProducao,
		DataPedido:          data,
		Itens: []entities.PedidoItem{
			{ID: 1, IDProduto: 10, SKUProduto: "CAN-001", NomeProduto: "Caneca", Quantidade: 2, ValorUnitario: decimal.NewFromFloat(25.10)},
			{ID: 2, IDProduto: 11, SKUProduto: "CAM-001", NomeProduto: "Camiseta", Quantidade: 1, ValorUnitario: decimal.NewFromInt(27)},
		},
	}

	resp := FromPedido(pedido)

	if resp.ID != 7 || resp.Status != "PRODUCAO" || resp.Plataforma != "Shopee" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.ResumoItens != "2x Caneca, 1x Camiseta" {
		t.Fatalf("unexpected resumo: %q", resp.ResumoItens)
	}
	if len(resp.Itens) != 2 {
		t.Fatalf("expected 2 itens, got %d", len(resp.Itens))
	}
	if !resp.Itens[0].Subtotal.Equal(decimal.NewFromFloat(50.20)) {
		t.Fatalf("unexpected subtotal: %s", resp.Itens[0].Subtotal)
	}
}

func TestFromPedidoOmitsOptionalFields(t *testing.T) {
	resp := FromPedido(entities.Pedido{ID: 1, Status: entities.StatusEntrada})

	b, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if _, present := m["num_nota_fiscal"]; present {
		t.Fatalf("num_nota_fiscal should be omitted: %s", b)
	}
	if _, present := m["responsavel_producao"]; present {
		t.Fatalf("responsavel_producao should be omitted: %s", b)
	}
	itens, ok := m["itens"].([]any)
	if !ok || len(itens) != 0 {
		t.Fatalf("itens should be an empty array: %s", b)
	}
}
