package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Luke2905/sistema-avivar/internal/adapter/http/handlers/mocks"
	"github.com/Luke2905/sistema-avivar/internal/domain/entities"
	"github.com/Luke2905/sistema-avivar/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestProducaoHandler_GerarOP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProducaoUseCase(ctrl)
		baixa := mocks.NewMockIBaixaEstoqueUseCase(ctrl)
		h := NewProducaoHandler(uc, baixa)

		r := gin.New()
		r.POST("/v1/producao/gerar", h.GerarOP)

		req := httptest.NewRequest(http.MethodPost, "/v1/producao/gerar", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("pedido fora da fase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProducaoUseCase(ctrl)
		baixa := mocks.NewMockIBaixaEstoqueUseCase(ctrl)
		h := NewProducaoHandler(uc, baixa)

		r := gin.New()
		r.POST("/v1/producao/gerar", h.GerarOP)

		uc.EXPECT().Gerar(gomock.Any(), int64(5)).Return(entities.ProducaoOrdem{}, usecase.ErrPedidoForaDaFase)

		req := httptest.NewRequest(http.MethodPost, "/v1/producao/gerar", bytes.NewBufferString(`{"id_pedido":5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("op duplicada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProducaoUseCase(ctrl)
		baixa := mocks.NewMockIBaixaEstoqueUseCase(ctrl)
		h := NewProducaoHandler(uc, baixa)

		r := gin.New()
		r.POST("/v1/producao/gerar", h.GerarOP)

		uc.EXPECT().Gerar(gomock.Any(), int64(5)).Return(entities.ProducaoOrdem{}, usecase.ErrOPDuplicada)

		req := httptest.NewRequest(http.MethodPost, "/v1/producao/gerar", bytes.NewBufferString(`{"id_pedido":5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProducaoUseCase(ctrl)
		baixa := mocks.NewMockIBaixaEstoqueUseCase(ctrl)
		h := NewProducaoHandler(uc, baixa)

		r := gin.New()
		r.POST("/v1/producao/gerar", h.GerarOP)

		uc.EXPECT().Gerar(gomock.Any(), int64(5)).Return(entities.ProducaoOrdem{
			ID:       15,
			IDPedido: 5,
			Codigo:   "OP-15",
			Status:   entities.OPAberta,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/producao/gerar", bytes.NewBufferString(`{"id_pedido":5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["codigo_barras"] != "OP-15" || body["status_op"] != "ABERTA" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}

func TestProducaoHandler_Scanner(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing codigo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProducaoUseCase(ctrl)
		baixa := mocks.NewMockIBaixaEstoqueUseCase(ctrl)
		h := NewProducaoHandler(uc, baixa)

		r := gin.New()
		r.POST("/v1/scanner", h.Scanner)

		req := httptest.NewRequest(http.MethodPost, "/v1/scanner", bytes.NewBufferString(`{"operador":"maria"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("codigo invalido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProducaoUseCase(ctrl)
		baixa := mocks.NewMockIBaixaEstoqueUseCase(ctrl)
		h := NewProducaoHandler(uc, baixa)

		r := gin.New()
		r.POST("/v1/scanner", h.Scanner)

		uc.EXPECT().ProcessarCodigo(gomock.Any(), "OP-abc", "maria").Return(usecase.LeituraScanner{}, usecase.ErrCodigoOPInvalido)

		req := httptest.NewRequest(http.MethodPost, "/v1/scanner", bytes.NewBufferString(`{"codigo":"OP-abc","operador":"maria"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("op not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProducaoUseCase(ctrl)
		baixa := mocks.NewMockIBaixaEstoqueUseCase(ctrl)
		h := NewProducaoHandler(uc, baixa)

		r := gin.New()
		r.POST("/v1/scanner", h.Scanner)

		uc.EXPECT().ProcessarCodigo(gomock.Any(), "OP-99", "").Return(usecase.LeituraScanner{}, usecase.ErrOPNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/scanner", bytes.NewBufferString(`{"codigo":"OP-99"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("inicio devolve itens do pedido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProducaoUseCase(ctrl)
		baixa := mocks.NewMockIBaixaEstoqueUseCase(ctrl)
		h := NewProducaoHandler(uc, baixa)

		r := gin.New()
		r.POST("/v1/scanner", h.Scanner)

		uc.EXPECT().ProcessarCodigo(gomock.Any(), "OP-15", "maria").Return(usecase.LeituraScanner{
			Ordem: entities.ProducaoOrdem{ID: 15, IDPedido: 5, Codigo: "OP-15", Status: entities.OPEmAndamento},
			Pedido: entities.Pedido{
				ID: 5,
				Itens: []entities.PedidoItem{
					{IDProduto: 10, NomeProduto: "Caneca Branca", Quantidade: 2, ValorUnitario: decimal.NewFromInt(25)},
				},
			},
			Acao:     "INICIO",
			Mensagem: "Produção iniciada: OP-15",
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/scanner", bytes.NewBufferString(`{"codigo":"OP-15","operador":"maria"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["acao"] != "INICIO" {
			t.Fatalf("unexpected acao: %+v", body)
		}
		itens, ok := body["itens"].([]any)
		if !ok || len(itens) != 1 {
			t.Fatalf("expected 1 item, got %+v", body["itens"])
		}
	})

	t.Run("fim nao devolve itens", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProducaoUseCase(ctrl)
		baixa := mocks.NewMockIBaixaEstoqueUseCase(ctrl)
		h := NewProducaoHandler(uc, baixa)

		r := gin.New()
		r.POST("/v1/scanner", h.Scanner)

		uc.EXPECT().ProcessarCodigo(gomock.Any(), "OP-15", "").Return(usecase.LeituraScanner{
			Ordem:    entities.ProducaoOrdem{ID: 15, IDPedido: 5, Codigo: "OP-15", Status: entities.OPConcluida},
			Acao:     "FIM",
			Mensagem: "Produção concluída: OP-15",
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/scanner", bytes.NewBufferString(`{"codigo":"OP-15"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["acao"] != "FIM" {
			t.Fatalf("unexpected acao: %+v", body)
		}
		if _, present := body["itens"]; present {
			t.Fatalf("itens should be omitted on FIM: %+v", body)
		}
	})
}

func TestProducaoHandler_BaixarEstoque(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProducaoUseCase(ctrl)
		baixa := mocks.NewMockIBaixaEstoqueUseCase(ctrl)
		h := NewProducaoHandler(uc, baixa)

		r := gin.New()
		r.POST("/v1/producao/:id/baixar-estoque", h.BaixarEstoque)

		baixa.EXPECT().BaixarEstoque(gomock.Any(), int64(5)).Return(4, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/producao/5/baixar-estoque", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["insumos_baixados"] != float64(4) {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("saldo insuficiente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProducaoUseCase(ctrl)
		baixa := mocks.NewMockIBaixaEstoqueUseCase(ctrl)
		h := NewProducaoHandler(uc, baixa)

		r := gin.New()
		r.POST("/v1/producao/:id/baixar-estoque", h.BaixarEstoque)

		baixa.EXPECT().BaixarEstoque(gomock.Any(), int64(5)).Return(0, fmt.Errorf("%w: Malha PP", usecase.ErrSaldoInsuficiente))

		req := httptest.NewRequest(http.MethodPost, "/v1/producao/5/baixar-estoque", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		mensagem, _ := body["mensagem"].(string)
		if !strings.Contains(mensagem, "Malha PP") {
			t.Fatalf("mensagem should name the blocking insumo: %q", mensagem)
		}
	})
}

func TestProducaoHandler_DeleteOP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIProducaoUseCase(ctrl)
	baixa := mocks.NewMockIBaixaEstoqueUseCase(ctrl)
	h := NewProducaoHandler(uc, baixa)

	r := gin.New()
	r.DELETE("/v1/producao/:id", h.DeleteOP)

	uc.EXPECT().Excluir(gomock.Any(), int64(15)).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/producao/15", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}
