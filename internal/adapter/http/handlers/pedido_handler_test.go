package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Luke2905/sistema-avivar/internal/adapter/http/handlers/mocks"
	"github.com/Luke2905/sistema-avivar/internal/domain/entities"
	"github.com/Luke2905/sistema-avivar/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestPedidoHandler_CreatePedido(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPedidoUseCase(ctrl)
		h := NewPedidoHandler(uc)

		r := gin.New()
		r.POST("/v1/pedidos", h.CreatePedido)

		req := httptest.NewRequest(http.MethodPost, "/v1/pedidos", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing nome_cliente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPedidoUseCase(ctrl)
		h := NewPedidoHandler(uc)

		r := gin.New()
		r.POST("/v1/pedidos", h.CreatePedido)

		req := httptest.NewRequest(http.MethodPost, "/v1/pedidos", bytes.NewBufferString(`{"itens":[{"id_produto":1,"quantidade":1}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase returns mapped error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPedidoUseCase(ctrl)
		h := NewPedidoHandler(uc)

		r := gin.New()
		r.POST("/v1/pedidos", h.CreatePedido)

		uc.EXPECT().Criar(gomock.Any(), gomock.Any()).Return(entities.Pedido{}, usecase.ErrProdutoNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/pedidos", bytes.NewBufferString(`{"nome_cliente":"Maria","itens":[{"id_produto":99,"quantidade":1}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPedidoUseCase(ctrl)
		h := NewPedidoHandler(uc)

		r := gin.New()
		r.POST("/v1/pedidos", h.CreatePedido)

		uc.EXPECT().Criar(gomock.Any(), gomock.Any()).Return(entities.Pedido{
			ID: 1, NomeCliente: "Maria", Status: entities.StatusEntrada,
			ValorTotal: decimal.NewFromInt(50),
			Itens:      []entities.PedidoItem{{IDProduto: 1, Quantidade: 2, ValorUnitario: decimal.NewFromInt(25)}},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/pedidos", bytes.NewBufferString(`{"nome_cliente":"Maria","itens":[{"id_produto":1,"quantidade":2}]}`))
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
		if body["id_pedido"] != float64(1) {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}

func TestPedidoHandler_GetPedido(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPedidoUseCase(ctrl)
		h := NewPedidoHandler(uc)

		r := gin.New()
		r.GET("/v1/pedidos/:id", h.GetPedido)

		req := httptest.NewRequest(http.MethodGet, "/v1/pedidos/abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPedidoUseCase(ctrl)
		h := NewPedidoHandler(uc)

		r := gin.New()
		r.GET("/v1/pedidos/:id", h.GetPedido)

		uc.EXPECT().Buscar(gomock.Any(), int64(9)).Return(entities.Pedido{}, usecase.ErrPedidoNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/pedidos/9", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPedidoUseCase(ctrl)
		h := NewPedidoHandler(uc)

		r := gin.New()
		r.GET("/v1/pedidos/:id", h.GetPedido)

		uc.EXPECT().Buscar(gomock.Any(), int64(1)).Return(entities.Pedido{ID: 1, NomeCliente: "Maria"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/pedidos/1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPedidoHandler_DeletePedido(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success returns no content", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPedidoUseCase(ctrl)
		h := NewPedidoHandler(uc)

		r := gin.New()
		r.DELETE("/v1/pedidos/:id", h.DeletePedido)

		uc.EXPECT().Excluir(gomock.Any(), int64(1)).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/pedidos/1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestPedidoHandler_RegistrarNotaFiscal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPedidoUseCase(ctrl)
		h := NewPedidoHandler(uc)

		r := gin.New()
		r.PATCH("/v1/pedidos/:id/nf", h.RegistrarNotaFiscal)

		uc.EXPECT().RegistrarNotaFiscal(gomock.Any(), int64(1), "NF-123").Return(nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/pedidos/1/nf", bytes.NewBufferString(`{"numero_nota":"NF-123"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("pedido not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPedidoUseCase(ctrl)
		h := NewPedidoHandler(uc)

		r := gin.New()
		r.PATCH("/v1/pedidos/:id/nf", h.RegistrarNotaFiscal)

		uc.EXPECT().RegistrarNotaFiscal(gomock.Any(), int64(9), "NF-1").Return(usecase.ErrPedidoNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/pedidos/9/nf", bytes.NewBufferString(`{"numero_nota":"NF-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
