package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	response "github.com/Luke2905/sistema-avivar/internal/adapter/http/dto/response"
	"github.com/Luke2905/sistema-avivar/internal/usecase"
	"github.com/Luke2905/sistema-avivar/pkg"

	"github.com/gin-gonic/gin"
)

// PagamentoHandler handles HTTP requests for pagamentos de pedidos.
type PagamentoHandler struct {
	usecase usecase.ICobrancaUseCase
}

func NewPagamentoHandler(uc usecase.ICobrancaUseCase) *PagamentoHandler {
	return &PagamentoHandler{usecase: uc}
}

// CreatePagamento creates/approves a payment for the pedido in the path.
func (h *PagamentoHandler) CreatePagamento(c *gin.Context) {
	pedidoID, ok := paramID(c, "id")
	if !ok {
		return
	}
	log.Printf("[pagamento][handler] create start pedido_id=%d", pedidoID)
	mockMode := isPaymentGatewayMockEnabled()
	mpPayload, err := readMPPayload(c)
	if err != nil {
		if mockMode {
			log.Printf("[pagamento][handler] payload invalid in mock mode; fallback to empty payload pedido_id=%d err=%v", pedidoID, err)
			mpPayload = json.RawMessage("{}")
		} else {
			log.Printf("[pagamento][handler] invalid payload pedido_id=%d err=%v", pedidoID, err)
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Requisição inválida", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), pedidoID, mpPayload)
	if err != nil {
		log.Printf("[pagamento][handler] create failed pedido_id=%d err=%v", pedidoID, err)
		appErr := mapPagamentoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[pagamento][handler] create success pedido_id=%d payment_id=%s status=%s", pedidoID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromPagamento(created))
}

// GetPagamentoByPedido returns the latest payment for a pedido.
func (h *PagamentoHandler) GetPagamentoByPedido(c *gin.Context) {
	pedidoID, ok := paramID(c, "id")
	if !ok {
		return
	}
	log.Printf("[pagamento][handler] get-by-pedido start pedido_id=%d", pedidoID)

	pagamentos, err := h.usecase.ListByPedido(c.Request.Context(), pedidoID)
	if err != nil {
		log.Printf("[pagamento][handler] get-by-pedido failed pedido_id=%d err=%v", pedidoID, err)
		appErr := mapPagamentoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if len(pagamentos) == 0 {
		log.Printf("[pagamento][handler] get-by-pedido not-found pedido_id=%d", pedidoID)
		appErr := pkg.NewDomainErrorSimple("PAGAMENTO_NOT_FOUND", "Pagamento não encontrado", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := pagamentos[0]
	for _, p := range pagamentos[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	log.Printf("[pagamento][handler] get-by-pedido success pedido_id=%d payment_id=%s status=%s", pedidoID, latest.ID, latest.Status)

	c.JSON(http.StatusOK, response.FromPagamento(latest))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapPagamentoError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Requisição inválida", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPedidoNotFound):
		return pkg.NewDomainErrorSimple("PEDIDO_NOT_FOUND", "Pedido não encontrado", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPedidoCanceladoPagamento):
		return pkg.NewDomainErrorSimple("PEDIDO_CANCELADO", "Pedido cancelado não pode ser cobrado", http.StatusConflict)
	case errors.Is(err, usecase.ErrPagamentoNotFound):
		return pkg.NewDomainErrorSimple("PAGAMENTO_NOT_FOUND", "Pagamento não encontrado", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Erro interno", err, http.StatusInternalServerError)
	}
}

func isPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	v = strings.ToLower(strings.TrimSpace(os.Getenv("MERCADOPAGO_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	return false
}
