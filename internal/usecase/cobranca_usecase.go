package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Luke2905/sistema-avivar/internal/domain/entities"
	"github.com/Luke2905/sistema-avivar/internal/usecase/interfaces"
)

var (
	ErrPagamentoNotFound              = errors.New("pagamento nao encontrado")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrPedidoCanceladoPagamento       = errors.New("pedido cancelado nao pode ser cobrado")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// ICobrancaUseCase encapsulates the "create and process payment" behavior for
// balcão pedidos.
//
// Requested behavior:
//   - Create an item in the payment table and approve it as paid.

type ICobrancaUseCase interface {
	CreateAndApprove(ctx context.Context, pedidoID int64, mpPayload json.RawMessage) (entities.Pagamento, error)
	GetByID(ctx context.Context, id string) (entities.Pagamento, error)
	ListByPedido(ctx context.Context, pedidoID int64) ([]entities.Pagamento, error)
}

type CobrancaUseCase struct {
	repo       interfaces.IPagamentoRepository
	pedidoRepo interfaces.IPedidoRepository
	gateway    interfaces.IPaymentGateway
}

var _ ICobrancaUseCase = (*CobrancaUseCase)(nil)

func NewCobrancaUseCase(repo interfaces.IPagamentoRepository, pedidoRepo interfaces.IPedidoRepository, gateway interfaces.IPaymentGateway) *CobrancaUseCase {
	return &CobrancaUseCase{repo: repo, pedidoRepo: pedidoRepo, gateway: gateway}
}

func (u *CobrancaUseCase) CreateAndApprove(ctx context.Context, pedidoID int64, mpPayload json.RawMessage) (entities.Pagamento, error) {
	log.Printf("[pagamento][usecase] create-and-approve start pedido_id=%d payload_len=%d", pedidoID, len(mpPayload))
	mockMode := isPaymentGatewayMockEnabled()
	if pedidoID <= 0 {
		return entities.Pagamento{}, ErrPedidoNotFound
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			log.Printf("[pagamento][usecase] invalid payload pedido_id=%d", pedidoID)
			return entities.Pagamento{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil && !mockMode {
		return entities.Pagamento{}, errors.New("payment gateway not configured")
	}

	pedido, err := u.pedidoRepo.GetByID(ctx, pedidoID)
	if err != nil {
		log.Printf("[pagamento][usecase] failed loading pedido pedido_id=%d err=%v", pedidoID, err)
		return entities.Pagamento{}, err
	}
	if pedido.ID == 0 {
		return entities.Pagamento{}, ErrPedidoNotFound
	}
	if pedido.Status == entities.StatusCancelado {
		return entities.Pagamento{}, ErrPedidoCanceladoPagamento
	}
	log.Printf("[pagamento][usecase] pedido loaded pedido_id=%d status=%s valor_total=%s", pedido.ID, pedido.Status, pedido.ValorTotal)

	refPedido := strconv.FormatInt(pedido.ID, 10)
	valor, _ := pedido.ValorTotal.Float64()

	// Ensure basic linkage with the pedido when the caller didn't provide it.
	// Mercado Pago uses external_reference to help reconcile events.
	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err == nil {
		if !mockMode && !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Printf("[pagamento][usecase] missing payment_method_id pedido_id=%d", pedidoID)
			return entities.Pagamento{}, ErrInvalidMPPayload
		}
		if !mockMode {
			normalizeSandboxPayerFromUserID(reqMap)
			ensurePayerDefaults(reqMap)
			if !hasPayer(reqMap) {
				log.Printf("[pagamento][usecase] missing/invalid payer pedido_id=%d", pedidoID)
				return entities.Pagamento{}, ErrInvalidMPPayload
			}
		}

		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = refPedido
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Pedido %s - %s", refPedido, pedido.NomeCliente)
		}

		// The source of truth for amount is the pedido in DB.
		reqMap["transaction_amount"] = valor
		if b, err := json.Marshal(reqMap); err == nil {
			mpPayload = b
		}
	} else {
		log.Printf("[pagamento][usecase] payload unmarshal failed pedido_id=%d err=%v", pedidoID, err)
	}

	providerPaymentID := ""
	providerResp := json.RawMessage(nil)

	if mockMode {
		log.Printf("[pagamento][usecase] mock mode enabled; skipping external payment gateway pedido_id=%d", pedidoID)
		providerPaymentID = strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		now := time.Now().UTC().Format(time.RFC3339Nano)
		mockResp := map[string]any{}
		if json.Valid(mpPayload) {
			_ = json.Unmarshal(mpPayload, &mockResp)
		}
		mockResp["id"] = providerPaymentID
		mockResp["status"] = "approved"
		mockResp["status_detail"] = "accredited"
		mockResp["date_created"] = now
		mockResp["date_approved"] = now
		if _, ok := mockResp["external_reference"]; !ok {
			mockResp["external_reference"] = refPedido
		}
		if _, ok := mockResp["transaction_amount"]; !ok {
			mockResp["transaction_amount"] = valor
		}
		b, mErr := json.Marshal(mockResp)
		if mErr != nil {
			return entities.Pagamento{}, mErr
		}
		providerResp = b
	} else {
		log.Printf("[pagamento][usecase] calling payment gateway pedido_id=%d", pedidoID)
		var providerStatus string
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, mpPayload)
		if err != nil {
			log.Printf("[pagamento][usecase] payment gateway failed pedido_id=%d err=%v", pedidoID, err)
			switch {
			case isGatewayCustomerNotFound(err):
				return entities.Pagamento{}, ErrPaymentGatewayCustomerNotFound
			case isGatewayInvalidUsers(err):
				return entities.Pagamento{}, ErrPaymentGatewayInvalidUsers
			case isGatewayUnauthorized(err):
				return entities.Pagamento{}, ErrPaymentGatewayUnauthorized
			case isGatewayBadRequest(err):
				return entities.Pagamento{}, ErrPaymentGatewayBadRequest
			}
			return entities.Pagamento{}, err
		}
		log.Printf("[pagamento][usecase] payment gateway success pedido_id=%d provider_payment_id=%s provider_status=%s", pedidoID, providerPaymentID, providerStatus)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[pagamento][usecase] provider response unmarshal failed pedido_id=%d err=%v", pedidoID, err)
	}

	p := entities.Pagamento{
		ID:           providerPaymentID,
		IDPedido:     pedido.ID,
		Date:         time.Now().UTC(),
		Status:       entities.PagamentoAprovado,
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[pagamento][usecase] payment repository create failed pedido_id=%d payment_id=%s err=%v", pedidoID, p.ID, err)
		return entities.Pagamento{}, err
	}
	log.Printf("[pagamento][usecase] create-and-approve success pedido_id=%d payment_id=%s status=%s", pedidoID, created.ID, created.Status)
	return created, nil
}

func (u *CobrancaUseCase) GetByID(ctx context.Context, id string) (entities.Pagamento, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Pagamento{}, errors.New("invalid payment id")
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Pagamento{}, err
	}
	if p.ID == "" {
		return entities.Pagamento{}, ErrPagamentoNotFound
	}
	return p, nil
}

func (u *CobrancaUseCase) ListByPedido(ctx context.Context, pedidoID int64) ([]entities.Pagamento, error) {
	if pedidoID <= 0 {
		return nil, ErrPedidoNotFound
	}
	return u.repo.ListByPedido(ctx, pedidoID)
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	v, ok := m["payer"]
	if !ok {
		return false
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// In sandbox, either payer.id or payer.email may be used.
	// Fill email only when both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if email := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")); email != "" {
			payer["email"] = email
		} else if strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-") {
			// Sandbox-safe fallback recommended by Mercado Pago examples.
			payer["email"] = "test_user_br@testuser.com"
		}
	}
}

func normalizeSandboxPayerFromUserID(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		return
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}

	accessToken := strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if !strings.HasPrefix(accessToken, "TEST-") {
		return
	}

	configuredUserID := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_USER_ID"))
	configuredEmail := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL"))
	if configuredUserID == "" || configuredEmail == "" {
		return
	}

	rawID := strings.TrimSpace(fmt.Sprintf("%v", payer["id"]))
	if rawID == "" || rawID == "<nil>" || rawID != configuredUserID {
		return
	}

	payer["email"] = configuredEmail
	delete(payer, "id")
	log.Printf("[pagamento][usecase] mapped sandbox payer user_id to payer.email")
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

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
