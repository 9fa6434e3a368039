package handlers

import (
	"errors"
	"net/http"

	request "github.com/Luke2905/sistema-avivar/internal/adapter/http/dto/request"
	"github.com/Luke2905/sistema-avivar/internal/usecase"
	"github.com/Luke2905/sistema-avivar/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidDespesaPayload = pkg.NewDomainErrorSimple("INVALID_DESPESA_INPUT", "Dados da despesa inválidos", http.StatusBadRequest)

// FinanceiroHandler expõe o painel de KPIs, o extrato unificado e o CRUD de
// despesas manuais.
type FinanceiroHandler struct {
	usecase usecase.IFinanceiroUseCase
}

func NewFinanceiroHandler(uc usecase.IFinanceiroUseCase) *FinanceiroHandler {
	return &FinanceiroHandler{usecase: uc}
}

func (h *FinanceiroHandler) Resumo(c *gin.Context) {
	resumo, err := h.usecase.Resumo(c.Request.Context())
	if err != nil {
		appErr := mapFinanceiroError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, resumo)
}

func (h *FinanceiroHandler) Extrato(c *gin.Context) {
	extrato, err := h.usecase.Extrato(c.Request.Context())
	if err != nil {
		appErr := mapFinanceiroError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, extrato)
}

func (h *FinanceiroHandler) CreateDespesa(c *gin.Context) {
	var payload request.DespesaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDespesaPayload.HTTPStatus, errInvalidDespesaPayload.ToHTTPError())
		return
	}

	despesa, err := h.usecase.CriarDespesa(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapFinanceiroError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, despesa)
}

func (h *FinanceiroHandler) UpdateDespesa(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var payload request.DespesaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDespesaPayload.HTTPStatus, errInvalidDespesaPayload.ToHTTPError())
		return
	}

	despesa := payload.ToEntity()
	despesa.ID = id
	atualizada, err := h.usecase.AtualizarDespesa(c.Request.Context(), despesa)
	if err != nil {
		appErr := mapFinanceiroError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, atualizada)
}

// UpdateDespesaStatus liga/desliga a flag pago de uma despesa.
func (h *FinanceiroHandler) UpdateDespesaStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var payload request.DespesaStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDespesaPayload.HTTPStatus, errInvalidDespesaPayload.ToHTTPError())
		return
	}

	despesa, err := h.usecase.MarcarPago(c.Request.Context(), id, *payload.Pago)
	if err != nil {
		appErr := mapFinanceiroError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, despesa)
}

func (h *FinanceiroHandler) DeleteDespesa(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.usecase.ExcluirDespesa(c.Request.Context(), id); err != nil {
		appErr := mapFinanceiroError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapFinanceiroError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrDespesaInvalida):
		return pkg.NewDomainErrorSimple("INVALID_DESPESA_INPUT", "Dados da despesa inválidos", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDespesaNotFound):
		return pkg.NewDomainErrorSimple("DESPESA_NOT_FOUND", "Despesa não encontrada", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Erro interno", err, http.StatusInternalServerError)
	}
}
