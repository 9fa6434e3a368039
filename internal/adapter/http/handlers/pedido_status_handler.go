package handlers

import (
	"context"
	"errors"
	"net/http"

	request "github.com/Luke2905/sistema-avivar/internal/adapter/http/dto/request"
	response "github.com/Luke2905/sistema-avivar/internal/adapter/http/dto/response"
	"github.com/Luke2905/sistema-avivar/internal/domain/entities"
	"github.com/Luke2905/sistema-avivar/internal/usecase"
	"github.com/Luke2905/sistema-avivar/pkg"

	"github.com/gin-gonic/gin"
)

// PedidoStatusHandler expõe a máquina de estados do Kanban: avançar, voltar,
// cancelar e o PATCH direto de status.

type PedidoStatusHandler struct {
	usecase usecase.IPedidoStatusUseCase
}

func NewPedidoStatusHandler(uc usecase.IPedidoStatusUseCase) *PedidoStatusHandler {
	return &PedidoStatusHandler{usecase: uc}
}

func (h *PedidoStatusHandler) Avancar(c *gin.Context) {
	h.mover(c, h.usecase.Avancar)
}

func (h *PedidoStatusHandler) Voltar(c *gin.Context) {
	h.mover(c, h.usecase.Voltar)
}

func (h *PedidoStatusHandler) mover(
	c *gin.Context,
	move func(ctx context.Context, pedidoID int64) (usecase.ResultadoMovimento, error),
) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	resultado, err := move(c.Request.Context(), id)
	if err != nil {
		appErr := mapStatusError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.MovimentoResponse{
		Pedido:          response.FromPedido(resultado.Pedido),
		Movido:          resultado.Movido,
		NovoStatus:      string(resultado.Pedido.Status),
		InsumosBaixados: resultado.InsumosBaixados,
	})
}

func (h *PedidoStatusHandler) Cancelar(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	pedido, err := h.usecase.Cancelar(c.Request.Context(), id)
	if err != nil {
		appErr := mapStatusError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPedido(pedido))
}

func (h *PedidoStatusHandler) AtualizarStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var payload request.StatusUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_STATUS_INPUT", "Status inválido", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	pedido, err := h.usecase.AtualizarStatus(c.Request.Context(), id, entities.StatusPedido(payload.NovoStatus))
	if err != nil {
		appErr := mapStatusError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPedido(pedido))
}

func mapStatusError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrPedidoNotFound):
		return pkg.NewDomainErrorSimple("PEDIDO_NOT_FOUND", "Pedido não encontrado", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStatusInvalido), errors.Is(err, usecase.ErrPedidoCancelado):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Status inválido para esta operação", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSaldoInsuficiente):
		return pkg.NewDomainError("SALDO_INSUFICIENTE", saldoInsuficienteMensagem(err), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrFichaVazia):
		return pkg.NewDomainError("FICHA_VAZIA", "Produto do pedido sem ficha técnica cadastrada", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrPedidoSemItens):
		return pkg.NewDomainErrorSimple("PEDIDO_SEM_ITENS", "Pedido sem itens para baixar estoque", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Erro interno", err, http.StatusInternalServerError)
	}
}
