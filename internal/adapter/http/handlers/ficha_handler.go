package handlers

import (
	"errors"
	"net/http"

	request "github.com/Luke2905/sistema-avivar/internal/adapter/http/dto/request"
	response "github.com/Luke2905/sistema-avivar/internal/adapter/http/dto/response"
	"github.com/Luke2905/sistema-avivar/internal/usecase"
	"github.com/Luke2905/sistema-avivar/pkg"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// Margem padrão sugerida pela tela de precificação.
var margemPadrao = decimal.NewFromInt(100)

// FichaHandler expõe a ficha técnica e a análise de custo/margem.

type FichaHandler struct {
	usecase usecase.IFichaUseCase
}

func NewFichaHandler(uc usecase.IFichaUseCase) *FichaHandler {
	return &FichaHandler{usecase: uc}
}

func (h *FichaHandler) ListarFicha(c *gin.Context) {
	produtoID, ok := paramID(c, "produtoId")
	if !ok {
		return
	}

	linhas, err := h.usecase.Listar(c.Request.Context(), produtoID)
	if err != nil {
		appErr := mapFichaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFichaItens(linhas))
}

func (h *FichaHandler) AdicionarLinha(c *gin.Context) {
	var payload request.FichaAddRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_FICHA_INPUT", "Dados da ficha inválidos", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	linha, err := h.usecase.Adicionar(c.Request.Context(), payload.IDProduto, payload.IDMateria, payload.QtdConsumo)
	if err != nil {
		appErr := mapFichaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromFichaItem(linha))
}

func (h *FichaHandler) RemoverLinha(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.usecase.Remover(c.Request.Context(), id); err != nil {
		appErr := mapFichaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// Analisar roda a calculadora de precificação. A margem alvo vem no query
// param `margem` (percentual); ausente, usa a margem padrão da tela.
func (h *FichaHandler) Analisar(c *gin.Context) {
	produtoID, ok := paramID(c, "produtoId")
	if !ok {
		return
	}

	margem := margemPadrao
	if raw := c.Query("margem"); raw != "" {
		parsed, err := decimal.NewFromString(raw)
		if err != nil || parsed.IsNegative() {
			appErr := pkg.NewDomainErrorSimple("INVALID_MARGEM", "Margem inválida", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		margem = parsed
	}

	analise, err := h.usecase.Analisar(c.Request.Context(), produtoID, margem)
	if err != nil {
		appErr := mapFichaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, analise)
}

func mapFichaError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrConsumoInvalido):
		return pkg.NewDomainErrorSimple("INVALID_FICHA_INPUT", "Dados da ficha inválidos", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProdutoNotFound):
		return pkg.NewDomainErrorSimple("PRODUTO_NOT_FOUND", "Produto não encontrado", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMateriaNotFound):
		return pkg.NewDomainErrorSimple("MATERIA_NOT_FOUND", "Insumo não encontrado", http.StatusNotFound)
	case errors.Is(err, usecase.ErrFichaNotFound):
		return pkg.NewDomainErrorSimple("FICHA_NOT_FOUND", "Linha da ficha não encontrada", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Erro interno", err, http.StatusInternalServerError)
	}
}
