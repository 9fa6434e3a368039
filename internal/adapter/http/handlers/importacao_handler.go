package handlers

import (
	"bytes"
	"errors"
	"net/http"

	request "github.com/Luke2905/sistema-avivar/internal/adapter/http/dto/request"
	response "github.com/Luke2905/sistema-avivar/internal/adapter/http/dto/response"
	"github.com/Luke2905/sistema-avivar/internal/usecase"
	"github.com/Luke2905/sistema-avivar/pkg"

	"github.com/gin-gonic/gin"
)

// ImportacaoHandler recebe lotes de pedidos de planilha, já agrupados pelo
// cliente ou como arquivo xlsx cru.

type ImportacaoHandler struct {
	usecase usecase.IImportacaoUseCase
}

func NewImportacaoHandler(uc usecase.IImportacaoUseCase) *ImportacaoHandler {
	return &ImportacaoHandler{usecase: uc}
}

func (h *ImportacaoHandler) Importar(c *gin.Context) {
	var payload request.ImportacaoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_IMPORT_INPUT", "Lote de importação inválido", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	resultado, err := h.usecase.Importar(c.Request.Context(), payload.ToEntities())
	if err != nil {
		appErr := mapImportacaoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromResultadoImportacao(resultado))
}

// ImportarPlanilha aceita o corpo cru do arquivo xlsx.
func (h *ImportacaoHandler) ImportarPlanilha(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil || len(raw) == 0 {
		appErr := pkg.NewDomainErrorSimple("INVALID_IMPORT_INPUT", "Arquivo de planilha vazio", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	resultado, err := h.usecase.ImportarPlanilha(c.Request.Context(), bytes.NewReader(raw))
	if err != nil {
		appErr := mapImportacaoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromResultadoImportacao(resultado))
}

func mapImportacaoError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrImportacaoVazia):
		return pkg.NewDomainErrorSimple("IMPORT_EMPTY", "Nenhum pedido para importar", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPlanilhaInvalida):
		return pkg.NewDomainErrorSimple("INVALID_SPREADSHEET", "Planilha inválida ou corrompida", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPlanilhaSemLinhas):
		return pkg.NewDomainErrorSimple("EMPTY_SPREADSHEET", "Planilha sem linhas de dados", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Erro interno", err, http.StatusInternalServerError)
	}
}
