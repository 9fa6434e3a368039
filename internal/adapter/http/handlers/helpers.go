package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Luke2905/sistema-avivar/internal/usecase"
	"github.com/Luke2905/sistema-avivar/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidID = pkg.NewDomainErrorSimple("INVALID_ID", "Identificador inválido", http.StatusBadRequest)

// paramID lê o parâmetro de rota como id numérico. Quando inválido, já
// responde 400 e devolve ok == false.
func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(errInvalidID.HTTPStatus, errInvalidID.ToHTTPError())
		return 0, false
	}
	return id, true
}

// saldoInsuficienteMensagem monta a mensagem exibida ao operador a partir do
// erro da baixa. O repositório embute o insumo bloqueante no erro
// ("estoque insuficiente: <insumo>"); o nome precisa chegar na tela.
func saldoInsuficienteMensagem(err error) string {
	mensagem := "Estoque insuficiente"
	prefixo := usecase.ErrSaldoInsuficiente.Error() + ": "
	if texto := err.Error(); strings.HasPrefix(texto, prefixo) {
		if insumo := strings.TrimSpace(strings.TrimPrefix(texto, prefixo)); insumo != "" {
			mensagem += ": " + insumo
		}
	}
	return mensagem
}
