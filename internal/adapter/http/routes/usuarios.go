package routes

import (
	"github.com/Luke2905/sistema-avivar/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathUsuarios = "/usuarios"

func addUsuarioRoutes(rg *gin.RouterGroup, usuarioHandler *handlers.UsuarioHandler) {
	usuarios := rg.Group(PathUsuarios)
	{
		usuarios.POST("", usuarioHandler.CreateUsuario)
		usuarios.GET("", usuarioHandler.ListUsuarios)
		usuarios.PUT("/:id", usuarioHandler.UpdateUsuario)
		usuarios.DELETE("/:id", usuarioHandler.DeleteUsuario)
	}
}
