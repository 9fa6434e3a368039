package routes

import (
	"log"
	"os"
	"strconv"

	_ "github.com/Luke2905/sistema-avivar/docs" // This will be auto-generated
	"github.com/Luke2905/sistema-avivar/internal/adapter/http/handlers"
	repository2 "github.com/Luke2905/sistema-avivar/internal/adapter/persistence/repository"
	"github.com/Luke2905/sistema-avivar/internal/infrastructure/database"
	"github.com/Luke2905/sistema-avivar/internal/infrastructure/payments"
	"github.com/Luke2905/sistema-avivar/internal/usecase"
	"github.com/Luke2905/sistema-avivar/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if enabled, _ := strconv.ParseBool(os.Getenv("PROMETHEUS_ENABLED")); enabled {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	pedidoRepo := repository2.NewPedidoDynamoRepository(ddb)
	produtoRepo := repository2.NewProdutoDynamoRepository(ddb)
	estoqueRepo := repository2.NewEstoqueDynamoRepository(ddb)
	fichaRepo := repository2.NewFichaDynamoRepository(ddb)
	producaoRepo := repository2.NewProducaoDynamoRepository(ddb)
	compraRepo := repository2.NewCompraDynamoRepository(ddb)
	despesaRepo := repository2.NewDespesaDynamoRepository(ddb)
	usuarioRepo := repository2.NewUsuarioDynamoRepository(ddb)
	pagamentoRepo := repository2.NewPagamentoDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	baixaUseCase := usecase.NewBaixaEstoqueUseCase(pedidoRepo, fichaRepo, estoqueRepo)
	pedidoUseCase := usecase.NewPedidoUseCase(pedidoRepo, produtoRepo)
	statusUseCase := usecase.NewPedidoStatusUseCase(pedidoRepo, baixaUseCase)
	importacaoUseCase := usecase.NewImportacaoUseCase(pedidoRepo, produtoRepo)
	produtoUseCase := usecase.NewProdutoUseCase(produtoRepo)
	estoqueUseCase := usecase.NewEstoqueUseCase(estoqueRepo)
	fichaUseCase := usecase.NewFichaUseCase(fichaRepo, produtoRepo, estoqueRepo)
	compraUseCase := usecase.NewCompraUseCase(compraRepo, estoqueRepo)
	producaoUseCase := usecase.NewProducaoUseCase(producaoRepo, pedidoRepo)
	financeiroUseCase := usecase.NewFinanceiroUseCase(pedidoRepo, despesaRepo, compraRepo)
	usuarioUseCase := usecase.NewUsuarioUseCase(usuarioRepo)
	cobrancaUseCase := usecase.NewCobrancaUseCase(pagamentoRepo, pedidoRepo, paymentGateway)
	predicaoUseCase := usecase.NewPredicaoUseCase(pedidoRepo)

	pedidoHandler := handlers.NewPedidoHandler(pedidoUseCase)
	statusHandler := handlers.NewPedidoStatusHandler(statusUseCase)
	importacaoHandler := handlers.NewImportacaoHandler(importacaoUseCase)
	produtoHandler := handlers.NewProdutoHandler(produtoUseCase)
	estoqueHandler := handlers.NewEstoqueHandler(estoqueUseCase)
	fichaHandler := handlers.NewFichaHandler(fichaUseCase)
	compraHandler := handlers.NewCompraHandler(compraUseCase)
	producaoHandler := handlers.NewProducaoHandler(producaoUseCase, baixaUseCase)
	financeiroHandler := handlers.NewFinanceiroHandler(financeiroUseCase)
	usuarioHandler := handlers.NewUsuarioHandler(usuarioUseCase)
	pagamentoHandler := handlers.NewPagamentoHandler(cobrancaUseCase)
	predicaoHandler := handlers.NewPredicaoHandler(predicaoUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPedidoRoutes(v1, pedidoHandler, statusHandler, importacaoHandler, pagamentoHandler)
	addCatalogoRoutes(v1, produtoHandler, fichaHandler)
	addEstoqueRoutes(v1, estoqueHandler, compraHandler)
	addProducaoRoutes(v1, producaoHandler)
	addFinanceiroRoutes(v1, financeiroHandler, predicaoHandler)
	addUsuarioRoutes(v1, usuarioHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
