package router

import (
	"time"

	"petlovers/internal/config"
	"petlovers/internal/handler"
	"petlovers/internal/middleware"
	"petlovers/internal/repository"
	"petlovers/internal/service"
	"petlovers/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	clienteRepo := repository.NewClienteRepository(db)
	petRepo := repository.NewPetRepository(db)
	produtoRepo := repository.NewProdutoRepository(db)
	servicoRepo := repository.NewServicoRepository(db)
	consumoRepo := repository.NewConsumoRepository(db)
	relatorioRepo := repository.NewRelatorioRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	clienteSvc := service.NewClienteService(clienteRepo)
	petSvc := service.NewPetService(petRepo, clienteRepo)
	produtoSvc := service.NewProdutoService(produtoRepo)
	servicoSvc := service.NewServicoService(servicoRepo)
	consumoSvc := service.NewConsumoService(consumoRepo, clienteRepo, petRepo, produtoRepo, servicoRepo, dispatcher)
	relatorioSvc := service.NewRelatorioService(
		relatorioRepo, clienteRepo, produtoRepo, servicoRepo,
		rdb, time.Duration(cfg.CacheTTLSeconds)*time.Second,
	)

	// ── Handlers ─────────────────────────────────────────────────────────────
	clientesH := handler.NewClientesHandler(clienteSvc)
	petsH := handler.NewPetsHandler(petSvc)
	produtosH := handler.NewProdutosHandler(produtoSvc)
	servicosH := handler.NewServicosHandler(servicoSvc)
	consumosH := handler.NewConsumosHandler(consumoSvc)
	relatoriosH := handler.NewRelatoriosHandler(relatorioSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	api := r.Group("/api")
	{
		api.GET("", handler.BoasVindas())

		api.POST("/clientes", clientesH.Criar)
		api.GET("/clientes", clientesH.Listar)
		api.PUT("/clientes/:id", clientesH.Atualizar)
		api.DELETE("/clientes/:id", clientesH.Remover)

		api.POST("/pets", petsH.Criar)
		api.PUT("/pets/:id", petsH.Atualizar)
		api.DELETE("/pets/:id", petsH.Remover)

		api.POST("/produtos", produtosH.Criar)
		api.GET("/produtos", produtosH.Listar)
		api.PUT("/produtos/:id", produtosH.Atualizar)
		api.DELETE("/produtos/:id", produtosH.Remover)

		api.POST("/servicos", servicosH.Criar)
		api.GET("/servicos", servicosH.Listar)
		api.PUT("/servicos/:id", servicosH.Atualizar)
		api.DELETE("/servicos/:id", servicosH.Remover)

		api.POST("/consumos", consumosH.Registrar)

		relatorios := api.Group("/relatorios")
		{
			relatorios.GET("/top-clientes-quantidade", relatoriosH.TopClientesQuantidade)
			relatorios.GET("/top-clientes-valor", relatoriosH.TopClientesValor)
			relatorios.GET("/top-itens-consumidos", relatoriosH.TopItensConsumidos)
			relatorios.GET("/top-itens-por-pet", relatoriosH.TopItensPorPet)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
