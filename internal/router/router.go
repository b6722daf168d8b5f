package router

import (
	"time"

	"github.com/Jonathancraxker/api-ecoparking/internal/config"
	"github.com/Jonathancraxker/api-ecoparking/internal/handler"
	"github.com/Jonathancraxker/api-ecoparking/internal/middleware"
	"github.com/Jonathancraxker/api-ecoparking/internal/model"
	"github.com/Jonathancraxker/api-ecoparking/internal/repository"
	"github.com/Jonathancraxker/api-ecoparking/internal/service"
	"github.com/Jonathancraxker/api-ecoparking/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.FrontendURL))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	citaRepo := repository.NewCitaRepository(db)
	invitadoRepo := repository.NewInvitadoRepository(db)
	qrRepo := repository.NewQRRepository(db)
	reporteRepo := repository.NewReporteRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	citaSvc := service.NewCitaService(citaRepo, cfg.BaseURL, dispatcher)
	invitadoSvc := service.NewInvitadoService(invitadoRepo)
	qrSvc := service.NewQRService(qrRepo, citaRepo, cfg.Location())
	reporteSvc := service.NewReporteService(reporteRepo, citaRepo, invitadoRepo, cfg.PDFStoragePath)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(authSvc)
	citasH := handler.NewCitasHandler(citaSvc)
	invitadosH := handler.NewInvitadosHandler(invitadoSvc)
	qrH := handler.NewQRHandler(qrSvc, reporteSvc, cfg.FrontendURL)
	reportesH := handler.NewReportesHandler(reporteSvc)
	adminH := handler.NewAdminHandler(rdb)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Scanner entry point — the doorman's reader is not authenticated; the
	// token itself is the credential.
	r.GET("/qr/validar/:token", qrH.Validar)

	// Auth (public)
	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/registro", authH.Registrar)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)

	citas := r.Group("/citas", jwtMW)
	{
		citas.GET("", middleware.RequireRole(model.TipoAdministrador), citasH.ListarTodas)
		citas.GET("/mis-citas", citasH.MisCitas)
		citas.GET("/:id", citasH.Obtener)
		citas.GET("/:id/invitados", invitadosH.ListarPorCita)
		citas.POST("", citasH.Registrar)
		citas.PATCH("/:id", citasH.Actualizar)
		citas.DELETE("/:id", citasH.Eliminar)
	}

	invitados := r.Group("/invitados", jwtMW)
	{
		invitados.GET("/:id", invitadosH.Obtener)
		invitados.POST("", invitadosH.Registrar)
		invitados.PATCH("/:id", invitadosH.Actualizar)
		invitados.DELETE("/:id", invitadosH.Eliminar)
	}

	usuarios := r.Group("/usuarios", jwtMW, middleware.RequireRole(model.TipoAdministrador))
	{
		usuarios.GET("", usuariosH.Listar)
		usuarios.GET("/:id", usuariosH.Obtener)
		usuarios.PATCH("/:id", usuariosH.Actualizar)
		usuarios.DELETE("/:id", usuariosH.Eliminar)
	}

	reportes := r.Group("/reportes", jwtMW, middleware.RequireRole(model.TipoAdministrador))
	{
		reportes.GET("", reportesH.Listar)
		reportes.POST("", reportesH.Registrar)
		reportes.GET("/:id/pdf", reportesH.DescargarPDF)
	}

	admin := r.Group("/admin", jwtMW, middleware.RequireRole(model.TipoAdministrador))
	{
		admin.GET("/dlq/invitaciones", adminH.EstadoDLQ)
		admin.POST("/dlq/invitaciones/reencolar", adminH.ReencolarDLQ)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
