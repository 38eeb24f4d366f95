package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"talentscout_backend/internal/config"
	"talentscout_backend/internal/controller"
	"talentscout_backend/internal/repository"
	"talentscout_backend/internal/service"
	"talentscout_backend/pkg/database"
	"talentscout_backend/pkg/logger"
	"talentscout_backend/pkg/monitoring"
	"talentscout_backend/pkg/security"
	"talentscout_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	DB       *gorm.DB
	services *services
}

type repositories struct {
	admin   *repository.AdminRepository
	session *repository.SessionRepository
	report  *repository.ReportRepository
}

type services struct {
	auth       *service.AuthService
	extraction *service.ExtractionService
	generation *service.GenerationService
	screening  *service.ScreeningService
	report     *service.ReportService
}

type controllers struct {
	screening *controller.ScreeningController
	admin     *controller.AdminController
	health    *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		admin:   repository.NewAdminRepository(db),
		session: repository.NewSessionRepository(db),
		report:  repository.NewReportRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	s.auth = service.NewAuthService(repos.admin, cfg)
	s.extraction = service.NewExtractionService()
	s.generation = service.NewGenerationService(cfg.AI)
	s.screening = service.NewScreeningService(repos.session, s.extraction, s.generation, cfg.AI.QuestionCount)
	s.report = service.NewReportService(repos.report)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		screening: controller.NewScreeningController(s.screening),
		admin:     controller.NewAdminController(s.auth, s.report),
		health:    controller.NewHealthController(db, s.generation.Live()),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 100
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// UpsertAdmin performs the out-of-band credential replacement and is only
// reachable from the CLI flags.
func (a *App) UpsertAdmin(username, password string) error {
	return a.services.auth.UpsertAdmin(username, password)
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	if err := database.BootstrapAdmin(db, &cfg.Admin); err != nil {
		logger.Log.Fatal("Failed to bootstrap admin account", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg)
	app.services = services
	controllers := app.initControllers(services, db)

	monitoring.Init()

	if services.generation.Live() {
		logger.Log.Info("Generation mode: live", zap.String("model", cfg.AI.Model))
	} else {
		logger.Log.Info("Generation mode: mock (GOOGLE_API_KEY not set)")
	}

	gin.SetMode(ginMode(cfg.Server.Mode))
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("talentscout", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	return app
}

func ginMode(mode string) string {
	switch mode {
	case "release":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
