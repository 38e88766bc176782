package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"study_boost_backend/internal/config"
	"study_boost_backend/internal/controller"
	"study_boost_backend/internal/repository"
	"study_boost_backend/internal/service"
	"study_boost_backend/pkg/configwatcher"
	"study_boost_backend/pkg/database"
	"study_boost_backend/pkg/logger"
	"study_boost_backend/pkg/monitoring"
	"study_boost_backend/pkg/security"
	"study_boost_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	tracer          *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	store      repository.KVStore
	motivation *repository.MotivationRepository
}

type services struct {
	ai         *service.AIService
	auth       *service.AuthService
	storage    *service.StorageService
	store      *service.StoreService
	motivation *service.MotivationService
	tip        *service.TipService
	plan       *service.StudyPlanService
	tutor      *service.TutorService
	quiz       *service.QuizService
	flashcard  *service.FlashcardService
	calendar   *service.CalendarService
	writing    *service.WritingService
	mindMap    *service.MindMapService
	progress   *service.ProgressService
	notepad    *service.NotepadService
}

type controllers struct {
	auth       *controller.AuthController
	health     *controller.HealthController
	home       *controller.HomeController
	motivation *controller.MotivationController
	plan       *controller.StudyPlanController
	tutor      *controller.TutorController
	quiz       *controller.QuizController
	flashcard  *controller.FlashcardController
	calendar   *controller.CalendarController
	writing    *controller.WritingController
	mindMap    *controller.MindMapController
	progress   *controller.ProgressController
	notepad    *controller.NotepadController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *repositories {
	repos := &repositories{
		motivation: repository.NewMotivationRepository(db),
	}

	if cfg.Store.Type == "redis" {
		repos.store = repository.NewRedisStoreRepository(rdb)
	} else {
		repos.store = repository.NewStoreRepository(db)
	}
	return repos
}

func newGuard(cfg *config.Config, rdb *redis.Client) service.InFlightGuard {
	if cfg.Store.Guard == "redis" && rdb != nil {
		return service.NewRedisGuard(rdb, cfg.Store.GuardTTL)
	}
	return service.NewMemoryGuard()
}

func (a *App) initServices(repos *repositories, cfg *config.Config, ai *service.AIService, guard service.InFlightGuard) *services {
	s := &services{ai: ai}

	s.auth = service.NewAuthService(cfg)
	s.storage = service.NewStorageService(cfg)
	s.store = service.NewStoreService(repos.store)
	s.motivation = service.NewMotivationService(repos.motivation)
	s.tip = service.NewTipService(ai, s.motivation)

	s.plan = service.NewStudyPlanService(ai, s.store, guard)
	s.tutor = service.NewTutorService(ai, s.store, guard)
	s.quiz = service.NewQuizService(ai, s.store, guard)
	s.flashcard = service.NewFlashcardService(ai, s.store, guard)
	s.calendar = service.NewCalendarService(ai, s.store, guard, s.motivation)
	s.writing = service.NewWritingService(ai, guard)
	s.mindMap = service.NewMindMapService(ai, guard)
	s.progress = service.NewProgressService(s.store, s.calendar)
	s.notepad = service.NewNotepadService(s.store, s.plan)

	return s
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth),
		health:     controller.NewHealthController(a.DB, a.Redis),
		home:       controller.NewHomeController(s.tip),
		motivation: controller.NewMotivationController(s.motivation),
		plan:       controller.NewStudyPlanController(s.plan, s.storage),
		tutor:      controller.NewTutorController(s.tutor),
		quiz:       controller.NewQuizController(s.quiz),
		flashcard:  controller.NewFlashcardController(s.flashcard, s.storage),
		calendar:   controller.NewCalendarController(s.calendar),
		writing:    controller.NewWritingController(s.writing),
		mindMap:    controller.NewMindMapController(s.mindMap),
		progress:   controller.NewProgressController(s.progress),
		notepad:    controller.NewNotepadController(s.notepad, s.storage),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.RequestID())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")
	gin.SetMode(cfg.Server.Mode)

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode == gin.DebugMode)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb, err = database.InitRedis(&cfg.Redis)
		if err != nil {
			logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		}
	}

	ai, err := service.NewAIService(context.Background(), cfg.AI)
	if err != nil {
		logger.Log.Fatal("Failed to initialize ai provider", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}
	app.RegisterConfigCallback(ai.UpdateConfig)

	repos := app.initRepositories(cfg, db, rdb)
	services := app.initServices(repos, cfg, ai, newGuard(cfg, rdb))
	controllers := app.initControllers(services)

	// 监控初始化
	monitoring.Init()

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracer = tp
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/exports", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) watchConfig(ctx context.Context) {
	if a.Config.ConfigPath == "" {
		return
	}
	err := configwatcher.Watch(ctx, a.Config.ConfigPath, func(newCfg *config.Config) {
		for _, cb := range a.configCallbacks {
			cb(newCfg)
		}
	})
	if err != nil {
		logger.Log.Warn("Config hot reload disabled", zap.Error(err))
	}
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	a.watchConfig(ctx)

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.tracer != nil {
		if err := a.tracer.Shutdown(shutdownCtx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		a.Redis.Close()
	}

	log.Println("Server exiting")
}
