package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"

	"alfredoptarigan/resume-extractor/internal/config"
	"alfredoptarigan/resume-extractor/internal/handlers"
	"alfredoptarigan/resume-extractor/internal/metrics"
	"alfredoptarigan/resume-extractor/internal/repositories"
	"alfredoptarigan/resume-extractor/internal/services"
)

const healthCheckTimeout = 2 * time.Second

type routeHandlers struct {
	upload *handlers.UploadHandler
	parse  *handlers.ParseHandler
	result *handlers.ResultHandler
}

func main() {
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}
	defer config.CloseDatabase(db)

	docRepo := repositories.NewDocumentRepository(db)
	jobRepo := repositories.NewParseJobRepository(db)

	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}
	if removed, err := storageService.SweepOlderThan(cfg.Storage.UploadRetention); err != nil {
		log.Printf("⚠️  Failed to sweep stale uploads: %v\n", err)
	} else if removed > 0 {
		log.Printf("🧹 Removed %d stale uploads\n", removed)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	enricher, err := newEnricher(ctx, cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}

	processor := services.NewResumeProcessor(services.NewPDFParserService(), enricher)
	parseJobService := services.NewParseJobService(jobRepo, docRepo, storageService, processor)
	log.Println("✅ Resume processor initialized")

	worker := services.NewWorker(
		jobRepo,
		parseJobService,
		cfg.Worker.Concurrency,
		cfg.Worker.PollInterval,
	)
	worker.Start(ctx)

	app := newApp(cfg, db, routeHandlers{
		upload: handlers.NewUploadHandler(docRepo, storageService, cfg.Storage.MaxFileSize),
		parse:  handlers.NewParseHandler(jobRepo, docRepo, worker, processor),
		result: handlers.NewResultHandler(jobRepo),
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
		cancel()
		worker.Stop()
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// newEnricher returns an orchestrator that always skips when no model is
// configured, so the pipeline serves heuristic drafts.
func newEnricher(ctx context.Context, cfg *config.Config) (services.EnrichmentOrchestrator, error) {
	var normalizer services.Normalizer
	if cfg.EnrichmentAvailable() {
		geminiService, err := services.NewGeminiService(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			return nil, err
		}
		normalizer = services.NewGeminiNormalizer(geminiService, cfg.Gemini.Temperature)
		log.Printf("🤖 Enrichment enabled with model %s\n", cfg.Gemini.Model)
	} else {
		log.Println("⚠️  Enrichment disabled, serving heuristic drafts only")
	}

	return services.NewEnrichmentOrchestrator(normalizer, services.EnrichmentOptions{
		SourceCharLimit: cfg.Enrichment.SourceCharLimit,
		Timeout:         cfg.Enrichment.Timeout,
	}), nil
}

func newApp(cfg *config.Config, db *gorm.DB, h routeHandlers) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Resume Extractor API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 2 * cfg.Enrichment.Timeout,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	app.Use(recover.New())
	app.Use(metrics.FiberMiddleware())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	api := app.Group("/api/v1")
	api.Get("/health", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), healthCheckTimeout)
		defer cancel()

		if err := config.PingDatabase(ctx, db); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unhealthy",
				"error":  err.Error(),
			})
		}
		return c.JSON(fiber.Map{
			"status":     "healthy",
			"enrichment": cfg.EnrichmentAvailable(),
			"time":       time.Now(),
		})
	})
	api.Post("/upload", h.upload.HandleUpload)
	api.Post("/parse", h.parse.HandleParse)
	api.Post("/parse/text", h.parse.HandleParseText)
	api.Get("/result/:id", h.result.HandleGetResult)

	app.Get("/metrics", metrics.Handler())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Resume Extractor API",
			"version": "1.0.0",
			"endpoints": []string{
				"GET /api/v1/health",
				"POST /api/v1/upload",
				"POST /api/v1/parse",
				"POST /api/v1/parse/text",
				"GET /api/v1/result/:id",
				"GET /metrics",
			},
		})
	})

	return app
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
