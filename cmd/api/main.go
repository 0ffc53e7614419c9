package main

import (
	"context"
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

	"alfredoptarigan/resume-analyzer/internal/config"
	"alfredoptarigan/resume-analyzer/internal/handlers"
	"alfredoptarigan/resume-analyzer/internal/repositories"
	"alfredoptarigan/resume-analyzer/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	docRepo := repositories.NewDocumentRepository(db)
	analysisRepo := repositories.NewAnalysisRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	normOverrides, err := cfg.LoadNormalizationOverrides()
	if err != nil {
		log.Fatalf("❌ Failed to load normalization table: %v", err)
	}

	extractor := services.NewExtractorService()
	termExtractor := services.NewTermExtractorServiceWithTable(normOverrides, nil)
	matcher := services.NewLexicalMatcherService()
	readability := services.NewReadabilityService()
	splitter := services.NewPhraseSplitter()
	aggregator := services.NewAggregatorService(services.Weights{
		Lexical:     cfg.Scoring.LexicalWeight,
		Semantic:    cfg.Scoring.SemanticWeight,
		Readability: cfg.Scoring.ReadabilityWeight,
		ATS:         cfg.Scoring.ATSWeight,
	})
	log.Println("✅ Scoring services initialized successfully")

	// Initialize Gemini AI
	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	// Initialize embedding cache (optional, Qdrant-backed)
	var embedder services.Embedder = geminiService
	if cfg.Qdrant.URL != "" {
		embedCache, err := services.NewQdrantEmbeddingCache(
			cfg.Qdrant.URL,
			cfg.Qdrant.APIKey,
			cfg.Qdrant.Collection,
		)
		if err != nil {
			log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
		}

		if err := embedCache.InitCollection(); err != nil {
			log.Fatalf("❌ Failed to initialize Qdrant collection: %v", err)
		}

		embedder = services.NewCachedEmbedder(geminiService, embedCache)
		log.Println("✅ Qdrant embedding cache initialized successfully")
	}

	semantic := services.NewSemanticScorerService(embedder)
	suggester := services.NewSuggesterService(geminiService, cfg.Worker.RetryMaxAttempts)

	// Initialize analyzer
	analyzerService := services.NewAnalyzerService(
		extractor,
		termExtractor,
		matcher,
		semantic,
		readability,
		aggregator,
		splitter,
		suggester,
		analysisRepo,
		docRepo,
		cfg.Scoring.SemanticThreshold,
	)
	log.Println("✅ Analyzer service initialized")

	// Initialize worker
	worker := services.NewWorker(
		analysisRepo,
		analyzerService,
		cfg.Worker.Concurrency,
	)
	log.Println("✅ Worker initialized successfully")

	// Start worker
	ctx := context.Background()
	worker.Start(ctx)
	log.Println("✅ Worker started successfully")

	// Initialize Handlers
	uploadHandler := handlers.NewUploadHandler(
		docRepo,
		storageService,
		cfg.Storage.MaxFileSize,
	)
	analyzeHandler := handlers.NewAnalyzeHandler(
		analysisRepo,
		docRepo,
		worker,
	)

	resultHandler := handlers.NewResultHandler(analysisRepo)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Resume Analyzer API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Post("/upload", uploadHandler.HandleUpload)
	api.Post("/analyze", analyzeHandler.HandleAnalyze)
	api.Get("/result/:id", resultHandler.HandleGetResult)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Resume Analyzer API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/upload",
				"POST /api/v1/analyze",
				"GET /api/v1/result/:id",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		worker.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
