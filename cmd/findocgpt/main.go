// FinDocGPT analysis server — exposes the HTTP API, runs the background
// analysis dispatcher, and manages the document registry and RAG store.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/findocgpt/findocgpt/pkg/analysis"
	"github.com/findocgpt/findocgpt/pkg/api"
	"github.com/findocgpt/findocgpt/pkg/config"
	"github.com/findocgpt/findocgpt/pkg/database"
	"github.com/findocgpt/findocgpt/pkg/edgar"
	"github.com/findocgpt/findocgpt/pkg/ingest"
	"github.com/findocgpt/findocgpt/pkg/llm"
	"github.com/findocgpt/findocgpt/pkg/rag"
	"github.com/findocgpt/findocgpt/pkg/registry"
	"github.com/findocgpt/findocgpt/pkg/scheduler"
	"github.com/findocgpt/findocgpt/pkg/services"
	"github.com/findocgpt/findocgpt/pkg/summary"
	"github.com/findocgpt/findocgpt/pkg/version"
	"github.com/findocgpt/findocgpt/pkg/websearch"
)

const shutdownTimeout = 30 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	cfg := config.Load()
	slog.Info("Starting FinDocGPT",
		"version", version.Full(),
		"addr", cfg.HTTPAddr,
		"chat_configured", cfg.ChatConfigured(),
		"gemini_configured", cfg.GeminiConfigured())

	ctx := context.Background()

	// Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// Chat LLM
	var chatClient llm.Client = llm.Unconfigured{}
	if cfg.ChatConfigured() {
		chatClient = llm.NewOpenAIClient(cfg.LLMAPIKey, cfg.LLMBaseURL, cfg.LLMModel)
		slog.Info("Chat LLM client initialized", "model", cfg.LLMModel)
	} else {
		slog.Warn("AGENT_LLM_API_KEY not set, analysis and summaries run degraded")
	}

	// Gemini grader / grounded search
	var gemini *websearch.GeminiClient
	if cfg.GeminiConfigured() {
		gemini, err = websearch.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			slog.Error("Failed to initialize Gemini client", "error", err)
			os.Exit(1)
		}
		slog.Info("Gemini client initialized", "model", cfg.GeminiModel)
	} else {
		slog.Warn("GEMINI_API_KEY not set, answer grading defaults to pass")
	}
	var grader *websearch.Augmenter
	if gemini != nil {
		grader = websearch.NewAugmenter(gemini, gemini)
	} else {
		grader = websearch.NewAugmenter(nil, nil)
	}

	// Document registry and RAG store
	reg := registry.New(cfg.RegistryPath)
	gateway := rag.NewGateway(rag.NewCogneeClient(cfg.CogneeBaseURL), reg, cfg.CogneeDataRoot, cfg.CogneeSystemRoot)
	slog.Info("Document registry loaded", "path", cfg.RegistryPath, "documents", reg.Len())

	// Ingestion
	edgarClient := edgar.NewClient(cfg.EdgarUserAgent)
	pipeline := ingest.New(reg, gateway, summary.New(chatClient))

	// Services and dispatcher
	analysisService := services.NewAnalysisService(dbClient.Client)
	documentService := services.NewDocumentService(edgarClient, pipeline, reg)
	controller := analysis.NewController(chatClient, reg, gateway, grader)
	dispatcher := scheduler.NewDispatcher(controller, analysisService)

	// HTTP server
	pingDB := func(ctx context.Context) error {
		_, err := database.Health(ctx, dbClient.DB())
		return err
	}
	server := api.NewServer(analysisService, documentService, dispatcher,
		pingDB, cfg.ChatConfigured(), cfg.GeminiConfigured())

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}
	if err := dispatcher.Shutdown(shutdownCtx); err != nil {
		slog.Warn("Dispatcher shutdown incomplete", "error", err)
	}
	if err := reg.Save(); err != nil {
		slog.Error("Failed to persist document registry on shutdown", "error", err)
	}

	slog.Info("FinDocGPT stopped")
}
