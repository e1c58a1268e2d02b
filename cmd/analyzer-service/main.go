package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"golang-company-analyzer/internal/analyzer/config"
	delivery "golang-company-analyzer/internal/analyzer/delivery/http"
	_ "golang-company-analyzer/internal/analyzer/docs"
	"golang-company-analyzer/internal/analyzer/repository"
	"golang-company-analyzer/internal/analyzer/service"
	"golang-company-analyzer/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	swagger "github.com/swaggo/echo-swagger"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the company analyzer API",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting Company Analyzer", logger.Field("name", cfg.App.Name), logger.Field("version", cfg.App.Version))

	// Initialize repositories
	httpClient := &http.Client{Timeout: cfg.HTTPClient.Timeout}

	yahooRepo, err := repository.NewYahooFinanceRepository(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize Yahoo Finance repository", logger.ErrorField(err))
	}
	articleRepo, err := repository.NewNewsArticleRepository(cfg, appLogger, httpClient)
	if err != nil {
		appLogger.Fatal("Failed to initialize news article repository", logger.ErrorField(err))
	}
	webSearchRepo := repository.NewWebSearchRepository(cfg, appLogger, httpClient)

	// Initialize services
	resolver := service.NewTickerResolver(cfg, appLogger, yahooRepo, nil)
	fetcher := service.NewFinancialDataFetcher(cfg, appLogger, yahooRepo)
	newsAggregator := service.NewNewsAggregator(cfg, appLogger, articleRepo, webSearchRepo)
	analyzeSvc := service.NewAnalyzeService(cfg, appLogger, resolver, fetcher, newsAggregator)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	delivery.RegisterMiddleware(e, appLogger, cfg.API.CORSAllowedOrigins)

	// Initialize handlers and routes
	api := e.Group("/api")
	delivery.NewAnalyzeHandler(analyzeSvc, appLogger).RegisterRoutes(api)
	delivery.NewHealthHandler().RegisterRoutes(api)

	e.GET("/swagger/*", swagger.WrapHandler)

	// Start server
	go func() {
		addr := net.JoinHostPort(cfg.API.Host, strconv.Itoa(cfg.API.Port))
		appLogger.Info("HTTP server starting", logger.Field("address", addr), logger.Field("news_mode", cfg.News.Mode))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop() // trigger shutdown
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

// @title Company Analyzer API
// @version 1.0.0
// @description Resolves a company's stock ticker and returns its financial snapshot and related news.
// @BasePath /api
func main() {
	rootCmd := &cobra.Command{Use: "analyzer-service"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-analyzer.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing analyzer-service CLI: %s\n", err)
		os.Exit(1)
	}
}
