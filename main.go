package main

import (
	"encoding/json"
	stdlog "log"
	"net/http"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/username/finboard/src/config"
	"github.com/username/finboard/src/handlers"
	"github.com/username/finboard/src/logger"
	"github.com/username/finboard/src/parsers"
	"github.com/username/finboard/src/services"
	"golang.org/x/time/rate"
)

var limiter = rate.NewLimiter(rate.Every(100*time.Millisecond), 30)

func rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			logger.L.Warn("Rate limit exceeded",
				"method", r.Method,
				"path", r.URL.Path,
				"remoteAddr", r.RemoteAddr)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		if origin == config.Cfg.AllowedOrigin {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, DELETE")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, If-None-Match")
			w.Header().Set("Access-Control-Expose-Headers", "ETag")
		} else if origin == "" {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}

		if r.Method == "OPTIONS" {
			logger.L.Debug("Handling OPTIONS preflight request", "path", r.URL.Path, "origin", origin)
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func main() {
	config.LoadConfig()
	logger.InitLogger(config.Cfg.LogLevel)
	logger.L.Info("Finboard backend server starting...")

	logger.L.Info("Initializing dataset cache...",
		"expiry", config.Cfg.DatasetCacheExpiry,
		"cleanup", config.Cfg.DatasetCacheCleanup)
	datasetCache := cache.New(config.Cfg.DatasetCacheExpiry, config.Cfg.DatasetCacheCleanup)

	logger.L.Info("Initializing services and handlers...")
	csvParser := parsers.NewCSVTransactionParser()
	dashboardService := services.NewDashboardService(csvParser, datasetCache)

	uploadHandler := handlers.NewUploadHandler(dashboardService)
	txHandler := handlers.NewTransactionHandler(dashboardService)
	summaryHandler := handlers.NewSummaryHandler(dashboardService)

	logger.L.Info("Configuring routes...")
	rootMux := http.NewServeMux()
	apiRouter := http.NewServeMux()

	apiRouter.HandleFunc("POST /api/upload", uploadHandler.HandleUpload)
	apiRouter.HandleFunc("GET /api/datasets/{id}/transactions", txHandler.HandleGetTransactions)
	apiRouter.HandleFunc("GET /api/datasets/{id}/categories", txHandler.HandleGetCategories)
	apiRouter.HandleFunc("GET /api/datasets/{id}/months", txHandler.HandleGetMonths)
	apiRouter.HandleFunc("GET /api/datasets/{id}/summary", summaryHandler.HandleGetSummary)
	apiRouter.HandleFunc("GET /api/datasets/{id}/buckets/{granularity}", summaryHandler.HandleGetBuckets)
	apiRouter.HandleFunc("DELETE /api/datasets/{id}", txHandler.HandleDeleteDataset)

	rootMux.Handle("/api/", apiRouter)

	rootMux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" && r.Method == http.MethodGet {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]string{"message": "Finboard backend is running"})
		} else if !strings.HasPrefix(r.URL.Path, "/api/") {
			logger.L.Warn("Root level path not found", "method", r.Method, "path", r.URL.Path)
			http.NotFound(w, r)
		}
	})

	logger.L.Info("Applying global middleware...")
	finalHandler := enableCORS(rateLimitMiddleware(rootMux))

	serverAddr := ":" + config.Cfg.Port
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      finalHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.L.Info("Server starting", "address", serverAddr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.L.Error("Failed to start server", "error", err)
		stdlog.Fatalf("Failed to start server: %v", err)
	} else if err == http.ErrServerClosed {
		logger.L.Info("Server stopped gracefully.")
	}
}
