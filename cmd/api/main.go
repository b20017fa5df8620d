package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/pixelloop/agents-api/internal/agents"
	"github.com/pixelloop/agents-api/internal/config"
	"github.com/pixelloop/agents-api/internal/database"
	"github.com/pixelloop/agents-api/internal/handlers"
	"github.com/pixelloop/agents-api/migrations"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// .env is optional; environment variables win either way
	_ = godotenv.Load()

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	log.Info().Msg("Starting AI Agents API")

	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	if err := migrations.Run(db.DB); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	statusRepo := database.NewStatusRepository(db)
	wallpaperRepo := database.NewWallpaperRepository(db)

	// Agents are constructed lazily on first request
	registry := agents.NewRegistry(agents.Config{
		APIKey:           cfg.GeminiAPIKey,
		ChatModel:        cfg.GeminiModelChat,
		SearchModel:      cfg.GeminiModelSearch,
		SearchMaxResults: cfg.SearchMaxResults,
		SearchUserAgent:  cfg.SearchUserAgent,
	})

	h := handlers.NewHandler(statusRepo, wallpaperRepo, registry)

	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/", h.Root).Methods("GET")
	api.HandleFunc("/status", h.CreateStatusCheck).Methods("POST")
	api.HandleFunc("/status", h.ListStatusChecks).Methods("GET")
	api.HandleFunc("/chat", h.Chat).Methods("POST")
	api.HandleFunc("/search", h.Search).Methods("POST")
	api.HandleFunc("/agents/capabilities", h.Capabilities).Methods("GET")
	api.HandleFunc("/wallpaper/generate", h.GenerateWallpaper).Methods("POST")
	api.HandleFunc("/wallpaper/history", h.WallpaperHistory).Methods("GET")

	// CORS wraps the whole router so preflight requests are answered even for
	// method-restricted routes
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      handlers.CORS(r),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down API...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
	}
	log.Info().Msg("AI Agents API shutdown complete")
}
