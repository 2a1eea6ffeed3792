package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/folio/backend/internal/config"
	"github.com/folio/backend/internal/geo"
	"github.com/folio/backend/internal/handler"
	"github.com/folio/backend/internal/logging"
	"github.com/folio/backend/internal/service"
	"github.com/folio/backend/internal/store"
	"github.com/folio/backend/internal/telegram"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("failed to load configuration", "error", err)
	}

	messageStore, err := store.NewFileStore(cfg.MessagesFile)
	if err != nil {
		logging.Fatal("failed to initialize message store", "error", err)
	}

	geoClient, err := geo.NewClient(cfg.GeoAPIURL)
	if err != nil {
		logging.Fatal("failed to initialize geolocation client", "error", err)
	}

	telegramClient := telegram.NewClient(cfg.TelegramAPIURL, cfg.TelegramBotToken, cfg.TelegramChatID)
	if !telegramClient.Enabled() {
		slog.Warn("telegram credentials not configured, notifications disabled")
	}

	contactService := service.NewContactService(messageStore, geoClient, telegramClient)

	h := handler.New(cfg.AllowedOrigin)
	contactHandler := handler.NewContactHandler(contactService)
	visitorHandler := handler.NewVisitorHandler(contactService)
	contactLimiter := handler.NewRateLimiter(cfg.ContactRateLimit, cfg.ContactRateWindow)

	mux := http.NewServeMux()
	mux.Handle("POST /api/contact", contactLimiter.Middleware(http.HandlerFunc(contactHandler.Submit)))
	mux.HandleFunc("GET /api/messages", contactHandler.Messages)
	mux.HandleFunc("GET /api/health", h.Health)
	mux.HandleFunc("GET /api/ip-info", visitorHandler.IPInfo)

	chain := handler.Recovery(
		handler.RequestLogger(
			handler.SecurityHeaders(
				h.CORS(mux),
			),
		),
	)

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      chain,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
