package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rehab-app/internal/auth"
	"rehab-app/internal/config"
	"rehab-app/internal/database"
	"rehab-app/internal/handlers"
	"rehab-app/internal/mailer"
	"rehab-app/internal/realtime"
	"rehab-app/internal/services"
	"rehab-app/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresDB(cfg.Database.URL)
	if err != nil {
		logger.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Realtime core: presence registry, hub, relay, event routing
	presence := realtime.NewPresence()
	hub := realtime.NewHub(presence)
	relay := realtime.NewRelay(db, presence, hub, cfg.Database.StoreTimeout)
	hub.Route(realtime.EventJoin, realtime.JoinHandler(presence))
	hub.Route(realtime.EventSendMessage, realtime.SendHandler(relay))

	// Initialize services
	authService := auth.NewService(db, cfg)
	participantService := services.NewParticipantService(db)
	programService := services.NewProgramService(db)
	helpService := services.NewHelpService(db)
	chatService := services.NewChatService(db, presence, hub)
	mail := mailer.New(cfg.SMTP)

	// Initialize handlers
	authHandlers := handlers.NewAuthHandlers(authService)
	userHandlers := handlers.NewUserHandlers(db)
	participantHandlers := handlers.NewParticipantHandlers(participantService)
	programHandlers := handlers.NewProgramHandlers(programService)
	chapterHandlers := handlers.NewChapterHandlers(db)
	helpHandlers := handlers.NewHelpHandlers(helpService)
	chatHandlers := handlers.NewChatHandlers(chatService)
	reportHandlers := handlers.NewReportHandlers(db)
	emailHandlers := handlers.NewEmailHandlers(mail, db)
	wsHandlers := handlers.NewWebSocketHandlers(hub)

	// Setup routes
	mux := http.NewServeMux()
	setupRoutes(mux, &routeHandlers{
		auth:        authHandlers,
		user:        userHandlers,
		participant: participantHandlers,
		program:     programHandlers,
		chapter:     chapterHandlers,
		help:        helpHandlers,
		chat:        chatHandlers,
		report:      reportHandlers,
		email:       emailHandlers,
		ws:          wsHandlers,
	})

	// Create server
	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      corsMiddleware(mux),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	logger.Info("Server started on http://localhost%s", cfg.Server.Port)
	logger.Info("WebSocket endpoint: ws://localhost%s/ws", cfg.Server.Port)

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Server shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error: %v", err)
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
