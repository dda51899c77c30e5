package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"floatchat/floatchat/config"
	"floatchat/floatchat/controllers"
	"floatchat/floatchat/conversation"
	"floatchat/floatchat/routes"
	"floatchat/floatchat/utils/logging"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func main() {
	logging.InitLogger()
	cfg := config.LoadConfig()

	resolver := conversation.NewCannedResolver()
	if cfg.ResponsesPath != "" {
		loaded, err := conversation.LoadResolver(cfg.ResponsesPath)
		if err != nil {
			logging.AppLogger.Warn("responses file unusable, using built-in canned responses",
				zap.String("path", cfg.ResponsesPath), zap.Error(err))
		} else {
			resolver = loaded
		}
	}

	store := conversation.NewSessionStore(resolver)
	thinkDelay := time.Duration(cfg.ThinkDelayMs) * time.Millisecond
	chatCtrl := controllers.NewChatController(store, thinkDelay)
	dataCtrl := controllers.NewDataController()
	exportCtrl := controllers.NewExportController()
	uiCtrl := controllers.NewUIController(cfg.StylePath)
	healthCtrl := controllers.NewHealthController(store)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Mount("/chat", routes.ChatRoutes(chatCtrl))
	r.Mount("/data", routes.DataRoutes(dataCtrl))
	r.Mount("/export", routes.ExportRoutes(exportCtrl))
	r.Mount("/health", routes.HealthRoutes(healthCtrl))
	r.Mount("/", routes.UIRoutes(uiCtrl))

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: r,
	}
	go func() {
		logging.AppLogger.Info("floatchat listening", zap.String("addr", cfg.ServerAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.ErrorLogger.Error("server listen error", zap.Error(err))
		}
	}()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.ErrorLogger.Error("server shutdown error", zap.Error(err))
	}
	logging.AppLogger.Info("server shutdown complete")
}
