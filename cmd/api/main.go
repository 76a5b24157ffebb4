package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-care-companion/internal/platform/logger"
	"pet-care-companion/internal/reminder"
	"pet-care-companion/internal/router"
)

// @title PetCare Companion API
// @version 1.0
// @description API del panel de cuidado de mascotas: mascotas, agenda, notificaciones, actividad del collar, documentos y chat de soporte.
// @BasePath /
func main() {
	log := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" && os.Getenv("DB_DSN") == "" {
		dataDir = ".petcare"
	}

	app := router.NewApp(router.Options{
		DataDir: dataDir,
		Log:     log,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sched := reminder.NewScheduler(app.Events, app.Pets, reminder.LogSink{Log: log}, log)
	go sched.Run(ctx)

	srv := &http.Server{
		Addr:         addr,
		Handler:      app.Handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		app.Chat.Close()
	}()

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"err": err.Error()})
		os.Exit(1)
	}
}
