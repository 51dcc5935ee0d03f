package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/ziedtabib/ecoshare-ai-service/api"
	"github.com/ziedtabib/ecoshare-ai-service/commons"
	"github.com/ziedtabib/ecoshare-ai-service/imageproc"
	"github.com/ziedtabib/ecoshare-ai-service/predict"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg := commons.LoadConfig()

	releaseMode := flag.Bool("release", cfg.IsProduction(), "Run in release mode")
	port := flag.Int("port", cfg.Port, "Port the HTTP server listens on")
	maxWorkers := flag.Int("max-workers", cfg.MaxWorkers, "The number of workers to start")
	maxWorkerQueueSize := flag.Int("max-worker-queue-size", cfg.MaxWorkerQueue, "The size of job queue")

	flag.Parse()

	cfg.Port = *port
	cfg.MaxWorkers = *maxWorkers
	cfg.MaxWorkerQueue = *maxWorkerQueueSize

	commons.SetupLogging(cfg)

	if *releaseMode {
		log.Info("[Main] Starting gin in release mode!")
		gin.SetMode(gin.ReleaseMode)
	}

	if err := commons.SetupErrorReporting(cfg); err != nil {
		log.Error("[Main] Couldn't set up error reporting: ", err.Error())
		os.Exit(1)
	}

	log.Debug("[Main] Starting Dispatcher...")
	loader := imageproc.NewLoader().
		WithMaxSize(cfg.MaxImageSize).
		WithMaxPixels(cfg.MaxImagePixels)
	dispatcher := predict.NewDispatcher(predict.NewPredictor(loader), cfg.MaxWorkers, cfg.MaxWorkerQueue)
	dispatcher.Run()
	defer dispatcher.Stop()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: api.NewRouter(cfg, dispatcher),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("[Main] ECOSHARE AI Service listening on ", server.Addr, " (", cfg.Environment, ")")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("[Main] Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("[Main] Server stopped: ", err.Error())
		os.Exit(1)
	}
}
