// cmd/search-api/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/lenamwu/bite-search-api/internal/common/config"
	httpclient "github.com/lenamwu/bite-search-api/internal/common/http"
	"github.com/lenamwu/bite-search-api/internal/common/logger"
	"github.com/lenamwu/bite-search-api/internal/common/observability"
	"github.com/lenamwu/bite-search-api/internal/imagecheck"
	"github.com/lenamwu/bite-search-api/internal/search"
	"github.com/lenamwu/bite-search-api/internal/server"
)

func main() {
	zapLog := logger.New("info", "console")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	// Rebuild with the configured level and format.
	zapLog = logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()

	zapLog.Info("starting search API",
		zap.String("service", cfg.App.Name),
		zap.String("environment", cfg.App.Environment),
	)

	shutdownTracing, err := observability.Setup(cfg.App.Name, cfg.Tracing.JaegerEndpoint)
	if err != nil {
		zapLog.Fatal("tracing setup failed", zap.Error(err))
	}

	// Separate outbound clients: the upstream search call and the image
	// probes carry different timeouts, and probes never share a deadline
	// with the search request.
	searchHTTP := httpclient.NewClient(httpclient.Options{
		Timeout:        cfg.Search.SearchTimeout(),
		UserAgent:      cfg.HTTP.UserAgent,
		AcceptLanguage: cfg.HTTP.AcceptLanguage,
	})
	probeHTTP := httpclient.NewClient(httpclient.Options{
		Timeout:        cfg.Validation.Timeout(),
		UserAgent:      cfg.HTTP.UserAgent,
		AcceptLanguage: cfg.HTTP.AcceptLanguage,
	})

	searchCfg := &search.Config{
		BaseURL:    cfg.Search.BaseURL,
		Timeout:    cfg.Search.SearchTimeout(),
		DefaultNum: cfg.Search.DefaultNum,
		MaxNum:     cfg.Search.MaxNum,
	}
	searchClient := search.NewClient(searchCfg, searchHTTP, zapLog)

	prober := imagecheck.NewProber(
		&imagecheck.Config{
			ProxyBaseURL: cfg.Validation.ProxyBaseURL,
			ProbeTimeout: cfg.Validation.Timeout(),
		},
		probeHTTP,
		zapLog,
	)
	filter := search.NewImageFilter(prober, zapLog)
	handler := search.NewHandler(searchCfg, searchClient, filter, zapLog)

	router, err := server.Build(server.Options{
		Config: cfg,
		Logger: zapLog,
		Search: handler,
	})
	if err != nil {
		zapLog.Fatal("router build failed", zap.Error(err))
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router.Engine,
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLog.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLog.Error("forced shutdown", zap.Error(err))
	}
	if err := shutdownTracing(ctx); err != nil {
		zapLog.Warn("tracing shutdown failed", zap.Error(err))
	}

	zapLog.Info("server exited")
}
