package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/Vovarama1992/ai-diag-assistant/internal/ai"
	"github.com/Vovarama1992/ai-diag-assistant/internal/audit"
	"github.com/Vovarama1992/ai-diag-assistant/internal/config"
	"github.com/Vovarama1992/ai-diag-assistant/internal/diagnostics"
	"github.com/Vovarama1992/ai-diag-assistant/internal/logging"
	"github.com/Vovarama1992/ai-diag-assistant/internal/metrics"
	"github.com/Vovarama1992/ai-diag-assistant/internal/web"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx)
	stop()
	if err != nil {
		logrus.WithError(err).Fatal("server exited")
	}
}

// run owns every resource it opens; deferred cleanup always runs before the
// process exits.
func run(ctx context.Context) error {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	if envErr != nil {
		log.Debug("no .env file, using process environment only")
	}
	for _, w := range cfg.Warnings() {
		log.Warn(w)
	}

	// --- Metrics ---
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// --- Audit sink ---
	sink, closeSink, err := newAuditSink(ctx, cfg.Audit)
	if err != nil {
		return fmt.Errorf("audit sink: %w", err)
	}
	defer closeSink()
	log.WithField("backend", cfg.Audit.Backend).Info("audit sink ready")

	// --- Diagnostics module wiring ---
	aiClient := ai.NewOpenAIClient(ai.OpenAIConfig{
		APIKey:  cfg.OpenAI.APIKey,
		Model:   cfg.OpenAI.Model,
		BaseURL: cfg.OpenAI.BaseURL,
	}, log)
	auditLogger := audit.NewLogger(sink, log, m)
	diagService := diagnostics.NewService(aiClient, auditLogger, log, m)
	diagHandler := diagnostics.NewHandler(diagService, log, m)

	webHandler, err := web.NewHandler()
	if err != nil {
		return fmt.Errorf("web page: %w", err)
	}

	r := newRouter(cfg.Server, reg)
	diagnostics.RegisterRoutes(r, diagHandler)
	web.RegisterRoutes(r, webHandler)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Infof("listening on %s", cfg.Server.Addr)
	if err := runServer(ctx, srv); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

func newRouter(cfg config.ServerConfig, gatherer prometheus.Gatherer) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	// --- health ---
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return r
}

func newAuditSink(ctx context.Context, cfg config.AuditConfig) (audit.Sink, func(), error) {
	switch cfg.Backend {
	case config.BackendPostgres:
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := db.PingContext(pingCtx); err != nil {
			db.Close()
			return nil, nil, err
		}
		return audit.NewPostgresSink(db), func() { db.Close() }, nil

	case config.BackendNone:
		return audit.NopSink{}, func() {}, nil

	default:
		return audit.NewAirtableSink(audit.AirtableConfig{
			APIURL: cfg.AirtableURL,
			BaseID: cfg.AirtableBaseID,
			Table:  cfg.AirtableTable,
			Token:  cfg.AirtableToken,
		}, nil), func() {}, nil
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
