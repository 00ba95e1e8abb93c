package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/wilhg/projector/examples/counter"
	"github.com/wilhg/projector/pkg/errmodel"
	"github.com/wilhg/projector/pkg/otel"
	"github.com/wilhg/projector/pkg/store/entstore"
	"github.com/wilhg/projector/pkg/view"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

type config struct {
	Addr        string `env:"PROJECTOR_ADDR" envDefault:":8080"`
	DatabaseURL string `env:"DATABASE_URL" envDefault:"sqlite:file:projector.sqlite?cache=shared&_pragma=busy_timeout(5000)"`
	Tag         string `env:"PROJECTOR_TAG" envDefault:"counter"`
	OtelStdout  bool   `env:"PROJECTOR_OTEL_STDOUT" envDefault:"false"`

	PollInterval time.Duration `env:"PROJECTOR_POLL_INTERVAL" envDefault:"250ms"`
	// Zero disables the timeout.
	RecoveryTimeout     time.Duration `env:"PROJECTOR_RECOVERY_TIMEOUT" envDefault:"0"`
	LoadSnapshotTimeout time.Duration `env:"PROJECTOR_LOAD_SNAPSHOT_TIMEOUT" envDefault:"0"`
}

func main() {
	var showVersion bool
	var addr string

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.StringVar(&addr, "addr", "", "http listen address (overrides PROJECTOR_ADDR)")
	flag.Parse()

	if showVersion {
		fmt.Printf("projector %s (commit=%s, date=%s)\n", version, commit, date)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(addr, logger); err != nil {
		logger.Error("exiting", "error", err)
		os.Exit(1)
	}
}

func run(addrOverride string, logger *slog.Logger) error {
	cfg, err := env.ParseAs[config]()
	if err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if addrOverride != "" {
		cfg.Addr = addrOverride
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownOtel, err := otel.Init(ctx, otel.Config{
		ServiceName:    "projector",
		ServiceVersion: version,
		UseStdout:      cfg.OtelStdout,
	})
	if err != nil {
		return fmt.Errorf("init otel: %w", err)
	}
	defer func() {
		shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownOtel(shCtx)
	}()

	st, err := entstore.Open(ctx, cfg.DatabaseURL, entstore.WithPollInterval(cfg.PollInterval))
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() { _ = st.Close() }()
	if err := st.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	handler := counter.New()
	v, err := view.New(view.Config{
		ViewID:              cfg.Tag,
		Tag:                 cfg.Tag,
		Journal:             st,
		Snapshots:           st,
		Handler:             handler,
		RecoveryTimeout:     cfg.RecoveryTimeout,
		LoadSnapshotTimeout: cfg.LoadSnapshotTimeout,
		Logger:              logger.With("component", "view"),
		Metrics:             view.NewMetrics(reg),
	})
	if err != nil {
		return fmt.Errorf("new view: %w", err)
	}

	viewDone := make(chan error, 1)
	go func() { viewDone <- v.Run(ctx) }()

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: otelhttp.NewHandler(buildMux(st, v, cfg.Tag, reg), "projector"),
	}
	serverDone := make(chan error, 1)
	go func() { serverDone <- server.ListenAndServe() }()

	logger.Info("started", "addr", cfg.Addr, "tag", cfg.Tag, "version", version)

	select {
	case <-ctx.Done():
	case err := <-viewDone:
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("view stopped", "error", err)
		}
	case err := <-serverDone:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
	}

	shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shCtx)
}

// buildMux wires the query and admin endpoints around a running view.
func buildMux(st *entstore.Store, v *view.View, tag string, reg *prometheus.Registry) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if reg != nil {
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}

	// Query the view state. Blocks until the view is live: queries sent
	// while rebuilding are stashed and answered afterwards.
	mux.HandleFunc("GET /api/view", func(w http.ResponseWriter, r *http.Request) {
		reply, err := v.Ask(r.Context(), "query")
		if err != nil {
			errmodel.WriteHTTP(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, reply)
	})

	mux.HandleFunc("GET /api/view/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"phase": v.Phase().String(),
			"live":  v.IsLive(),
		})
	})

	// Trigger a snapshot of the current state.
	mux.HandleFunc("POST /api/view/snapshot", func(w http.ResponseWriter, r *http.Request) {
		reply, err := v.Ask(r.Context(), "snapshot")
		if err != nil {
			errmodel.WriteHTTP(w, r, err)
			return
		}
		state, ok := reply.([]byte)
		if !ok {
			errmodel.WriteHTTP(w, r, errmodel.System("bad_snapshot_state", "handler returned non-bytes state", nil, nil))
			return
		}
		if err := v.RequestSnapshot(r.Context(), state); err != nil {
			errmodel.WriteHTTP(w, r, err)
			return
		}
		writeJSON(w, http.StatusAccepted, map[string]any{"requested": true})
	})

	// Append an event to the journal; the live view picks it up.
	mux.HandleFunc("POST /api/events", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			EntityID string          `json:"entity_id"`
			Type     string          `json:"type"`
			Payload  json.RawMessage `json:"payload"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			errmodel.WriteHTTP(w, r, errmodel.Validation("bad_json", "invalid request body", nil))
			return
		}
		if req.EntityID == "" {
			errmodel.WriteHTTP(w, r, errmodel.Validation("missing_entity_id", "entity_id is required", nil))
			return
		}
		if req.Type == "" {
			req.Type = "event"
		}
		rec, err := st.AppendEvent(r.Context(), entstore.EventRecord{
			EventID:  uuid.NewString(),
			Tag:      tag,
			EntityID: req.EntityID,
			Type:     req.Type,
			Payload:  req.Payload,
		})
		if err != nil {
			errmodel.WriteHTTP(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"event_id":   rec.EventID,
			"seq":        rec.Seq,
			"global_seq": rec.GlobalSeq,
		})
	})

	return mux
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
