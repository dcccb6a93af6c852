// Package metrics exposes Prometheus counters for riffrun sessions.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/common/expfmt"
)

const namespace = "riffrun"

// Recorder owns the session metrics and the registry they live in.
// A nil *Recorder is valid and records nothing.
type Recorder struct {
	registry *prometheus.Registry

	started   *prometheus.CounterVec
	finished  *prometheus.CounterVec
	ticks     *prometheus.CounterVec
	collected *prometheus.CounterVec
	active    prometheus.Gauge
}

// NewRecorder creates a Recorder with its own registry, including the Go
// runtime and process collectors.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		started: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_started_total",
			Help:      "Sessions started, by game.",
		}, []string{"game"}),
		finished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_finished_total",
			Help:      "Sessions finished, by game and outcome.",
		}, []string{"game", "outcome"}),
		ticks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ticks_total",
			Help:      "Simulation ticks processed while playing.",
		}, []string{"game"}),
		collected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notes_collected_total",
			Help:      "Notes collected across all sessions.",
		}, []string{"game"}),
		active: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Sessions currently connected.",
		}),
	}

	r.registry.MustRegister(
		r.started, r.finished, r.ticks, r.collected, r.active,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// SessionStarted counts a new session.
func (r *Recorder) SessionStarted(game string) {
	if r == nil {
		return
	}
	r.started.WithLabelValues(game).Inc()
}

// SessionFinished counts a session that ended with outcome.
func (r *Recorder) SessionFinished(game, outcome string) {
	if r == nil {
		return
	}
	r.finished.WithLabelValues(game, outcome).Inc()
}

// Tick counts one simulation tick and the notes collected during it.
func (r *Recorder) Tick(game string, collected int) {
	if r == nil {
		return
	}
	r.ticks.WithLabelValues(game).Inc()
	if collected > 0 {
		r.collected.WithLabelValues(game).Add(float64(collected))
	}
}

// Connected tracks a connection for the active sessions gauge.
// The returned func must be called once when the connection closes.
func (r *Recorder) Connected() func() {
	if r == nil {
		return func() {}
	}
	r.active.Inc()
	return r.active.Dec
}

// Handler returns the /metrics HTTP handler for this recorder.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is cancelled.
func (r *Recorder) Serve(ctx context.Context, addr string, logger *log.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", r.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("Metrics endpoint available", "addr", addr, "path", "/metrics")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// WriteText writes the riffrun metric families in the Prometheus text format.
// Runtime and process collectors are left out.
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather failed: %w", err)
	}
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), namespace+"_") {
			continue
		}
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("metrics: cannot write %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
