// metrics.go
package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

// Metrics はスイープの進み具合を Prometheus で見るためのもの。
// nil のままでも各メソッドは何もしないだけ。
type Metrics struct {
	gatherer prometheus.Gatherer

	GridSamples   prometheus.Counter
	DomainSkips   prometheus.Counter
	RowsEmitted   *prometheus.CounterVec
	SolveDuration prometheus.Histogram
}

// NewMetrics: reg が nil ならデフォルトレジストリに登録する
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	m := &Metrics{
		gatherer: gatherer,
		GridSamples: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "loadcoil_grid_samples_total",
			Help: "Frequency samples evaluated by the antenna inductance model.",
		}),
		DomainSkips: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "loadcoil_grid_domain_skips_total",
			Help: "Frequency samples excluded because the model is undefined there.",
		}),
		RowsEmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "loadcoil_rows_emitted_total",
			Help: "Table rows written, labeled by report mode.",
		}, []string{"mode"}),
		SolveDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "loadcoil_solve_duration_seconds",
			Help:    "Time spent selecting the resonant frequency for one target inductance.",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),
	}
	for _, c := range []prometheus.Collector{m.GridSamples, m.DomainSkips, m.RowsEmitted, m.SolveDuration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observeGrid(total, skipped int) {
	if m == nil {
		return
	}
	m.GridSamples.Add(float64(total))
	m.DomainSkips.Add(float64(skipped))
}

func (m *Metrics) observeSolve(start time.Time) {
	if m == nil {
		return
	}
	m.SolveDuration.Observe(time.Since(start).Seconds())
}

func (m *Metrics) rowEmitted(mode Mode) {
	if m == nil {
		return
	}
	m.RowsEmitted.WithLabelValues(string(mode)).Inc()
}

// Handler は /metrics 用の http.Handler
func (m *Metrics) Handler() http.Handler {
	gatherer := m.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Serve は addr で /metrics を公開し、ctx が終わったら止める。
func (m *Metrics) Serve(ctx context.Context, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	go func() {
		log.WithField("addr", addr).Info("serving metrics")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Warn("metrics server stopped")
		}
	}()
}
