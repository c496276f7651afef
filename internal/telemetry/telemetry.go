// Package telemetry records frame timing and pick outcomes. Metrics live in a
// private registry that is only exposed over HTTP when an address is configured.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gonum.org/v1/gonum/stat"
)

// sampleWindow bounds the frame-time history kept for Summary.
const sampleWindow = 600

type Metrics struct {
	registry *prometheus.Registry

	frames        prometheus.Counter
	fps           prometheus.Gauge
	frameDuration prometheus.Histogram
	picks         *prometheus.CounterVec

	samples []float64 // milliseconds, ring
	next    int
	full    bool
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		frames: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "orrery_frames_total",
			Help: "Frames stepped",
		}),
		fps: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "orrery_fps",
			Help: "Last reported frames per second",
		}),
		frameDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "orrery_frame_seconds",
			Help:    "Time spent stepping and rendering one frame",
			Buckets: []float64{0.002, 0.004, 0.008, 0.016, 0.033, 0.066, 0.133},
		}),
		picks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orrery_picks_total",
				Help: "Pointer picks by result",
			},
			[]string{"result"},
		),
		samples: make([]float64, sampleWindow),
	}

	m.registry.MustRegister(m.frames)
	m.registry.MustRegister(m.fps)
	m.registry.MustRegister(m.frameDuration)
	m.registry.MustRegister(m.picks)

	return m
}

// Registry exposes the private registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// ObserveFrame records the work time of one frame.
func (m *Metrics) ObserveFrame(d time.Duration) {
	m.frames.Inc()
	m.frameDuration.Observe(d.Seconds())

	m.samples[m.next] = float64(d) / float64(time.Millisecond)
	m.next++
	if m.next == len(m.samples) {
		m.next = 0
		m.full = true
	}
}

func (m *Metrics) SetFPS(fps int) { m.fps.Set(float64(fps)) }

// ObservePick counts a click pick as "hit" or "miss".
func (m *Metrics) ObservePick(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.picks.WithLabelValues(result).Inc()
}

// Summary describes the recent frame times.
type Summary struct {
	Samples  int
	MeanMs   float64
	StdDevMs float64
}

func (s Summary) String() string {
	return fmt.Sprintf("frames=%d mean=%.2fms stddev=%.2fms", s.Samples, s.MeanMs, s.StdDevMs)
}

// Summary computes mean and standard deviation over the sample window.
func (m *Metrics) Summary() Summary {
	xs := m.samples[:m.next]
	if m.full {
		xs = m.samples
	}
	if len(xs) == 0 {
		return Summary{}
	}
	if len(xs) == 1 {
		return Summary{Samples: 1, MeanMs: xs[0]}
	}
	mean, std := stat.MeanStdDev(xs, nil)
	return Summary{Samples: len(xs), MeanMs: mean, StdDevMs: std}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is done.
func (m *Metrics) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("telemetry: serve %s: %w", addr, err)
	}
}
