package telemetry

import (
	"math"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveFrameCounts(t *testing.T) {
	m := New()
	for i := 0; i < 3; i++ {
		m.ObserveFrame(10 * time.Millisecond)
	}
	if got := testutil.ToFloat64(m.frames); got != 3 {
		t.Fatalf("frames=%v want 3", got)
	}
	m.SetFPS(58)
	if got := testutil.ToFloat64(m.fps); got != 58 {
		t.Fatalf("fps=%v want 58", got)
	}
}

func TestObservePickLabels(t *testing.T) {
	m := New()
	m.ObservePick(true)
	m.ObservePick(false)
	m.ObservePick(false)
	if got := testutil.ToFloat64(m.picks.WithLabelValues("hit")); got != 1 {
		t.Fatalf("hit=%v", got)
	}
	if got := testutil.ToFloat64(m.picks.WithLabelValues("miss")); got != 2 {
		t.Fatalf("miss=%v", got)
	}
}

func TestSummary(t *testing.T) {
	m := New()
	if s := m.Summary(); s.Samples != 0 {
		t.Fatalf("empty summary=%+v", s)
	}
	m.ObserveFrame(10 * time.Millisecond)
	m.ObserveFrame(20 * time.Millisecond)
	m.ObserveFrame(30 * time.Millisecond)
	s := m.Summary()
	if s.Samples != 3 || math.Abs(s.MeanMs-20) > 1e-9 || math.Abs(s.StdDevMs-10) > 1e-9 {
		t.Fatalf("summary=%+v", s)
	}
}

func TestSummaryWindowWraps(t *testing.T) {
	m := New()
	for i := 0; i < sampleWindow+10; i++ {
		m.ObserveFrame(5 * time.Millisecond)
	}
	if s := m.Summary(); s.Samples != sampleWindow || math.Abs(s.MeanMs-5) > 1e-9 {
		t.Fatalf("summary=%+v", s)
	}
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New()
	m.ObserveFrame(time.Millisecond)
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body := rec.Body.String()
	for _, name := range []string{"orrery_frames_total", "orrery_frame_seconds_bucket", "orrery_fps"} {
		if !strings.Contains(body, name) {
			t.Fatalf("metrics output missing %s", name)
		}
	}
}
