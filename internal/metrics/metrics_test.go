package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/vovakirdan/blockfall/internal/core"
)

func TestObserveEvents(t *testing.T) {
	m := New()

	m.ObserveEvents([]core.Event{
		{Kind: core.EventLocked},
		{Kind: core.EventLocked},
		{Kind: core.EventLinesCleared, Value: 2},
		{Kind: core.EventLocked},
		{Kind: core.EventLinesCleared, Value: 4},
		{Kind: core.EventPhaseChanged, Value: 1},
		{Kind: core.EventGameOver},
	}, 1230)

	if got := testutil.ToFloat64(m.PiecesLocked); got != 3 {
		t.Errorf("pieces locked = %v, want 3", got)
	}
	if got := testutil.ToFloat64(m.LinesCleared); got != 6 {
		t.Errorf("lines cleared = %v, want 6", got)
	}
	if got := testutil.ToFloat64(m.Clears.WithLabelValues("4")); got != 1 {
		t.Errorf("four-row clears = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.GamesOver); got != 1 {
		t.Errorf("games over = %v, want 1", got)
	}
}

func TestSessions(t *testing.T) {
	m := New()
	m.SessionStarted()
	m.SessionStarted()
	m.SessionEnded()

	if got := testutil.ToFloat64(m.ActiveSessions); got != 1 {
		t.Errorf("active sessions = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.Sessions); got != 2 {
		t.Errorf("sessions total = %v, want 2", got)
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.SessionStarted()
	m.SessionEnded()
	m.ObserveEvents([]core.Event{{Kind: core.EventGameOver}}, 10)
}

func TestHandlerExposesCollectors(t *testing.T) {
	m := New()
	m.SessionStarted()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), "blockfall_sessions_total 1") {
		t.Errorf("metrics output missing sessions counter:\n%s", body)
	}
}
