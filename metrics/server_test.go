package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestStateEndpoint(t *testing.T) {
	r := NewRouter()

	PublishState(nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/state", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("empty state code = %d", rec.Code)
	}

	PublishState(map[string]string{"attack": "Active"})
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/state", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"attack":"Active"`) {
		t.Fatalf("state = %d %q", rec.Code, rec.Body.String())
	}
}

func TestMetricsEndpointExportsCounters(t *testing.T) {
	AttackStarted("Punch")
	AttackRejected("cooldown")

	rec := httptest.NewRecorder()
	NewRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()
	for _, want := range []string{
		`beachbomb_attacks_started_total{move="Punch"}`,
		`beachbomb_attacks_rejected_total{reason="cooldown"}`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output missing %s", want)
		}
	}
}

func TestStateAllowsCrossOrigin(t *testing.T) {
	PublishState(map[string]int{"loadout": 1})
	req := httptest.NewRequest(http.MethodGet, "/debug/state", nil)
	req.Header.Set("Origin", "http://localhost:5173")

	rec := httptest.NewRecorder()
	NewRouter().ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}
