package metrics

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	stateMu sync.RWMutex
	state   any
)

// PublishState stores the latest snapshot served on /debug/state. The
// snapshot must not be mutated after publishing.
func PublishState(snapshot any) {
	stateMu.Lock()
	state = snapshot
	stateMu.Unlock()
}

// NewRouter builds the observability routes. Reads are open to any origin
// so a local tuning page can poll /debug/state.
func NewRouter() *chi.Mux {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Get("/debug/state", handleState)
	return r
}

func handleState(w http.ResponseWriter, r *http.Request) {
	stateMu.RLock()
	snap := state
	stateMu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	if snap == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err := json.NewEncoder(w).Encode(snap); err != nil {
		log.Printf("Warning: Could not encode state: %v", err)
	}
}

// Serve starts the observability server in the background. An empty address
// disables it.
func Serve(addr string) {
	if addr == "" {
		return
	}
	go func() {
		log.Printf("metrics: serving on http://%s/metrics", addr)
		if err := http.ListenAndServe(addr, NewRouter()); err != nil {
			log.Printf("Warning: metrics server stopped: %v", err)
		}
	}()
}
