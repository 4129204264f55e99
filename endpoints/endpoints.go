// Package endpoints serves the admin HTTP surface (health and stats) for the
// dispatch daemon.
package endpoints

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/scootdev/dispatch/stats"
)

// NewAdminServer creates an admin HTTP server that renders health and stats
// endpoints for a running dispatch engine.
func NewAdminServer(addr string, stat stats.StatsReceiver) *AdminServer {
	return &AdminServer{
		Addr:  addr,
		Stats: stat,
	}
}

type AdminServer struct {
	Addr  string
	Stats stats.StatsReceiver
}

func (s *AdminServer) Serve() error {
	http.HandleFunc("/", helpHandler)
	http.HandleFunc("/health", healthHandler)
	http.HandleFunc("/admin/metrics.json", s.statsHandler)
	log.Println("Serving http & stats on", s.Addr)
	return http.ListenAndServe(s.Addr, nil)
}

func helpHandler(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "Common paths: '/health', '/admin/metrics.json'", 501)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintf(w, "ok")
}

func (s *AdminServer) statsHandler(w http.ResponseWriter, r *http.Request) {
	const contentTypeHdr = "Content-Type"
	const contentTypeVal = "application/json; charset=utf-8"
	w.Header().Set(contentTypeHdr, contentTypeVal)

	pretty := r.URL.Query().Get("pretty") == "true"
	str := s.Stats.Render(pretty)
	if _, err := io.Copy(w, bytes.NewBuffer(str)); err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
}

type StatScope string

// MakeStatsReceiver builds a latched, finagle-formatted StatsReceiver scoped
// to the given name, matching the precision/latch defaults the dispatch
// daemon runs with in production.
func MakeStatsReceiver(scope StatScope) stats.StatsReceiver {
	s, _ := stats.NewCustomStatsReceiver(
		stats.NewFinagleStatsRegistry,
		15*time.Second)
	return s.Scope(string(scope)).Precision(time.Millisecond)
}
