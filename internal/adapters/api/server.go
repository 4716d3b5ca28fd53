package api

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/andrescamacho/airline-tycoon-go/internal/domain/world"
)

// StatusServer exposes a read-only view of the running simulation over HTTP.
// The daemon's tick loop owns the state; handlers read it under the shared
// mutex so a tick never interleaves with a response.
type StatusServer struct {
	mu    *sync.RWMutex
	state *world.State
}

// NewStatusServer creates the status API over the daemon's state and lock
func NewStatusServer(mu *sync.RWMutex, state *world.State) *StatusServer {
	return &StatusServer{mu: mu, state: state}
}

// Router builds the chi route tree
func (s *StatusServer) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/health", s.handleHealth)
	r.Get("/state", s.handleState)
	r.Get("/fuel", s.handleFuel)
	r.Get("/competition", s.handleCompetition)
	return r
}

func (s *StatusServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func (s *StatusServer) handleState(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := s.state
	writeJSON(w, map[string]interface{}{
		"date":       st.Date.Format("2006-01-02"),
		"money":      st.Money,
		"reputation": st.Reputation,
		"level":      st.Level,
		"fleet":      st.Fleet.Count(),
		"routes":     st.Routes.Count(),
		"hubs":       len(st.Hubs),
		"economy":    st.EconomyHistory,
	})
}

func (s *StatusServer) handleFuel(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := s.state
	m := st.FuelMarket
	writeJSON(w, map[string]interface{}{
		"basePrice":  m.BasePrice(),
		"spotPrice":  m.SpotPrice(),
		"regime":     m.Regime(),
		"daysLeft":   m.DaysLeftInRegime(),
		"inCrisis":   m.InCrisis(),
		"crisisDays": m.CrisisDays(),
		"history":    m.History(),
		"efficiency": st.FuelLedger.EfficiencySummary(m.SpotPrice(), st.Date),
		"offers":     st.FuelProviders.Offers(),
	})
}

func (s *StatusServer) handleCompetition(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := s.state
	status := st.Competitors.CompetitionStatus(st.Routes.Count(), st.Fleet.Count())
	writeJSON(w, status)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
