package route

import (
	"time"

	"github.com/google/uuid"

	"github.com/andrescamacho/airline-tycoon-go/internal/domain/fleet"
	"github.com/andrescamacho/airline-tycoon-go/internal/domain/shared"
)

// AssignmentStatus marks whether an aircraft assignment is flying the route
type AssignmentStatus string

const (
	AssignmentActive    AssignmentStatus = "ACTIVE"
	AssignmentSuspended AssignmentStatus = "SUSPENDED"
)

// Assignment binds one aircraft to a route
type Assignment struct {
	PlaneID         string
	Status          AssignmentStatus
	FrequencyPerDay int
}

// ValidFrequencies are the allowed weekly departure counts
var ValidFrequencies = []int{1, 2, 3, 7, 14}

const (
	// PriceMultiplierMin and PriceMultiplierMax bound player pricing
	PriceMultiplierMin = 0.7
	PriceMultiplierMax = 1.5

	eventLogCap = 20
)

// Route is one player city pair. Its revenue cache is recomputed by the
// economy engine whenever pricing, frequency, or assignments change and on
// every daily tick.
type Route struct {
	ID               string
	Origin           string
	Dest             string
	DistanceKm       float64
	Seats            fleet.SeatConfig
	PriceMultiplier  float64
	FrequencyPerWeek int
	Assignments      []Assignment
	DailyRevenue     float64 // derived, cached by the daily tick
	EventLog         []RouteEvent
}

// RouteEvent is one line of a route's bounded event log
type RouteEvent struct {
	Date    time.Time
	Message string
}

// New creates a route with pricing at par
func New(origin, dest string, distanceKm float64, seats fleet.SeatConfig, frequencyPerWeek int) *Route {
	return &Route{
		ID:               uuid.NewString(),
		Origin:           origin,
		Dest:             dest,
		DistanceKm:       distanceKm,
		Seats:            seats,
		PriceMultiplier:  1.0,
		FrequencyPerWeek: frequencyPerWeek,
	}
}

// SetPriceMultiplier clamps the player's pricing into [0.7, 1.5]
func (r *Route) SetPriceMultiplier(m float64) {
	r.PriceMultiplier = shared.Clamp(m, PriceMultiplierMin, PriceMultiplierMax)
}

// SetFrequency snaps the weekly frequency onto the allowed set (nearest
// value, ties rounding down)
func (r *Route) SetFrequency(perWeek int) {
	best := ValidFrequencies[0]
	for _, f := range ValidFrequencies {
		if abs(f-perWeek) < abs(best-perWeek) {
			best = f
		}
	}
	r.FrequencyPerWeek = best
}

// Assign adds an active aircraft assignment
func (r *Route) Assign(planeID string, frequencyPerDay int) {
	r.Assignments = append(r.Assignments, Assignment{
		PlaneID:         planeID,
		Status:          AssignmentActive,
		FrequencyPerDay: frequencyPerDay,
	})
}

// Unassign removes the assignment for the given aircraft
func (r *Route) Unassign(planeID string) {
	for i, a := range r.Assignments {
		if a.PlaneID == planeID {
			r.Assignments = append(r.Assignments[:i], r.Assignments[i+1:]...)
			return
		}
	}
}

// ActiveAssignments returns assignments currently flying
func (r *Route) ActiveAssignments() []Assignment {
	var out []Assignment
	for _, a := range r.Assignments {
		if a.Status == AssignmentActive {
			out = append(out, a)
		}
	}
	return out
}

// IsActive reports whether any assignment is flying the route
func (r *Route) IsActive() bool {
	return len(r.ActiveAssignments()) > 0
}

// Touches reports whether the route serves the given airport
func (r *Route) Touches(airportID string) bool {
	return r.Origin == airportID || r.Dest == airportID
}

// LogEvent appends to the bounded route event log
func (r *Route) LogEvent(date time.Time, message string) {
	r.EventLog = append(r.EventLog, RouteEvent{Date: date, Message: message})
	if len(r.EventLog) > eventLogCap {
		r.EventLog = r.EventLog[len(r.EventLog)-eventLogCap:]
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Index holds player routes behind an id map
type Index struct {
	byID  map[string]*Route
	order []string
}

// NewIndex creates an empty route index
func NewIndex() *Index {
	return &Index{byID: make(map[string]*Route)}
}

// Add registers a route
func (x *Index) Add(r *Route) {
	if _, ok := x.byID[r.ID]; !ok {
		x.order = append(x.order, r.ID)
	}
	x.byID[r.ID] = r
}

// Get returns the route with the given id
func (x *Index) Get(id string) (*Route, bool) {
	r, ok := x.byID[id]
	return r, ok
}

// Remove deletes a route
func (x *Index) Remove(id string) {
	if _, ok := x.byID[id]; !ok {
		return
	}
	delete(x.byID, id)
	for i, other := range x.order {
		if other == id {
			x.order = append(x.order[:i], x.order[i+1:]...)
			break
		}
	}
}

// All returns routes in insertion order
func (x *Index) All() []*Route {
	out := make([]*Route, 0, len(x.order))
	for _, id := range x.order {
		out = append(out, x.byID[id])
	}
	return out
}

// Count returns the number of routes
func (x *Index) Count() int {
	return len(x.byID)
}

// DensityAt counts routes touching the given airport
func (x *Index) DensityAt(airportID string) int {
	n := 0
	for _, id := range x.order {
		if x.byID[id].Touches(airportID) {
			n++
		}
	}
	return n
}
