package fleet

import "time"

// Store holds the owned fleet behind an id index so engines never scan
// slices for lookups
type Store struct {
	byID  map[string]*Aircraft
	order []string
}

// NewStore creates an empty fleet store
func NewStore() *Store {
	return &Store{byID: make(map[string]*Aircraft)}
}

// Add registers an aircraft; an existing id is replaced in place
func (s *Store) Add(a *Aircraft) {
	if _, ok := s.byID[a.ID]; !ok {
		s.order = append(s.order, a.ID)
	}
	s.byID[a.ID] = a
}

// Get returns the aircraft with the given id
func (s *Store) Get(id string) (*Aircraft, bool) {
	a, ok := s.byID[id]
	return a, ok
}

// Remove deletes an aircraft from the store
func (s *Store) Remove(id string) {
	if _, ok := s.byID[id]; !ok {
		return
	}
	delete(s.byID, id)
	for i, other := range s.order {
		if other == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// All returns the fleet in insertion order
func (s *Store) All() []*Aircraft {
	out := make([]*Aircraft, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// Count returns the fleet size
func (s *Store) Count() int {
	return len(s.byID)
}

// AverageAgeDays returns the mean airframe age, 0 for an empty fleet
func (s *Store) AverageAgeDays(now time.Time) float64 {
	if len(s.byID) == 0 {
		return 0
	}
	total := 0
	for _, a := range s.byID {
		total += a.AgeDays(now)
	}
	return float64(total) / float64(len(s.byID))
}

// Categories returns the number of distinct aircraft categories owned
func (s *Store) Categories() int {
	seen := make(map[string]bool)
	for _, a := range s.byID {
		if a.Stats.Category != "" {
			seen[a.Stats.Category] = true
		}
	}
	return len(seen)
}

// FleetValue sums a nominal per-airframe value, used for loan capacity
func (s *Store) FleetValue(perAircraft float64) float64 {
	return float64(len(s.byID)) * perAircraft
}
