package competitor

import (
	"time"

	"github.com/andrescamacho/airline-tycoon-go/internal/domain/fuel"
	"github.com/andrescamacho/airline-tycoon-go/internal/domain/shared"
)

// PriceMultiplierMin and PriceMultiplierMax bound rival pricing
const (
	PriceMultiplierMin = 0.8
	PriceMultiplierMax = 1.3

	maxHubs = 5
)

// Route is a rival city pair
type Route struct {
	Origin           string
	Dest             string
	FrequencyPerWeek int
}

// Airline is one rival carrier, seeded from a static profile and evolved
// daily by the engine
type Airline struct {
	Name            string
	Hubs            []string
	Routes          []Route
	MarketShare     float64
	Aggressiveness  float64 // [0.3, 1.1]
	PriceMultiplier float64
	Reputation      float64
	FleetSize       int
	FuelContracts   []*fuel.Contract
	ExpansionLevel  int
}

// AILevel derives the rival's decision sophistication from fleet size;
// level 4 and up runs fuel hedging
func (a *Airline) AILevel() int {
	return a.FleetSize / 50
}

// ServesRoute reports whether the rival flies the city pair in either
// direction
func (a *Airline) ServesRoute(origin, dest string) bool {
	for _, r := range a.Routes {
		if (r.Origin == origin && r.Dest == dest) || (r.Origin == dest && r.Dest == origin) {
			return true
		}
	}
	return false
}

// ActiveFuelContracts returns the rival's unexpired hedges
func (a *Airline) ActiveFuelContracts(now time.Time) []*fuel.Contract {
	var out []*fuel.Contract
	for _, c := range a.FuelContracts {
		if c.Usable(now) {
			out = append(out, c)
		}
	}
	return out
}

// PurgeExpiredContracts drops hedges past their window
func (a *Airline) PurgeExpiredContracts(now time.Time) {
	kept := a.FuelContracts[:0]
	for _, c := range a.FuelContracts {
		if c.Expired(now) {
			continue
		}
		kept = append(kept, c)
	}
	a.FuelContracts = kept
}

// clampPrice bounds the rival's multiplier
func (a *Airline) clampPrice() {
	a.PriceMultiplier = shared.Clamp(a.PriceMultiplier, PriceMultiplierMin, PriceMultiplierMax)
}

// maxRoutes is the rival's network size cap
func (a *Airline) maxRoutes() int {
	limit := a.FleetSize / 2
	if limit < 3 {
		limit = 3
	}
	return limit
}
