package competitor

import (
	"math/rand"
	"time"

	"github.com/andrescamacho/airline-tycoon-go/internal/domain/fuel"
	"github.com/andrescamacho/airline-tycoon-go/internal/domain/shared"
)

// Engine maintains the rival carriers and evolves them once per day
type Engine struct {
	airlines []*Airline
}

// NewEngine instantiates one rival per static profile, seeds its hub network,
// and rolls its temperament. airports is the reachable airport id set routes
// draw destinations from.
func NewEngine(profiles []Profile, airports []string, rng *rand.Rand) *Engine {
	e := &Engine{}
	for _, p := range profiles {
		a := &Airline{
			Name:            p.Name,
			Hubs:            []string{p.Hub},
			Aggressiveness:  shared.RandRange(rng, 0.3, 1.1),
			PriceMultiplier: 1.0,
			Reputation:      p.Reputation,
			FleetSize:       p.FleetSize,
			ExpansionLevel:  1,
		}
		routeCount := p.FleetSize / 12
		if routeCount < 4 {
			routeCount = 4
		}
		for i := 0; i < routeCount; i++ {
			dest := randomDestination(a.Hubs[0], airports, rng)
			if dest == "" {
				break
			}
			a.Routes = append(a.Routes, Route{
				Origin:           a.Hubs[0],
				Dest:             dest,
				FrequencyPerWeek: initialFrequency(p.FleetSize, rng),
			})
		}
		e.airlines = append(e.airlines, a)
	}
	return e
}

// RestoreEngine rebuilds the engine around previously evolved rivals
func RestoreEngine(airlines []*Airline) *Engine {
	return &Engine{airlines: airlines}
}

// Airlines returns the rival carriers
func (e *Engine) Airlines() []*Airline { return e.airlines }

// initialFrequency sizes per-route frequency from the fleet tier
func initialFrequency(fleetSize int, rng *rand.Rand) int {
	switch {
	case fleetSize < 100:
		return shared.RandIntRange(rng, 1, 2)
	case fleetSize <= 300:
		return shared.RandIntRange(rng, 2, 4)
	default:
		return shared.RandIntRange(rng, 3, 8)
	}
}

// randomDestination draws an airport different from origin
func randomDestination(origin string, airports []string, rng *rand.Rand) string {
	if len(airports) < 2 {
		return ""
	}
	for {
		dest := airports[rng.Intn(len(airports))]
		if dest != origin {
			return dest
		}
	}
}

// UpdateRoutes runs one day of network evolution for every rival: rare hub
// expansion, fleet-scaled route additions, and occasional retreats.
func (e *Engine) UpdateRoutes(airports []string, rng *rand.Rand) {
	for _, a := range e.airlines {
		// Hub expansion: rare, capped at five hubs
		if len(a.Hubs) < maxHubs && shared.Chance(rng, 0.02) {
			hub := randomDestination("", airports, rng)
			if hub != "" && !contains(a.Hubs, hub) {
				a.Hubs = append(a.Hubs, hub)
				a.ExpansionLevel++
				seeded := rng.Intn(4) // 0-3 routes from the new hub
				for i := 0; i < seeded && len(a.Routes) < a.maxRoutes(); i++ {
					dest := randomDestination(hub, airports, rng)
					if dest == "" {
						break
					}
					a.Routes = append(a.Routes, Route{
						Origin:           hub,
						Dest:             dest,
						FrequencyPerWeek: initialFrequency(a.FleetSize, rng),
					})
				}
			}
		}

		// Growth: bigger fleets expand faster, up to the network cap
		growP := float64(a.FleetSize) / 1000
		if growP > 0.15 {
			growP = 0.15
		}
		if len(a.Routes) < a.maxRoutes() && shared.Chance(rng, growP) {
			origin := a.Hubs[rng.Intn(len(a.Hubs))]
			dest := randomDestination(origin, airports, rng)
			if dest != "" {
				a.Routes = append(a.Routes, Route{
					Origin:           origin,
					Dest:             dest,
					FrequencyPerWeek: initialFrequency(a.FleetSize, rng),
				})
			}
		}

		// Retreat: small carriers shed routes more often
		dropP := 0.08 - float64(a.FleetSize)/1000
		if dropP < 0.02 {
			dropP = 0.02
		}
		if len(a.Routes) > 0 && shared.Chance(rng, dropP) {
			a.Routes = a.Routes[:len(a.Routes)-1]
		}
	}
}

// UpdatePrices runs one day of pricing drift: random noise, an
// aggressiveness-derived discount, and crisis repricing for unhedged rivals.
func (e *Engine) UpdatePrices(market *fuel.Market, now time.Time, rng *rand.Rand) {
	for _, a := range e.airlines {
		noise := 1 + shared.RandRange(rng, -0.05, 0.05)
		discount := 1 - 0.05*(a.Aggressiveness-0.7)
		a.PriceMultiplier *= noise * discount

		if market.InCrisis() {
			if len(a.ActiveFuelContracts(now)) == 0 {
				a.PriceMultiplier *= 1 + shared.RandRange(rng, 0.05, 0.10)
			} else {
				a.PriceMultiplier *= 0.98
			}
		}
		a.clampPrice()
	}
}

// RunMonthlyHedging lets sophisticated rivals (AI level 4+) take 30-day
// hedges: conservative temperaments always do, anyone does with 70%
// probability during a crisis. The orchestrator calls this on day 1 of each
// month.
func (e *Engine) RunMonthlyHedging(market *fuel.Market, now time.Time, rng *rand.Rand) {
	for _, a := range e.airlines {
		a.PurgeExpiredContracts(now)
		if a.AILevel() < 4 {
			continue
		}
		hedges := a.Aggressiveness < 0.6 || (market.InCrisis() && shared.Chance(rng, 0.70))
		if !hedges {
			continue
		}
		volume := float64(a.FleetSize) * 1000
		a.FuelContracts = append(a.FuelContracts,
			fuel.NewContract("", "", volume, market.SpotPrice(), now, 30))
	}
}

// CompetitionImpact is the demand multiplier on a player route: each rival
// sharing the city pair removes 15% of demand, floored at 40% of baseline.
func (e *Engine) CompetitionImpact(origin, dest string) float64 {
	n := len(e.CompetitorsOnRoute(origin, dest))
	impact := 1 - 0.15*float64(n)
	if impact < 0.4 {
		impact = 0.4
	}
	return impact
}

// CompetitorsOnRoute returns the rivals serving a city pair in either
// direction
func (e *Engine) CompetitorsOnRoute(origin, dest string) []*Airline {
	var out []*Airline
	for _, a := range e.airlines {
		if a.ServesRoute(origin, dest) {
			out = append(out, a)
		}
	}
	return out
}

// ShareEntry is one carrier's slice of the market
type ShareEntry struct {
	Name  string
	Share float64
}

// Status is the normalized market-share table including the player
type Status struct {
	PlayerShare float64
	Airlines    []ShareEntry
}

// CompetitionStatus computes market-share weights from network size, hub
// presence, and fleet, normalized over every carrier plus the player. Each
// rival's MarketShare field is refreshed as a side effect.
func (e *Engine) CompetitionStatus(playerRoutes, playerFleet int) Status {
	playerWeight := 1.5*float64(playerRoutes) + float64(playerFleet)/5

	total := playerWeight
	weights := make([]float64, len(e.airlines))
	for i, a := range e.airlines {
		w := float64(len(a.Routes)) + 2*float64(len(a.Hubs)) + float64(a.FleetSize)/50
		weights[i] = w
		total += w
	}
	if total == 0 {
		return Status{}
	}

	st := Status{PlayerShare: playerWeight / total}
	for i, a := range e.airlines {
		a.MarketShare = weights[i] / total
		st.Airlines = append(st.Airlines, ShareEntry{Name: a.Name, Share: a.MarketShare})
	}
	return st
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
