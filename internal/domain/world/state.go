package world

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/andrescamacho/airline-tycoon-go/internal/domain/competitor"
	"github.com/andrescamacho/airline-tycoon-go/internal/domain/corporate"
	"github.com/andrescamacho/airline-tycoon-go/internal/domain/finance"
	"github.com/andrescamacho/airline-tycoon-go/internal/domain/fleet"
	"github.com/andrescamacho/airline-tycoon-go/internal/domain/fuel"
	"github.com/andrescamacho/airline-tycoon-go/internal/domain/route"
	"github.com/andrescamacho/airline-tycoon-go/internal/domain/shared"
)

const (
	MaxLevel = 10

	economyHistoryCap    = 60
	reputationHistoryCap = 30

	hubSlotFee = 1200.0
)

// Hub is an owned base airport with a fixed slot capacity
type Hub struct {
	AirportID  string
	SlotsUsed  int
	SlotsTotal int
}

// DailyFee charges only for slots in use
func (h *Hub) DailyFee() float64 {
	return float64(h.SlotsUsed) * hubSlotFee
}

// EconomyEntry is one day of the rolling financial history
type EconomyEntry struct {
	Date     time.Time
	Revenue  float64
	Costs    float64
	Net      float64
	Funds    float64
	SpotFuel float64
}

// ReputationEntry is one day of the rolling reputation history
type ReputationEntry struct {
	Date  time.Time
	Delta float64
	Value float64
}

// State is the full simulation context a daily tick operates on
type State struct {
	Date       time.Time
	Money      float64
	Reputation float64
	Level      int

	Hubs map[string]*Hub

	Fleet         *fleet.Store
	Routes        *route.Index
	FuelMarket    *fuel.Market
	FuelLedger    *fuel.Ledger
	FuelProviders *fuel.ProviderMarket
	Competitors   *competitor.Engine
	Corporate     *corporate.Engine
	Loans         *finance.Engine

	Rand *rand.Rand

	EconomyHistory    []EconomyEntry
	ReputationHistory []ReputationEntry
}

// NewStateParams seeds a fresh game world
type NewStateParams struct {
	Seed          int64
	BaseFuelPrice float64
	StartMoney    float64
	StartLevel    int
	Start         time.Time
}

// NewState builds a world with all engines wired to one seeded source
func NewState(p NewStateParams) (*State, error) {
	if p.BaseFuelPrice <= 0 {
		return nil, fmt.Errorf("base fuel price must be positive, got %f", p.BaseFuelPrice)
	}
	if p.StartLevel < 1 || p.StartLevel > MaxLevel {
		return nil, fmt.Errorf("start level must be in [1,%d], got %d", MaxLevel, p.StartLevel)
	}
	rng := shared.NewRand(p.Seed)
	return &State{
		Date:          p.Start,
		Money:         p.StartMoney,
		Reputation:    50,
		Level:         p.StartLevel,
		Hubs:          make(map[string]*Hub),
		Fleet:         fleet.NewStore(),
		Routes:        route.NewIndex(),
		FuelMarket:    fuel.NewMarket(p.BaseFuelPrice),
		FuelLedger:    fuel.NewLedger(),
		FuelProviders: fuel.NewProviderMarket(p.Start, rng),
		Competitors:   competitor.NewEngine(competitor.Profiles, AirportIDs(), rng),
		Corporate:     corporate.NewEngine(),
		Loans:         finance.NewEngine(),
		Rand:          rng,
	}, nil
}

// AdjustReputation is the single mutation point for the reputation score
func (s *State) AdjustReputation(delta float64) float64 {
	s.Reputation = shared.Clamp(s.Reputation+delta, 0, 100)
	return s.Reputation
}

// EstablishHub opens a base at an airport the player's level allows
func (s *State) EstablishHub(airportID string, slots int) error {
	ap, ok := Airports[airportID]
	if !ok {
		return fmt.Errorf("unknown airport %q", airportID)
	}
	if ap.MinLevel > s.Level {
		return shared.Rejectf("airport %s requires level %d", airportID, ap.MinLevel)
	}
	if _, exists := s.Hubs[airportID]; exists {
		return shared.Rejectf("hub already established at %s", airportID)
	}
	if slots < 1 {
		return fmt.Errorf("slots must be positive, got %d", slots)
	}
	s.Hubs[airportID] = &Hub{AirportID: airportID, SlotsTotal: slots}
	return nil
}

// HubDailyFees sums the slot fees across all hubs
func (s *State) HubDailyFees() float64 {
	var total float64
	for _, h := range s.Hubs {
		total += h.DailyFee()
	}
	return total
}

// SyncHubSlots recounts used slots from active route assignments
func (s *State) SyncHubSlots() {
	for _, h := range s.Hubs {
		h.SlotsUsed = 0
	}
	for _, r := range s.Routes.All() {
		if !r.IsActive() {
			continue
		}
		for _, id := range []string{r.Origin, r.Dest} {
			if h, ok := s.Hubs[id]; ok {
				h.SlotsUsed++
			}
		}
	}
}

// RegionsServed counts distinct regions touched by active routes
func (s *State) RegionsServed() int {
	seen := make(map[string]bool)
	for _, r := range s.Routes.All() {
		if !r.IsActive() {
			continue
		}
		for _, id := range []string{r.Origin, r.Dest} {
			if ap, ok := Airports[id]; ok {
				seen[ap.Region] = true
			}
		}
	}
	return len(seen)
}

// RoutesPerHub averages active routes over established hubs
func (s *State) RoutesPerHub() float64 {
	if len(s.Hubs) == 0 {
		return 0
	}
	active := 0
	for _, r := range s.Routes.All() {
		if r.IsActive() {
			active++
		}
	}
	return float64(active) / float64(len(s.Hubs))
}

// RecordEconomy appends a day to the bounded economy window
func (s *State) RecordEconomy(e EconomyEntry) {
	s.EconomyHistory = append(s.EconomyHistory, e)
	if len(s.EconomyHistory) > economyHistoryCap {
		s.EconomyHistory = s.EconomyHistory[len(s.EconomyHistory)-economyHistoryCap:]
	}
}

// RecordReputation appends a day to the bounded reputation window
func (s *State) RecordReputation(e ReputationEntry) {
	s.ReputationHistory = append(s.ReputationHistory, e)
	if len(s.ReputationHistory) > reputationHistoryCap {
		s.ReputationHistory = s.ReputationHistory[len(s.ReputationHistory)-reputationHistoryCap:]
	}
}

// AverageDailyGross averages revenue over the recorded window
func (s *State) AverageDailyGross() float64 {
	if len(s.EconomyHistory) == 0 {
		return 0
	}
	var total float64
	for _, e := range s.EconomyHistory {
		total += e.Revenue
	}
	return total / float64(len(s.EconomyHistory))
}

// LastDailyGross returns the most recent recorded day's revenue, the figure
// loan capacity is computed from
func (s *State) LastDailyGross() float64 {
	if len(s.EconomyHistory) == 0 {
		return 0
	}
	return s.EconomyHistory[len(s.EconomyHistory)-1].Revenue
}

// levelRequirement gates progression on routes, reputation and cash reserves
type levelRequirement struct {
	routes     int
	reputation float64
	funds      float64
}

var levelTable = map[int]levelRequirement{
	2:  {routes: 2, reputation: 30, funds: 100_000},
	3:  {routes: 4, reputation: 38, funds: 400_000},
	4:  {routes: 7, reputation: 46, funds: 1_200_000},
	5:  {routes: 10, reputation: 54, funds: 3_000_000},
	6:  {routes: 14, reputation: 60, funds: 7_000_000},
	7:  {routes: 18, reputation: 66, funds: 15_000_000},
	8:  {routes: 24, reputation: 72, funds: 30_000_000},
	9:  {routes: 30, reputation: 78, funds: 60_000_000},
	10: {routes: 40, reputation: 85, funds: 120_000_000},
}

// CheckLevelUp promotes the player when the next tier's gates are all met.
// At most one level per call.
func (s *State) CheckLevelUp() bool {
	if s.Level >= MaxLevel {
		return false
	}
	req := levelTable[s.Level+1]
	active := 0
	for _, r := range s.Routes.All() {
		if r.IsActive() {
			active++
		}
	}
	if active < req.routes || s.Reputation < req.reputation || s.Money < req.funds {
		return false
	}
	s.Level++
	return true
}
