package competitor_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/airline-tycoon-go/internal/domain/competitor"
	"github.com/andrescamacho/airline-tycoon-go/internal/domain/fuel"
)

var day0 = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

var testAirports = []string{"JFK", "LAX", "LHR", "CDG", "FRA", "SIN", "NRT", "DXB", "SYD", "GRU"}

func TestNewEngine_SeedsAllProfiles(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	e := competitor.NewEngine(competitor.Profiles, testAirports, rng)

	require.Len(t, e.Airlines(), 49)
	for _, a := range e.Airlines() {
		assert.GreaterOrEqual(t, a.Aggressiveness, 0.3)
		assert.LessOrEqual(t, a.Aggressiveness, 1.1)
		assert.Len(t, a.Hubs, 1)
		assert.GreaterOrEqual(t, len(a.Routes), 4, "%s seeds at least four routes", a.Name)

		want := a.FleetSize / 12
		if want < 4 {
			want = 4
		}
		assert.Equal(t, want, len(a.Routes))
	}
}

func TestEngine_CompetitionImpact(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	e := competitor.NewEngine(competitor.Profiles[:6], testAirports, rng)

	// Force a known overlap
	for i, a := range e.Airlines() {
		a.Routes = nil
		if i < 3 {
			a.Routes = append(a.Routes, competitor.Route{Origin: "JFK", Dest: "LHR", FrequencyPerWeek: 7})
		}
	}

	assert.InDelta(t, 0.55, e.CompetitionImpact("JFK", "LHR"), 1e-9)
	// Reverse direction counts the same rivals
	assert.InDelta(t, 0.55, e.CompetitionImpact("LHR", "JFK"), 1e-9)
	assert.Equal(t, 1.0, e.CompetitionImpact("CDG", "FRA"))
	assert.Len(t, e.CompetitorsOnRoute("JFK", "LHR"), 3)
}

func TestEngine_CompetitionImpactFloor(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	e := competitor.NewEngine(competitor.Profiles[:8], testAirports, rng)

	for _, a := range e.Airlines() {
		a.Routes = []competitor.Route{{Origin: "JFK", Dest: "LHR", FrequencyPerWeek: 7}}
	}

	// Eight rivals would remove 120% of demand without the floor
	assert.Equal(t, 0.4, e.CompetitionImpact("JFK", "LHR"))
}

func TestEngine_UpdatePricesStaysClamped(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	e := competitor.NewEngine(competitor.Profiles, testAirports, rng)
	market := fuel.NewMarket(1.0)

	for day := 0; day < 300; day++ {
		e.UpdatePrices(market, day0.AddDate(0, 0, day), rng)
		for _, a := range e.Airlines() {
			assert.GreaterOrEqual(t, a.PriceMultiplier, 0.8)
			assert.LessOrEqual(t, a.PriceMultiplier, 1.3)
		}
	}
}

func TestEngine_CrisisSurchargeForUnhedgedRivals(t *testing.T) {
	// Arrange - a large aggressive carrier with no hedges during a crisis
	rng := rand.New(rand.NewSource(5))
	e := competitor.NewEngine(competitor.Profiles[:1], testAirports, rng)
	rival := e.Airlines()[0]
	rival.FleetSize = 500
	rival.Aggressiveness = 0.9
	rival.FuelContracts = nil
	crisis := fuel.RestoreMarket(fuel.MarketSnapshot{
		BasePrice: 1.0, SpotPrice: 1.6, Regime: fuel.RegimeBullish, DaysLeft: 10,
		InCrisis: true, CrisisDays: 20,
	})

	// Act - sample many independent repricings from par
	unhedgedSum := 0.0
	const samples = 200
	for i := 0; i < samples; i++ {
		rival.PriceMultiplier = 1.0
		e.UpdatePrices(crisis, day0, rng)
		unhedgedSum += rival.PriceMultiplier
	}

	// Hedged rival gets a small crisis rebate instead
	rival.FuelContracts = []*fuel.Contract{fuel.NewContract("", "", 500_000, 1.0, day0, 30)}
	hedgedSum := 0.0
	for i := 0; i < samples; i++ {
		rival.PriceMultiplier = 1.0
		e.UpdatePrices(crisis, day0, rng)
		hedgedSum += rival.PriceMultiplier
	}

	// Assert - the 5-10% surcharge branch dominates the unhedged average
	assert.Greater(t, unhedgedSum/samples, 1.02)
	assert.Less(t, hedgedSum/samples, 1.0)
}

func TestEngine_MonthlyHedging(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	e := competitor.NewEngine(competitor.Profiles[:2], testAirports, rng)
	market := fuel.NewMarket(0.9)

	sophisticated := e.Airlines()[0]
	sophisticated.FleetSize = 250 // AI level 5
	sophisticated.Aggressiveness = 0.4

	small := e.Airlines()[1]
	small.FleetSize = 100 // AI level 2
	small.Aggressiveness = 0.4

	e.RunMonthlyHedging(market, day0, rng)

	require.Len(t, sophisticated.ActiveFuelContracts(day0), 1)
	hedge := sophisticated.ActiveFuelContracts(day0)[0]
	assert.Equal(t, 250_000.0, hedge.Volume)
	assert.Equal(t, market.SpotPrice(), hedge.Price)
	assert.Equal(t, day0.AddDate(0, 0, 30), hedge.EndDate)

	assert.Empty(t, small.ActiveFuelContracts(day0))
}

func TestEngine_UpdateRoutesRespectsCaps(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	e := competitor.NewEngine(competitor.Profiles, testAirports, rng)

	for day := 0; day < 365; day++ {
		e.UpdateRoutes(testAirports, rng)
	}

	for _, a := range e.Airlines() {
		maxRoutes := a.FleetSize / 2
		if maxRoutes < 3 {
			maxRoutes = 3
		}
		assert.LessOrEqual(t, len(a.Routes), maxRoutes, "%s grew past its cap", a.Name)
		assert.LessOrEqual(t, len(a.Hubs), 5)
	}
}

func TestEngine_CompetitionStatusNormalizes(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	e := competitor.NewEngine(competitor.Profiles, testAirports, rng)

	st := e.CompetitionStatus(12, 10)

	total := st.PlayerShare
	for _, entry := range st.Airlines {
		total += entry.Share
	}
	assert.InDelta(t, 1.0, total, 1e-9)
	assert.Greater(t, st.PlayerShare, 0.0)
	assert.Len(t, st.Airlines, 49)

	// Shares land back on the airline records
	for _, a := range e.Airlines() {
		assert.Greater(t, a.MarketShare, 0.0)
	}
}
