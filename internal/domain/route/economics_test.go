package route_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/airline-tycoon-go/internal/domain/fleet"
	"github.com/andrescamacho/airline-tycoon-go/internal/domain/route"
)

func baselineRevenueInput() route.RevenueInput {
	return route.RevenueInput{
		DistanceKm:        1000,
		Seats:             fleet.SeatConfig{Economy: 100, Premium: 20, Business: 10},
		PriceMultiplier:   1.0,
		OriginDemand:      1.0,
		DestDemand:        1.0,
		Reputation:        50,
		FrequencyPerWeek:  7,
		CompetitionImpact: 1.0,
	}
}

func TestCalculatePotentialRevenue_GoldenValue(t *testing.T) {
	// ticket = (50 + 0.12×1000) × 1.0 = 170
	// class revenue = 170 × (100×1.0 + 20×2.2 + 10×4.0) = 31280
	// load factor = 0.50 + 0.45×50/100 = 0.725
	// revenue = floor(31280 × 0.725) = 22678
	got := route.CalculatePotentialRevenue(baselineRevenueInput())

	assert.Equal(t, 22678, got)
}

func TestCalculatePotentialRevenue_MonotonicInFrequency(t *testing.T) {
	in := baselineRevenueInput()
	prev := -1
	for _, f := range route.ValidFrequencies {
		in.FrequencyPerWeek = f
		got := route.CalculatePotentialRevenue(in)
		assert.GreaterOrEqual(t, got, prev, "frequency %d", f)
		prev = got
	}
}

func TestCalculatePotentialRevenue_OverpricingNeverPays(t *testing.T) {
	in := baselineRevenueInput()
	atPar := route.CalculatePotentialRevenue(in)

	// The ceiling always earns less than par
	in.PriceMultiplier = route.PriceMultiplierMax
	assert.Less(t, route.CalculatePotentialRevenue(in), atPar)

	// Once the load-factor drag dominates, revenue is non-increasing
	prev := int(^uint(0) >> 1)
	for m := 1.25; m <= 1.5+1e-9; m += 0.05 {
		in.PriceMultiplier = m
		got := route.CalculatePotentialRevenue(in)
		assert.LessOrEqual(t, got, prev, "multiplier %.2f", m)
		prev = got
	}
}

func TestLoadFactor_Bounds(t *testing.T) {
	tests := []struct {
		name       string
		reputation float64
		multiplier float64
		want       float64
	}{
		{"worst airline at par", 0, 1.0, 0.50},
		{"best airline at par", 100, 1.0, 0.95},
		{"midfield at par", 50, 1.0, 0.725},
		{"cheap tickets cap at full", 100, 0.7, 1.00},
		{"dear tickets floor", 0, 1.5, 0.40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, route.LoadFactor(tt.reputation, tt.multiplier), 1e-9)
		})
	}
}

func TestCalculateRouteCosts_Breakdown(t *testing.T) {
	in := route.CostInput{
		DistanceKm:     1000,
		FuelBurnPerKm:  3.0,
		FuelCoeff:      1.0,
		EffectivePrice: 0.8,
		HedgedFuel:     true,
		AgeDays:        0,
		OriginPop:      1_000_000,
		DestPop:        1_000_000,
	}

	b := route.CalculateRouteCosts(in)

	assert.InDelta(t, 3000.0, b.Fuel, 1e-9)
	assert.InDelta(t, 1450.0, b.Crew, 1e-9)
	assert.InDelta(t, 450.0, b.Cleaning, 1e-9)
	assert.InDelta(t, 800.0, b.Maintenance, 1e-9)
	assert.InDelta(t, 1000.0, b.AirportFees, 1e-9)
	assert.Equal(t, 0.0, b.HubDiscount)
	assert.InDelta(t, 6700.0, b.Total, 1e-9)
	assert.True(t, b.HedgedFuel)
}

func TestCalculateRouteCosts_AgeWearRaisesFuelAndMaintenance(t *testing.T) {
	young := route.CostInput{DistanceKm: 1000, FuelBurnPerKm: 3.0, EffectivePrice: 0.8}
	old := young
	old.AgeDays = 1500 // wear factor 2.0

	yb := route.CalculateRouteCosts(young)
	ob := route.CalculateRouteCosts(old)

	assert.InDelta(t, 2*yb.Fuel, ob.Fuel, 1e-9)
	assert.InDelta(t, 2*yb.Maintenance, ob.Maintenance, 1e-9)
	assert.Equal(t, yb.Crew, ob.Crew)
}

func TestCalculateRouteCosts_HubEfficiencyTiers(t *testing.T) {
	in := route.CostInput{DistanceKm: 500, FuelBurnPerKm: 2.5, EffectivePrice: 0.8}

	tests := []struct {
		origin, dest int
		want         float64
	}{
		{0, 0, 0},
		{1, 1, 0.05},
		{6, 6, 0.10},
		{11, 11, 0.15},
		{6, 2, 0.075}, // endpoint tiers averaged
	}
	for _, tt := range tests {
		in.OriginDensity, in.DestDensity = tt.origin, tt.dest
		b := route.CalculateRouteCosts(in)
		assert.InDelta(t, tt.want, b.HubDiscount, 1e-9)
	}
}

func TestRoute_PriceMultiplierClamped(t *testing.T) {
	r := route.New("CDG", "JFK", 5800, fleet.SeatConfig{Economy: 200}, 7)

	r.SetPriceMultiplier(2.4)
	assert.Equal(t, 1.5, r.PriceMultiplier)

	r.SetPriceMultiplier(0.1)
	assert.Equal(t, 0.7, r.PriceMultiplier)
}

func TestRoute_FrequencySnapsToAllowedSet(t *testing.T) {
	r := route.New("CDG", "LHR", 350, fleet.SeatConfig{Economy: 150}, 7)

	r.SetFrequency(5)
	assert.Contains(t, route.ValidFrequencies, r.FrequencyPerWeek)

	r.SetFrequency(20)
	assert.Equal(t, 14, r.FrequencyPerWeek)
}

func TestIndex_DensityAt(t *testing.T) {
	x := route.NewIndex()
	x.Add(route.New("CDG", "LHR", 350, fleet.SeatConfig{Economy: 150}, 7))
	x.Add(route.New("CDG", "FRA", 450, fleet.SeatConfig{Economy: 150}, 7))
	x.Add(route.New("AMS", "FRA", 360, fleet.SeatConfig{Economy: 150}, 7))

	assert.Equal(t, 2, x.DensityAt("CDG"))
	assert.Equal(t, 2, x.DensityAt("FRA"))
	assert.Equal(t, 0, x.DensityAt("JFK"))
}
