package route

import (
	"math"

	"github.com/andrescamacho/airline-tycoon-go/internal/domain/fleet"
	"github.com/andrescamacho/airline-tycoon-go/internal/domain/shared"
)

// Class revenue multipliers over the economy ticket price
const (
	economyMult  = 1.0
	premiumMult  = 2.2
	businessMult = 4.0
)

// Load factor model: base 0.50 at reputation 0 up to 0.95 at 100, then
// adjusted by pricing and clamped to [0.40, 1.00]
const (
	loadBase      = 0.50
	loadRepSpan   = 0.45
	loadFloor     = 0.40
	loadCeil      = 1.00
	cheapBoostMax = 0.20 // at the 0.7 multiplier floor
	dearDragMax   = 0.35 // at the 1.5 multiplier ceiling
)

// RevenueInput parameterizes the pure daily revenue computation. Demand
// factors derive from airport size; CompetitionImpact comes from the
// competitor engine.
type RevenueInput struct {
	DistanceKm        float64
	Seats             fleet.SeatConfig
	PriceMultiplier   float64
	OriginDemand      float64
	DestDemand        float64
	Reputation        float64
	FrequencyPerWeek  int
	CompetitionImpact float64
}

// LoadFactor derives the fraction of seats sold from reputation and pricing
func LoadFactor(reputation, priceMultiplier float64) float64 {
	lf := loadBase + loadRepSpan*shared.Clamp(reputation, 0, 100)/100
	switch {
	case priceMultiplier < 1.0:
		under := (1.0 - priceMultiplier) / (1.0 - PriceMultiplierMin)
		lf *= 1 + cheapBoostMax*shared.Clamp(under, 0, 1)
	case priceMultiplier > 1.0:
		over := (priceMultiplier - 1.0) / (PriceMultiplierMax - 1.0)
		lf *= 1 - dearDragMax*shared.Clamp(over, 0, 1)
	}
	return shared.Clamp(lf, loadFloor, loadCeil)
}

// CalculatePotentialRevenue computes one day's gross revenue potential for a
// route, floored to an integer. Weekly frequencies below daily scale the
// result by frequency/7.
func CalculatePotentialRevenue(in RevenueInput) int {
	ticket := (50 + 0.12*in.DistanceKm) * in.PriceMultiplier
	classRevenue := ticket * (economyMult*float64(in.Seats.Economy) +
		premiumMult*float64(in.Seats.Premium) +
		businessMult*float64(in.Seats.Business))

	lf := LoadFactor(in.Reputation, in.PriceMultiplier)
	demand := (in.OriginDemand + in.DestDemand) / 2

	revenue := classRevenue * lf * demand * in.CompetitionImpact
	revenue *= float64(in.FrequencyPerWeek) / 7

	return int(math.Floor(revenue))
}

// Operating cost constants
const (
	fuelPriceReference = 0.8 // effective price is ratioed against this
	crewBaseCost       = 850
	crewPerKm          = 0.6
	cleaningPerTurn    = 450
	maintenancePerKm   = 0.8
	airportFeeBase     = 300
	airportFeePerPop   = 1.0 / 5000
)

// CostInput parameterizes the pure daily cost computation. Route densities
// count player routes touching each endpoint and drive the hub efficiency
// discount.
type CostInput struct {
	DistanceKm     float64
	FuelBurnPerKm  float64
	FuelCoeff      float64 // aircraft model coefficient, 1.0 when unset
	EffectivePrice float64
	HedgedFuel     bool // effective price came from a ledger contract
	AgeDays        int
	OriginPop      int
	DestPop        int
	OriginDensity  int
	DestDensity    int
}

// CostBreakdown itemizes one day's operating cost. HedgedFuel reports
// whether the fuel line was priced from a hedge contract rather than spot;
// the computation itself never touches the ledger.
type CostBreakdown struct {
	Fuel        float64
	Crew        float64
	Cleaning    float64
	Maintenance float64
	AirportFees float64
	HubDiscount float64 // fraction of subtotal saved
	Total       float64
	HedgedFuel  bool
}

// hubDiscountFor maps an endpoint's route density onto its efficiency tier
func hubDiscountFor(density int) float64 {
	switch {
	case density < 1:
		return 0
	case density <= 5:
		return 0.05
	case density <= 10:
		return 0.10
	default:
		return 0.15
	}
}

// CalculateRouteCosts computes a route/aircraft pairing's daily operating
// cost from the quoted effective fuel price
func CalculateRouteCosts(in CostInput) CostBreakdown {
	coeff := in.FuelCoeff
	if coeff <= 0 {
		coeff = 1.0
	}
	wear := 1 + float64(in.AgeDays)/1500

	var b CostBreakdown
	b.HedgedFuel = in.HedgedFuel
	b.Fuel = in.DistanceKm * in.FuelBurnPerKm * (in.EffectivePrice / fuelPriceReference * coeff) * wear
	b.Crew = crewBaseCost + crewPerKm*in.DistanceKm
	b.Cleaning = cleaningPerTurn
	b.Maintenance = maintenancePerKm * in.DistanceKm * wear
	b.AirportFees = airportFeeBase + float64(in.OriginPop)*airportFeePerPop +
		airportFeeBase + float64(in.DestPop)*airportFeePerPop

	subtotal := b.Fuel + b.Crew + b.Cleaning + b.Maintenance + b.AirportFees
	b.HubDiscount = (hubDiscountFor(in.OriginDensity) + hubDiscountFor(in.DestDensity)) / 2
	b.Total = subtotal * (1 - b.HubDiscount)
	return b
}
