package reputation

import "github.com/andrescamacho/airline-tycoon-go/internal/domain/shared"

// Daily delta bounds
const (
	operationalBound = 3.0
	strategicBound   = 2.0
	totalBound       = 5.0

	// CrisisPenaltyDays is how long a fuel crisis must persist, unhedged,
	// before the daily penalty applies
	CrisisPenaltyDays = 45
	crisisPenalty     = 1.0
)

// FlightScore describes one active flight for operational scoring
type FlightScore struct {
	Condition       float64 // aircraft condition 0-100
	PremiumFraction float64 // premium+business share of seats
	PriceMultiplier float64
}

// FlightDelta scores a single flight: airframe condition, cabin quality,
// and pricing posture
func FlightDelta(f FlightScore) float64 {
	d := 0.0
	switch {
	case f.Condition > 80:
		d += 0.4
	case f.Condition > 60:
		d += 0.1
	case f.Condition < 40:
		d -= 0.8
	}

	d += 0.15 * shared.Clamp(f.PremiumFraction, 0, 1)

	switch {
	case f.PriceMultiplier > 1.2:
		d -= 0.25
	case f.PriceMultiplier > 1.1:
		d -= 0.1
	case f.PriceMultiplier < 0.9:
		d += 0.15
	}
	return d
}

// OperationalDelta sums all active flight scores, clamped to ±3 per day
func OperationalDelta(flights []FlightScore) float64 {
	total := 0.0
	for _, f := range flights {
		total += FlightDelta(f)
	}
	return shared.Clamp(total, -operationalBound, operationalBound)
}

// StrategicInput summarizes the airline's structural position
type StrategicInput struct {
	Hubs             int
	RegionsServed    int
	FleetSize        int
	AvgFleetAgeDays  float64
	RoutesPerHub     float64
	FleetCategories  int
	MarketShare      float64 // 0..1
	AvgWeeklyFlights float64
}

// StrategicDelta scores the airline's network shape, each factor
// independently bounded, the sum clamped to ±2 per day
func StrategicDelta(in StrategicInput) float64 {
	d := 0.0

	hubBonus := 0.2 * float64(in.Hubs)
	if hubBonus > 0.8 {
		hubBonus = 0.8
	}
	d += hubBonus

	switch {
	case in.RegionsServed >= 4:
		d += 0.6
	case in.RegionsServed == 3:
		d += 0.4
	case in.RegionsServed == 2:
		d += 0.2
	}

	switch {
	case in.FleetSize >= 20:
		d += 0.5
	case in.FleetSize >= 10:
		d += 0.3
	case in.FleetSize >= 5:
		d += 0.1
	}

	switch {
	case in.AvgFleetAgeDays < 60:
		d += 0.3
	case in.AvgFleetAgeDays < 120:
		d += 0.15
	case in.AvgFleetAgeDays < 250:
		// modern enough, no adjustment
	default:
		d -= 0.2
	}

	switch {
	case in.RoutesPerHub >= 8:
		d += 0.4
	case in.RoutesPerHub >= 5:
		d += 0.2
	case in.RoutesPerHub >= 3:
		d += 0.1
	default:
		d -= 0.15
	}

	switch {
	case in.FleetCategories >= 3:
		d += 0.3
	case in.FleetCategories == 2:
		d += 0.15
	}

	switch {
	case in.MarketShare >= 0.10:
		d += 0.5
	case in.MarketShare >= 0.05:
		d += 0.3
	case in.MarketShare >= 0.02:
		d += 0.1
	}

	switch {
	case in.AvgWeeklyFlights >= 14:
		d += 0.3
	case in.AvgWeeklyFlights >= 10:
		d += 0.15
	}

	return shared.Clamp(d, -strategicBound, strategicBound)
}

// DailyInput carries both deltas plus the fuel-crisis exposure
type DailyInput struct {
	Flights      []FlightScore
	Strategic    StrategicInput
	CrisisDays   int
	ActiveHedges int
}

// DailyDelta combines operational and strategic scores, penalizes a long
// unhedged crisis, and clamps to ±5. The caller applies the result through
// the world's centralized reputation adjustment.
func DailyDelta(in DailyInput) float64 {
	total := OperationalDelta(in.Flights) + StrategicDelta(in.Strategic)
	if in.CrisisDays >= CrisisPenaltyDays && in.ActiveHedges == 0 {
		total -= crisisPenalty
	}
	return shared.Clamp(total, -totalBound, totalBound)
}
