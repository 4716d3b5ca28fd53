package simulation

import (
	"errors"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/andrescamacho/airline-tycoon-go/internal/domain/competitor"
	"github.com/andrescamacho/airline-tycoon-go/internal/domain/fleet"
	"github.com/andrescamacho/airline-tycoon-go/internal/domain/reputation"
	"github.com/andrescamacho/airline-tycoon-go/internal/domain/route"
	"github.com/andrescamacho/airline-tycoon-go/internal/domain/shared"
	"github.com/andrescamacho/airline-tycoon-go/internal/domain/world"
)

// ErrDayAlreadyProcessed is returned when the same simulated day is ticked
// twice
var ErrDayAlreadyProcessed = errors.New("day already processed")

// Penalty events drawn per flight; probabilities rise as condition falls
const (
	delayBaseProb         = 0.03
	delayRiskProb         = 0.10
	delayCostShare        = 0.02
	cancelBaseProb        = 0.005
	cancelRiskProb        = 0.04
	cancelCostShare       = 0.25
	overbookProb          = 0.01
	overbookCostShare     = 0.015
	emergencyBaseProb     = 0.002
	emergencyRiskProb     = 0.05
	emergencyBaseCost     = 5000.0
	emergencyConditionHit = 5.0

	routeEventProb = 0.03
)

// DailyReport summarizes one processed day
type DailyReport struct {
	Date             time.Time
	Gross            float64
	Costs            float64
	HubFees          float64
	LoanPayments     float64
	CorporateRevenue float64
	Net              float64
	ReputationDelta  float64
	FuelConsumed     float64
	EffectivePrice   float64
	HedgedFuel       bool
	FlightsFlown     int
	Penalties        int
	SkippedRefs      int
	LeveledUp        bool
}

// Orchestrator runs the fixed daily economic sequence against a world state
type Orchestrator struct {
	logger       *log.Logger
	lastDay      string
	skippedTotal int
}

// New creates an orchestrator. A nil logger silences diagnostics.
func New(logger *log.Logger) *Orchestrator {
	return &Orchestrator{logger: logger}
}

// SkippedReferences counts entities skipped across all processed days
// because a referenced aircraft or airport no longer exists
func (o *Orchestrator) SkippedReferences() int {
	return o.skippedTotal
}

func (o *Orchestrator) logf(format string, args ...interface{}) {
	if o.logger != nil {
		o.logger.Printf(format, args...)
	}
}

// fuelQuote is the pure pricing phase taken before the ledger is mutated;
// every cost figure for the day prices fuel from this snapshot
type fuelQuote struct {
	price  float64
	hedged bool
}

// ProcessDaily runs the whole daily sequence for the state's current date,
// exactly once per calendar day. Call order inside is fixed: cost figures
// quote the fuel ledger before consumption is committed.
func (o *Orchestrator) ProcessDaily(s *world.State) (*DailyReport, error) {
	day := shared.DayKey(s.Date)
	if day == o.lastDay {
		return nil, ErrDayAlreadyProcessed
	}
	o.lastDay = day

	report := &DailyReport{Date: s.Date}

	s.FuelMarket.AdvanceOneDay(s.Rand, s.Date)

	quote := fuelQuote{
		price:  s.FuelLedger.EffectivePrice(s.FuelMarket.SpotPrice(), s.Date),
		hedged: s.FuelLedger.Hedged(s.Date),
	}
	report.EffectivePrice = quote.price
	report.HedgedFuel = quote.hedged

	// 1. Commit the day's projected burn against the ledger, cheapest first
	burn := o.ProjectedDailyBurn(s)
	report.FuelConsumed = s.FuelLedger.Consume(burn, s.Date)

	// 2. Provider rotation and offer hygiene
	s.FuelProviders.PurgeExpiredOffers(s.Date)
	if s.FuelProviders.RotateProfiles(s.FuelMarket, s.Date, s.Rand) {
		s.FuelProviders.GenerateOffers(s.Level, s.FuelMarket, o.EstimatedDailyConsumption(s), s.Date, s.Rand)
	}

	// 3. Per-route, per-aircraft revenue, costs, and penalties
	var flights []reputation.FlightScore
	flightsByPlane := make(map[string]int)
	for _, r := range s.Routes.All() {
		origin, okO := world.Airports[r.Origin]
		dest, okD := world.Airports[r.Dest]
		if !okO || !okD {
			o.skip(report, "route %s references unknown airport", r.ID)
			continue
		}
		impact := s.Competitors.CompetitionImpact(r.Origin, r.Dest)
		base := route.CalculatePotentialRevenue(route.RevenueInput{
			DistanceKm:        r.DistanceKm,
			Seats:             r.Seats,
			PriceMultiplier:   r.PriceMultiplier,
			OriginDemand:      origin.DemandFactor(),
			DestDemand:        dest.DemandFactor(),
			Reputation:        s.Reputation,
			FrequencyPerWeek:  r.FrequencyPerWeek,
			CompetitionImpact: impact,
		})

		for _, a := range r.ActiveAssignments() {
			plane, ok := s.Fleet.Get(a.PlaneID)
			if !ok {
				o.skip(report, "route %s references unknown aircraft %s", r.ID, a.PlaneID)
				continue
			}

			gross := float64(base) *
				seasonalFactor(s.Date.Month()) *
				eventFactor(s.Rand) *
				shared.RandRange(s.Rand, 0.90, 1.10)

			costs := route.CalculateRouteCosts(route.CostInput{
				DistanceKm:     r.DistanceKm,
				FuelBurnPerKm:  plane.Stats.FuelBurn,
				FuelCoeff:      plane.Stats.FuelCoeff,
				EffectivePrice: quote.price,
				HedgedFuel:     quote.hedged,
				AgeDays:        plane.AgeDays(s.Date),
				OriginPop:      origin.Pop,
				DestPop:        dest.Pop,
				OriginDensity:  s.Routes.DensityAt(r.Origin),
				DestDensity:    s.Routes.DensityAt(r.Dest),
			})

			penalty := o.applyPenalties(s, plane, gross, report)
			gross -= penalty.revenueLoss

			net := gross - costs.Total - penalty.extraCost
			report.Gross += gross
			report.Costs += costs.Total + penalty.extraCost

			passengers := int(float64(r.Seats.Total()) * route.LoadFactor(s.Reputation, r.PriceMultiplier))
			plane.AddFlightRecord(s.Date, r.Origin+"-"+r.Dest, net, passengers)
			flightsByPlane[plane.ID] += flightsToday(r, a)
			report.FlightsFlown += flightsToday(r, a)

			flights = append(flights, reputation.FlightScore{
				Condition:       plane.Condition,
				PremiumFraction: r.Seats.PremiumFraction(),
				PriceMultiplier: r.PriceMultiplier,
			})
		}
		r.DailyRevenue = float64(base)
	}

	// 4. Hub fees for slots in use
	s.SyncHubSlots()
	report.HubFees = s.HubDailyFees()

	// 5. Wear, route events, rivals, reputation, expiries, loans, corporate
	for id, n := range flightsByPlane {
		if plane, ok := s.Fleet.Get(id); ok {
			plane.ApplyWear(n)
		}
	}
	o.processRouteEvents(s, report)

	s.Competitors.UpdateRoutes(world.AirportIDs(), s.Rand)
	s.Competitors.UpdatePrices(s.FuelMarket, s.Date, s.Rand)
	if s.Date.Day() == 1 {
		s.Competitors.RunMonthlyHedging(s.FuelMarket, s.Date, s.Rand)
	}
	status := s.Competitors.CompetitionStatus(s.Routes.Count(), s.Fleet.Count())

	delta := reputation.DailyDelta(reputation.DailyInput{
		Flights:      flights,
		Strategic:    o.strategicInput(s, status),
		CrisisDays:   s.FuelMarket.CrisisDays(),
		ActiveHedges: len(s.FuelLedger.ActiveContracts(s.Date)),
	})
	report.ReputationDelta = delta
	s.AdjustReputation(delta)

	s.FuelLedger.CleanExpired(s.Date)
	s.Corporate.ExpireContracts(s.Date)
	if s.Date.Day() == 1 {
		report.LoanPayments = s.Loans.ProcessMonthlyPayments()
	}
	report.CorporateRevenue = s.Corporate.DailyGuaranteedRevenue(s.Date)

	// 6. Settle and record
	report.Net = report.Gross + report.CorporateRevenue -
		report.Costs - report.HubFees - report.LoanPayments
	s.Money += report.Net

	s.RecordEconomy(world.EconomyEntry{
		Date:     s.Date,
		Revenue:  report.Gross + report.CorporateRevenue,
		Costs:    report.Costs + report.HubFees + report.LoanPayments,
		Net:      report.Net,
		Funds:    s.Money,
		SpotFuel: s.FuelMarket.SpotPrice(),
	})
	s.RecordReputation(world.ReputationEntry{
		Date:  s.Date,
		Delta: delta,
		Value: s.Reputation,
	})
	report.LeveledUp = s.CheckLevelUp()

	o.logf("day %s: gross=%.0f costs=%.0f net=%.0f rep=%.1f fuel=%.2f",
		day, report.Gross, report.Costs, report.Net, s.Reputation, s.FuelMarket.SpotPrice())
	return report, nil
}

func (o *Orchestrator) skip(report *DailyReport, format string, args ...interface{}) {
	report.SkippedRefs++
	o.skippedTotal++
	o.logf("skipping: "+format, args...)
}

// flightsToday converts an assignment's cadence to departures for one day
func flightsToday(r *route.Route, a route.Assignment) int {
	if a.FrequencyPerDay > 0 {
		return a.FrequencyPerDay
	}
	if r.FrequencyPerWeek >= 7 {
		return r.FrequencyPerWeek / 7
	}
	return 1
}

// ProjectedDailyBurn totals fuel liters the assigned fleet will burn today
func (o *Orchestrator) ProjectedDailyBurn(s *world.State) float64 {
	var total float64
	for _, r := range s.Routes.All() {
		share := math.Min(1, float64(r.FrequencyPerWeek)/7)
		for _, a := range r.ActiveAssignments() {
			plane, ok := s.Fleet.Get(a.PlaneID)
			if !ok {
				continue
			}
			coeff := plane.Stats.FuelCoeff
			if coeff <= 0 {
				coeff = 1.0
			}
			total += r.DistanceKm * plane.Stats.FuelBurn * coeff *
				plane.WearFactor(s.Date) * share * float64(flightsToday(r, a))
		}
	}
	return total
}

// EstimatedDailyConsumption is the coverage-cap and offer-sizing figure,
// floored at a nominal volume so an empty network still sees offers
func (o *Orchestrator) EstimatedDailyConsumption(s *world.State) float64 {
	burn := o.ProjectedDailyBurn(s)
	if burn < 1000 {
		return 1000
	}
	return burn
}

type penaltyResult struct {
	revenueLoss float64
	extraCost   float64
}

// applyPenalties draws the day's independent operational incidents for one
// flight. Each probability grows as the airframe's condition decays.
func (o *Orchestrator) applyPenalties(s *world.State, plane *fleet.Aircraft, gross float64, report *DailyReport) penaltyResult {
	risk := (100 - shared.Clamp(plane.Condition, 0, 100)) / 100
	var p penaltyResult

	if shared.Chance(s.Rand, delayBaseProb+delayRiskProb*risk) {
		p.revenueLoss += gross * delayCostShare
		report.Penalties++
	}
	if shared.Chance(s.Rand, cancelBaseProb+cancelRiskProb*risk) {
		p.revenueLoss += gross * cancelCostShare
		report.Penalties++
	}
	if shared.Chance(s.Rand, overbookProb) {
		p.extraCost += gross * overbookCostShare
		report.Penalties++
	}
	if shared.Chance(s.Rand, emergencyBaseProb+emergencyRiskProb*risk) {
		p.extraCost += emergencyBaseCost * plane.WearFactor(s.Date)
		plane.Condition = shared.Clamp(plane.Condition-emergencyConditionHit, 0, 100)
		report.Penalties++
	}
	return p
}

// processRouteEvents draws network-level disruptions, separate from the
// per-flight incident rolls
func (o *Orchestrator) processRouteEvents(s *world.State, report *DailyReport) {
	events := []string{
		"weather disruption at origin",
		"ground crew strike",
		"ATC slot restriction",
		"security screening backlog",
	}
	for _, r := range s.Routes.All() {
		if !r.IsActive() || !shared.Chance(s.Rand, routeEventProb) {
			continue
		}
		msg := events[s.Rand.Intn(len(events))]
		cost := shared.RandRange(s.Rand, 500, 2500)
		r.LogEvent(s.Date, msg)
		report.Costs += cost
	}
}

// strategicInput assembles the structural scoring view from the day's state
func (o *Orchestrator) strategicInput(s *world.State, status competitor.Status) reputation.StrategicInput {
	activeRoutes := 0
	totalFreq := 0
	for _, r := range s.Routes.All() {
		if r.IsActive() {
			activeRoutes++
			totalFreq += r.FrequencyPerWeek
		}
	}
	avgFreq := 0.0
	if activeRoutes > 0 {
		avgFreq = float64(totalFreq) / float64(activeRoutes)
	}
	return reputation.StrategicInput{
		Hubs:             len(s.Hubs),
		RegionsServed:    s.RegionsServed(),
		FleetSize:        s.Fleet.Count(),
		AvgFleetAgeDays:  s.Fleet.AverageAgeDays(s.Date),
		RoutesPerHub:     s.RoutesPerHub(),
		FleetCategories:  s.Fleet.Categories(),
		MarketShare:      status.PlayerShare,
		AvgWeeklyFlights: avgFreq,
	}
}

// seasonalFactor scales demand by travel season
func seasonalFactor(m time.Month) float64 {
	switch m {
	case time.June, time.July, time.August:
		return 1.15
	case time.December:
		return 1.20
	case time.January, time.February:
		return 0.90
	default:
		return 1.0
	}
}

// eventFactor draws the day's demand surprise for one flight
func eventFactor(rng *rand.Rand) float64 {
	switch {
	case shared.Chance(rng, 0.05):
		return shared.RandRange(rng, 0.70, 0.90)
	case shared.Chance(rng, 0.05):
		return shared.RandRange(rng, 1.10, 1.30)
	default:
		return 1.0
	}
}
