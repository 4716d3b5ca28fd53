package corporate

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/andrescamacho/airline-tycoon-go/internal/domain/shared"
)

const (
	offerWindowDays   = 7
	generationGapDays = 7
	upfrontFeeRate    = 0.10

	// SeatReservation is the share of a route's seats pledged to a contract
	SeatReservation = 0.40
)

var companyNames = []string{
	"Meridian Consulting Group", "Vantage Industries", "Hexagon Logistics",
	"BlueShore Capital", "Orbital Media Holdings", "Cascadia Pharma",
	"Ironclad Engineering", "Silverline Retail", "NorthPier Energy",
	"Atlas Freight Partners", "Crestview Financial", "Solara Technologies",
}

// Offer is a guaranteed-revenue proposal awaiting acceptance
type Offer struct {
	ID           string
	Tier         Tier
	Company      string
	DailyRevenue float64
	DurationDays int
	UpfrontFee   float64 // 10% of total contract value
	CreatedAt    time.Time
	ExpiresAt    time.Time
}

// Performance tracks contract service quality for future penalty review
type Performance struct {
	Delays            int
	Cancellations     int
	PricingViolations int
}

// ContractStatus is the lifecycle state of a corporate contract
type ContractStatus string

const (
	ContractActive  ContractStatus = "active"
	ContractExpired ContractStatus = "expired"
)

// Contract is an accepted corporate deal bound to one player route
type Contract struct {
	ID            string
	Tier          Tier
	Company       string
	RouteID       string
	DailyRevenue  float64
	SeatsReserved int
	StartDate     time.Time
	EndDate       time.Time
	Status        ContractStatus
	Performance   Performance
}

// PlayerSnapshot is the eligibility view of the player the engine scores
// offers against
type PlayerSnapshot struct {
	Level        int
	Reputation   float64
	ActiveRoutes int
	FleetSize    int
	Hubs         int
	Funds        float64
}

// Engine generates, validates, and settles corporate contracts
type Engine struct {
	offers        []*Offer
	contracts     []*Contract
	lastGenerated time.Time
}

// NewEngine creates an empty corporate desk
func NewEngine() *Engine {
	return &Engine{}
}

// RestoreEngine rebuilds the desk from persisted offers and contracts
func RestoreEngine(offers []*Offer, contracts []*Contract, lastGenerated time.Time) *Engine {
	return &Engine{offers: offers, contracts: contracts, lastGenerated: lastGenerated}
}

// LastGenerated is the date offers were last produced, for persistence
func (e *Engine) LastGenerated() time.Time { return e.lastGenerated }

func (e *Engine) Offers() []*Offer       { return e.offers }
func (e *Engine) Contracts() []*Contract { return e.contracts }

// ActiveContracts returns contracts currently paying out
func (e *Engine) ActiveContracts() []*Contract {
	var out []*Contract
	for _, c := range e.contracts {
		if c.Status == ContractActive {
			out = append(out, c)
		}
	}
	return out
}

func (e *Engine) activeInTier(tier Tier) int {
	n := 0
	for _, c := range e.ActiveContracts() {
		if c.Tier == tier {
			n++
		}
	}
	return n
}

// meetsTier lists every unmet eligibility condition for a tier, empty when
// fully eligible
func (e *Engine) meetsTier(tier Tier, p PlayerSnapshot) []string {
	spec := tierTable[tier]
	var reasons []string
	if p.Level < spec.minLevel {
		reasons = append(reasons, fmt.Sprintf("requires level %d", spec.minLevel))
	}
	if p.Reputation < spec.minReputation {
		reasons = append(reasons, fmt.Sprintf("requires reputation %.0f", spec.minReputation))
	}
	if p.ActiveRoutes < spec.minRoutes {
		reasons = append(reasons, fmt.Sprintf("requires %d active routes", spec.minRoutes))
	}
	if p.FleetSize < spec.minFleet {
		reasons = append(reasons, fmt.Sprintf("requires %d aircraft", spec.minFleet))
	}
	if p.Hubs < spec.minHubs {
		reasons = append(reasons, fmt.Sprintf("requires %d hubs", spec.minHubs))
	}
	if e.activeInTier(tier) >= spec.maxActive {
		reasons = append(reasons, fmt.Sprintf("%s contract slots full", tier))
	}
	return reasons
}

// GenerateOffers refreshes the offer pool at most once per seven simulated
// days: one guaranteed LOCAL offer when eligible plus one or two more drawn
// from every unlocked tier the player qualifies for. referenceRevenue is the
// base daily revenue of the route offers are sized against.
func (e *Engine) GenerateOffers(p PlayerSnapshot, referenceRevenue float64, now time.Time, rng *rand.Rand) []*Offer {
	if !e.lastGenerated.IsZero() && shared.DaysBetween(e.lastGenerated, now) < generationGapDays {
		return nil
	}
	e.lastGenerated = now
	e.offers = e.offers[:0]

	if len(e.meetsTier(TierLocal, p)) == 0 {
		e.offers = append(e.offers, e.makeOffer(TierLocal, referenceRevenue, now, rng))
	}

	var eligible []Tier
	for _, tier := range UnlockedTiers(p.Level) {
		if len(e.meetsTier(tier, p)) == 0 {
			eligible = append(eligible, tier)
		}
	}
	if len(eligible) > 0 {
		extra := shared.RandIntRange(rng, 1, 2)
		for i := 0; i < extra; i++ {
			tier := eligible[rng.Intn(len(eligible))]
			e.offers = append(e.offers, e.makeOffer(tier, referenceRevenue, now, rng))
		}
	}
	return e.offers
}

func (e *Engine) makeOffer(tier Tier, referenceRevenue float64, now time.Time, rng *rand.Rand) *Offer {
	spec := tierTable[tier]
	daily := referenceRevenue * shared.RandRange(rng, spec.multLo, spec.multHi)
	total := daily * float64(spec.durationDays)
	return &Offer{
		ID:           uuid.NewString(),
		Tier:         tier,
		Company:      companyNames[rng.Intn(len(companyNames))],
		DailyRevenue: daily,
		DurationDays: spec.durationDays,
		UpfrontFee:   total * upfrontFeeRate,
		CreatedAt:    now,
		ExpiresAt:    now.AddDate(0, 0, offerWindowDays),
	}
}

// FindOffer returns the outstanding offer with the given id
func (e *Engine) FindOffer(offerID string) (*Offer, bool) {
	for _, o := range e.offers {
		if o.ID == offerID {
			return o, true
		}
	}
	return nil, false
}

// ValidateAcceptance lists every unmet acceptance condition for an offer,
// empty when the player can sign
func (e *Engine) ValidateAcceptance(offerID string, p PlayerSnapshot, now time.Time) ([]string, error) {
	offer, ok := e.FindOffer(offerID)
	if !ok {
		return nil, shared.Rejectf("offer %s not found", offerID)
	}
	if now.After(offer.ExpiresAt) {
		return []string{"offer expired"}, nil
	}
	reasons := e.meetsTier(offer.Tier, p)
	if p.Funds < offer.UpfrontFee {
		reasons = append(reasons, fmt.Sprintf("upfront fee %.0f exceeds available funds", offer.UpfrontFee))
	}
	return reasons, nil
}

// Accept signs an offer against a route, reserving seats and opening the
// performance record. The caller debits the upfront fee and verifies that
// routeID exists.
func (e *Engine) Accept(offerID, routeID string, routeSeats int, p PlayerSnapshot, now time.Time) (*Contract, error) {
	reasons, err := e.ValidateAcceptance(offerID, p, now)
	if err != nil {
		return nil, err
	}
	if len(reasons) > 0 {
		return nil, shared.NewRejection(reasons...)
	}
	offer, _ := e.FindOffer(offerID)

	c := &Contract{
		ID:            uuid.NewString(),
		Tier:          offer.Tier,
		Company:       offer.Company,
		RouteID:       routeID,
		DailyRevenue:  offer.DailyRevenue,
		SeatsReserved: int(float64(routeSeats) * SeatReservation),
		StartDate:     now,
		EndDate:       now.AddDate(0, 0, offer.DurationDays),
		Status:        ContractActive,
	}
	e.contracts = append(e.contracts, c)
	e.removeOffer(offerID)
	return c, nil
}

func (e *Engine) removeOffer(offerID string) {
	for i, o := range e.offers {
		if o.ID == offerID {
			e.offers = append(e.offers[:i], e.offers[i+1:]...)
			return
		}
	}
}

// DailyGuaranteedRevenue sums the payouts of contracts active today
func (e *Engine) DailyGuaranteedRevenue(now time.Time) float64 {
	total := 0.0
	for _, c := range e.ActiveContracts() {
		if !now.Before(c.StartDate) && !now.After(c.EndDate) {
			total += c.DailyRevenue
		}
	}
	return total
}

// ExpireContracts marks contracts past their end date and purges offers past
// their acceptance window
func (e *Engine) ExpireContracts(now time.Time) {
	for _, c := range e.contracts {
		if c.Status == ContractActive && now.After(c.EndDate) {
			c.Status = ContractExpired
		}
	}
	kept := e.offers[:0]
	for _, o := range e.offers {
		if now.After(o.ExpiresAt) {
			continue
		}
		kept = append(kept, o)
	}
	e.offers = kept
}
