package fuel

import (
	"sort"
	"time"

	"github.com/andrescamacho/airline-tycoon-go/internal/domain/shared"
)

// Level gates for hedging: allowed durations, volume caps, and simultaneous
// active contracts all widen as the player levels up.

const (
	hedgingUnlockLevel = 3

	minContractVolume = 10_000

	// CoverageCap limits hedged volume to 85% of projected consumption over
	// the contract window
	CoverageCap = 0.85
)

func allowedDurations(level int) []int {
	switch {
	case level < hedgingUnlockLevel:
		return nil
	case level <= 4:
		return []int{30, 60}
	case level <= 6:
		return []int{30, 60, 90}
	default:
		return []int{30, 60, 90, 180}
	}
}

func maxContractVolume(level int) float64 {
	switch {
	case level < 5:
		return 500_000
	case level <= 6:
		return 1_000_000
	default:
		return 2_000_000
	}
}

func maxActiveContracts(level int) int {
	switch {
	case level < 4:
		return 1
	case level <= 7:
		return 2
	default:
		return 3
	}
}

// Ledger validates, stores, and consumes fixed-price fuel contracts. Costing
// reads the ledger through EffectivePrice without mutating it; the daily
// orchestrator alone calls Consume, once, after all costs are quoted.
type Ledger struct {
	contracts []*Contract
}

// NewLedger creates an empty contract ledger
func NewLedger() *Ledger {
	return &Ledger{}
}

// Contracts returns all stored contracts, including depleted ones awaiting
// cleanup
func (l *Ledger) Contracts() []*Contract {
	return l.contracts
}

// ActiveContracts returns contracts that can still supply fuel
func (l *Ledger) ActiveContracts(now time.Time) []*Contract {
	var out []*Contract
	for _, c := range l.contracts {
		if c.Usable(now) {
			out = append(out, c)
		}
	}
	return out
}

// RemainingVolume is the total unconsumed volume across usable contracts
func (l *Ledger) RemainingVolume(now time.Time) float64 {
	total := 0.0
	for _, c := range l.ActiveContracts(now) {
		total += c.Remaining()
	}
	return total
}

// Validate checks every purchase gate and returns the first unmet one.
// It performs no mutation, so offer purchases re-validate through it.
func (l *Ledger) Validate(volume float64, durationDays, level int, price, dailyConsumption, funds float64, now time.Time) error {
	if level < hedgingUnlockLevel {
		return ErrFeatureLocked
	}
	ok := false
	for _, d := range allowedDurations(level) {
		if d == durationDays {
			ok = true
			break
		}
	}
	if !ok {
		return ErrInvalidDuration
	}
	if volume < minContractVolume || volume > maxContractVolume(level) {
		return ErrVolumeOutOfRange
	}
	if len(l.ActiveContracts(now)) >= maxActiveContracts(level) {
		return ErrTooManyContracts
	}
	if dailyConsumption > 0 {
		coverDays := (l.RemainingVolume(now) + volume) / dailyConsumption
		if coverDays > CoverageCap*float64(durationDays) {
			return ErrCoverageExceeded
		}
	}
	if cost := volume * price; funds < cost {
		return shared.NewInsufficientFundsError(cost, funds)
	}
	return nil
}

// Purchase validates and appends a spot-priced contract. The caller debits
// Volume×Price on success.
func (l *Ledger) Purchase(volume float64, durationDays, level int, spot, dailyConsumption, funds float64, now time.Time) (*Contract, error) {
	if err := l.Validate(volume, durationDays, level, spot, dailyConsumption, funds, now); err != nil {
		return nil, err
	}
	c := NewContract("", "", volume, spot, now, durationDays)
	l.contracts = append(l.contracts, c)
	return c, nil
}

// Add appends an externally-priced contract (a converted provider offer)
// that has already been validated.
func (l *Ledger) Add(c *Contract) {
	l.contracts = append(l.contracts, c)
}

// Consume distributes liters across usable contracts, cheapest first,
// marking contracts depleted as they fill. Returns the volume actually
// covered by contracts; the shortfall buys at spot.
func (l *Ledger) Consume(liters float64, now time.Time) float64 {
	active := l.ActiveContracts(now)
	sort.SliceStable(active, func(i, j int) bool { return active[i].Price < active[j].Price })

	consumed := 0.0
	for _, c := range active {
		if liters <= 0 {
			break
		}
		take := c.Remaining()
		if take > liters {
			take = liters
		}
		c.Used += take
		liters -= take
		consumed += take
		if c.Remaining() <= 0 {
			c.Status = ContractDepleted
		}
	}
	return consumed
}

// EffectivePrice is the price used for costing: the cheapest usable
// contract, or spot when unhedged.
func (l *Ledger) EffectivePrice(spot float64, now time.Time) float64 {
	best := spot
	hedged := false
	for _, c := range l.ActiveContracts(now) {
		if !hedged || c.Price < best {
			best = c.Price
			hedged = true
		}
	}
	return best
}

// Hedged reports whether at least one usable contract exists
func (l *Ledger) Hedged(now time.Time) bool {
	return len(l.ActiveContracts(now)) > 0
}

// CleanExpired purges depleted and past-end-date contracts
func (l *Ledger) CleanExpired(now time.Time) {
	kept := l.contracts[:0]
	for _, c := range l.contracts {
		if c.Status == ContractDepleted || c.Expired(now) {
			continue
		}
		kept = append(kept, c)
	}
	l.contracts = kept
}

// Efficiency summarizes hedge performance against the current spot price,
// for UI consumption only.
type Efficiency struct {
	ActiveContracts  int
	RemainingVolume  float64
	EffectivePrice   float64
	SpotPrice        float64
	ProjectedSavings float64 // (spot − price) × remaining, summed
}

// EfficiencySummary computes the hedge-vs-spot position
func (l *Ledger) EfficiencySummary(spot float64, now time.Time) Efficiency {
	eff := Efficiency{SpotPrice: spot, EffectivePrice: l.EffectivePrice(spot, now)}
	for _, c := range l.ActiveContracts(now) {
		eff.ActiveContracts++
		eff.RemainingVolume += c.Remaining()
		eff.ProjectedSavings += (spot - c.Price) * c.Remaining()
	}
	return eff
}
