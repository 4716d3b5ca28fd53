package fuel

import (
	"math/rand"
	"time"

	"github.com/andrescamacho/airline-tycoon-go/internal/domain/shared"
)

// Regime is a discrete market state with its own daily drift distribution
type Regime string

const (
	RegimeStable   Regime = "STABLE"
	RegimeBullish  Regime = "BULLISH"
	RegimeBearish  Regime = "BEARISH"
	RegimeVolatile Regime = "VOLATILE"
)

// regimeParams defines the daily drift range and duration range of a regime
type regimeParams struct {
	driftLo, driftHi float64
	daysLo, daysHi   int
}

var regimeTable = map[Regime]regimeParams{
	RegimeStable:   {-0.01, 0.01, 10, 20},
	RegimeBullish:  {0.01, 0.03, 7, 18},
	RegimeBearish:  {-0.03, -0.01, 7, 18},
	RegimeVolatile: {-0.05, 0.05, 5, 12},
}

var regimeDraw = []Regime{RegimeStable, RegimeBullish, RegimeBearish, RegimeVolatile}

const (
	// CrisisThreshold is the spot/base ratio at which a crisis begins
	CrisisThreshold = 1.25

	shockProbability = 0.12
	spotFloorRatio   = 0.5
	spotCeilRatio    = 3.0
	historyCap       = 90
)

// PricePoint is one entry of the bounded spot-price history
type PricePoint struct {
	Date  time.Time
	Price float64
	Shock string // non-empty when an additive shock applied that day
}

// Market simulates the fuel spot price as a regime-switching random walk
// with crisis hysteresis. It advances at most once per simulated day.
type Market struct {
	basePrice   float64
	spotPrice   float64
	regime      Regime
	daysLeft    int
	inCrisis    bool
	crisisStart time.Time
	crisisDays  int
	history     []PricePoint
	lastUpdated string // shared.DayKey of the last advance
}

// NewMarket creates a fuel market at its base reference price
func NewMarket(basePrice float64) *Market {
	return &Market{
		basePrice: basePrice,
		spotPrice: basePrice,
	}
}

func (m *Market) BasePrice() float64     { return m.basePrice }
func (m *Market) SpotPrice() float64     { return m.spotPrice }
func (m *Market) Regime() Regime         { return m.regime }
func (m *Market) DaysLeftInRegime() int  { return m.daysLeft }
func (m *Market) InCrisis() bool         { return m.inCrisis }
func (m *Market) CrisisDays() int        { return m.crisisDays }
func (m *Market) CrisisStart() time.Time { return m.crisisStart }

// History returns a defensive copy of the bounded price history
func (m *Market) History() []PricePoint {
	out := make([]PricePoint, len(m.history))
	copy(out, m.history)
	return out
}

// AdvanceOneDay runs one step of the price process. Idempotent per calendar
// day: repeated calls with the same date are no-ops.
func (m *Market) AdvanceOneDay(rng *rand.Rand, today time.Time) {
	key := shared.DayKey(today)
	if m.lastUpdated == key {
		return
	}
	m.lastUpdated = key

	if m.regime == "" || m.daysLeft <= 0 {
		m.regime = regimeDraw[rng.Intn(len(regimeDraw))]
		p := regimeTable[m.regime]
		m.daysLeft = shared.RandIntRange(rng, p.daysLo, p.daysHi)
	}

	p := regimeTable[m.regime]
	delta := shared.RandRange(rng, p.driftLo, p.driftHi)

	shock := ""
	if shared.Chance(rng, shockProbability) {
		magnitude := shared.RandRange(rng, 0.15, 0.30)
		if rng.Float64() < 0.5 {
			magnitude = -magnitude
		}
		delta += magnitude
		if magnitude > 0 {
			shock = "supply-shock"
		} else {
			shock = "demand-collapse"
		}
	}

	m.spotPrice *= 1 + delta
	m.spotPrice = shared.Clamp(m.spotPrice, spotFloorRatio*m.basePrice, spotCeilRatio*m.basePrice)
	m.daysLeft--

	m.updateCrisis(today)

	m.history = append(m.history, PricePoint{Date: today, Price: m.spotPrice, Shock: shock})
	if len(m.history) > historyCap {
		m.history = m.history[len(m.history)-historyCap:]
	}
}

// updateCrisis applies entry/exit hysteresis: a crisis starts the day spot
// reaches 125% of base and ends the instant it falls back below.
func (m *Market) updateCrisis(today time.Time) {
	if m.spotPrice >= CrisisThreshold*m.basePrice {
		if !m.inCrisis {
			m.inCrisis = true
			m.crisisStart = today
			m.crisisDays = 0
		}
		m.crisisDays++
	} else if m.inCrisis {
		m.inCrisis = false
		m.crisisDays = 0
	}
}

// MarketSnapshot is the persistable state of the price process
type MarketSnapshot struct {
	BasePrice   float64
	SpotPrice   float64
	Regime      Regime
	DaysLeft    int
	InCrisis    bool
	CrisisStart time.Time
	CrisisDays  int
	LastUpdated string
	History     []PricePoint
}

// Snapshot exports the market state for persistence
func (m *Market) Snapshot() MarketSnapshot {
	return MarketSnapshot{
		BasePrice:   m.basePrice,
		SpotPrice:   m.spotPrice,
		Regime:      m.regime,
		DaysLeft:    m.daysLeft,
		InCrisis:    m.inCrisis,
		CrisisStart: m.crisisStart,
		CrisisDays:  m.crisisDays,
		LastUpdated: m.lastUpdated,
		History:     m.History(),
	}
}

// RestoreMarket reconstructs a market from a persisted snapshot
func RestoreMarket(s MarketSnapshot) *Market {
	m := &Market{
		basePrice:   s.BasePrice,
		spotPrice:   s.SpotPrice,
		regime:      s.Regime,
		daysLeft:    s.DaysLeft,
		inCrisis:    s.InCrisis,
		crisisStart: s.CrisisStart,
		crisisDays:  s.CrisisDays,
		lastUpdated: s.LastUpdated,
	}
	m.history = append(m.history, s.History...)
	return m
}
