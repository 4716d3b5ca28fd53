package fuel

import (
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/andrescamacho/airline-tycoon-go/internal/domain/shared"
)

// ProfileKind is a provider's current pricing posture
type ProfileKind string

const (
	ProfileStable     ProfileKind = "stable"
	ProfileAggressive ProfileKind = "aggressive"
	ProfileFlexible   ProfileKind = "flexible"
)

// profileParams defines how a profile prices and sizes its offers
type profileParams struct {
	priceMult    float64
	volatility   float64
	breakPenalty float64
	durLo, durHi int
	volLo, volHi float64 // multiplier on estimated need
}

var profileTable = map[ProfileKind]profileParams{
	ProfileStable:     {1.05, 0.02, 0.10, 60, 90, 0.8, 1.2},
	ProfileAggressive: {0.92, 0.08, 0.35, 30, 60, 1.0, 1.5},
	ProfileFlexible:   {1.08, 0.05, 0.05, 15, 30, 0.5, 1.0},
}

var profileKinds = []ProfileKind{ProfileStable, ProfileAggressive, ProfileFlexible}

const offerWindowDays = 7

// Provider is one of the three competing fuel sellers
type Provider struct {
	ID           string
	Name         string
	Profile      ProfileKind
	ProfileStart time.Time
	NextRotation time.Time
}

// Offer is an ephemeral purchase option derived from a provider's profile
type Offer struct {
	ID           string
	ProviderID   string
	ProviderName string
	Profile      ProfileKind
	Price        float64
	Volume       float64
	DurationDays int
	BreakPenalty float64
	ExpiresAt    time.Time
}

// ProviderMarket models the three fuel sellers, their rotating profiles, and
// the current offer pool
type ProviderMarket struct {
	providers []*Provider
	offers    []*Offer
}

// NewProviderMarket seeds the three fixed providers with random initial
// profiles and rotation schedules
func NewProviderMarket(now time.Time, rng *rand.Rand) *ProviderMarket {
	names := []string{"PetroGlobal", "SkyFuel Direct", "AeroJet Partners"}
	pm := &ProviderMarket{}
	for i, name := range names {
		pm.providers = append(pm.providers, &Provider{
			ID:           "provider-" + string(rune('a'+i)),
			Name:         name,
			Profile:      profileKinds[rng.Intn(len(profileKinds))],
			ProfileStart: now,
			NextRotation: now.AddDate(0, 0, shared.RandIntRange(rng, 30, 60)),
		})
	}
	return pm
}

func (pm *ProviderMarket) Providers() []*Provider { return pm.providers }
func (pm *ProviderMarket) Offers() []*Offer       { return pm.offers }

// ProviderMarketSnapshot is the market's persistable state: the providers
// with their rotation schedules plus the outstanding offer pool
type ProviderMarketSnapshot struct {
	Providers []*Provider
	Offers    []*Offer
}

// Snapshot returns the market's persistable state
func (pm *ProviderMarket) Snapshot() ProviderMarketSnapshot {
	return ProviderMarketSnapshot{Providers: pm.providers, Offers: pm.offers}
}

// RestoreProviderMarket rebuilds a market from a snapshot
func RestoreProviderMarket(snap ProviderMarketSnapshot) *ProviderMarket {
	return &ProviderMarket{providers: snap.Providers, offers: snap.Offers}
}

// unlockedProviders returns how many of the three sellers the player can buy
// from at the given level
func unlockedProviders(level int) int {
	switch {
	case level <= 2:
		return 1
	case level <= 4:
		return 2
	default:
		return 3
	}
}

// GenerateOffers replaces the offer pool with one offer per unlocked
// provider, priced off the current spot with crisis and regime context.
func (pm *ProviderMarket) GenerateOffers(level int, market *Market, dailyConsumption float64, now time.Time, rng *rand.Rand) []*Offer {
	pm.offers = pm.offers[:0]
	for _, p := range pm.providers[:unlockedProviders(level)] {
		params := profileTable[p.Profile]

		price := market.SpotPrice() * params.priceMult
		if market.InCrisis() && p.Profile == ProfileStable {
			price *= 1.10
		}
		if market.Regime() == RegimeVolatile && p.Profile == ProfileFlexible {
			price *= 0.95
		}
		price *= 1 + shared.RandRange(rng, -params.volatility, params.volatility)

		duration := shared.RandIntRange(rng, params.durLo, params.durHi)
		volume := dailyConsumption * float64(duration) * shared.RandRange(rng, params.volLo, params.volHi)
		volume = math.Round(volume/10_000) * 10_000
		if volume < 10_000 {
			volume = 10_000
		}

		pm.offers = append(pm.offers, &Offer{
			ID:           uuid.NewString(),
			ProviderID:   p.ID,
			ProviderName: p.Name,
			Profile:      p.Profile,
			Price:        price,
			Volume:       volume,
			DurationDays: duration,
			BreakPenalty: params.breakPenalty,
			ExpiresAt:    now.AddDate(0, 0, offerWindowDays),
		})
	}
	return pm.offers
}

// PurgeExpiredOffers drops offers past their acceptance window
func (pm *ProviderMarket) PurgeExpiredOffers(now time.Time) {
	kept := pm.offers[:0]
	for _, o := range pm.offers {
		if now.After(o.ExpiresAt) {
			continue
		}
		kept = append(kept, o)
	}
	pm.offers = kept
}

// RotateProfiles moves each provider whose rotation date has passed onto a
// different profile, biased toward stable during a crisis and aggressive in
// a bearish regime. Reports whether any provider rotated, in which case the
// caller regenerates offers.
func (pm *ProviderMarket) RotateProfiles(market *Market, now time.Time, rng *rand.Rand) bool {
	rotated := false
	for _, p := range pm.providers {
		if now.Before(p.NextRotation) {
			continue
		}
		p.Profile = nextProfile(p.Profile, market, rng)
		p.ProfileStart = now
		p.NextRotation = now.AddDate(0, 0, shared.RandIntRange(rng, 30, 60))
		rotated = true
	}
	return rotated
}

func nextProfile(current ProfileKind, market *Market, rng *rand.Rand) ProfileKind {
	if market.InCrisis() && current != ProfileStable && shared.Chance(rng, 0.6) {
		return ProfileStable
	}
	if market.Regime() == RegimeBearish && current != ProfileAggressive && shared.Chance(rng, 0.6) {
		return ProfileAggressive
	}
	for {
		next := profileKinds[rng.Intn(len(profileKinds))]
		if next != current {
			return next
		}
	}
}

// PurchaseFromOffer converts an outstanding offer into a ledger contract,
// re-validating the active-contract and coverage gates at acceptance time.
// Offer durations come from the provider's profile and are exempt from the
// level-gated duration set.
func (pm *ProviderMarket) PurchaseFromOffer(offerID string, level int, ledger *Ledger, dailyConsumption, funds float64, now time.Time) (*Contract, error) {
	var offer *Offer
	idx := -1
	for i, o := range pm.offers {
		if o.ID == offerID {
			offer, idx = o, i
			break
		}
	}
	if offer == nil {
		return nil, ErrOfferNotFound
	}
	if now.After(offer.ExpiresAt) {
		return nil, ErrOfferExpired
	}
	if level < hedgingUnlockLevel {
		return nil, ErrFeatureLocked
	}
	if len(ledger.ActiveContracts(now)) >= maxActiveContracts(level) {
		return nil, ErrTooManyContracts
	}
	if dailyConsumption > 0 {
		coverDays := (ledger.RemainingVolume(now) + offer.Volume) / dailyConsumption
		if coverDays > CoverageCap*float64(offer.DurationDays) {
			return nil, ErrCoverageExceeded
		}
	}
	if cost := offer.Volume * offer.Price; funds < cost {
		return nil, shared.NewInsufficientFundsError(cost, funds)
	}

	c := NewContract(offer.ProviderID, offer.Profile, offer.Volume, offer.Price, now, offer.DurationDays)
	ledger.Add(c)
	pm.offers = append(pm.offers[:idx], pm.offers[idx+1:]...)
	return c, nil
}
