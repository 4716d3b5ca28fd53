package fuel_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/airline-tycoon-go/internal/domain/fuel"
)

func TestProviderMarket_OffersUnlockByLevel(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	market := fuel.NewMarket(1.0)
	pm := fuel.NewProviderMarket(day0, rng)

	assert.Len(t, pm.GenerateOffers(1, market, 10_000, day0, rng), 1)
	assert.Len(t, pm.GenerateOffers(3, market, 10_000, day0, rng), 2)
	assert.Len(t, pm.GenerateOffers(5, market, 10_000, day0, rng), 3)
}

func TestProviderMarket_OfferShape(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	market := fuel.NewMarket(1.0)
	pm := fuel.NewProviderMarket(day0, rng)

	offers := pm.GenerateOffers(5, market, 8_000, day0, rng)

	require.Len(t, offers, 3)
	for _, o := range offers {
		// Volume rounds to 10k lots with a 10k floor
		assert.GreaterOrEqual(t, o.Volume, 10_000.0)
		assert.Equal(t, 0.0, math.Mod(o.Volume, 10_000))
		assert.Greater(t, o.Price, 0.0)
		assert.Greater(t, o.DurationDays, 0)
		assert.Equal(t, day0.AddDate(0, 0, 7), o.ExpiresAt)
	}
}

func TestProviderMarket_StableProviderChargesMoreInCrisis(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	crisis := fuel.RestoreMarket(fuel.MarketSnapshot{
		BasePrice: 1.0, SpotPrice: 1.5, Regime: fuel.RegimeBullish, DaysLeft: 10,
		InCrisis: true, CrisisDays: 5,
	})
	pm := fuel.NewProviderMarket(day0, rng)
	for _, p := range pm.Providers() {
		p.Profile = fuel.ProfileStable
	}

	offers := pm.GenerateOffers(5, crisis, 10_000, day0, rng)

	// 1.05 profile multiplier × 1.10 crisis surcharge, minus at most the 2%
	// volatility band
	floor := 1.5 * 1.05 * 1.10 * 0.98
	for _, o := range offers {
		assert.GreaterOrEqual(t, o.Price, floor)
	}
}

func TestProviderMarket_RotateProfiles(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	market := fuel.NewMarket(1.0)
	pm := fuel.NewProviderMarket(day0, rng)

	before := make(map[string]fuel.ProfileKind)
	for _, p := range pm.Providers() {
		before[p.ID] = p.Profile
		p.NextRotation = day0 // due now
	}

	rotated := pm.RotateProfiles(market, day0, rng)

	require.True(t, rotated)
	for _, p := range pm.Providers() {
		assert.NotEqual(t, before[p.ID], p.Profile, "provider %s must change profile", p.ID)
		assert.True(t, p.NextRotation.After(day0.AddDate(0, 0, 29)))
		assert.False(t, p.NextRotation.After(day0.AddDate(0, 0, 60)))
	}

	// Nothing due: no rotation
	assert.False(t, pm.RotateProfiles(market, day0, rng))
}

func TestProviderMarket_PurchaseFromOffer(t *testing.T) {
	rng := rand.New(rand.NewSource(41))
	market := fuel.NewMarket(1.0)
	pm := fuel.NewProviderMarket(day0, rng)
	ledger := fuel.NewLedger()

	offers := pm.GenerateOffers(5, market, 10_000, day0, rng)
	offer := offers[0]

	c, err := pm.PurchaseFromOffer(offer.ID, 5, ledger, 10_000, 1e12, day0)

	require.NoError(t, err)
	assert.Equal(t, offer.Volume, c.Volume)
	assert.Equal(t, offer.Price, c.Price)
	assert.Equal(t, offer.ProviderID, c.ProviderID)
	assert.Equal(t, day0.AddDate(0, 0, offer.DurationDays), c.EndDate)
	assert.Len(t, ledger.ActiveContracts(day0), 1)
	assert.Len(t, pm.Offers(), len(offers)-1, "accepted offer leaves the pool")
}

func TestProviderMarket_PurchaseFromOfferRevalidates(t *testing.T) {
	rng := rand.New(rand.NewSource(43))
	market := fuel.NewMarket(1.0)
	pm := fuel.NewProviderMarket(day0, rng)
	ledger := fuel.NewLedger()

	offers := pm.GenerateOffers(3, market, 10_000, day0, rng)
	require.NotEmpty(t, offers)

	// Unknown id
	_, err := pm.PurchaseFromOffer("nope", 3, ledger, 10_000, 1e12, day0)
	assert.ErrorIs(t, err, fuel.ErrOfferNotFound)

	// Expired window
	_, err = pm.PurchaseFromOffer(offers[0].ID, 3, ledger, 10_000, 1e12, day0.AddDate(0, 0, 8))
	assert.ErrorIs(t, err, fuel.ErrOfferExpired)

	// Active-contract cap still applies at acceptance time
	ledger.Add(fuel.NewContract("", "", 20_000, 1.0, day0, 30))
	_, err = pm.PurchaseFromOffer(offers[0].ID, 3, ledger, 10_000, 1e12, day0)
	assert.ErrorIs(t, err, fuel.ErrTooManyContracts)
}

func TestProviderMarket_PurgeExpiredOffers(t *testing.T) {
	rng := rand.New(rand.NewSource(47))
	market := fuel.NewMarket(1.0)
	pm := fuel.NewProviderMarket(day0, rng)
	pm.GenerateOffers(5, market, 10_000, day0, rng)

	pm.PurgeExpiredOffers(day0.AddDate(0, 0, 8))

	assert.Empty(t, pm.Offers())
}
