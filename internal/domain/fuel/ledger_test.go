package fuel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/airline-tycoon-go/internal/domain/fuel"
	"github.com/andrescamacho/airline-tycoon-go/internal/domain/shared"
)

func TestLedger_PurchaseAndConsume(t *testing.T) {
	// Arrange
	l := fuel.NewLedger()
	now := day0

	// Act - 50,000 L for 30 days at spot 1.00, level 3, ample funds
	c, err := l.Purchase(50_000, 30, 3, 1.0, 5_000, 1_000_000, now)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 0.0, c.Used)
	assert.Equal(t, 1.0, c.Price)
	assert.Equal(t, now.AddDate(0, 0, 30), c.EndDate)
	assert.Equal(t, fuel.ContractActive, c.Status)

	// Act - consume part of it
	consumed := l.Consume(20_000, now)

	// Assert
	assert.Equal(t, 20_000.0, consumed)
	assert.Equal(t, 20_000.0, c.Used)
	assert.Equal(t, 30_000.0, c.Remaining())
}

func TestLedger_PurchaseGates(t *testing.T) {
	now := day0

	tests := []struct {
		name     string
		volume   float64
		duration int
		level    int
		daily    float64
		funds    float64
		wantErr  error
	}{
		{"locked below level 3", 50_000, 30, 2, 5_000, 1e9, fuel.ErrFeatureLocked},
		{"duration gated by level", 50_000, 90, 3, 5_000, 1e9, fuel.ErrInvalidDuration},
		{"180d only at level 7", 50_000, 180, 6, 5_000, 1e9, fuel.ErrInvalidDuration},
		{"volume below floor", 5_000, 30, 3, 5_000, 1e9, fuel.ErrVolumeOutOfRange},
		{"volume above level cap", 600_000, 30, 3, 100_000, 1e9, fuel.ErrVolumeOutOfRange},
		{"coverage cap", 50_000, 30, 3, 1_000, 1e9, fuel.ErrCoverageExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := fuel.NewLedger()
			_, err := l.Purchase(tt.volume, tt.duration, tt.level, 1.0, tt.daily, tt.funds, now)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLedger_PurchaseRejectsInsufficientFunds(t *testing.T) {
	l := fuel.NewLedger()

	_, err := l.Purchase(50_000, 30, 3, 1.0, 5_000, 100, day0)

	var fundsErr *shared.InsufficientFundsError
	require.ErrorAs(t, err, &fundsErr)
	assert.Equal(t, 50_000.0, fundsErr.Required)
}

func TestLedger_ActiveContractCapPerLevel(t *testing.T) {
	l := fuel.NewLedger()
	now := day0

	// Level 3 allows a single active contract
	_, err := l.Purchase(20_000, 30, 3, 1.0, 10_000, 1e9, now)
	require.NoError(t, err)
	_, err = l.Purchase(20_000, 30, 3, 1.0, 10_000, 1e9, now)
	assert.ErrorIs(t, err, fuel.ErrTooManyContracts)

	// Level 4 allows a second
	_, err = l.Purchase(20_000, 30, 4, 1.0, 10_000, 1e9, now)
	require.NoError(t, err)
}

func TestLedger_ConsumeCheapestFirst(t *testing.T) {
	// Arrange - two hedges at different prices
	l := fuel.NewLedger()
	now := day0
	expensive := fuel.NewContract("provider-a", fuel.ProfileStable, 30_000, 1.2, now, 60)
	cheap := fuel.NewContract("provider-b", fuel.ProfileAggressive, 30_000, 0.8, now, 60)
	l.Add(expensive)
	l.Add(cheap)

	// Act - more than the cheap contract holds
	consumed := l.Consume(40_000, now)

	// Assert - cheap depletes first, spill hits the expensive one
	assert.Equal(t, 40_000.0, consumed)
	assert.Equal(t, 30_000.0, cheap.Used)
	assert.Equal(t, fuel.ContractDepleted, cheap.Status)
	assert.Equal(t, 10_000.0, expensive.Used)
	assert.Equal(t, fuel.ContractActive, expensive.Status)
}

func TestLedger_ConsumeConservesVolume(t *testing.T) {
	l := fuel.NewLedger()
	now := day0
	l.Add(fuel.NewContract("", "", 10_000, 1.0, now, 30))
	l.Add(fuel.NewContract("", "", 15_000, 0.9, now, 30))

	// Consuming beyond total capacity covers exactly the total
	consumed := l.Consume(100_000, now)

	assert.Equal(t, 25_000.0, consumed)
	for _, c := range l.Contracts() {
		assert.LessOrEqual(t, c.Used, c.Volume)
	}
	assert.Equal(t, 0.0, l.RemainingVolume(now))
}

func TestLedger_EffectivePrice(t *testing.T) {
	l := fuel.NewLedger()
	now := day0
	spot := 1.10

	// Unhedged: spot
	assert.Equal(t, spot, l.EffectivePrice(spot, now))

	// Hedged below spot: cheapest contract wins
	l.Add(fuel.NewContract("", "", 20_000, 0.9, now, 30))
	l.Add(fuel.NewContract("", "", 20_000, 1.05, now, 30))
	assert.Equal(t, 0.9, l.EffectivePrice(spot, now))
	assert.LessOrEqual(t, l.EffectivePrice(spot, now), spot)

	// Expired contracts no longer count
	later := now.AddDate(0, 0, 31)
	assert.Equal(t, spot, l.EffectivePrice(spot, later))
}

func TestLedger_CleanExpired(t *testing.T) {
	l := fuel.NewLedger()
	now := day0
	short := fuel.NewContract("", "", 20_000, 1.0, now, 15)
	long := fuel.NewContract("", "", 20_000, 1.0, now, 60)
	drained := fuel.NewContract("", "", 10_000, 0.5, now, 60)
	l.Add(short)
	l.Add(long)
	l.Add(drained)
	l.Consume(10_000, now) // exactly drains the cheapest contract

	l.CleanExpired(now.AddDate(0, 0, 20))

	require.Len(t, l.Contracts(), 1)
	assert.Equal(t, long.ID, l.Contracts()[0].ID)
}

func TestLedger_EfficiencySummary(t *testing.T) {
	l := fuel.NewLedger()
	now := day0
	l.Add(fuel.NewContract("", "", 50_000, 0.8, now, 30))

	eff := l.EfficiencySummary(1.0, now)

	assert.Equal(t, 1, eff.ActiveContracts)
	assert.Equal(t, 50_000.0, eff.RemainingVolume)
	assert.Equal(t, 0.8, eff.EffectivePrice)
	assert.InDelta(t, 10_000.0, eff.ProjectedSavings, 1e-9)
}
