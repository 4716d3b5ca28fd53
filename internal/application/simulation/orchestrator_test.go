package simulation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/airline-tycoon-go/internal/domain/fleet"
	"github.com/andrescamacho/airline-tycoon-go/internal/domain/route"
	"github.com/andrescamacho/airline-tycoon-go/internal/domain/world"
)

func newRunningAirline(t *testing.T, seed int64) *world.State {
	t.Helper()
	s, err := world.NewState(world.NewStateParams{
		Seed:          seed,
		BaseFuelPrice: 0.85,
		StartMoney:    1_000_000,
		StartLevel:    3,
		Start:         time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	plane := &fleet.Aircraft{
		ID:    "plane-1",
		Model: "A320neo",
		Stats: fleet.BaseStats{
			Seats: 180, FuelBurn: 2.5, RangeKm: 6300,
			Category: "narrowbody", FuelCoeff: 1.0,
		},
		Config:      fleet.SeatConfig{Economy: 150, Premium: 20, Business: 10},
		Condition:   95,
		DeliveredAt: s.Date.AddDate(0, -3, 0),
		Status:      fleet.StatusActive,
	}
	s.Fleet.Add(plane)

	require.NoError(t, s.EstablishHub("JFK", 10))
	r := route.New("JFK", "ORD", 1190, plane.Config, 7)
	r.Assign(plane.ID, 1)
	s.Routes.Add(r)
	return s
}

func TestProcessDaily_RunsFullSequence(t *testing.T) {
	s := newRunningAirline(t, 7)
	orch := New(nil)
	fundsBefore := s.Money

	report, err := orch.ProcessDaily(s)
	require.NoError(t, err)

	assert.Greater(t, report.Gross, 0.0)
	assert.Greater(t, report.Costs, 0.0)
	assert.Greater(t, report.FuelConsumed, 0.0)
	assert.Greater(t, report.HubFees, 0.0)
	assert.Equal(t, fundsBefore+report.Net, s.Money)
	assert.Len(t, s.EconomyHistory, 1)
	assert.Len(t, s.ReputationHistory, 1)
	assert.InDelta(t, 50+report.ReputationDelta, s.Reputation, 1e-9)
}

func TestProcessDaily_OncePerDay(t *testing.T) {
	s := newRunningAirline(t, 7)
	orch := New(nil)

	_, err := orch.ProcessDaily(s)
	require.NoError(t, err)

	_, err = orch.ProcessDaily(s)
	assert.ErrorIs(t, err, ErrDayAlreadyProcessed)

	s.Date = s.Date.AddDate(0, 0, 1)
	_, err = orch.ProcessDaily(s)
	assert.NoError(t, err)
}

func TestProcessDaily_SameSeedSameDay(t *testing.T) {
	r1, err := New(nil).ProcessDaily(newRunningAirline(t, 99))
	require.NoError(t, err)
	r2, err := New(nil).ProcessDaily(newRunningAirline(t, 99))
	require.NoError(t, err)

	assert.Equal(t, r1.Gross, r2.Gross)
	assert.Equal(t, r1.Costs, r2.Costs)
	assert.Equal(t, r1.Net, r2.Net)
	assert.Equal(t, r1.ReputationDelta, r2.ReputationDelta)
}

func TestProcessDaily_SkipsDanglingAircraft(t *testing.T) {
	s := newRunningAirline(t, 7)
	s.Fleet.Remove("plane-1")
	orch := New(nil)

	report, err := orch.ProcessDaily(s)
	require.NoError(t, err)

	assert.Equal(t, 1, report.SkippedRefs)
	assert.Equal(t, 1, orch.SkippedReferences())
	assert.Zero(t, report.Gross)
}

func TestProcessDaily_SkipsUnknownAirport(t *testing.T) {
	s := newRunningAirline(t, 7)
	ghost := route.New("XXX", "ORD", 800, fleet.SeatConfig{Economy: 100}, 7)
	ghost.Assign("plane-1", 1)
	s.Routes.Add(ghost)

	report, err := New(nil).ProcessDaily(s)
	require.NoError(t, err)

	assert.Equal(t, 1, report.SkippedRefs)
	assert.Greater(t, report.Gross, 0.0)
}

func TestProcessDaily_ConsumesLedgerBeforeCostQuote(t *testing.T) {
	s := newRunningAirline(t, 7)
	orch := New(nil)

	spot := s.FuelMarket.SpotPrice()
	_, err := s.FuelLedger.Purchase(50_000, 30, s.Level, spot, orch.EstimatedDailyConsumption(s), s.Money, s.Date)
	require.NoError(t, err)
	remainingBefore := s.FuelLedger.RemainingVolume(s.Date)

	report, err := orch.ProcessDaily(s)
	require.NoError(t, err)

	assert.True(t, report.HedgedFuel)
	assert.Equal(t, spot, report.EffectivePrice)
	assert.InDelta(t, remainingBefore-report.FuelConsumed, s.FuelLedger.RemainingVolume(s.Date), 1e-6)
}

func TestProcessDaily_LoanPaymentsOnFirstOfMonth(t *testing.T) {
	s := newRunningAirline(t, 7)
	s.Fleet.All()[0].TotalRevenue = 0
	loan, err := s.Loans.RequestLoan(100_000, 12, s.Fleet.Count(), 50_000, s.Reputation)
	require.NoError(t, err)
	orch := New(nil)

	report, err := orch.ProcessDaily(s)
	require.NoError(t, err)
	assert.Zero(t, report.LoanPayments)

	s.Date = time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	report, err = orch.ProcessDaily(s)
	require.NoError(t, err)
	assert.InDelta(t, loan.MonthlyPayment, report.LoanPayments, 1e-9)
}

func TestProjectedDailyBurn(t *testing.T) {
	s := newRunningAirline(t, 7)
	orch := New(nil)

	burn := orch.ProjectedDailyBurn(s)
	wear := s.Fleet.All()[0].WearFactor(s.Date)
	assert.InDelta(t, 1190*2.5*wear, burn, 1e-6)
}

func TestSeasonalFactor(t *testing.T) {
	assert.Equal(t, 1.20, seasonalFactor(time.December))
	assert.Equal(t, 1.15, seasonalFactor(time.July))
	assert.Equal(t, 0.90, seasonalFactor(time.January))
	assert.Equal(t, 1.0, seasonalFactor(time.October))
}
