package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/airline-tycoon-go/internal/adapters/persistence"
	"github.com/andrescamacho/airline-tycoon-go/internal/domain/competitor"
	"github.com/andrescamacho/airline-tycoon-go/internal/domain/fleet"
	"github.com/andrescamacho/airline-tycoon-go/internal/domain/fuel"
	"github.com/andrescamacho/airline-tycoon-go/internal/domain/route"
	"github.com/andrescamacho/airline-tycoon-go/internal/domain/world"
	"github.com/andrescamacho/airline-tycoon-go/test/helpers"
)

func seededState(t *testing.T) *world.State {
	t.Helper()
	s, err := world.NewState(world.NewStateParams{
		Seed:          11,
		BaseFuelPrice: 0.85,
		StartMoney:    750_000,
		StartLevel:    3,
		Start:         time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	plane := &fleet.Aircraft{
		ID:          "plane-1",
		Model:       "E195",
		Stats:       fleet.BaseStats{Seats: 120, FuelBurn: 2.2, Category: "regional", FuelCoeff: 1.0},
		Condition:   90,
		DeliveredAt: s.Date.AddDate(-1, 0, 0),
		Status:      fleet.StatusActive,
	}
	s.Fleet.Add(plane)

	r := route.New("JFK", "ORD", 1190, fleet.SeatConfig{Economy: 120}, 7)
	r.Assign(plane.ID, 1)
	s.Routes.Add(r)
	require.NoError(t, s.EstablishHub("JFK", 8))

	_, err = s.FuelLedger.Purchase(50_000, 30, s.Level, 0.85, 3000, s.Money, s.Date)
	require.NoError(t, err)
	s.FuelLedger.Consume(12_000, s.Date)
	return s
}

func TestSaveRepository_RoundTrip(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormSaveRepository(db)
	ctx := context.Background()
	s := seededState(t)

	require.NoError(t, repo.Save(ctx, s, 11))

	loaded, seed, err := repo.Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(11), seed)
	assert.Equal(t, s.Money, loaded.Money)
	assert.Equal(t, s.Reputation, loaded.Reputation)
	assert.Equal(t, s.Level, loaded.Level)
	assert.True(t, s.Date.Equal(loaded.Date))
	assert.Equal(t, s.FuelMarket.SpotPrice(), loaded.FuelMarket.SpotPrice())

	require.Len(t, loaded.FuelLedger.Contracts(), 1)
	c := loaded.FuelLedger.Contracts()[0]
	assert.Equal(t, 12_000.0, c.Used)
	assert.Equal(t, 50_000.0, c.Volume)

	require.Equal(t, 1, loaded.Routes.Count())
	lr := loaded.Routes.All()[0]
	assert.Equal(t, "JFK", lr.Origin)
	assert.Len(t, lr.Assignments, 1)

	assert.Equal(t, 1, loaded.Fleet.Count())
	assert.Contains(t, loaded.Hubs, "JFK")
	assert.Len(t, loaded.Competitors.Airlines(), 49)
}

func TestSaveRepository_PersistsEvolvedRivalsAndProviders(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormSaveRepository(db)
	ctx := context.Background()
	s := seededState(t)

	rival := s.Competitors.Airlines()[0]
	rival.Routes = append(rival.Routes, competitor.Route{Origin: "ORD", Dest: "MIA", FrequencyPerWeek: 3})
	rival.PriceMultiplier = 1.25
	rival.FuelContracts = append(rival.FuelContracts,
		fuel.NewContract("", "", 80_000, 0.80, s.Date, 30))
	s.FuelProviders.GenerateOffers(s.Level, s.FuelMarket, 3000, s.Date, s.Rand)

	require.NoError(t, repo.Save(ctx, s, 11))
	loaded, _, err := repo.Load(ctx)
	require.NoError(t, err)

	lr := loaded.Competitors.Airlines()[0]
	assert.Equal(t, rival.Name, lr.Name)
	assert.Equal(t, rival.Routes, lr.Routes)
	assert.Equal(t, 1.25, lr.PriceMultiplier)
	require.Len(t, lr.ActiveFuelContracts(s.Date), 1)
	assert.Equal(t, 80_000.0, lr.FuelContracts[0].Volume)

	gotOffers := loaded.FuelProviders.Offers()
	require.Len(t, gotOffers, len(s.FuelProviders.Offers()))
	for i, o := range s.FuelProviders.Offers() {
		assert.Equal(t, o.ID, gotOffers[i].ID)
		assert.Equal(t, o.Price, gotOffers[i].Price)
		assert.Equal(t, o.Volume, gotOffers[i].Volume)
	}
	for i, p := range s.FuelProviders.Providers() {
		lp := loaded.FuelProviders.Providers()[i]
		assert.Equal(t, p.Profile, lp.Profile)
		assert.True(t, p.NextRotation.Equal(lp.NextRotation))
	}
}

func TestSaveRepository_LoadWithoutSave(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormSaveRepository(db)

	_, _, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, persistence.ErrNoSave)
}

func TestSaveRepository_SaveIsUpsert(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormSaveRepository(db)
	ctx := context.Background()
	s := seededState(t)

	require.NoError(t, repo.Save(ctx, s, 11))
	s.Money += 1000
	require.NoError(t, repo.Save(ctx, s, 11))

	loaded, _, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, s.Money, loaded.Money)

	var count int64
	db.Model(&persistence.SaveModel{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestUpgradeSave_FillsLegacyDefaults(t *testing.T) {
	m := &persistence.SaveModel{SchemaVersion: 0}
	persistence.UpgradeSave(m)

	assert.Equal(t, persistence.CurrentSchemaVersion, m.SchemaVersion)
	assert.Equal(t, 1, m.Level)
	assert.Equal(t, int64(1), m.Seed)
}

func TestHistoryRepository_AppendAndRead(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormHistoryRepository(db)
	ctx := context.Background()
	day := time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.AppendEconomy(ctx, world.EconomyEntry{
			Date: day.AddDate(0, 0, i), Revenue: float64(1000 + i), Net: float64(i),
		}))
		require.NoError(t, repo.AppendReputation(ctx, world.ReputationEntry{
			Date: day.AddDate(0, 0, i), Value: float64(50 + i),
		}))
	}

	econ, err := repo.RecentEconomy(ctx, 3)
	require.NoError(t, err)
	require.Len(t, econ, 3)
	assert.Equal(t, 1004.0, econ[0].Revenue)

	rep, err := repo.RecentReputation(ctx, 2)
	require.NoError(t, err)
	require.Len(t, rep, 2)
	assert.Equal(t, 54.0, rep[0].Value)
}
