package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/andrescamacho/airline-tycoon-go/internal/adapters/persistence"
	"github.com/andrescamacho/airline-tycoon-go/internal/domain/world"
	"github.com/andrescamacho/airline-tycoon-go/internal/infrastructure/config"
	"github.com/andrescamacho/airline-tycoon-go/internal/infrastructure/database"
)

// session bundles everything a CLI command needs to touch the game
type session struct {
	cfg   *config.Config
	db    *gorm.DB
	saves *persistence.GormSaveRepository
	hist  *persistence.GormHistoryRepository
	state *world.State
	seed  int64
}

// openSession connects to the save database and loads the game, starting a
// fresh one when no save exists yet
func openSession(ctx context.Context) (*session, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	s := &session{
		cfg:   cfg,
		db:    db,
		saves: persistence.NewGormSaveRepository(db),
		hist:  persistence.NewGormHistoryRepository(db),
	}

	state, seed, err := s.saves.Load(ctx)
	switch {
	case err == nil:
		s.state, s.seed = state, seed
	case errors.Is(err, persistence.ErrNoSave):
		state, err = world.NewState(world.NewStateParams{
			Seed:          cfg.Simulation.Seed,
			BaseFuelPrice: cfg.Simulation.BaseFuelPrice,
			StartMoney:    cfg.Simulation.StartingCash,
			StartLevel:    cfg.Simulation.StartingLevel,
			Start:         time.Now().UTC().Truncate(24 * time.Hour),
		})
		if err != nil {
			return nil, err
		}
		s.state, s.seed = state, cfg.Simulation.Seed
	default:
		return nil, err
	}
	return s, nil
}

func (s *session) close() {
	_ = database.Close(s.db)
}

// save persists the current state back to the database
func (s *session) save(ctx context.Context) error {
	return s.saves.Save(ctx, s.state, s.seed)
}

func lastEconomyEntry(s *session) world.EconomyEntry {
	h := s.state.EconomyHistory
	if len(h) == 0 {
		return world.EconomyEntry{}
	}
	return h[len(h)-1]
}

func lastReputationEntry(s *session) world.ReputationEntry {
	h := s.state.ReputationHistory
	if len(h) == 0 {
		return world.ReputationEntry{}
	}
	return h[len(h)-1]
}
