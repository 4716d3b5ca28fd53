package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/andrescamacho/airline-tycoon-go/internal/domain/competitor"
	"github.com/andrescamacho/airline-tycoon-go/internal/domain/corporate"
	"github.com/andrescamacho/airline-tycoon-go/internal/domain/finance"
	"github.com/andrescamacho/airline-tycoon-go/internal/domain/fleet"
	"github.com/andrescamacho/airline-tycoon-go/internal/domain/fuel"
	"github.com/andrescamacho/airline-tycoon-go/internal/domain/route"
	"github.com/andrescamacho/airline-tycoon-go/internal/domain/shared"
	"github.com/andrescamacho/airline-tycoon-go/internal/domain/world"
)

// ErrNoSave is returned when no game snapshot exists yet
var ErrNoSave = errors.New("no save found")

const saveRowID = 1

// corporateState bundles the corporate desk's persisted pieces
type corporateState struct {
	Offers        []*corporate.Offer
	Contracts     []*corporate.Contract
	LastGenerated time.Time
}

// GormSaveRepository persists and restores the world snapshot using GORM
type GormSaveRepository struct {
	db *gorm.DB
}

// NewGormSaveRepository creates a new GORM save repository
func NewGormSaveRepository(db *gorm.DB) *GormSaveRepository {
	return &GormSaveRepository{db: db}
}

// Save upserts the single snapshot row and replaces the fuel contract rows
func (r *GormSaveRepository) Save(ctx context.Context, s *world.State, seed int64) error {
	model, err := stateToModel(s, seed)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(model).Error; err != nil {
			return fmt.Errorf("failed to save snapshot: %w", err)
		}
		if err := tx.Where("1 = 1").Delete(&FuelContractModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear fuel contracts: %w", err)
		}
		for _, c := range s.FuelLedger.Contracts() {
			row := FuelContractModel{
				ID:         c.ID,
				ProviderID: c.ProviderID,
				Profile:    string(c.Profile),
				Volume:     c.Volume,
				Price:      c.Price,
				StartDate:  c.StartDate,
				EndDate:    c.EndDate,
				Used:       c.Used,
				Status:     string(c.Status),
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("failed to save fuel contract %s: %w", c.ID, err)
			}
		}
		return nil
	})
}

// Load restores the world from the snapshot row. Every engine round-trips
// from its persisted state, including the evolved competitor networks and
// the provider market's rotation schedules and offer pool. The rng stream
// restarts from the stored seed, so post-load randomness diverges from an
// uninterrupted run of the same seed.
func (r *GormSaveRepository) Load(ctx context.Context) (*world.State, int64, error) {
	var model SaveModel
	result := r.db.WithContext(ctx).Where("id = ?", saveRowID).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, 0, ErrNoSave
		}
		return nil, 0, fmt.Errorf("failed to load snapshot: %w", result.Error)
	}
	UpgradeSave(&model)

	s, err := modelToState(&model)
	if err != nil {
		return nil, 0, err
	}

	var contracts []FuelContractModel
	if err := r.db.WithContext(ctx).Find(&contracts).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to load fuel contracts: %w", err)
	}
	for _, row := range contracts {
		s.FuelLedger.Add(&fuel.Contract{
			ID:         row.ID,
			ProviderID: row.ProviderID,
			Profile:    fuel.ProfileKind(row.Profile),
			Volume:     row.Volume,
			Price:      row.Price,
			StartDate:  row.StartDate,
			EndDate:    row.EndDate,
			Used:       row.Used,
			Status:     fuel.ContractStatus(row.Status),
		})
	}

	return s, model.Seed, nil
}

func stateToModel(s *world.State, seed int64) (*SaveModel, error) {
	model := &SaveModel{
		ID:            saveRowID,
		SchemaVersion: CurrentSchemaVersion,
		Date:          s.Date,
		Money:         s.Money,
		Reputation:    s.Reputation,
		Level:         s.Level,
		Seed:          seed,
	}

	blobs := []struct {
		target *string
		value  interface{}
	}{
		{&model.MarketJSON, s.FuelMarket.Snapshot()},
		{&model.HubsJSON, s.Hubs},
		{&model.RoutesJSON, s.Routes.All()},
		{&model.FleetJSON, s.Fleet.All()},
		{&model.LoansJSON, s.Loans.Loans()},
		{&model.CorporateJSON, corporateState{
			Offers:        s.Corporate.Offers(),
			Contracts:     s.Corporate.Contracts(),
			LastGenerated: s.Corporate.LastGenerated(),
		}},
		{&model.CompetitorsJSON, s.Competitors.Airlines()},
		{&model.ProvidersJSON, s.FuelProviders.Snapshot()},
	}
	for _, b := range blobs {
		data, err := json.Marshal(b.value)
		if err != nil {
			return nil, err
		}
		*b.target = string(data)
	}
	return model, nil
}

func modelToState(m *SaveModel) (*world.State, error) {
	var snap fuel.MarketSnapshot
	if err := json.Unmarshal([]byte(m.MarketJSON), &snap); err != nil {
		return nil, fmt.Errorf("corrupt market snapshot: %w", err)
	}

	rng := shared.NewRand(m.Seed)
	s := &world.State{
		Date:          m.Date,
		Money:         m.Money,
		Reputation:    m.Reputation,
		Level:         m.Level,
		Hubs:          make(map[string]*world.Hub),
		Fleet:         fleet.NewStore(),
		Routes:        route.NewIndex(),
		FuelMarket:    fuel.RestoreMarket(snap),
		FuelLedger:    fuel.NewLedger(),
		FuelProviders: fuel.NewProviderMarket(m.Date, rng),
		Competitors:   nil,
		Corporate:     corporate.NewEngine(),
		Loans:         finance.NewEngine(),
		Rand:          rng,
	}

	if m.HubsJSON != "" {
		if err := json.Unmarshal([]byte(m.HubsJSON), &s.Hubs); err != nil {
			return nil, fmt.Errorf("corrupt hubs: %w", err)
		}
	}
	if m.RoutesJSON != "" {
		var routes []*route.Route
		if err := json.Unmarshal([]byte(m.RoutesJSON), &routes); err != nil {
			return nil, fmt.Errorf("corrupt routes: %w", err)
		}
		for _, r := range routes {
			s.Routes.Add(r)
		}
	}
	if m.FleetJSON != "" {
		var planes []*fleet.Aircraft
		if err := json.Unmarshal([]byte(m.FleetJSON), &planes); err != nil {
			return nil, fmt.Errorf("corrupt fleet: %w", err)
		}
		for _, p := range planes {
			s.Fleet.Add(p)
		}
	}
	if m.LoansJSON != "" {
		var loans []*finance.Loan
		if err := json.Unmarshal([]byte(m.LoansJSON), &loans); err != nil {
			return nil, fmt.Errorf("corrupt loans: %w", err)
		}
		s.Loans = finance.RestoreEngine(loans)
	}
	if m.CorporateJSON != "" {
		var cs corporateState
		if err := json.Unmarshal([]byte(m.CorporateJSON), &cs); err != nil {
			return nil, fmt.Errorf("corrupt corporate state: %w", err)
		}
		s.Corporate = corporate.RestoreEngine(cs.Offers, cs.Contracts, cs.LastGenerated)
	}
	if m.ProvidersJSON != "" {
		var ps fuel.ProviderMarketSnapshot
		if err := json.Unmarshal([]byte(m.ProvidersJSON), &ps); err != nil {
			return nil, fmt.Errorf("corrupt provider market: %w", err)
		}
		s.FuelProviders = fuel.RestoreProviderMarket(ps)
	}

	// Pre-version-2 saves carry no competitor blob; rebuild day-0 rivals
	// from the seed for those rows.
	if m.CompetitorsJSON != "" {
		var rivals []*competitor.Airline
		if err := json.Unmarshal([]byte(m.CompetitorsJSON), &rivals); err != nil {
			return nil, fmt.Errorf("corrupt competitor state: %w", err)
		}
		s.Competitors = competitor.RestoreEngine(rivals)
	} else {
		s.Competitors = competitor.NewEngine(competitor.Profiles, world.AirportIDs(), rng)
	}
	return s, nil
}
