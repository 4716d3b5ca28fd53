package persistence

import (
	"time"
)

// CurrentSchemaVersion is written to every save; UpgradeSave migrates older
// rows at the load boundary
const CurrentSchemaVersion = 2

// SaveModel is the single-row game snapshot. Nested engine state is stored
// as JSON text so sqlite and postgres share one schema.
type SaveModel struct {
	ID              int       `gorm:"column:id;primaryKey"`
	SchemaVersion   int       `gorm:"column:schema_version;not null"`
	Date            time.Time `gorm:"column:date;not null"`
	Money           float64   `gorm:"column:money;not null"`
	Reputation      float64   `gorm:"column:reputation;not null"`
	Level           int       `gorm:"column:level;not null"`
	Seed            int64     `gorm:"column:seed;not null"`
	MarketJSON      string    `gorm:"column:market;type:text;not null"`
	HubsJSON        string    `gorm:"column:hubs;type:text"`
	RoutesJSON      string    `gorm:"column:routes;type:text"`
	FleetJSON       string    `gorm:"column:fleet;type:text"`
	LoansJSON       string    `gorm:"column:loans;type:text"`
	CorporateJSON   string    `gorm:"column:corporate;type:text"`
	CompetitorsJSON string    `gorm:"column:competitors;type:text"`
	ProvidersJSON   string    `gorm:"column:providers;type:text"`
	UpdatedAt       time.Time `gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (SaveModel) TableName() string {
	return "saves"
}

// FuelContractModel represents the fuel_contracts table
type FuelContractModel struct {
	ID         string    `gorm:"column:id;primaryKey"`
	ProviderID string    `gorm:"column:provider_id"`
	Profile    string    `gorm:"column:profile"`
	Volume     float64   `gorm:"column:volume;not null"`
	Price      float64   `gorm:"column:price;not null"`
	StartDate  time.Time `gorm:"column:start_date;not null"`
	EndDate    time.Time `gorm:"column:end_date;not null"`
	Used       float64   `gorm:"column:used;not null;default:0"`
	Status     string    `gorm:"column:status;not null"`
}

func (FuelContractModel) TableName() string {
	return "fuel_contracts"
}

// EconomyHistoryModel represents the economy_history table
type EconomyHistoryModel struct {
	ID       int       `gorm:"column:id;primaryKey;autoIncrement"`
	Date     time.Time `gorm:"column:date;index;not null"`
	Revenue  float64   `gorm:"column:revenue;not null"`
	Costs    float64   `gorm:"column:costs;not null"`
	Net      float64   `gorm:"column:net;not null"`
	Funds    float64   `gorm:"column:funds;not null"`
	SpotFuel float64   `gorm:"column:spot_fuel;not null"`
}

func (EconomyHistoryModel) TableName() string {
	return "economy_history"
}

// ReputationHistoryModel represents the reputation_history table
type ReputationHistoryModel struct {
	ID    int       `gorm:"column:id;primaryKey;autoIncrement"`
	Date  time.Time `gorm:"column:date;index;not null"`
	Delta float64   `gorm:"column:delta;not null"`
	Value float64   `gorm:"column:value;not null"`
}

func (ReputationHistoryModel) TableName() string {
	return "reputation_history"
}

// UpgradeSave migrates an older save row to the current schema in place.
// All default-filling for legacy rows happens here, nowhere else.
func UpgradeSave(m *SaveModel) {
	if m.SchemaVersion >= CurrentSchemaVersion {
		return
	}
	// Version 0 rows predate the schema_version column itself
	if m.Level == 0 {
		m.Level = 1
	}
	if m.Seed == 0 {
		m.Seed = 1
	}
	// Version 1 rows lack the competitor and provider blobs; Load rebuilds
	// those engines from the seed when the blobs are empty, so there is
	// nothing to fill here.
	m.SchemaVersion = CurrentSchemaVersion
}
