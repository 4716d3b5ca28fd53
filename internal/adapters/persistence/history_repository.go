package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/andrescamacho/airline-tycoon-go/internal/domain/world"
)

// GormHistoryRepository appends and reads the analytics history tables.
// Rows here mirror the state's bounded in-memory windows but are kept
// indefinitely for charting.
type GormHistoryRepository struct {
	db *gorm.DB
}

// NewGormHistoryRepository creates a new GORM history repository
func NewGormHistoryRepository(db *gorm.DB) *GormHistoryRepository {
	return &GormHistoryRepository{db: db}
}

// AppendEconomy records one day's financial outcome
func (r *GormHistoryRepository) AppendEconomy(ctx context.Context, e world.EconomyEntry) error {
	row := EconomyHistoryModel{
		Date:     e.Date,
		Revenue:  e.Revenue,
		Costs:    e.Costs,
		Net:      e.Net,
		Funds:    e.Funds,
		SpotFuel: e.SpotFuel,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to append economy history: %w", err)
	}
	return nil
}

// AppendReputation records one day's reputation movement
func (r *GormHistoryRepository) AppendReputation(ctx context.Context, e world.ReputationEntry) error {
	row := ReputationHistoryModel{
		Date:  e.Date,
		Delta: e.Delta,
		Value: e.Value,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to append reputation history: %w", err)
	}
	return nil
}

// RecentEconomy returns the latest n economy rows, newest first
func (r *GormHistoryRepository) RecentEconomy(ctx context.Context, n int) ([]world.EconomyEntry, error) {
	var rows []EconomyHistoryModel
	if err := r.db.WithContext(ctx).Order("date desc").Limit(n).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to read economy history: %w", err)
	}
	out := make([]world.EconomyEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, world.EconomyEntry{
			Date:     row.Date,
			Revenue:  row.Revenue,
			Costs:    row.Costs,
			Net:      row.Net,
			Funds:    row.Funds,
			SpotFuel: row.SpotFuel,
		})
	}
	return out, nil
}

// RecentReputation returns the latest n reputation rows, newest first
func (r *GormHistoryRepository) RecentReputation(ctx context.Context, n int) ([]world.ReputationEntry, error) {
	var rows []ReputationHistoryModel
	if err := r.db.WithContext(ctx).Order("date desc").Limit(n).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to read reputation history: %w", err)
	}
	out := make([]world.ReputationEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, world.ReputationEntry{
			Date:  row.Date,
			Delta: row.Delta,
			Value: row.Value,
		})
	}
	return out, nil
}
