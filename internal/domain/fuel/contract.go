package fuel

import (
	"time"

	"github.com/google/uuid"
)

// ContractStatus is the lifecycle state of a fuel contract
type ContractStatus string

const (
	ContractActive   ContractStatus = "active"
	ContractDepleted ContractStatus = "depleted"
)

// Contract is a fixed-price fuel purchase: Volume liters at Price per liter,
// valid from StartDate to EndDate. Used grows monotonically through ledger
// consumption and never exceeds Volume.
type Contract struct {
	ID         string
	ProviderID string // empty for spot-market purchases
	Profile    ProfileKind
	Volume     float64
	Price      float64
	StartDate  time.Time
	EndDate    time.Time
	Used       float64
	Status     ContractStatus
}

// NewContract creates an active contract starting now
func NewContract(providerID string, profile ProfileKind, volume, price float64, start time.Time, durationDays int) *Contract {
	return &Contract{
		ID:         uuid.NewString(),
		ProviderID: providerID,
		Profile:    profile,
		Volume:     volume,
		Price:      price,
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, durationDays),
		Status:     ContractActive,
	}
}

// Remaining returns the unconsumed volume
func (c *Contract) Remaining() float64 {
	return c.Volume - c.Used
}

// Expired reports whether the contract window has closed
func (c *Contract) Expired(now time.Time) bool {
	return now.After(c.EndDate)
}

// Usable reports whether the contract can still supply fuel
func (c *Contract) Usable(now time.Time) bool {
	return c.Status == ContractActive && !c.Expired(now) && c.Remaining() > 0
}
