package fuel

import "errors"

// Domain errors for fuel market and hedging operations

var (
	// ErrFeatureLocked is returned when the player's level is too low to hedge
	ErrFeatureLocked = errors.New("fuel contracts unlock at level 3")

	// ErrInvalidDuration is returned when a contract duration is not in the
	// level-gated allowed set
	ErrInvalidDuration = errors.New("contract duration not available at this level")

	// ErrVolumeOutOfRange is returned when a contract volume is outside the
	// level-gated caps
	ErrVolumeOutOfRange = errors.New("contract volume out of range")

	// ErrTooManyContracts is returned when the active-contract cap is reached
	ErrTooManyContracts = errors.New("active contract limit reached")

	// ErrCoverageExceeded is returned when a purchase would hedge more than
	// 85% of projected consumption over the contract window
	ErrCoverageExceeded = errors.New("fuel coverage cap exceeded")

	// ErrOfferNotFound is returned when an offer id does not match any
	// outstanding provider offer
	ErrOfferNotFound = errors.New("fuel offer not found")

	// ErrOfferExpired is returned when an offer's acceptance window has passed
	ErrOfferExpired = errors.New("fuel offer expired")
)
