package shared

import (
	"fmt"
	"strings"
)

// DomainError is the base error type for all domain errors
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}

// Rejection is a business-rule rejection: the operation was well-formed but
// one or more eligibility conditions were not met. Callers branch on it with
// errors.As; Reasons enumerates every unmet condition, not just the first.
type Rejection struct {
	Reasons []string
}

func (r *Rejection) Error() string {
	if len(r.Reasons) == 1 {
		return r.Reasons[0]
	}
	return fmt.Sprintf("%d conditions unmet: %s", len(r.Reasons), strings.Join(r.Reasons, "; "))
}

// NewRejection creates a rejection from one or more reasons
func NewRejection(reasons ...string) *Rejection {
	return &Rejection{Reasons: reasons}
}

// Rejectf creates a single-reason rejection with formatting
func Rejectf(format string, args ...interface{}) *Rejection {
	return &Rejection{Reasons: []string{fmt.Sprintf(format, args...)}}
}

// InsufficientFundsError is returned when an operation costs more than the
// player's available funds
type InsufficientFundsError struct {
	*DomainError
	Required  float64
	Available float64
}

func NewInsufficientFundsError(required, available float64) *InsufficientFundsError {
	return &InsufficientFundsError{
		DomainError: &DomainError{Message: fmt.Sprintf("insufficient funds: need %.0f, have %.0f", required, available)},
		Required:    required,
		Available:   available,
	}
}
