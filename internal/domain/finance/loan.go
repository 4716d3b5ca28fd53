package finance

import (
	"github.com/google/uuid"

	"github.com/andrescamacho/airline-tycoon-go/internal/domain/shared"
)

const (
	// MaxLoanCeiling caps total borrowing regardless of standing
	MaxLoanCeiling = 500_000_000

	baseInterestRate  = 0.08
	fleetValuePerHull = 100_000
)

// LoanStatus is the lifecycle state of a loan
type LoanStatus string

const (
	LoanActive LoanStatus = "active"
	LoanRepaid LoanStatus = "repaid"
)

// Loan is one outstanding amortized debt
type Loan struct {
	ID              string
	Amount          float64
	InterestRate    float64
	MonthlyPayment  float64
	MonthsRemaining int
	Status          LoanStatus
}

// Engine computes borrowing capacity and amortizes loans monthly
type Engine struct {
	loans []*Loan
}

// NewEngine creates an empty loan book
func NewEngine() *Engine {
	return &Engine{}
}

// RestoreEngine rebuilds a loan book from persisted loans
func RestoreEngine(loans []*Loan) *Engine {
	return &Engine{loans: loans}
}

// Loans returns the active loan book
func (e *Engine) Loans() []*Loan { return e.loans }

// reputationMultiplier scales capacity linearly from 0.5 at reputation 0 to
// 1.5 at 100
func reputationMultiplier(reputation float64) float64 {
	return 0.5 + shared.Clamp(reputation, 0, 100)/100
}

// MaxLoanAmount is the borrowing cap: fleet collateral plus ninety days of
// gross revenue, scaled by reputation, never above the ceiling
func MaxLoanAmount(fleetCount int, lastGrossDailyRevenue, reputation float64) float64 {
	capacity := (float64(fleetCount)*fleetValuePerHull + 3*30*lastGrossDailyRevenue) *
		reputationMultiplier(reputation)
	if capacity > MaxLoanCeiling {
		return MaxLoanCeiling
	}
	return capacity
}

// InterestRate prices a loan off reputation: the 8% base rate doubles for a
// reputation of 0 and floors at base for good standing
func InterestRate(reputation float64) float64 {
	factor := (100 - shared.Clamp(reputation, 0, 100)) / 50
	if factor < 1 {
		factor = 1
	}
	return baseInterestRate * factor
}

// RequestLoan validates capacity and opens a loan. The caller credits the
// principal to player funds.
func (e *Engine) RequestLoan(amount float64, months int, fleetCount int, lastGrossDailyRevenue, reputation float64) (*Loan, error) {
	if amount <= 0 || months <= 0 {
		return nil, shared.Rejectf("loan amount and term must be positive")
	}
	if maxAmount := MaxLoanAmount(fleetCount, lastGrossDailyRevenue, reputation); amount > maxAmount {
		return nil, shared.Rejectf("amount %.0f exceeds borrowing capacity %.0f", amount, maxAmount)
	}

	rate := InterestRate(reputation)
	loan := &Loan{
		ID:              uuid.NewString(),
		Amount:          amount,
		InterestRate:    rate,
		MonthlyPayment:  amount/float64(months) + amount*rate/12,
		MonthsRemaining: months,
		Status:          LoanActive,
	}
	e.loans = append(e.loans, loan)
	return loan, nil
}

// ProcessMonthlyPayments amortizes every active loan by one month and drops
// completed loans. Returns the total debit. The orchestrator calls this on
// day 1 of each month.
func (e *Engine) ProcessMonthlyPayments() float64 {
	total := 0.0
	kept := e.loans[:0]
	for _, loan := range e.loans {
		total += loan.MonthlyPayment
		loan.MonthsRemaining--
		if loan.MonthsRemaining <= 0 {
			loan.Status = LoanRepaid
			continue
		}
		kept = append(kept, loan)
	}
	e.loans = kept
	return total
}

// MonthlyObligations sums the current payment load, for UI consumption
func (e *Engine) MonthlyObligations() float64 {
	total := 0.0
	for _, loan := range e.loans {
		total += loan.MonthlyPayment
	}
	return total
}
