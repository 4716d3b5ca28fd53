package finance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/airline-tycoon-go/internal/domain/finance"
	"github.com/andrescamacho/airline-tycoon-go/internal/domain/shared"
)

func TestMaxLoanAmount(t *testing.T) {
	// 10 aircraft × 100k + 90 × 50k gross = 5.5M, scaled by reputation
	assert.InDelta(t, 5_500_000*1.0, finance.MaxLoanAmount(10, 50_000, 50), 1e-6)
	assert.InDelta(t, 5_500_000*1.5, finance.MaxLoanAmount(10, 50_000, 100), 1e-6)
	assert.InDelta(t, 5_500_000*0.5, finance.MaxLoanAmount(10, 50_000, 0), 1e-6)

	// Ceiling binds for huge airlines
	assert.Equal(t, 500_000_000.0, finance.MaxLoanAmount(5000, 10_000_000, 100))
}

func TestInterestRate(t *testing.T) {
	// Good standing floors at the base rate
	assert.InDelta(t, 0.08, finance.InterestRate(80), 1e-9)
	assert.InDelta(t, 0.08, finance.InterestRate(50), 1e-9)
	// Poor standing scales it up, doubling at zero
	assert.InDelta(t, 0.128, finance.InterestRate(20), 1e-9)
	assert.InDelta(t, 0.16, finance.InterestRate(0), 1e-9)
}

func TestEngine_RequestLoan(t *testing.T) {
	e := finance.NewEngine()

	loan, err := e.RequestLoan(1_200_000, 12, 10, 50_000, 50)

	require.NoError(t, err)
	assert.Equal(t, 0.08, loan.InterestRate)
	// amount/months + amount×rate/12 = 100000 + 8000
	assert.InDelta(t, 108_000, loan.MonthlyPayment, 1e-6)
	assert.Equal(t, 12, loan.MonthsRemaining)
	assert.Len(t, e.Loans(), 1)
}

func TestEngine_RequestLoanRejectsOverCapacity(t *testing.T) {
	e := finance.NewEngine()

	_, err := e.RequestLoan(100_000_000, 12, 2, 10_000, 50)

	var rejection *shared.Rejection
	require.ErrorAs(t, err, &rejection)
	assert.Empty(t, e.Loans())
}

func TestEngine_ProcessMonthlyPayments(t *testing.T) {
	e := finance.NewEngine()
	loan, err := e.RequestLoan(240_000, 2, 10, 50_000, 100)
	require.NoError(t, err)

	first := e.ProcessMonthlyPayments()
	assert.InDelta(t, loan.MonthlyPayment, first, 1e-9)
	assert.Equal(t, 1, loan.MonthsRemaining)
	assert.Len(t, e.Loans(), 1)

	// Final installment retires the loan
	e.ProcessMonthlyPayments()
	assert.Equal(t, finance.LoanRepaid, loan.Status)
	assert.Empty(t, e.Loans())
	assert.Equal(t, 0.0, e.MonthlyObligations())
}
