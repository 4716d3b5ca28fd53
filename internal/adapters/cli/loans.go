package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/airline-tycoon-go/internal/domain/finance"
)

// NewLoansCommand creates the loans command with subcommands
func NewLoansCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "loans",
		Short: "Inspect borrowing capacity and manage loans",
	}

	cmd.AddCommand(newLoansListCommand())
	cmd.AddCommand(newLoansRequestCommand())
	return cmd
}

func newLoansListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show outstanding loans and borrowing capacity",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.close()

			st := s.state
			capacity := finance.MaxLoanAmount(st.Fleet.Count(), st.LastDailyGross(), st.Reputation)
			rate := finance.InterestRate(st.Reputation)
			fmt.Printf("Borrowing capacity: $%.0f at %.1f%% interest\n", capacity, rate*100)
			fmt.Printf("Monthly obligations: $%.0f\n", st.Loans.MonthlyObligations())

			loans := st.Loans.Loans()
			if len(loans) == 0 {
				fmt.Println("No outstanding loans.")
				return nil
			}
			for _, l := range loans {
				fmt.Printf("%s  $%.0f at %.1f%%  $%.0f/month  %d months left\n",
					l.ID, l.Amount, l.InterestRate*100, l.MonthlyPayment, l.MonthsRemaining)
			}
			return nil
		},
	}
}

func newLoansRequestCommand() *cobra.Command {
	var amount float64
	var months int

	cmd := &cobra.Command{
		Use:   "request",
		Short: "Take out a new loan",
		RunE: func(cmd *cobra.Command, args []string) error {
			if amount <= 0 || months < 1 {
				return fmt.Errorf("--amount and --months are required")
			}
			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.close()

			st := s.state
			loan, err := st.Loans.RequestLoan(amount, months,
				st.Fleet.Count(), st.LastDailyGross(), st.Reputation)
			if err != nil {
				return err
			}
			st.Money += loan.Amount
			fmt.Printf("Loan %s: $%.0f at %.1f%%, $%.0f/month for %d months\n",
				loan.ID, loan.Amount, loan.InterestRate*100,
				loan.MonthlyPayment, loan.MonthsRemaining)
			return s.save(cmd.Context())
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "Loan principal")
	cmd.Flags().IntVar(&months, "months", 12, "Repayment period in months")
	return cmd
}
