package cli

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/airline-tycoon-go/internal/application/simulation"
)

// NewSimulateCommand creates the simulate command
func NewSimulateCommand() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Advance the simulation by N days",
		RunE: func(cmd *cobra.Command, args []string) error {
			if days < 1 {
				return fmt.Errorf("--days must be at least 1")
			}
			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.close()

			var logger *log.Logger
			if verbose {
				logger = log.New(os.Stderr, "sim ", log.LstdFlags)
			}
			orch := simulation.New(logger)

			for i := 0; i < days; i++ {
				report, err := orch.ProcessDaily(s.state)
				if err != nil {
					return fmt.Errorf("day %s: %w", s.state.Date.Format("2006-01-02"), err)
				}
				if err := s.hist.AppendEconomy(cmd.Context(), lastEconomyEntry(s)); err != nil {
					return err
				}
				if err := s.hist.AppendReputation(cmd.Context(), lastReputationEntry(s)); err != nil {
					return err
				}
				fmt.Printf("%s  gross $%.0f  costs $%.0f  net $%+.0f  rep %+.1f\n",
					report.Date.Format("2006-01-02"), report.Gross,
					report.Costs, report.Net, report.ReputationDelta)
				if report.LeveledUp {
					fmt.Printf("*** Level up! Now level %d\n", s.state.Level)
				}
				s.state.Date = s.state.Date.AddDate(0, 0, 1)
			}

			if err := s.save(cmd.Context()); err != nil {
				return fmt.Errorf("failed to save game: %w", err)
			}
			fmt.Printf("Saved. Funds: $%.0f, reputation %.1f\n", s.state.Money, s.state.Reputation)
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 1, "Number of days to simulate")
	return cmd
}
