package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewStatusCommand creates the status command
func NewStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the airline's current standing",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.close()

			st := s.state
			fmt.Printf("Date:        %s\n", st.Date.Format("2006-01-02"))
			fmt.Printf("Funds:       $%.0f\n", st.Money)
			fmt.Printf("Reputation:  %.1f / 100\n", st.Reputation)
			fmt.Printf("Level:       %d\n", st.Level)
			fmt.Printf("Fleet:       %d aircraft\n", st.Fleet.Count())
			fmt.Printf("Routes:      %d\n", st.Routes.Count())
			fmt.Printf("Hubs:        %d\n", len(st.Hubs))

			m := st.FuelMarket
			crisis := ""
			if m.InCrisis() {
				crisis = fmt.Sprintf("  CRISIS (%d days)", m.CrisisDays())
			}
			fmt.Printf("Fuel spot:   $%.3f/L (%s)%s\n", m.SpotPrice(), m.Regime(), crisis)

			status := st.Competitors.CompetitionStatus(st.Routes.Count(), st.Fleet.Count())
			fmt.Printf("Market share: %.2f%%\n", status.PlayerShare*100)

			if verbose {
				fmt.Println("\nRecent days:")
				for _, e := range st.EconomyHistory {
					fmt.Printf("  %s  net $%.0f  funds $%.0f\n",
						e.Date.Format("2006-01-02"), e.Net, e.Funds)
				}
			}
			return nil
		},
	}
}
