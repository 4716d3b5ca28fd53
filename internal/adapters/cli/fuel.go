package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/airline-tycoon-go/internal/application/simulation"
)

// NewFuelCommand creates the fuel command with subcommands
func NewFuelCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fuel",
		Short: "Inspect the fuel market and manage hedging contracts",
	}

	cmd.AddCommand(newFuelMarketCommand())
	cmd.AddCommand(newFuelOffersCommand())
	cmd.AddCommand(newFuelBuyCommand())
	cmd.AddCommand(newFuelContractsCommand())
	return cmd
}

func newFuelMarketCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "market",
		Short: "Show the fuel market's current state",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.close()

			m := s.state.FuelMarket
			fmt.Printf("Base price:  $%.3f/L\n", m.BasePrice())
			fmt.Printf("Spot price:  $%.3f/L\n", m.SpotPrice())
			fmt.Printf("Regime:      %s (%d days left)\n", m.Regime(), m.DaysLeftInRegime())
			if m.InCrisis() {
				fmt.Printf("Crisis:      yes, day %d\n", m.CrisisDays())
			}
			eff := s.state.FuelLedger.EfficiencySummary(m.SpotPrice(), s.state.Date)
			fmt.Printf("Effective:   $%.3f/L (%d contracts, %.0f L remaining, projected savings $%.0f)\n",
				eff.EffectivePrice, eff.ActiveContracts, eff.RemainingVolume, eff.ProjectedSavings)
			return nil
		},
	}
}

func newFuelOffersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "offers",
		Short: "List current provider offers",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.close()

			st := s.state
			orch := simulation.New(nil)
			offers := st.FuelProviders.Offers()
			if len(offers) == 0 {
				offers = st.FuelProviders.GenerateOffers(st.Level, st.FuelMarket,
					orch.EstimatedDailyConsumption(st), st.Date, st.Rand)
				if err := s.save(cmd.Context()); err != nil {
					return err
				}
			}
			if len(offers) == 0 {
				fmt.Println("No offers available at your level.")
				return nil
			}
			for _, o := range offers {
				fmt.Printf("%s  %-18s %-10s $%.3f/L  %8.0f L  %3d days  expires %s\n",
					o.ID, o.ProviderName, o.Profile, o.Price, o.Volume,
					o.DurationDays, o.ExpiresAt.Format("2006-01-02"))
			}
			return nil
		},
	}
}

func newFuelBuyCommand() *cobra.Command {
	var offerID string
	var volume float64
	var days int

	cmd := &cobra.Command{
		Use:   "buy",
		Short: "Buy fuel: a provider offer by id, or a spot-priced contract",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.close()

			st := s.state
			orch := simulation.New(nil)
			daily := orch.EstimatedDailyConsumption(st)

			if offerID != "" {
				c, err := st.FuelProviders.PurchaseFromOffer(offerID, st.Level,
					st.FuelLedger, daily, st.Money, st.Date)
				if err != nil {
					return err
				}
				st.Money -= c.Volume * c.Price
				fmt.Printf("Contract %s: %.0f L at $%.3f/L until %s\n",
					c.ID, c.Volume, c.Price, c.EndDate.Format("2006-01-02"))
				return s.save(cmd.Context())
			}

			if volume <= 0 {
				return fmt.Errorf("either --offer or --volume is required")
			}
			c, err := st.FuelLedger.Purchase(volume, days, st.Level,
				st.FuelMarket.SpotPrice(), daily, st.Money, st.Date)
			if err != nil {
				return err
			}
			st.Money -= c.Volume * c.Price
			fmt.Printf("Contract %s: %.0f L at spot $%.3f/L until %s\n",
				c.ID, c.Volume, c.Price, c.EndDate.Format("2006-01-02"))
			return s.save(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&offerID, "offer", "", "Provider offer id to accept")
	cmd.Flags().Float64Var(&volume, "volume", 0, "Liters for a spot-priced contract")
	cmd.Flags().IntVar(&days, "days", 30, "Contract duration in days")
	return cmd
}

func newFuelContractsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "contracts",
		Short: "List active fuel contracts",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.close()

			contracts := s.state.FuelLedger.ActiveContracts(s.state.Date)
			if len(contracts) == 0 {
				fmt.Println("No active fuel contracts.")
				return nil
			}
			for _, c := range contracts {
				fmt.Printf("%s  $%.3f/L  %8.0f / %8.0f L used  until %s\n",
					c.ID, c.Price, c.Used, c.Volume, c.EndDate.Format("2006-01-02"))
			}
			return nil
		},
	}
}
