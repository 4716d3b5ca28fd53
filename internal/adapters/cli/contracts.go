package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/airline-tycoon-go/internal/domain/corporate"
	"github.com/andrescamacho/airline-tycoon-go/internal/domain/world"
)

// NewContractsCommand creates the corporate contracts command
func NewContractsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contracts",
		Short: "Manage corporate guaranteed-revenue contracts",
	}

	cmd.AddCommand(newContractsOffersCommand())
	cmd.AddCommand(newContractsAcceptCommand())
	cmd.AddCommand(newContractsListCommand())
	return cmd
}

// playerSnapshot assembles the corporate desk's eligibility view
func playerSnapshot(st *world.State) corporate.PlayerSnapshot {
	active := 0
	for _, r := range st.Routes.All() {
		if r.IsActive() {
			active++
		}
	}
	return corporate.PlayerSnapshot{
		Level:        st.Level,
		Reputation:   st.Reputation,
		ActiveRoutes: active,
		FleetSize:    st.Fleet.Count(),
		Hubs:         len(st.Hubs),
		Funds:        st.Money,
	}
}

func newContractsOffersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "offers",
		Short: "List corporate offers, generating fresh ones when due",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.close()

			st := s.state
			reference := st.AverageDailyGross()
			if reference == 0 {
				reference = 10_000
			}
			st.Corporate.GenerateOffers(playerSnapshot(st), reference, st.Date, st.Rand)
			if err := s.save(cmd.Context()); err != nil {
				return err
			}

			offers := st.Corporate.Offers()
			if len(offers) == 0 {
				fmt.Println("No corporate offers available.")
				return nil
			}
			for _, o := range offers {
				fmt.Printf("%s  %-13s %-26s $%.0f/day  %d days  fee $%.0f  expires %s\n",
					o.ID, o.Tier, o.Company, o.DailyRevenue, o.DurationDays,
					o.UpfrontFee, o.ExpiresAt.Format("2006-01-02"))
			}
			return nil
		},
	}
}

func newContractsAcceptCommand() *cobra.Command {
	var offerID, routeID string

	cmd := &cobra.Command{
		Use:   "accept",
		Short: "Accept a corporate offer against one of your routes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if offerID == "" || routeID == "" {
				return fmt.Errorf("--offer and --route are required")
			}
			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.close()

			st := s.state
			r, ok := st.Routes.Get(routeID)
			if !ok {
				return fmt.Errorf("unknown route %q", routeID)
			}

			offer, ok := st.Corporate.FindOffer(offerID)
			if !ok {
				return fmt.Errorf("unknown offer %q", offerID)
			}
			fee := offer.UpfrontFee

			c, err := st.Corporate.Accept(offerID, routeID, r.Seats.Total(),
				playerSnapshot(st), st.Date)
			if err != nil {
				return err
			}
			st.Money -= fee
			fmt.Printf("Contract with %s: $%.0f/day until %s, %d seats reserved, fee $%.0f\n",
				c.Company, c.DailyRevenue, c.EndDate.Format("2006-01-02"),
				c.SeatsReserved, fee)
			return s.save(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&offerID, "offer", "", "Offer id to accept")
	cmd.Flags().StringVar(&routeID, "route", "", "Route id to bind the contract to")
	return cmd
}

func newContractsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List active corporate contracts",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.close()

			contracts := s.state.Corporate.ActiveContracts()
			if len(contracts) == 0 {
				fmt.Println("No active corporate contracts.")
				return nil
			}
			for _, c := range contracts {
				fmt.Printf("%s  %-13s %-26s $%.0f/day  route %s  until %s\n",
					c.ID, c.Tier, c.Company, c.DailyRevenue, c.RouteID,
					c.EndDate.Format("2006-01-02"))
			}
			return nil
		},
	}
}
