package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/spaceminer-go/internal/application/economy/queries"
	"github.com/andrescamacho/spaceminer-go/internal/application/engine"
	"github.com/andrescamacho/spaceminer-go/internal/domain/refinery"
	"github.com/andrescamacho/spaceminer-go/internal/domain/shared"
	"github.com/andrescamacho/spaceminer-go/internal/domain/world"
)

// NewMarketCommand creates the market command with subcommands
func NewMarketCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "market",
		Short: "Station prices and upgrade costs",
	}
	cmd.AddCommand(newMarketQuotesCommand())
	cmd.AddCommand(newMarketStationsCommand())
	return cmd
}

func newMarketQuotesCommand() *cobra.Command {
	var station string

	cmd := &cobra.Command{
		Use:   "quotes",
		Short: "Refined prices at a station and first-level upgrade costs",
		Long: `Show what a station pays per refined unit, the refining job tiers
and what a fresh ship pays for each upgrade.

Examples:
  spaceminer market quotes
  spaceminer market quotes --station "Void Monastery"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			e := engine.New(engine.Options{
				WorldSize:        cfg.Simulation.WorldSize,
				InitialAsteroids: engine.NoAsteroids,
			})

			result, err := queries.NewGetMarketQuotesHandler(e).Handle(ctxOf(cmd), &queries.GetMarketQuotesQuery{Station: station})
			if err != nil {
				return err
			}
			displayQuotes(cmd.OutOrStdout(), result.(*queries.GetMarketQuotesResponse))
			return nil
		},
	}

	cmd.Flags().StringVar(&station, "station", "", "Station name (default: base prices)")
	return cmd
}

func newMarketStationsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stations",
		Short: "List stations and their specialisations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			heading(w, "STATIONS")
			tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "Name\tType\tPosition\tSpecialisation")
			for _, def := range world.DefaultStations(cfg.Simulation.WorldSize) {
				fmt.Fprintf(tw, "%s\t%s\t(%.0f, %.0f)\t%v\n", def.Name, def.Type, def.Pos.X, def.Pos.Y, def.Specialization)
			}
			return tw.Flush()
		},
	}
}

func displayQuotes(w io.Writer, q *queries.GetMarketQuotesResponse) {
	title := "BASE PRICES"
	if q.Station != "" {
		title = "PRICES AT " + q.Station
	}
	heading(w, title)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Mineral\tRaw Value\tRefined Price\t")
	for _, m := range q.Minerals {
		marker := ""
		if m.Specialized {
			marker = "specialised"
		}
		raw := shared.Mineral(m.Mineral).BaseValue()
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", m.Mineral, raw, formatCredits(m.UnitPrice), marker)
	}
	tw.Flush()

	heading(w, "REFINING")
	for _, tier := range []refinery.JobTier{refinery.JobTierStandard, refinery.JobTierPriority} {
		fmt.Fprintf(w, "  %-10s %6s credits  %s\n", tier, formatCredits(tier.Cost()), tier.Duration())
	}

	heading(w, "UPGRADES")
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Upgrade\tEffect\tLevel\tNext Cost")
	for _, u := range q.Upgrades {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", u.Name, u.Description, u.CurrentLevel, formatCredits(u.Cost))
	}
	tw.Flush()
}
