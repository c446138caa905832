package cmd

import (
	"context"
	"fmt"

	"flat-monitor/core/metrics"

	"github.com/spf13/cobra"
)

var statsLinks bool

// statsCmd prints the statistics report of the current store.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print free and reserved counts with the cheapest free flats",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		rt, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer rt.close()

		text, err := rt.service(metrics.New()).StatsText(ctx, statsLinks)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	},
}

func init() {
	statsCmd.Flags().BoolVar(&statsLinks, "links", false, "Include links to listing pages")
	RootCmd.AddCommand(statsCmd)
}
