package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sood122/yeild-pridiction/internal/calculator"
)

var cropsCmd = &cobra.Command{
	Use:       "crops <season>",
	Short:     "List the crops suggested for a season",
	Args:      cobra.ExactArgs(1),
	ValidArgs: calculator.NewSeasonTable().Seasons(),
	RunE: func(cmd *cobra.Command, args []string) error {
		season := args[0]
		seasons := calculator.NewSeasonTable()
		if !seasons.Has(season) {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: unknown season %q, known seasons: %v\n", season, seasons.Seasons())
		}
		printCrops(cmd, season, seasons.CropsFor(season))
		return nil
	},
}

func printCrops(cmd *cobra.Command, season string, crops []string) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Best Crops for %s Season:\n", season)
	for _, c := range crops {
		fmt.Fprintf(out, "- %s\n", c)
	}
}
