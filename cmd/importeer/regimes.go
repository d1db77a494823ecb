package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rversteeg/importeer/internal/bpm"
	"github.com/rversteeg/importeer/internal/output"
)

var regimesCmd = &cobra.Command{
	Use:   "regimes",
	Short: "List the historical BPM rate tables",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()

		for _, regime := range bpm.NewCalculator().Catalog().All() {
			fmt.Fprintln(out, regime.Label)
			if !regime.Verified {
				fmt.Fprintln(out, "  (geïnterpoleerd, niet geverifieerd tegen de wettekst)")
			}
			for _, bracket := range regime.Brackets {
				upper := "∞"
				if bracket.MaxCO2 != nil {
					upper = fmt.Sprintf("%d", *bracket.MaxCO2)
				}
				fmt.Fprintf(out, "  %4d - %4s g/km: %s per gram boven %d, basis %s\n",
					bracket.MinCO2, upper,
					output.FormatCurrency(bracket.RatePerGram),
					bracket.Threshold,
					output.FormatCurrency(bracket.BaseAmount))
			}
			fmt.Fprintf(out, "  Dieseltoeslag: %s per gram boven %d g/km\n",
				output.FormatCurrency(regime.DieselRule.RatePerGram), regime.DieselRule.CO2Threshold)
			if regime.EVExempt {
				fmt.Fprintln(out, "  Elektrisch: vrijgesteld")
			}
			fmt.Fprintln(out, strings.Repeat("-", 60))
		}
	},
}
