package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rversteeg/importeer/internal/config"
	"github.com/rversteeg/importeer/internal/domain"
	"github.com/rversteeg/importeer/internal/engine"
	"github.com/rversteeg/importeer/internal/margin"
	"github.com/rversteeg/importeer/internal/market"
	"github.com/rversteeg/importeer/internal/output"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [vehicle-file]",
	Short: "Run a full import analysis for a listing",
	Long: `Analyzes a German listing end to end: rest-BPM with keuzerecht, market
value from comparables, the complete cost breakdown and a GO/CONSIDER/NO_GO
advice. Comparables are read from a YAML file when provided.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		vehicle, err := config.NewInputParser().LoadVehicleFromFile(args[0])
		if err != nil {
			return err
		}

		comparablesFile, _ := cmd.Flags().GetString("comparables")
		var comparables []domain.Comparable
		if comparablesFile != "" {
			comparables, err = loadComparables(comparablesFile)
			if err != nil {
				return err
			}
		}

		eng := engine.NewAnalysisEngine(
			engine.WithSearcher(market.StaticSearcher{Comparables: comparables}),
			engine.WithMarginCalculator(margin.NewCalculatorWithConfig(cfg.ImportCosts, cfg.Thresholds)),
			engine.WithLogger(logger),
		)

		report, err := eng.Analyze(cmd.Context(), *vehicle)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		rendered, err := output.FormatReport(report, format)
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), string(rendered))
		return nil
	},
}

func loadComparables(filename string) ([]domain.Comparable, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	var comparables []domain.Comparable
	if err := yaml.Unmarshal(data, &comparables); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return comparables, nil
}

func init() {
	analyzeCmd.Flags().String("comparables", "", "YAML file with comparable Dutch listings")
	analyzeCmd.Flags().String("format", "console", "output format (console, json, csv)")
}
