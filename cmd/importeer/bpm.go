package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rversteeg/importeer/internal/bpm"
	"github.com/rversteeg/importeer/internal/normalize"
	"github.com/rversteeg/importeer/internal/output"
)

var bpmCmd = &cobra.Command{
	Use:   "bpm",
	Short: "Calculate the rest-BPM for a single vehicle",
	Long: `Calculates the BPM owed when registering an imported vehicle, applying
the keuzerecht: every historical rate table from the registration year
onwards is evaluated and the cheapest one wins.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		co2, _ := cmd.Flags().GetInt("co2")
		fuelRaw, _ := cmd.Flags().GetString("fuel")
		registrationRaw, _ := cmd.Flags().GetString("first-registration")
		valuationRaw, _ := cmd.Flags().GetString("valuation-date")
		format, _ := cmd.Flags().GetString("format")

		fuel, ok := normalize.FuelType(fuelRaw)
		if !ok {
			return fmt.Errorf("unknown fuel type %q", fuelRaw)
		}
		registration, err := normalize.Date(registrationRaw)
		if err != nil {
			return fmt.Errorf("cannot parse first registration date %q", registrationRaw)
		}

		var valuationDate time.Time
		if valuationRaw != "" {
			valuationDate, err = normalize.Date(valuationRaw)
			if err != nil {
				return fmt.Errorf("cannot parse valuation date %q", valuationRaw)
			}
		}

		result, err := bpm.NewCalculator().Calculate(bpm.TaxInput{
			CO2GKM:            co2,
			FuelType:          fuel,
			FirstRegistration: registration,
			ValuationDate:     valuationDate,
		})
		if err != nil {
			return err
		}

		switch format {
		case "json":
			data, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
		case "console":
			fmt.Fprint(cmd.OutOrStdout(), output.FormatTaxResult(result))
		default:
			return fmt.Errorf("unsupported format: %s", format)
		}
		return nil
	},
}

func init() {
	bpmCmd.Flags().Int("co2", 0, "CO2 emission in g/km (WLTP)")
	bpmCmd.Flags().String("fuel", "", "fuel type (benzine, diesel, elektrisch, hybride, lpg)")
	bpmCmd.Flags().String("first-registration", "", "date of first registration (e.g. 2014-04-01)")
	bpmCmd.Flags().String("valuation-date", "", "pin the age calculation to this date instead of today")
	bpmCmd.Flags().String("format", "console", "output format (console, json)")
	_ = bpmCmd.MarkFlagRequired("fuel")
	_ = bpmCmd.MarkFlagRequired("first-registration")
}
