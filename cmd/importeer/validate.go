package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rversteeg/importeer/internal/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate [vehicle-file]",
	Short: "Validate a vehicle input file without running an analysis",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		vehicle, err := config.NewInputParser().LoadVehicleFromFile(args[0])
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is valid: %s %s (%d), %d g/km %s\n",
			args[0], vehicle.Make, vehicle.Model, vehicle.Year, vehicle.CO2GKM, vehicle.FuelType)
		return nil
	},
}
