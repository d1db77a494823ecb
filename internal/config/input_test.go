package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rversteeg/importeer/internal/domain"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadVehicleFromFile(t *testing.T) {
	path := writeTempFile(t, "vehicle.yaml", `
make: Volkswagen
model: Golf
year: 2014
mileage_km: 185000
price_eur: 7950
fuel_type: petrol
transmission: manual
co2_gkm: 209
first_registration: 2014-04-01T00:00:00Z
`)

	vehicle, err := NewInputParser().LoadVehicleFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "Volkswagen", vehicle.Make)
	assert.Equal(t, domain.FuelPetrol, vehicle.FuelType)
	assert.Equal(t, 209, vehicle.CO2GKM)
	assert.True(t, vehicle.PriceEUR.Equal(decimal.NewFromInt(7950)))
}

func TestLoadVehicleFromFile_FileNotFound(t *testing.T) {
	vehicle, err := NewInputParser().LoadVehicleFromFile("nonexistent.yaml")
	assert.Error(t, err)
	assert.Nil(t, vehicle)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadVehicleFromFile_InvalidYAML(t *testing.T) {
	path := writeTempFile(t, "invalid.yaml", "make: [unclosed")

	vehicle, err := NewInputParser().LoadVehicleFromFile(path)
	assert.Error(t, err)
	assert.Nil(t, vehicle)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestValidateVehicle(t *testing.T) {
	valid := func() *domain.Vehicle {
		return &domain.Vehicle{
			Make:              "Volkswagen",
			Model:             "Golf",
			FuelType:          domain.FuelPetrol,
			CO2GKM:            209,
			FirstRegistration: time.Date(2014, 4, 1, 0, 0, 0, 0, time.UTC),
		}
	}

	tests := []struct {
		name    string
		mutate  func(*domain.Vehicle)
		wantErr string
	}{
		{"valid", func(v *domain.Vehicle) {}, ""},
		{"missing make", func(v *domain.Vehicle) { v.Make = "" }, "make is required"},
		{"missing model", func(v *domain.Vehicle) { v.Model = "" }, "model is required"},
		{"missing registration", func(v *domain.Vehicle) { v.FirstRegistration = time.Time{} }, "first registration date is required"},
		{"future registration", func(v *domain.Vehicle) {
			v.FirstRegistration = time.Now().AddDate(1, 0, 0)
		}, "cannot be in the future"},
		{"unknown fuel", func(v *domain.Vehicle) { v.FuelType = "steam" }, "unknown fuel type"},
		{"negative co2", func(v *domain.Vehicle) { v.CO2GKM = -1 }, "CO2 emission cannot be negative"},
		{"negative mileage", func(v *domain.Vehicle) { v.MileageKM = -5 }, "mileage cannot be negative"},
		{"negative price", func(v *domain.Vehicle) { v.PriceEUR = decimal.NewFromInt(-1) }, "price cannot be negative"},
	}

	parser := NewInputParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vehicle := valid()
			tt.mutate(vehicle)
			err := parser.ValidateVehicle(vehicle)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeTempFile(t, "config.yaml", `
import_costs:
  transport: 500
margin_thresholds:
  go: 3000
  consider: 1200
server:
  port: 9090
log_level: debug
`)

	cfg, err := NewInputParser().LoadConfigFromFile(path)
	require.NoError(t, err)

	// Overridden values take effect, the rest keep their defaults.
	assert.True(t, cfg.ImportCosts.Transport.Equal(decimal.NewFromInt(500)))
	assert.True(t, cfg.ImportCosts.RDWInspection.Equal(decimal.NewFromInt(85)))
	assert.True(t, cfg.Thresholds.Go.Equal(decimal.NewFromInt(3000)))
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfigFromFile_Invalid(t *testing.T) {
	path := writeTempFile(t, "config.yaml", `
margin_thresholds:
  go: 500
  consider: 1000
`)

	cfg, err := NewInputParser().LoadConfigFromFile(path)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "go threshold cannot be below consider threshold")
}

func TestDefaultConfigValid(t *testing.T) {
	assert.NoError(t, NewInputParser().ValidateConfig(DefaultConfig()))
}
