package config

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/rversteeg/importeer/internal/domain"
)

// Config is the application configuration file.
type Config struct {
	ImportCosts domain.ImportCosts      `yaml:"import_costs"`
	Thresholds  domain.MarginThresholds `yaml:"margin_thresholds"`
	Server      ServerConfig            `yaml:"server"`
	LogLevel    string                  `yaml:"log_level"`
}

// ServerConfig holds the HTTP API settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// InputParser handles parsing of vehicle and configuration input files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadVehicleFromFile loads a vehicle description from a YAML file
func (ip *InputParser) LoadVehicleFromFile(filename string) (*domain.Vehicle, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var vehicle domain.Vehicle
	if err := yaml.Unmarshal(data, &vehicle); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateVehicle(&vehicle); err != nil {
		return nil, fmt.Errorf("vehicle validation failed: %w", err)
	}

	return &vehicle, nil
}

// ValidateVehicle validates the loaded vehicle description
func (ip *InputParser) ValidateVehicle(vehicle *domain.Vehicle) error {
	if vehicle.Make == "" {
		return fmt.Errorf("make is required")
	}
	if vehicle.Model == "" {
		return fmt.Errorf("model is required")
	}
	if vehicle.FirstRegistration.IsZero() {
		return fmt.Errorf("first registration date is required")
	}
	if vehicle.FirstRegistration.After(time.Now()) {
		return fmt.Errorf("first registration date cannot be in the future")
	}
	if !vehicle.FuelType.Valid() {
		return fmt.Errorf("unknown fuel type %q", vehicle.FuelType)
	}
	if vehicle.CO2GKM < 0 {
		return fmt.Errorf("CO2 emission cannot be negative")
	}
	if vehicle.MileageKM < 0 {
		return fmt.Errorf("mileage cannot be negative")
	}
	if vehicle.PriceEUR.LessThan(decimal.Zero) {
		return fmt.Errorf("price cannot be negative")
	}
	return nil
}

// LoadConfigFromFile loads the application configuration from a YAML file
func (ip *InputParser) LoadConfigFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// ValidateConfig validates the loaded configuration
func (ip *InputParser) ValidateConfig(config *Config) error {
	for name, v := range map[string]decimal.Decimal{
		"transport":      config.ImportCosts.Transport,
		"rdw_inspection": config.ImportCosts.RDWInspection,
		"license_plates": config.ImportCosts.LicensePlates,
		"handling_fee":   config.ImportCosts.HandlingFee,
		"nap_check":      config.ImportCosts.NAPCheck,
	} {
		if v.LessThan(decimal.Zero) {
			return fmt.Errorf("import cost %s cannot be negative", name)
		}
	}
	if config.Thresholds.Go.LessThan(config.Thresholds.Consider) {
		return fmt.Errorf("go threshold cannot be below consider threshold")
	}
	if config.Server.Port < 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", config.Server.Port)
	}
	return nil
}
