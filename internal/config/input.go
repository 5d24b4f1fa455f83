package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/zeirishi/takehome-calculator/internal/domain"
)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.validateProfile(&config.Profile); err != nil {
		return fmt.Errorf("profile validation failed: %w", err)
	}

	if config.RateTable != nil {
		if err := ip.validateRateTable(config.RateTable); err != nil {
			return fmt.Errorf("rate table validation failed: %w", err)
		}
	}

	return nil
}

// validateProfile validates the deduction profile
func (ip *InputParser) validateProfile(profile *domain.DeductionProfile) error {
	if !profile.FilingType.Valid() {
		return fmt.Errorf("filing type must be one of blue-65, blue-55, blue-10, white")
	}
	if profile.DependentCount < 0 {
		return fmt.Errorf("dependent count cannot be negative")
	}
	if profile.ExpenseRatePercent < 0 || profile.ExpenseRatePercent > 80 {
		return fmt.Errorf("expense rate percent must be between 0 and 80")
	}
	// Region and business category are deliberately unconstrained: unknown
	// regions fall back to the default insurance bucket, and categories
	// outside the taxable set simply owe no business tax.
	return nil
}

// validateRateTable validates a user-supplied rate table override
func (ip *InputParser) validateRateTable(table *domain.RateTable) error {
	if len(table.ProgressiveBrackets) == 0 {
		return fmt.Errorf("at least one progressive bracket is required")
	}

	for i, bracket := range table.ProgressiveBrackets {
		if bracket.Rate.IsNegative() {
			return fmt.Errorf("bracket %d: rate cannot be negative", i)
		}
		if bracket.Max.LessThanOrEqual(bracket.Min) {
			return fmt.Errorf("bracket %d: max must exceed min", i)
		}
		if i > 0 && bracket.Min.LessThanOrEqual(table.ProgressiveBrackets[i-1].Min) {
			return fmt.Errorf("bracket %d: thresholds must be strictly ascending", i)
		}
	}

	if _, ok := table.RegionalInsuranceRates[domain.DefaultRegion]; !ok {
		return fmt.Errorf("regional insurance rates must include the %q fallback bucket", domain.DefaultRegion)
	}
	for region, rate := range table.RegionalInsuranceRates {
		if rate.IncomeRate.IsNegative() || rate.FlatRate.IsNegative() {
			return fmt.Errorf("region %s: insurance rates cannot be negative", region)
		}
	}

	if !table.InsuranceCap.IsPositive() {
		return fmt.Errorf("insurance cap must be positive")
	}
	if table.ReconstructionSurcharge.LessThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("reconstruction surcharge must be a multiplier of at least 1")
	}
	if table.ResidentTaxRate.IsNegative() || table.ResidentFlatLevy.IsNegative() {
		return fmt.Errorf("resident tax figures cannot be negative")
	}
	if table.BusinessTaxRate.IsNegative() || table.BusinessTaxThreshold.IsNegative() {
		return fmt.Errorf("business tax figures cannot be negative")
	}
	if table.ConsumptionTaxRate.IsNegative() {
		return fmt.Errorf("consumption tax rate cannot be negative")
	}

	return nil
}

// CreateExampleConfiguration creates an example configuration
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Profile: domain.DeductionProfile{
			FilingType:         domain.FilingBlue65,
			HasSpouseDeduction: false,
			DependentCount:     0,
			ExpenseRatePercent: 30,
			Region:             "tokyo",
			BusinessCategory:   "design",
		},
		Storage: domain.StorageSettings{
			DataDir: ".",
		},
	}
}

// WriteExampleConfiguration writes the example configuration as YAML
func (ip *InputParser) WriteExampleConfiguration(filename string) error {
	data, err := yaml.Marshal(ip.CreateExampleConfiguration())
	if err != nil {
		return fmt.Errorf("failed to marshal example configuration: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}
