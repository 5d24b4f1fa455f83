package domain

// Configuration is the top-level user configuration: the standing deduction
// profile, an optional rate-table override, and storage settings. A nil
// RateTable means the compiled-in defaults apply.
type Configuration struct {
	Profile   DeductionProfile `yaml:"profile" json:"profile"`
	RateTable *RateTable       `yaml:"rate_table,omitempty" json:"rate_table,omitempty"`
	Storage   StorageSettings  `yaml:"storage,omitempty" json:"storage,omitempty"`
}

// StorageSettings points the persistence layer at its data directory. The
// sqlite database and the JSON fallback files both live under DataDir.
type StorageSettings struct {
	DataDir string `yaml:"data_dir,omitempty" json:"data_dir,omitempty"`
}

// EffectiveRateTable returns the configured rate table, or the defaults when
// none is supplied.
func (c *Configuration) EffectiveRateTable() *RateTable {
	if c.RateTable != nil {
		return c.RateTable
	}
	return DefaultRateTable()
}
