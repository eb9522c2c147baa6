package config

import (
	"fmt"

	"gopkg.in/validator.v2"
)

const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"

	ModePlain = "plain"
	ModeTUI   = "tui"

	FormatColorful = "colorful"
	FormatJSON     = "json"
)

type Config struct {
	Accounts   []AccountConfig `mapstructure:"accounts" validate:"min=1"`
	Store      StoreConfig     `mapstructure:"store"`
	Log        LogConfig       `mapstructure:"log"`
	UI         UIConfig        `mapstructure:"ui"`
	ConfigPath string          `mapstructure:"-"`
}

// AccountConfig is one seed record of the account directory.
type AccountConfig struct {
	ID  int64 `mapstructure:"id" validate:"min=1"`
	PIN int   `mapstructure:"pin" validate:"min=0"`
}

type StoreConfig struct {
	Driver string `mapstructure:"driver" validate:"nonzero"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"nonzero"`
	Format string `mapstructure:"format"`
}

type UIConfig struct {
	Mode string `mapstructure:"mode" validate:"nonzero"`
}

func DefaultAccounts() []AccountConfig {
	return []AccountConfig{
		{ID: 123456, PIN: 1234},
		{ID: 987654, PIN: 4321},
	}
}

func NewDefault() *Config {
	return &Config{
		Accounts: DefaultAccounts(),
		Store:    StoreConfig{Driver: DriverMemory},
		Log:      LogConfig{Level: "error", Format: FormatColorful},
		UI:       UIConfig{Mode: ModePlain},
	}
}

// Validate checks field constraints and that no two seed accounts share an ID.
func (c *Config) Validate() error {
	if err := validator.Validate(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	seen := make(map[int64]bool, len(c.Accounts))
	for i, acc := range c.Accounts {
		if err := validator.Validate(acc); err != nil {
			return fmt.Errorf("invalid config: accounts[%d]: %w", i, err)
		}
		if seen[acc.ID] {
			return fmt.Errorf("invalid config: duplicate account id %d", acc.ID)
		}
		seen[acc.ID] = true
	}

	switch c.Store.Driver {
	case DriverMemory, DriverSQLite:
	default:
		return fmt.Errorf("invalid config: unknown store driver '%s' (must be memory or sqlite)", c.Store.Driver)
	}

	switch c.UI.Mode {
	case ModePlain, ModeTUI:
	default:
		return fmt.Errorf("invalid config: unknown ui mode '%s' (must be plain or tui)", c.UI.Mode)
	}

	switch c.Log.Format {
	case "", FormatColorful, FormatJSON:
	default:
		return fmt.Errorf("invalid config: unknown log format '%s' (must be colorful or json)", c.Log.Format)
	}

	return nil
}
