package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/hance08/atm/internal/app"
	"github.com/hance08/atm/internal/config"
	"github.com/hance08/atm/internal/constants"
	"github.com/hance08/atm/internal/errhandler"
	"github.com/hance08/atm/internal/session"
	"github.com/hance08/atm/internal/ui"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootOptions is shared by the root command and its subcommands.
type rootOptions struct {
	cfgFile    string
	tui        bool
	migrations fs.FS
	cfg        *config.Config
}

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	rootCmd := NewRootCmd(migrations)
	if err := rootCmd.Execute(); err != nil {
		errMsg := err.Error()
		displayMsg := capitalize(errMsg)

		pterm.Error.Println(displayMsg)
		os.Exit(1)
	}
}

func NewRootCmd(migrations fs.FS) *cobra.Command {
	opts := &rootOptions{migrations: migrations}

	rootCmd := &cobra.Command{
		Use:   "atm",
		Short: "atm is a CLI/TUI based ATM simulation",
		Long: `atm simulates an automated teller machine over an in-memory account directory.
Log in with a user ID and PIN, then withdraw, deposit, transfer or view history.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := initConfig(opts.cfgFile)
			if err != nil {
				return err
			}
			if opts.tui {
				cfg.UI.Mode = config.ModeTUI
			}
			opts.cfg = cfg
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &sessionRunner{opts: opts}
			return runner.Run(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.cfgFile, "config", "c", "", "set the config file path")
	rootCmd.Flags().BoolVar(&opts.tui, "tui", false, "use interactive prompts instead of the plain text protocol")

	rootCmd.AddCommand(NewInfoCmd(opts))

	return rootCmd
}

type sessionRunner struct {
	opts *rootOptions
}

func (r *sessionRunner) Run(cmd *cobra.Command) error {
	cfg := r.opts.cfg

	application, cleanup, err := app.NewApp(cfg, r.opts.migrations, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer cleanup()

	var term session.Terminal
	switch cfg.UI.Mode {
	case config.ModeTUI:
		ui.PrintL1Title(cmd.OutOrStdout(), constants.MenuTitle)
		term = ui.NewInteractive(cmd.OutOrStdout())
	default:
		term = ui.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout())
	}

	s := session.New(application.Service, term)
	err = s.Run(cmd.Context())
	application.Logger.Debug("session ended", application.Logger.Args("account_id", s.AccountID(), "state", s.State().String()))
	if err != nil {
		if errhandler.HandleError(cmd.ErrOrStderr(), err) {
			return nil
		}
		return fmt.Errorf("session ended: %w", err)
	}

	return nil
}

// initConfig layers built-in defaults, the config file and ATM_* environment
// variables. A missing default config file is not an error and is never created.
func initConfig(cfgFile string) (*config.Config, error) {
	v := viper.New()

	defaults := config.NewDefault()
	v.SetDefault("store.driver", defaults.Store.Driver)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)
	v.SetDefault("ui.mode", defaults.UI.Mode)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else if path, ok := defaultConfigPath(); ok {
		v.SetConfigFile(path)
	}

	v.SetEnvPrefix("ATM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv() // allow using environment variables to override

	if v.ConfigFileUsed() != "" {
		if err := v.ReadInConfig(); err != nil {
			if cfgFile != "" {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
			if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
				return nil, fmt.Errorf("config file error: %w", err)
			}
		}
	}

	cfg := config.NewDefault()
	if v.IsSet("accounts") {
		// a configured directory replaces the default seeds, it is not merged into them
		cfg.Accounts = nil
		if err := requireAccountFields(v.Get("accounts")); err != nil {
			return nil, err
		}
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %v", err)
	}

	cfg.ConfigPath = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// requireAccountFields rejects seed entries that leave out id or pin. Both
// would otherwise decode to 0.
func requireAccountFields(raw interface{}) error {
	entries, ok := raw.([]interface{})
	if !ok {
		return nil
	}

	for i, entry := range entries {
		fields, ok := entry.(map[string]interface{})
		if !ok {
			return fmt.Errorf("invalid config: accounts[%d] must be a mapping with id and pin", i)
		}
		for _, key := range []string{"id", "pin"} {
			if _, ok := fields[key]; !ok {
				return fmt.Errorf("invalid config: accounts[%d]: %s is required", i, key)
			}
		}
	}
	return nil
}

func defaultConfigPath() (string, bool) {
	appDir, err := getAppDataDir()
	if err != nil {
		return "", false
	}

	path := filepath.Join(appDir, "config.yaml")
	if _, err := os.Stat(path); err != nil {
		return "", false
	}
	return path, true
}

func getAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".atm"), nil
	}

	return filepath.Join(configDir, "atm"), nil
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
