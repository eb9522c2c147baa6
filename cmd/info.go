package cmd

import (
	"io"

	"github.com/hance08/atm/internal/app"
	"github.com/hance08/atm/internal/ui/views"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	opts *rootOptions
}

func NewInfoCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display the configuration file in use, store driver, UI mode, log level and seeded accounts.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				opts: opts,
			}

			return runner.Run(cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

func (r *infoRunner) Run(out, logOut io.Writer) error {
	cfg := r.opts.cfg

	application, cleanup, err := app.NewApp(cfg, r.opts.migrations, logOut)
	if err != nil {
		return err
	}
	defer cleanup()

	count, err := application.Service.Account.CountAccounts()
	if err != nil {
		return err
	}
	application.Logger.Debug("rendering system info", application.Logger.Args("config", cfg.ConfigPath, "accounts", count))

	items := views.SystemInfoItem{
		ConfigPath:   cfg.ConfigPath,
		StoreDriver:  cfg.Store.Driver,
		UIMode:       cfg.UI.Mode,
		LogLevel:     cfg.Log.Level,
		AccountCount: count,
	}

	return views.RenderSystemInfo(out, items)
}
