package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/rerender/internal/config"
	"github.com/vango-dev/rerender/internal/errors"
	"github.com/vango-dev/rerender/internal/tui"
	"github.com/vango-dev/rerender/pkg/app"
)

func tuiCmd(opts *rootOptions) *cobra.Command {
	var (
		location string
		logFile  string
	)

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Run the lab in the terminal",
		Long: `Run the lab in the terminal.

Tab moves focus between clickable elements, enter clicks, b and f walk
the location history and 1-7 jump straight to a location.`,
		Example: `  rerender tui
  rerender tui --location /context-driven`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}

			// The terminal belongs to the program; logs go to a file or nowhere.
			var w io.Writer = io.Discard
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return errors.New("R061").WithKey("--log-file").Wrap(err)
				}
				defer f.Close()
				w = f
			}
			logger := cfg.Log.Logger(w)
			slog.SetDefault(logger)

			if err := tui.Run(cmd.Context(), location, app.WithLogger(logger)); err != nil {
				return errors.New("R061").Wrap(err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&location, "location", "l", "/", "initial location")
	cmd.Flags().StringVar(&logFile, "log-file", "", "append logs to this file")

	return cmd
}
