package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/rerender/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┬─┐┌─┐┬─┐┌─┐┌┐┌┌┬┐┌─┐┬─┐
  ├┬┘├┤ ├┬┘├┤ │││ ││├┤ ├┬┘
  ┴└─└─┘┴└─└─┘┘└┘─┴┘└─┘┴└─
`

// rootOptions are the persistent flags.
type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "rerender",
		Short: "A lab for comparing where UI state lives",
		Long: `rerender shows how the owner of a piece of state decides which
components re-compute when it changes.

Three pages hold the same counters in three places:

  • self-driven     each box owns its counter
  • parent-driven   the page owns every counter
  • context-driven  a shared store owns every counter

Every box prints its own render count, so each click shows exactly
which components ran.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (default ./rerender.json)")

	rootCmd.AddCommand(
		serveCmd(opts),
		tuiCmd(opts),
		routesCmd(),
		versionCmd(),
	)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.Fprint(os.Stderr, err)
		os.Exit(1)
	}
}

// printBanner prints the ASCII art banner.
func printBanner(w io.Writer) {
	fmt.Fprint(w, banner)
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}
