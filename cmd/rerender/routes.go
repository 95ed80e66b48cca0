package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vango-dev/rerender/pkg/demo"
	"github.com/vango-dev/rerender/pkg/router"
)

func routesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes [fragment...]",
		Short: "List locations and the views they select",
		Long: `Without arguments, list every location and its view.

With arguments, show where each fragment resolves. Unknown fragments
resolve to the overview at "/".`,
		Example: `  rerender routes
  rerender routes '#/self-driven' /nope`,
		Run: func(cmd *cobra.Command, args []string) {
			t := table.New().Headers("FRAGMENT", "LOCATION", "VIEW")

			if len(args) == 0 {
				for _, loc := range router.Locations() {
					t.Row(string(loc), string(loc), viewName(loc))
				}
			} else {
				for _, raw := range args {
					loc := router.Normalize(raw)
					t.Row(fmt.Sprintf("%q", raw), string(loc), viewName(loc))
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
		},
	}
}

func viewName(loc router.Location) string {
	name, _ := demo.ViewSetup(router.ViewFor(loc), nil)
	return name
}
