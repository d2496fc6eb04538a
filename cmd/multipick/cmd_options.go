package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"multipick/internal/multiselect"
)

var optionsCmd = &cobra.Command{
	Use:   "options [filter]",
	Short: "Print the catalog, optionally filtered the way the search field filters",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := newConfigService(nil).Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		filter := strings.Join(args, " ")
		out := cmd.OutOrStdout()
		for _, o := range multiselect.Filter(cfg.Options, filter) {
			fmt.Fprintf(out, "%s\t%s\n", o.Value, o.Label)
		}
		return nil
	},
}
