package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSearchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search <pattern>",
		Short: "Search repositories by name",
		Long:  "Lists repositories whose name contains <pattern>, ignoring case.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := args[0]

			matches, err := a.registry.Search(pattern)
			if err != nil {
				return err
			}

			if a.out.IsJSON() {
				return a.out.JSON(map[string]interface{}{
					"pattern":      pattern,
					"repositories": matches,
				})
			}

			a.out.Header(fmt.Sprintf("Search Results for '%s'", pattern))
			if len(matches) == 0 {
				a.out.Warning("No repositories found")
				return nil
			}
			for _, name := range matches {
				a.out.Item(name)
			}
			a.out.Line(fmt.Sprintf("\nFound: %d repositories", len(matches)))
			return nil
		},
	}
}
