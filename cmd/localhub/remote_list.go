package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lcgerke/localhub/internal/remote"
)

func newListRemotesCmd(a *app) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:         "list-remotes",
		Short:       "List remotes of the current project",
		Args:        cobra.NoArgs,
		Annotations: needsGit,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := a.remotes.ListRemotes(path)
			if err != nil {
				return err
			}

			if a.out.IsJSON() {
				if entries == nil {
					entries = []remote.Entry{}
				}
				return a.out.JSON(map[string]interface{}{
					"remotes": entries,
				})
			}

			if len(entries) == 0 {
				a.out.Warning("No remotes configured")
				return nil
			}
			a.out.Header("Git Remotes")
			for _, entry := range entries {
				a.out.Item(fmt.Sprintf("%s -> %s", entry.Name, entry.URL))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "Working repository (default: current directory)")
	return cmd
}
