package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lcgerke/localhub/internal/hub"
	"github.com/lcgerke/localhub/internal/ui"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:         "info <name>",
		Short:       "Show repository details",
		Args:        cobra.ExactArgs(1),
		Annotations: needsGit,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := a.registry.Info(args[0])
			if err != nil {
				return err
			}

			if a.out.IsJSON() {
				return a.out.JSON(repo)
			}
			printRepository(a.out, repo)
			return nil
		},
	}
}

func printRepository(out *ui.Output, repo *hub.Repository) {
	out.Header(fmt.Sprintf("Repository: %s", repo.Name))
	out.KeyValue("Path", repo.Path)
	out.KeyValue("Size", ui.FormatSize(repo.Size))
	out.KeyValue("Commits", ui.FormatCommits(repo.Commits))
	out.KeyValue("Modified", ui.FormatTime(repo.Modified))
}
