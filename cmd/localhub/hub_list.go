package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lcgerke/localhub/internal/constants"
	"github.com/lcgerke/localhub/internal/hub"
	"github.com/lcgerke/localhub/internal/ui"
)

var detailColumns = []ui.Column{
	{Title: "Name", Width: 30},
	{Title: "Size", Width: 12, AlignRight: true},
	{Title: "Commits", Width: 10, AlignRight: true},
	{Title: "Modified", Width: 20, AlignRight: true},
}

func newListCmd(a *app) *cobra.Command {
	var detailed, noCommits bool

	cmd := &cobra.Command{
		Use:         "list",
		Short:       "List all repositories in the hub",
		Args:        cobra.NoArgs,
		Annotations: needsGit,
		RunE: func(cmd *cobra.Command, args []string) error {
			if detailed {
				repos, err := a.registry.ListDetailed(hub.DetailOptions{Commits: !noCommits})
				if err != nil {
					return err
				}
				return printDetailedList(a.out, repos)
			}

			names, err := a.registry.List()
			if err != nil {
				return err
			}
			return printNameList(a.out, "Repositories in Hub", names, "Total")
		},
	}

	cmd.Flags().BoolVarP(&detailed, "detailed", "d", false, "Show size, commit count and modification time")
	cmd.Flags().BoolVar(&noCommits, "no-commits", false, "Skip commit counting in the detailed listing")
	return cmd
}

func printNameList(out *ui.Output, title string, names []string, totalLabel string) error {
	if out.IsJSON() {
		return out.JSON(map[string]interface{}{
			"repositories": names,
		})
	}

	if len(names) == 0 {
		out.Warning("No repositories in hub")
		out.Infof("Use '%s create <name>' to create a new repository", constants.AppName)
		return nil
	}

	out.Header(title)
	for _, name := range names {
		out.Item(name)
	}
	out.Line(fmt.Sprintf("\n%s: %d repositories", totalLabel, len(names)))
	return nil
}

func printDetailedList(out *ui.Output, repos []hub.Repository) error {
	if out.IsJSON() {
		return out.JSON(map[string]interface{}{
			"repositories": repos,
		})
	}

	if len(repos) == 0 {
		out.Warning("No repositories in hub")
		out.Infof("Use '%s create <name>' to create a new repository", constants.AppName)
		return nil
	}

	out.Header("Repositories in Hub")
	rows := make([][]string, 0, len(repos))
	for _, repo := range repos {
		rows = append(rows, []string{
			repo.Name,
			ui.FormatSize(repo.Size),
			ui.FormatCommits(repo.Commits),
			ui.FormatTime(repo.Modified),
		})
	}
	out.Table(detailColumns, rows)
	out.Line(fmt.Sprintf("\nTotal: %d repositories", len(repos)))
	return nil
}
