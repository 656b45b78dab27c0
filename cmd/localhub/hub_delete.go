package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lcgerke/localhub/internal/ui"
)

func newDeleteCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a repository from the hub",
		Long: `Deletes a bare repository from the hub after confirmation.
Directories that do not look like a bare repository are never removed.`,
		Args:        cobra.ExactArgs(1),
		Annotations: needsGit,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			if err := a.registry.Verify(name); err != nil {
				return err
			}

			repo, err := a.registry.Info(name)
			if err != nil {
				return err
			}

			if !force {
				a.out.Warningf("You are about to delete repository '%s'", name)
				a.out.KeyValue("Size", ui.FormatSize(repo.Size))
				a.out.KeyValue("Commits", ui.FormatCommits(repo.Commits))

				promptOut := cmd.OutOrStdout()
				if a.out.IsJSON() {
					promptOut = cmd.ErrOrStderr()
				}
				confirmed, err := ui.NewPrompter(cmd.InOrStdin(), promptOut).
					Confirm("Are you sure you want to delete this repository?")
				if err != nil {
					return fmt.Errorf("failed to read confirmation: %w", err)
				}
				if !confirmed {
					a.out.Info("Deletion cancelled")
					return nil
				}
			}

			if err := a.registry.Delete(name); err != nil {
				return err
			}

			if a.out.IsJSON() {
				return a.out.JSON(map[string]interface{}{
					"status":     "success",
					"repository": name,
					"path":       repo.Path,
				})
			}
			a.out.Successf("Repository '%s' deleted", name)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the confirmation prompt")
	return cmd
}
