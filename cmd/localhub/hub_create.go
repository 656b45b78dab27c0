package main

import (
	"github.com/spf13/cobra"

	"github.com/lcgerke/localhub/internal/constants"
)

func newCreateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new bare repository in the hub",
		Long: `Creates <name>.git under the hub root as an empty bare repository.
The ".git" suffix is added unless the name already carries it.`,
		Args:        cobra.ExactArgs(1),
		Annotations: needsGit,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			repoPath, err := a.registry.Create(name)
			if err != nil {
				return err
			}

			if a.out.IsJSON() {
				return a.out.JSON(map[string]interface{}{
					"status":     "success",
					"repository": name,
					"path":       repoPath,
				})
			}
			a.out.Successf("Repository '%s' created at: %s", name, repoPath)
			a.out.Infof("Use '%s add-remote %s' to add it to the current project", constants.AppName, name)
			return nil
		},
	}
}
