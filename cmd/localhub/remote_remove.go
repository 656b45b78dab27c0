package main

import (
	"github.com/spf13/cobra"
)

func newRemoveRemoteCmd(a *app) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:         "remove-remote <remote-name>",
		Short:       "Remove a remote from the current project",
		Args:        cobra.ExactArgs(1),
		Annotations: needsGit,
		RunE: func(cmd *cobra.Command, args []string) error {
			remoteName := args[0]

			if err := a.remotes.RemoveRemote(path, remoteName); err != nil {
				return err
			}

			if a.out.IsJSON() {
				return a.out.JSON(map[string]interface{}{
					"status": "success",
					"remote": remoteName,
				})
			}
			a.out.Successf("Remote '%s' removed", remoteName)
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "Working repository (default: current directory)")
	return cmd
}
