package main

import (
	"github.com/spf13/cobra"
)

func newAddRemoteCmd(a *app) *cobra.Command {
	var remoteName, path string

	cmd := &cobra.Command{
		Use:   "add-remote <name>",
		Short: "Add a hub repository as a remote of the current project",
		Long: `Adds a new remote to the working repository pointing at the hub
repository <name>. The remote name defaults to the configured remote_name.`,
		Args:        cobra.ExactArgs(1),
		Annotations: needsGit,
		RunE: func(cmd *cobra.Command, args []string) error {
			remoteName = resolveRemoteName(cmd, remoteName, a.cfg.RemoteName)

			hubRepoPath, err := a.registry.Path(args[0])
			if err != nil {
				return err
			}

			if err := a.remotes.AddRemote(path, remoteName, hubRepoPath); err != nil {
				return err
			}

			if a.out.IsJSON() {
				return a.out.JSON(map[string]interface{}{
					"status": "success",
					"remote": remoteName,
					"url":    hubRepoPath,
				})
			}
			a.out.Successf("Added remote '%s' -> %s", remoteName, hubRepoPath)
			a.out.Infof("Push with: git push %s <branch>", remoteName)
			return nil
		},
	}

	cmd.Flags().StringVar(&remoteName, "remote-name", "local-hub", "Name of the remote to add")
	cmd.Flags().StringVar(&path, "path", "", "Working repository (default: current directory)")
	return cmd
}
