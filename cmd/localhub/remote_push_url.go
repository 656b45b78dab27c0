package main

import (
	"github.com/spf13/cobra"
)

func newAddPushURLCmd(a *app) *cobra.Command {
	var remoteName, path string

	cmd := &cobra.Command{
		Use:   "add-push-url <name>",
		Short: "Also push an existing remote to a hub repository",
		Long: `Configures an existing remote so that every push goes to its own URL and
to the hub repository <name>. Fetching is unchanged.`,
		Args:        cobra.ExactArgs(1),
		Annotations: needsGit,
		RunE: func(cmd *cobra.Command, args []string) error {
			remoteName = resolveRemoteName(cmd, remoteName, a.cfg.PushRemote)

			hubRepoPath, err := a.registry.Path(args[0])
			if err != nil {
				return err
			}

			if err := a.remotes.AddPushURL(path, remoteName, hubRepoPath); err != nil {
				return err
			}

			pushURLs, err := a.remotes.PushURLs(path, remoteName)
			if err != nil {
				return err
			}

			if a.out.IsJSON() {
				return a.out.JSON(map[string]interface{}{
					"status":    "success",
					"remote":    remoteName,
					"url":       hubRepoPath,
					"push_urls": pushURLs,
				})
			}
			a.out.Successf("Added push URL to remote '%s' -> %s", remoteName, hubRepoPath)
			a.out.Info("Pushes now go to:")
			for _, url := range pushURLs {
				a.out.Item(url)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&remoteName, "remote-name", "origin", "Remote to extend with the hub push URL")
	cmd.Flags().StringVar(&path, "path", "", "Working repository (default: current directory)")
	return cmd
}
