package main

import (
	"github.com/spf13/cobra"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the hub directory",
		Long:  "Creates the hub root directory if it does not exist yet. Running it again is harmless.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.registry.Init(); err != nil {
				return err
			}

			if a.out.IsJSON() {
				return a.out.JSON(map[string]interface{}{
					"status":   "success",
					"hub_path": a.registry.Root(),
				})
			}
			a.out.Successf("Local Git Hub initialized at: %s", a.registry.Root())
			return nil
		},
	}
}
