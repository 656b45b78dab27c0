package main

import (
	"github.com/spf13/cobra"

	"github.com/lcgerke/localhub/internal/constants"
)

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Prints the configuration after applying defaults, the config file,
` + constants.EnvironmentPrefix + `_* environment variables and flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.out.IsJSON() {
				return a.out.JSON(map[string]interface{}{
					"config":      a.cfg,
					"config_file": a.cfg.ConfigFileUsed,
				})
			}

			rendered, err := a.cfg.YAML()
			if err != nil {
				return err
			}
			if a.cfg.ConfigFileUsed != "" {
				a.out.Infof("Config file: %s", a.cfg.ConfigFileUsed)
			} else {
				a.out.Info("Config file: none (using defaults)")
			}
			a.out.Line(rendered)
			return nil
		},
	}
}
