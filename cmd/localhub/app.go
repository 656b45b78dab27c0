package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lcgerke/localhub/internal/config"
	"github.com/lcgerke/localhub/internal/constants"
	"github.com/lcgerke/localhub/internal/errors"
	"github.com/lcgerke/localhub/internal/git"
	"github.com/lcgerke/localhub/internal/hub"
	"github.com/lcgerke/localhub/internal/logging"
	"github.com/lcgerke/localhub/internal/remote"
	"github.com/lcgerke/localhub/internal/ui"
)

// globalOptions holds the persistent flags shared by every command
type globalOptions struct {
	hubPath    string
	configFile string
	format     string
	noColor    bool
	logLevel   string
	logFormat  string
}

// app is the state assembled once per invocation before a command runs
type app struct {
	opts     globalOptions
	cfg      *config.Config
	logger   *zap.Logger
	out      *ui.Output
	registry *hub.Registry
	remotes  *remote.Configurator
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   constants.AppName,
		Short: "Manage local Git bare repositories as a local backup hub",
		Long: `localhub keeps a directory of bare repositories on this machine and wires
working repositories to it, either as a separate remote or as an extra push
destination of an existing remote.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.opts.hubPath, "hub-path", "", "Hub root directory (default: ~/"+constants.DefaultHubDirName+")")
	flags.StringVar(&a.opts.configFile, "config", "", "Path to a configuration file (YAML)")
	flags.StringVar(&a.opts.format, "format", "", "Output format (human|json)")
	flags.BoolVar(&a.opts.noColor, "no-color", false, "Disable colored output")
	flags.StringVar(&a.opts.logLevel, "log-level", "", "Log level (debug|info|warn|error)")
	flags.StringVar(&a.opts.logFormat, "log-format", "", "Log format (console|structured)")

	rootCmd.AddCommand(
		newInitCmd(a),
		newCreateCmd(a),
		newListCmd(a),
		newSearchCmd(a),
		newInfoCmd(a),
		newDeleteCmd(a),
		newAddRemoteCmd(a),
		newAddPushURLCmd(a),
		newListRemotesCmd(a),
		newRemoveRemoteCmd(a),
		newConfigCmd(a),
	)

	return rootCmd
}

// setup loads configuration and builds the output, logger and core components
func (a *app) setup(cmd *cobra.Command) error {
	a.out = ui.NewOutput(cmd.OutOrStdout())
	switch ui.OutputFormat(a.opts.format) {
	case "":
	case ui.FormatHuman, ui.FormatJSON:
		a.out.SetFormat(ui.OutputFormat(a.opts.format))
	default:
		return errors.InvalidConfiguration("format", fmt.Sprintf("unsupported output format %q", a.opts.format))
	}
	if a.opts.noColor {
		a.out.SetColorEnabled(false)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	cfg, err := config.Load(config.Options{
		ConfigFile:  a.opts.configFile,
		SearchPaths: config.DefaultSearchPaths(home),
		Flags:       cmd.Flags(),
		Home:        home,
	})
	if err != nil {
		return errors.Wrap(errors.ErrorTypeConfig, "failed to load configuration", err)
	}
	a.cfg = cfg

	logger, err := logging.NewFactory(cmd.ErrOrStderr()).Create(logging.Level(cfg.LogLevel), logging.Format(cfg.LogFormat))
	if err != nil {
		return errors.InvalidConfiguration("logging", err.Error())
	}
	a.logger = logger.With(zap.String("command", cmd.Name()))
	a.logger.Debug("configuration loaded",
		zap.String("hub_path", cfg.HubPath),
		zap.String("config_file", cfg.ConfigFileUsed),
	)

	if cmd.Annotations[annotationNeedsGit] == "true" {
		if err := git.CheckGitVersion(); err != nil {
			return errors.WithHint(
				errors.Wrap(errors.ErrorTypeIO, "Git is not installed or not in PATH", err),
				"Install git using your package manager (apt, yum, brew, etc.)",
			)
		}
	}

	a.registry = hub.NewRegistry(cfg.HubPath, a.logger)
	a.remotes = remote.NewConfigurator(a.logger)
	return nil
}

// annotationNeedsGit marks commands that shell out to git
const annotationNeedsGit = "needs-git"

var needsGit = map[string]string{annotationNeedsGit: "true"}

// resolveRemoteName returns the --remote-name flag when set, else the configured default
func resolveRemoteName(cmd *cobra.Command, flagValue, configured string) string {
	if cmd.Flags().Changed("remote-name") || configured == "" {
		return flagValue
	}
	return configured
}
