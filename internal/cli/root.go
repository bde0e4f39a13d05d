package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/CherkashinEvgeny/gintonic/aspect"
	"github.com/CherkashinEvgeny/gintonic/internal/config"
	"github.com/CherkashinEvgeny/gintonic/logsink"
)

var (
	appVersion = "dev"
	appCommit  = "none"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit string) {
	appVersion = version
	appCommit = commit
}

type app struct {
	configPath string
	cfg        *config.Config
	logger     aspect.Logger
	container  *aspect.Container
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	logger, err := logsink.New(cmd.OutOrStdout(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return errors.Wrap(err, "create logger")
	}
	container, err := cfg.Container(logger)
	if err != nil {
		return errors.Wrap(err, "register advice")
	}
	a.cfg, a.logger, a.container = cfg, logger, container
	return nil
}

// NewRootCommand builds the gintonic command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "gintonic",
		Short: "Run sample operations under before, after and around advice",
		Long: `gintonic runs the sample MainActivity operations through the advice
configured in gintonic.yaml (or GINTONIC_* environment variables) and prints
the resulting log lines.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default ./gintonic.yaml)")

	for _, kind := range []aspect.Kind{aspect.KindBefore, aspect.KindAfter, aspect.KindAround} {
		root.AddCommand(newSampleCommand(a, kind))
	}
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gintonic %s\ncommit: %s\n", appVersion, appCommit)
		},
	})
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}
