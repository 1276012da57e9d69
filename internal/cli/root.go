// Package cli provides the command-line interface for scenescope.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jask/scenescope/internal/config"
)

// Version information (set at build time).
var Version = "0.1.0"

// flagKeys maps command flags onto config keys so flags override the file
// and the environment.
var flagKeys = map[string]string{
	"log-level":   "log.level",
	"log-file":    "log.file",
	"url":         "bridge.url",
	"start-panel": "ui.start_panel",
	"addr":        "simulate.addr",
	"interval":    "simulate.interval",
	"keep":        "journal.keep_sessions",
}

// app is the state shared by every command once the config is loaded.
type app struct {
	cfgFile  string
	cfg      config.Config
	logger   *slog.Logger
	closeLog func() error
}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	a := &app{logger: slog.New(slog.DiscardHandler), closeLog: func() error { return nil }}

	rootCmd := &cobra.Command{
		Use:   "scenescope",
		Short: "scenescope - terminal inspector for 3D scenes",
		Long: `scenescope connects to an instrumented 3D runtime over a websocket bridge
and lets you browse its scenes, resources and renderers, and edit their
parameters from the terminal. Sessions are journaled so they can be replayed.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help, version and completion commands
			if cmd.Name() == "help" || cmd.Name() == "version" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			return a.load(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.closeLog()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $SCENESCOPE_CONFIG or ~/.config/scenescope/config.toml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().String("log-file", "", "log file, - for stderr")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newInspectCmd(a))
	rootCmd.AddCommand(newReplayCmd(a))
	rootCmd.AddCommand(newSimulateCmd(a))
	rootCmd.AddCommand(newSessionsCmd(a))
	rootCmd.AddCommand(newPruneCmd(a))
	rootCmd.AddCommand(newEnumsCmd(a))
	return rootCmd
}

func (a *app) load(cmd *cobra.Command) error {
	v, err := config.New(a.cfgFile)
	if err != nil {
		return err
	}
	if err := bindFlags(v, cmd.Flags()); err != nil {
		return err
	}
	a.cfg, err = config.Decode(v)
	if err != nil {
		return err
	}
	a.logger, a.closeLog, err = newLogger(a.cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.logger.Debug("config loaded", "command", cmd.Name(), "file", v.ConfigFileUsed())
	return nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind --%s: %w", name, err)
		}
	}
	return nil
}

// Execute runs the root command until it finishes or the process is
// interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
