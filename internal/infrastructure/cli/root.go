package cli

import (
	"github.com/spf13/cobra"

	"github.com/doeshing/roulette-go/internal/app"
	"github.com/doeshing/roulette-go/internal/infrastructure/cli/commands"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose    bool
	Ephemeral  bool
	ConfigPath string
}

// NewRootCmd wires the cobra root command. The container is built once
// flags are parsed, before any subcommand runs. Diagnostic commands get a
// container that tolerates an unusable backend.
func NewRootCmd(opts Options) *cobra.Command {
	container := &app.Container{}
	root := newRoot(container)

	root.PersistentFlags().BoolVar(&opts.Ephemeral, "ephemeral", opts.Ephemeral, "Keep all data in memory for this run")
	root.PersistentFlags().StringVar(&opts.ConfigPath, "config", opts.ConfigPath, "Config file (default ~/.roulette/config.yaml)")
	root.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", opts.Verbose, "Enable debug logging")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		build := app.BuildContainer
		if commands.IsDiagnostic(cmd) {
			build = app.BuildDiagnosticContainer
		}
		built, err := build(cmd.Context(), app.Options{
			Verbose:    opts.Verbose,
			Ephemeral:  opts.Ephemeral,
			ConfigPath: opts.ConfigPath,
		})
		if err != nil {
			return err
		}
		*container = *built
		return nil
	}
	root.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		return container.Close()
	}
	return root
}

// NewRootCmdWith wires the command tree around an existing container.
func NewRootCmdWith(container *app.Container) *cobra.Command {
	return newRoot(container)
}

func newRoot(container *app.Container) *cobra.Command {
	root := &cobra.Command{
		Use:           "roulette",
		Short:         "Roulette spin tracker and predictor",
		Long:          "roulette records spin outcomes, keeps the last 50 and guesses the next color and number.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		commands.NewSpinCommand(container),
		commands.NewSimulateCommand(container),
		commands.NewPredictCommand(container),
		commands.NewLastCommand(container),
		commands.NewHistoryCommand(container),
		commands.NewStatsCommand(container),
		commands.NewStrategyCommand(container),
		commands.NewSettingsCommand(container),
		commands.NewResetCommand(container),
		commands.NewWatchCommand(container),
		commands.NewServeCommand(container),
		commands.NewConfigCommand(container),
		commands.NewDoctorCommand(container),
	)
	return root
}
