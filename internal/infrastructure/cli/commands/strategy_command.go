package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/doeshing/roulette-go/internal/app"
	"github.com/doeshing/roulette-go/internal/domain"
)

// NewStrategyCommand creates the strategy command with all subcommands
func NewStrategyCommand(container *app.Container) *cobra.Command {
	strategyCmd := &cobra.Command{
		Use:   "strategy",
		Short: "Manage saved strategies",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showActiveStrategy(cmd.OutOrStdout(), container)
		},
	}

	strategyCmd.AddCommand(
		newStrategyListCommand(container),
		newStrategyShowCommand(container),
		newStrategyImportCommand(container),
		newStrategyExportCommand(container),
		newStrategySaveAICommand(container),
		newStrategyActivateCommand(container),
		newStrategyDeleteCommand(container),
	)

	return strategyCmd
}

func newStrategyListCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved strategies",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			saved := container.Strategies.Saved()
			if len(saved) == 0 {
				fmt.Fprintln(out, MsgNoSavedStrategies)
				return nil
			}
			active, _ := container.Strategies.Active()
			table := newTable(out, "Name", "Rules", "Threshold", "Predict", "AI", "Active")
			for _, s := range saved {
				table.Append([]string{
					s.Name,
					strconv.Itoa(len(s.Rules)),
					strconv.Itoa(s.ConfidenceThreshold),
					strconv.Itoa(s.NumbersToPredictCount),
					strconv.FormatBool(s.AIGenerated),
					strconv.FormatBool(s.Name == active.Name),
				})
			}
			table.Render()
			return nil
		},
	}
}

func newStrategyShowCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the active strategy",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showActiveStrategy(cmd.OutOrStdout(), container)
		},
	}
}

func newStrategyImportCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a strategy JSON file, save it and make it active",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			imported, err := container.Strategies.Import(raw)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported strategy %q (%d rules)\n", imported.Name, len(imported.Rules))
			return nil
		},
	}
}

func newStrategyExportCommand(container *app.Container) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "export [name]",
		Short: "Export a strategy as JSON (defaults to the active one)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			return exportStrategy(cmd.OutOrStdout(), container, name, dir)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", StdoutPath, "Directory to write <name>_strategy.json into (- for stdout)")
	return cmd
}

func newStrategySaveAICommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "save-ai",
		Short: "Save and activate the AI optimized strategy",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := container.Strategies.GenerateAI()
			fmt.Fprintf(cmd.OutOrStdout(), "Saved and activated %q\n", s.Name)
			return nil
		},
	}
}

func newStrategyActivateCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "activate <name>",
		Short: "Make a saved strategy active",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := container.Strategies.Activate(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Active strategy: %s\n", s.Name)
			return nil
		},
	}
}

func newStrategyDeleteCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a saved strategy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := container.Strategies.Delete(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted strategy %q\n", args[0])
			return nil
		},
	}
}

func showActiveStrategy(out io.Writer, container *app.Container) error {
	active, ok := container.Strategies.Active()
	if !ok {
		fmt.Fprintln(out, "No active strategy; showing the default template.")
	}
	fmt.Fprintf(out, "Name: %s\n", active.Name)
	fmt.Fprintf(out, "Confidence threshold: %d%%\n", active.ConfidenceThreshold)
	fmt.Fprintf(out, "Numbers to predict: %d\n", active.NumbersToPredictCount)
	fmt.Fprintf(out, "RNG tracking: %s\n", formatEnabled(active.TrackRNG))
	fmt.Fprintf(out, "Time gap tracking: %s\n", formatEnabled(active.TrackTimeGaps))

	table := newTable(out, "Type", "Value", "Weight")
	for _, r := range active.Rules {
		table.Append([]string{r.Type, r.Value, strconv.Itoa(r.Weight)})
	}
	table.Render()
	return nil
}

func exportStrategy(out io.Writer, container *app.Container, name, dir string) error {
	data, err := container.Strategies.Export(name)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if dir == StdoutPath {
		_, err = out.Write(data)
		return err
	}

	if name == "" {
		active, _ := container.Strategies.Active()
		name = active.Name
	}
	path := filepath.Join(dir, domain.ExportFilename(name))
	if err := os.WriteFile(path, data, domain.FilePermissions); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Fprintf(out, "Exported %q to %s\n", name, path)
	return nil
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == StdoutPath {
		return io.ReadAll(stdin)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return raw, nil
}
