package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/roulette-go/internal/app"
	"github.com/doeshing/roulette-go/internal/application/settings"
	"github.com/doeshing/roulette-go/internal/domain"
)

// NewSettingsCommand creates the settings command with all subcommands
func NewSettingsCommand(container *app.Container) *cobra.Command {
	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: "Inspect and change settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			renderSettings(cmd.OutOrStdout(), container.Settings.Load())
			return nil
		},
	}

	settingsCmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show current settings",
			RunE: func(cmd *cobra.Command, args []string) error {
				renderSettings(cmd.OutOrStdout(), container.Settings.Load())
				return nil
			},
		},
		&cobra.Command{
			Use:       "set <key> <value>",
			Short:     "Change one setting (" + strings.Join(settings.Keys(), ", ") + ")",
			Args:      cobra.ExactArgs(2),
			ValidArgs: settings.Keys(),
			RunE: func(cmd *cobra.Command, args []string) error {
				updated, err := container.Settings.Set(args[0], args[1])
				if err != nil {
					return err
				}
				renderSettings(cmd.OutOrStdout(), updated)
				return nil
			},
		},
		&cobra.Command{
			Use:   "toggle",
			Short: "Toggle prediction tracking",
			RunE: func(cmd *cobra.Command, args []string) error {
				enabled := container.Settings.ToggleTracking()
				fmt.Fprintf(cmd.OutOrStdout(), "Tracking %s\n", formatEnabled(enabled))
				return nil
			},
		},
	)

	return settingsCmd
}

func renderSettings(out io.Writer, s domain.Settings) {
	table := newTable(out, "Setting", "Value")
	table.AppendBulk([][]string{
		{"trackingEnabled", fmt.Sprint(s.TrackingEnabled)},
		{"notificationsEnabled", fmt.Sprint(s.NotificationsEnabled)},
		{"audioAlertsEnabled", fmt.Sprint(s.AudioAlertsEnabled)},
		{"visualSensitivity", fmt.Sprint(s.VisualSensitivity)},
		{"audioSensitivity", fmt.Sprint(s.AudioSensitivity)},
		{"processingPower", fmt.Sprint(s.ProcessingPower)},
		{"confidenceThreshold", fmt.Sprint(s.ConfidenceThreshold)},
		{"notificationLevel", s.NotificationLevel},
		{"activeTab", s.ActiveTab},
	})
	table.Render()
}
