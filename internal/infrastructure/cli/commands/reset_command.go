package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doeshing/roulette-go/internal/app"
)

// NewResetCommand wipes every persisted key.
func NewResetCommand(container *app.Container) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete history, prediction, settings and strategies",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New(ErrConfirmationRequired)
			}
			container.Predictor.Reset()
			fmt.Fprintln(cmd.OutOrStdout(), MsgAllDataCleared)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm the reset")
	return cmd
}
