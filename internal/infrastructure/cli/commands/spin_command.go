package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/doeshing/roulette-go/internal/app"
)

// NewSpinCommand records an observed outcome.
func NewSpinCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "spin <number>",
		Short: "Record a spin result (0-36) and predict the next one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("spin number must be an integer: %w", err)
			}
			res, err := container.Predictor.Spin(number)
			if err != nil {
				return err
			}
			renderSpinResult(cmd.OutOrStdout(), res)
			return nil
		},
	}
}

// NewSimulateCommand spins a random wheel one or more times.
func NewSimulateCommand(container *app.Container) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Spin a random wheel and record the outcomes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return errors.New(ErrInvalidCount)
			}
			out := cmd.OutOrStdout()
			for i := 0; i < count; i++ {
				res, err := container.Predictor.Simulate()
				if err != nil {
					return err
				}
				renderSpinResult(out, res)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of spins to simulate")
	return cmd
}

// NewPredictCommand generates a fresh prediction from the current history.
func NewPredictCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "predict",
		Short: "Generate a prediction from the recorded history",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, ok := container.Predictor.PredictIfTracking()
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), MsgTrackingDisabled)
				return nil
			}
			renderPrediction(cmd.OutOrStdout(), p)
			return nil
		},
	}
}

// NewLastCommand prints the persisted prediction.
func NewLastCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "last",
		Short: "Show the last stored prediction",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, ok := container.Engine.LoadLast()
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), MsgNoPrediction)
				return nil
			}
			renderPrediction(cmd.OutOrStdout(), p)
			return nil
		},
	}
}
