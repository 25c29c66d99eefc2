package commands

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/doeshing/roulette-go/internal/app"
	"github.com/doeshing/roulette-go/internal/domain"
)

// NewWatchCommand prints a fresh prediction on every tick until interrupted.
func NewWatchCommand(container *app.Container) *cobra.Command {
	var (
		interval time.Duration
		duration time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Generate predictions periodically while tracking is enabled",
		RunE: func(cmd *cobra.Command, args []string) error {
			if interval <= 0 {
				interval = container.Config.GetWatchInterval()
			}
			ctx := cmd.Context()
			if duration > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, duration)
				defer cancel()
			}

			out := cmd.OutOrStdout()
			err := container.Predictor.Watch(ctx, interval, func(p domain.PredictionRecord) {
				renderPrediction(out, p)
			})
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().DurationVarP(&interval, "interval", "i", 0, "Tick interval (default from config, 5s)")
	cmd.Flags().DurationVar(&duration, "for", 0, "Stop after this long (0 runs until interrupted)")
	return cmd
}
