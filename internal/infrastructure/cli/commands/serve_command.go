package commands

import (
	"github.com/spf13/cobra"

	"github.com/doeshing/roulette-go/internal/app"
	"github.com/doeshing/roulette-go/internal/infrastructure/httpapi"
)

// NewServeCommand exposes the services over the JSON API.
func NewServeCommand(container *app.Container) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = container.Config.GetServerAddr()
			}
			handler := httpapi.NewHandler(httpapi.HandlerDeps{
				Predictor:  container.Predictor,
				History:    container.History,
				Engine:     container.Engine,
				Settings:   container.Settings,
				Strategies: container.Strategies,
				Doctor:     container.DoctorService,

				WatchInterval: container.Config.GetWatchInterval(),
			})
			router := httpapi.NewRouter(handler, container.Config.GetAllowedOrigins(), container.Logger)
			return httpapi.Serve(cmd.Context(), addr, router, container.Logger)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config, :8080)")
	return cmd
}
