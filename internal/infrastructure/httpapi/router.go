package httpapi

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/doeshing/roulette-go/internal/ports"
)

// NewRouter mounts the API under /api.
func NewRouter(h *Handler, allowedOrigins []string, log ports.Logger) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(RequestID)
	r.Use(AccessLog(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", RequestIDHeader},
		ExposedHeaders:   []string{RequestIDHeader, "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           60 * 15,
	}))

	r.Route("/api", func(api chi.Router) {
		api.Get("/health", h.Health)
		api.Get("/stats", h.Stats)
		api.Delete("/data", h.Reset)

		api.Route("/history", func(rr chi.Router) {
			rr.Get("/", h.History)
			rr.Delete("/", h.ClearHistory)
		})

		api.Route("/spins", func(rr chi.Router) {
			rr.Post("/", h.Spin)
			rr.Post("/simulate", h.Simulate)
		})

		api.Route("/predictions", func(rr chi.Router) {
			rr.Post("/", h.Predict)
			rr.Get("/last", h.LastPrediction)
			rr.Get("/stream", h.StreamPredictions)
		})

		api.Route("/settings", func(rr chi.Router) {
			rr.Get("/", h.GetSettings)
			rr.Put("/", h.PutSettings)
			rr.Post("/tracking/toggle", h.ToggleTracking)
			rr.Put("/{key}", h.SetSetting)
		})

		api.Route("/strategies", func(rr chi.Router) {
			rr.Get("/", h.Strategies)
			rr.Post("/", h.SaveStrategy)
			rr.Get("/active", h.ActiveStrategy)
			rr.Post("/import", h.ImportStrategy)
			rr.Post("/ai", h.GenerateAIStrategy)
			rr.Get("/{name}/export", h.ExportStrategy)
			rr.Post("/{name}/activate", h.ActivateStrategy)
			rr.Delete("/{name}", h.DeleteStrategy)
		})
	})

	return r
}
