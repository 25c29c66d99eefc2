package httpapi

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/doeshing/roulette-go/internal/application/doctor"
	"github.com/doeshing/roulette-go/internal/application/history"
	"github.com/doeshing/roulette-go/internal/application/prediction"
	"github.com/doeshing/roulette-go/internal/application/predictor"
	"github.com/doeshing/roulette-go/internal/application/settings"
	"github.com/doeshing/roulette-go/internal/application/strategy"
	"github.com/doeshing/roulette-go/internal/domain"
)

var errTrackingDisabled = errors.New("tracking is disabled")

const defaultStreamInterval = 5 * time.Second

// HandlerDeps lists the services the API exposes.
type HandlerDeps struct {
	Predictor  *predictor.Service
	History    *history.Store
	Engine     *prediction.Engine
	Settings   *settings.Service
	Strategies *strategy.Service
	Doctor     *doctor.Service

	// WatchInterval is the default prediction stream period.
	WatchInterval time.Duration
}

// Handler serves the JSON API.
type Handler struct {
	predictor  *predictor.Service
	history    *history.Store
	engine     *prediction.Engine
	settings   *settings.Service
	strategies *strategy.Service
	doctor     *doctor.Service

	watchInterval time.Duration
}

func NewHandler(deps HandlerDeps) *Handler {
	if deps.WatchInterval <= 0 {
		deps.WatchInterval = defaultStreamInterval
	}
	return &Handler{
		predictor:  deps.Predictor,
		history:    deps.History,
		engine:     deps.Engine,
		settings:   deps.Settings,
		strategies: deps.Strategies,
		doctor:     deps.Doctor,

		watchInterval: deps.WatchInterval,
	}
}

type spinRequest struct {
	Number *int `json:"number"`
}

type settingRequest struct {
	Value string `json:"value"`
}

type trackingResponse struct {
	TrackingEnabled bool `json:"trackingEnabled"`
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	limit := domain.MaxHistory
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, r, http.StatusBadRequest, errors.New("limit must be a positive integer"))
			return
		}
		limit = n
	}
	writeJSON(w, http.StatusOK, h.history.Recent(limit))
}

func (h *Handler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	h.history.Clear()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	payload, err := decode[spinRequest](r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	if payload.Number == nil {
		writeError(w, r, http.StatusBadRequest, errors.New("number is required"))
		return
	}
	result, err := h.predictor.Spin(*payload.Number)
	if err != nil {
		writeError(w, r, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

func (h *Handler) Simulate(w http.ResponseWriter, r *http.Request) {
	result, err := h.predictor.Simulate()
	if err != nil {
		writeError(w, r, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	p, ok := h.predictor.PredictIfTracking()
	if !ok {
		writeError(w, r, http.StatusConflict, errTrackingDisabled)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) LastPrediction(w http.ResponseWriter, r *http.Request) {
	p, ok := h.engine.LoadLast()
	if !ok {
		writeError(w, r, http.StatusNotFound, errors.New("no prediction stored"))
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	top := domain.DefaultHotColdCount
	if raw := r.URL.Query().Get("top"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, r, http.StatusBadRequest, errors.New("top must be a positive integer"))
			return
		}
		top = n
	}
	writeJSON(w, http.StatusOK, h.predictor.Summary(top))
}

func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.settings.Load())
}

func (h *Handler) PutSettings(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	updated, err := h.settings.Merge(body)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) SetSetting(w http.ResponseWriter, r *http.Request) {
	payload, err := decode[settingRequest](r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	updated, err := h.settings.Set(chi.URLParam(r, "key"), payload.Value)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) ToggleTracking(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, trackingResponse{TrackingEnabled: h.settings.ToggleTracking()})
}

func (h *Handler) Strategies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.strategies.Saved())
}

func (h *Handler) ActiveStrategy(w http.ResponseWriter, r *http.Request) {
	active, _ := h.strategies.Active()
	writeJSON(w, http.StatusOK, active)
}

func (h *Handler) SaveStrategy(w http.ResponseWriter, r *http.Request) {
	payload, err := decode[domain.Strategy](r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	if err := h.strategies.Save(payload); err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusCreated, payload)
}

func (h *Handler) ImportStrategy(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	imported, err := h.strategies.Import(raw)
	if err != nil {
		writeError(w, r, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusCreated, imported)
}

func (h *Handler) ExportStrategy(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	data, err := h.strategies.Export(name)
	if err != nil {
		writeError(w, r, statusFor(err), err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+domain.ExportFilename(name)+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *Handler) GenerateAIStrategy(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusCreated, h.strategies.GenerateAI())
}

func (h *Handler) ActivateStrategy(w http.ResponseWriter, r *http.Request) {
	activated, err := h.strategies.Activate(chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, r, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, activated)
}

func (h *Handler) DeleteStrategy(w http.ResponseWriter, r *http.Request) {
	if err := h.strategies.Delete(chi.URLParam(r, "name")); err != nil {
		writeError(w, r, statusFor(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	h.predictor.Reset()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	report, err := h.doctor.Run(r.Context())
	status := http.StatusOK
	if err != nil {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, report)
}
