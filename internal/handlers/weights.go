package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/DanteArceneaux/wegovy/internal/events"
	"github.com/DanteArceneaux/wegovy/internal/models"
	"github.com/DanteArceneaux/wegovy/internal/repository"
	"github.com/DanteArceneaux/wegovy/internal/validation"
	"github.com/go-chi/chi/v5"
)

type WeightHandler struct {
	weightRepo repository.WeightRepository
	hub        *events.Hub
	userID     string
}

func NewWeightHandler(weightRepo repository.WeightRepository, hub *events.Hub, userID string) *WeightHandler {
	return &WeightHandler{weightRepo: weightRepo, hub: hub, userID: userID}
}

func (handler *WeightHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := handler.weightRepo.FindAll(r.Context(), handler.userID)
	if err != nil {
		slog.Error("listing weight entries", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load weight log")
		return
	}
	if entries == nil {
		entries = []models.WeightEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

// Weight arrives as the raw input string so the domain validator decides
// acceptance before parsing.
type createWeightRequest struct {
	Date   string `json:"date" validate:"required,datetime=2006-01-02"`
	Weight string `json:"weight" validate:"required"`
}

func (handler *WeightHandler) Create(w http.ResponseWriter, r *http.Request) {
	var request createWeightRequest
	if err := decodeBody(r, &request); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if result := validation.ValidateWeight(request.Weight); !result.Valid {
		writeError(w, http.StatusBadRequest, result.Error)
		return
	}
	weight, _ := strconv.ParseFloat(request.Weight, 64)

	entry, err := handler.weightRepo.Create(r.Context(), handler.userID, models.WeightEntry{
		Date:   request.Date,
		Weight: weight,
	})
	if err != nil {
		slog.Error("creating weight entry", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save weight")
		return
	}

	handler.hub.Publish(events.TopicWeights, events.ActionCreated, entry.Date, entry)
	writeJSON(w, http.StatusCreated, entry)
}

func (handler *WeightHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := handler.weightRepo.Delete(r.Context(), handler.userID, id); err != nil {
		slog.Error("deleting weight entry", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "failed to delete weight entry")
		return
	}

	handler.hub.Publish(events.TopicWeights, events.ActionDeleted, "", map[string]string{"id": id})
	w.WriteHeader(http.StatusNoContent)
}
