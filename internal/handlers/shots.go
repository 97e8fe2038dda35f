package handlers

import (
	"log/slog"
	"net/http"

	"github.com/DanteArceneaux/wegovy/internal/events"
	"github.com/DanteArceneaux/wegovy/internal/models"
	"github.com/DanteArceneaux/wegovy/internal/repository"
	"github.com/DanteArceneaux/wegovy/internal/validation"
	"github.com/go-chi/chi/v5"
)

type ShotHandler struct {
	shotRepo repository.ShotRepository
	hub      *events.Hub
	userID   string
}

func NewShotHandler(shotRepo repository.ShotRepository, hub *events.Hub, userID string) *ShotHandler {
	return &ShotHandler{shotRepo: shotRepo, hub: hub, userID: userID}
}

func (handler *ShotHandler) List(w http.ResponseWriter, r *http.Request) {
	shots, err := handler.shotRepo.FindAll(r.Context(), handler.userID)
	if err != nil {
		slog.Error("listing shots", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load shots")
		return
	}
	if shots == nil {
		shots = []models.Shot{}
	}
	writeJSON(w, http.StatusOK, shots)
}

type shotRequest struct {
	Date   string `json:"date" validate:"required,datetime=2006-01-02"`
	Time   string `json:"time" validate:"required"`
	Dosage string `json:"dosage" validate:"required"`
	Site   string `json:"site" validate:"required"`
	Notes  string `json:"notes"`
}

func (request shotRequest) toShot() (models.Shot, string) {
	if result := validation.ValidateShot(request.Date, request.Time); !result.Valid {
		return models.Shot{}, result.Error
	}
	if !models.ValidDosage(models.DosageMg(request.Dosage)) {
		return models.Shot{}, "unknown dosage"
	}
	if !models.ValidSite(models.InjectionSite(request.Site)) {
		return models.Shot{}, "unknown injection site"
	}
	return models.Shot{
		Date:   request.Date,
		Time:   request.Time,
		Dosage: models.DosageMg(request.Dosage),
		Site:   models.InjectionSite(request.Site),
		Notes:  request.Notes,
	}, ""
}

func (handler *ShotHandler) Create(w http.ResponseWriter, r *http.Request) {
	var request shotRequest
	if err := decodeBody(r, &request); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	shot, problem := request.toShot()
	if problem != "" {
		writeError(w, http.StatusBadRequest, problem)
		return
	}

	created, err := handler.shotRepo.Create(r.Context(), handler.userID, shot)
	if err != nil {
		slog.Error("creating shot", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save shot")
		return
	}

	handler.hub.Publish(events.TopicShots, events.ActionCreated, created.Date, created)
	writeJSON(w, http.StatusCreated, created)
}

func (handler *ShotHandler) Update(w http.ResponseWriter, r *http.Request) {
	var request shotRequest
	if err := decodeBody(r, &request); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	shot, problem := request.toShot()
	if problem != "" {
		writeError(w, http.StatusBadRequest, problem)
		return
	}
	shot.ID = chi.URLParam(r, "id")

	if err := handler.shotRepo.Update(r.Context(), handler.userID, shot); err != nil {
		slog.Error("updating shot", "error", err, "id", shot.ID)
		writeError(w, http.StatusNotFound, "shot not found")
		return
	}

	handler.hub.Publish(events.TopicShots, events.ActionUpdated, shot.Date, shot)
	writeJSON(w, http.StatusOK, shot)
}

func (handler *ShotHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := handler.shotRepo.Delete(r.Context(), handler.userID, id); err != nil {
		slog.Error("deleting shot", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "failed to delete shot")
		return
	}

	handler.hub.Publish(events.TopicShots, events.ActionDeleted, "", map[string]string{"id": id})
	w.WriteHeader(http.StatusNoContent)
}
