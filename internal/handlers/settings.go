package handlers

import (
	"log/slog"
	"net/http"

	"github.com/DanteArceneaux/wegovy/internal/events"
	"github.com/DanteArceneaux/wegovy/internal/models"
	"github.com/DanteArceneaux/wegovy/internal/repository"
)

type SettingsHandler struct {
	settingsRepo repository.SettingsRepository
	hub          *events.Hub
	userID       string
}

func NewSettingsHandler(settingsRepo repository.SettingsRepository, hub *events.Hub, userID string) *SettingsHandler {
	return &SettingsHandler{settingsRepo: settingsRepo, hub: hub, userID: userID}
}

func (handler *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := handler.settingsRepo.Get(r.Context(), handler.userID)
	if err != nil {
		slog.Error("getting settings", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load settings")
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

type saveSettingsRequest struct {
	CalorieGoal int     `json:"calorieGoal" validate:"gt=0,lte=20000"`
	ProteinGoal int     `json:"proteinGoal" validate:"gt=0,lte=2000"`
	WaterGoal   int     `json:"waterGoal" validate:"gt=0,lte=1000"`
	HeightFt    int     `json:"heightFt" validate:"gte=0,lte=8"`
	HeightIn    int     `json:"heightIn" validate:"gte=0,lt=12"`
	StartWeight float64 `json:"startWeight" validate:"gt=0,lte=1000"`
	GoalWeight  float64 `json:"goalWeight" validate:"gt=0,lte=1000"`
}

func (handler *SettingsHandler) Save(w http.ResponseWriter, r *http.Request) {
	var request saveSettingsRequest
	if err := decodeBody(r, &request); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	settings := models.Settings{
		CalorieGoal: request.CalorieGoal,
		ProteinGoal: request.ProteinGoal,
		WaterGoal:   request.WaterGoal,
		HeightFt:    request.HeightFt,
		HeightIn:    request.HeightIn,
		StartWeight: request.StartWeight,
		GoalWeight:  request.GoalWeight,
	}
	if err := handler.settingsRepo.Save(r.Context(), handler.userID, settings); err != nil {
		slog.Error("saving settings", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save settings")
		return
	}

	handler.hub.Publish(events.TopicSettings, events.ActionUpdated, "", settings)
	writeJSON(w, http.StatusOK, settings)
}
