package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/DanteArceneaux/wegovy/internal/dates"
	"github.com/DanteArceneaux/wegovy/internal/events"
	"github.com/DanteArceneaux/wegovy/internal/services"
	"github.com/DanteArceneaux/wegovy/internal/validation"
	"github.com/go-chi/chi/v5"
)

type DayLogHandler struct {
	dayLog  *services.DayLogService
	summary *services.SummaryService
	hub     *events.Hub
	userID  string
}

func NewDayLogHandler(dayLog *services.DayLogService, summary *services.SummaryService, hub *events.Hub, userID string) *DayLogHandler {
	return &DayLogHandler{dayLog: dayLog, summary: summary, hub: hub, userID: userID}
}

// dateParam extracts and checks the {date} route segment. An empty return
// means the response has already been written.
func dateParam(w http.ResponseWriter, r *http.Request) string {
	date := chi.URLParam(r, "date")
	if !dates.Valid(date) {
		writeError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return ""
	}
	return date
}

func (handler *DayLogHandler) Day(w http.ResponseWriter, r *http.Request) {
	date := dateParam(w, r)
	if date == "" {
		return
	}

	snapshot, err := handler.dayLog.Snapshot(r.Context(), handler.userID, date)
	if err != nil {
		slog.Error("loading day snapshot", "error", err, "date", date)
		writeError(w, http.StatusInternalServerError, "failed to load day")
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

func (handler *DayLogHandler) Summary(w http.ResponseWriter, r *http.Request) {
	date := dateParam(w, r)
	if date == "" {
		return
	}

	summary, err := handler.summary.DaySummary(r.Context(), handler.userID, date)
	if err != nil {
		slog.Error("computing day summary", "error", err, "date", date)
		writeError(w, http.StatusInternalServerError, "failed to compute summary")
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// Food amounts arrive as the raw input strings so the domain validator
// decides acceptance before anything persists.
type addFoodRequest struct {
	Name     string `json:"name" validate:"required"`
	Calories string `json:"calories" validate:"required"`
	Protein  string `json:"protein" validate:"required"`
}

func (handler *DayLogHandler) AddFood(w http.ResponseWriter, r *http.Request) {
	date := dateParam(w, r)
	if date == "" {
		return
	}

	var request addFoodRequest
	if err := decodeBody(r, &request); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if result := validation.ValidateFoodEntry(request.Name, request.Calories, request.Protein); !result.Valid {
		writeError(w, http.StatusBadRequest, result.Error)
		return
	}
	calories, _ := strconv.Atoi(request.Calories)
	protein, _ := strconv.Atoi(request.Protein)

	item, err := handler.dayLog.AddFood(r.Context(), handler.userID, date, request.Name, calories, protein)
	if err != nil {
		slog.Error("adding food", "error", err, "date", date)
		writeError(w, http.StatusInternalServerError, "failed to log food")
		return
	}

	handler.hub.Publish(events.TopicFoodItems, events.ActionCreated, date, item)
	writeJSON(w, http.StatusCreated, item)
}

func (handler *DayLogHandler) DeleteFood(w http.ResponseWriter, r *http.Request) {
	date := dateParam(w, r)
	if date == "" {
		return
	}
	itemID := chi.URLParam(r, "id")

	// The item's creation-time amounts ride along as query params because
	// the row may already be gone by the time we could re-read it.
	calories, err := strconv.Atoi(r.URL.Query().Get("calories"))
	if err != nil || calories < 0 {
		writeError(w, http.StatusBadRequest, "calories query param is required")
		return
	}
	protein, err := strconv.Atoi(r.URL.Query().Get("protein"))
	if err != nil || protein < 0 {
		writeError(w, http.StatusBadRequest, "protein query param is required")
		return
	}

	if err := handler.dayLog.DeleteFood(r.Context(), handler.userID, date, itemID, calories, protein); err != nil {
		slog.Error("deleting food", "error", err, "date", date, "id", itemID)
		writeError(w, http.StatusInternalServerError, "failed to delete food")
		return
	}

	handler.hub.Publish(events.TopicFoodItems, events.ActionDeleted, date, map[string]string{"id": itemID})
	w.WriteHeader(http.StatusNoContent)
}

type adjustWaterRequest struct {
	Delta int `json:"delta" validate:"ne=0"`
}

func (handler *DayLogHandler) AdjustWater(w http.ResponseWriter, r *http.Request) {
	date := dateParam(w, r)
	if date == "" {
		return
	}

	var request adjustWaterRequest
	if err := decodeBody(r, &request); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	log, err := handler.dayLog.AdjustWater(r.Context(), handler.userID, date, request.Delta)
	if err != nil {
		slog.Error("adjusting water", "error", err, "date", date)
		writeError(w, http.StatusInternalServerError, "failed to update water")
		return
	}

	handler.hub.Publish(events.TopicDailyLogs, events.ActionUpdated, date, log)
	writeJSON(w, http.StatusOK, log)
}

type setSymptomsRequest struct {
	Symptoms map[string]int `json:"symptoms" validate:"required"`
}

func (handler *DayLogHandler) SetSymptoms(w http.ResponseWriter, r *http.Request) {
	date := dateParam(w, r)
	if date == "" {
		return
	}

	var request setSymptomsRequest
	if err := decodeBody(r, &request); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := handler.dayLog.SetSymptoms(r.Context(), handler.userID, date, request.Symptoms); err != nil {
		slog.Error("setting symptoms", "error", err, "date", date)
		writeError(w, http.StatusBadRequest, "failed to save symptoms")
		return
	}

	handler.hub.Publish(events.TopicDailyLogs, events.ActionUpdated, date, map[string]interface{}{"symptoms": request.Symptoms})
	w.WriteHeader(http.StatusNoContent)
}

type setNotesRequest struct {
	Notes string `json:"notes"`
}

func (handler *DayLogHandler) SetNotes(w http.ResponseWriter, r *http.Request) {
	date := dateParam(w, r)
	if date == "" {
		return
	}

	var request setNotesRequest
	if err := decodeBody(r, &request); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := handler.dayLog.SetNotes(r.Context(), handler.userID, date, request.Notes); err != nil {
		slog.Error("setting notes", "error", err, "date", date)
		writeError(w, http.StatusInternalServerError, "failed to save notes")
		return
	}

	handler.hub.Publish(events.TopicDailyLogs, events.ActionUpdated, date, map[string]string{"notes": request.Notes})
	w.WriteHeader(http.StatusNoContent)
}
