package handlers

import (
	"log/slog"
	"net/http"

	"github.com/DanteArceneaux/wegovy/internal/events"
	"github.com/DanteArceneaux/wegovy/internal/repository"
)

type GroceryHandler struct {
	groceryRepo repository.GroceryRepository
	hub         *events.Hub
	userID      string
}

func NewGroceryHandler(groceryRepo repository.GroceryRepository, hub *events.Hub, userID string) *GroceryHandler {
	return &GroceryHandler{groceryRepo: groceryRepo, hub: hub, userID: userID}
}

func (handler *GroceryHandler) Get(w http.ResponseWriter, r *http.Request) {
	state, err := handler.groceryRepo.Get(r.Context(), handler.userID)
	if err != nil {
		slog.Error("getting grocery state", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load grocery list")
		return
	}
	writeJSON(w, http.StatusOK, state)
}

type toggleGroceryRequest struct {
	Item string `json:"item" validate:"required"`
}

func (handler *GroceryHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	var request toggleGroceryRequest
	if err := decodeBody(r, &request); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	bought, err := handler.groceryRepo.Toggle(r.Context(), handler.userID, request.Item)
	if err != nil {
		slog.Error("toggling grocery item", "error", err, "item", request.Item)
		writeError(w, http.StatusInternalServerError, "failed to toggle item")
		return
	}

	handler.hub.Publish(events.TopicGrocery, events.ActionUpdated, "", map[string]interface{}{
		"item":   request.Item,
		"bought": bought,
	})
	writeJSON(w, http.StatusOK, map[string]bool{"bought": bought})
}

func (handler *GroceryHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := handler.groceryRepo.Reset(r.Context(), handler.userID); err != nil {
		slog.Error("resetting grocery list", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to reset grocery list")
		return
	}

	handler.hub.Publish(events.TopicGrocery, events.ActionDeleted, "", nil)
	w.WriteHeader(http.StatusNoContent)
}
