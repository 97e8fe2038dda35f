package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/DanteArceneaux/wegovy/internal/events"
	"github.com/DanteArceneaux/wegovy/internal/models"
	"github.com/DanteArceneaux/wegovy/internal/repository"
	"github.com/DanteArceneaux/wegovy/internal/testutil"
	"github.com/go-chi/chi/v5"
)

func setupWeightRouter(t *testing.T) *chi.Mux {
	t.Helper()
	db := testutil.NewTestDatabase(t)
	handler := NewWeightHandler(repository.NewWeightRepository(db), events.NewHub(), testutil.UserID)

	router := chi.NewRouter()
	router.Get("/api/weights", handler.List)
	router.Post("/api/weights", handler.Create)
	router.Delete("/api/weights/{id}", handler.Delete)
	return router
}

func TestWeightHandler_CreateAndListChronological(t *testing.T) {
	router := setupWeightRouter(t)

	for _, body := range []string{
		`{"date":"2024-01-15","weight":"238.5"}`,
		`{"date":"2024-01-01","weight":"240"}`,
	} {
		recorder := do(t, router, http.MethodPost, "/api/weights", body)
		if recorder.Code != http.StatusCreated {
			t.Fatalf("creating weight entry: %d: %s", recorder.Code, recorder.Body.String())
		}
	}

	recorder := do(t, router, http.MethodGet, "/api/weights", "")
	var entries []models.WeightEntry
	if err := json.Unmarshal(recorder.Body.Bytes(), &entries); err != nil {
		t.Fatalf("decoding entries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Date != "2024-01-01" || entries[0].Weight != 240 {
		t.Errorf("expected oldest entry first, got %+v", entries[0])
	}
}

func TestWeightHandler_CreateRejectsNonNumericWeight(t *testing.T) {
	router := setupWeightRouter(t)

	recorder := do(t, router, http.MethodPost, "/api/weights",
		`{"date":"2024-01-01","weight":"heavy"}`)
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for non-numeric weight, got %d", recorder.Code)
	}
}

func TestWeightHandler_CreateRejectsOutOfRangeWeight(t *testing.T) {
	router := setupWeightRouter(t)

	recorder := do(t, router, http.MethodPost, "/api/weights",
		`{"date":"2024-01-01","weight":"1200"}`)
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for out-of-range weight, got %d", recorder.Code)
	}
}

func TestWeightHandler_DeleteRemovesEntry(t *testing.T) {
	router := setupWeightRouter(t)

	recorder := do(t, router, http.MethodPost, "/api/weights",
		`{"date":"2024-01-01","weight":"240"}`)
	var entry models.WeightEntry
	if err := json.Unmarshal(recorder.Body.Bytes(), &entry); err != nil {
		t.Fatalf("decoding entry: %v", err)
	}

	recorder = do(t, router, http.MethodDelete, "/api/weights/"+entry.ID, "")
	if recorder.Code != http.StatusNoContent {
		t.Fatalf("deleting entry: %d", recorder.Code)
	}

	recorder = do(t, router, http.MethodGet, "/api/weights", "")
	var entries []models.WeightEntry
	json.Unmarshal(recorder.Body.Bytes(), &entries)
	if len(entries) != 0 {
		t.Errorf("expected no entries after delete, got %d", len(entries))
	}
}
