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

func setupShotRouter(t *testing.T) *chi.Mux {
	t.Helper()
	db := testutil.NewTestDatabase(t)
	handler := NewShotHandler(repository.NewShotRepository(db), events.NewHub(), testutil.UserID)

	router := chi.NewRouter()
	router.Get("/api/shots", handler.List)
	router.Post("/api/shots", handler.Create)
	router.Put("/api/shots/{id}", handler.Update)
	router.Delete("/api/shots/{id}", handler.Delete)
	return router
}

func TestShotHandler_CreateAndListNewestFirst(t *testing.T) {
	router := setupShotRouter(t)

	for _, body := range []string{
		`{"date":"2024-01-01","time":"08:00","dosage":"0.25","site":"Right Thigh"}`,
		`{"date":"2024-01-08","time":"08:30","dosage":"0.25","site":"Left Thigh","notes":"slight sting"}`,
	} {
		recorder := do(t, router, http.MethodPost, "/api/shots", body)
		if recorder.Code != http.StatusCreated {
			t.Fatalf("creating shot: %d: %s", recorder.Code, recorder.Body.String())
		}
	}

	recorder := do(t, router, http.MethodGet, "/api/shots", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("listing shots: %d", recorder.Code)
	}

	var shots []models.Shot
	if err := json.Unmarshal(recorder.Body.Bytes(), &shots); err != nil {
		t.Fatalf("decoding shots: %v", err)
	}
	if len(shots) != 2 {
		t.Fatalf("expected 2 shots, got %d", len(shots))
	}
	if shots[0].Date != "2024-01-08" {
		t.Errorf("expected newest shot first, got %s", shots[0].Date)
	}
}

func TestShotHandler_ListEmptyReturnsArray(t *testing.T) {
	router := setupShotRouter(t)

	recorder := do(t, router, http.MethodGet, "/api/shots", "")
	if body := recorder.Body.String(); body != "[]\n" && body != "[]" {
		t.Errorf("expected empty JSON array, got %q", body)
	}
}

func TestShotHandler_CreateRejectsUnknownDosage(t *testing.T) {
	router := setupShotRouter(t)

	recorder := do(t, router, http.MethodPost, "/api/shots",
		`{"date":"2024-01-01","time":"08:00","dosage":"3.0","site":"Right Thigh"}`)
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown dosage, got %d", recorder.Code)
	}
}

func TestShotHandler_CreateRejectsUnknownSite(t *testing.T) {
	router := setupShotRouter(t)

	recorder := do(t, router, http.MethodPost, "/api/shots",
		`{"date":"2024-01-01","time":"08:00","dosage":"0.5","site":"Left Arm"}`)
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown site, got %d", recorder.Code)
	}
}

func TestShotHandler_UpdateMissingShotReturnsNotFound(t *testing.T) {
	router := setupShotRouter(t)

	recorder := do(t, router, http.MethodPut, "/api/shots/no-such-id",
		`{"date":"2024-01-01","time":"08:00","dosage":"0.5","site":"Stomach (R)"}`)
	if recorder.Code != http.StatusNotFound {
		t.Errorf("expected 404 for missing shot, got %d", recorder.Code)
	}
}

func TestShotHandler_DeleteRemovesShot(t *testing.T) {
	router := setupShotRouter(t)

	recorder := do(t, router, http.MethodPost, "/api/shots",
		`{"date":"2024-01-01","time":"08:00","dosage":"1.0","site":"Stomach (L)"}`)
	var shot models.Shot
	if err := json.Unmarshal(recorder.Body.Bytes(), &shot); err != nil {
		t.Fatalf("decoding shot: %v", err)
	}

	recorder = do(t, router, http.MethodDelete, "/api/shots/"+shot.ID, "")
	if recorder.Code != http.StatusNoContent {
		t.Fatalf("deleting shot: %d", recorder.Code)
	}

	recorder = do(t, router, http.MethodGet, "/api/shots", "")
	var shots []models.Shot
	json.Unmarshal(recorder.Body.Bytes(), &shots)
	if len(shots) != 0 {
		t.Errorf("expected no shots after delete, got %d", len(shots))
	}
}
