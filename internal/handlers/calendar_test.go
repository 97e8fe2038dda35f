package handlers

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/DanteArceneaux/wegovy/internal/models"
	"github.com/DanteArceneaux/wegovy/internal/repository"
	"github.com/DanteArceneaux/wegovy/internal/testutil"
	"github.com/go-chi/chi/v5"
)

func setupCalendarRouter(t *testing.T, feedToken string) (*chi.Mux, repository.ShotRepository) {
	t.Helper()
	db := testutil.NewTestDatabase(t)
	shotRepo := repository.NewShotRepository(db)
	handler := NewCalendarHandler(shotRepo, feedToken, testutil.UserID)

	router := chi.NewRouter()
	router.Get("/calendar.ics", handler.Feed)
	return router, shotRepo
}

func TestCalendarHandler_FeedContainsShotsAndNextDose(t *testing.T) {
	router, shotRepo := setupCalendarRouter(t, "")

	_, err := shotRepo.Create(context.Background(), testutil.UserID, models.Shot{
		Date:   "2024-01-08",
		Time:   "08:00",
		Dosage: models.Dosage025,
		Site:   models.SiteRightThigh,
		Notes:  "first week on 0.25",
	})
	if err != nil {
		t.Fatalf("creating shot: %v", err)
	}

	recorder := do(t, router, http.MethodGet, "/calendar.ics", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	if contentType := recorder.Header().Get("Content-Type"); !strings.HasPrefix(contentType, "text/calendar") {
		t.Errorf("expected text/calendar, got %s", contentType)
	}

	body := recorder.Body.String()
	if !strings.Contains(body, "BEGIN:VEVENT") {
		t.Errorf("expected at least one VEVENT in feed")
	}
	if !strings.Contains(body, "Wegovy 0.25 mg") {
		t.Errorf("expected shot summary in feed, got:\n%s", body)
	}
	if !strings.Contains(body, "Wegovy dose due") {
		t.Errorf("expected projected next dose in feed")
	}
	// One cycle after the last shot.
	if !strings.Contains(body, "20240115") {
		t.Errorf("expected next dose on 2024-01-15, got:\n%s", body)
	}
}

func TestCalendarHandler_EmptyHistoryStillServesCalendar(t *testing.T) {
	router, _ := setupCalendarRouter(t, "")

	recorder := do(t, router, http.MethodGet, "/calendar.ics", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	body := recorder.Body.String()
	if !strings.Contains(body, "BEGIN:VCALENDAR") {
		t.Errorf("expected a calendar envelope, got:\n%s", body)
	}
	if strings.Contains(body, "BEGIN:VEVENT") {
		t.Errorf("expected no events for empty history")
	}
}

func TestCalendarHandler_TokenGuard(t *testing.T) {
	router, _ := setupCalendarRouter(t, "feed-secret")

	recorder := do(t, router, http.MethodGet, "/calendar.ics", "")
	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", recorder.Code)
	}

	recorder = do(t, router, http.MethodGet, "/calendar.ics?token=wrong", "")
	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 with wrong token, got %d", recorder.Code)
	}

	recorder = do(t, router, http.MethodGet, "/calendar.ics?token=feed-secret", "")
	if recorder.Code != http.StatusOK {
		t.Errorf("expected 200 with correct token, got %d", recorder.Code)
	}
}
