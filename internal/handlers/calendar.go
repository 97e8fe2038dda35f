package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/DanteArceneaux/wegovy/internal/dates"
	"github.com/DanteArceneaux/wegovy/internal/metrics"
	"github.com/DanteArceneaux/wegovy/internal/models"
	"github.com/DanteArceneaux/wegovy/internal/repository"
	ical "github.com/arran4/golang-ical"
)

// CalendarHandler renders the injection history, plus the projected next
// dose, as an iCal feed a phone calendar can subscribe to.
type CalendarHandler struct {
	shotRepo  repository.ShotRepository
	feedToken string
	userID    string
}

func NewCalendarHandler(shotRepo repository.ShotRepository, feedToken, userID string) *CalendarHandler {
	return &CalendarHandler{shotRepo: shotRepo, feedToken: feedToken, userID: userID}
}

func (handler *CalendarHandler) Feed(w http.ResponseWriter, r *http.Request) {
	if handler.feedToken != "" && r.URL.Query().Get("token") != handler.feedToken {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	shots, err := handler.shotRepo.FindAll(r.Context(), handler.userID)
	if err != nil {
		slog.Error("loading shots for calendar feed", "error", err)
		http.Error(w, "Error", http.StatusInternalServerError)
		return
	}

	calendar := ical.NewCalendar()
	calendar.SetMethod(ical.MethodPublish)
	calendar.SetProductId("-//wegovy-tracker//injection feed//EN")

	for _, shot := range shots {
		start, err := shotStart(shot)
		if err != nil {
			slog.Warn("skipping shot with unparseable timestamp", "id", shot.ID, "error", err)
			continue
		}
		event := calendar.AddEvent("shot-" + shot.ID)
		event.SetCreatedTime(shot.CreatedAt)
		event.SetStartAt(start)
		event.SetEndAt(start.Add(15 * time.Minute))
		event.SetSummary(fmt.Sprintf("Wegovy %s mg - %s", shot.Dosage, shot.Site))
		if shot.Notes != "" {
			event.SetDescription(shot.Notes)
		}
	}

	// Project the next dose one cycle after the most recent shot.
	if len(shots) > 0 {
		metrics.SortShotsForDisplay(shots)
		last := shots[0]
		if nextDate, err := dates.AddDays(last.Date, metrics.CycleLengthDays); err == nil {
			if nextDay, err := dates.Parse(nextDate); err == nil {
				event := calendar.AddEvent("next-dose-" + nextDate)
				event.SetAllDayStartAt(nextDay)
				event.SetAllDayEndAt(nextDay.AddDate(0, 0, 1))
				event.SetSummary("Wegovy dose due")
			}
		}
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=wegovy.ics")
	w.Write([]byte(calendar.Serialize()))
}

func shotStart(shot models.Shot) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", shot.Date+" "+shot.Time, time.Local)
}
