// Package metrics computes the derived display values on the dashboard:
// BMI, the injection cycle day, and weight progress. Everything here is a
// pure transformation over entity snapshots.
package metrics

import (
	"sort"
	"strconv"

	"github.com/DanteArceneaux/wegovy/internal/dates"
	"github.com/DanteArceneaux/wegovy/internal/models"
)

// CycleLengthDays is the expected gap between doses; the dashboard caps its
// progress ring at this value.
const CycleLengthDays = 7

// CalculateBMI applies the imperial formula (weight / inches²) × 703 and
// formats to one decimal place. Returns "0" when weight or height is
// missing, matching the dashboard's placeholder.
func CalculateBMI(weightLbs float64, heightFt, heightIn int) string {
	if weightLbs <= 0 || heightFt <= 0 {
		return "0"
	}
	totalInches := heightFt*12 + heightIn
	if totalInches == 0 {
		return "0"
	}
	bmi := (weightLbs / float64(totalInches*totalInches)) * 703
	return strconv.FormatFloat(bmi, 'f', 1, 64)
}

// CycleDayForDate returns the whole calendar days elapsed between the most
// recent shot dated on or before viewDate and viewDate itself, or 0 when no
// shot qualifies. Recency ties on date are broken by time of day.
func CycleDayForDate(viewDate string, shots []models.Shot) int {
	if !dates.Valid(viewDate) {
		return 0
	}

	var last *models.Shot
	for i := range shots {
		shot := &shots[i]
		if !dates.Valid(shot.Date) || shot.Date > viewDate {
			continue
		}
		if last == nil || shot.Date > last.Date || (shot.Date == last.Date && shot.Time > last.Time) {
			last = shot
		}
	}
	if last == nil {
		return 0
	}

	elapsed, err := dates.DaysBetween(last.Date, viewDate)
	if err != nil || elapsed < 0 {
		return 0
	}
	return elapsed
}

// SortShotsForDisplay orders shots newest first by (date, time).
func SortShotsForDisplay(shots []models.Shot) {
	sort.SliceStable(shots, func(i, j int) bool {
		if shots[i].Date != shots[j].Date {
			return shots[i].Date > shots[j].Date
		}
		return shots[i].Time > shots[j].Time
	})
}

// CurrentWeightAsOf returns the latest logged weight dated on or before
// viewDate, falling back to the profile's start weight when nothing has been
// logged yet. Entries may arrive out of order, so true chronological order
// (date, then recording time) decides which is latest.
func CurrentWeightAsOf(viewDate string, entries []models.WeightEntry, startWeight float64) float64 {
	var latest *models.WeightEntry
	for i := range entries {
		entry := &entries[i]
		if entry.Date > viewDate {
			continue
		}
		if latest == nil || entry.Date > latest.Date ||
			(entry.Date == latest.Date && entry.RecordedAt.After(latest.RecordedAt)) {
			latest = entry
		}
	}
	if latest == nil {
		return startWeight
	}
	return latest.Weight
}

// TotalLost formats startWeight minus currentWeight to one decimal. A gain
// comes back negative; the dashboard only shows positive losses.
func TotalLost(startWeight, currentWeight float64) string {
	return strconv.FormatFloat(startWeight-currentWeight, 'f', 1, 64)
}
