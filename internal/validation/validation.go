// Package validation contains the input-acceptance predicates applied to raw
// user input before any mutation is attempted. Each check returns a Result
// rather than an error so callers can surface the message verbatim.
package validation

import (
	"strconv"
	"strings"
)

type Result struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

func ok() Result {
	return Result{Valid: true}
}

func fail(message string) Result {
	return Result{Valid: false, Error: message}
}

// ValidateWeight accepts a positive decimal up to 1000 lbs.
func ValidateWeight(raw string) Result {
	weight, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if raw == "" || err != nil {
		return fail("Please enter a valid weight")
	}
	if weight <= 0 || weight > 1000 {
		return fail("Please enter a weight between 1 and 1000 lbs")
	}
	return ok()
}

// ValidateFoodEntry accepts a non-blank name, calories in [0,10000] and
// protein in [0,1000]. Non-numeric amounts fail.
func ValidateFoodEntry(name, calories, protein string) Result {
	if strings.TrimSpace(name) == "" {
		return fail("Please enter a food name")
	}
	cals, err := strconv.Atoi(strings.TrimSpace(calories))
	if err != nil || cals < 0 || cals > 10000 {
		return fail("Please enter valid calories (0-10000)")
	}
	prot, err := strconv.Atoi(strings.TrimSpace(protein))
	if err != nil || prot < 0 || prot > 1000 {
		return fail("Please enter valid protein (0-1000g)")
	}
	return ok()
}

// ValidateShot requires both a date and a time. Dosage and site are
// constrained by their fixed choice sets at the request boundary.
func ValidateShot(date, time string) Result {
	if date == "" {
		return fail("Please select a date")
	}
	if time == "" {
		return fail("Please select a time")
	}
	return ok()
}
