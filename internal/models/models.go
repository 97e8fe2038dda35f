package models

import "time"

// DosageMg is an enumerated Wegovy dose, stored as its decimal-mg string.
type DosageMg string

const (
	Dosage025 DosageMg = "0.25"
	Dosage05  DosageMg = "0.5"
	Dosage10  DosageMg = "1.0"
	Dosage17  DosageMg = "1.7"
	Dosage24  DosageMg = "2.4"
)

var DosageOptions = []DosageMg{Dosage025, Dosage05, Dosage10, Dosage17, Dosage24}

func ValidDosage(dosage DosageMg) bool {
	for _, option := range DosageOptions {
		if dosage == option {
			return true
		}
	}
	return false
}

type InjectionSite string

const (
	SiteRightThigh   InjectionSite = "Right Thigh"
	SiteLeftThigh    InjectionSite = "Left Thigh"
	SiteStomachRight InjectionSite = "Stomach (R)"
	SiteStomachLeft  InjectionSite = "Stomach (L)"
)

var InjectionSites = []InjectionSite{SiteRightThigh, SiteLeftThigh, SiteStomachRight, SiteStomachLeft}

func ValidSite(site InjectionSite) bool {
	for _, option := range InjectionSites {
		if site == option {
			return true
		}
	}
	return false
}

// Symptom severities run 0 (none) through 3 (severe).
const (
	SeverityNone   = 0
	SeveritySevere = 3
)

var SymptomTypes = []string{"Nausea", "Fatigue", "Headache"}

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// Settings is the per-user profile singleton. It is created with defaults on
// first use, saved wholesale, never deleted.
type Settings struct {
	CalorieGoal int       `json:"calorieGoal"`
	ProteinGoal int       `json:"proteinGoal"`
	WaterGoal   int       `json:"waterGoal"`
	HeightFt    int       `json:"heightFt"`
	HeightIn    int       `json:"heightIn"`
	StartWeight float64   `json:"startWeight"`
	GoalWeight  float64   `json:"goalWeight"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func DefaultSettings() Settings {
	return Settings{
		CalorieGoal: 1800,
		ProteinGoal: 120,
		WaterGoal:   90,
		HeightFt:    5,
		HeightIn:    10,
		StartWeight: 240,
		GoalWeight:  180,
	}
}

// Shot is a logged injection event. Date is a YYYY-MM-DD calendar day and
// Time a local HH:MM string; together they order shots for recency.
type Shot struct {
	ID        string        `json:"id"`
	Date      string        `json:"date"`
	Time      string        `json:"time"`
	Dosage    DosageMg      `json:"dosage"`
	Site      InjectionSite `json:"site"`
	Notes     string        `json:"notes,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

type WeightEntry struct {
	ID         string    `json:"id"`
	Date       string    `json:"date"`
	Weight     float64   `json:"weight"`
	RecordedAt time.Time `json:"recordedAt"`
}

// DailyLog is the per-calendar-date aggregate. Calories and protein are
// running sums over the date's live food items; water is a running sum of
// explicit adjustments. All three are clamped at zero.
type DailyLog struct {
	Date     string         `json:"date"`
	Calories int            `json:"calories"`
	Protein  int            `json:"protein"`
	Water    int            `json:"water"`
	Symptoms map[string]int `json:"symptoms"`
	Notes    string         `json:"notes"`
}

func EmptyDailyLog(date string) DailyLog {
	return DailyLog{Date: date, Symptoms: map[string]int{}}
}

type FoodItem struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Calories  int       `json:"calories"`
	Protein   int       `json:"protein"`
	Date      string    `json:"dateString"`
	CreatedAt time.Time `json:"createdAt"`
}

// GroceryState maps staple item name to its bought flag. Absent items are
// unbought.
type GroceryState map[string]bool

type Recipe struct {
	Title       string   `json:"title"`
	Type        string   `json:"type"`
	Cost        string   `json:"cost"`
	Prep        string   `json:"prep"`
	Image       string   `json:"img"`
	Calories    int      `json:"calories"`
	Protein     int      `json:"protein"`
	Ingredients []string `json:"ingredients"`
	Description string   `json:"desc"`
}

type StaplesCategory struct {
	Category string   `json:"cat"`
	Image    string   `json:"img"`
	Items    []string `json:"items"`
}
