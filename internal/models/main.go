// Package models defines the core data structures shared by the local
// tracker store, the persistence layer, and the sync server.
package models

// Goal determines the direction of weight-progress calculation.
type Goal string

const (
	// GoalLoss means progress counts weight moving down toward the target.
	GoalLoss Goal = "loss"
	// GoalMaintain means progress is always complete.
	GoalMaintain Goal = "maintain"
	// GoalGain means progress counts weight moving up toward the target.
	GoalGain Goal = "gain"
)

// WeightEntry is a single immutable weight measurement. Entries are only
// ever appended to the history, never edited or removed.
type WeightEntry struct {
	// ID is the unique identifier for the entry.
	ID string `json:"id"`
	// Date is the RFC3339 timestamp of when the entry was recorded.
	Date string `json:"date"`
	// Value is the measured weight in kilograms.
	Value float64 `json:"value"`
}

// ProfileState holds the onboarding snapshot and the append-only weight history.
type ProfileState struct {
	// Onboarded reports whether onboarding has completed.
	Onboarded bool `json:"onboarded"`
	// StartWeight is the weight captured at onboarding, immutable thereafter.
	StartWeight float64 `json:"startWeight"`
	// TargetWeight is the user-editable goal weight.
	TargetWeight float64 `json:"targetWeight"`
	// Goal selects the progress sign convention.
	Goal Goal `json:"goal"`
	// CurrentWeight mirrors the latest entry value as a display string.
	CurrentWeight string `json:"currentWeight"`
	// WeightHistory is ordered oldest first; insertion order is chronological.
	WeightHistory []WeightEntry `json:"weightHistory"`
}

// MealOption is a single selectable choice within a category.
type MealOption struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Selected bool   `json:"selected"`
}

// MealCategory groups options of which at most one may be selected.
type MealCategory struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Options []MealOption `json:"options"`
}

// Meal is one meal of the daily plan with its selection categories.
type Meal struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Completed  bool           `json:"completed"`
	Categories []MealCategory `json:"categories"`
}

// MealState holds the current day's meal selections.
type MealState struct {
	Meals []Meal `json:"meals"`
	// LastResetDate is the YYYY-MM-DD day the meal set was last cleared.
	LastResetDate string `json:"lastResetDate"`
}

// WaterLog records one water intake action. Percentage is a snapshot of the
// fill ratio at log time and is never recomputed.
type WaterLog struct {
	ID         string  `json:"id"`
	Amount     int     `json:"amount"`
	Time       string  `json:"time"`
	Percentage float64 `json:"percentage"`
}

// WaterState holds the current day's water intake.
type WaterState struct {
	// Intake is the number of cups consumed today.
	Intake int `json:"intake"`
	// Goal is the daily target in cups, kept within [1, 20].
	Goal int `json:"goal"`
	// Logs is ordered most recent first.
	Logs []WaterLog `json:"logs"`
	// LastResetDate is the YYYY-MM-DD day the counters were last cleared.
	LastResetDate string `json:"lastResetDate"`
}

// Snapshot is the whole tracker state tree as persisted locally and
// exchanged with the sync server. Version increases with every mutation.
type Snapshot struct {
	Profile ProfileState `json:"profile"`
	Meals   MealState    `json:"meals"`
	Water   WaterState   `json:"water"`
	Version int64        `json:"version"`
}
