package tracker

import (
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/okoshkina/fittrack/internal/models"
)

// weeklyWindow is how many trailing entries the weekly chart shows.
const weeklyWindow = 6

// HealthData carries the onboarding form values.
type HealthData struct {
	CurrentWeight float64
	TargetWeight  float64
	Goal          models.Goal
}

// SetHealthData initializes the profile from onboarding data: it captures
// the start weight, records the first weight entry at the current time, and
// marks the profile onboarded. Calling it again re-onboards: the history is
// replaced with a single fresh entry.
func (s *Store) SetHealthData(data HealthData) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	p := &s.state.Profile
	p.Onboarded = true
	p.StartWeight = data.CurrentWeight
	p.TargetWeight = data.TargetWeight
	p.Goal = data.Goal
	p.CurrentWeight = formatWeight(data.CurrentWeight)
	p.WeightHistory = []models.WeightEntry{newWeightEntry(data.CurrentWeight, now)}
	s.persist()
}

// SetTargetWeight updates the user-editable goal weight.
func (s *Store) SetTargetWeight(value float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Profile.TargetWeight = value
	s.persist()
}

// AddWeightEntry appends a measurement with the current timestamp and
// refreshes the denormalized current-weight mirror. The store performs no
// range validation; callers clamp input before dispatching.
func (s *Store) AddWeightEntry(value float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := &s.state.Profile
	p.WeightHistory = append(p.WeightHistory, newWeightEntry(value, s.clock.Now()))
	p.CurrentWeight = formatWeight(value)
	s.persist()
}

func newWeightEntry(value float64, at time.Time) models.WeightEntry {
	return models.WeightEntry{
		ID:    uuid.NewString(),
		Date:  at.Format(time.RFC3339),
		Value: value,
	}
}

func formatWeight(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// CurrentWeight returns the most recent entry's value, falling back to the
// profile mirror string, then the start weight, then 0.
func CurrentWeight(snap models.Snapshot) float64 {
	p := snap.Profile
	if n := len(p.WeightHistory); n > 0 {
		return p.WeightHistory[n-1].Value
	}
	if v, err := strconv.ParseFloat(p.CurrentWeight, 64); err == nil {
		return v
	}
	if p.StartWeight != 0 {
		return p.StartWeight
	}
	return 0
}

// PreviousWeight returns the second-most-recent entry's value. With fewer
// than two entries it returns the current weight, so the change reads as
// zero until there is real data to compare.
func PreviousWeight(snap models.Snapshot) float64 {
	h := snap.Profile.WeightHistory
	if len(h) >= 2 {
		return h[len(h)-2].Value
	}
	return CurrentWeight(snap)
}

// WeightChange is previous minus current, so a positive value means weight
// was lost. The sign convention is fixed regardless of the stated goal.
func WeightChange(snap models.Snapshot) float64 {
	return PreviousWeight(snap) - CurrentWeight(snap)
}

// WeeklyData returns up to the last six entry values in chronological order.
// An empty history yields a single fallback point so charts have something
// to draw.
func WeeklyData(snap models.Snapshot) []float64 {
	h := snap.Profile.WeightHistory
	if len(h) == 0 {
		return []float64{CurrentWeight(snap)}
	}
	start := 0
	if len(h) > weeklyWindow {
		start = len(h) - weeklyWindow
	}
	out := make([]float64, 0, len(h)-start)
	for _, e := range h[start:] {
		out = append(out, e.Value)
	}
	return out
}

// ProgressPercent returns the rounded percentage toward the target weight,
// clamped to [0, 100]. Maintain goals always read 100. Degenerate inputs
// (missing weights, target on the wrong side of the start) read 0.
func ProgressPercent(snap models.Snapshot) float64 {
	p := snap.Profile
	if p.StartWeight == 0 || p.TargetWeight == 0 {
		return 0
	}
	current := CurrentWeight(snap)

	switch p.Goal {
	case models.GoalMaintain:
		return 100
	case models.GoalLoss:
		if p.StartWeight <= p.TargetWeight {
			return 0
		}
		return clampPercent((p.StartWeight-current)/(p.StartWeight-p.TargetWeight)*100)
	case models.GoalGain:
		if p.TargetWeight <= p.StartWeight {
			return 0
		}
		return clampPercent((current-p.StartWeight)/(p.TargetWeight-p.StartWeight)*100)
	}
	return 0
}

func clampPercent(v float64) float64 {
	return math.Round(math.Min(math.Max(v, 0), 100))
}
