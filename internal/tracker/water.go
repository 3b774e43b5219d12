package tracker

import (
	"math"

	"github.com/google/uuid"

	"github.com/okoshkina/fittrack/internal/models"
)

const (
	defaultWaterGoal = 8
	minWaterGoal     = 1
	maxWaterGoal     = 20
)

// logTimeLayout is the wall-clock format stamped on each water log.
const logTimeLayout = "3:04 PM"

// AddWater runs the daily-reset check inline, increments the intake counter,
// and prepends a log carrying a frozen percentage snapshot of the fill ratio
// at log time.
func (s *Store) AddWater(amount int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	w := &s.state.Water
	resetIfNewDay(&w.LastResetDate, dayOf(now), func() {
		w.Intake = 0
		w.Logs = nil
	})

	w.Intake += amount
	log := models.WaterLog{
		ID:         uuid.NewString(),
		Amount:     amount,
		Time:       now.Format(logTimeLayout),
		Percentage: fillPercent(w.Intake, w.Goal),
	}
	w.Logs = append([]models.WaterLog{log}, w.Logs...)
	s.persist()
}

// SetWaterGoal stores the daily target clamped to [1, 20]. The goal persists
// across daily resets until changed again.
func (s *Store) SetWaterGoal(value int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if value < minWaterGoal {
		value = minWaterGoal
	}
	if value > maxWaterGoal {
		value = maxWaterGoal
	}
	s.state.Water.Goal = value
	s.persist()
}

// UndoLast removes the most recent log and subtracts its amount from the
// intake, floored at zero. It is a single-step undo: there is no redo and no
// targeted removal of older logs.
func (s *Store) UndoLast() {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := &s.state.Water
	if len(w.Logs) == 0 {
		return
	}
	last := w.Logs[0]
	w.Logs = w.Logs[1:]
	w.Intake -= last.Amount
	if w.Intake < 0 {
		w.Intake = 0
	}
	s.persist()
}

// CheckAndResetDailyWater clears the intake counter and logs when the
// calendar day has changed. Dispatched when the water screen mounts.
func (s *Store) CheckAndResetDailyWater() {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := &s.state.Water
	if resetIfNewDay(&w.LastResetDate, dayOf(s.clock.Now()), func() {
		w.Intake = 0
		w.Logs = nil
	}) {
		s.persist()
	}
}

// WaterPercentage returns the live fill ratio as a percentage capped at 100,
// distinct from the frozen snapshot stored on each log.
func WaterPercentage(snap models.Snapshot) float64 {
	return fillPercent(snap.Water.Intake, snap.Water.Goal)
}

func fillPercent(intake, goal int) float64 {
	if goal <= 0 {
		return 0
	}
	return math.Min(float64(intake)/float64(goal)*100, 100)
}
