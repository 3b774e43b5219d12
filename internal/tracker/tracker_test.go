package tracker_test

import (
	"testing"
	"time"

	"github.com/okoshkina/fittrack/internal/models"
	"github.com/okoshkina/fittrack/internal/tracker"
)

type chanSaver struct {
	saved chan models.Snapshot
}

func (c *chanSaver) Save(snap models.Snapshot) error {
	c.saved <- snap
	return nil
}

func TestStore_SaverFiredAfterMutation(t *testing.T) {
	saver := &chanSaver{saved: make(chan models.Snapshot, 8)}
	s := tracker.New(tracker.DefaultMealPlan(), tracker.WithClock(newClock()), tracker.WithSaver(saver))

	s.AddWater(1)

	select {
	case snap := <-saver.saved:
		if snap.Water.Intake != 1 {
			t.Errorf("saved intake = %d; want 1", snap.Water.Intake)
		}
		if snap.Version == 0 {
			t.Error("saved snapshot must carry a bumped version")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("saver was not invoked")
	}
}

func TestStore_RehydrateFromSnapshot(t *testing.T) {
	clock := newClock()
	first := tracker.New(tracker.DefaultMealPlan(), tracker.WithClock(clock))
	first.SetHealthData(tracker.HealthData{CurrentWeight: 80, TargetWeight: 70, Goal: models.GoalLoss})
	first.AddWater(2)
	snap := first.Snapshot()

	second := tracker.New(tracker.DefaultMealPlan(), tracker.WithClock(clock), tracker.WithState(snap))
	got := second.Snapshot()
	if got.Water.Intake != 2 {
		t.Errorf("rehydrated intake = %d; want 2", got.Water.Intake)
	}
	if tracker.CurrentWeight(got) != 80 {
		t.Errorf("rehydrated current weight = %v; want 80", tracker.CurrentWeight(got))
	}
	if got.Version != snap.Version {
		t.Errorf("rehydrated version = %d; want %d", got.Version, snap.Version)
	}
}

func TestSnapshot_IsolatedFromStore(t *testing.T) {
	s := tracker.New(tracker.DefaultMealPlan(), tracker.WithClock(newClock()))
	snap := s.Snapshot()
	snap.Meals.Meals[0].Categories[0].Options[0].Selected = true

	if s.Snapshot().Meals.Meals[0].Categories[0].Options[0].Selected {
		t.Error("mutating a snapshot must not affect the store")
	}
}
