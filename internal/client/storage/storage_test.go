package storage

import (
	"path/filepath"
	"testing"

	"github.com/okoshkina/fittrack/internal/models"
)

func TestLoad_FileNotExist(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "state.json"))

	snap, err := fs.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if snap.Version != 0 || len(snap.Profile.WeightHistory) != 0 {
		t.Errorf("expected zero snapshot, got %+v", snap)
	}
}

func TestSaveLoad_Roundtrip(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "state.json"))

	in := models.Snapshot{
		Profile: models.ProfileState{
			Onboarded:     true,
			StartWeight:   80,
			TargetWeight:  70,
			Goal:          models.GoalLoss,
			WeightHistory: []models.WeightEntry{{ID: "e1", Date: "2024-01-01T09:00:00Z", Value: 80}},
		},
		Water:   models.WaterState{Intake: 3, Goal: 8, LastResetDate: "2024-01-01"},
		Version: 7,
	}
	if err := fs.Save(in); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	out, err := fs.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if out.Version != 7 {
		t.Errorf("version = %d; want 7", out.Version)
	}
	if len(out.Profile.WeightHistory) != 1 || out.Profile.WeightHistory[0].ID != "e1" {
		t.Errorf("unexpected history: %+v", out.Profile.WeightHistory)
	}
	if out.Water.Intake != 3 || out.Water.Goal != 8 {
		t.Errorf("unexpected water state: %+v", out.Water)
	}
}

func TestLoad_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	fs := NewFileStore(path)
	writeFile(t, path, "{not json")

	if _, err := fs.Load(); err == nil {
		t.Error("expected decode error for corrupt file")
	}
}
