package service_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/okoshkina/fittrack/internal/models"
	"github.com/okoshkina/fittrack/internal/service"
)

type mockSnapshotRepo struct {
	GetVersionFunc          func(ctx context.Context, login string) (int64, error)
	GetSnapshotFunc         func(ctx context.Context, login string) (*models.Snapshot, error)
	UpsertSnapshotFunc      func(ctx context.Context, login string, snap models.Snapshot) error
	AppendWeightEntriesFunc func(ctx context.Context, login string, entries []models.WeightEntry) error
}

func (m *mockSnapshotRepo) GetVersion(ctx context.Context, login string) (int64, error) {
	return m.GetVersionFunc(ctx, login)
}
func (m *mockSnapshotRepo) GetSnapshot(ctx context.Context, login string) (*models.Snapshot, error) {
	return m.GetSnapshotFunc(ctx, login)
}
func (m *mockSnapshotRepo) UpsertSnapshot(ctx context.Context, login string, snap models.Snapshot) error {
	return m.UpsertSnapshotFunc(ctx, login, snap)
}
func (m *mockSnapshotRepo) AppendWeightEntries(ctx context.Context, login string, entries []models.WeightEntry) error {
	return m.AppendWeightEntriesFunc(ctx, login, entries)
}

func TestSync_VersionError(t *testing.T) {
	wantErr := errors.New("db down")
	repo := &mockSnapshotRepo{
		GetVersionFunc: func(context.Context, string) (int64, error) {
			return 0, wantErr
		},
	}
	svc := service.NewSyncService(repo)
	_, err := svc.Sync(context.Background(), "u1", models.Snapshot{}, 0)
	if err != wantErr {
		t.Fatalf("Sync error = %v; want %v", err, wantErr)
	}
}

func TestSync_ClientBehindGetsStoredSnapshot(t *testing.T) {
	stored := &models.Snapshot{
		Water:   models.WaterState{Intake: 5, Goal: 8},
		Version: 7,
	}
	repo := &mockSnapshotRepo{
		GetVersionFunc: func(context.Context, string) (int64, error) {
			return 7, nil
		},
		GetSnapshotFunc: func(context.Context, string) (*models.Snapshot, error) {
			return stored, nil
		},
	}
	svc := service.NewSyncService(repo)
	out, err := svc.Sync(context.Background(), "u1", models.Snapshot{Version: 3}, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(out, *stored) {
		t.Errorf("snapshot = %+v; want %+v", out, *stored)
	}
}

func TestSync_ClientCurrentUpserts(t *testing.T) {
	client := models.Snapshot{
		Profile: models.ProfileState{
			WeightHistory: []models.WeightEntry{{ID: "e1", Date: "2024-01-01T09:00:00Z", Value: 80}},
		},
		Version: 9,
	}
	var upserted *models.Snapshot
	var mirrored []models.WeightEntry
	repo := &mockSnapshotRepo{
		GetVersionFunc: func(context.Context, string) (int64, error) {
			return 4, nil
		},
		UpsertSnapshotFunc: func(_ context.Context, _ string, snap models.Snapshot) error {
			upserted = &snap
			return nil
		},
		AppendWeightEntriesFunc: func(_ context.Context, _ string, entries []models.WeightEntry) error {
			mirrored = entries
			return nil
		},
	}
	svc := service.NewSyncService(repo)
	out, err := svc.Sync(context.Background(), "u1", client, 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(out, client) {
		t.Errorf("snapshot = %+v; want echo of client snapshot", out)
	}
	if upserted == nil || upserted.Version != 9 {
		t.Errorf("expected upsert of client snapshot, got %+v", upserted)
	}
	if len(mirrored) != 1 || mirrored[0].ID != "e1" {
		t.Errorf("expected weight history mirrored, got %+v", mirrored)
	}
}

func TestSync_UpsertError(t *testing.T) {
	wantErr := errors.New("upsert failed")
	repo := &mockSnapshotRepo{
		GetVersionFunc: func(context.Context, string) (int64, error) {
			return 0, nil
		},
		UpsertSnapshotFunc: func(context.Context, string, models.Snapshot) error {
			return wantErr
		},
	}
	svc := service.NewSyncService(repo)
	_, err := svc.Sync(context.Background(), "u1", models.Snapshot{}, 0)
	if err != wantErr {
		t.Fatalf("Sync error = %v; want %v", err, wantErr)
	}
}

func TestSync_NoStoredSnapshotForBehindClient(t *testing.T) {
	repo := &mockSnapshotRepo{
		GetVersionFunc: func(context.Context, string) (int64, error) {
			return 5, nil
		},
		GetSnapshotFunc: func(context.Context, string) (*models.Snapshot, error) {
			return nil, nil
		},
	}
	svc := service.NewSyncService(repo)
	out, err := svc.Sync(context.Background(), "u1", models.Snapshot{}, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Version != 0 {
		t.Errorf("expected zero snapshot, got %+v", out)
	}
}
