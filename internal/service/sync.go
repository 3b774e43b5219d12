package service

import (
	"context"

	"github.com/okoshkina/fittrack/internal/models"
)

// SnapshotRepository defines the persistence operations needed by the SyncService.
type SnapshotRepository interface {
	// GetVersion returns the stored snapshot version for the user, 0 if none.
	GetVersion(ctx context.Context, login string) (int64, error)
	// GetSnapshot retrieves the stored snapshot for the user, nil if none.
	GetSnapshot(ctx context.Context, login string) (*models.Snapshot, error)
	// UpsertSnapshot stores the snapshot, replacing any previous one.
	UpsertSnapshot(ctx context.Context, login string, snap models.Snapshot) error
	// AppendWeightEntries mirrors weight entries into the append-only table.
	AppendWeightEntries(ctx context.Context, login string, entries []models.WeightEntry) error
}

// SyncService reconciles client snapshots with the authoritative store.
type SyncService struct {
	repo SnapshotRepository
}

// NewSyncService constructs a SyncService with the provided SnapshotRepository.
func NewSyncService(repo SnapshotRepository) *SyncService {
	return &SyncService{repo: repo}
}

// Sync reconciles a client snapshot against the stored one. If the client's
// lastKnownVersion is behind the stored version, the stored snapshot wins
// and is returned. Otherwise the client snapshot is stored, its weight
// history mirrored, and echoed back.
func (s *SyncService) Sync(ctx context.Context, login string, snap models.Snapshot, lastKnownVersion int64) (models.Snapshot, error) {
	currentVersion, err := s.repo.GetVersion(ctx, login)
	if err != nil {
		return models.Snapshot{}, err
	}

	if lastKnownVersion < currentVersion {
		latest, err := s.repo.GetSnapshot(ctx, login)
		if err != nil {
			return models.Snapshot{}, err
		}
		if latest != nil {
			return *latest, nil
		}
		return models.Snapshot{}, nil
	}

	if err := s.repo.UpsertSnapshot(ctx, login, snap); err != nil {
		return models.Snapshot{}, err
	}
	if err := s.repo.AppendWeightEntries(ctx, login, snap.Profile.WeightHistory); err != nil {
		return models.Snapshot{}, err
	}
	return snap, nil
}

// Snapshot returns the stored snapshot for the user, nil if none exists yet.
func (s *SyncService) Snapshot(ctx context.Context, login string) (*models.Snapshot, error) {
	return s.repo.GetSnapshot(ctx, login)
}
