package storage

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/okoshkina/fittrack/internal/models"
	"github.com/okoshkina/fittrack/internal/tracker"
)

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func newTestClient(fn roundTripperFunc) *http.Client {
	return &http.Client{Transport: fn, Timeout: time.Second}
}

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func newSyncFixture(t *testing.T) (*tracker.Store, *FileStore) {
	t.Helper()
	st := tracker.New(tracker.DefaultMealPlan())
	fs := NewFileStore(filepath.Join(t.TempDir(), "state.json"))
	return st, fs
}

func TestSyncWithServer_NetworkError(t *testing.T) {
	st, fs := newSyncFixture(t)
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return nil, errors.New("network down")
	})
	err := SyncWithServer(client, "http://example.com", "tok", st, fs)
	if err == nil || !strings.Contains(err.Error(), "sync failed") {
		t.Errorf("expected network failure, got %v", err)
	}
}

func TestSyncWithServer_ServerError(t *testing.T) {
	st, fs := newSyncFixture(t)
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: 500,
			Body:       io.NopCloser(strings.NewReader("internal error\n")),
		}, nil
	})
	err := SyncWithServer(client, "http://example.com", "tok", st, fs)
	if err == nil || !strings.Contains(err.Error(), "server error: internal error") {
		t.Errorf("expected server error, got %v", err)
	}
}

func TestSyncWithServer_ServerNewerReplacesLocal(t *testing.T) {
	st, fs := newSyncFixture(t)
	st.AddWater(1)

	server := models.Snapshot{
		Water:   models.WaterState{Intake: 6, Goal: 8, LastResetDate: "2024-01-01"},
		Version: 99,
	}
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		if got := req.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("Authorization = %q; want Bearer tok", got)
		}
		body, _ := json.Marshal(map[string]any{"snapshot": server, "version": server.Version})
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(string(body))),
		}, nil
	})

	if err := SyncWithServer(client, "http://example.com", "tok", st, fs); err != nil {
		t.Fatalf("sync failed: %v", err)
	}
	if got := st.Snapshot().Water.Intake; got != 6 {
		t.Errorf("local intake = %d; want server value 6", got)
	}

	saved, err := fs.Load()
	if err != nil {
		t.Fatalf("load after sync: %v", err)
	}
	if saved.Version != 99 {
		t.Errorf("persisted version = %d; want 99", saved.Version)
	}
}

func TestSyncWithServer_LocalUpToDateKeepsState(t *testing.T) {
	st, fs := newSyncFixture(t)
	st.AddWater(2)
	local := st.Snapshot()

	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		var payload struct {
			Snapshot         models.Snapshot `json:"snapshot"`
			LastKnownVersion int64           `json:"last_known_version"`
		}
		if err := json.NewDecoder(req.Body).Decode(&payload); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		body, _ := json.Marshal(map[string]any{"snapshot": payload.Snapshot, "version": payload.LastKnownVersion})
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(string(body))),
		}, nil
	})

	if err := SyncWithServer(client, "http://example.com", "tok", st, fs); err != nil {
		t.Fatalf("sync failed: %v", err)
	}
	if got := st.Snapshot().Water.Intake; got != local.Water.Intake {
		t.Errorf("local intake = %d; want unchanged %d", got, local.Water.Intake)
	}
}
