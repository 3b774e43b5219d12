package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/okoshkina/fittrack/internal/models"
	"github.com/okoshkina/fittrack/internal/tracker"
)

// StartAutoSync pushes the local snapshot to the backend on a fixed interval.
// Sync failures are logged and retried on the next tick; the local store is
// the working copy and never blocks on the network.
func StartAutoSync(client *http.Client, baseURL, token string, st *tracker.Store, fs *FileStore, interval time.Duration, log *zap.Logger) {
	go func() {
		for {
			if err := SyncWithServer(client, baseURL, token, st, fs); err != nil {
				log.Warn("sync failed", zap.Error(err))
			}
			time.Sleep(interval)
		}
	}()
}

// SyncWithServer sends the local snapshot with its last-known version. If
// the server holds a newer snapshot, the local store is replaced with it;
// either way the reconciled state is saved to disk.
func SyncWithServer(client *http.Client, baseURL, token string, st *tracker.Store, fs *FileStore) error {
	local := st.Snapshot()
	payload := map[string]any{
		"snapshot":           local,
		"last_known_version": local.Version,
	}
	b, _ := json.Marshal(payload)

	req, err := http.NewRequest(http.MethodPost, baseURL+"/api/sync", bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
	}

	var result struct {
		Snapshot models.Snapshot `json:"snapshot"`
		Version  int64           `json:"version"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return err
	}

	if result.Version > local.Version {
		st.Replace(result.Snapshot)
	}
	return fs.Save(st.Snapshot())
}
