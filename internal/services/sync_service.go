package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"go.uber.org/atomic"

	"lakd/internal/models"
	"lakd/internal/structures"
)

var (
	ErrSyncNotConfigured = errors.New("cloud sync is not configured")
	ErrSyncInFlight      = errors.New("a sync operation is already running")
	ErrNoRemoteData      = errors.New("no data stored remotely")
)

type SyncServiceInterface interface {
	Push(ctx context.Context) error
	Pull(ctx context.Context) (time.Time, error)
}

// SyncService mirrors the backup payload to a remote document keyed by
// the anonymous device id. Push overwrites the remote copy, pull
// overwrites local state. Only one operation may be in flight at a time.
type SyncService struct {
	conf     *structures.Config
	store    StoreServiceInterface
	backup   BackupServiceInterface
	client   *http.Client
	inFlight atomic.Bool
}

func NewSyncService(conf *structures.Config, store StoreServiceInterface, backup BackupServiceInterface) SyncServiceInterface {
	return &SyncService{
		conf:   conf,
		store:  store,
		backup: backup,
		client: &http.Client{Timeout: conf.Sync.Timeout},
	}
}

func (sy *SyncService) documentURL() (string, error) {
	if !sy.conf.Sync.Enabled || sy.conf.Sync.BaseURL == "" {
		return "", ErrSyncNotConfigured
	}
	return fmt.Sprintf("%s/users/%s", sy.conf.Sync.BaseURL, sy.store.DeviceID()), nil
}

func (sy *SyncService) Push(ctx context.Context) error {
	url, err := sy.documentURL()
	if err != nil {
		return err
	}
	if !sy.inFlight.CompareAndSwap(false, true) {
		return ErrSyncInFlight
	}
	defer sy.inFlight.Store(false)

	doc := models.SyncDocument{AppData: sy.backup.Export()}
	body, err := json.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("encoding sync document: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := sy.client.Do(req)
	if err != nil {
		return fmt.Errorf("sync push failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("sync push rejected: %s", resp.Status)
	}
	return nil
}

func (sy *SyncService) Pull(ctx context.Context) (time.Time, error) {
	url, err := sy.documentURL()
	if err != nil {
		return time.Time{}, err
	}
	if !sy.inFlight.CompareAndSwap(false, true) {
		return time.Time{}, ErrSyncInFlight
	}
	defer sy.inFlight.Store(false)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return time.Time{}, err
	}

	resp, err := sy.client.Do(req)
	if err != nil {
		return time.Time{}, fmt.Errorf("sync pull failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return time.Time{}, ErrNoRemoteData
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		return time.Time{}, fmt.Errorf("sync pull rejected: %s", resp.Status)
	}

	var doc models.SyncDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return time.Time{}, fmt.Errorf("decoding sync document: %w", err)
	}
	if doc.AppData == nil {
		return time.Time{}, ErrNoRemoteData
	}

	sy.backup.Import(doc.AppData)

	lastSync, _ := time.Parse(time.RFC3339, doc.LastSync)
	return lastSync, nil
}
