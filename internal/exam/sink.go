package exam

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/abhisek/nmt/internal/scoring"
	"github.com/abhisek/nmt/internal/session"
	"github.com/abhisek/nmt/internal/store"
)

// SnapshotSlot is the fixed slot name of the in-flight session.
const SnapshotSlot = "nmt-test-state"

// AttemptsPath is the attempt endpoint served by the back-office API.
const AttemptsPath = "/api/attempts"

// SnapshotStore persists the in-flight session.
type SnapshotStore interface {
	Save(ctx context.Context, snap session.Snapshot) error
	// Load returns nil, nil when nothing is saved.
	Load(ctx context.Context) (*session.Snapshot, error)
	Clear(ctx context.Context) error
}

// AttemptSink receives the report of every finished session.
type AttemptSink interface {
	Record(ctx context.Context, report scoring.Report) error
}

// StoreSnapshots keeps the session snapshot in a store slot.
type StoreSnapshots struct {
	Repo store.SnapshotRepo
	Slot string
}

// NewStoreSnapshots returns a SnapshotStore using SnapshotSlot.
func NewStoreSnapshots(repo store.SnapshotRepo) *StoreSnapshots {
	return &StoreSnapshots{Repo: repo, Slot: SnapshotSlot}
}

func (s *StoreSnapshots) Save(ctx context.Context, snap session.Snapshot) error {
	data, err := store.ToMap(snap)
	if err != nil {
		return err
	}
	return s.Repo.Save(ctx, &store.Snapshot{
		Slot:    s.Slot,
		Version: snap.Version,
		Data:    data,
	})
}

func (s *StoreSnapshots) Load(ctx context.Context) (*session.Snapshot, error) {
	row, err := s.Repo.Load(ctx, s.Slot)
	if err != nil || row == nil {
		return nil, err
	}
	var snap session.Snapshot
	if err := store.FromMap(row.Data, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snap, nil
}

func (s *StoreSnapshots) Clear(ctx context.Context) error {
	return s.Repo.Clear(ctx, s.Slot)
}

// StoreSink records attempts in the local store.
type StoreSink struct {
	Attempts store.AttemptRepo
}

func (s *StoreSink) Record(ctx context.Context, report scoring.Report) error {
	data, err := ToAttemptData(report)
	if err != nil {
		return err
	}
	_, err = s.Attempts.Record(ctx, data)
	return err
}

// ToAttemptData converts a report into the stored attempt form.
func ToAttemptData(report scoring.Report) (store.AttemptData, error) {
	answers, err := json.Marshal(report.Answers)
	if err != nil {
		return store.AttemptData{}, fmt.Errorf("encode answers: %w", err)
	}
	incorrect, err := json.Marshal(report.Incorrect)
	if err != nil {
		return store.AttemptData{}, fmt.Errorf("encode incorrect: %w", err)
	}
	return store.AttemptData{
		SessionID: report.SessionID,
		Email:     report.StudentEmail,
		Name:      report.StudentName,
		Score:     report.Score,
		Percent:   report.Percent,
		Answers:   answers,
		Incorrect: incorrect,
	}, nil
}

// HTTPSink posts attempts to a back-office API server.
type HTTPSink struct {
	BaseURL string
	Client  *http.Client
}

// NewHTTPSink returns an HTTPSink with a 10s client timeout.
func NewHTTPSink(baseURL string) *HTTPSink {
	return &HTTPSink{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (h *HTTPSink) Record(ctx context.Context, report scoring.Report) error {
	body, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.BaseURL+AttemptsPath, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("post attempt: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("post attempt: status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	return nil
}
