package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/abhisek/nmt/ent"
	"github.com/abhisek/nmt/ent/snapshot"
)

// snapshotRepo implements SnapshotRepo using the ent client.
type snapshotRepo struct {
	client *ent.Client
}

func (r *snapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	ts := snap.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	n, err := r.client.Snapshot.Update().
		Where(snapshot.Slot(snap.Slot)).
		SetVersion(snap.Version).
		SetTimestamp(ts).
		SetData(snap.Data).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update snapshot: %w", err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.Snapshot.Create().
		SetSlot(snap.Slot).
		SetVersion(snap.Version).
		SetTimestamp(ts).
		SetData(snap.Data).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Load(ctx context.Context, slot string) (*Snapshot, error) {
	s, err := r.client.Snapshot.Query().
		Where(snapshot.Slot(slot)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	return &Snapshot{
		ID:        s.ID,
		Slot:      s.Slot,
		Version:   s.Version,
		Timestamp: s.Timestamp,
		Data:      s.Data,
	}, nil
}

func (r *snapshotRepo) Clear(ctx context.Context, slot string) error {
	_, err := r.client.Snapshot.Delete().
		Where(snapshot.Slot(slot)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("clear snapshot: %w", err)
	}
	return nil
}

// ToMap converts a JSON-serializable value to map[string]any for ent JSON
// storage.
func ToMap(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// FromMap decodes ent JSON data back into v.
func FromMap(m map[string]any, v any) error {
	b, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal ent data: %w", err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("unmarshal snapshot data: %w", err)
	}
	return nil
}
