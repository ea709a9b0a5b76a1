package store

import (
	"context"
	"fmt"

	"github.com/abhisek/nmt/ent"
	"github.com/abhisek/nmt/ent/sessionevent"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetStudentEmail(data.StudentEmail).
		SetReason(data.Reason).
		SetQuestions(data.Questions).
		SetAnswered(data.Answered).
		SetScore(data.Score).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) SessionEvents(ctx context.Context, sessionID string) ([]SessionEvent, error) {
	rows, err := r.client.SessionEvent.Query().
		Where(sessionevent.SessionID(sessionID)).
		Order(ent.Asc(sessionevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}

	out := make([]SessionEvent, len(rows))
	for i, e := range rows {
		out[i] = SessionEvent{
			SessionEventData: SessionEventData{
				SessionID:    e.SessionID,
				Action:       e.Action,
				StudentEmail: e.StudentEmail,
				Reason:       e.Reason,
				Questions:    e.Questions,
				Answered:     e.Answered,
				Score:        e.Score,
				DurationSecs: e.DurationSecs,
			},
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		}
	}
	return out, nil
}
