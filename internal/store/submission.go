package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/abhisek/nmt/ent"
	"github.com/abhisek/nmt/ent/questionsubmission"
)

// submissionRepo implements SubmissionRepo using the ent client.
type submissionRepo struct {
	client *ent.Client
}

func (r *submissionRepo) Submit(ctx context.Context, s Submission) (*Submission, error) {
	if len(s.Record) == 0 {
		return nil, fmt.Errorf("submission has no record")
	}
	source := s.Source
	if source == "" {
		source = "manual"
	}
	row, err := r.client.QuestionSubmission.Create().
		SetTopic(s.Topic).
		SetKind(s.Kind).
		SetRecord(s.Record).
		SetSource(source).
		SetAuthor(s.Author).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("save submission: %w", err)
	}
	return toSubmission(row), nil
}

func (r *submissionRepo) Get(ctx context.Context, id int) (*Submission, error) {
	row, err := r.client.QuestionSubmission.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("submission %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("query submission: %w", err)
	}
	return toSubmission(row), nil
}

func (r *submissionRepo) List(ctx context.Context, status string) ([]Submission, error) {
	q := r.client.QuestionSubmission.Query().
		Order(ent.Desc(questionsubmission.FieldCreatedAt))
	if status != "" {
		q = q.Where(questionsubmission.StatusEQ(questionsubmission.Status(status)))
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query submissions: %w", err)
	}
	out := make([]Submission, len(rows))
	for i, row := range rows {
		out[i] = *toSubmission(row)
	}
	return out, nil
}

func (r *submissionRepo) Review(ctx context.Context, id int, approve bool, note string, now time.Time) (*Submission, error) {
	status := questionsubmission.StatusRejected
	if approve {
		status = questionsubmission.StatusApproved
	}
	row, err := r.client.QuestionSubmission.UpdateOneID(id).
		SetStatus(status).
		SetReviewNote(note).
		SetReviewedAt(now).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("submission %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("review submission: %w", err)
	}
	return toSubmission(row), nil
}

func (r *submissionRepo) Approved(ctx context.Context) ([]json.RawMessage, error) {
	rows, err := r.client.QuestionSubmission.Query().
		Where(questionsubmission.StatusEQ(questionsubmission.StatusApproved)).
		Order(ent.Asc(questionsubmission.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query approved submissions: %w", err)
	}
	out := make([]json.RawMessage, len(rows))
	for i, row := range rows {
		out[i] = row.Record
	}
	return out, nil
}

func toSubmission(row *ent.QuestionSubmission) *Submission {
	return &Submission{
		ID:         row.ID,
		Status:     string(row.Status),
		Topic:      row.Topic,
		Kind:       row.Kind,
		Record:     row.Record,
		Source:     row.Source,
		Author:     row.Author,
		ReviewNote: row.ReviewNote,
		CreatedAt:  row.CreatedAt,
		ReviewedAt: row.ReviewedAt,
	}
}
