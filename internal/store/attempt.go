package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/nmt/ent"
	"github.com/abhisek/nmt/ent/attempt"
	"github.com/abhisek/nmt/ent/class"
	"github.com/abhisek/nmt/ent/predicate"
	"github.com/abhisek/nmt/ent/student"
)

// attemptRepo implements AttemptRepo using the ent client.
type attemptRepo struct {
	client *ent.Client
}

func (r *attemptRepo) Record(ctx context.Context, data AttemptData) (*Attempt, error) {
	email := strings.TrimSpace(data.Email)
	if email == "" {
		return nil, ErrEmailRequired
	}
	name := strings.TrimSpace(data.Name)

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	st, err := upsertStudent(ctx, tx.Client(), email, name)
	if err != nil {
		return nil, rollback(tx, err)
	}

	a, err := tx.Attempt.Create().
		SetStudent(st).
		SetSessionID(data.SessionID).
		SetStudentEmail(email).
		SetStudentName(name).
		SetScore(data.Score).
		SetPercent(data.Percent).
		SetAnswers(orEmptyArray(data.Answers)).
		SetIncorrect(orEmptyArray(data.Incorrect)).
		SetCreatedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return nil, rollback(tx, fmt.Errorf("save attempt: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit attempt: %w", err)
	}
	return toAttempt(a, st.ID), nil
}

func (r *attemptRepo) ByStudent(ctx context.Context, email string) (*Student, []Attempt, error) {
	st, err := r.client.Student.Query().
		Where(student.Email(strings.TrimSpace(email))).
		WithClass().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, fmt.Errorf("student %q: %w", email, ErrNotFound)
		}
		return nil, nil, fmt.Errorf("query student: %w", err)
	}

	rows, err := st.QueryAttempts().
		Order(ent.Desc(attempt.FieldCreatedAt), ent.Desc(attempt.FieldID)).
		All(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("query attempts: %w", err)
	}

	out := make([]Attempt, len(rows))
	for i, a := range rows {
		out[i] = *toAttempt(a, st.ID)
	}
	return toStudent(st), out, nil
}

func (r *attemptRepo) ClassResults(ctx context.Context, classID int, f ResultFilter) ([]Attempt, error) {
	preds := []predicate.Attempt{
		attempt.HasStudentWith(student.HasClassWith(class.ID(classID))),
	}
	if !f.From.IsZero() {
		preds = append(preds, attempt.CreatedAtGTE(startOfDay(f.From)))
	}
	if !f.To.IsZero() {
		preds = append(preds, attempt.CreatedAtLT(startOfDay(f.To).AddDate(0, 0, 1)))
	}
	if f.MinScore != nil {
		preds = append(preds, attempt.ScoreGTE(*f.MinScore))
	}
	if f.MaxScore != nil {
		preds = append(preds, attempt.ScoreLTE(*f.MaxScore))
	}
	if q := strings.TrimSpace(f.Search); q != "" {
		preds = append(preds, attempt.Or(
			attempt.StudentNameContainsFold(q),
			attempt.StudentEmailContainsFold(q),
		))
	}

	rows, err := r.client.Attempt.Query().
		Where(preds...).
		WithStudent().
		Order(ent.Desc(attempt.FieldCreatedAt), ent.Desc(attempt.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query class results: %w", err)
	}
	return toAttempts(rows), nil
}

func (r *attemptRepo) Recent(ctx context.Context, limit int) ([]Attempt, error) {
	q := r.client.Attempt.Query().
		WithStudent().
		Order(ent.Desc(attempt.FieldCreatedAt), ent.Desc(attempt.FieldID))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent attempts: %w", err)
	}
	return toAttempts(rows), nil
}

// upsertStudent finds the student by email, creating it when missing and
// refreshing a non-empty name otherwise.
func upsertStudent(ctx context.Context, client *ent.Client, email, name string) (*ent.Student, error) {
	st, err := client.Student.Query().
		Where(student.Email(email)).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		st, err = client.Student.Create().
			SetEmail(email).
			SetName(name).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create student: %w", err)
		}
		return st, nil
	case err != nil:
		return nil, fmt.Errorf("query student: %w", err)
	}

	if name != "" && name != st.Name {
		st, err = st.Update().SetName(name).Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("update student name: %w", err)
		}
	}
	return st, nil
}

// startOfDay truncates t to midnight UTC. Attempt times are stored in UTC.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func orEmptyArray(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 {
		return json.RawMessage("[]")
	}
	return raw
}

func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return fmt.Errorf("%w (rollback: %v)", err, rerr)
	}
	return err
}

func toAttempts(rows []*ent.Attempt) []Attempt {
	out := make([]Attempt, len(rows))
	for i, a := range rows {
		var studentID int
		if a.Edges.Student != nil {
			studentID = a.Edges.Student.ID
		}
		out[i] = *toAttempt(a, studentID)
	}
	return out
}

func toAttempt(a *ent.Attempt, studentID int) *Attempt {
	return &Attempt{
		ID:           a.ID,
		StudentID:    studentID,
		SessionID:    a.SessionID,
		StudentEmail: a.StudentEmail,
		StudentName:  a.StudentName,
		Score:        a.Score,
		Percent:      a.Percent,
		Answers:      a.Answers,
		Incorrect:    a.Incorrect,
		CreatedAt:    a.CreatedAt,
	}
}

func toStudent(s *ent.Student) *Student {
	out := &Student{
		ID:        s.ID,
		Email:     s.Email,
		Name:      s.Name,
		CreatedAt: s.CreatedAt,
	}
	if s.Edges.Class != nil {
		out.ClassID = s.Edges.Class.ID
	}
	return out
}
