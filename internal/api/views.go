package api

import (
	"encoding/json"
	"time"

	"github.com/abhisek/nmt/internal/store"
)

type attemptView struct {
	ID        int             `json:"id"`
	SessionID string          `json:"session_id,omitempty"`
	Email     string          `json:"email"`
	Name      string          `json:"name"`
	Score     int             `json:"score"`
	Percent   int             `json:"percent"`
	Answers   json.RawMessage `json:"answers"`
	Incorrect json.RawMessage `json:"incorrect"`
	CreatedAt time.Time       `json:"created_at"`
}

type studentView struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	ClassID   int       `json:"class_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type classView struct {
	ID            int        `json:"id"`
	Name          string     `json:"name"`
	JoinCode      string     `json:"join_code,omitempty"`
	CodeExpiresAt *time.Time `json:"code_expires_at,omitempty"`
	Students      int        `json:"students"`
	CreatedAt     time.Time  `json:"created_at"`
}

type submissionView struct {
	ID         int             `json:"id"`
	Status     string          `json:"status"`
	Topic      string          `json:"topic"`
	Kind       string          `json:"kind"`
	Record     json.RawMessage `json:"record"`
	Source     string          `json:"source"`
	Author     string          `json:"author,omitempty"`
	ReviewNote string          `json:"review_note,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	ReviewedAt *time.Time      `json:"reviewed_at,omitempty"`
}

func toAttemptView(a store.Attempt) attemptView {
	return attemptView{
		ID:        a.ID,
		SessionID: a.SessionID,
		Email:     a.StudentEmail,
		Name:      a.StudentName,
		Score:     a.Score,
		Percent:   a.Percent,
		Answers:   a.Answers,
		Incorrect: a.Incorrect,
		CreatedAt: a.CreatedAt,
	}
}

func toAttemptViews(as []store.Attempt) []attemptView {
	out := make([]attemptView, len(as))
	for i, a := range as {
		out[i] = toAttemptView(a)
	}
	return out
}

func toStudentView(s store.Student) studentView {
	return studentView{
		ID:        s.ID,
		Email:     s.Email,
		Name:      s.Name,
		ClassID:   s.ClassID,
		CreatedAt: s.CreatedAt,
	}
}

func toClassView(c store.Class) classView {
	return classView{
		ID:            c.ID,
		Name:          c.Name,
		JoinCode:      c.JoinCode,
		CodeExpiresAt: c.CodeExpiresAt,
		Students:      c.Students,
		CreatedAt:     c.CreatedAt,
	}
}

func toSubmissionView(s store.Submission) submissionView {
	return submissionView{
		ID:         s.ID,
		Status:     s.Status,
		Topic:      s.Topic,
		Kind:       s.Kind,
		Record:     s.Record,
		Source:     s.Source,
		Author:     s.Author,
		ReviewNote: s.ReviewNote,
		CreatedAt:  s.CreatedAt,
		ReviewedAt: s.ReviewedAt,
	}
}
