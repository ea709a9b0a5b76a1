package store

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/abhisek/nmt/ent"
	"github.com/abhisek/nmt/ent/class"
	"github.com/abhisek/nmt/ent/student"
)

const (
	// JoinCodeValidity is how long a class join code stays valid.
	JoinCodeValidity = 15 * time.Minute

	// joinCodeAttempts bounds the search for a code not used by another
	// class; the last candidate is used regardless.
	joinCodeAttempts = 20
)

// rosterRepo implements RosterRepo using the ent client.
type rosterRepo struct {
	client  *ent.Client
	newCode func() string
}

// randomJoinCode returns a 6-digit code without a leading zero.
func randomJoinCode() string {
	return fmt.Sprintf("%d", 100000+rand.IntN(900000))
}

func (r *rosterRepo) CreateClass(ctx context.Context, name string, now time.Time) (*Class, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("class name is required")
	}
	c, err := r.client.Class.Create().
		SetName(name).
		SetCreatedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create class: %w", err)
	}
	return r.EnsureJoinCode(ctx, c.ID, now)
}

func (r *rosterRepo) Classes(ctx context.Context) ([]Class, error) {
	rows, err := r.client.Class.Query().
		WithStudents().
		Order(ent.Desc(class.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query classes: %w", err)
	}
	out := make([]Class, len(rows))
	for i, c := range rows {
		out[i] = *toClass(c)
	}
	return out, nil
}

func (r *rosterRepo) Class(ctx context.Context, id int) (*Class, error) {
	c, err := r.client.Class.Query().
		Where(class.ID(id)).
		WithStudents().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("class %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("query class: %w", err)
	}
	return toClass(c), nil
}

func (r *rosterRepo) EnsureJoinCode(ctx context.Context, classID int, now time.Time) (*Class, error) {
	c, err := r.Class(ctx, classID)
	if err != nil {
		return nil, err
	}
	if c.JoinCode != "" && c.CodeExpiresAt != nil && c.CodeExpiresAt.After(now) {
		return c, nil
	}
	return r.RegenerateJoinCode(ctx, classID, now)
}

func (r *rosterRepo) RegenerateJoinCode(ctx context.Context, classID int, now time.Time) (*Class, error) {
	var code string
	for i := 0; i < joinCodeAttempts; i++ {
		code = r.newCode()
		taken, err := r.client.Class.Query().
			Where(
				class.JoinCode(code),
				class.JoinCodeExpiresAtGT(now),
				class.IDNEQ(classID),
			).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("check join code: %w", err)
		}
		if !taken {
			break
		}
	}

	err := r.client.Class.UpdateOneID(classID).
		SetJoinCode(code).
		SetJoinCodeExpiresAt(now.Add(JoinCodeValidity)).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("class %d: %w", classID, ErrNotFound)
		}
		return nil, fmt.Errorf("update join code: %w", err)
	}
	return r.Class(ctx, classID)
}

func (r *rosterRepo) Join(ctx context.Context, code, email, name string, now time.Time) (*Class, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrInvalidJoinCode
	}
	c, err := r.client.Class.Query().
		Where(class.JoinCode(code), class.JoinCodeExpiresAtGT(now)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrInvalidJoinCode
		}
		return nil, fmt.Errorf("query join code: %w", err)
	}
	if _, err := r.AddStudent(ctx, c.ID, email, name); err != nil {
		return nil, err
	}
	return r.Class(ctx, c.ID)
}

func (r *rosterRepo) AddStudent(ctx context.Context, classID int, email, name string) (*Student, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrEmailRequired
	}
	exists, err := r.client.Class.Query().Where(class.ID(classID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("query class: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("class %d: %w", classID, ErrNotFound)
	}

	st, err := upsertStudent(ctx, r.client, email, strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}
	st, err = st.Update().SetClassID(classID).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("assign class: %w", err)
	}
	out := toStudent(st)
	out.ClassID = classID
	return out, nil
}

func (r *rosterRepo) RemoveStudent(ctx context.Context, classID, studentID int) error {
	_, err := r.client.Student.Update().
		Where(student.ID(studentID), student.HasClassWith(class.ID(classID))).
		ClearClass().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("remove student: %w", err)
	}
	return nil
}

func (r *rosterRepo) Students(ctx context.Context, classID int) ([]Student, error) {
	rows, err := r.client.Student.Query().
		Where(student.HasClassWith(class.ID(classID))).
		Order(ent.Asc(student.FieldName), ent.Asc(student.FieldEmail)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query students: %w", err)
	}
	out := make([]Student, len(rows))
	for i, s := range rows {
		out[i] = *toStudent(s)
		out[i].ClassID = classID
	}
	return out, nil
}

func toClass(c *ent.Class) *Class {
	return &Class{
		ID:            c.ID,
		Name:          c.Name,
		JoinCode:      c.JoinCode,
		CodeExpiresAt: c.JoinCodeExpiresAt,
		CreatedAt:     c.CreatedAt,
		Students:      len(c.Edges.Students),
	}
}
