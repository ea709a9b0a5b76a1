package store

import (
	"context"
	"errors"
	"testing"
	"time"
)

var rosterNow = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func fixedCodes(codes ...string) func() string {
	i := 0
	return func() string {
		c := codes[min(i, len(codes)-1)]
		i++
		return c
	}
}

func TestCreateClassIssuesCode(t *testing.T) {
	s := openTestStore(t)
	repo := s.RosterRepo()

	c, err := repo.CreateClass(context.Background(), " 11-А ", rosterNow)
	if err != nil {
		t.Fatalf("CreateClass: %v", err)
	}
	if c.Name != "11-А" {
		t.Errorf("Name = %q, want trimmed", c.Name)
	}
	if len(c.JoinCode) != 6 {
		t.Errorf("JoinCode = %q, want 6 digits", c.JoinCode)
	}
	if c.CodeExpiresAt == nil || !c.CodeExpiresAt.Equal(rosterNow.Add(JoinCodeValidity)) {
		t.Errorf("CodeExpiresAt = %v", c.CodeExpiresAt)
	}

	if _, err := repo.CreateClass(context.Background(), "  ", rosterNow); err == nil {
		t.Error("expected error for blank class name")
	}
}

func TestEnsureJoinCode(t *testing.T) {
	s := openTestStore(t)
	repo := &rosterRepo{client: s.Client(), newCode: fixedCodes("111111", "222222")}
	ctx := context.Background()

	c, _ := repo.CreateClass(ctx, "A", rosterNow)
	if c.JoinCode != "111111" {
		t.Fatalf("JoinCode = %q", c.JoinCode)
	}

	same, _ := repo.EnsureJoinCode(ctx, c.ID, rosterNow.Add(5*time.Minute))
	if same.JoinCode != "111111" {
		t.Errorf("valid code replaced: %q", same.JoinCode)
	}

	fresh, _ := repo.EnsureJoinCode(ctx, c.ID, rosterNow.Add(20*time.Minute))
	if fresh.JoinCode != "222222" {
		t.Errorf("expired code kept: %q", fresh.JoinCode)
	}
}

func TestRegenerateAvoidsActiveCodes(t *testing.T) {
	s := openTestStore(t)
	repo := &rosterRepo{client: s.Client(), newCode: fixedCodes("111111", "111111", "333333")}
	ctx := context.Background()

	a, _ := repo.CreateClass(ctx, "A", rosterNow)
	b, err := repo.CreateClass(ctx, "B", rosterNow)
	if err != nil {
		t.Fatalf("CreateClass: %v", err)
	}
	if a.JoinCode == b.JoinCode {
		t.Errorf("two classes share active code %q", a.JoinCode)
	}
	if b.JoinCode != "333333" {
		t.Errorf("B code = %q, want 333333", b.JoinCode)
	}
}

func TestJoin(t *testing.T) {
	s := openTestStore(t)
	repo := &rosterRepo{client: s.Client(), newCode: fixedCodes("111111", "222222")}
	ctx := context.Background()

	a, _ := repo.CreateClass(ctx, "A", rosterNow)
	b, _ := repo.CreateClass(ctx, "B", rosterNow)

	joined, err := repo.Join(ctx, a.JoinCode, "ira@example.com", "Ірина", rosterNow.Add(time.Minute))
	if err != nil {
		t.Fatalf("Join: %v", err)
	}
	if joined.ID != a.ID || joined.Students != 1 {
		t.Errorf("joined = %+v", joined)
	}

	// Joining another class moves the student.
	if _, err := repo.Join(ctx, b.JoinCode, "ira@example.com", "", rosterNow.Add(time.Minute)); err != nil {
		t.Fatalf("Join B: %v", err)
	}
	inA, _ := repo.Students(ctx, a.ID)
	inB, _ := repo.Students(ctx, b.ID)
	if len(inA) != 0 || len(inB) != 1 {
		t.Fatalf("roster A=%d B=%d, want 0/1", len(inA), len(inB))
	}
	if inB[0].Name != "Ірина" {
		t.Errorf("blank name overwrote stored name: %q", inB[0].Name)
	}

	if _, err := repo.Join(ctx, a.JoinCode, "x@example.com", "", rosterNow.Add(time.Hour)); !errors.Is(err, ErrInvalidJoinCode) {
		t.Errorf("expired code err = %v, want ErrInvalidJoinCode", err)
	}
	if _, err := repo.Join(ctx, "999999", "x@example.com", "", rosterNow); !errors.Is(err, ErrInvalidJoinCode) {
		t.Errorf("unknown code err = %v, want ErrInvalidJoinCode", err)
	}
}

func TestAddRemoveStudent(t *testing.T) {
	s := openTestStore(t)
	repo := s.RosterRepo()
	ctx := context.Background()

	c, _ := repo.CreateClass(ctx, "A", rosterNow)
	st, err := repo.AddStudent(ctx, c.ID, "petro@example.com", "Петро")
	if err != nil {
		t.Fatalf("AddStudent: %v", err)
	}
	if st.ClassID != c.ID {
		t.Errorf("ClassID = %d, want %d", st.ClassID, c.ID)
	}

	if _, err := repo.AddStudent(ctx, c.ID, " ", "x"); !errors.Is(err, ErrEmailRequired) {
		t.Errorf("blank email err = %v, want ErrEmailRequired", err)
	}
	if _, err := repo.AddStudent(ctx, 999, "a@b.c", "x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown class err = %v, want ErrNotFound", err)
	}

	if err := repo.RemoveStudent(ctx, c.ID, st.ID); err != nil {
		t.Fatalf("RemoveStudent: %v", err)
	}
	students, _ := repo.Students(ctx, c.ID)
	if len(students) != 0 {
		t.Errorf("students after remove = %d, want 0", len(students))
	}

	classes, _ := repo.Classes(ctx)
	if len(classes) != 1 || classes[0].Students != 0 {
		t.Errorf("classes = %+v", classes)
	}
}
