package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func intPtr(n int) *int { return &n }

func TestRecordCreatesStudent(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	a, err := repo.Record(ctx, AttemptData{
		SessionID: "s1",
		Email:     " olena@example.com ",
		Name:      "Олена",
		Score:     24,
		Percent:   75,
		Answers:   json.RawMessage(`[{"index":1}]`),
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if a.StudentEmail != "olena@example.com" || a.StudentID == 0 {
		t.Errorf("attempt = %+v", a)
	}
	if string(a.Incorrect) != "[]" {
		t.Errorf("Incorrect = %s, want []", a.Incorrect)
	}

	// Second attempt reuses the student and refreshes the name.
	if _, err := repo.Record(ctx, AttemptData{Email: "olena@example.com", Name: "Олена К.", Score: 30, Percent: 94}); err != nil {
		t.Fatalf("Record 2: %v", err)
	}
	st, attempts, err := repo.ByStudent(ctx, "olena@example.com")
	if err != nil {
		t.Fatalf("ByStudent: %v", err)
	}
	if st.Name != "Олена К." {
		t.Errorf("Name = %q, want refreshed", st.Name)
	}
	if len(attempts) != 2 {
		t.Fatalf("attempts = %d, want 2", len(attempts))
	}
	if attempts[0].Score != 30 {
		t.Errorf("newest attempt score = %d, want 30", attempts[0].Score)
	}

	n, _ := s.Client().Student.Query().Count(ctx)
	if n != 1 {
		t.Errorf("students = %d, want 1", n)
	}
}

func TestRecordRequiresEmail(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.AttemptRepo().Record(context.Background(), AttemptData{Score: 1}); !errors.Is(err, ErrEmailRequired) {
		t.Errorf("err = %v, want ErrEmailRequired", err)
	}
}

func TestByStudentNotFound(t *testing.T) {
	s := openTestStore(t)
	if _, _, err := s.AttemptRepo().ByStudent(context.Background(), "nobody@example.com"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestClassResultsFilters(t *testing.T) {
	s := openTestStore(t)
	roster := s.RosterRepo()
	attempts := s.AttemptRepo()
	ctx := context.Background()

	c, _ := roster.CreateClass(ctx, "A", time.Now())
	other, _ := roster.CreateClass(ctx, "B", time.Now())
	_, _ = roster.AddStudent(ctx, c.ID, "ivan@example.com", "Іван")
	_, _ = roster.AddStudent(ctx, c.ID, "maria@example.com", "Марія")
	_, _ = roster.AddStudent(ctx, other.ID, "oleh@example.com", "Олег")

	for _, d := range []AttemptData{
		{Email: "ivan@example.com", Name: "Іван", Score: 10, Percent: 31},
		{Email: "maria@example.com", Name: "Марія", Score: 28, Percent: 88},
		{Email: "ivan@example.com", Name: "Іван", Score: 20, Percent: 63},
		{Email: "oleh@example.com", Name: "Олег", Score: 32, Percent: 100},
	} {
		if _, err := attempts.Record(ctx, d); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	today := time.Now().UTC()
	tests := []struct {
		name   string
		filter ResultFilter
		want   int
	}{
		{"all", ResultFilter{}, 3},
		{"min score", ResultFilter{MinScore: intPtr(20)}, 2},
		{"max score", ResultFilter{MaxScore: intPtr(19)}, 1},
		{"score range", ResultFilter{MinScore: intPtr(15), MaxScore: intPtr(25)}, 1},
		{"search name", ResultFilter{Search: "Марі"}, 1},
		{"search email", ResultFilter{Search: "IVAN@"}, 2},
		{"today inclusive", ResultFilter{From: today, To: today}, 3},
		{"from tomorrow", ResultFilter{From: today.AddDate(0, 0, 1)}, 0},
		{"until yesterday", ResultFilter{To: today.AddDate(0, 0, -1)}, 0},
	}
	for _, tc := range tests {
		got, err := attempts.ClassResults(ctx, c.ID, tc.filter)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if len(got) != tc.want {
			t.Errorf("%s: results = %d, want %d", tc.name, len(got), tc.want)
		}
	}

	all, _ := attempts.ClassResults(ctx, c.ID, ResultFilter{})
	for i := 1; i < len(all); i++ {
		if all[i].CreatedAt.After(all[i-1].CreatedAt) {
			t.Errorf("results not newest first at %d", i)
		}
	}

	recent, _ := attempts.Recent(ctx, 2)
	if len(recent) != 2 || recent[0].StudentEmail != "oleh@example.com" {
		t.Errorf("recent = %+v", recent)
	}
}
