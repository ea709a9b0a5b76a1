package pool

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/abhisek/nmt/internal/question"
	"github.com/abhisek/nmt/internal/store"
)

const poolJSON = `[
  {"id": 1, "topic": "Числа і вирази", "question": "2+2?",
   "options": [{"label": "А", "text": "3"}, {"label": "Б", "text": "4"}],
   "answer": [{"label": "Б", "text": "4"}]},
  {"id": 2, "topic": "Планіметрія", "question": "Match",
   "statements": {"1": "a", "2": "b"}, "endings": {"А": "x", "Б": "y"},
   "answer": {"1": "Б", "2": "А"}},
  {"id": 3, "topic": "Параметр", "question": "x?", "answer_format": "decimal", "answer": "2,5"},
  {"question": "no id"}
]`

const poolYAML = `
- id: 10
  topic: Стереометрія
  question: Об'єм?
  answer_format: decimal
  answer: "12"
- id: 11
  question: Оберіть
  options:
    - label: А
      text: один
    - label: Б
      text: два
  answer:
    - label: А
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func kinds(qs []question.Question) map[int]question.Kind {
	out := make(map[int]question.Kind, len(qs))
	for _, q := range qs {
		out[q.ID] = q.Kind
	}
	return out
}

func TestFileSourceJSON(t *testing.T) {
	src := NewFileSource(writeFile(t, "pool.json", poolJSON), zap.NewNop())
	qs, err := src.Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, map[int]question.Kind{
		1: question.KindSingle,
		2: question.KindMatching,
		3: question.KindShort,
	}, kinds(qs))
}

func TestFileSourceYAML(t *testing.T) {
	src := NewFileSource(writeFile(t, "pool.yaml", poolYAML), nil)
	qs, err := src.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, qs, 2)

	assert.Equal(t, question.KindShort, qs[0].Kind)
	assert.Equal(t, "12", qs[0].Short.Answer)
	assert.Equal(t, question.KindSingle, qs[1].Kind)
	assert.Len(t, qs[1].Single.Options, 2)
}

func TestReadFileConvertsYAML(t *testing.T) {
	data, err := ReadFile(writeFile(t, "pool.yml", poolYAML))
	require.NoError(t, err)

	var elems []map[string]any
	require.NoError(t, json.Unmarshal(data, &elems))
	require.Len(t, elems, 2)
	assert.Equal(t, "decimal", elems[0]["answer_format"])

	raw := `[{"id": 1}]`
	data, err = ReadFile(writeFile(t, "pool.json", raw))
	require.NoError(t, err)
	assert.Equal(t, raw, string(data))
}

func TestFileSourceUnavailable(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"missing", filepath.Join(t.TempDir(), "nope.json")},
		{"not an array", writeFile(t, "obj.json", `{"id": 1}`)},
		{"bad yaml", writeFile(t, "bad.yml", "- id: [")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFileSource(tt.path, nil).Fetch(context.Background())
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnavailable), "err = %v", err)

			var ue *UnavailableError
			require.True(t, errors.As(err, &ue))
			assert.Equal(t, tt.path, ue.Source)
		})
	}
}

func TestHTTPSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != QuestionsPath {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(poolJSON))
	}))
	defer srv.Close()

	qs, err := NewHTTPSource(srv.URL+"/", zap.NewNop()).Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, qs, 3)
}

func TestHTTPSourceUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewHTTPSource(srv.URL, nil).Fetch(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)

	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer slow.Close()
	_, err = NewHTTPSource(slow.URL, nil).Fetch(ctx)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestBankSource(t *testing.T) {
	s, err := store.Open("file:TestBankSource?mode=memory&cache=shared")
	require.NoError(t, err)
	defer s.Close()

	repo := s.SubmissionRepo()
	ctx := context.Background()
	sub, err := repo.Submit(ctx, store.Submission{
		Kind:   "short",
		Record: json.RawMessage(`{"id": 500, "answer_format": "decimal", "answer": "7"}`),
	})
	require.NoError(t, err)
	_, err = repo.Submit(ctx, store.Submission{Record: json.RawMessage(`{"id": 501}`)})
	require.NoError(t, err)

	src := NewBankSource(repo, nil)
	qs, err := src.Fetch(ctx)
	require.NoError(t, err)
	assert.Empty(t, qs, "pending submissions are not served")

	_, err = repo.Review(ctx, sub.ID, true, "", time.Now())
	require.NoError(t, err)
	qs, err = src.Fetch(ctx)
	require.NoError(t, err)
	require.Len(t, qs, 1)
	assert.Equal(t, 500, qs[0].ID)
	assert.Equal(t, question.KindShort, qs[0].Kind)
}

func TestMerge(t *testing.T) {
	a := Static{{ID: 1, Text: "from a"}, {ID: 2}}
	b := Static{{ID: 2, Text: "from b"}, {ID: 3}}

	qs, err := Merge(a, b).Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, qs, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{qs[0].ID, qs[1].ID, qs[2].ID})
	assert.Empty(t, qs[1].Text, "earlier source wins on duplicate id")

	failing := NewFileSource(filepath.Join(t.TempDir(), "missing.json"), nil)
	_, err = Merge(a, failing).Fetch(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}
