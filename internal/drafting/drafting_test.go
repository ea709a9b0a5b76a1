package drafting

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/nmt/internal/llm"
	"github.com/abhisek/nmt/internal/question"
	"github.com/abhisek/nmt/internal/store"
)

func openStore(t *testing.T) *store.Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

const singleDraft = `{
	"question": "Обчисліть значення виразу",
	"latex": "2^3 + 1",
	"options": [
		{"label":"А","text":"7"},{"label":"Б","text":"8"},{"label":"В","text":"9"},
		{"label":"Г","text":"10"},{"label":"Д","text":"12"}
	],
	"statements": [], "endings": [], "pairs": [],
	"answer": "В"
}`

const matchingDraft = `{
	"question": "Установіть відповідність між функцією та її областю визначення",
	"latex": "",
	"options": [],
	"statements": [{"label":"1","text":"y = √x"},{"label":"2","text":"y = 1/x"},{"label":"3","text":"y = ln x"}],
	"endings": [
		{"label":"А","text":"[0; +∞)"},{"label":"Б","text":"(0; +∞)"},{"label":"В","text":"(-∞; 0)∪(0; +∞)"},
		{"label":"Г","text":"(-∞; +∞)"},{"label":"Д","text":"[1; +∞)"}
	],
	"answer": "",
	"pairs": [{"statement":"1","label":"А"},{"statement":"2","label":"В"},{"statement":"3","label":"Б"}]
}`

const shortDraft = `{
	"question": "Знайдіть корінь рівняння 2x - 5 = 0",
	"latex": "",
	"options": [], "statements": [], "endings": [], "pairs": [],
	"answer": "2,5"
}`

func TestDraft_Kinds(t *testing.T) {
	tests := []struct {
		kind  question.Kind
		draft string
	}{
		{question.KindSingle, singleDraft},
		{question.KindMatching, matchingDraft},
		{question.KindShort, shortDraft},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			s := openStore(t)
			model := llm.NewScripted(llm.Reply{Content: json.RawMessage(tt.draft)})
			d := New(model, s.SubmissionRepo(), DefaultConfig(), nil)

			sub, err := d.Draft(context.Background(), Input{Topic: "Алгебра", Kind: tt.kind, Author: "teacher@school.ua"})
			require.NoError(t, err)
			assert.Equal(t, store.StatusPending, sub.Status)
			assert.Equal(t, SourceLLM, sub.Source)
			assert.Equal(t, string(tt.kind), sub.Kind)

			var rec question.Record
			require.NoError(t, json.Unmarshal(sub.Record, &rec))
			assert.Equal(t, 100000, rec.ID)
			assert.Equal(t, "Алгебра", rec.Topic)
			assert.Equal(t, tt.kind, question.Classify(rec))
			require.NoError(t, question.ValidateRecord(sub.Record))

			require.Len(t, model.Requests, 1)
			assert.Equal(t, DraftSchema, model.Requests[0].Schema)
			assert.Equal(t, Purpose, model.Requests[0].Purpose)
			assert.Contains(t, model.Requests[0].Prompt, "Алгебра")
		})
	}
}

func TestDraft_SingleKeyCarriesText(t *testing.T) {
	s := openStore(t)
	model := llm.NewScripted(llm.Reply{Content: json.RawMessage(singleDraft)})
	sub, err := New(model, s.SubmissionRepo(), DefaultConfig(), nil).
		Draft(context.Background(), Input{Topic: "Алгебра", Kind: question.KindSingle})
	require.NoError(t, err)

	var rec question.Record
	require.NoError(t, json.Unmarshal(sub.Record, &rec))
	q := question.Decode(rec)
	require.NotNil(t, q.Single)
	assert.Equal(t, "В", q.Single.Answer[0].Label)
	assert.Equal(t, "9", q.Single.Answer[0].Text)
}

func TestDraft_IDsFollowBank(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	_, err := s.SubmissionRepo().Submit(ctx, store.Submission{
		Topic:  "Геометрія",
		Kind:   "short",
		Record: json.RawMessage(`{"id":100041,"answer_format":"decimal","answer":"3"}`),
	})
	require.NoError(t, err)

	model := llm.NewScripted(llm.Reply{Content: json.RawMessage(shortDraft)})
	sub, err := New(model, s.SubmissionRepo(), DefaultConfig(), nil).
		Draft(ctx, Input{Topic: "Алгебра", Kind: question.KindShort})
	require.NoError(t, err)

	var rec question.Record
	require.NoError(t, json.Unmarshal(sub.Record, &rec))
	assert.Equal(t, 100042, rec.ID)
}

func TestDraft_RetriesRejectedDraft(t *testing.T) {
	s := openStore(t)
	bad := strings.Replace(shortDraft, `"2,5"`, `"два з половиною"`, 1)
	model := llm.NewScripted(
		llm.Reply{Content: json.RawMessage(bad)},
		llm.Reply{Content: json.RawMessage(shortDraft)},
	)
	sub, err := New(model, s.SubmissionRepo(), DefaultConfig(), nil).
		Draft(context.Background(), Input{Topic: "Алгебра", Kind: question.KindShort})
	require.NoError(t, err)
	assert.Equal(t, 2, model.Calls())
	assert.NotZero(t, sub.ID)
}

func TestDraft_GivesUpAfterMaxAttempts(t *testing.T) {
	s := openStore(t)
	// A single-choice draft whose answer is not among the options.
	bad := strings.Replace(singleDraft, `"answer": "В"`, `"answer": "Е"`, 1)
	model := llm.NewScripted(
		llm.Reply{Content: json.RawMessage(bad)},
		llm.Reply{Content: json.RawMessage(bad)},
	)
	_, err := New(model, s.SubmissionRepo(), DefaultConfig(), nil).
		Draft(context.Background(), Input{Topic: "Алгебра", Kind: question.KindSingle})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "single", verr.Check)
	assert.Equal(t, 2, model.Calls())

	subs, err := s.SubmissionRepo().List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, subs)
}

func TestDraft_ProviderErrorNotRetried(t *testing.T) {
	s := openStore(t)
	model := llm.NewScripted(llm.Reply{Err: errors.New("quota")})
	_, err := New(model, s.SubmissionRepo(), DefaultConfig(), nil).
		Draft(context.Background(), Input{Topic: "Алгебра", Kind: question.KindShort})
	require.Error(t, err)
	assert.Equal(t, 1, model.Calls())
}

func TestDraft_RejectsBadInput(t *testing.T) {
	s := openStore(t)
	d := New(llm.NewScripted(), s.SubmissionRepo(), DefaultConfig(), nil)

	_, err := d.Draft(context.Background(), Input{Kind: question.KindShort})
	assert.Error(t, err)
	_, err = d.Draft(context.Background(), Input{Topic: "Алгебра", Kind: "essay"})
	assert.Error(t, err)
}
