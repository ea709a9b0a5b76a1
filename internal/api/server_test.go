package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/nmt/internal/config"
	"github.com/abhisek/nmt/internal/pool"
	"github.com/abhisek/nmt/internal/question"
	"github.com/abhisek/nmt/internal/scoring"
	"github.com/abhisek/nmt/internal/store"
)

type testEnv struct {
	srv   *httptest.Server
	store *store.Store
}

func newTestEnv(t *testing.T, src pool.Source, cfg config.ServerConfig) *testEnv {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	s, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	if src == nil {
		src = pool.Static{}
	}
	api := New(cfg, Deps{
		Pool:        src,
		Attempts:    s.AttemptRepo(),
		Roster:      s.RosterRepo(),
		Submissions: s.SubmissionRepo(),
	})
	srv := httptest.NewServer(api.Handler())
	t.Cleanup(srv.Close)
	return &testEnv{srv: srv, store: s}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) (*http.Response, []byte) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, e.srv.URL+path, rd)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func defaultServerConfig() config.ServerConfig {
	return config.Default().Server
}

func TestQuestions(t *testing.T) {
	src := pool.Static{
		question.Decode(question.Record{ID: 7, Topic: "Параметр", AnswerFormat: "decimal", Answer: json.RawMessage(`"3"`)}),
	}
	env := newTestEnv(t, src, defaultServerConfig())

	resp, body := env.do(t, http.MethodGet, "/api/questions", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	records, rejected, err := question.ParseRecords(body)
	require.NoError(t, err)
	assert.Empty(t, rejected)
	require.Len(t, records, 1)
	assert.Equal(t, 7, records[0].ID)

	// The HTTP pool source reads what this endpoint serves.
	qs, err := pool.NewHTTPSource(env.srv.URL, nil).Fetch(t.Context())
	require.NoError(t, err)
	require.Len(t, qs, 1)
	assert.Equal(t, question.KindShort, qs[0].Kind)
}

func TestQuestionsUnavailable(t *testing.T) {
	missing := pool.NewFileSource(t.TempDir()+"/none.json", nil)
	env := newTestEnv(t, missing, defaultServerConfig())

	resp, _ := env.do(t, http.MethodGet, "/api/questions", nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	_, metrics := env.do(t, http.MethodGet, "/metrics", nil)
	assert.Contains(t, string(metrics), `nmt_pool_fetch_total{result="error"} 1`)
}

func TestRecordAttempt(t *testing.T) {
	env := newTestEnv(t, nil, defaultServerConfig())

	report := scoring.Report{
		SessionID:    "s-1",
		StudentName:  "Марко",
		StudentEmail: "marko@example.com",
		Score:        24,
		Percent:      75,
		Answers:      []scoring.Answer{{Index: 1, Kind: question.KindSingle, Points: 1, IsCorrect: true}},
		Incorrect:    []scoring.Incorrect{},
	}
	resp, body := env.do(t, http.MethodPost, "/api/attempts", report)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	var got attemptView
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "marko@example.com", got.Email)
	assert.Equal(t, 24, got.Score)

	resp, body = env.do(t, http.MethodGet, "/api/students/marko@example.com/attempts", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var byStudent struct {
		Student  studentView   `json:"student"`
		Attempts []attemptView `json:"attempts"`
	}
	require.NoError(t, json.Unmarshal(body, &byStudent))
	assert.Equal(t, "Марко", byStudent.Student.Name)
	require.Len(t, byStudent.Attempts, 1)
	assert.JSONEq(t, `[{"index":1,"questionText":"","type":"single","points":1,"userAnswer":null,"correctAnswer":"","isCorrect":true,"options":null}]`,
		string(byStudent.Attempts[0].Answers))

	_, metrics := env.do(t, http.MethodGet, "/metrics", nil)
	assert.Contains(t, string(metrics), "nmt_attempts_recorded_total 1")

	resp, _ = env.do(t, http.MethodGet, "/api/students/nobody@example.com/attempts", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRecordAttemptValidation(t *testing.T) {
	env := newTestEnv(t, nil, defaultServerConfig())

	tests := []struct {
		name string
		body any
	}{
		{"missing email", scoring.Report{Score: 3}},
		{"percent over 100", scoring.Report{StudentEmail: "a@b.c", Percent: 101}},
		{"not json", "nope"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := env.do(t, http.MethodPost, "/api/attempts", tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestAttemptRateLimit(t *testing.T) {
	cfg := defaultServerConfig()
	cfg.RateLimit = config.RateLimitConfig{PerMinute: 1, Burst: 2}
	env := newTestEnv(t, nil, cfg)

	report := scoring.Report{StudentEmail: "a@b.c"}
	var codes []int
	for i := 0; i < 3; i++ {
		resp, _ := env.do(t, http.MethodPost, "/api/attempts", report)
		codes = append(codes, resp.StatusCode)
	}
	assert.Equal(t, []int{http.StatusCreated, http.StatusCreated, http.StatusTooManyRequests}, codes)

	// Reads are not limited.
	resp, _ := env.do(t, http.MethodGet, "/api/attempts/recent", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestClassFlow(t *testing.T) {
	env := newTestEnv(t, nil, defaultServerConfig())

	resp, body := env.do(t, http.MethodPost, "/api/classes", map[string]string{"name": "11-Б"})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var class classView
	require.NoError(t, json.Unmarshal(body, &class))
	require.Len(t, class.JoinCode, 6)

	resp, body = env.do(t, http.MethodPost, "/api/classes/join", map[string]string{
		"code": class.JoinCode, "email": "ira@example.com", "name": "Іра",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	resp, _ = env.do(t, http.MethodPost, "/api/classes/join", map[string]string{
		"code": "000000", "email": "x@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	for _, score := range []int{12, 28} {
		resp, _ = env.do(t, http.MethodPost, "/api/attempts", scoring.Report{StudentEmail: "ira@example.com", Score: score})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	path := fmt.Sprintf("/api/classes/%d/results", class.ID)
	resp, body = env.do(t, http.MethodGet, path+"?min_score=20", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var results []attemptView
	require.NoError(t, json.Unmarshal(body, &results))
	require.Len(t, results, 1)
	assert.Equal(t, 28, results[0].Score)

	today := time.Now().UTC().Format(dateLayout)
	_, body = env.do(t, http.MethodGet, path+"?from="+today+"&to="+today+"&search=IRA", nil)
	require.NoError(t, json.Unmarshal(body, &results))
	assert.Len(t, results, 2)

	resp, _ = env.do(t, http.MethodGet, path+"?from=yesterday", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body = env.do(t, http.MethodGet, fmt.Sprintf("/api/classes/%d/students", class.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var students []studentView
	require.NoError(t, json.Unmarshal(body, &students))
	require.Len(t, students, 1)

	resp, _ = env.do(t, http.MethodDelete, fmt.Sprintf("/api/classes/%d/students/%d", class.ID, students[0].ID), nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = env.do(t, http.MethodGet, "/api/classes/999/", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp, _ = env.do(t, http.MethodGet, "/api/classes/abc/results", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSubmissionFlow(t *testing.T) {
	env := newTestEnv(t, nil, defaultServerConfig())

	resp, body := env.do(t, http.MethodPost, "/api/submissions", map[string]any{
		"record": json.RawMessage(`{"id": 42, "topic": "Параметр", "question": "a?", "answer_format": "decimal", "answer": "1"}`),
		"author": "teacher@example.com",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var sub submissionView
	require.NoError(t, json.Unmarshal(body, &sub))
	assert.Equal(t, "short", sub.Kind)
	assert.Equal(t, store.StatusPending, sub.Status)

	resp, _ = env.do(t, http.MethodPost, "/api/submissions", map[string]any{
		"record": json.RawMessage(`{"topic": "no id"}`),
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp, body = env.do(t, http.MethodPost, fmt.Sprintf("/api/submissions/%d/review", sub.ID), map[string]any{"approve": true})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	_, body = env.do(t, http.MethodGet, "/api/submissions?status=approved", nil)
	var subs []submissionView
	require.NoError(t, json.Unmarshal(body, &subs))
	assert.Len(t, subs, 1)

	resp, _ = env.do(t, http.MethodGet, "/api/submissions?status=weird", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCORSPreflight(t *testing.T) {
	cfg := defaultServerConfig()
	cfg.CORS.AllowedOrigins = []string{"https://school.example"}
	env := newTestEnv(t, nil, cfg)

	req, _ := http.NewRequest(http.MethodOptions, env.srv.URL+"/api/attempts", nil)
	req.Header.Set("Origin", "https://school.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "https://school.example", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestRateLimiterSweepsIdleVisitors(t *testing.T) {
	rl := newRateLimiter(60, 1)
	now := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	assert.True(t, rl.allow("a"))
	assert.False(t, rl.allow("a"))

	now = now.Add(time.Second)
	assert.True(t, rl.allow("a"), "one token per second at 60/min")

	now = now.Add(visitorTTL + time.Minute)
	rl.allow("b")
	assert.NotContains(t, rl.visitors, "a")
	assert.Contains(t, rl.visitors, "b")

	off := newRateLimiter(0, 0)
	for i := 0; i < 100; i++ {
		require.True(t, off.allow("x"))
	}
}
