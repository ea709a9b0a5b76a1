package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/abhisek/nmt/internal/exam"
	"github.com/abhisek/nmt/internal/pool"
	"github.com/abhisek/nmt/internal/question"
	"github.com/abhisek/nmt/internal/scoring"
	"github.com/abhisek/nmt/internal/store"
)

// maxBodyBytes caps request bodies; an attempt with full answers is a few
// tens of kilobytes.
const maxBodyBytes = 1 << 20

const dateLayout = "2006-01-02"

func (s *Server) handleQuestions(w http.ResponseWriter, r *http.Request) {
	qs, err := s.deps.Pool.Fetch(r.Context())
	s.metrics.observePoolFetch(err)
	if err != nil {
		s.log.Warn("pool fetch failed", zap.Error(err))
		if errors.Is(err, pool.ErrUnavailable) {
			writeErr(w, http.StatusServiceUnavailable, "question pool unavailable")
			return
		}
		writeErr(w, http.StatusInternalServerError, "fetch questions")
		return
	}
	records := make([]question.Record, len(qs))
	for i, q := range qs {
		records[i] = q.Record
	}
	writeJSON(w, http.StatusOK, records)
}

func (s *Server) handleRecordAttempt(w http.ResponseWriter, r *http.Request) {
	var report scoring.Report
	if !decodeBody(w, r, &report) {
		return
	}
	if strings.TrimSpace(report.StudentEmail) == "" {
		writeErr(w, http.StatusBadRequest, "email is required")
		return
	}
	if report.Score < 0 || report.Percent < 0 || report.Percent > 100 {
		writeErr(w, http.StatusBadRequest, "score out of range")
		return
	}

	data, err := exam.ToAttemptData(report)
	if err != nil {
		writeErr(w, http.StatusBadRequest, err.Error())
		return
	}
	a, err := s.deps.Attempts.Record(r.Context(), data)
	if err != nil {
		s.fail(w, "record attempt", err)
		return
	}
	s.metrics.observeAttempt(a.Score)
	s.log.Info("attempt recorded",
		zap.Int("id", a.ID),
		zap.String("email", a.StudentEmail),
		zap.Int("score", a.Score),
	)
	writeJSON(w, http.StatusCreated, toAttemptView(*a))
}

func (s *Server) handleRecentAttempts(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 500 {
			writeErr(w, http.StatusBadRequest, "limit must be 1..500")
			return
		}
		limit = n
	}
	attempts, err := s.deps.Attempts.Recent(r.Context(), limit)
	if err != nil {
		s.fail(w, "recent attempts", err)
		return
	}
	writeJSON(w, http.StatusOK, toAttemptViews(attempts))
}

func (s *Server) handleStudentAttempts(w http.ResponseWriter, r *http.Request) {
	email, err := url.PathUnescape(chi.URLParam(r, "email"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, "invalid email")
		return
	}
	st, attempts, err := s.deps.Attempts.ByStudent(r.Context(), email)
	if err != nil {
		s.fail(w, "student attempts", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"student":  toStudentView(*st),
		"attempts": toAttemptViews(attempts),
	})
}

func (s *Server) handleListClasses(w http.ResponseWriter, r *http.Request) {
	classes, err := s.deps.Roster.Classes(r.Context())
	if err != nil {
		s.fail(w, "list classes", err)
		return
	}
	out := make([]classView, len(classes))
	for i, c := range classes {
		out[i] = toClassView(c)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateClass(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeErr(w, http.StatusBadRequest, "name is required")
		return
	}
	c, err := s.deps.Roster.CreateClass(r.Context(), req.Name, s.now())
	if err != nil {
		s.fail(w, "create class", err)
		return
	}
	writeJSON(w, http.StatusCreated, toClassView(*c))
}

func (s *Server) handleGetClass(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(w, r, "classID")
	if !ok {
		return
	}
	c, err := s.deps.Roster.EnsureJoinCode(r.Context(), id, s.now())
	if err != nil {
		s.fail(w, "get class", err)
		return
	}
	writeJSON(w, http.StatusOK, toClassView(*c))
}

func (s *Server) handleRegenerateCode(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(w, r, "classID")
	if !ok {
		return
	}
	c, err := s.deps.Roster.RegenerateJoinCode(r.Context(), id, s.now())
	if err != nil {
		s.fail(w, "regenerate code", err)
		return
	}
	writeJSON(w, http.StatusOK, toClassView(*c))
}

func (s *Server) handleJoinClass(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code  string `json:"code"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	c, err := s.deps.Roster.Join(r.Context(), req.Code, req.Email, req.Name, s.now())
	if err != nil {
		s.fail(w, "join class", err)
		return
	}
	writeJSON(w, http.StatusOK, toClassView(*c))
}

func (s *Server) handleListStudents(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(w, r, "classID")
	if !ok {
		return
	}
	students, err := s.deps.Roster.Students(r.Context(), id)
	if err != nil {
		s.fail(w, "list students", err)
		return
	}
	out := make([]studentView, len(students))
	for i, st := range students {
		out[i] = toStudentView(st)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleAddStudent(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(w, r, "classID")
	if !ok {
		return
	}
	var req struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	st, err := s.deps.Roster.AddStudent(r.Context(), id, req.Email, req.Name)
	if err != nil {
		s.fail(w, "add student", err)
		return
	}
	writeJSON(w, http.StatusCreated, toStudentView(*st))
}

func (s *Server) handleRemoveStudent(w http.ResponseWriter, r *http.Request) {
	classID, ok := intParam(w, r, "classID")
	if !ok {
		return
	}
	studentID, ok := intParam(w, r, "studentID")
	if !ok {
		return
	}
	if err := s.deps.Roster.RemoveStudent(r.Context(), classID, studentID); err != nil {
		s.fail(w, "remove student", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleClassResults(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(w, r, "classID")
	if !ok {
		return
	}
	f, err := parseFilter(r)
	if err != nil {
		writeErr(w, http.StatusBadRequest, err.Error())
		return
	}
	attempts, err := s.deps.Attempts.ClassResults(r.Context(), id, f)
	if err != nil {
		s.fail(w, "class results", err)
		return
	}
	writeJSON(w, http.StatusOK, toAttemptViews(attempts))
}

func (s *Server) handleListSubmissions(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	switch status {
	case "", store.StatusPending, store.StatusApproved, store.StatusRejected:
	default:
		writeErr(w, http.StatusBadRequest, "unknown status")
		return
	}
	subs, err := s.deps.Submissions.List(r.Context(), status)
	if err != nil {
		s.fail(w, "list submissions", err)
		return
	}
	out := make([]submissionView, len(subs))
	for i, sub := range subs {
		out[i] = toSubmissionView(sub)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Record json.RawMessage `json:"record"`
		Author string          `json:"author"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if err := question.ValidateRecord(req.Record); err != nil {
		writeErr(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	var rec question.Record
	if err := json.Unmarshal(req.Record, &rec); err != nil {
		writeErr(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	sub, err := s.deps.Submissions.Submit(r.Context(), store.Submission{
		Topic:  rec.Topic,
		Kind:   string(question.Classify(rec)),
		Record: req.Record,
		Author: req.Author,
	})
	if err != nil {
		s.fail(w, "submit question", err)
		return
	}
	writeJSON(w, http.StatusCreated, toSubmissionView(*sub))
}

func (s *Server) handleReview(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(w, r, "id")
	if !ok {
		return
	}
	var req struct {
		Approve bool   `json:"approve"`
		Note    string `json:"note"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	sub, err := s.deps.Submissions.Review(r.Context(), id, req.Approve, req.Note, s.now())
	if err != nil {
		s.fail(w, "review submission", err)
		return
	}
	writeJSON(w, http.StatusOK, toSubmissionView(*sub))
}

// fail maps store errors onto HTTP statuses and logs unexpected ones.
func (s *Server) fail(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeErr(w, http.StatusNotFound, "not found")
	case errors.Is(err, store.ErrInvalidJoinCode):
		writeErr(w, http.StatusBadRequest, store.ErrInvalidJoinCode.Error())
	case errors.Is(err, store.ErrEmailRequired):
		writeErr(w, http.StatusBadRequest, store.ErrEmailRequired.Error())
	default:
		s.log.Error(op, zap.Error(err))
		writeErr(w, http.StatusInternalServerError, op+" failed")
	}
}

func parseFilter(r *http.Request) (store.ResultFilter, error) {
	q := r.URL.Query()
	var f store.ResultFilter
	var err error
	if v := q.Get("from"); v != "" {
		if f.From, err = time.Parse(dateLayout, v); err != nil {
			return f, fmt.Errorf("from: want YYYY-MM-DD")
		}
	}
	if v := q.Get("to"); v != "" {
		if f.To, err = time.Parse(dateLayout, v); err != nil {
			return f, fmt.Errorf("to: want YYYY-MM-DD")
		}
	}
	for _, p := range []struct {
		name string
		dst  **int
	}{{"min_score", &f.MinScore}, {"max_score", &f.MaxScore}} {
		v := q.Get(p.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return f, fmt.Errorf("%s: want an integer", p.name)
		}
		*p.dst = &n
	}
	f.Search = q.Get("search")
	return f, nil
}

func intParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	n, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || n <= 0 {
		writeErr(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return n, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errResp struct {
	Error string `json:"error"`
}

func writeErr(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errResp{Error: msg})
}
