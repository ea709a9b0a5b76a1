// Package api serves the back-office HTTP API: the question pool for
// remote terminals, attempt submission, class rosters and results, and
// question-bank curation.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/abhisek/nmt/internal/config"
	"github.com/abhisek/nmt/internal/pool"
	"github.com/abhisek/nmt/internal/store"
)

// Deps are the collaborators the API serves from.
type Deps struct {
	Pool        pool.Source
	Attempts    store.AttemptRepo
	Roster      store.RosterRepo
	Submissions store.SubmissionRepo
	Logger      *zap.Logger
}

// Server is the back-office API.
type Server struct {
	cfg     config.ServerConfig
	deps    Deps
	log     *zap.Logger
	metrics *Metrics
	now     func() time.Time
}

// New creates a Server with its own metrics registry.
func New(cfg config.ServerConfig, deps Deps) *Server {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		cfg:     cfg,
		deps:    deps,
		log:     log,
		metrics: NewMetrics(),
		now:     time.Now,
	}
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)
	r.Use(s.observe)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{"Content-Length"},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", s.metrics.Handler())

	limit := newRateLimiter(s.cfg.RateLimit.PerMinute, s.cfg.RateLimit.Burst)

	r.Route("/api", func(r chi.Router) {
		r.Get("/questions", s.handleQuestions)

		r.With(limit.middleware).Post("/attempts", s.handleRecordAttempt)
		r.Get("/attempts/recent", s.handleRecentAttempts)
		r.Get("/students/{email}/attempts", s.handleStudentAttempts)

		r.Get("/classes", s.handleListClasses)
		r.Post("/classes", s.handleCreateClass)
		r.With(limit.middleware).Post("/classes/join", s.handleJoinClass)
		r.Route("/classes/{classID}", func(r chi.Router) {
			r.Get("/", s.handleGetClass)
			r.Post("/code", s.handleRegenerateCode)
			r.Get("/students", s.handleListStudents)
			r.Post("/students", s.handleAddStudent)
			r.Delete("/students/{studentID}", s.handleRemoveStudent)
			r.Get("/results", s.handleClassResults)
		})

		r.Get("/submissions", s.handleListSubmissions)
		r.With(limit.middleware).Post("/submissions", s.handleSubmit)
		r.Post("/submissions/{id}/review", s.handleReview)
	})
	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("api listening", zap.String("addr", s.cfg.Addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// observe logs every request and records request metrics under the
// matched route pattern.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		elapsed := time.Since(start)
		s.metrics.observeRequest(r.Method, route, ww.Status(), elapsed)
		s.log.Debug("request",
			zap.String("method", r.Method),
			zap.String("route", route),
			zap.Int("status", ww.Status()),
			zap.Duration("elapsed", elapsed),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}
