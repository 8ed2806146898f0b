// Package web serves the quiz form, the quiz and the score page over HTTP.
package web

import (
	"context"
	"crypto/rand"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/quizgen/internal/quiz"
	"github.com/abhisek/quizgen/internal/results"
	"github.com/abhisek/quizgen/internal/scoring"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

const (
	sessionName      = "quizgen_session"
	shutdownTimeout  = 5 * time.Second
	quizTTL          = 2 * time.Hour
	maxCachedQuizzes = 1000
)

// QuizSource produces a quiz for the chosen settings.
type QuizSource interface {
	Generate(ctx context.Context, settings quiz.Settings) (*quiz.Quiz, error)
}

// Options configures a Server.
type Options struct {
	Quizzes  QuizSource
	Scorer   scoring.Scorer
	Recorder *results.Recorder

	// Defaults preselects the form and sets the question count.
	Defaults quiz.Settings

	// SessionSecret signs the session cookie. A random secret is used when
	// empty, so sessions do not survive a restart.
	SessionSecret []byte

	Logger *zap.Logger
}

// Server is the web front end.
type Server struct {
	quizzes  QuizSource
	scorer   scoring.Scorer
	recorder *results.Recorder
	defaults quiz.Settings
	cache    *quizCache
	logger   *zap.Logger
	engine   *gin.Engine
}

// New builds a Server and its routes.
func New(opts Options) (*Server, error) {
	if opts.Quizzes == nil {
		return nil, errors.New("web: no quiz source")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	scorer := opts.Scorer
	if scorer == nil {
		scorer = scoring.NewMockScorer(nil)
	}

	secret := opts.SessionSecret
	if len(secret) == 0 {
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return nil, fmt.Errorf("generate session secret: %w", err)
		}
		logger.Warn("no session secret configured, sessions will not survive a restart")
	}

	tmpl, err := template.New("").Funcs(template.FuncMap{
		"inc":   func(i int) int { return i + 1 },
		"label": func(i int) string { return quiz.Labels[i] },
	}).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		quizzes:  opts.Quizzes,
		scorer:   scorer,
		recorder: opts.Recorder,
		defaults: opts.Defaults.Normalize(),
		cache:    newQuizCache(quizTTL, maxCachedQuizzes),
		logger:   logger.Named("web"),
	}

	store := cookie.NewStore(secret)
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(quizTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	r := gin.New()
	r.Use(requestLogger(s.logger), gin.Recovery())
	r.Use(sessions.Sessions(sessionName, store))
	r.SetHTMLTemplate(tmpl)
	s.routes(r)
	s.engine = r

	return s, nil
}

func (s *Server) routes(r *gin.Engine) {
	r.GET("/", s.handleIndex)
	r.POST("/quiz", s.handleGenerate)
	r.POST("/submit", s.handleSubmit)
	r.GET("/report", s.handleReport)
	r.GET("/healthz", s.handleHealth)

	api := r.Group("/api")
	api.POST("/quiz", s.handleAPIGenerate)
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
