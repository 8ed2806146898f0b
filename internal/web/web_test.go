package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/abhisek/quizgen/internal/quiz"
	"github.com/abhisek/quizgen/internal/quizgen"
	"github.com/abhisek/quizgen/internal/results"
	"github.com/abhisek/quizgen/internal/scoring"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"),
		// expirable.LRU sweeps expired quizzes from a goroutine that never exits.
		goleak.IgnoreAnyFunction("github.com/hashicorp/golang-lru/v2/expirable.NewLRU[...].func1"),
	)
}

// fixedScorer always awards score and keeps the last attempt it saw.
type fixedScorer struct {
	score int
	last  *quiz.Attempt
}

func (f *fixedScorer) Score(a *quiz.Attempt) scoring.Result {
	f.last = a
	return scoring.Result{Score: f.score, Total: len(a.Quiz.Questions)}
}

type failingSource struct{}

func (failingSource) Generate(context.Context, quiz.Settings) (*quiz.Quiz, error) {
	return nil, errors.New("boom")
}

func newTestServer(t *testing.T) (*Server, string) {
	t.Helper()
	csvPath := filepath.Join(t.TempDir(), "quiz_data.csv")
	s, err := New(Options{
		Quizzes:       quizgen.NewService(nil, nil, nil),
		Scorer:        &fixedScorer{score: 4},
		Recorder:      results.NewRecorder(csvPath, nil, nil),
		Defaults:      quiz.Settings{NumQuestions: 5},
		SessionSecret: []byte("test-secret-test-secret-test-sec"),
	})
	require.NoError(t, err)
	return s, csvPath
}

type client struct {
	t       *testing.T
	h       http.Handler
	cookies map[string]*http.Cookie
}

func newClient(t *testing.T, h http.Handler) *client {
	return &client{t: t, h: h, cookies: make(map[string]*http.Cookie)}
}

func (c *client) do(req *http.Request) *httptest.ResponseRecorder {
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	c.h.ServeHTTP(w, req)
	for _, ck := range w.Result().Cookies() {
		c.cookies[ck.Name] = ck
	}
	return w
}

func (c *client) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req)
}

func (c *client) get(path string) *httptest.ResponseRecorder {
	return c.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func details() url.Values {
	return url.Values{
		"name":       {"Ada Lovelace"},
		"email":      {"ada@example.com"},
		"student_id": {"S-1"},
		"subject":    {"Python"},
		"level":      {"Beginner"},
		"difficulty": {"Easy"},
	}
}

func TestIndex(t *testing.T) {
	s, _ := newTestServer(t)
	w := newClient(t, s.Handler()).get("/")

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Enter Your Details")
	assert.Contains(t, body, "Generate Quiz")
	assert.Contains(t, body, "Data Science")
}

func TestGenerate_MissingDetails(t *testing.T) {
	s, _ := newTestServer(t)
	form := details()
	form.Set("email", "  ")

	w := newClient(t, s.Handler()).postForm("/quiz", form)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Please enter your details first.")
}

func TestGenerate_UnknownSubject(t *testing.T) {
	s, _ := newTestServer(t)
	form := details()
	form.Set("subject", "Astrology")

	w := newClient(t, s.Handler()).postForm("/quiz", form)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown subject")
}

func TestGenerate_SourceFailure(t *testing.T) {
	s, err := New(Options{Quizzes: failingSource{}, SessionSecret: []byte("k")})
	require.NoError(t, err)

	w := newClient(t, s.Handler()).postForm("/quiz", details())
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestQuizFlow(t *testing.T) {
	s, csvPath := newTestServer(t)
	c := newClient(t, s.Handler())

	w := c.postForm("/quiz", details())
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Quiz on Python (Beginner - Easy)")
	assert.Contains(t, body, `name="q5"`)
	assert.NotContains(t, body, `name="q6"`)
	assert.Equal(t, 1, s.cache.Len())

	w = c.postForm("/submit", url.Values{"q1": {"A"}, "q2": {"C"}, "q3": {"Z"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Your Score: 4/5")
	assert.Contains(t, w.Body.String(), "Download Report")
	assert.Equal(t, 0, s.cache.Len())

	rows, err := results.ReadAll(csvPath)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Ada Lovelace", rows[0].Name)
	assert.Equal(t, 4, rows[0].Score)

	w = c.get("/report")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "quiz_report.csv")
	assert.Equal(t,
		"Name,Email,UserID,Subject,Level,Difficulty,Score\n"+
			"Ada Lovelace,ada@example.com,S-1,Python,Beginner,Easy,4\n",
		w.Body.String())

	// The quiz is gone once submitted.
	w = c.postForm("/submit", url.Values{"q1": {"A"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)
}

func TestSubmitNormalisesAnswerLetters(t *testing.T) {
	s, _ := newTestServer(t)
	c := newClient(t, s.Handler())
	require.Equal(t, http.StatusOK, c.postForm("/quiz", details()).Code)

	w := c.postForm("/submit", url.Values{"q1": {"b"}, "q2": {" d "}, "q4": {"x"}})
	require.Equal(t, http.StatusOK, w.Code)

	a := s.scorer.(*fixedScorer).last
	require.NotNil(t, a)
	assert.Equal(t, map[int]string{1: "B", 2: "D"}, a.Answers)
	assert.Equal(t, "BD---", a.AnswerString())
}

func TestIndexRemembersDetails(t *testing.T) {
	s, _ := newTestServer(t)
	c := newClient(t, s.Handler())
	c.postForm("/quiz", details())

	w := c.get("/")
	assert.Contains(t, w.Body.String(), `value="ada@example.com"`)
}

func TestSubmitWithoutQuiz(t *testing.T) {
	s, _ := newTestServer(t)
	w := newClient(t, s.Handler()).postForm("/submit", url.Values{})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestReportWithoutResult(t *testing.T) {
	s, _ := newTestServer(t)
	w := newClient(t, s.Handler()).get("/report")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)
	w := newClient(t, s.Handler()).get("/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestAPIGenerate(t *testing.T) {
	s, _ := newTestServer(t)
	c := newClient(t, s.Handler())

	req := httptest.NewRequest(http.MethodPost, "/api/quiz",
		strings.NewReader(`{"subject":"Math","level":"Advanced","difficulty":"Hard","num_questions":3}`))
	req.Header.Set("Content-Type", "application/json")
	w := c.do(req)
	require.Equal(t, http.StatusOK, w.Code)

	var q quiz.Quiz
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &q))
	assert.Len(t, q.Questions, 3)
	assert.Equal(t, "Math", q.Settings.Subject)
	assert.Equal(t, quiz.SourceFallback, q.Source)
}

func TestAPIGenerate_Defaults(t *testing.T) {
	s, _ := newTestServer(t)
	w := newClient(t, s.Handler()).do(httptest.NewRequest(http.MethodPost, "/api/quiz", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var q quiz.Quiz
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &q))
	assert.Len(t, q.Questions, 5)
	assert.Equal(t, "Python", q.Settings.Subject)
}

func TestAPIGenerate_BadCount(t *testing.T) {
	s, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/api/quiz", strings.NewReader(`{"num_questions":500}`))
	req.Header.Set("Content-Type", "application/json")
	w := newClient(t, s.Handler()).do(req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNew_RequiresSource(t *testing.T) {
	_, err := New(Options{})
	assert.Error(t, err)
}

func TestRunShutsDownOnCancel(t *testing.T) {
	s, _ := newTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, "127.0.0.1:0") }()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
