package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"strconv"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abhisek/quizgen/internal/quiz"
	"github.com/abhisek/quizgen/internal/results"
)

// Session keys.
const (
	keyName      = "name"
	keyEmail     = "email"
	keyStudentID = "student_id"
	keyQuizID    = "quiz_id"
	keyReport    = "report"
)

// maxAPIQuestions caps num_questions on the JSON endpoint.
const maxAPIQuestions = 50

// quizForm is the setup form.
type quizForm struct {
	Name       string `form:"name"`
	Email      string `form:"email"`
	StudentID  string `form:"student_id"`
	Subject    string `form:"subject"`
	Level      string `form:"level"`
	Difficulty string `form:"difficulty"`
}

// apiQuizRequest is the body of POST /api/quiz.
type apiQuizRequest struct {
	Subject      string `json:"subject"`
	Level        string `json:"level"`
	Difficulty   string `json:"difficulty"`
	NumQuestions int    `json:"num_questions"`
}

func (s *Server) settingsFrom(subject, level, difficulty string) (quiz.Settings, error) {
	settings := quiz.Settings{
		Subject:      subject,
		Level:        level,
		Difficulty:   difficulty,
		NumQuestions: s.defaults.NumQuestions,
	}
	if settings.Subject == "" {
		settings.Subject = s.defaults.Subject
	}
	if settings.Level == "" {
		settings.Level = s.defaults.Level
	}
	if settings.Difficulty == "" {
		settings.Difficulty = s.defaults.Difficulty
	}
	switch {
	case !slices.Contains(quiz.Subjects, settings.Subject):
		return settings, fmt.Errorf("unknown subject %q", settings.Subject)
	case !slices.Contains(quiz.Levels, settings.Level):
		return settings, fmt.Errorf("unknown level %q", settings.Level)
	case !slices.Contains(quiz.Difficulties, settings.Difficulty):
		return settings, fmt.Errorf("unknown difficulty %q", settings.Difficulty)
	}
	return settings.Normalize(), nil
}

func participantFrom(sess sessions.Session) quiz.Participant {
	str := func(key string) string {
		v, _ := sess.Get(key).(string)
		return v
	}
	return quiz.Participant{
		Name:      str(keyName),
		Email:     str(keyEmail),
		StudentID: str(keyStudentID),
	}
}

func (s *Server) renderIndex(c *gin.Context, status int, p quiz.Participant, settings quiz.Settings, warning string) {
	c.HTML(status, "index.tmpl", gin.H{
		"Title":        "AI-Powered Quiz Generator",
		"Participant":  p,
		"Settings":     settings,
		"Subjects":     quiz.Subjects,
		"Levels":       quiz.Levels,
		"Difficulties": quiz.Difficulties,
		"Warning":      warning,
	})
}

func (s *Server) handleIndex(c *gin.Context) {
	s.renderIndex(c, http.StatusOK, participantFrom(sessions.Default(c)), s.defaults, "")
}

func (s *Server) handleGenerate(c *gin.Context) {
	var form quizForm
	if err := c.ShouldBind(&form); err != nil {
		s.renderIndex(c, http.StatusBadRequest, quiz.Participant{}, s.defaults, err.Error())
		return
	}

	p := quiz.Participant{Name: form.Name, Email: form.Email, StudentID: form.StudentID}
	settings, err := s.settingsFrom(form.Subject, form.Level, form.Difficulty)
	if err != nil {
		s.renderIndex(c, http.StatusBadRequest, p, s.defaults, err.Error())
		return
	}
	if err := p.Validate(); err != nil {
		s.renderIndex(c, http.StatusBadRequest, p, settings, err.Error())
		return
	}

	q, err := s.quizzes.Generate(c.Request.Context(), settings)
	if err != nil {
		_ = c.Error(err)
		s.renderIndex(c, http.StatusInternalServerError, p, settings, "Could not generate a quiz, please try again.")
		return
	}
	s.cache.Put(q)

	sess := sessions.Default(c)
	sess.Set(keyName, p.Name)
	sess.Set(keyEmail, p.Email)
	sess.Set(keyStudentID, p.StudentID)
	sess.Set(keyQuizID, q.ID)
	if err := sess.Save(); err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "could not save session")
		return
	}

	c.HTML(http.StatusOK, "quiz.tmpl", gin.H{
		"Title": settings.Title(),
		"Quiz":  q,
	})
}

func (s *Server) handleSubmit(c *gin.Context) {
	sess := sessions.Default(c)
	id, _ := sess.Get(keyQuizID).(string)
	q := s.cache.Get(id)
	if q == nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	a := quiz.NewAttempt(q, participantFrom(sess))
	for n := 1; n <= len(q.Questions); n++ {
		if i := quiz.LabelIndex(c.PostForm("q" + strconv.Itoa(n))); i >= 0 {
			a.Choose(n, quiz.Labels[i])
		}
	}
	res := s.scorer.Score(a)

	rec := results.NewRecord(a.Participant, q.Settings, res.Score)
	if s.recorder != nil {
		var err error
		rec, err = s.recorder.Record(c.Request.Context(), a, res)
		if err != nil {
			_ = c.Error(err)
			s.logger.Error("failed to append result", zap.String("quiz_id", q.ID), zap.Error(err))
		}
	}
	s.cache.Delete(q.ID)

	if raw, err := json.Marshal(rec); err == nil {
		sess.Set(keyReport, string(raw))
	}
	sess.Delete(keyQuizID)
	if err := sess.Save(); err != nil {
		_ = c.Error(err)
	}

	c.HTML(http.StatusOK, "result.tmpl", gin.H{
		"Title":    "Your Score",
		"Settings": q.Settings,
		"Score":    res.Score,
		"Total":    res.Total,
	})
}

func (s *Server) handleReport(c *gin.Context) {
	raw, _ := sessions.Default(c).Get(keyReport).(string)
	if raw == "" {
		c.String(http.StatusNotFound, "no quiz result to report")
		return
	}
	var rec results.Record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		c.String(http.StatusNotFound, "no quiz result to report")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+results.ReportFile+`"`)
	c.Header("Content-Type", "text/csv")
	c.Status(http.StatusOK)
	if err := results.WriteReport(c.Writer, rec); err != nil {
		_ = c.Error(err)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleAPIGenerate(c *gin.Context) {
	var req apiQuizRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	if req.NumQuestions < 0 || req.NumQuestions > maxAPIQuestions {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("num_questions must be between 0 and %d", maxAPIQuestions),
		})
		return
	}

	settings, err := s.settingsFrom(req.Subject, req.Level, req.Difficulty)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.NumQuestions > 0 {
		settings.NumQuestions = req.NumQuestions
	}

	q, err := s.quizzes.Generate(c.Request.Context(), settings)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "quiz generation failed"})
		return
	}
	c.JSON(http.StatusOK, q)
}
