// Package results stores score records in a CSV file.
package results

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/abhisek/quizgen/internal/quiz"
	"github.com/abhisek/quizgen/internal/store"
)

// Header is the column order of every results file and report.
var Header = []string{"Name", "Email", "UserID", "Subject", "Level", "Difficulty", "Score"}

// DefaultFile is the results file used when no path is configured.
const DefaultFile = "quiz_data.csv"

// ReportFile is the file name offered by "Download Report".
const ReportFile = "quiz_report.csv"

// Record is one scored attempt.
type Record struct {
	Name       string
	Email      string
	UserID     string
	Subject    string
	Level      string
	Difficulty string
	Score      int
}

// NewRecord builds a record from a participant, settings and score.
func NewRecord(p quiz.Participant, s quiz.Settings, score int) Record {
	return Record{
		Name:       p.Name,
		Email:      p.Email,
		UserID:     p.StudentID,
		Subject:    s.Subject,
		Level:      s.Level,
		Difficulty: s.Difficulty,
		Score:      score,
	}
}

// FromEvent converts a stored quiz result into a record.
func FromEvent(ev store.QuizResultEvent) Record {
	return Record{
		Name:       ev.Name,
		Email:      ev.Email,
		UserID:     ev.StudentID,
		Subject:    ev.Subject,
		Level:      ev.Level,
		Difficulty: ev.Difficulty,
		Score:      ev.Score,
	}
}

func (r Record) row() []string {
	return []string{r.Name, r.Email, r.UserID, r.Subject, r.Level, r.Difficulty, strconv.Itoa(r.Score)}
}

// Append adds one row to the CSV file at path, creating it if needed.
// No header is written.
func Append(path string, r Record) error {
	if err := store.EnsureDir(path); err != nil {
		return fmt.Errorf("create results dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open results file: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(r.row()); err != nil {
		f.Close()
		return fmt.Errorf("write result: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush result: %w", err)
	}
	return f.Close()
}

// WriteReport writes a header and the given records as CSV.
func WriteReport(w io.Writer, records ...Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range records {
		if err := cw.Write(r.row()); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteReportFile writes a single-record report to path.
func WriteReportFile(path string, r Record) error {
	if err := store.EnsureDir(path); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	if err := WriteReport(f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadAll returns every record in the CSV file at path. A missing file
// yields no records. A leading header row is skipped.
func ReadAll(path string) ([]Record, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open results file: %w", err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = len(Header)

	var out []Record
	for line := 1; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read results line %d: %w", line, err)
		}
		if line == 1 && row[0] == Header[0] && row[len(row)-1] == Header[len(Header)-1] {
			continue
		}
		score, err := strconv.Atoi(row[6])
		if err != nil {
			return nil, fmt.Errorf("results line %d: bad score %q: %w", line, row[6], err)
		}
		out = append(out, Record{
			Name:       row[0],
			Email:      row[1],
			UserID:     row[2],
			Subject:    row[3],
			Level:      row[4],
			Difficulty: row[5],
			Score:      score,
		})
	}
	return out, nil
}
