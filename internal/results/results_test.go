package results

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizgen/internal/quiz"
	"github.com/abhisek/quizgen/internal/store"
)

func sampleRecord() Record {
	return NewRecord(
		quiz.Participant{Name: "Ada Lovelace", Email: "ada@example.com", StudentID: "S-1"},
		quiz.Settings{Subject: "Python", Level: "Beginner", Difficulty: "Easy"},
		7,
	)
}

func TestAppend_NoHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "results.csv")

	require.NoError(t, Append(path, sampleRecord()))
	r2 := sampleRecord()
	r2.Name = "Bob, Jr."
	r2.Score = 5
	require.NoError(t, Append(path, r2))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"Ada Lovelace,ada@example.com,S-1,Python,Beginner,Easy,7\n"+
			"\"Bob, Jr.\",ada@example.com,S-1,Python,Beginner,Easy,5\n",
		string(data))

	got, err := ReadAll(path)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Bob, Jr.", got[1].Name)
	assert.Equal(t, 5, got[1].Score)
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, sampleRecord()))
	assert.Equal(t,
		"Name,Email,UserID,Subject,Level,Difficulty,Score\n"+
			"Ada Lovelace,ada@example.com,S-1,Python,Beginner,Easy,7\n",
		buf.String())
}

func TestWriteReportFile_ReadBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), ReportFile)
	require.NoError(t, WriteReportFile(path, sampleRecord()))

	got, err := ReadAll(path)
	require.NoError(t, err)
	require.Len(t, got, 1, "header row must be skipped")
	assert.Equal(t, sampleRecord(), got[0])
}

func TestReadAll_Missing(t *testing.T) {
	got, err := ReadAll(filepath.Join(t.TempDir(), "nope.csv"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReadAll_BadRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b,c,d,e,f,notanumber\n"), 0o644))

	_, err := ReadAll(path)
	assert.Error(t, err)
}

func TestFromEvent(t *testing.T) {
	ev := store.QuizResultEvent{QuizResultEventData: store.QuizResultEventData{
		Name: "Ada", Email: "a@b.c", StudentID: "9", Subject: "AI", Level: "Advanced", Difficulty: "Hard", Score: 8,
	}}
	assert.Equal(t, Record{Name: "Ada", Email: "a@b.c", UserID: "9", Subject: "AI", Level: "Advanced", Difficulty: "Hard", Score: 8}, FromEvent(ev))
}
