package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

var quizResultColumns = []string{
	"id", "sequence", "timestamp", "quiz_id", "name", "email", "student_id",
	"subject", "level", "difficulty", "score", "total", "answers", "source",
}

func (r *eventRepo) AppendQuizResult(ctx context.Context, data QuizResultEventData) error {
	err := r.appendRow(ctx, quizResultEventsTable.Name, quizResultColumns,
		data.QuizID, data.Name, data.Email, data.StudentID,
		data.Subject, data.Level, data.Difficulty,
		data.Score, data.Total, data.Answers, data.Source,
	)
	if err != nil {
		return fmt.Errorf("save quiz result event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryQuizResults(ctx context.Context, opts QueryOpts) ([]QuizResultEvent, error) {
	sel := builder().Select(quizResultColumns...).From(entsql.Table(quizResultEventsTable.Name))
	query, args := applyQueryOpts(sel, opts).Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query quiz results: %w", err)
	}
	defer rows.Close()

	var events []QuizResultEvent
	for rows.Next() {
		var ev QuizResultEvent
		err := rows.Scan(
			&ev.ID,
			&ev.Sequence,
			&ev.Timestamp,
			&ev.QuizID,
			&ev.Name,
			&ev.Email,
			&ev.StudentID,
			&ev.Subject,
			&ev.Level,
			&ev.Difficulty,
			&ev.Score,
			&ev.Total,
			&ev.Answers,
			&ev.Source,
		)
		if err != nil {
			return nil, fmt.Errorf("scan quiz result: %w", err)
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}
