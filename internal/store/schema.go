package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Table definitions handed to the ent migrator. Every event table starts
// with the same id/sequence/timestamp columns so the global sequence
// counter can order events across tables.

var (
	llmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "quiz_id", Type: field.TypeString, Default: ""},
	}

	llmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    llmRequestEventsColumns,
		PrimaryKey: []*schema.Column{llmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "llmrequestevent_timestamp", Columns: []*schema.Column{llmRequestEventsColumns[2]}},
			{Name: "llmrequestevent_purpose", Columns: []*schema.Column{llmRequestEventsColumns[5]}},
			{Name: "llmrequestevent_success", Columns: []*schema.Column{llmRequestEventsColumns[9]}},
			{Name: "llmrequestevent_quiz_id", Columns: []*schema.Column{llmRequestEventsColumns[13]}},
		},
	}

	quizResultEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "quiz_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString},
		{Name: "student_id", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString},
		{Name: "level", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "score", Type: field.TypeInt},
		{Name: "total", Type: field.TypeInt},
		{Name: "answers", Type: field.TypeString, Default: ""},
		{Name: "source", Type: field.TypeString, Default: ""},
	}

	quizResultEventsTable = &schema.Table{
		Name:       "quiz_result_events",
		Columns:    quizResultEventsColumns,
		PrimaryKey: []*schema.Column{quizResultEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "quizresultevent_timestamp", Columns: []*schema.Column{quizResultEventsColumns[2]}},
			{Name: "quizresultevent_student_id", Columns: []*schema.Column{quizResultEventsColumns[6]}},
			{Name: "quizresultevent_subject", Columns: []*schema.Column{quizResultEventsColumns[7]}},
		},
	}

	tables = []*schema.Table{
		llmRequestEventsTable,
		quizResultEventsTable,
	}
)
