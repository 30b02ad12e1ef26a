// Package evaluations stores title officer self-evaluations and the executive
// scores management attaches to them afterwards.
package evaluations

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the wire and storage format of date_completed.
const DateLayout = "2006-01-02"

// Evaluation status values.
const (
	StatusSubmitted = "submitted"
	StatusScored    = "scored"
)

// Date is a calendar date serialized as YYYY-MM-DD.
type Date struct {
	time.Time
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

// MarshalJSON encodes the date as a YYYY-MM-DD string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a YYYY-MM-DD string.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Scan implements sql.Scanner.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = v
		return nil
	case string:
		parsed, err := ParseDate(v)
		*d = parsed
		return err
	case []byte:
		parsed, err := ParseDate(string(v))
		*d = parsed
		return err
	}
	return fmt.Errorf("cannot scan %T into Date", src)
}

// Value implements driver.Valuer.
func (d Date) Value() (driver.Value, error) {
	return d.Format(DateLayout), nil
}

// Evaluation is a title officer self-evaluation with its executive scoring.
// Scores maps section key to a 1-5 score, nil until scored.
type Evaluation struct {
	ID                uuid.UUID         `json:"id"`
	Company           string            `json:"company"`
	TitleOfficerName  string            `json:"title_officer_name"`
	TitleUnitLocation string            `json:"title_unit_location"`
	EvaluationPeriod  string            `json:"evaluation_period"`
	DateCompleted     Date              `json:"date_completed"`
	SubmittedAt       time.Time         `json:"submitted_at"`
	Answers           map[string]string `json:"responses"`
	Scores            map[string]*int   `json:"scores"`
	ExecutiveNotes    *string           `json:"executive_notes"`
	ScoredBy          *string           `json:"scored_by"`
	ScoredAt          *time.Time        `json:"scored_at"`
}

// Status reports whether management has scored the evaluation.
func (e Evaluation) Status() string {
	if e.ScoredAt == nil {
		return StatusSubmitted
	}
	return StatusScored
}

// AverageScore is the mean of the non-null section scores rounded to one
// decimal, or nil when no section is scored.
func (e Evaluation) AverageScore() *float64 {
	sum, n := 0, 0
	for _, s := range sections {
		if v := e.Scores[s.Key]; v != nil {
			sum += *v
			n++
		}
	}
	if n == 0 {
		return nil
	}
	avg := math.Round(float64(sum)/float64(n)*10) / 10
	return &avg
}

// MarshalJSON adds the derived status and average score.
func (e Evaluation) MarshalJSON() ([]byte, error) {
	type evaluation Evaluation
	return json.Marshal(struct {
		evaluation
		Status       string   `json:"status"`
		AverageScore *float64 `json:"average_score"`
	}{evaluation(e), e.Status(), e.AverageScore()})
}

// CreateCommand is a submitted self-evaluation. Answers maps question id to narrative text.
type CreateCommand struct {
	Company           string            `json:"company"`
	TitleOfficerName  string            `json:"title_officer_name"`
	TitleUnitLocation string            `json:"title_unit_location"`
	EvaluationPeriod  string            `json:"evaluation_period"`
	DateCompleted     string            `json:"date_completed"`
	Answers           map[string]string `json:"responses"`
}

// ScoreCommand replaces every section score and the executive notes.
// Sections missing from Scores are cleared.
type ScoreCommand struct {
	Scores         map[string]*int `json:"scores"`
	ExecutiveNotes *string         `json:"executive_notes"`
	ScoredBy       *string         `json:"scored_by"`
}
