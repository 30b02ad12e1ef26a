package evaluations

import (
	"database/sql"
	"net/url"
	"strings"

	"github.com/JaimeStill/assessor/pkg/query"
	"github.com/JaimeStill/assessor/pkg/repository"
)

var headerColumns = []string{
	"company",
	"title_officer_name",
	"title_unit_location",
	"evaluation_period",
	"date_completed",
}

var projection = func() *query.ProjectionMap {
	p := query.
		NewProjectionMap("public", "title_officer_evaluations", "e").
		Project("id", "ID").
		Project("company", "Company").
		Project("title_officer_name", "TitleOfficerName").
		Project("title_unit_location", "TitleUnitLocation").
		Project("evaluation_period", "EvaluationPeriod").
		Project("date_completed", "DateCompleted").
		Project("submitted_at", "SubmittedAt")

	for _, q := range questions {
		p.Project(q.ID, q.ID)
	}
	for _, s := range sections {
		p.Project(s.ScoreColumn, s.ScoreColumn)
	}

	return p.
		Project("executive_notes", "ExecutiveNotes").
		Project("scored_by", "ScoredBy").
		Project("scored_at", "ScoredAt")
}()

// returning lists the projection columns unqualified for RETURNING clauses.
var returning = func() string {
	cols := projection.ColumnList()
	out := make([]string, len(cols))
	for i, c := range cols {
		_, out[i], _ = strings.Cut(c, ".")
	}
	return strings.Join(out, ", ")
}()

var defaultSort = query.SortField{
	Field:      "SubmittedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for evaluation queries.
type Filters struct {
	Company          *string `json:"company,omitempty"`
	TitleOfficerName *string `json:"title_officer_name,omitempty"`
	Status           *string `json:"status,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	if f.Status != nil {
		switch *f.Status {
		case StatusSubmitted:
			b.WhereNullable("ScoredAt", nil)
		case StatusScored:
			b.WhereNotNull("ScoredAt")
		}
	}
	return b.
		WhereContains("Company", f.Company).
		WhereContains("TitleOfficerName", f.TitleOfficerName)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if c := values.Get("company"); c != "" {
		f.Company = &c
	}

	if n := values.Get("title_officer_name"); n != "" {
		f.TitleOfficerName = &n
	}

	if s := values.Get("status"); s != "" {
		f.Status = &s
	}

	return f
}

func scanEvaluation(s repository.Scanner) (Evaluation, error) {
	var e Evaluation

	answers := make([]string, len(questions))
	scores := make([]sql.NullInt64, len(sections))

	dest := []any{
		&e.ID,
		&e.Company,
		&e.TitleOfficerName,
		&e.TitleUnitLocation,
		&e.EvaluationPeriod,
		&e.DateCompleted,
		&e.SubmittedAt,
	}
	for i := range answers {
		dest = append(dest, &answers[i])
	}
	for i := range scores {
		dest = append(dest, &scores[i])
	}
	dest = append(dest, &e.ExecutiveNotes, &e.ScoredBy, &e.ScoredAt)

	if err := s.Scan(dest...); err != nil {
		return e, err
	}

	e.Answers = make(map[string]string, len(questions))
	for i, q := range questions {
		e.Answers[q.ID] = answers[i]
	}

	e.Scores = make(map[string]*int, len(sections))
	for i, sec := range sections {
		if scores[i].Valid {
			v := int(scores[i].Int64)
			e.Scores[sec.Key] = &v
		} else {
			e.Scores[sec.Key] = nil
		}
	}

	return e, nil
}
