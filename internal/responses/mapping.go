package responses

import (
	"net/url"

	"github.com/JaimeStill/assessor/internal/catalog"
	"github.com/JaimeStill/assessor/pkg/query"
	"github.com/JaimeStill/assessor/pkg/repository"
)

var projection = catalog.Project(query.
	NewProjectionMap("public", "responses", "r").
	Project("id", "ID").
	Project("respondent_name", "RespondentName").
	Project("respondent_email", "RespondentEmail").
	Project("submitted_at", "SubmittedAt").
	Project("capability_score", "CapabilityScore").
	Project("avg_confidence_score", "AvgConfidenceScore"))

var defaultSort = query.SortField{
	Field:      "SubmittedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for response queries.
type Filters struct {
	RespondentName  *string `json:"respondent_name,omitempty"`
	RespondentEmail *string `json:"respondent_email,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereContains("RespondentName", f.RespondentName).
		WhereContains("RespondentEmail", f.RespondentEmail)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if n := values.Get("respondent_name"); n != "" {
		f.RespondentName = &n
	}

	if e := values.Get("respondent_email"); e != "" {
		f.RespondentEmail = &e
	}

	return f
}

func scanResponse(s repository.Scanner) (Response, error) {
	var r Response
	targets, assemble := catalog.ScanTargets()

	dest := append([]any{
		&r.ID,
		&r.RespondentName,
		&r.RespondentEmail,
		&r.SubmittedAt,
		&r.CapabilityScore,
		&r.AvgConfidenceScore,
	}, targets...)

	if err := s.Scan(dest...); err != nil {
		return r, err
	}

	r.Sheet = assemble()
	return r, nil
}
