package exports

import (
	"fmt"
	"slices"
	"strings"

	"github.com/JaimeStill/assessor/internal/catalog"
	"github.com/JaimeStill/assessor/internal/evaluations"
)

// Dataset is an exportable table. Header names the CSV columns and
// Select holds the matching SELECT expressions.
type Dataset struct {
	Name   string
	Table  string
	Header []string
	Select []string
}

func (d Dataset) query() string {
	return fmt.Sprintf(
		"SELECT %s FROM %s ORDER BY submitted_at, id",
		strings.Join(d.Select, ", "),
		d.Table,
	)
}

func newDataset(name, table string, columns []string, casts map[string]string) Dataset {
	sel := make([]string, len(columns))
	for i, c := range columns {
		if cast, ok := casts[c]; ok {
			sel[i] = cast
		} else {
			sel[i] = c
		}
	}
	return Dataset{Name: name, Table: table, Header: columns, Select: sel}
}

var datasets = func() map[string]Dataset {
	responses := newDataset(
		"responses",
		"responses",
		slices.Concat(
			[]string{"id", "respondent_name", "respondent_email", "submitted_at", "capability_score", "avg_confidence_score"},
			catalog.Columns(),
		),
		nil,
	)

	clientResponses := newDataset(
		"client-responses",
		"client_responses",
		slices.Concat(
			[]string{
				"id", "sales_rep_id", "sales_rep_slug",
				"client_name", "client_email", "client_phone", "client_company",
				"needs_title_search", "needs_escrow_services", "needs_property_profiles", "needs_farm_lists",
				"needs_direct_mail", "needs_mobile_app", "needs_training", "needs_other", "timeline", "additional_notes",
				"submitted_at", "capability_score", "avg_confidence_score",
			},
			catalog.Columns(),
		),
		nil,
	)

	evalColumns := []string{
		"id", "company", "title_officer_name", "title_unit_location", "evaluation_period", "date_completed", "submitted_at",
	}
	for _, q := range evaluations.Questions() {
		evalColumns = append(evalColumns, q.ID)
	}
	for _, s := range evaluations.Sections() {
		evalColumns = append(evalColumns, s.ScoreColumn)
	}
	evalColumns = append(evalColumns, "executive_notes", "scored_by", "scored_at")

	evals := newDataset(
		"evaluations",
		"title_officer_evaluations",
		evalColumns,
		map[string]string{"date_completed": "to_char(date_completed, 'YYYY-MM-DD')"},
	)

	return map[string]Dataset{
		responses.Name:       responses,
		clientResponses.Name: clientResponses,
		evals.Name:           evals,
	}
}()

// Datasets returns the exportable dataset names in sorted order.
func Datasets() []string {
	names := make([]string, 0, len(datasets))
	for name := range datasets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Lookup returns the named dataset.
func Lookup(name string) (Dataset, error) {
	d, ok := datasets[name]
	if !ok {
		return Dataset{}, fmt.Errorf("%w: %s", ErrUnknownDataset, name)
	}
	return d, nil
}
