package clientresponses

import (
	"net/url"

	"github.com/JaimeStill/assessor/internal/catalog"
	"github.com/JaimeStill/assessor/pkg/query"
	"github.com/JaimeStill/assessor/pkg/repository"
)

var projection = catalog.Project(query.
	NewProjectionMap("public", "client_responses", "cr").
	Project("id", "ID").
	Project("sales_rep_id", "SalesRepID").
	Project("sales_rep_slug", "SalesRepSlug").
	Project("client_name", "ClientName").
	Project("client_email", "ClientEmail").
	Project("client_phone", "ClientPhone").
	Project("client_company", "ClientCompany").
	Project("needs_title_search", "NeedsTitleSearch").
	Project("needs_escrow_services", "NeedsEscrowServices").
	Project("needs_property_profiles", "NeedsPropertyProfiles").
	Project("needs_farm_lists", "NeedsFarmLists").
	Project("needs_direct_mail", "NeedsDirectMail").
	Project("needs_mobile_app", "NeedsMobileApp").
	Project("needs_training", "NeedsTraining").
	Project("needs_other", "NeedsOther").
	Project("timeline", "Timeline").
	Project("additional_notes", "AdditionalNotes").
	Project("submitted_at", "SubmittedAt").
	Project("capability_score", "CapabilityScore").
	Project("avg_confidence_score", "AvgConfidenceScore")).
	Join("public", "sales_reps", "sr", "LEFT JOIN", "sr.id = cr.sales_rep_id").
	Project("name", "SalesRepName").
	Project("email", "SalesRepEmail")

var defaultSort = query.SortField{
	Field:      "SubmittedAt",
	Descending: true,
}

var needsColumns = []string{
	"needs_title_search",
	"needs_escrow_services",
	"needs_property_profiles",
	"needs_farm_lists",
	"needs_direct_mail",
	"needs_mobile_app",
	"needs_training",
	"needs_other",
	"timeline",
	"additional_notes",
}

func (n Needs) values() []any {
	return []any{
		n.TitleSearch,
		n.EscrowServices,
		n.PropertyProfiles,
		n.FarmLists,
		n.DirectMail,
		n.MobileApp,
		n.Training,
		n.Other,
		n.Timeline,
		n.AdditionalNotes,
	}
}

// Filters contains optional filtering criteria for client response queries.
type Filters struct {
	Rep         *string `json:"rep,omitempty"`
	ClientName  *string `json:"client_name,omitempty"`
	ClientEmail *string `json:"client_email,omitempty"`
}

// Apply adds filter conditions to a query builder.
// Rep matches the stored slug, so responses of renamed or removed reps stay reachable by their original link.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	if f.Rep != nil && *f.Rep != "" {
		b.WhereEquals("SalesRepSlug", *f.Rep)
	}
	return b.
		WhereContains("ClientName", f.ClientName).
		WhereContains("ClientEmail", f.ClientEmail)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if r := values.Get("rep"); r != "" {
		f.Rep = &r
	}

	if n := values.Get("client_name"); n != "" {
		f.ClientName = &n
	}

	if e := values.Get("client_email"); e != "" {
		f.ClientEmail = &e
	}

	return f
}

func scanClientResponse(s repository.Scanner) (ClientResponse, error) {
	var r ClientResponse
	targets, assemble := catalog.ScanTargets()

	dest := []any{
		&r.ID,
		&r.SalesRepID,
		&r.SalesRepSlug,
		&r.ClientName,
		&r.ClientEmail,
		&r.ClientPhone,
		&r.ClientCompany,
		&r.Needs.TitleSearch,
		&r.Needs.EscrowServices,
		&r.Needs.PropertyProfiles,
		&r.Needs.FarmLists,
		&r.Needs.DirectMail,
		&r.Needs.MobileApp,
		&r.Needs.Training,
		&r.Needs.Other,
		&r.Needs.Timeline,
		&r.Needs.AdditionalNotes,
		&r.SubmittedAt,
		&r.CapabilityScore,
		&r.AvgConfidenceScore,
	}
	dest = append(dest, targets...)
	dest = append(dest, &r.SalesRepName, &r.SalesRepEmail)

	if err := s.Scan(dest...); err != nil {
		return r, err
	}

	r.Sheet = assemble()
	return r, nil
}
