package salesreps

import (
	"net/url"
	"strconv"

	"github.com/JaimeStill/assessor/pkg/query"
	"github.com/JaimeStill/assessor/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "sales_reps", "sr").
	Project("id", "ID").
	Project("name", "Name").
	Project("slug", "Slug").
	Project("email", "Email").
	Project("phone", "Phone").
	Project("title", "Title").
	Project("is_active", "IsActive").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

const returning = "id, name, slug, email, phone, title, is_active, created_at, updated_at"

var defaultSort = query.SortField{
	Field: "Name",
}

// Filters contains optional filtering criteria for sales rep queries.
// Inactive reps are excluded unless IncludeInactive is set.
type Filters struct {
	IncludeInactive bool    `json:"include_inactive,omitempty"`
	Name            *string `json:"name,omitempty"`
	Email           *string `json:"email,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	if !f.IncludeInactive {
		b.WhereEquals("IsActive", true)
	}
	return b.
		WhereContains("Name", f.Name).
		WhereContains("Email", f.Email)
}

// FiltersFromQuery extracts filter values from URL query parameters.
// active=false (or include_inactive=true) lists every rep.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if a := values.Get("active"); a != "" {
		if v, err := strconv.ParseBool(a); err == nil && !v {
			f.IncludeInactive = true
		}
	}

	if i := values.Get("include_inactive"); i != "" {
		if v, err := strconv.ParseBool(i); err == nil {
			f.IncludeInactive = v
		}
	}

	if n := values.Get("name"); n != "" {
		f.Name = &n
	}

	if e := values.Get("email"); e != "" {
		f.Email = &e
	}

	return f
}

func scanSalesRep(s repository.Scanner) (SalesRep, error) {
	var r SalesRep
	err := s.Scan(
		&r.ID,
		&r.Name,
		&r.Slug,
		&r.Email,
		&r.Phone,
		&r.Title,
		&r.IsActive,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	return r, err
}
