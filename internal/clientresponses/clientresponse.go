package clientresponses

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/assessor/internal/catalog"
	"github.com/JaimeStill/assessor/internal/scoring"
)

// Needs is the optional needs assessment a client attaches to a survey.
type Needs struct {
	TitleSearch      bool    `json:"title_search"`
	EscrowServices   bool    `json:"escrow_services"`
	PropertyProfiles bool    `json:"property_profiles"`
	FarmLists        bool    `json:"farm_lists"`
	DirectMail       bool    `json:"direct_mail"`
	MobileApp        bool    `json:"mobile_app"`
	Training         bool    `json:"training"`
	Other            *string `json:"other,omitempty"`
	Timeline         *string `json:"timeline,omitempty"`
	AdditionalNotes  *string `json:"additional_notes,omitempty"`
}

// ClientResponse is a stored survey submitted by a client through a sales rep link.
// SalesRepName and SalesRepEmail are present only while the referenced rep exists.
type ClientResponse struct {
	ID                 uuid.UUID  `json:"id"`
	SalesRepID         *uuid.UUID `json:"sales_rep_id"`
	SalesRepSlug       string     `json:"sales_rep_slug"`
	ClientName         string     `json:"client_name"`
	ClientEmail        string     `json:"client_email"`
	ClientPhone        *string    `json:"client_phone"`
	ClientCompany      *string    `json:"client_company"`
	Needs              Needs      `json:"needs_assessment"`
	SubmittedAt        time.Time  `json:"submitted_at"`
	CapabilityScore    float64    `json:"capability_score"`
	AvgConfidenceScore float64    `json:"avg_confidence_score"`
	catalog.Sheet
	SalesRepName  *string `json:"sales_rep_name"`
	SalesRepEmail *string `json:"sales_rep_email"`
}

// SubmitCommand carries a client's survey sheet, contact details, and needs.
type SubmitCommand struct {
	SalesRepSlug  string  `json:"sales_rep_slug"`
	ClientName    string  `json:"client_name"`
	ClientEmail   string  `json:"client_email"`
	ClientPhone   *string `json:"client_phone,omitempty"`
	ClientCompany *string `json:"client_company,omitempty"`
	Needs         *Needs  `json:"needs_assessment,omitempty"`
	catalog.Sheet
}

// Receipt is returned to the client after a successful submission.
type Receipt struct {
	ID          uuid.UUID       `json:"id"`
	SubmittedAt time.Time       `json:"submitted_at"`
	Scores      scoring.Summary `json:"scores"`
}

// NeedOption labels one needs assessment flag for form rendering.
type NeedOption struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

var needOptions = []NeedOption{
	{Key: "title_search", Label: "Title Search & Examination"},
	{Key: "escrow_services", Label: "Escrow Services"},
	{Key: "property_profiles", Label: "Property Profiles & Reports"},
	{Key: "farm_lists", Label: "Farm Lists & Targeted Marketing"},
	{Key: "direct_mail", Label: "Direct Mail Campaigns"},
	{Key: "mobile_app", Label: "Mobile App (Pacific Agent ONE)"},
	{Key: "training", Label: "Training & Education"},
}

var timelines = []string{
	"Immediately",
	"Within 1 month",
	"Within 3 months",
	"Within 6 months",
	"Just exploring options",
}

// NeedOptions returns the needs assessment flags in display order.
func NeedOptions() []NeedOption {
	return slices.Clone(needOptions)
}

// Timelines returns the published timeline choices. Free text is also accepted on submit.
func Timelines() []string {
	return slices.Clone(timelines)
}
