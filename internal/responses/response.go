package responses

import (
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/assessor/internal/catalog"
	"github.com/JaimeStill/assessor/internal/scoring"
)

// Response is a stored internal capability survey submitted by a sales rep.
type Response struct {
	ID                 uuid.UUID `json:"id"`
	RespondentName     string    `json:"respondent_name"`
	RespondentEmail    string    `json:"respondent_email"`
	SubmittedAt        time.Time `json:"submitted_at"`
	CapabilityScore    float64   `json:"capability_score"`
	AvgConfidenceScore float64   `json:"avg_confidence_score"`
	catalog.Sheet
}

// SubmitCommand carries a completed survey sheet and the respondent identity.
type SubmitCommand struct {
	RespondentName  string `json:"respondent_name"`
	RespondentEmail string `json:"respondent_email"`
	catalog.Sheet
}

// Receipt is returned to the respondent after a successful submission.
type Receipt struct {
	ID          uuid.UUID       `json:"id"`
	SubmittedAt time.Time       `json:"submitted_at"`
	Scores      scoring.Summary `json:"scores"`
}
