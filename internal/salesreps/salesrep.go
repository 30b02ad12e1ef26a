// Package salesreps implements the sales rep directory. Reps own the durable
// survey links handed to clients and are attributed on client responses.
package salesreps

import (
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SurveyPathPrefix is the client survey route a rep's slug is appended to.
const SurveyPathPrefix = "/client/"

// SalesRep is a directory entry. Slug is unique and derived from Name.
type SalesRep struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	Title     *string   `json:"title"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SurveyPath returns the client survey link for the rep.
func (r SalesRep) SurveyPath() string {
	return SurveyPathPrefix + r.Slug
}

// MarshalJSON adds the derived survey_path to the rep fields.
func (r SalesRep) MarshalJSON() ([]byte, error) {
	type rep SalesRep
	return json.Marshal(struct {
		rep
		SurveyPath string `json:"survey_path"`
	}{rep(r), r.SurveyPath()})
}

// CreateCommand carries the data needed to add a rep.
type CreateCommand struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone"`
	Title *string `json:"title"`
}

// UpdateCommand is a partial update. Nil fields are left unchanged.
// Changing Name always regenerates the slug.
type UpdateCommand struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Title    *string `json:"title"`
	IsActive *bool   `json:"is_active"`
}

func (c UpdateCommand) empty() bool {
	return c.Name == nil &&
		c.Email == nil &&
		c.Phone == nil &&
		c.Title == nil &&
		c.IsActive == nil
}

var (
	apostrophes = strings.NewReplacer("'", "", "’", "", "‘", "")
	nonSlug     = regexp.MustCompile(`[^a-z0-9]+`)
)

// Slugify derives a URL-safe slug from a rep name: lower-cased, apostrophes
// removed, each run of other non-alphanumerics collapsed to one hyphen, and
// leading or trailing hyphens trimmed. "Mary O'Neil Jr." becomes "mary-oneil-jr".
func Slugify(name string) string {
	s := strings.ToLower(name)
	s = apostrophes.Replace(s)
	s = nonSlug.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
