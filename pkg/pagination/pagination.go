package pagination

import (
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/JaimeStill/assessor/pkg/query"
)

// SortFields wraps []query.SortField with flexible JSON unmarshaling.
// Accepts either a string ("name,-submitted_at") or an array of SortField objects.
type SortFields []query.SortField

// UnmarshalJSON supports unmarshaling from a comma-separated string or array format.
func (s *SortFields) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = query.ParseSortFields(str)
		return nil
	}

	var fields []query.SortField
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*s = fields
	return nil
}

// PageRequest represents a client request for a window of rows with optional search and sorting.
type PageRequest struct {
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
	Search *string    `json:"search,omitempty"`
	Sort   SortFields `json:"sort,omitempty"`
}

// Normalize clamps the request to the configured limits.
// A missing limit takes the default; limits above the maximum are capped; negative offsets become zero.
func (r *PageRequest) Normalize(cfg Config) {
	if r.Limit < 1 {
		r.Limit = cfg.DefaultLimit
	}
	if r.Limit > cfg.MaxLimit {
		r.Limit = cfg.MaxLimit
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
}

// PageRequestFromQuery parses pagination parameters from URL query values.
// Supported parameters: limit, offset, search, sort.
func PageRequestFromQuery(values url.Values, cfg Config) PageRequest {
	limit, _ := strconv.Atoi(values.Get("limit"))
	offset, _ := strconv.Atoi(values.Get("offset"))

	var search *string
	if s := values.Get("search"); s != "" {
		search = &s
	}

	req := PageRequest{
		Limit:  limit,
		Offset: offset,
		Search: search,
		Sort:   query.ParseSortFields(values.Get("sort")),
	}

	req.Normalize(cfg)
	return req
}

// PageResult holds a page of data along with the total row count for the unpaged query.
type PageResult[T any] struct {
	Data   []T `json:"data"`
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// NewPageResult creates a PageResult, substituting an empty slice for nil data.
func NewPageResult[T any](data []T, total, limit, offset int) PageResult[T] {
	if data == nil {
		data = []T{}
	}

	return PageResult[T]{
		Data:   data,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}
}
