package domain

import (
	"fmt"
	"time"
)

// Pagination defaults and the wire layout of date filters.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	DateLayout      = "2006-01-02"
)

// SearchRequest is the search input. All fields are optional; an absent
// field contributes no predicate. Page and PageSize are pointers so an
// explicitly supplied non-positive value can be rejected instead of
// silently defaulted.
type SearchRequest struct {
	Page     *int `json:"page,omitempty"`
	PageSize *int `json:"page_size,omitempty"`

	OrgName   string `json:"orgName,omitempty"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`

	WenhaoText  string `json:"wenhaoText,omitempty"`
	PeopleText  string `json:"peopleText,omitempty"`
	EventText   string `json:"eventText,omitempty"`
	LawText     string `json:"lawText,omitempty"`
	PenaltyText string `json:"penaltyText,omitempty"`
	TitleText   string `json:"titleText,omitempty"`
	OrgText     string `json:"orgText,omitempty"`

	Industry string `json:"industry,omitempty"`
	Province string `json:"province,omitempty"`
	Category string `json:"category,omitempty"`

	MinPenalty float64 `json:"min_penalty,omitempty"`
	Keyword    string  `json:"keyword,omitempty"`
}

// Validate rejects requests that must not reach the store: explicitly
// non-positive pagination, a negative penalty floor, or unparseable dates.
func (r *SearchRequest) Validate() error {
	if r.Page != nil && *r.Page <= 0 {
		return fmt.Errorf("%w: page must be positive, got %d", ErrInvalidRequest, *r.Page)
	}
	if r.PageSize != nil && *r.PageSize <= 0 {
		return fmt.Errorf("%w: page_size must be positive, got %d", ErrInvalidRequest, *r.PageSize)
	}
	if r.MinPenalty < 0 {
		return fmt.Errorf("%w: min_penalty must not be negative", ErrInvalidRequest)
	}
	if r.StartDate != "" {
		if _, err := time.Parse(DateLayout, r.StartDate); err != nil {
			return fmt.Errorf("%w: bad startDate %q", ErrInvalidRequest, r.StartDate)
		}
	}
	if r.EndDate != "" {
		if _, err := time.Parse(DateLayout, r.EndDate); err != nil {
			return fmt.Errorf("%w: bad endDate %q", ErrInvalidRequest, r.EndDate)
		}
	}
	return nil
}

// ResolvedPage returns the requested page, defaulting to 1.
func (r *SearchRequest) ResolvedPage() int {
	if r.Page == nil {
		return DefaultPage
	}
	return *r.Page
}

// ResolvedPageSize returns the requested page size, defaulting to def and
// clamped to max.
func (r *SearchRequest) ResolvedPageSize(def, max int) int {
	size := def
	if r.PageSize != nil {
		size = *r.PageSize
	}
	if max > 0 && size > max {
		size = max
	}
	return size
}

// SearchResponse is one page of normalized cases plus pagination metadata.
type SearchResponse struct {
	Cases      []CaseRecord `json:"cases"`
	Total      int64        `json:"total"`
	Page       int          `json:"page"`
	PageSize   int          `json:"page_size"`
	TotalPages int64        `json:"total_pages"`
}
