package catalog

import (
	"time"

	"docvault/internal/model"
)

const (
	DefaultOffset = 0
	DefaultLimit  = 500

	queryDateLayout = "2006-01-02"
)

// SearchCriteria is the user's (possibly partial) filter selection.
// DateTo >= DateFrom is a hint for input widgets; it is not enforced here.
type SearchCriteria struct {
	Category    model.Category
	Subcategory string
	DateFrom    *time.Time
	DateTo      *time.Time
	UploadedBy  string
	Tags        TagSet
	Offset      int
	Limit       int
}

// NewSearchCriteria returns empty criteria with the default page window.
func NewSearchCriteria() SearchCriteria {
	return SearchCriteria{Offset: DefaultOffset, Limit: DefaultLimit}
}

// SearchValue mirrors the free-text search object of the search contract. It is always sent empty.
type SearchValue struct {
	Value string `json:"value"`
}

// SerializedQuery is the complete filter object sent to the search collaborator.
// Every field is always present; an empty string means "no filter".
type SerializedQuery struct {
	MajorHead  string      `json:"major_head"`
	MinorHead  string      `json:"minor_head"`
	FromDate   string      `json:"from_date"`
	ToDate     string      `json:"to_date"`
	UploadedBy string      `json:"uploaded_by"`
	Tags       []model.Tag `json:"tags"`
	Start      int         `json:"start"`
	Length     int         `json:"length"`
	FilterID   string      `json:"filterId"`
	Search     SearchValue `json:"search"`
}

// Build renders criteria into the search contract. It never rejects input: nonsensical
// filters are left for the search collaborator to refuse.
func Build(c SearchCriteria) SerializedQuery {
	return SerializedQuery{
		MajorHead:  string(c.Category),
		MinorHead:  c.Subcategory,
		FromDate:   formatQueryDate(c.DateFrom),
		ToDate:     formatQueryDate(c.DateTo),
		UploadedBy: c.UploadedBy,
		Tags:       c.Tags.Records(),
		Start:      c.Offset,
		Length:     c.Limit,
	}
}

// TagNames returns the tag names of q in order.
func (q SerializedQuery) TagNames() []string {
	out := make([]string, 0, len(q.Tags))
	for _, t := range q.Tags {
		out = append(out, t.Name)
	}
	return out
}

// formatQueryDate keeps the calendar date as given; no timezone conversion is applied.
func formatQueryDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(queryDateLayout)
}
