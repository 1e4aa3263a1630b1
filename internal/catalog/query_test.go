package catalog

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docvault/internal/model"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestBuild_Empty(t *testing.T) {
	q := Build(NewSearchCriteria())

	assert.Equal(t, "", q.MajorHead)
	assert.Equal(t, "", q.MinorHead)
	assert.Equal(t, "", q.FromDate)
	assert.Equal(t, "", q.ToDate)
	assert.Equal(t, "", q.UploadedBy)
	assert.NotNil(t, q.Tags)
	assert.Empty(t, q.Tags)
	assert.Equal(t, 0, q.Start)
	assert.Equal(t, 500, q.Length)

	b, err := json.Marshal(q)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"major_head": "",
		"minor_head": "",
		"from_date": "",
		"to_date": "",
		"uploaded_by": "",
		"tags": [],
		"start": 0,
		"length": 500,
		"filterId": "",
		"search": {"value": ""}
	}`, string(b))
}

func TestBuild_Populated(t *testing.T) {
	c := NewSearchCriteria()
	c.Category = model.CategoryProfessional
	c.Subcategory = "Finance"
	c.DateFrom = date(2024, time.January, 5)
	c.DateTo = date(2024, time.March, 31)
	c.UploadedBy = "user-7"
	c.Tags = NewTagSet("invoice", "q1")
	c.Offset = 20
	c.Limit = 10

	q := Build(c)

	assert.Equal(t, "Professional", q.MajorHead)
	assert.Equal(t, "Finance", q.MinorHead)
	assert.Equal(t, "2024-01-05", q.FromDate)
	assert.Equal(t, "2024-03-31", q.ToDate)
	assert.Equal(t, "user-7", q.UploadedBy)
	assert.Equal(t, []model.Tag{{Name: "invoice"}, {Name: "q1"}}, q.Tags)
	assert.Equal(t, []string{"invoice", "q1"}, q.TagNames())
	assert.Equal(t, 20, q.Start)
	assert.Equal(t, 10, q.Length)
}

func TestBuild_KeepsCalendarDate(t *testing.T) {
	loc := time.FixedZone("UTC+5:30", 5*3600+1800)
	d := time.Date(2024, time.June, 1, 0, 30, 0, 0, loc)

	c := NewSearchCriteria()
	c.DateFrom = &d

	assert.Equal(t, "2024-06-01", Build(c).FromDate)
}

func TestBuild_DoesNotValidate(t *testing.T) {
	c := SearchCriteria{
		Category: model.Category("Nonsense"),
		DateFrom: date(2025, time.December, 1),
		DateTo:   date(2020, time.January, 1),
		Offset:   -3,
		Limit:    0,
	}

	q := Build(c)

	assert.Equal(t, "Nonsense", q.MajorHead)
	assert.Equal(t, "2025-12-01", q.FromDate)
	assert.Equal(t, "2020-01-01", q.ToDate)
	assert.Equal(t, -3, q.Start)
	assert.Equal(t, 0, q.Length)
}

func TestBuild_Idempotent(t *testing.T) {
	c := NewSearchCriteria()
	c.Category = model.CategoryPersonal
	c.DateTo = date(2023, time.July, 14)
	c.Tags = NewTagSet("b", "a")

	first, err := json.Marshal(Build(c))
	require.NoError(t, err)
	second, err := json.Marshal(Build(c))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
