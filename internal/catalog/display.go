package catalog

import (
	"strings"

	"docvault/internal/model"
)

const defaultDisplayName = "Document"

// DisplayName is the name shown for a record: its file name, else the last segment
// of its URL path, else "Document".
func DisplayName(rec model.DocumentRecord) string {
	if rec.FileName != "" {
		return rec.FileName
	}
	if rec.FileURL != "" {
		path, _, _ := strings.Cut(rec.FileURL, "?")
		if name := path[strings.LastIndexByte(path, '/')+1:]; name != "" {
			return name
		}
	}
	return defaultDisplayName
}

// Entry is a search result decorated for display.
type Entry struct {
	model.DocumentRecord
	DisplayName    string         `json:"display_name"`
	Classification Classification `json:"classification"`
}

// Decorate attaches display names and classifications to records, keeping their order.
// The display name stands in for a missing file name when classifying.
func Decorate(recs []model.DocumentRecord) []Entry {
	out := make([]Entry, 0, len(recs))
	for _, r := range recs {
		name := DisplayName(r)
		out = append(out, Entry{
			DocumentRecord: r,
			DisplayName:    name,
			Classification: Classify(name, r.FileType, r.FileURL),
		})
	}
	return out
}
