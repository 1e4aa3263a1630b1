package remote

import (
	"strconv"

	"docvault/internal/model"
)

type envelope[T any] struct {
	Data T `json:"data"`
}

type wireTag struct {
	Label string `json:"label"`
}

// wireRecord is a search result as the hosted API returns it. Older deployments name the
// uploader user_id and the upload time created_at; both spellings are accepted.
type wireRecord struct {
	ID           any         `json:"document_id"`
	FileURL      string      `json:"file_url"`
	FileName     string      `json:"file_name"`
	FileType     string      `json:"file_type"`
	MajorHead    string      `json:"major_head"`
	MinorHead    string      `json:"minor_head"`
	DocumentDate string      `json:"document_date"`
	UploadedBy   string      `json:"uploaded_by"`
	UserID       string      `json:"user_id"`
	UploadTime   string      `json:"upload_time"`
	CreatedAt    string      `json:"created_at"`
	Remarks      string      `json:"document_remarks"`
	Tags         []model.Tag `json:"tags"`
}

func (w wireRecord) toRecord() model.DocumentRecord {
	tags := w.Tags
	if tags == nil {
		tags = []model.Tag{}
	}
	return model.DocumentRecord{
		ID:           idString(w.ID),
		FileURL:      w.FileURL,
		FileName:     w.FileName,
		FileType:     w.FileType,
		MajorHead:    w.MajorHead,
		MinorHead:    w.MinorHead,
		DocumentDate: w.DocumentDate,
		UploadedBy:   firstNonEmpty(w.UploadedBy, w.UserID),
		UploadTime:   firstNonEmpty(w.UploadTime, w.CreatedAt),
		Remarks:      w.Remarks,
		Tags:         tags,
	}
}

func idString(v any) string {
	switch id := v.(type) {
	case string:
		return id
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	default:
		return ""
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
