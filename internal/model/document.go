package model

// DocumentRecord is a catalog entry as returned by a document store.
// Everything except FileURL, FileName and FileType is opaque display data.
type DocumentRecord struct {
	ID           string `json:"id,omitempty"`
	FileURL      string `json:"file_url"`
	FileName     string `json:"file_name,omitempty"`
	FileType     string `json:"file_type,omitempty"`
	MajorHead    string `json:"major_head"`
	MinorHead    string `json:"minor_head"`
	DocumentDate string `json:"document_date"`
	UploadedBy   string `json:"uploaded_by"`
	UploadTime   string `json:"upload_time"`
	Remarks      string `json:"document_remarks"`
	Tags         []Tag  `json:"tags"`

	// StoragePath is the object key for stores that keep blobs themselves. Never exposed.
	StoragePath string `json:"-"`
}

// UploadMetadata is the validated metadata record sent along with an uploaded file.
type UploadMetadata struct {
	MajorHead       string `json:"major_head"`
	MinorHead       string `json:"minor_head"`
	DocumentDate    string `json:"document_date"` // DD-MM-YYYY
	DocumentRemarks string `json:"document_remarks"`
	Tags            []Tag  `json:"tags"`
	UserID          string `json:"user_id"`
}

// FileInfo describes an uploaded blob.
type FileInfo struct {
	Name        string
	ContentType string
	Size        int64
}
