package catalog

import (
	"errors"
	"strings"
	"time"

	"docvault/internal/model"
)

const uploadDateLayout = "02-01-2006"

var (
	ErrFileRequired         = errors.New("please select a file")
	ErrFileTypeNotAllowed   = errors.New("only image files (JPG, JPEG, PNG, GIF, WEBP) and PDF files are allowed")
	ErrCategoryInvalid      = errors.New("category must be Personal or Professional")
	ErrSubcategoryRequired  = errors.New("please select a name or department")
	ErrDocumentDateRequired = errors.New("document date is required")
	ErrUserRequired         = errors.New("uploader id is required")
)

// UploadForm is what the user filled in on the upload form.
type UploadForm struct {
	File         *model.FileInfo // nil when no file was chosen
	Category     model.Category  // empty means Personal
	Subcategory  string
	DocumentDate time.Time
	Remarks      string
	Tags         TagSet
	UserID       string
}

// PrepareUpload validates the form and renders the metadata record for the upload call.
// Checks run in the order the form presents them and the first failure is returned.
func PrepareUpload(f UploadForm) (model.UploadMetadata, error) {
	if f.File == nil {
		return model.UploadMetadata{}, ErrFileRequired
	}
	if !UploadAllowed(f.File.Name, f.File.ContentType) {
		return model.UploadMetadata{}, ErrFileTypeNotAllowed
	}

	category := f.Category
	if category == model.CategoryAll {
		category = model.CategoryPersonal
	}
	if !category.Valid() {
		return model.UploadMetadata{}, ErrCategoryInvalid
	}

	subcategory := strings.TrimSpace(f.Subcategory)
	if subcategory == "" {
		return model.UploadMetadata{}, ErrSubcategoryRequired
	}
	if f.DocumentDate.IsZero() {
		return model.UploadMetadata{}, ErrDocumentDateRequired
	}
	userID := strings.TrimSpace(f.UserID)
	if userID == "" {
		return model.UploadMetadata{}, ErrUserRequired
	}

	return model.UploadMetadata{
		MajorHead:       string(category),
		MinorHead:       subcategory,
		DocumentDate:    f.DocumentDate.Format(uploadDateLayout),
		DocumentRemarks: f.Remarks,
		Tags:            f.Tags.Records(),
		UserID:          userID,
	}, nil
}

// UploadAllowed reports whether a file may be uploaded. Unlike Classify, both the
// extension and the declared content type must be acceptable.
func UploadAllowed(fileName, contentType string) bool {
	name := strings.ToLower(fileName)
	ext := name
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		ext = name[i+1:]
	}
	if _, ok := classifyExtension(ext); !ok {
		return false
	}
	return strings.HasPrefix(contentType, imageTypePrefix) || contentType == pdfContentType
}

// ParseUploadDate parses a DD-MM-YYYY document date.
func ParseUploadDate(s string) (time.Time, error) {
	return time.Parse(uploadDateLayout, s)
}
