package handler

import (
	"errors"
	"io"
	"mime/multipart"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"docvault/internal/catalog"
	"docvault/internal/model"
	"docvault/internal/repository"
	"docvault/internal/service"
)

const searchDateLayout = "2006-01-02"

// searchRequest is the search form as the browser sends it. Absent fields mean "no filter";
// absent start/length fall back to the default page window.
type searchRequest struct {
	MajorHead  string   `json:"major_head"`
	MinorHead  string   `json:"minor_head"`
	FromDate   string   `json:"from_date"`
	ToDate     string   `json:"to_date"`
	UploadedBy string   `json:"uploaded_by"`
	Tags       []string `json:"tags"`
	Start      *int     `json:"start"`
	Length     *int     `json:"length"`
}

type previewRequest struct {
	FileURL  string `json:"file_url"`
	FileType string `json:"file_type"`
	FileName string `json:"file_name"`
}

type previewResponse struct {
	catalog.PreviewState
	Mode    catalog.Mode `json:"mode"`
	Message string       `json:"message,omitempty"`
}

type downloadRequest struct {
	FileURL  string `json:"file_url"`
	FileName string `json:"file_name"`
}

type dataResponse struct {
	Data any `json:"data"`
}

// uploadErrorCodes maps form validation failures to error codes. The message is the error text.
var uploadErrorCodes = []struct {
	err  error
	code string
}{
	{catalog.ErrFileRequired, "FILE_REQUIRED"},
	{catalog.ErrFileTypeNotAllowed, "FILE_TYPE_NOT_ALLOWED"},
	{catalog.ErrCategoryInvalid, "INVALID_CATEGORY"},
	{catalog.ErrSubcategoryRequired, "SUBCATEGORY_REQUIRED"},
	{catalog.ErrDocumentDateRequired, "DOCUMENT_DATE_REQUIRED"},
	{catalog.ErrUserRequired, "USER_REQUIRED"},
}

// SearchDocuments runs a catalog search.
//
//	@Summary	Search documents
//	@Tags		documents
//	@Accept		json
//	@Produce	json
//	@Param		body	body		searchRequest	false	"Search filters"
//	@Success	200		{object}	dataResponse
//	@Failure	400		{object}	errorPayload
//	@Failure	502		{object}	errorPayload
//	@Router		/documents/search [post]
func SearchDocuments(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req searchRequest
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&req); err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
			}
		}

		criteria, code, msg := req.criteria()
		if code != "" {
			return writeError(c, fiber.StatusBadRequest, code, msg)
		}

		entries, err := docSvc.Search(c.UserContext(), criteria)
		if err != nil {
			return writeStoreError(c, err, "failed to search documents")
		}
		return c.JSON(dataResponse{Data: entries})
	}
}

func (r searchRequest) criteria() (catalog.SearchCriteria, string, string) {
	c := catalog.NewSearchCriteria()

	category := model.Category(strings.TrimSpace(r.MajorHead))
	if category != model.CategoryAll && !category.Valid() {
		return c, "INVALID_CATEGORY", catalog.ErrCategoryInvalid.Error()
	}
	c.Category = category
	c.Subcategory = r.MinorHead
	c.UploadedBy = r.UploadedBy

	var err error
	if c.DateFrom, err = parseSearchDate(r.FromDate); err != nil {
		return c, "INVALID_DATE", "from_date must be YYYY-MM-DD"
	}
	if c.DateTo, err = parseSearchDate(r.ToDate); err != nil {
		return c, "INVALID_DATE", "to_date must be YYYY-MM-DD"
	}

	for _, t := range r.Tags {
		c.Tags = c.Tags.Add(t)
	}
	if r.Start != nil {
		c.Offset = *r.Start
	}
	if r.Length != nil {
		c.Limit = *r.Length
	}
	return c, "", ""
}

func parseSearchDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(searchDateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// UploadDocument accepts a multipart upload: the blob in "file", metadata in the other fields.
// "tags" may be repeated.
//
//	@Summary	Upload a document
//	@Tags		documents
//	@Accept		multipart/form-data
//	@Produce	json
//	@Param		file				formData	file	true	"Image or PDF"
//	@Param		major_head			formData	string	false	"Personal or Professional"
//	@Param		minor_head			formData	string	true	"Name or department"
//	@Param		document_date		formData	string	true	"DD-MM-YYYY"
//	@Param		document_remarks	formData	string	false	"Remarks"
//	@Param		tags				formData	[]string	false	"Tags"
//	@Param		user_id				formData	string	true	"Uploader"
//	@Success	201	{object}	model.UploadMetadata
//	@Failure	400	{object}	errorPayload
//	@Failure	502	{object}	errorPayload
//	@Router		/documents [post]
func UploadDocument(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		form := catalog.UploadForm{
			Category:    model.Category(strings.TrimSpace(c.FormValue("major_head"))),
			Subcategory: c.FormValue("minor_head"),
			Remarks:     c.FormValue("document_remarks"),
			UserID:      c.FormValue("user_id"),
		}

		if raw := strings.TrimSpace(c.FormValue("document_date")); raw != "" {
			d, err := catalog.ParseUploadDate(raw)
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_DATE", "document_date must be DD-MM-YYYY")
			}
			form.DocumentDate = d
		}

		if mf, err := c.MultipartForm(); err == nil {
			for _, t := range mf.Value["tags"] {
				form.Tags = form.Tags.Add(t)
			}
		}

		var r io.Reader
		if fh, err := c.FormFile("file"); err == nil {
			f, err := fh.Open()
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
			}
			defer f.Close()
			r = f
			form.File = fileInfo(fh)
		}

		meta, err := docSvc.Upload(c.UserContext(), r, form)
		if err != nil {
			for _, m := range uploadErrorCodes {
				if errors.Is(err, m.err) {
					return writeError(c, fiber.StatusBadRequest, m.code, err.Error())
				}
			}
			return writeStoreError(c, err, "failed to upload document")
		}
		return c.Status(fiber.StatusCreated).JSON(meta)
	}
}

func fileInfo(fh *multipart.FileHeader) *model.FileInfo {
	return &model.FileInfo{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
	}
}

// TagSuggestions lists tag labels for the upload form. It always answers 200.
//
//	@Summary	Tag suggestions
//	@Tags		documents
//	@Produce	json
//	@Param		term	query		string	false	"Filter"
//	@Success	200		{object}	dataResponse
//	@Router		/documents/tags [get]
func TagSuggestions(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(dataResponse{Data: docSvc.Suggestions(c.UserContext(), c.Query("term"))})
	}
}

// ListCategories lists categories with their subcategory choices.
//
//	@Summary	Categories
//	@Tags		documents
//	@Produce	json
//	@Success	200	{object}	dataResponse
//	@Router		/categories [get]
func ListCategories(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(dataResponse{Data: docSvc.Categories()})
	}
}

// PreviewDocument decides how a search result is previewed.
//
//	@Summary	Preview decision
//	@Tags		documents
//	@Accept		json
//	@Produce	json
//	@Param		body	body		previewRequest	true	"File"
//	@Success	200		{object}	previewResponse
//	@Failure	400		{object}	errorPayload
//	@Router		/documents/preview [post]
func PreviewDocument(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req previewRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		state := docSvc.Preview(req.FileURL, req.FileType, req.FileName)
		return c.JSON(previewResponse{
			PreviewState: state,
			Mode:         state.Mode(),
			Message:      state.Message(),
		})
	}
}

// DownloadDocument returns a download directive, or 422 when the file type is not downloadable.
//
//	@Summary	Download directive
//	@Tags		documents
//	@Accept		json
//	@Produce	json
//	@Param		body	body		downloadRequest	true	"File"
//	@Success	200		{object}	catalog.DownloadDirective
//	@Failure	400		{object}	errorPayload
//	@Failure	422		{object}	errorPayload
//	@Router		/documents/download [post]
func DownloadDocument(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req downloadRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		out := docSvc.Download(req.FileURL, req.FileName)
		if !out.Allowed {
			return writeError(c, fiber.StatusUnprocessableEntity, "DOWNLOAD_UNSUPPORTED", out.Warning)
		}
		return c.JSON(out.Directive)
	}
}

// writeStoreError passes document store messages through and hides everything else behind fallback.
func writeStoreError(c *fiber.Ctx, err error, fallback string) error {
	if errors.Is(err, repository.ErrInvalidPage) {
		return writeError(c, fiber.StatusBadRequest, "INVALID_PAGE", err.Error())
	}
	var ue *repository.UpstreamError
	if errors.As(err, &ue) {
		return writeError(c, fiber.StatusBadGateway, "UPSTREAM_ERROR", ue.Message)
	}
	return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", fallback)
}
