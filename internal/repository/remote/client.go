package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"docvault/internal/catalog"
	"docvault/internal/model"
	"docvault/internal/repository"
)

const (
	searchPath = "/searchDocumentEntry"
	uploadPath = "/saveDocumentEntry"
	tagsPath   = "/documentTags"

	tokenHeader  = "token"
	maxErrorBody = 4096
)

var ErrBaseURLRequired = errors.New("remote document store: base url is required")

// Client talks to the hosted document API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New builds a Client. Outgoing requests are traced through otelhttp.
func New(baseURL, token string, timeout time.Duration) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, ErrBaseURLRequired
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}, nil
}

var _ repository.DocumentStore = (*Client)(nil)

func (c *Client) Search(ctx context.Context, q catalog.SerializedQuery) ([]model.DocumentRecord, error) {
	body, err := json.Marshal(q)
	if err != nil {
		return nil, fmt.Errorf("marshal search request: %w", err)
	}

	var out envelope[[]wireRecord]
	if err := c.do(ctx, searchPath, "application/json", bytes.NewReader(body), &out, "search"); err != nil {
		return nil, err
	}

	recs := make([]model.DocumentRecord, 0, len(out.Data))
	for _, w := range out.Data {
		recs = append(recs, w.toRecord())
	}
	return recs, nil
}

// Upload sends the blob as the "file" part and the metadata as a JSON "data" field.
// The body is streamed, never buffered whole.
func (c *Client) Upload(ctx context.Context, r io.Reader, file model.FileInfo, meta model.UploadMetadata) error {
	data, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("marshal upload metadata: %w", err)
	}

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	go func() {
		pw.CloseWithError(writeUploadBody(mw, r, file, data))
	}()

	err = c.do(ctx, uploadPath, mw.FormDataContentType(), pr, nil, "upload")
	pr.Close()
	return err
}

func writeUploadBody(mw *multipart.Writer, r io.Reader, file model.FileInfo, data []byte) error {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, file.Name))
	if file.ContentType != "" {
		h.Set("Content-Type", file.ContentType)
	}
	part, err := mw.CreatePart(h)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, r); err != nil {
		return fmt.Errorf("copy file part: %w", err)
	}
	if err := mw.WriteField("data", string(data)); err != nil {
		return err
	}
	return mw.Close()
}

func (c *Client) Tags(ctx context.Context, term string) ([]string, error) {
	body, err := json.Marshal(map[string]string{"term": strings.TrimSpace(term)})
	if err != nil {
		return nil, fmt.Errorf("marshal tags request: %w", err)
	}

	var out envelope[[]wireTag]
	if err := c.do(ctx, tagsPath, "application/json", bytes.NewReader(body), &out, "tags"); err != nil {
		return nil, err
	}

	labels := make([]string, 0, len(out.Data))
	for _, t := range out.Data {
		if t.Label != "" {
			labels = append(labels, t.Label)
		}
	}
	return labels, nil
}

func (c *Client) do(ctx context.Context, path, contentType string, body io.Reader, out any, operation string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create %s request: %w", operation, err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set(tokenHeader, c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("document store %s request: %w", operation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return upstreamError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", operation, err)
	}
	return nil
}

// upstreamError keeps the API's own message when it sends one.
func upstreamError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var body struct {
		Message string `json:"message"`
	}
	msg := ""
	if json.Unmarshal(raw, &body) == nil {
		msg = body.Message
	}
	if msg == "" {
		msg = strings.TrimSpace(string(raw))
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return &repository.UpstreamError{StatusCode: resp.StatusCode, Message: msg}
}
