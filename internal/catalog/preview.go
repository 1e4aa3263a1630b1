package catalog

const (
	// DefaultDownloadName is suggested when a download has no file name.
	DefaultDownloadName = "document"

	UnsupportedPreviewMessage  = "Preview not available for this file type. Please use the download button to access the file."
	UnsupportedDownloadWarning = "Download not supported for this file type"
)

// PreviewState is either closed or open on a classified file.
// The zero value is closed.
type PreviewState struct {
	Open           bool           `json:"open"`
	Classification Classification `json:"classification,omitempty"`
	URL            string         `json:"url,omitempty"`
}

// Mode returns the presentation mode of an open preview, or "" when closed.
func (p PreviewState) Mode() Mode {
	if !p.Open {
		return ""
	}
	return p.Classification.Mode()
}

// Message is the text shown instead of content for unsupported files.
func (p PreviewState) Message() string {
	if p.Open && p.Classification == ClassUnsupported {
		return UnsupportedPreviewMessage
	}
	return ""
}

// DownloadDirective tells the caller to fetch URL and save it as FileName.
type DownloadDirective struct {
	URL      string `json:"url"`
	FileName string `json:"file_name"`
}

// DownloadOutcome is the result of a download request. A refused download carries a
// warning for the user and no directive.
type DownloadOutcome struct {
	Allowed   bool
	Directive DownloadDirective
	Warning   string
}

// Orchestrator owns the preview state of a single session and decides what preview and
// download requests do. It is not safe for concurrent use.
type Orchestrator struct {
	state PreviewState
}

// State returns the current preview state.
func (o *Orchestrator) State() PreviewState {
	return o.state
}

// RequestPreview opens the preview on fileURL whatever the classification; unsupported
// files open with an explanatory message rather than being dropped.
func (o *Orchestrator) RequestPreview(fileURL, declaredType, fileName string) PreviewState {
	o.state = PreviewState{
		Open:           true,
		Classification: Classify(fileName, declaredType, fileURL),
		URL:            fileURL,
	}
	return o.state
}

// RequestDownload returns a directive for supported files. The URL is passed through
// untouched. Unsupported files are refused and the preview state is left as it was.
func (o *Orchestrator) RequestDownload(fileURL, fileName string) DownloadOutcome {
	if !Classify(fileName, "", fileURL).Supported() {
		return DownloadOutcome{Warning: UnsupportedDownloadWarning}
	}
	name := fileName
	if name == "" {
		name = DefaultDownloadName
	}
	return DownloadOutcome{
		Allowed:   true,
		Directive: DownloadDirective{URL: fileURL, FileName: name},
	}
}

// ClosePreview closes the preview and forgets the file it was showing.
func (o *Orchestrator) ClosePreview() {
	o.state = PreviewState{}
}
