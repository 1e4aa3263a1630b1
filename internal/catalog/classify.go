package catalog

import "strings"

// Classification is the derived kind of a file. It drives preview and download behaviour.
type Classification string

const (
	ClassImage       Classification = "image"
	ClassDocument    Classification = "document"
	ClassUnsupported Classification = "unsupported"
)

// Mode is how an open preview presents its content.
type Mode string

const (
	ModeImage    Mode = "image"    // inline <img>
	ModeEmbedded Mode = "embedded" // embedded document viewer
	ModeMessage  Mode = "message"  // explanatory text only
)

var imageExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"gif":  {},
	"webp": {},
}

const (
	pdfExtension    = "pdf"
	pdfContentType  = "application/pdf"
	imageTypePrefix = "image/"
)

// Classify determines the kind of a file from its name, declared content type and URL.
// An empty string means the input is absent. The extension is trusted over the declared
// type, which only decides when the extension is missing or unknown. Every input yields a
// classification; unknown files are ClassUnsupported.
func Classify(fileName, declaredType, fileURL string) Classification {
	if c, ok := classifyExtension(candidateExtension(fileName, fileURL)); ok {
		return c
	}
	switch {
	case strings.HasPrefix(declaredType, imageTypePrefix):
		return ClassImage
	case declaredType == pdfContentType:
		return ClassDocument
	}
	return ClassUnsupported
}

// Mode returns the presentation mode for c.
func (c Classification) Mode() Mode {
	switch c {
	case ClassImage:
		return ModeImage
	case ClassDocument:
		return ModeEmbedded
	default:
		return ModeMessage
	}
}

// Supported reports whether the file can be previewed and downloaded.
func (c Classification) Supported() bool {
	return c == ClassImage || c == ClassDocument
}

func classifyExtension(ext string) (Classification, bool) {
	if _, ok := imageExtensions[ext]; ok {
		return ClassImage, true
	}
	if ext == pdfExtension {
		return ClassDocument, true
	}
	return "", false
}

// candidateExtension picks the extension from the file name when there is one, otherwise
// from the URL path with its query string removed. The URL is never consulted when a name
// is present, even if the name has no extension.
func candidateExtension(fileName, fileURL string) string {
	switch {
	case fileName != "":
		return extension(fileName)
	case fileURL != "":
		path, _, _ := strings.Cut(fileURL, "?")
		return extension(path)
	default:
		return ""
	}
}

// extension returns the lower-cased text after the last dot, or "" when there is none.
func extension(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i < 0 || i == len(name)-1 {
		return ""
	}
	return strings.ToLower(name[i+1:])
}
