package constants

import "strings"

// Format is the acquisition backend family for a file extension.
const (
	PDF   = "PDF"
	DOCX  = "DOCX"
	IMAGE = "IMAGE"
	// UNKNOWN marks jobs for extensions no backend handles; the job row
	// still records the attempt and closes with an unsupported result.
	UNKNOWN = "UNKNOWN"
)

// FileFormats holds the allowed values for the format field in ParseJob.
var FileFormats = []string{PDF, DOCX, IMAGE, UNKNOWN}

// AllowedExtensions holds the default allowed file extensions for document ingestion.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"docx": {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a normalized extension to its backend family.
// Returns "" for extensions no backend handles.
func MapExtToFormat(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "docx":
		return DOCX
	case "jpg", "jpeg", "png":
		return IMAGE
	default:
		return ""
	}
}
