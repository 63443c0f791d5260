package textextract

import (
	"context"
	"strings"
)

// ExtractPDF extracts text page by page. The form feeds pdftotext emits as
// page separators keep indices aligned with the source document, so a page
// with no extractable text still occupies its slot as "".
func (e *Extractor) ExtractPDF(ctx context.Context, path string) (Result, error) {
	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return Result{Method: "pdf-text", Warnings: []string{string(errb)}}, err
	}

	// pdftotext terminates every page with \f, including the last one.
	text := strings.TrimSuffix(string(out), "\f")
	pages := strings.Split(text, "\f")
	for i := range pages {
		pages[i] = strings.TrimSpace(pages[i])
	}

	return Result{
		Text:   strings.Join(pages, "\n\n"),
		Pages:  pages,
		Method: "pdf-text",
	}, nil
}
