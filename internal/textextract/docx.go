package textextract

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// ExtractDOCX pulls the flattened text body out of the word/document.xml
// entry. DOCX carries no page structure, so Pages stays empty and stamp
// detection is skipped downstream.
func (e *Extractor) ExtractDOCX(ctx context.Context, path string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{Method: "docx-text"}, err
	}

	zr, err := zip.OpenReader(path)
	if err != nil {
		return Result{Method: "docx-text"}, fmt.Errorf("open docx: %w", err)
	}
	defer func() {
		if cerr := zr.Close(); cerr != nil {
			e.logger.Warn("close docx archive", "path", path, "error", cerr)
		}
	}()

	var doc io.ReadCloser
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			if doc, err = f.Open(); err != nil {
				return Result{Method: "docx-text"}, fmt.Errorf("open document.xml: %w", err)
			}
			break
		}
	}
	if doc == nil {
		return Result{Method: "docx-text"}, fmt.Errorf("document.xml not found in %s", path)
	}
	defer func() {
		if cerr := doc.Close(); cerr != nil {
			e.logger.Warn("close document.xml", "path", path, "error", cerr)
		}
	}()

	text, err := flattenDocumentXML(doc)
	if err != nil {
		return Result{Method: "docx-text"}, fmt.Errorf("decode document.xml: %w", err)
	}

	return Result{
		Text:   text,
		Method: "docx-text",
	}, nil
}

// flattenDocumentXML walks the WordprocessingML token stream, keeping the
// character data inside <w:t> runs and breaking lines on paragraph ends.
func flattenDocumentXML(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)
	var b strings.Builder
	inText := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "br", "cr":
				b.WriteByte('\n')
			case "tab":
				b.WriteByte(' ')
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				b.WriteByte('\n')
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}
	return b.String(), nil
}
