package textextract

import (
	"context"
	"fmt"
)

// ExtractImage OCRs a single raster image and treats it as the whole
// document. Language defaults to mixed simplified-Chinese and English.
func (e *Extractor) ExtractImage(ctx context.Context, path string) (Result, error) {
	args := []string{path, "stdout", "-l", e.cfg.TesseractLang}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}

	// tesseract <file> stdout -l <lang>
	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return Result{Method: "image-ocr", Warnings: []string{string(errb)}}, fmt.Errorf("tesseract: %w", err)
	}

	return Result{
		Text:     Normalize(string(out)),
		Method:   "image-ocr",
		Language: e.cfg.TesseractLang,
	}, nil
}
