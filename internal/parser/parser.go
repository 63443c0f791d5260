// Package parser is the document parsing facade: it resolves a file under
// the storage root, dispatches to the right acquisition backend by
// extension, runs field extraction and stamp detection, and classifies the
// outcome. Acquisition-time failures never escape as errors; they downgrade
// to a failed status on the result so callers always have something to
// store for audit. Only the two precondition violations - unsupported
// extension and missing file - propagate as errors.
package parser

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/zhenweng/contract-parser/constants"
	"github.com/zhenweng/contract-parser/internal/textextract"
)

// acquire is one backend's contract: file path in, text (and page
// structure, when the format has one) out.
type acquire func(ctx context.Context, path string) (textextract.Result, error)

type Config struct {
	// UploadDir is the storage root relative paths are resolved under.
	UploadDir string
}

type Parser struct {
	cfg      Config
	backends map[string]acquire
	logger   *slog.Logger
}

func New(cfg Config, extractor *textextract.Extractor, logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{
		cfg: cfg,
		backends: map[string]acquire{
			"pdf":  extractor.ExtractPDF,
			"docx": extractor.ExtractDOCX,
			"jpg":  extractor.ExtractImage,
			"jpeg": extractor.ExtractImage,
			"png":  extractor.ExtractImage,
		},
		logger: logger,
	}
}

// resolve maps a possibly-relative document path onto the storage root and
// verifies existence. The missing-file case is the one fatal error here: the
// caller promised the file was already persisted.
func (p *Parser) resolve(path string) (string, error) {
	full := path
	if p.cfg.UploadDir != "" && !filepath.IsAbs(path) {
		full = filepath.Join(p.cfg.UploadDir, path)
	}
	if _, err := os.Stat(full); err != nil {
		return "", fmt.Errorf("文件不存在: %s: %w", path, ErrFileNotFound)
	}
	return full, nil
}

// backendFor rejects the legacy .doc container with its own message and
// everything else outside the allow-list generically.
func (p *Parser) backendFor(path string) (acquire, string, error) {
	ext := constants.NormalizeExt(filepath.Ext(path))
	if b, ok := p.backends[ext]; ok {
		return b, ext, nil
	}
	if ext == "doc" {
		return nil, ext, ErrDocUnsupported
	}
	return nil, ext, &UnsupportedTypeError{Ext: ext}
}

// ParseContract parses one contract document.
func (p *Parser) ParseContract(ctx context.Context, path string) (*ContractResult, error) {
	backend, ext, err := p.backendFor(path)
	if err != nil {
		return nil, err
	}
	full, err := p.resolve(path)
	if err != nil {
		return nil, err
	}

	res, err := backend(ctx, full)
	if err != nil {
		p.logger.Error("contract acquisition failed", "path", path, "ext", ext, "error", err)
		return FailedContractResult(failureMessage(ext, err)), nil
	}

	out := BuildContractResult(res.Text, res.Pages)
	p.logger.Info("contract parsed",
		"path", path,
		"method", res.Method,
		"pages", len(res.Pages),
		"stamp_pages", len(out.StampPages),
		"bytes", len(out.RawText),
		"duration_ms", res.Duration.Milliseconds(),
	)
	return out, nil
}

// ParseInvoice parses one invoice document.
func (p *Parser) ParseInvoice(ctx context.Context, path string) (*InvoiceResult, error) {
	backend, ext, err := p.backendFor(path)
	if err != nil {
		return nil, err
	}
	full, err := p.resolve(path)
	if err != nil {
		return nil, err
	}

	res, err := backend(ctx, full)
	if err != nil {
		p.logger.Error("invoice acquisition failed", "path", path, "ext", ext, "error", err)
		return FailedInvoiceResult(failureMessage(ext, err)), nil
	}

	out := BuildInvoiceResult(res.Text)
	p.logger.Info("invoice parsed",
		"path", path,
		"method", res.Method,
		"bytes", len(out.RawText),
		"duration_ms", res.Duration.Milliseconds(),
	)
	return out, nil
}

func failureMessage(ext string, err error) string {
	if constants.MapExtToFormat(ext) == constants.IMAGE {
		return msgOCRFailed + err.Error()
	}
	return msgParseFailed + err.Error()
}
