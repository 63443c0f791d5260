package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/zhenweng/contract-parser/internal/common"
	"github.com/zhenweng/contract-parser/internal/parser"
	"github.com/zhenweng/contract-parser/internal/textextract"
)

// runparse parses a single document and prints the result JSON. It talks to
// no database; useful for checking extraction against a new document layout.
func main() {
	var (
		kind   = flag.String("kind", "contract", "document kind: contract or invoice")
		pretty = flag.Bool("pretty", true, "indent the JSON output")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if flag.NArg() != 1 {
		logger.Error("usage", "cmd", "runparse [-kind contract|invoice] <file>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	cfg := common.LoadConfig()
	extractor := textextract.NewExtractor(textextract.Config{
		Pdftotext:     cfg.Parser.Pdftotext,
		Tesseract:     cfg.Parser.Tesseract,
		TesseractLang: cfg.Parser.TesseractLang,
		TessdataDir:   cfg.Parser.TessdataDir,
	}, logger)
	p := parser.New(parser.Config{UploadDir: cfg.Parser.UploadDir}, extractor, logger)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Parser.ParseTimeout)
	defer cancel()

	start := time.Now()
	var (
		out any
		err error
	)
	switch strings.ToLower(*kind) {
	case "invoice":
		out, err = p.ParseInvoice(ctx, path)
	case "contract":
		out, err = p.ParseContract(ctx, path)
	default:
		logger.Error("invalid kind", "kind", *kind)
		os.Exit(2)
	}
	if err != nil {
		logger.Error("parse failed", "path", path, "error", err, "duration_ms", time.Since(start).Milliseconds())
		os.Exit(1)
	}

	var blob []byte
	if *pretty {
		blob, err = json.MarshalIndent(out, "", "  ")
	} else {
		blob, err = json.Marshal(out)
	}
	if err != nil {
		logger.Error("marshal result", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(blob))
}
