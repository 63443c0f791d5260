package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/zhenweng/contract-parser/constants"
	"github.com/zhenweng/contract-parser/internal/common"
	"github.com/zhenweng/contract-parser/internal/entity"
	"github.com/zhenweng/contract-parser/internal/export"
	"github.com/zhenweng/contract-parser/internal/ingest"
	"github.com/zhenweng/contract-parser/internal/parser"
	"github.com/zhenweng/contract-parser/internal/pipeline"
	repo "github.com/zhenweng/contract-parser/internal/repository"
	"github.com/zhenweng/contract-parser/internal/textextract"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem   = flag.Bool("inmem", false, "use in-memory SQLite database")
		dir     = flag.String("dir", "", "directory to process documents from (required)")
		kind    = flag.String("kind", "contract", "document kind: contract or invoice")
		project = flag.String("project", "Local Batch", "project name to file documents under")
		out     = flag.String("out", "", "output XLSX file path (optional, defaults to parent directory)")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}

	docKind := strings.ToUpper(*kind)
	if docKind != string(constants.KindContract) && docKind != string(constants.KindInvoice) {
		printError("Error: --kind must be contract or invoice\n")
		os.Exit(1)
	}

	// If output file not specified, use parent directory with default filename
	if *out == "" {
		parentDir := filepath.Dir(*dir)
		*out = filepath.Join(parentDir, "documents.xlsx")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	cfg := common.LoadConfig()

	dbResult, err := common.InitDatabase(ctx, cfg, *inmem, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer dbResult.Cleanup()

	entc := dbResult.Client

	projectsRepo := repo.NewProjectRepository(entc, logger)
	contractsRepo := repo.NewContractRepository(entc, logger)
	invoicesRepo := repo.NewInvoiceRepository(entc, logger)
	filesRepo := repo.NewDocumentFileRepository(entc, logger)
	jobsRepo := repo.NewParseJobRepository(entc, logger)

	proj, err := projectsRepo.GetOrCreate(ctx, &entity.Project{Name: *project})
	if err != nil {
		logger.Error("failed to get or create project", "error", err)
		os.Exit(1)
	}
	logger.Info("using project", "id", proj.ID, "name", proj.Name)

	extractor := textextract.NewExtractor(textextract.Config{
		Pdftotext:     cfg.Parser.Pdftotext,
		Tesseract:     cfg.Parser.Tesseract,
		TesseractLang: cfg.Parser.TesseractLang,
		TessdataDir:   cfg.Parser.TessdataDir,
	}, logger)
	docParser := parser.New(parser.Config{UploadDir: cfg.Parser.UploadDir}, extractor, logger)
	processor := pipeline.NewProcessor(filesRepo, jobsRepo, contractsRepo, invoicesRepo, docParser, logger)

	ingestor := ingest.NewFSIngestor(projectsRepo, filesRepo, logger)

	logger.Info("starting ingestion", "dir", *dir, "project", proj.ID, "kind", docKind)
	ingestionResults, stats, err := ingestor.IngestDirectory(ctx, proj.ID, docKind, *dir, true)
	if err != nil {
		logger.Error("failed to ingest directory", "error", err)
		os.Exit(1)
	}

	var ingested []uuid.UUID
	for _, result := range ingestionResults {
		if result.Err == "" {
			fileID, err := uuid.Parse(result.FileID)
			if err != nil {
				logger.Error("failed to parse file ID", "file_id", result.FileID, "error", err)
				continue
			}
			ingested = append(ingested, fileID)
		}
	}
	logger.Info("ingestion complete",
		"files_ingested", len(ingested),
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
		"deduplicated", stats.Deduplicated)

	processed := 0
	failures := 0

	for _, fileID := range ingested {
		logger.Info("processing file", "file_id", fileID)
		pctx, cancel := context.WithTimeout(ctx, cfg.Parser.ParseTimeout)
		_, err := processor.ProcessFile(pctx, fileID)
		cancel()
		if err != nil {
			logger.Error("failed to process file", "file_id", fileID, "error", err)
			failures++
		} else {
			processed++
		}
	}

	logger.Info("exporting to XLSX", "output", *out)
	exportService := export.NewService(contractsRepo, invoicesRepo, logger)

	xlsxBytes, err := exportService.ExportProjectXLSX(ctx, proj.ID)
	if err != nil {
		logger.Error("failed to export documents", "error", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*out, xlsxBytes, 0644); err != nil {
		logger.Error("failed to write output file", "error", err)
		os.Exit(1)
	}

	logger.Info("batch processing complete",
		"files_ingested", len(ingested),
		"files_processed", processed,
		"failures", failures,
		"output_file", *out)

	fmt.Printf("Batch processing complete!\n")
	fmt.Printf("- Files ingested: %d\n", len(ingested))
	fmt.Printf("- Files processed: %d\n", processed)
	fmt.Printf("- Failures: %d\n", failures)
	fmt.Printf("- Output: %s\n", *out)
}
