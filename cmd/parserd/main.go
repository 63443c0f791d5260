package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/zhenweng/contract-parser/constants"
	parserpb "github.com/zhenweng/contract-parser/gen/proto/parser/v1"
	"github.com/zhenweng/contract-parser/internal/async"
	"github.com/zhenweng/contract-parser/internal/common"
	"github.com/zhenweng/contract-parser/internal/documents"
	"github.com/zhenweng/contract-parser/internal/entity"
	"github.com/zhenweng/contract-parser/internal/export"
	"github.com/zhenweng/contract-parser/internal/ingest"
	"github.com/zhenweng/contract-parser/internal/parser"
	"github.com/zhenweng/contract-parser/internal/pipeline"
	"github.com/zhenweng/contract-parser/internal/projects"
	repo "github.com/zhenweng/contract-parser/internal/repository"
	svc "github.com/zhenweng/contract-parser/internal/server"
	"github.com/zhenweng/contract-parser/internal/textextract"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config(cfg.Database), logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	projectsRepo := repo.NewProjectRepository(entc, logger)
	contractsRepo := repo.NewContractRepository(entc, logger)
	invoicesRepo := repo.NewInvoiceRepository(entc, logger)
	filesRepo := repo.NewDocumentFileRepository(entc, logger)
	jobsRepo := repo.NewParseJobRepository(entc, logger)

	extractor := textextract.NewExtractor(textextract.Config{
		Pdftotext:     cfg.Parser.Pdftotext,
		Tesseract:     cfg.Parser.Tesseract,
		TesseractLang: cfg.Parser.TesseractLang,
		TessdataDir:   cfg.Parser.TessdataDir,
	}, logger)
	docParser := parser.New(parser.Config{UploadDir: cfg.Parser.UploadDir}, extractor, logger)

	processor := pipeline.NewProcessor(filesRepo, jobsRepo, contractsRepo, invoicesRepo, docParser, logger)

	queue := async.NewProcessorQueue(processor, logger,
		async.WithWorkers(6),
		async.WithQueueSize(512),
		async.WithProcessTimeout(cfg.Parser.ParseTimeout),
	)

	ingestor := ingest.NewFSIngestor(projectsRepo, filesRepo, logger)

	projectService := projects.NewService(projectsRepo, logger)
	parserpb.RegisterProjectsServiceServer(grpcServer, svc.NewProjectServer(projectService, logger))

	parserpb.RegisterIngestionServiceServer(grpcServer, svc.NewIngestionServer(ingestor, queue, projectsRepo, logger))

	documentService := documents.NewService(contractsRepo, invoicesRepo, jobsRepo, logger)
	parserpb.RegisterDocumentsServiceServer(grpcServer, svc.NewDocumentServer(documentService, logger))

	exportService := export.NewService(contractsRepo, invoicesRepo, logger)
	parserpb.RegisterExportServiceServer(grpcServer, svc.NewExportServer(exportService, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	// Optional drop-folder: files appearing under WATCH_DIR are ingested into
	// the WATCH_PROJECT project as WATCH_KIND documents.
	if watchDir := os.Getenv("WATCH_DIR"); watchDir != "" {
		go runWatcher(ctx, watchDir, ingestor, queue, projectsRepo, logger)
	}

	logger.Info("contract-parser listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}

func runWatcher(ctx context.Context, dir string, ingestor ingest.Ingestor, queue async.Queue, projectsRepo repo.ProjectRepository, logger *slog.Logger) {
	projectName := getenv("WATCH_PROJECT", "Inbox")
	kind := strings.ToUpper(getenv("WATCH_KIND", string(constants.KindContract)))

	project, err := projectsRepo.GetOrCreate(ctx, &entity.Project{Name: projectName})
	if err != nil {
		logger.Error("watcher: failed to resolve project", "name", projectName, "error", err)
		return
	}

	evCh, errCh, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
		Roots:       []string{dir},
		InitialScan: true,
		Debounce:    500 * time.Millisecond,
	})
	if err != nil {
		logger.Error("watcher: failed to start", "dir", dir, "error", err)
		return
	}
	logger.Info("watching for documents", "dir", dir, "project_id", project.ID, "kind", kind)

	for {
		select {
		case <-ctx.Done():
			return
		case werr, ok := <-errCh:
			if ok {
				logger.Error("watcher error", "error", werr)
			}
		case path, ok := <-evCh:
			if !ok {
				return
			}
			r, err := ingestor.IngestPath(ctx, project.ID, kind, path)
			if err != nil {
				logger.Error("watcher: ingest failed", "path", path, "error", err)
				continue
			}
			if r.Deduplicated {
				continue
			}
			if fileID, err := uuid.Parse(r.FileID); err == nil {
				_ = queue.Enqueue(ctx, async.Job{FileID: fileID, SubmittedAt: time.Now()})
			}
		}
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
