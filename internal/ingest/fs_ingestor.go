package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/zhenweng/contract-parser/constants"
	"github.com/zhenweng/contract-parser/internal/repository"
)

// FSIngestor reads from the local filesystem.
type FSIngestor struct {
	ProjectRepo repository.ProjectRepository
	FilesRepo   repository.DocumentFileRepository
	AllowedExts map[string]struct{} // lowercased sans '.'; nil -> default set
	Logger      *slog.Logger
}

func NewFSIngestor(p repository.ProjectRepository, f repository.DocumentFileRepository, logger *slog.Logger) *FSIngestor {
	if logger == nil {
		logger = slog.Default()
	}
	return &FSIngestor{
		ProjectRepo: p,
		FilesRepo:   f,
		Logger:      logger,
	}
}

func (i *FSIngestor) allowed(ext string) bool {
	if i.AllowedExts != nil {
		_, ok := i.AllowedExts[constants.NormalizeExt(ext)]
		return ok
	}
	return AllowedExt(ext)
}

func (i *FSIngestor) IngestPath(ctx context.Context, projectID uuid.UUID, kind, path string) (IngestionResult, error) {
	var out IngestionResult

	abs, err := filepath.Abs(path)
	if err != nil {
		i.Logger.Error("abs path failed", "path", path, "error", err)
		return out, err
	}

	ext := constants.NormalizeExt(filepath.Ext(abs))
	if ext == "" || !i.allowed(ext) {
		i.Logger.Warn("unsupported or missing extension", "path", abs, "ext", ext)
		return out, fmt.Errorf("unsupported or missing extension: %q", ext)
	}

	if exists, err := i.ProjectRepo.Exists(ctx, projectID); err != nil || !exists {
		return out, fmt.Errorf("project not found: %s", projectID)
	}

	f, err := os.Open(abs)
	if err != nil {
		i.Logger.Error("open failed", "path", abs, "error", err)
		return out, err
	}
	defer func(f *os.File) {
		if cerr := f.Close(); cerr != nil {
			i.Logger.Warn("close failed", "path", abs, "error", cerr)
		}
	}(f)

	h := sha256.New()
	size, err := io.Copy(h, f)
	if err != nil {
		i.Logger.Error("hash failed", "path", abs, "error", err)
		return out, err
	}
	sum := h.Sum(nil)
	now := time.Now().UTC()

	row, dedup, err := i.FilesRepo.UpsertByHash(ctx, projectID, kind, abs, filepath.Base(abs), ext, int(size), sum, now)
	if err != nil {
		return out, err
	}

	out = IngestionResult{
		SourcePath:   row.SourcePath,
		FileID:       row.ID.String(),
		Deduplicated: dedup,
		HashHex:      hex.EncodeToString(sum),
		FileExt:      row.FileExt,
		UploadedAt:   row.UploadedAt,
	}
	return out, nil
}

// IngestDirectory walks root, skips hidden if requested,
// and calls IngestPath for each file. Returns per-file results + aggregate stats.
func (i *FSIngestor) IngestDirectory(
	ctx context.Context,
	projectID uuid.UUID,
	kind, root string,
	skipHidden bool,
) ([]IngestionResult, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root_path is required")
	}

	var results []IngestionResult
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			results = append(results, IngestionResult{SourcePath: path, Err: walkErr.Error()})
			stats.Failed++
			return nil
		}
		if skipHidden && IsHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}
		ext := constants.NormalizeExt(filepath.Ext(path))
		if !i.allowed(ext) {
			return nil
		}
		stats.Matched++

		r, err := i.IngestPath(ctx, projectID, kind, path)
		if err != nil {
			results = append(results, IngestionResult{SourcePath: path, Err: err.Error()})
			stats.Failed++
			return nil
		}

		results = append(results, r)
		stats.Succeeded++
		if r.Deduplicated {
			stats.Deduplicated++
		}
		return nil
	})

	if err != nil {
		return results, stats, fmt.Errorf("walk: %w", err)
	}
	return results, stats, nil
}
