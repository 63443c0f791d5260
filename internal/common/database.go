package common

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zhenweng/contract-parser/gen/ent"
	"github.com/zhenweng/contract-parser/internal/repository"
)

// DBResult bundles the handles InitDatabase opened plus a cleanup closure.
type DBResult struct {
	Client  *ent.Client
	Pool    *pgxpool.Pool
	Cleanup func()
}

// InitDatabase opens Postgres from config, or an in-memory SQLite database
// when inmem is set. The SQLite path also runs the schema migration so batch
// runs work on a fresh store.
func InitDatabase(ctx context.Context, cfg *Config, inmem bool, logger *slog.Logger) (*DBResult, error) {
	if inmem {
		client, err := repository.OpenSQLite(":memory:", logger)
		if err != nil {
			return nil, err
		}
		if err := client.Schema.Create(ctx); err != nil {
			_ = client.Close()
			return nil, err
		}
		logger.Info("using in-memory sqlite database")
		return &DBResult{
			Client: client,
			Cleanup: func() {
				if err := client.Close(); err != nil {
					logger.Error("failed to close ent client", "error", err)
				}
			},
		}, nil
	}

	entc, pool, err := repository.Open(ctx, repository.Config(cfg.Database), logger)
	if err != nil {
		return nil, err
	}
	if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		repository.Close(entc, pool, logger)
		return nil, err
	}
	return &DBResult{
		Client:  entc,
		Pool:    pool,
		Cleanup: func() { repository.Close(entc, pool, logger) },
	}, nil
}
