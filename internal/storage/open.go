// Package storage opens the kv.Store selected by configuration.
package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/gophgate/internal/common"
	"github.com/dmitrijs2005/gophgate/internal/config"
	"github.com/dmitrijs2005/gophgate/internal/filex"
	"github.com/dmitrijs2005/gophgate/internal/kv"
	"github.com/dmitrijs2005/gophgate/internal/kv/memory"
	"github.com/dmitrijs2005/gophgate/internal/kv/rediskv"
	"github.com/dmitrijs2005/gophgate/internal/kv/s3kv"
	"github.com/dmitrijs2005/gophgate/internal/kv/sqlkv"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open connects to the configured backend and returns the store, already
// namespaced and time-bounded, plus a closer for the underlying connection.
func Open(ctx context.Context, cfg *config.Config) (kv.Store, io.Closer, error) {
	if cfg.StoreTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.StoreTimeout)
		defer cancel()
	}

	var (
		store  kv.Store
		closer io.Closer = nopCloser{}
	)

	switch cfg.StoreBackend {
	case config.BackendMemory:
		store = memory.New()

	case config.BackendSQLite, config.BackendPostgres:
		dialect, dsn := sqlkv.SQLite, cfg.SQLitePath
		if cfg.StoreBackend == config.BackendPostgres {
			dialect, dsn = sqlkv.Postgres, cfg.PostgresDSN
		} else if err := filex.EnsureParentDir(dsn); err != nil {
			return nil, nil, err
		}
		db, err := sqlkv.Open(ctx, dialect, dsn)
		if err != nil {
			return nil, nil, fmt.Errorf("open %s store: %w", cfg.StoreBackend, err)
		}
		repo, err := sqlkv.New(db, dialect)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		store, closer = repo, db

	case config.BackendRedis:
		s, rdb, err := rediskv.New(ctx, rediskv.Config{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("open redis store: %w", err)
		}
		store, closer = s, rdb

	case config.BackendS3:
		s, err := s3kv.New(ctx, s3kv.Config{
			Bucket:   cfg.S3Bucket,
			Region:   cfg.S3Region,
			Endpoint: cfg.S3Endpoint,
			User:     cfg.S3User,
			Password: cfg.S3Password,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("open s3 store: %w", err)
		}
		store = s

	default:
		return nil, nil, fmt.Errorf("%w: %q", common.ErrorUnknownBackend, cfg.StoreBackend)
	}

	store = kv.WithTimeout(kv.WithPrefix(store, cfg.Namespace), cfg.StoreTimeout)
	return store, closer, nil
}
