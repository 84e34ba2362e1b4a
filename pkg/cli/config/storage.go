package config

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/lakecity-club/clubstate/pkg/domain/interfaces"
	"github.com/lakecity-club/clubstate/pkg/repository/memory"
	"github.com/lakecity-club/clubstate/pkg/repository/sqlite"
	"github.com/lakecity-club/clubstate/pkg/utils/logging"
	"github.com/lakecity-club/clubstate/pkg/utils/safe"
)

// Storage holds CLI flags for durable storage configuration
type Storage struct {
	backend    string
	sqlitePath string
}

// Flags returns CLI flags for storage configuration
func (s *Storage) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "storage-backend",
			Usage:       "Durable storage backend (sqlite or memory)",
			Value:       "sqlite",
			Sources:     cli.EnvVars("CLUBSTATE_STORAGE_BACKEND"),
			Destination: &s.backend,
		},
		&cli.StringFlag{
			Name:        "sqlite-path",
			Usage:       "Path of the sqlite database (required when using sqlite backend)",
			Value:       "clubstate.db",
			Sources:     cli.EnvVars("CLUBSTATE_SQLITE_PATH"),
			Destination: &s.sqlitePath,
		},
	}
}

// Configure initializes the storage backend. The returned closer releases
// the backend's resources.
func (s *Storage) Configure(ctx context.Context) (interfaces.Storage, func(), error) {
	switch s.backend {
	case "sqlite":
		if s.sqlitePath == "" {
			return nil, nil, goerr.New("sqlite-path is required when using sqlite backend")
		}
		st, err := sqlite.New(s.sqlitePath)
		if err != nil {
			return nil, nil, goerr.Wrap(err, "failed to initialize sqlite storage")
		}
		logging.From(ctx).Info("Using sqlite storage", "path", s.sqlitePath)
		return st, func() { safe.Close(ctx, st) }, nil

	case "memory":
		logging.From(ctx).Info("Using in-memory storage (state will not survive restarts)")
		return memory.NewStorage(), func() {}, nil

	default:
		return nil, nil, goerr.New("invalid storage backend", goerr.V("backend", s.backend))
	}
}
