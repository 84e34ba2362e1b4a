package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/lakecity-club/clubstate/pkg/cli/config"
	"github.com/lakecity-club/clubstate/pkg/persist"
	"github.com/lakecity-club/clubstate/pkg/repository/memory"
	"github.com/lakecity-club/clubstate/pkg/utils/logging"
)

func cmdMigrate(version string) *cli.Command {
	var storageCfg config.Storage
	var targetVersion string

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "target-version",
			Usage:       "Version to migrate persisted state to (defaults to the binary version)",
			Destination: &targetVersion,
		},
	}
	flags = append(flags, storageCfg.Flags()...)

	return &cli.Command{
		Name:    "migrate",
		Aliases: []string{"m"},
		Usage:   "Migrate persisted state to the current app version",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if targetVersion == "" {
				targetVersion = version
			}

			storage, closeStorage, err := storageCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize storage")
			}
			defer closeStorage()

			logging.From(ctx).Info("Migrating persisted state", "targetVersion", targetVersion)

			// Image binaries only ever live in the staging store of a running
			// host, so an empty store stands in for the purge target here.
			if err := persist.Migrate(ctx, storage, memory.NewFileStore(), targetVersion); err != nil {
				return goerr.Wrap(err, "migration failed")
			}

			logging.From(ctx).Info("Migration completed", "targetVersion", targetVersion)
			return nil
		},
	}
}
