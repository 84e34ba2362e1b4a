package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/lakecity-club/clubstate/pkg/cli/config"
	httpctrl "github.com/lakecity-club/clubstate/pkg/controller/http"
	"github.com/lakecity-club/clubstate/pkg/domain/interfaces"
	"github.com/lakecity-club/clubstate/pkg/effect"
	"github.com/lakecity-club/clubstate/pkg/persist"
	"github.com/lakecity-club/clubstate/pkg/repository/memory"
	"github.com/lakecity-club/clubstate/pkg/service/api"
	"github.com/lakecity-club/clubstate/pkg/store"
	"github.com/lakecity-club/clubstate/pkg/utils/logging"
)

func cmdServe(version string) *cli.Command {
	var addr string
	var apiBaseURL string
	var policyCfg config.Policy
	var storageCfg config.Storage

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("CLUBSTATE_ADDR"),
			Destination: &addr,
		},
		&cli.StringFlag{
			Name:        "api-base-url",
			Usage:       "Base URL of the club backend API",
			Required:    true,
			Sources:     cli.EnvVars("CLUBSTATE_API_BASE_URL"),
			Destination: &apiBaseURL,
		},
	}
	flags = append(flags, policyCfg.Flags()...)
	flags = append(flags, storageCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start the store host with its HTTP state surface",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := policyCfg.Load(); err != nil {
				return goerr.Wrap(err, "failed to load policy")
			}

			storage, closeStorage, err := storageCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize storage")
			}
			defer closeStorage()

			apiClient, err := api.New(apiBaseURL)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize API client")
			}

			fileStore := memory.NewFileStore()
			clock := interfaces.RealClock{}

			st, err := persist.Bootstrap(ctx, storage, fileStore, clock, version,
				policyCfg.SessionDuration(), store.IntentLog(ctx))
			if err != nil {
				return goerr.Wrap(err, "failed to bootstrap store")
			}

			var pipelines []effect.Pipeline
			pipelines = append(pipelines, effect.ArticlePipelines(apiClient, clock, policyCfg.MaxBodyImages)...)
			pipelines = append(pipelines, effect.ImagePipelines(apiClient, fileStore, clock)...)
			pipelines = append(pipelines, effect.AuthPipelines(apiClient, policyCfg.AuthTimeout())...)
			pipelines = append(pipelines, effect.EventPipelines(apiClient)...)
			pipelines = append(pipelines, effect.MemberPipelines(apiClient)...)
			pipelines = append(pipelines, effect.InvalidationPipelines()...)

			engine := effect.NewEngine(ctx, st, pipelines...)
			engine.Start()
			defer engine.Stop()

			workers := effect.NewStalenessWorkers(st, clock, policyCfg.SchedulerConfig())
			for _, w := range workers {
				if err := w.Start(ctx); err != nil {
					return goerr.Wrap(err, "failed to start staleness worker")
				}
			}
			defer func() {
				for _, w := range workers {
					w.Stop()
				}
			}()

			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(st),
				ReadHeaderTimeout: 10 * time.Second,
			}

			eg, egCtx := errgroup.WithContext(ctx)
			eg.Go(func() error {
				logging.From(ctx).Info("HTTP server starting", "addr", addr)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return goerr.Wrap(err, "HTTP server failed")
				}
				return nil
			})
			eg.Go(func() error {
				<-egCtx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(egCtx), 10*time.Second)
				defer cancel()
				return server.Shutdown(shutdownCtx)
			})

			return eg.Wait()
		},
	}
}
