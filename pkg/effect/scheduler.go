package effect

import (
	"context"
	"time"

	"github.com/lakecity-club/clubstate/pkg/domain/interfaces"
	"github.com/lakecity-club/clubstate/pkg/domain/types"
	"github.com/lakecity-club/clubstate/pkg/store"
	"github.com/lakecity-club/clubstate/pkg/store/app"
	"github.com/lakecity-club/clubstate/pkg/store/articles"
	"github.com/lakecity-club/clubstate/pkg/store/events"
	"github.com/lakecity-club/clubstate/pkg/store/images"
	"github.com/lakecity-club/clubstate/pkg/store/intent"
	"github.com/lakecity-club/clubstate/pkg/store/members"
	"github.com/lakecity-club/clubstate/pkg/utils/async"
	"github.com/lakecity-club/clubstate/pkg/utils/logging"
)

// SurfacePolicy tunes one monitored surface: how long its data stays fresh
// and how often the worker re-checks
type SurfacePolicy struct {
	Freshness time.Duration
	Interval  time.Duration
}

// SchedulerConfig carries the per-surface policies. Every surface is
// independently tunable.
type SchedulerConfig struct {
	InitialDelay             time.Duration
	ArticlesHome             SurfacePolicy
	ArticlesFiltered         SurfacePolicy
	ImagesMetadata           SurfacePolicy
	ImagesFilteredThumbnails SurfacePolicy
	AlbumCovers              SurfacePolicy
	ArticleBanners           SurfacePolicy
	Events                   SurfacePolicy
	Members                  SurfacePolicy
}

// DefaultSchedulerConfig returns the shipped policy values
func DefaultSchedulerConfig() SchedulerConfig {
	return SchedulerConfig{
		InitialDelay:             3 * time.Second,
		ArticlesHome:             SurfacePolicy{Freshness: 10 * time.Minute, Interval: time.Minute},
		ArticlesFiltered:         SurfacePolicy{Freshness: 10 * time.Minute, Interval: time.Minute},
		ImagesMetadata:           SurfacePolicy{Freshness: 5 * time.Minute, Interval: time.Minute},
		ImagesFilteredThumbnails: SurfacePolicy{Freshness: 5 * time.Minute, Interval: time.Minute},
		AlbumCovers:              SurfacePolicy{Freshness: 5 * time.Minute, Interval: time.Minute},
		ArticleBanners:           SurfacePolicy{Freshness: 10 * time.Minute, Interval: time.Minute},
		Events:                   SurfacePolicy{Freshness: 10 * time.Minute, Interval: time.Minute},
		Members:                  SurfacePolicy{Freshness: 10 * time.Minute, Interval: time.Minute},
	}
}

// Check describes one staleness-monitored surface. A nil last-fetch counts
// as expired.
type Check struct {
	Name      string
	Freshness time.Duration
	LastFetch func(s store.State) *time.Time
	Trigger   func(s store.State) []intent.Intent
}

// StalenessWorker periodically re-checks one surface and dispatches its
// background fetch when the data has gone stale.
//
// Single store instance is assumed; there is no cross-process coordination.
type StalenessWorker struct {
	store        *store.Store
	clock        interfaces.Clock
	check        Check
	interval     time.Duration
	initialDelay time.Duration
	stopCh       chan struct{}
	doneCh       chan struct{}
}

// NewStalenessWorker creates a worker for one surface
func NewStalenessWorker(st *store.Store, clock interfaces.Clock, check Check, interval, initialDelay time.Duration) *StalenessWorker {
	return &StalenessWorker{
		store:        st,
		clock:        clock,
		check:        check,
		interval:     interval,
		initialDelay: initialDelay,
		stopCh:       make(chan struct{}),
		doneCh:       make(chan struct{}),
	}
}

// Start begins the background check loop without blocking the caller. The
// loop is detached from the caller's cancellation; Stop is the only way to
// end it, and a panicking check is recovered rather than crashing the host.
func (w *StalenessWorker) Start(ctx context.Context) error {
	logging.From(ctx).Info("staleness worker starting",
		"surface", w.check.Name,
		"freshness", w.check.Freshness.String(),
		"interval", w.interval.String())

	async.Dispatch(ctx, func(ctx context.Context) error {
		w.run(ctx)
		return nil
	})

	return nil
}

// Stop signals the worker to stop and waits for completion
func (w *StalenessWorker) Stop() {
	close(w.stopCh)
	<-w.doneCh
}

func (w *StalenessWorker) run(ctx context.Context) {
	defer close(w.doneCh)

	// Short initial delay so the first check runs after rehydration settles
	// rather than racing startup.
	delay := time.NewTimer(w.initialDelay)
	defer delay.Stop()

	select {
	case <-delay.C:
		w.runCheck(ctx)
	case <-w.stopCh:
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.runCheck(ctx)
		case <-w.stopCh:
			logging.From(ctx).Info("staleness worker stopped", "surface", w.check.Name)
			return
		}
	}
}

// runCheck dispatches the surface's background fetch when its last fetch is
// absent or older than the freshness window
func (w *StalenessWorker) runCheck(ctx context.Context) {
	s := w.store.Snapshot()

	if last := w.check.LastFetch(s); last != nil && w.clock.Now().Sub(*last) <= w.check.Freshness {
		return
	}

	for _, in := range w.check.Trigger(s) {
		logging.From(ctx).Debug("staleness refetch", "surface", w.check.Name, "intent", in.IntentType())
		w.store.Dispatch(in)
	}
}

// NewStalenessWorkers builds the full worker set from the policy config
func NewStalenessWorkers(st *store.Store, clock interfaces.Clock, cfg SchedulerConfig) []*StalenessWorker {
	surface := func(c Check, p SurfacePolicy) *StalenessWorker {
		c.Freshness = p.Freshness
		return NewStalenessWorker(st, clock, c, p.Interval, cfg.InitialDelay)
	}

	return []*StalenessWorker{
		surface(Check{
			Name:      "articles.home",
			LastFetch: func(s store.State) *time.Time { return s.Articles.LastHomeFetch },
			Trigger: func(store.State) []intent.Intent {
				return ok(articles.FetchHomeRequested{Background: true})
			},
		}, cfg.ArticlesHome),
		surface(Check{
			Name:      "articles.filtered",
			LastFetch: func(s store.State) *time.Time { return s.Articles.LastFilteredFetch },
			Trigger: func(store.State) []intent.Intent {
				return ok(articles.FetchFilteredRequested{Background: true})
			},
		}, cfg.ArticlesFiltered),
		surface(Check{
			Name:      "images.metadata",
			LastFetch: func(s store.State) *time.Time { return s.Images.LastMetadataFetch },
			Trigger: func(store.State) []intent.Intent {
				return ok(images.FetchMetadataRequested{Background: true})
			},
		}, cfg.ImagesMetadata),
		surface(Check{
			Name:      "images.filteredThumbnails",
			LastFetch: func(s store.State) *time.Time { return s.Images.LastFilteredThumbnailsFetch },
			Trigger: func(store.State) []intent.Intent {
				return ok(images.FetchFilteredThumbnailsRequested{Background: true})
			},
		}, cfg.ImagesFilteredThumbnails),
		surface(Check{
			// Gated on metadata: without it there are no cover ids to batch.
			Name:      "images.albumCovers",
			LastFetch: func(s store.State) *time.Time { return s.Images.LastAlbumCoversFetch },
			Trigger: func(s store.State) []intent.Intent {
				if s.Images.LastMetadataFetch == nil {
					return nil
				}
				coverIDs := images.SelectAlbumCoverIDs(s.Images)
				if len(coverIDs) == 0 {
					return nil
				}
				return ok(images.FetchBatchThumbnailsRequested{
					ImageIDs: coverIDs,
					Context:  types.FetchContextAlbumCovers,
				})
			},
		}, cfg.AlbumCovers),
		surface(Check{
			Name:      "events",
			LastFetch: func(s store.State) *time.Time { return s.Events.LastFetch },
			Trigger: func(store.State) []intent.Intent {
				return ok(events.FetchRequested{Background: true})
			},
		}, cfg.Events),
		surface(Check{
			Name:      "members",
			LastFetch: func(s store.State) *time.Time { return s.Members.LastFetch },
			Trigger: func(store.State) []intent.Intent {
				return ok(members.FetchRequested{Background: true})
			},
		}, cfg.Members),
		surface(Check{
			// Presigned banner URLs can expire while the article data is
			// still fresh, so this check keys on the thumbnails themselves
			// rather than a fetch timestamp.
			Name:      "articles.bannerThumbnails",
			LastFetch: func(store.State) *time.Time { return nil },
			Trigger: func(s store.State) []intent.Intent {
				bannerIDs := articles.SelectBannerImageIDs(s.Articles)
				need := images.SelectIDsWithMissingOrExpiredThumbnails(s.Images, bannerIDs, clock.Now())
				if len(need) == 0 {
					return nil
				}
				return ok(images.FetchBatchThumbnailsRequested{
					ImageIDs: need,
					Context:  types.FetchContextArticleBanners,
				})
			},
		}, cfg.ArticleBanners),
	}
}

// InvalidationPipelines maps mutation successes and the app-wide refresh
// trigger onto eager background refetches. Mutations never touch their own
// slice's lastFetch, so without these the mutated collections would wait for
// the next staleness tick.
func InvalidationPipelines() []Pipeline {
	return []Pipeline{
		{
			Name:   "scheduler.articlesInvalidation",
			Policy: PolicyMerge,
			Match: matchAny(
				matchType[articles.PublishSucceeded](),
				matchType[articles.UpdateSucceeded](),
				matchType[articles.DeleteSucceeded](),
			),
			Run: func(context.Context, intent.Intent, SnapshotFunc) []intent.Intent {
				return ok(
					articles.FetchHomeRequested{Background: true},
					articles.FetchFilteredRequested{Background: true},
				)
			},
		},
		{
			Name:   "scheduler.imagesInvalidation",
			Policy: PolicyMerge,
			Match: matchAny(
				matchType[images.AddImageSucceeded](),
				matchType[images.AddImagesSucceeded](),
				matchType[images.UpdateImageSucceeded](),
				matchType[images.UpdateAlbumSucceeded](),
				matchType[images.DeleteImageSucceeded](),
				matchType[images.DeleteAlbumSucceeded](),
				matchType[images.AlbumCoverSwitchSucceeded](),
			),
			Run: func(context.Context, intent.Intent, SnapshotFunc) []intent.Intent {
				return ok(
					images.FetchMetadataRequested{Background: true},
					images.FetchFilteredThumbnailsRequested{Background: true},
				)
			},
		},
		{
			Name:   "scheduler.appRefresh",
			Policy: PolicyMerge,
			Match:  matchType[app.RefreshRequested](),
			Run: func(context.Context, intent.Intent, SnapshotFunc) []intent.Intent {
				return ok(
					articles.FetchHomeRequested{Background: true},
					articles.FetchFilteredRequested{Background: true},
					images.FetchMetadataRequested{Background: true},
					images.FetchFilteredThumbnailsRequested{Background: true},
					events.FetchRequested{Background: true},
					members.FetchRequested{Background: true},
				)
			},
		},
	}
}
