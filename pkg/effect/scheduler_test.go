package effect_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/lakecity-club/clubstate/pkg/domain/interfaces"
	"github.com/lakecity-club/clubstate/pkg/domain/model"
	"github.com/lakecity-club/clubstate/pkg/domain/types"
	"github.com/lakecity-club/clubstate/pkg/effect"
	"github.com/lakecity-club/clubstate/pkg/store"
	"github.com/lakecity-club/clubstate/pkg/store/app"
	"github.com/lakecity-club/clubstate/pkg/store/articles"
	"github.com/lakecity-club/clubstate/pkg/store/events"
	"github.com/lakecity-club/clubstate/pkg/store/images"
	"github.com/lakecity-club/clubstate/pkg/store/intent"
	"github.com/lakecity-club/clubstate/pkg/store/members"
)

// intentCounter counts dispatched intents by type string
type intentCounter struct {
	mu     sync.Mutex
	counts map[string]int
}

func newIntentCounter(st *store.Store) *intentCounter {
	c := &intentCounter{counts: map[string]int{}}
	st.Subscribe(func(in intent.Intent, _ store.State) {
		c.mu.Lock()
		c.counts[in.IntentType()]++
		c.mu.Unlock()
	})
	return c
}

func (c *intentCounter) get(typ string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[typ]
}

func (c *intentCounter) waitFor(t *testing.T, typ string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if c.get(typ) > 0 {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("intent %s was never dispatched", typ)
}

func TestStalenessWorkerTriggersWhenNeverFetched(t *testing.T) {
	st := store.New(store.NewState())
	counter := newIntentCounter(st)
	clock := interfaces.FixedClock{Time: fixedNow}

	w := effect.NewStalenessWorker(st, clock, effect.Check{
		Name:      "articles.home",
		Freshness: 10 * time.Minute,
		LastFetch: func(s store.State) *time.Time { return s.Articles.LastHomeFetch },
		Trigger: func(store.State) []intent.Intent {
			return []intent.Intent{articles.FetchHomeRequested{Background: true}}
		},
	}, time.Hour, time.Millisecond)

	gt.NoError(t, w.Start(context.Background())).Required()
	counter.waitFor(t, articles.FetchHomeRequested{}.IntentType())
	w.Stop()

	// a one-hour interval means only the initial check ran
	gt.Value(t, counter.get(articles.FetchHomeRequested{}.IntentType())).Equal(1)
}

func TestStalenessWorkerSkipsFreshSurface(t *testing.T) {
	st := store.New(store.NewState())
	counter := newIntentCounter(st)

	// fetch success just happened; the worker's clock agrees
	st.Dispatch(articles.FetchHomeSucceeded{})
	clock := interfaces.RealClock{}

	w := effect.NewStalenessWorker(st, clock, effect.Check{
		Name:      "articles.home",
		Freshness: 10 * time.Minute,
		LastFetch: func(s store.State) *time.Time { return s.Articles.LastHomeFetch },
		Trigger: func(store.State) []intent.Intent {
			return []intent.Intent{articles.FetchHomeRequested{Background: true}}
		},
	}, time.Hour, time.Millisecond)

	gt.NoError(t, w.Start(context.Background())).Required()
	time.Sleep(30 * time.Millisecond)
	w.Stop()

	gt.Value(t, counter.get(articles.FetchHomeRequested{}.IntentType())).Equal(0)
}

func TestStalenessWorkerTriggersWhenStale(t *testing.T) {
	st := store.New(store.NewState())
	counter := newIntentCounter(st)

	st.Dispatch(articles.FetchHomeSucceeded{})
	// a clock far in the future makes the fresh fetch stale
	clock := interfaces.FixedClock{Time: time.Now().UTC().Add(24 * time.Hour)}

	w := effect.NewStalenessWorker(st, clock, effect.Check{
		Name:      "articles.home",
		Freshness: 10 * time.Minute,
		LastFetch: func(s store.State) *time.Time { return s.Articles.LastHomeFetch },
		Trigger: func(store.State) []intent.Intent {
			return []intent.Intent{articles.FetchHomeRequested{Background: true}}
		},
	}, time.Hour, time.Millisecond)

	gt.NoError(t, w.Start(context.Background())).Required()
	counter.waitFor(t, articles.FetchHomeRequested{}.IntentType())
	w.Stop()
}

func TestAlbumCoversWorkerGatedOnMetadata(t *testing.T) {
	cfg := effect.DefaultSchedulerConfig()
	cfg.InitialDelay = time.Millisecond
	// long intervals: every worker runs its initial check exactly once
	for _, p := range []*effect.SurfacePolicy{
		&cfg.ArticlesHome, &cfg.ArticlesFiltered, &cfg.ImagesMetadata,
		&cfg.ImagesFilteredThumbnails, &cfg.AlbumCovers, &cfg.ArticleBanners,
		&cfg.Events, &cfg.Members,
	} {
		p.Interval = time.Hour
	}

	st := store.New(store.NewState())
	counter := newIntentCounter(st)
	clock := interfaces.RealClock{}

	// freshen every surface except album covers
	st.Dispatch(articles.FetchHomeSucceeded{})
	st.Dispatch(articles.FetchFilteredSucceeded{})
	st.Dispatch(images.FetchMetadataSucceeded{Images: []model.Image{
		{ID: "i1", Album: "summer", AlbumCover: true},
	}})
	st.Dispatch(images.FetchFilteredThumbnailsSucceeded{})
	st.Dispatch(events.FetchSucceeded{})
	st.Dispatch(members.FetchSucceeded{})

	workers := effect.NewStalenessWorkers(st, clock, cfg)
	for _, w := range workers {
		gt.NoError(t, w.Start(context.Background())).Required()
	}
	counter.waitFor(t, images.FetchBatchThumbnailsRequested{}.IntentType())
	for _, w := range workers {
		w.Stop()
	}

	// only the album cover strip was stale
	gt.Value(t, counter.get(images.FetchBatchThumbnailsRequested{}.IntentType())).Equal(1)
	gt.Value(t, counter.get(articles.FetchHomeRequested{}.IntentType())).Equal(0)
	gt.Value(t, counter.get(images.FetchMetadataRequested{}.IntentType())).Equal(0)
}

func TestAlbumCoversWorkerNeedsCoverIDs(t *testing.T) {
	st := store.New(store.NewState())
	counter := newIntentCounter(st)
	clock := interfaces.RealClock{}

	// metadata fetched but the gallery holds no album covers
	st.Dispatch(images.FetchMetadataSucceeded{Images: []model.Image{{ID: "i1", Album: "summer"}}})

	cfg := effect.DefaultSchedulerConfig()
	cfg.InitialDelay = time.Millisecond
	cfg.AlbumCovers.Interval = time.Hour

	// start only the album covers worker: it is the fifth surface
	workers := effect.NewStalenessWorkers(st, clock, cfg)
	w := workers[4]
	gt.NoError(t, w.Start(context.Background())).Required()
	time.Sleep(30 * time.Millisecond)
	w.Stop()

	gt.Value(t, counter.get(images.FetchBatchThumbnailsRequested{}.IntentType())).Equal(0)
}

func TestBannerThumbnailsWorkerRetriesExpiredURLs(t *testing.T) {
	st := store.New(store.NewState())
	counter := newIntentCounter(st)
	clock := interfaces.FixedClock{Time: fixedNow}

	// article data is fresh, but the banner thumbnail URL has expired
	expired := fixedNow.Add(-time.Minute)
	st.Dispatch(articles.FetchHomeSucceeded{Articles: []model.Article{
		{ID: "a1", Title: "hello", BannerImageID: "img-b"},
	}})
	st.Dispatch(images.FetchMetadataSucceeded{Images: []model.Image{
		{ID: "img-b", Album: "banners"},
	}})
	st.Dispatch(images.FetchBatchThumbnailsSucceeded{
		Images: []model.Image{
			{ID: "img-b", ThumbnailURL: "https://cdn/img-b-thumb", URLExpiration: &expired},
		},
		Context: types.FetchContextArticleBanners,
	})

	cfg := effect.DefaultSchedulerConfig()
	cfg.InitialDelay = time.Millisecond
	cfg.ArticleBanners.Interval = time.Hour

	// the banner surface is the last worker
	workers := effect.NewStalenessWorkers(st, clock, cfg)
	w := workers[len(workers)-1]
	gt.NoError(t, w.Start(context.Background())).Required()
	counter.waitFor(t, images.FetchBatchThumbnailsRequested{}.IntentType())
	w.Stop()

	gt.Value(t, counter.get(images.FetchBatchThumbnailsRequested{}.IntentType())).Equal(1)
}

func TestBannerThumbnailsWorkerSkipsFreshURLs(t *testing.T) {
	st := store.New(store.NewState())
	counter := newIntentCounter(st)
	clock := interfaces.FixedClock{Time: fixedNow}

	fresh := fixedNow.Add(time.Hour)
	st.Dispatch(articles.FetchHomeSucceeded{Articles: []model.Article{
		{ID: "a1", Title: "hello", BannerImageID: "img-b"},
	}})
	st.Dispatch(images.FetchMetadataSucceeded{Images: []model.Image{
		{ID: "img-b", Album: "banners"},
	}})
	st.Dispatch(images.FetchBatchThumbnailsSucceeded{
		Images: []model.Image{
			{ID: "img-b", ThumbnailURL: "https://cdn/img-b-thumb", URLExpiration: &fresh},
		},
		Context: types.FetchContextArticleBanners,
	})

	cfg := effect.DefaultSchedulerConfig()
	cfg.InitialDelay = time.Millisecond
	cfg.ArticleBanners.Interval = time.Hour

	workers := effect.NewStalenessWorkers(st, clock, cfg)
	w := workers[len(workers)-1]
	gt.NoError(t, w.Start(context.Background())).Required()
	time.Sleep(30 * time.Millisecond)
	w.Stop()

	gt.Value(t, counter.get(images.FetchBatchThumbnailsRequested{}.IntentType())).Equal(0)
}

func TestStalenessWorkerSurvivesPanickingCheck(t *testing.T) {
	st := store.New(store.NewState())
	counter := newIntentCounter(st)

	w := effect.NewStalenessWorker(st, interfaces.RealClock{}, effect.Check{
		Name:      "broken",
		Freshness: time.Minute,
		LastFetch: func(store.State) *time.Time { return nil },
		Trigger: func(store.State) []intent.Intent {
			panic("boom")
		},
	}, time.Hour, time.Millisecond)

	gt.NoError(t, w.Start(context.Background())).Required()
	time.Sleep(30 * time.Millisecond)
	// Stop returns because the loop closed its done channel even while
	// panicking; the recovery happens in the dispatcher above it.
	w.Stop()

	gt.Value(t, counter.get(articles.FetchHomeRequested{}.IntentType())).Equal(0)
}

func TestInvalidationPipelinesRefetchAfterArticleMutation(t *testing.T) {
	p := pipelineByName(t, effect.InvalidationPipelines(), "scheduler.articlesInvalidation")

	gt.Bool(t, p.Match(articles.PublishSucceeded{})).True()
	gt.Bool(t, p.Match(articles.DeleteSucceeded{})).True()
	gt.Bool(t, p.Match(articles.FetchHomeSucceeded{})).False()

	out := p.Run(context.Background(), articles.PublishSucceeded{}, staticSnapshot(store.NewState()))
	gt.Array(t, out).Equal([]intent.Intent{
		articles.FetchHomeRequested{Background: true},
		articles.FetchFilteredRequested{Background: true},
	})
}

func TestInvalidationPipelinesRefetchAfterImageMutation(t *testing.T) {
	p := pipelineByName(t, effect.InvalidationPipelines(), "scheduler.imagesInvalidation")

	gt.Bool(t, p.Match(images.DeleteAlbumSucceeded{})).True()
	gt.Bool(t, p.Match(images.AlbumCoverSwitchSucceeded{})).True()

	out := p.Run(context.Background(), images.AddImageSucceeded{}, staticSnapshot(store.NewState()))
	gt.Array(t, out).Equal([]intent.Intent{
		images.FetchMetadataRequested{Background: true},
		images.FetchFilteredThumbnailsRequested{Background: true},
	})
}

func TestAppRefreshFansOutToAllSurfaces(t *testing.T) {
	p := pipelineByName(t, effect.InvalidationPipelines(), "scheduler.appRefresh")

	gt.Bool(t, p.Match(app.RefreshRequested{})).True()
	out := p.Run(context.Background(), app.RefreshRequested{}, staticSnapshot(store.NewState()))
	gt.Array(t, out).Length(6)
}
