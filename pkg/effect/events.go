package effect

import (
	"context"

	"github.com/lakecity-club/clubstate/pkg/domain/interfaces"
	"github.com/lakecity-club/clubstate/pkg/store/events"
	"github.com/lakecity-club/clubstate/pkg/store/intent"
	"github.com/lakecity-club/clubstate/pkg/utils/errutil"
)

// EventPipelines returns the calendar workflows
func EventPipelines(api interfaces.API) []Pipeline {
	return []Pipeline{
		{
			Name:   "events.fetch",
			Policy: PolicySwitch,
			Match:  matchType[events.FetchRequested](),
			Run: func(ctx context.Context, _ intent.Intent, snap SnapshotFunc) []intent.Intent {
				opts := snap().Events.Options
				page, err := api.Events().GetFilteredEvents(ctx, opts)
				if err != nil {
					return fail(events.FetchFailed{Error: errutil.Normalize(err)})
				}
				return ok(events.FetchSucceeded{
					Events:        page.Items,
					FilteredCount: count(page.FilteredCount, len(page.Items)),
					TotalCount:    page.TotalCount,
				})
			},
		},
	}
}
