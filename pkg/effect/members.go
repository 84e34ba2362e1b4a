package effect

import (
	"context"

	"github.com/lakecity-club/clubstate/pkg/domain/interfaces"
	"github.com/lakecity-club/clubstate/pkg/store/intent"
	"github.com/lakecity-club/clubstate/pkg/store/members"
	"github.com/lakecity-club/clubstate/pkg/utils/errutil"
)

// MemberPipelines returns the roster workflows
func MemberPipelines(api interfaces.API) []Pipeline {
	return []Pipeline{
		{
			Name:   "members.fetch",
			Policy: PolicySwitch,
			Match:  matchType[members.FetchRequested](),
			Run: func(ctx context.Context, _ intent.Intent, snap SnapshotFunc) []intent.Intent {
				opts := snap().Members.Options
				page, err := api.Members().GetFilteredMembers(ctx, opts)
				if err != nil {
					return fail(members.FetchFailed{Error: errutil.Normalize(err)})
				}
				return ok(members.FetchSucceeded{
					Members:       page.Items,
					FilteredCount: count(page.FilteredCount, len(page.Items)),
					TotalCount:    page.TotalCount,
				})
			},
		},
	}
}
