package api

import (
	"context"
	"net/http"

	"github.com/lakecity-club/clubstate/pkg/domain/interfaces"
	"github.com/lakecity-club/clubstate/pkg/domain/model"
)

type eventsClient struct {
	c *Client
}

func (e *eventsClient) GetFilteredEvents(ctx context.Context, opts model.PageOptions) (*interfaces.Paginated[model.Event], error) {
	var out interfaces.Paginated[model.Event]
	if err := e.c.do(ctx, http.MethodGet, "/events", pageQuery(opts), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
