package api

import (
	"context"
	"net/http"

	"github.com/lakecity-club/clubstate/pkg/domain/interfaces"
	"github.com/lakecity-club/clubstate/pkg/domain/model"
)

type membersClient struct {
	c *Client
}

func (m *membersClient) GetFilteredMembers(ctx context.Context, opts model.PageOptions) (*interfaces.Paginated[model.Member], error) {
	var out interfaces.Paginated[model.Member]
	if err := m.c.do(ctx, http.MethodGet, "/members", pageQuery(opts), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
