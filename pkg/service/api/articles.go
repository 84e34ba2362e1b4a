package api

import (
	"context"
	"net/http"

	"github.com/lakecity-club/clubstate/pkg/domain/interfaces"
	"github.com/lakecity-club/clubstate/pkg/domain/model"
	"github.com/lakecity-club/clubstate/pkg/domain/types"
)

type articlesClient struct {
	c *Client
}

func (a *articlesClient) GetArticle(ctx context.Context, id types.ArticleID) (*model.Article, error) {
	var out model.Article
	if err := a.c.do(ctx, http.MethodGet, "/articles/"+string(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *articlesClient) GetFilteredArticles(ctx context.Context, opts model.PageOptions) (*interfaces.Paginated[model.Article], error) {
	var out interfaces.Paginated[model.Article]
	if err := a.c.do(ctx, http.MethodGet, "/articles", pageQuery(opts), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *articlesClient) AddArticle(ctx context.Context, article model.Article) (types.ArticleID, error) {
	var out struct {
		ID types.ArticleID `json:"id"`
	}
	if err := a.c.do(ctx, http.MethodPost, "/articles", nil, article, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

func (a *articlesClient) UpdateArticle(ctx context.Context, article model.Article) (types.ArticleID, error) {
	var out struct {
		ID types.ArticleID `json:"id"`
	}
	if err := a.c.do(ctx, http.MethodPut, "/articles/"+string(article.ID), nil, article, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

func (a *articlesClient) DeleteArticle(ctx context.Context, id types.ArticleID) (types.ArticleID, error) {
	var out struct {
		ID types.ArticleID `json:"id"`
	}
	if err := a.c.do(ctx, http.MethodDelete, "/articles/"+string(id), nil, nil, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}
