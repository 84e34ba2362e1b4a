package api

import (
	"context"
	"net/http"

	"github.com/lakecity-club/clubstate/pkg/domain/model"
)

type authClient struct {
	c *Client
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password,omitempty" masq:"secret"`
	Code     string `json:"code,omitempty" masq:"secret"`
}

func (a *authClient) LogIn(ctx context.Context, email, password string) (*model.User, error) {
	var out model.User
	body := credentials{Email: email, Password: password}
	if err := a.c.do(ctx, http.MethodPost, "/auth/login", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *authClient) LogOut(ctx context.Context) error {
	return a.c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
}

func (a *authClient) SendCodeForPasswordChange(ctx context.Context, email string) error {
	body := credentials{Email: email}
	return a.c.do(ctx, http.MethodPost, "/auth/code", nil, body, nil)
}

func (a *authClient) ChangePassword(ctx context.Context, email, password, code string) (*model.User, error) {
	var out model.User
	body := credentials{Email: email, Password: password, Code: code}
	if err := a.c.do(ctx, http.MethodPost, "/auth/change-password", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *authClient) RefreshSession(ctx context.Context) error {
	return a.c.do(ctx, http.MethodPost, "/auth/refresh", nil, nil, nil)
}
