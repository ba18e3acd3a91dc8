package handler

import (
	"context"
	"net/http"
	"opms/internal/core"
	"opms/internal/http/payload"
	"opms/internal/http/view"
)

//go:generate go tool counterfeiter -generate

//counterfeiter:generate -o fake -fake-name AccountService . AccountService
type AccountService interface {
	Register(ctx context.Context, msg core.RegisterMessage) (core.Account, error)
	Authenticate(ctx context.Context, msg core.AuthMessage) (core.Session, error)
	Logout(ctx context.Context, token string) error
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidateForm(w http.ResponseWriter, r *http.Request, form payload.Form) error
}

type PageRenderer interface {
	Render(ctx context.Context, w http.ResponseWriter, status int, name string, page view.Page) error
}
