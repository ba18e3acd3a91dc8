package middleware

import (
	"context"
	"errors"
	"net/http"
	"opms/internal/core"
	"opms/internal/http/cookie"

	"go.uber.org/zap"
)

const loginRequiredMessage = "Please log in to access this page."

type AuthMiddleware struct {
	logs     *zap.SugaredLogger
	sessions SessionLoader
	jar      *cookie.Jar
}

func NewAuthMiddleware(logger *zap.SugaredLogger, sessions SessionLoader, jar *cookie.Jar) *AuthMiddleware {
	return &AuthMiddleware{
		logs:     logger,
		sessions: sessions,
		jar:      jar,
	}
}

// LoadAccount resolves the session cookie, if any, and stores the account in the
// request context. Stale cookies are cleared; requests always continue.
func (m *AuthMiddleware) LoadAccount(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := m.jar.ReadSession(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		account, err := m.sessions.LoadSessionAccount(r.Context(), token)
		if err != nil {
			if errors.Is(err, core.ErrSessionNotFound) {
				m.jar.ClearSession(w)
			} else {
				m.logs.Errorw("failed to load session account",
					"error", err,
					"request_id", RequestIDFromContext(r.Context()))
			}
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), AccountKey, account)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuth sends anonymous clients to the login page. A notice already
// pending, such as the one left by logout, is kept.
func (m *AuthMiddleware) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := AccountFromContext(r.Context()); !ok {
			if !m.jar.HasFlash(r) {
				m.jar.WriteFlash(w, cookie.Info(loginRequiredMessage))
			}
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next(w, r)
	}
}

func AccountFromContext(ctx context.Context) (core.Account, bool) {
	account, ok := ctx.Value(AccountKey).(core.Account)
	return account, ok
}
