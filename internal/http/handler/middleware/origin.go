package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

// SameOriginMiddleware rejects state-changing requests that do not come from this host.
type SameOriginMiddleware struct {
	logs *zap.SugaredLogger
}

func NewSameOriginMiddleware(logger *zap.SugaredLogger) *SameOriginMiddleware {
	return &SameOriginMiddleware{
		logs: logger,
	}
}

func (m *SameOriginMiddleware) SameOrigin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			next.ServeHTTP(w, r)
			return
		}

		source := strings.TrimSpace(r.Header.Get("Origin"))
		if source == "" {
			source = strings.TrimSpace(r.Referer())
		}

		if !sameHost(source, r.Host) {
			m.logs.Warnw("cross origin request rejected",
				"method", r.Method,
				"path", r.URL.Path,
				"origin", source,
				"request_id", RequestIDFromContext(r.Context()))
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func sameHost(rawURL, host string) bool {
	if rawURL == "" || rawURL == "null" {
		return false
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return false
	}
	return strings.EqualFold(parsed.Host, host)
}
