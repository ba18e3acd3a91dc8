// Package cookie owns the browser cookies of the web surface: the session
// token and the one-time flash notice.
package cookie

import (
	"net/http"
	"strings"
	"time"
)

const (
	SessionName = "opms_session"
	FlashName   = "opms_flash"
)

// Jar writes cookies with a shared policy. Secure is enabled when the server sits behind TLS.
type Jar struct {
	secure bool
}

func NewJar(secure bool) *Jar {
	return &Jar{secure: secure}
}

// ReadSession returns the trimmed session token when present.
func (j *Jar) ReadSession(r *http.Request) (string, bool) {
	c, err := r.Cookie(SessionName)
	if err != nil {
		return "", false
	}
	value := strings.TrimSpace(c.Value)
	if value == "" {
		return "", false
	}
	return value, true
}

func (j *Jar) WriteSession(w http.ResponseWriter, token string, expires time.Time) {
	http.SetCookie(w, j.cookie(SessionName, token, expires, 0))
}

func (j *Jar) ClearSession(w http.ResponseWriter) {
	http.SetCookie(w, j.cookie(SessionName, "", time.Time{}, -1))
}

func (j *Jar) cookie(name, value string, expires time.Time, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   j.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
