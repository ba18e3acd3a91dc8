package cookie

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
	KindError   Kind = "error"
)

// Flash is a notice shown once on the next page render.
type Flash struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

func Success(message string) Flash {
	return Flash{Kind: KindSuccess, Message: message}
}

func Info(message string) Flash {
	return Flash{Kind: KindInfo, Message: message}
}

func Error(message string) Flash {
	return Flash{Kind: KindError, Message: message}
}

func (j *Jar) WriteFlash(w http.ResponseWriter, flash Flash) {
	flash, ok := normalize(flash)
	if !ok {
		return
	}
	payload, err := json.Marshal(flash)
	if err != nil {
		return
	}
	http.SetCookie(w, j.cookie(FlashName, base64.RawURLEncoding.EncodeToString(payload), time.Time{}, 0))
}

// HasFlash reports whether a notice is still waiting to be shown.
func (j *Jar) HasFlash(r *http.Request) bool {
	c, err := r.Cookie(FlashName)
	if err != nil {
		return false
	}
	_, ok := decode(c.Value)
	return ok
}

// ReadAndClearFlash returns the pending notice, if any, and expires the cookie.
func (j *Jar) ReadAndClearFlash(w http.ResponseWriter, r *http.Request) (Flash, bool) {
	c, err := r.Cookie(FlashName)
	if err != nil {
		return Flash{}, false
	}
	http.SetCookie(w, j.cookie(FlashName, "", time.Time{}, -1))

	return decode(c.Value)
}

func decode(raw string) (Flash, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Flash{}, false
	}
	decoded, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return Flash{}, false
	}
	var flash Flash
	if err := json.Unmarshal(decoded, &flash); err != nil {
		return Flash{}, false
	}
	return normalize(flash)
}

func normalize(flash Flash) (Flash, bool) {
	flash.Message = strings.TrimSpace(flash.Message)
	if flash.Message == "" {
		return Flash{}, false
	}
	flash.Kind = Kind(strings.ToLower(strings.TrimSpace(string(flash.Kind))))
	switch flash.Kind {
	case KindSuccess, KindInfo, KindError:
		return flash, true
	default:
		return Flash{}, false
	}
}
