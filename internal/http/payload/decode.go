package payload

import (
	"fmt"
	"net/http"
	"net/url"
)

const (
	maxFieldLength = 256
	maxFormBytes   = 16 << 10
)

// Form is anything that can be filled from url-encoded form values.
type Form interface {
	Bind(values url.Values)
}

func DecodeForm(w http.ResponseWriter, r *http.Request, form Form) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)

	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("parsing form: %w", err)
	}

	form.Bind(r.PostForm)
	return nil
}
