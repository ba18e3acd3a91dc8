package payload

import (
	"net/url"
	"opms/internal/core"

	"github.com/jellydator/validation"
)

// LoginForm is the body of POST /login.
type LoginForm struct {
	Username string
	Password string
}

func (f *LoginForm) Bind(values url.Values) {
	f.Username = values.Get("username")
	f.Password = values.Get("password")
}

func (f LoginForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Username, validation.RuneLength(0, maxFieldLength)),
		validation.Field(&f.Password, validation.RuneLength(0, maxFieldLength)),
	)
}

func (f LoginForm) ToMessage() core.AuthMessage {
	return core.AuthMessage{
		Username: f.Username,
		Password: f.Password,
	}
}
