package payload

import (
	"net/url"
	"opms/internal/core"

	"github.com/jellydator/validation"
)

// RegisterForm is the body of POST /register.
type RegisterForm struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

func (f *RegisterForm) Bind(values url.Values) {
	f.Username = values.Get("username")
	f.Email = values.Get("email")
	f.Password = values.Get("password")
	f.ConfirmPassword = values.Get("confirm_password")
}

// Validate only bounds the raw input. Field rules and their order live in the account service.
func (f RegisterForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Username, validation.RuneLength(0, maxFieldLength)),
		validation.Field(&f.Email, validation.RuneLength(0, maxFieldLength)),
		validation.Field(&f.Password, validation.RuneLength(0, maxFieldLength)),
		validation.Field(&f.ConfirmPassword, validation.RuneLength(0, maxFieldLength)),
	)
}

func (f RegisterForm) ToMessage() core.RegisterMessage {
	return core.RegisterMessage{
		Username:        f.Username,
		Email:           f.Email,
		Password:        f.Password,
		ConfirmPassword: f.ConfirmPassword,
	}
}
