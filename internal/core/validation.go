package core

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jellydator/validation"
	"github.com/jellydator/validation/is"
)

const (
	maxUsernameLength = 50
	maxEmailLength    = 100
	// bcrypt ignores everything past 72 bytes
	maxPasswordBytes = 72
)

var notBlank = regexp.MustCompile(`\S`)

// ValidationError reports the first field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// fieldCheck is one step of a validation pipeline.
type fieldCheck struct {
	field string
	label string
	value string
	rules []validation.Rule
}

// runChecks evaluates the checks in order and stops at the first failure.
func runChecks(checks ...fieldCheck) error {
	for _, c := range checks {
		if err := validation.Validate(c.value, c.rules...); err != nil {
			return &ValidationError{
				Field:   c.field,
				Message: fmt.Sprintf("%s %s", c.label, err.Error()),
			}
		}
	}
	return nil
}

func registrationChecks(msg RegisterMessage) []fieldCheck {
	return []fieldCheck{
		{
			field: "username",
			label: "Username",
			value: msg.Username,
			rules: []validation.Rule{
				validation.Required,
				validation.RuneLength(1, maxUsernameLength),
			},
		},
		{
			field: "email",
			label: "Email",
			value: msg.Email,
			rules: []validation.Rule{
				validation.Required,
				is.EmailFormat,
				validation.RuneLength(1, maxEmailLength),
			},
		},
		{
			field: "password",
			label: "Password",
			value: msg.Password,
			rules: []validation.Rule{
				validation.Required,
				validation.Match(notBlank).Error("cannot be blank"),
				validation.By(maxBytes(maxPasswordBytes)),
			},
		},
		{
			field: "confirm_password",
			label: "Password confirmation",
			value: msg.ConfirmPassword,
			rules: []validation.Rule{
				validation.Required,
				validation.In(msg.Password).Error("must match the password"),
			},
		},
	}
}

func loginChecks(msg AuthMessage) []fieldCheck {
	return []fieldCheck{
		{
			field: "username",
			label: "Username",
			value: msg.Username,
			rules: []validation.Rule{validation.Required},
		},
		{
			field: "password",
			label: "Password",
			value: msg.Password,
			rules: []validation.Rule{validation.Required},
		},
	}
}

func maxBytes(limit int) validation.RuleFunc {
	return func(value any) error {
		s, _ := value.(string)
		if len(s) > limit {
			return fmt.Errorf("must be at most %d bytes long", limit)
		}
		return nil
	}
}

func normalizeRegistration(msg RegisterMessage) RegisterMessage {
	msg.Username = strings.TrimSpace(msg.Username)
	msg.Email = strings.TrimSpace(msg.Email)
	return msg
}
