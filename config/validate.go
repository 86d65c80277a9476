package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks cfg against its struct tags and lists every violation.
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}

	return fmt.Errorf("%w:\n  - %s", ErrInvalid, strings.Join(msgs, "\n  - "))
}
