package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the envelope against the fields the API guarantees.
func (e *Envelope) Validate() error {
	if err := validate.Struct(e); err != nil {
		return fmt.Errorf("invalid envelope: %w", err)
	}
	return nil
}
