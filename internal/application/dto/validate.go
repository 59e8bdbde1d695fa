package dto

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/door-to-door/internal/domain"
)

// validate es seguro para uso concurrente y cachea la metadata de cada struct.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate aplica las etiquetas `validate` de v; los fallos envuelven domain.ErrInvalidInput.
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}
