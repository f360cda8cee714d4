package middleware

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var statusPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z_]{0,31}$`)

// RegisterValidators installs the custom binding tags on gin's validator engine.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("booking_status", validateStatusFormat); err != nil {
		return err
	}
	return v.RegisterValidation("uuid_list", validateUUIDList)
}

// validateStatusFormat checks shape only; membership is decided by the engine
// and the store so unknown values keep their own error kinds.
func validateStatusFormat(fl validator.FieldLevel) bool {
	return statusPattern.MatchString(fl.Field().String())
}

// validateUUIDList rejects nil UUIDs inside a list.
func validateUUIDList(fl validator.FieldLevel) bool {
	ids, ok := fl.Field().Interface().([]uuid.UUID)
	if !ok {
		return false
	}
	for _, id := range ids {
		if id == uuid.Nil {
			return false
		}
	}
	return true
}
