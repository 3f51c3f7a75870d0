package http

import (
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"keybuddy/internal/shared/authorization"
)

// registerValidations installs custom binding validations on gin's
// shared validator instance.
func registerValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterValidation("userrole", func(fl validator.FieldLevel) bool {
		return authorization.UserRole(strings.ToLower(fl.Field().String())).IsValid()
	})
}
