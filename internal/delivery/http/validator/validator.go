// Package validator adapts go-playground/validator to echo's Validator
// interface so handlers can rely on `validate` struct tags.
package validator

import (
	"net/http"

	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *playground.Validate
}

// New builds the validator echo uses for c.Validate calls.
func New() echo.Validator {
	return &echoValidator{validate: playground.New()}
}

// Validate runs struct validation and converts failures into an echo
// HTTPError so the central error handler can format them.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
