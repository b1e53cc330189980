package api

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var errMalformedBody = errors.New("malformed request body")

// parseAndValidate decodes the JSON body into target and runs the struct tags
// through the validator, so handlers only see well-formed input.
func (handler *Handler) parseAndValidate(c *fiber.Ctx, target any) error {
	if err := c.BodyParser(target); err != nil {
		return errMalformedBody
	}
	if err := handler.validate.Struct(target); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			return validationErrors
		}
		return err
	}
	return nil
}
