package presenters

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data any, status int, message string) error {
	return c.Status(status).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	res := Response{
		Success: false,
		Message: message,
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := make(map[string]string, len(validationErrs))
		for _, fe := range validationErrs {
			fields[fe.Field()] = fe.Tag()
		}
		res.Errors = fields
	} else if err != nil {
		res.Errors = err.Error()
	}

	return c.Status(status).JSON(res)
}

// JSONResponse writes the payload bare, without the envelope. The endpoints
// carried over from the previous system promise exactly that shape.
func JSONResponse(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(data)
}

// MessageResponse writes the single-field {"message": ...} body the carried
// over endpoints respond with.
func MessageResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"message": message})
}
