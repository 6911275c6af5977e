package helper

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"ihtiyati_backend/internals/helpers/apperr"
)

// ✅ Success response without custom code (default 200)
func Success(c *fiber.Ctx, message string, data interface{}) error {
	return SuccessWithCode(c, fiber.StatusOK, message, data)
}

// ✅ Success response with custom code (e.g. 201 for created)
func SuccessWithCode(c *fiber.Ctx, code int, message string, data interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

// ✅ Plain error response
func Error(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
	})
}

// ✅ Error response with field details
func ErrorWithDetails(c *fiber.Ctx, code int, message string, errors interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
		"errors":  errors,
	})
}

// ✅ validator.v10 errors → field map
func ValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return Error(c, fiber.StatusBadRequest, "Invalid input")
	}

	errorsMap := make(map[string]string)
	for _, fieldErr := range ve {
		errorsMap[fieldErr.Field()] = fieldErr.Tag()
	}

	return ErrorWithDetails(c, fiber.StatusBadRequest, "البيانات المدخلة غير صحيحة", errorsMap)
}

// FromAppError logs the internal diagnostic and sends the localized envelope.
// This is the single funnel every controller routes service errors through;
// no raw error text reaches the client.
func FromAppError(c *fiber.Ctx, err error, fallbackMsg string) error {
	kind := apperr.KindOf(err)
	log.Printf("[ERR] kind=%s path=%s err=%v", kind, c.Path(), err)

	msg := apperr.UserMessage(err, fallbackMsg)
	if strings.TrimSpace(msg) == "" {
		msg = fiber.ErrInternalServerError.Message
	}
	return Error(c, apperr.HTTPStatus(kind), msg)
}

// FromFiberError converts a *fiber.Error (usually out of a Transaction) into
// the consistent JSON envelope. Anything else falls back to 500.
func FromFiberError(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return Error(c, fe.Code, fe.Message)
	}
	return Error(c, fiber.StatusInternalServerError, err.Error())
}
