// Package errors contians http errors and other custom errors
package errors

import (
	errs "errors"
	"fmt"

	"github.com/VinukaThejana/immerzo/schemas"
	"github.com/VinukaThejana/immerzo/store"
	"github.com/VinukaThejana/immerzo/upload"
	"github.com/VinukaThejana/immerzo/validate"
	"github.com/gofiber/fiber/v2"
)

//revive:disable

var (
	ErrInternalServerError = fmt.Errorf("internal_server_error")
	ErrUnauthorized        = fmt.Errorf("unauthorized")
	ErrBadRequest          = fmt.Errorf("bad_request")
	ErrNotFound            = fmt.Errorf("not_found")
	ErrValidation          = fmt.Errorf("validation_failed")
	ErrOTPNotFound         = fmt.Errorf("OTP not found")
	ErrInvalidOTP          = fmt.Errorf("Invalid OTP")
	ErrOTPExpired          = fmt.Errorf("OTP expired")
	ErrOTPRequired         = fmt.Errorf("OTP required")
)

type res schemas.Res

func InternalServerErr(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(res{
		Detail: ErrInternalServerError.Error(),
	})
}

func Unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(res{
		Detail: ErrUnauthorized.Error(),
	})
}

func badrequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(res{
		Detail: err.Error(),
	})
}

func BadRequest(c *fiber.Ctx) error {
	return badrequest(c, ErrBadRequest)
}

func NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(res{
		Detail: ErrNotFound.Error(),
	})
}

func ValidationFailed(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(res{
		Detail: ErrValidation.Error(),
		Errors: validate.Messages(err),
	})
}

// OTPFailed responds with the reason the OTP could not be verified
func OTPFailed(c *fiber.Ctx, err error) error {
	return badrequest(c, err)
}

//revive:enable

// IsOTPError reports wether the error is a client side OTP verification failure
func IsOTPError(err error) bool {
	return errs.Is(err, ErrOTPNotFound) ||
		errs.Is(err, ErrInvalidOTP) ||
		errs.Is(err, ErrOTPExpired) ||
		errs.Is(err, ErrOTPRequired)
}

// Respond maps an error returned by the services to the matching http response
func Respond(c *fiber.Ctx, err error) error {
	switch {
	case IsOTPError(err):
		return OTPFailed(c, err)
	case errs.Is(err, upload.ErrInvalidFilename):
		return badrequest(c, upload.ErrInvalidFilename)
	default:
		return InternalServerErr(c)
	}
}

// CheckStoreError is a struct that is used to identify document store errors
type CheckStoreError struct{}

// Unavailable is a function that is used to find wether the store connection was never established
func (CheckStoreError) Unavailable(err error) bool {
	return errs.Is(err, store.ErrUnavailable)
}

// Write is a function that is used to find wether the document could not be persisted
func (CheckStoreError) Write(err error) bool {
	return errs.Is(err, store.ErrWrite)
}

// Describe returns the log message for an error that ends up as an internal server error
func Describe(err error) string {
	check := CheckStoreError{}
	switch {
	case check.Unavailable(err):
		return "The document store is not connected"
	case check.Write(err):
		return "Failed to persist the document"
	case errs.Is(err, upload.ErrIO):
		return "Failed to save the floorplan"
	default:
		return "Request failed"
	}
}
