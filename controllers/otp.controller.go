package controllers

import (
	"github.com/VinukaThejana/go-utils/logger"
	"github.com/VinukaThejana/immerzo/config"
	"github.com/VinukaThejana/immerzo/errors"
	"github.com/VinukaThejana/immerzo/schemas"
	"github.com/VinukaThejana/immerzo/services"
	"github.com/VinukaThejana/immerzo/validate"
	"github.com/gofiber/fiber/v2"
)

// OTP struct contains all the otp related controllers
type OTP struct {
	Env     *config.Env
	Service *services.OTP
}

// Start is a function that is used to issue a new otp for the given phone number and purpose
func (o *OTP) Start(c *fiber.Ctx) error {
	var payload schemas.OTPStart

	if err := c.BodyParser(&payload); err != nil {
		logger.Error(err)
		return errors.ValidationFailed(c, err)
	}

	if err := validate.New().Struct(payload); err != nil {
		return errors.ValidationFailed(c, err)
	}

	code, err := o.Service.Start(c.UserContext(), payload.Phone, payload.Purpose)
	if err != nil {
		logger.ErrorWithMsg(err, errors.Describe(err))
		return errors.InternalServerErr(c)
	}

	res := schemas.OTPStartRes{
		Success: true,
		Message: "OTP sent",
	}
	if o.Env.ExposeOTPCode() {
		res.DemoCode = code
	}

	return c.Status(fiber.StatusOK).JSON(res)
}

// Verify is a function that is used to verify the latest otp issued for the phone number and purpose
func (o *OTP) Verify(c *fiber.Ctx) error {
	var payload schemas.OTPVerify

	if err := c.BodyParser(&payload); err != nil {
		logger.Error(err)
		return errors.ValidationFailed(c, err)
	}

	if err := validate.New().Struct(payload); err != nil {
		return errors.ValidationFailed(c, err)
	}

	err := o.Service.Verify(c.UserContext(), payload.Phone, payload.Purpose, payload.Code)
	if err != nil {
		if !errors.IsOTPError(err) {
			logger.ErrorWithMsg(err, errors.Describe(err))
		}
		return errors.Respond(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(schemas.Res{
		Success: true,
	})
}
