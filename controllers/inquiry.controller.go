package controllers

import (
	"io"

	"github.com/VinukaThejana/go-utils/logger"
	"github.com/VinukaThejana/immerzo/errors"
	"github.com/VinukaThejana/immerzo/schemas"
	"github.com/VinukaThejana/immerzo/services"
	"github.com/VinukaThejana/immerzo/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

// Inquiry struct contains the franchise and mall inquiry controllers
type Inquiry struct {
	Service *services.Inquiry
}

// Franchise is a function that is used to submit a franchise inquiry
func (i *Inquiry) Franchise(c *fiber.Ctx) error {
	var payload schemas.FranchisePayload

	if err := c.BodyParser(&payload); err != nil {
		logger.Error(err)
		return errors.ValidationFailed(c, err)
	}

	if err := validate.New().Struct(payload); err != nil {
		return errors.ValidationFailed(c, err)
	}

	id, err := i.Service.SubmitFranchise(c.UserContext(), payload)
	if err != nil {
		if !errors.IsOTPError(err) {
			logger.ErrorWithMsg(err, errors.Describe(err))
		}
		return errors.Respond(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(schemas.CreatedRes{
		Success: true,
		ID:      id,
	})
}

// Mall is a function that is used to submit a mall partnership inquiry with an optional floorplan
func (i *Inquiry) Mall(c *fiber.Ctx) error {
	var payload schemas.MallPayload

	if err := c.BodyParser(&payload); err != nil {
		logger.Error(err)
		return errors.ValidationFailed(c, err)
	}

	if err := validate.New().Struct(payload); err != nil {
		return errors.ValidationFailed(c, err)
	}

	file, err := floorplan(c)
	if err != nil {
		logger.Error(err)
		return errors.BadRequest(c)
	}

	id, saved, err := i.Service.SubmitMall(c.UserContext(), payload, file)
	if err != nil {
		if !errors.IsOTPError(err) {
			logger.ErrorWithMsg(err, errors.Describe(err))
		}
		return errors.Respond(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(schemas.MallCreatedRes{
		Success: true,
		ID:      id,
		File:    saved,
	})
}

// floorplan reads the optional floorplan part of the multipart form
func floorplan(c *fiber.Ctx) (*services.File, error) {
	header, err := c.FormFile("floorplan")
	if err != nil {
		if err == fasthttp.ErrMissingFile {
			return nil, nil
		}
		return nil, err
	}
	if header == nil || (header.Filename == "" && header.Size == 0) {
		return nil, nil
	}

	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	return &services.File{
		Name: header.Filename,
		Data: data,
	}, nil
}
