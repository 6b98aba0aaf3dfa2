package controllers

import (
	"github.com/VinukaThejana/go-utils/logger"
	"github.com/VinukaThejana/immerzo/errors"
	"github.com/VinukaThejana/immerzo/services"
	"github.com/gofiber/fiber/v2"
)

const (
	defaultInquiryLimit = 20
	maxInquiryLimit     = 100
)

// Admin is a struct that contains all the admin related controllers
type Admin struct {
	Service *services.Inquiry
}

// Inquiries is a function that is used to list the newest franchise or mall inquiries
func (a *Admin) Inquiries(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultInquiryLimit)
	if limit <= 0 {
		limit = defaultInquiryLimit
	}
	if limit > maxInquiryLimit {
		limit = maxInquiryLimit
	}

	data, count, err := a.Service.Recent(c.UserContext(), c.Params("kind"), int64(limit))
	if err != nil {
		if err == errors.ErrNotFound {
			return errors.NotFound(c)
		}

		logger.ErrorWithMsg(err, errors.Describe(err))
		return errors.InternalServerErr(c)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"count":   count,
		"data":    data,
	})
}
