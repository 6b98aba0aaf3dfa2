// Package middleware contains the fiber middlewares
package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/VinukaThejana/immerzo/config"
	"github.com/VinukaThejana/immerzo/errors"
	"github.com/gofiber/fiber/v2"
)

// Admin contains operator related middlewares
type Admin struct {
	Env *config.Env
}

// CheckAdmin is a function that is used to check wether the request carries the admin secret
func (a *Admin) CheckAdmin(c *fiber.Ctx) error {
	var adminToken string
	authorization := c.Get("Authorization")

	if strings.HasPrefix(authorization, "Bearer ") {
		adminToken = strings.TrimPrefix(authorization, "Bearer ")
	} else {
		return errors.Unauthorized(c)
	}

	if a.Env.AdminSecret == "" || subtle.ConstantTimeCompare([]byte(adminToken), []byte(a.Env.AdminSecret)) != 1 {
		return errors.Unauthorized(c)
	}

	return c.Next()
}
