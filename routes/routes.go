// Package routes wires the controllers to the fiber app
package routes

import (
	"github.com/VinukaThejana/immerzo/config"
	"github.com/VinukaThejana/immerzo/connect"
	"github.com/VinukaThejana/immerzo/controllers"
	"github.com/VinukaThejana/immerzo/enums"
	"github.com/VinukaThejana/immerzo/middleware"
	"github.com/VinukaThejana/immerzo/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/monitor"
)

// New creates the fiber app with the request body limit taken from the enviroment
func New(env *config.Env) *fiber.App {
	limit := env.UploadBodyLimit
	if limit <= 0 {
		limit = config.DefaultBodyLimit
	}

	return fiber.New(fiber.Config{
		AppName:   "IMMERZO API",
		BodyLimit: limit,
	})
}

// SetupRoutes configures all routes
func SetupRoutes(app *fiber.App, conn *connect.Connector, env *config.Env, otpS *services.OTP, inquiryS *services.Inquiry) {
	system := controllers.System{
		Conn: conn,
		Env:  env,
	}
	otp := controllers.OTP{
		Env:     env,
		Service: otpS,
	}
	inquiry := controllers.Inquiry{
		Service: inquiryS,
	}

	app.Get("/", system.Root)
	app.Get("/test", system.Test)
	app.Get("/health", system.Health)

	app.Route("/monitor", func(router fiber.Router) {
		router.Get("/metrics", monitor.New(monitor.Config{
			Title: "Monitor IMMERZO",
		}))
	})

	if env.UploadDriver == enums.UploadLocal {
		app.Static(env.UploadPublicPrefix, env.UploadDir)
	}

	api := app.Group("/api")

	api.Route("/otp", func(router fiber.Router) {
		router.Post("/start", otp.Start)
		router.Post("/verify", otp.Verify)
	})

	api.Post("/franchise", inquiry.Franchise)
	api.Post("/mall", inquiry.Mall)
	api.Get("/metrics", system.Metrics)
	api.Get("/resources", system.Resources)

	if env.AdminSecret != "" {
		admin := controllers.Admin{
			Service: inquiryS,
		}
		adminM := middleware.Admin{
			Env: env,
		}

		adminR := app.Group("/admin", adminM.CheckAdmin)
		adminR.Get("/inquiries/:kind", admin.Inquiries)
	}
}
