// IMMERZO is the lead intake backend for franchise and mall partnership inquiries
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/VinukaThejana/go-utils/logger"
	"github.com/VinukaThejana/immerzo/config"
	"github.com/VinukaThejana/immerzo/connect"
	"github.com/VinukaThejana/immerzo/enums"
	"github.com/VinukaThejana/immerzo/passcode"
	"github.com/VinukaThejana/immerzo/routes"
	"github.com/VinukaThejana/immerzo/services"
	"github.com/VinukaThejana/immerzo/utils"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberLogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

var (
	env  config.Env
	conn connect.Connector
)

func init() {
	if err := env.Load("."); err != nil {
		logger.Errorf(err)
	}

	conn.InitStore(&env)
	utils.CheckForMigrations(&conn, &env)

	conn.InitRedis(&env)
	conn.InitMinioClient(&env)
	conn.InitUploads(&env)
}

func sender() passcode.Sender {
	if env.OTPCodeGenerator() == enums.OTPRandom {
		return passcode.Random{
			Digits:     6,
			Dispatcher: passcode.LogDispatcher{},
		}
	}

	return passcode.Fixed{
		Code: env.OTPFixedCode,
	}
}

func main() {
	otpS := services.OTP{
		Store:  conn.Store,
		Sender: sender(),
		TTL:    env.OTPTTL,
	}
	inquiryS := services.Inquiry{
		Store:               conn.Store,
		OTP:                 &otpS,
		Uploads:             conn.Uploads,
		RequireFranchiseOTP: env.OTPRequiredFranchise,
		RequireMallOTP:      env.OTPRequiredMall,
	}
	if email := utils.NewEmail(&env); email != nil {
		inquiryS.Notifier = email
	}

	app := routes.New(&env)
	if config.GetDevEnv(&env) == config.Dev {
		app.Use(fiberLogger.New())
	}

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowOrigins: env.FrontendURL,
		AllowMethods: "*",
	}))

	routes.SetupRoutes(app, &conn, &env, &otpS, &inquiryS)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Log("Shutting down the server")
		if err := app.Shutdown(); err != nil {
			logger.Error(err)
		}
		if conn.Mongo != nil {
			if err := conn.Mongo.Disconnect(context.Background()); err != nil {
				logger.Error(err)
			}
		}
	}()

	if err := app.Listen(fmt.Sprintf(":%s", env.Port)); err != nil {
		logger.Errorf(err)
	}
}
