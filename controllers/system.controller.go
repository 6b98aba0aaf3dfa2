package controllers

import (
	"fmt"
	"strconv"

	"github.com/VinukaThejana/go-utils/logger"
	"github.com/VinukaThejana/immerzo/config"
	"github.com/VinukaThejana/immerzo/connect"
	"github.com/VinukaThejana/immerzo/enums"
	"github.com/VinukaThejana/immerzo/store"
	"github.com/gofiber/fiber/v2"
)

// System is a struct that contains system level controllers
type System struct {
	Conn *connect.Connector
	Env  *config.Env
}

// Root is used to check wether the backend is running
func (s *System) Root(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "IMMERZO Backend Running",
	})
}

// Diagnostic describes the state of the document store connection
type Diagnostic struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      *string  `json:"database_url"`
	DatabaseName     *string  `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

func set(value string, ok string) *string {
	if value == "" {
		notSet := "❌ Not Set"
		return &notSet
	}
	return &ok
}

func errSnippet(err error) string {
	msg := []rune(err.Error())
	if len(msg) > 80 {
		msg = msg[:80]
	}
	return string(msg)
}

// Test is a function that reports the document store status and the first collections
func (s *System) Test(c *fiber.Ctx) error {
	res := Diagnostic{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if store.IsUnavailable(s.Conn.Store) {
		return c.Status(fiber.StatusOK).JSON(res)
	}

	res.Database = "✅ Available"
	res.DatabaseURL = set(s.Env.DSN, "✅ Set")
	res.DatabaseName = set(s.Env.DatabaseName, s.Env.DatabaseName)

	collections, err := s.Conn.Store.ListCollections(c.UserContext())
	if err != nil {
		logger.Error(err)
		res.Database = fmt.Sprintf("⚠️ Connected but Error: %s", errSnippet(err))
		return c.Status(fiber.StatusOK).JSON(res)
	}

	if len(collections) > 10 {
		collections = collections[:10]
	}
	res.Collections = collections
	res.Database = "✅ Connected & Working"
	res.ConnectionStatus = "Connected"

	return c.Status(fiber.StatusOK).JSON(res)
}

// Health is a function that is notifys the system health
func (s *System) Health(c *fiber.Ctx) error {
	if s.Conn.R == nil || s.Conn.R.System == nil {
		err := s.Conn.Store.Ping(c.UserContext())
		if err != nil {
			logger.Error(err)
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"health": err == nil,
		})
	}

	var health bool
	var err error
	status := s.Conn.R.System.Get(c.UserContext(), enums.SysHealth).Val()
	if status == "" {
		health = false
	} else {
		health, err = strconv.ParseBool(status)
		if err != nil {
			health = false
		}
	}

	msg := s.Conn.R.System.Get(c.UserContext(), enums.SysHealthMsg).Val()
	if msg == "" {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"health": health,
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"health":  health,
		"message": msg,
	})
}

// Metrics returns the operating metrics of the flagship unit
func (s *System) Metrics(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"operational_since":              "June, 2023",
		"current_location":               "Phoenix Marketcity, Bengaluru",
		"avg_daily_footfall":             1800,
		"mom_growth_percent":             18,
		"avg_tickets_per_day":            240,
		"peak_days":                      "Fri-Sun",
		"corporate_booking_rate_percent": 22,
		"google_rating":                  4.7,
		"franchise_slots_2025":           3,
	})
}

// Resources returns the download links and contact details
func (s *System) Resources(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"franchise_kit_url": "/assets/franchise-kit.pdf",
		"webinar_time":      "Saturday 11:00 AM IST",
		"whatsapp_number":   "+91-90XXXXXX00",
	})
}
