package routes

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
)

// pinger nil = tidak ada DB (mis. saat test)
func BaseRoutes(app *fiber.App, pinger func() error) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Tahfidz target planner is running 🚀")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "Connected"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK

		if pinger == nil || pinger() != nil {
			dbStatus = "Database connection error"
			serverStatus = "DOWN"
			httpStatus = fiber.StatusServiceUnavailable
		}

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"database":       dbStatus,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
			"environment":    os.Getenv("RAILWAY_ENVIRONMENT"),
		})
	})
}
