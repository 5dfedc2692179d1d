package dashboard

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App, db *sql.DB) {
	app.Get("/api/dashboard/stats", func(c *fiber.Ctx) error {
		return GetDashboardStatsAPI(c, db)
	})
}
