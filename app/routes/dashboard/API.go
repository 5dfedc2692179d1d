package dashboard

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/TontunHi/it-fund-vr/app/database"
)

// GetDashboardStatsAPI returns the whole-history summary: balance, totals
// and the merged unpaid list.
func GetDashboardStatsAPI(c *fiber.Ctx, db *sql.DB) error {
	stats, err := database.GetDashboardStats(db, time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to fetch dashboard statistics",
			"details": err.Error(),
		})
	}
	return c.JSON(stats)
}
