package transactions

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

func SetupTransactionsRoutes(app *fiber.App, db *sql.DB) {
	app.Get("/api/transactions", func(c *fiber.Ctx) error {
		return GetTransactionsAPI(c, db)
	})
}
