package incomes

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

func SetupIncomesRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/other-incomes")

	api.Get("/", func(c *fiber.Ctx) error {
		return GetOtherIncomesAPI(c, db)
	})

	api.Post("/", func(c *fiber.Ctx) error {
		return CreateOtherIncomeAPI(c, db)
	})

	api.Delete("/:id", func(c *fiber.Ctx) error {
		return DeleteOtherIncomeAPI(c, db)
	})
}
