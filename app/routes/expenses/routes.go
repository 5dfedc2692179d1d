package expenses

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/TontunHi/it-fund-vr/app/storage"
)

func SetupExpensesRoutes(app *fiber.App, db *sql.DB, store *storage.Resolver) {
	api := app.Group("/api/expenses")

	api.Get("/", func(c *fiber.Ctx) error {
		return GetExpensesAPI(c, db)
	})

	api.Post("/", func(c *fiber.Ctx) error {
		return CreateExpenseAPI(c, db, store)
	})

	api.Put("/:id", func(c *fiber.Ctx) error {
		return UpdateExpenseAPI(c, db, store)
	})

	api.Delete("/:id", func(c *fiber.Ctx) error {
		return DeleteExpenseAPI(c, db)
	})
}
