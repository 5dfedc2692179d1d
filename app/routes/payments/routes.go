package payments

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/TontunHi/it-fund-vr/app/storage"
)

// SetupPaymentsRoutes sets up the dues ledger routes: the yearly grid, the
// slip upload path and the admin status path.
func SetupPaymentsRoutes(app *fiber.App, db *sql.DB, store *storage.Resolver) {
	api := app.Group("/api")

	api.Get("/grid-data", func(c *fiber.Ctx) error {
		return GetGridDataAPI(c, db)
	})

	api.Post("/payments", func(c *fiber.Ctx) error {
		return UploadSlipAPI(c, db, store)
	})

	api.Put("/payments/status", func(c *fiber.Ctx) error {
		return UpdateStatusAPI(c, db)
	})
}
