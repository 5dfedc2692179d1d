package members

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

// SetupMembersRoutes sets up the member registry routes
func SetupMembersRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/members")

	api.Get("/", func(c *fiber.Ctx) error {
		return GetMembersAPI(c, db)
	})

	api.Post("/", func(c *fiber.Ctx) error {
		return CreateMemberAPI(c, db)
	})

	api.Delete("/:id", func(c *fiber.Ctx) error {
		return DeleteMemberAPI(c, db)
	})
}
