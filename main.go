package main

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"github.com/TontunHi/it-fund-vr/app/config"
	"github.com/TontunHi/it-fund-vr/app/database"
	"github.com/TontunHi/it-fund-vr/app/routes/dashboard"
	"github.com/TontunHi/it-fund-vr/app/routes/expenses"
	"github.com/TontunHi/it-fund-vr/app/routes/incomes"
	"github.com/TontunHi/it-fund-vr/app/routes/members"
	"github.com/TontunHi/it-fund-vr/app/routes/payments"
	"github.com/TontunHi/it-fund-vr/app/routes/transactions"
	"github.com/TontunHi/it-fund-vr/app/storage"
)

// customErrorHandler keeps API error responses as JSON
func customErrorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if strings.HasPrefix(c.Path(), "/api") {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	return c.Status(code).SendString(err.Error())
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	db, err := cfg.OpenDB()
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()
	log.Println("Database connected successfully")

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	store := storage.NewResolver(cfg.UploadDir)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
		BodyLimit:    storage.MaxUploadSize + 1<<20,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Uploaded images are served read-only from the upload directory tree
	app.Static("/uploads", cfg.UploadDir)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Routes
	members.SetupMembersRoutes(app, db)
	payments.SetupPaymentsRoutes(app, db, store)
	dashboard.SetupDashboardRoutes(app, db)
	expenses.SetupExpensesRoutes(app, db, store)
	incomes.SetupIncomesRoutes(app, db)
	transactions.SetupTransactionsRoutes(app, db)

	log.Printf("Server running on http://localhost:%s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
