package transactions

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/TontunHi/it-fund-vr/app/database"
)

// GetTransactionsAPI returns the unified statement: approved dues payments,
// expenses and other incomes merged by date descending, at most 100 rows.
func GetTransactionsAPI(c *fiber.Ctx, db *sql.DB) error {
	txs, err := database.GetTransactions(db)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to load transactions",
			"details": err.Error(),
		})
	}
	return c.JSON(txs)
}
