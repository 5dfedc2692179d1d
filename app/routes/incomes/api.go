package incomes

import (
	"database/sql"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/TontunHi/it-fund-vr/app/database"
	"github.com/TontunHi/it-fund-vr/app/models"
)

var validate = validator.New()

type createIncomeRequest struct {
	Title       string  `json:"title" validate:"required"`
	Amount      float64 `json:"amount"`
	ReceiveDate string  `json:"receive_date"`
}

func GetOtherIncomesAPI(c *fiber.Ctx, db *sql.DB) error {
	incomes, err := database.GetOtherIncomes(db)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to load other incomes",
			"details": err.Error(),
		})
	}
	return c.JSON(incomes)
}

func CreateOtherIncomeAPI(c *fiber.Ctx, db *sql.DB) error {
	var req createIncomeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Income title is required"})
	}

	receiveDate := time.Now()
	if req.ReceiveDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ReceiveDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid receive_date, expected YYYY-MM-DD"})
		}
		receiveDate = parsed
	}

	oi := &models.OtherIncome{
		Title:       req.Title,
		Amount:      req.Amount,
		ReceiveDate: receiveDate,
	}
	if err := database.CreateOtherIncome(db, oi); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to create income",
			"details": err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(oi)
}

func DeleteOtherIncomeAPI(c *fiber.Ctx, db *sql.DB) error {
	id := c.Params("id")
	if err := database.DeleteOtherIncome(db, id); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Income not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to delete income",
			"details": err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
