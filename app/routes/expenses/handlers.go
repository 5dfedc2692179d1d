package expenses

import (
	"database/sql"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/TontunHi/it-fund-vr/app/models"
	"github.com/TontunHi/it-fund-vr/app/storage"
)

var validate = validator.New()

type expenseRequest struct {
	Title     string  `validate:"required"`
	Amount    float64 `validate:"min=0"`
	CreatedBy string  `validate:"omitempty,uuid"`
}

func GetExpensesAPI(c *fiber.Ctx, db *sql.DB) error {
	expenses, err := GetAllExpenses(db)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to load expenses",
			"details": err.Error(),
		})
	}
	return c.JSON(expenses)
}

// CreateExpenseAPI records an expense from a multipart form. The receipt
// image is optional.
func CreateExpenseAPI(c *fiber.Ctx, db *sql.DB, store *storage.Resolver) error {
	req, err := parseExpenseForm(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if req.CreatedBy == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Purchaser (createdBy) is required"})
	}

	receiptPath, err := saveReceiptIfPresent(c, store)
	if err != nil {
		return receiptError(c, err)
	}

	e := &models.Expense{
		Title:        req.Title,
		Amount:       req.Amount,
		Description:  optional(c.FormValue("description")),
		ReceiptImage: receiptPath,
		CreatedBy:    req.CreatedBy,
	}
	if err := CreateExpense(db, e); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to create expense",
			"details": err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(e)
}

// UpdateExpenseAPI edits title, amount and description; the receipt is only
// replaced when a new file is attached.
func UpdateExpenseAPI(c *fiber.Ctx, db *sql.DB, store *storage.Resolver) error {
	req, err := parseExpenseForm(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	receiptPath, err := saveReceiptIfPresent(c, store)
	if err != nil {
		return receiptError(c, err)
	}

	e := &models.Expense{
		ID:           c.Params("id"),
		Title:        req.Title,
		Amount:       req.Amount,
		Description:  optional(c.FormValue("description")),
		ReceiptImage: receiptPath,
	}
	if err := UpdateExpense(db, e, receiptPath != nil); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Expense not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to update expense",
			"details": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Expense updated"})
}

func DeleteExpenseAPI(c *fiber.Ctx, db *sql.DB) error {
	id := c.Params("id")
	if err := DeleteExpense(db, id); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Expense not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to delete expense",
			"details": err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func parseExpenseForm(c *fiber.Ctx) (*expenseRequest, error) {
	req := &expenseRequest{
		Title:     c.FormValue("title"),
		CreatedBy: c.FormValue("createdBy"),
	}

	amount, err := strconv.ParseFloat(c.FormValue("amount"), 64)
	if err != nil {
		return nil, errors.New("invalid amount")
	}
	req.Amount = amount

	if err := validate.Struct(req); err != nil {
		return nil, errors.New("invalid expense data: " + err.Error())
	}
	return req, nil
}

// saveReceiptIfPresent stores the attached receipt, if any. No file is not
// an error: receipts are optional on expenses.
func saveReceiptIfPresent(c *fiber.Ctx, store *storage.Resolver) (*string, error) {
	file, err := c.FormFile("receiptImage")
	if err != nil {
		return nil, nil
	}

	path, err := store.Save(storage.KindReceipt, file)
	if err != nil {
		return nil, err
	}
	return &path, nil
}

func receiptError(c *fiber.Ctx, err error) error {
	if errors.Is(err, storage.ErrNotImage) || errors.Is(err, storage.ErrTooLarge) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "Failed to store receipt image",
		"details": err.Error(),
	})
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
