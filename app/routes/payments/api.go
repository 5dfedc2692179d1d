package payments

import (
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/TontunHi/it-fund-vr/app/database"
	"github.com/TontunHi/it-fund-vr/app/models"
	"github.com/TontunHi/it-fund-vr/app/storage"
)

var validate = validator.New()

type slipUploadRequest struct {
	MemberID string  `validate:"required,uuid"`
	Month    int     `validate:"required,min=1,max=12"`
	Year     int     `validate:"required,min=2000"`
	Amount   float64 `validate:"min=0"`
}

type statusUpdateRequest struct {
	MemberID string `json:"memberId" validate:"required,uuid"`
	Month    int    `json:"month" validate:"required,min=1,max=12"`
	Year     int    `json:"year" validate:"required,min=2000"`
	Status   string `json:"status" validate:"required,oneof=pending approved"`
}

// GetGridDataAPI returns the payment grid for one year: the active members,
// the stored payment rows, and the synthesized full members x 12 grid where
// missing rows show as unpaid.
func GetGridDataAPI(c *fiber.Ctx, db *sql.DB) error {
	year := c.QueryInt("year", time.Now().Year())

	members, err := database.GetActiveMembers(db)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to load members",
			"details": err.Error(),
		})
	}

	payments, err := database.GetPaymentsByYear(db, year)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to load payments",
			"details": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"year":     year,
		"members":  members,
		"payments": payments,
		"grid":     database.BuildGrid(year, members, payments),
	})
}

// UploadSlipAPI handles the slip upload path of the dues upsert. The slip
// file is mandatory here; a re-upload overwrites the previous slip and
// resets the status to pending.
func UploadSlipAPI(c *fiber.Ctx, db *sql.DB, store *storage.Resolver) error {
	file, err := c.FormFile("slipImage")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Slip image file is required"})
	}

	req := slipUploadRequest{MemberID: c.FormValue("memberId")}
	if req.Month, err = strconv.Atoi(c.FormValue("month")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid month"})
	}
	if req.Year, err = strconv.Atoi(c.FormValue("year")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid year"})
	}
	if req.Amount, err = strconv.ParseFloat(c.FormValue("amount"), 64); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid amount"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payment data", "details": err.Error()})
	}

	slipPath, err := store.Save(storage.KindSlip, file)
	if err != nil {
		if errors.Is(err, storage.ErrNotImage) || errors.Is(err, storage.ErrTooLarge) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to store slip image",
			"details": err.Error(),
		})
	}

	p := &models.Payment{
		MemberID:    req.MemberID,
		TargetMonth: req.Month,
		TargetYear:  req.Year,
		Amount:      req.Amount,
		SlipImage:   &slipPath,
	}
	if err := database.UpsertSlipPayment(db, p); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to save payment",
			"details": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Upload successful",
		"payment": p,
	})
}

// UpdateStatusAPI handles the admin path of the dues upsert: set the status
// for a (member, month, year) key, inserting a row with the default monthly
// due when none exists. The slip path is never touched here.
func UpdateStatusAPI(c *fiber.Ctx, db *sql.DB) error {
	var req statusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status data", "details": err.Error()})
	}

	p, err := database.UpsertPaymentStatus(db, req.MemberID, req.Month, req.Year, models.PaymentStatus(req.Status))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to update status",
			"details": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Status updated",
		"payment": p,
	})
}
