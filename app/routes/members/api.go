package members

import (
	"database/sql"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/TontunHi/it-fund-vr/app/database"
	"github.com/TontunHi/it-fund-vr/app/models"
)

var validate = validator.New()

type createMemberRequest struct {
	Name        string  `json:"name" validate:"required"`
	Nickname    *string `json:"nickname"`
	AvatarColor string  `json:"avatar_color"`
}

// GetMembersAPI returns all active members in registry order.
func GetMembersAPI(c *fiber.Ctx, db *sql.DB) error {
	members, err := database.GetActiveMembers(db)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to load members",
			"details": err.Error(),
		})
	}
	return c.JSON(members)
}

func CreateMemberAPI(c *fiber.Ctx, db *sql.DB) error {
	var req createMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Member name is required"})
	}

	m := &models.Member{
		Name:        req.Name,
		Nickname:    req.Nickname,
		AvatarColor: req.AvatarColor,
	}
	if err := database.CreateMember(db, m); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to create member",
			"details": err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(m)
}

// DeleteMemberAPI deactivates a member. History (payments, expenses) is kept.
func DeleteMemberAPI(c *fiber.Ctx, db *sql.DB) error {
	id := c.Params("id")
	if err := database.DeactivateMember(db, id); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Member not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to delete member",
			"details": err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
