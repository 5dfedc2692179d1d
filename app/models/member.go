package models

import "time"

// Member represents a person in the fund roster.
type Member struct {
	ID          string    `json:"id" validate:"required,uuid"`
	Name        string    `json:"name" validate:"required"`
	Nickname    *string   `json:"nickname,omitempty"`
	AvatarColor string    `json:"avatar_color"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// DefaultAvatarColor is assigned when a member is created without one.
const DefaultAvatarColor = "bg-gray-400"
