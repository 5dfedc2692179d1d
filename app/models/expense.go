package models

import "time"

// Expense represents money spent from the shared fund.
type Expense struct {
	ID           string    `json:"id" validate:"required,uuid"`
	Title        string    `json:"title" validate:"required"`
	Amount       float64   `json:"amount"`
	Description  *string   `json:"description,omitempty"`
	ReceiptImage *string   `json:"receipt_image,omitempty"`
	CreatedBy    string    `json:"created_by"`
	ExpenseDate  time.Time `json:"expense_date"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Joined from members for display; not stored on the expense row.
	BuyerName   *string `json:"buyer_name,omitempty"`
	AvatarColor *string `json:"avatar_color,omitempty"`
}
