package models

import "time"

// OtherIncome is a miscellaneous income record (carried-over balance,
// interest, ...). The table is best-effort: readers must tolerate it being
// absent entirely.
type OtherIncome struct {
	ID          string    `json:"id"`
	Title       string    `json:"title" validate:"required"`
	Amount      float64   `json:"amount"`
	ReceiveDate time.Time `json:"receive_date"`
}
