package models

import "time"

// PaymentStatus defines the status of a monthly dues payment.
// "unpaid" is never stored: it is synthesized when no row exists for a
// (member, month, year) key.
type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPending  PaymentStatus = "pending"
	PaymentApproved PaymentStatus = "approved"
)

// MonthlyDue is the fixed amount each member owes per month.
const MonthlyDue = 100.0

// Payment represents a member's dues payment for one target month/year.
// One row per (member, target_month, target_year), enforced by a unique
// constraint; writes go through atomic upserts.
type Payment struct {
	ID          string        `json:"id" validate:"required,uuid"`
	MemberID    string        `json:"member_id" validate:"required,uuid"`
	TargetMonth int           `json:"target_month" validate:"required,min=1,max=12"`
	TargetYear  int           `json:"target_year" validate:"required"`
	Amount      float64       `json:"amount"`
	Status      PaymentStatus `json:"status"`
	SlipImage   *string       `json:"slip_image,omitempty"`
	PaidAt      time.Time     `json:"paid_at"`
}
