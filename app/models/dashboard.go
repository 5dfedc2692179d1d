package models

// UnpaidType distinguishes a current-month gap from a recorded past-due row.
type UnpaidType string

const (
	UnpaidCurrent UnpaidType = "current"
	UnpaidOverdue UnpaidType = "overdue"
)

// UnpaidEntry is one outstanding (member, month, year) obligation on the
// dashboard. Entries are not deduplicated across the current and overdue
// groups: each represents a distinct obligation.
type UnpaidEntry struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Nickname    *string       `json:"nickname,omitempty"`
	AvatarColor string        `json:"avatar_color"`
	Type        UnpaidType    `json:"type"`
	Status      PaymentStatus `json:"status"`
	TargetMonth int           `json:"target_month"`
	TargetYear  int           `json:"target_year"`
}

// DashboardStats is the whole-history financial summary.
type DashboardStats struct {
	Balance           float64       `json:"balance"`
	TotalIncome       float64       `json:"totalIncome"`
	TotalMemberIncome float64       `json:"totalMemberIncome"`
	TotalOtherIncome  float64       `json:"totalOtherIncome"`
	TotalExpense      float64       `json:"totalExpense"`
	PendingCount      int           `json:"pendingCount"`
	UnpaidList        []UnpaidEntry `json:"unpaidList"`
	ExpectedRevenue   float64       `json:"expectedRevenue"`
}
