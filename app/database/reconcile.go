package database

import (
	"time"

	"github.com/TontunHi/it-fund-vr/app/models"
)

// GridCell is the derived status of one (member, month) slot in the yearly
// payment grid. Cells without a stored row carry the synthesized unpaid
// status.
type GridCell struct {
	MemberID  string               `json:"member_id"`
	Month     int                  `json:"target_month"`
	Status    models.PaymentStatus `json:"status"`
	SlipImage *string              `json:"slip_image,omitempty"`
}

// BuildGrid expands members and stored payment rows into a full
// members x 12 grid for one target year; rows for other years are ignored.
// Members keep registry order; months run 1-12.
func BuildGrid(year int, members []*models.Member, payments []*models.Payment) []GridCell {
	type key struct {
		member string
		month  int
		year   int
	}
	byKey := make(map[key]*models.Payment, len(payments))
	for _, p := range payments {
		byKey[key{p.MemberID, p.TargetMonth, p.TargetYear}] = p
	}

	cells := make([]GridCell, 0, len(members)*12)
	for _, m := range members {
		for month := 1; month <= 12; month++ {
			cell := GridCell{MemberID: m.ID, Month: month, Status: models.PaymentUnpaid}
			if p, ok := byKey[key{m.ID, month, year}]; ok {
				cell.Status = p.Status
				cell.SlipImage = p.SlipImage
			}
			cells = append(cells, cell)
		}
	}
	return cells
}

// IsOverdue reports whether a (month, year) obligation lies strictly before
// the current period.
func IsOverdue(month, year int, now time.Time) bool {
	return year < now.Year() || (year == now.Year() && month < int(now.Month()))
}

// OverdueEntries filters unapproved payment rows down to past periods.
func OverdueEntries(rows []models.UnpaidEntry, now time.Time) []models.UnpaidEntry {
	overdue := []models.UnpaidEntry{}
	for _, e := range rows {
		if IsOverdue(e.TargetMonth, e.TargetYear, now) {
			overdue = append(overdue, e)
		}
	}
	return overdue
}

// CurrentEntries synthesizes a current-period entry for every active member
// whose payment this month is missing or not yet approved. A missing row
// surfaces as the unpaid status.
func CurrentEntries(members []*models.Member, statuses map[string]models.PaymentStatus, now time.Time) []models.UnpaidEntry {
	entries := []models.UnpaidEntry{}
	for _, m := range members {
		status, ok := statuses[m.ID]
		if !ok {
			status = models.PaymentUnpaid
		}
		if status == models.PaymentApproved {
			continue
		}
		entries = append(entries, models.UnpaidEntry{
			ID:          m.ID,
			Name:        m.Name,
			Nickname:    m.Nickname,
			AvatarColor: m.AvatarColor,
			Type:        models.UnpaidCurrent,
			Status:      status,
			TargetMonth: int(now.Month()),
			TargetYear:  now.Year(),
		})
	}
	return entries
}

// ExpectedRevenue is the amount still owed across the unpaid list, at the
// fixed monthly due per obligation. Entries are intentionally not
// deduplicated: each one is a distinct (member, month, year) obligation.
func ExpectedRevenue(unpaid []models.UnpaidEntry) float64 {
	return float64(len(unpaid)) * models.MonthlyDue
}
