package database

import (
	"database/sql"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/TontunHi/it-fund-vr/app/models"
)

// GetDashboardStats computes the whole-history financial summary: ledger
// totals, net balance, and the merged overdue + current-month unpaid list.
// The three ledger sums are independent and run concurrently.
func GetDashboardStats(db *sql.DB, now time.Time) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	var g errgroup.Group

	g.Go(func() error {
		var total sql.NullFloat64
		err := db.QueryRow(`SELECT SUM(amount) FROM payments WHERE status = 'approved'`).Scan(&total)
		if err != nil {
			return err
		}
		stats.TotalMemberIncome = total.Float64
		return nil
	})

	g.Go(func() error {
		// Tolerated failure: the other_incomes table may not exist.
		stats.TotalOtherIncome = TotalOtherIncome(db)
		return nil
	})

	g.Go(func() error {
		var total sql.NullFloat64
		err := db.QueryRow(`SELECT SUM(amount) FROM expenses`).Scan(&total)
		if err != nil {
			return err
		}
		stats.TotalExpense = total.Float64
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats.TotalIncome = stats.TotalMemberIncome + stats.TotalOtherIncome
	stats.Balance = stats.TotalIncome - stats.TotalExpense

	unapproved, err := GetUnapprovedPayments(db)
	if err != nil {
		return nil, err
	}

	members, err := GetActiveMembers(db)
	if err != nil {
		return nil, err
	}

	statuses, err := GetPaymentStatusForPeriod(db, int(now.Month()), now.Year())
	if err != nil {
		return nil, err
	}

	// Overdue obligations first, then current-month gaps, no dedup across
	// the two groups.
	unpaid := append(OverdueEntries(unapproved, now), CurrentEntries(members, statuses, now)...)

	stats.UnpaidList = unpaid
	stats.PendingCount = len(unpaid)
	stats.ExpectedRevenue = ExpectedRevenue(unpaid)

	return stats, nil
}
