package database

import (
	"database/sql"

	"github.com/TontunHi/it-fund-vr/app/models"
)

// UpsertSlipPayment records a slip upload for one (member, month, year)
// obligation as a single atomic statement. A re-upload overwrites the slip
// path and amount and always resets the status to pending, even if the
// payment had been approved. paid_at is restamped on every write.
func UpsertSlipPayment(db *sql.DB, p *models.Payment) error {
	query := `INSERT INTO payments (member_id, target_month, target_year, amount, slip_image, status, paid_at)
			  VALUES ($1, $2, $3, $4, $5, 'pending', NOW())
			  ON CONFLICT ON CONSTRAINT payments_member_period_key DO UPDATE
			  SET slip_image = EXCLUDED.slip_image,
			      amount = EXCLUDED.amount,
			      status = 'pending',
			      paid_at = NOW()
			  RETURNING id, status, paid_at`

	return db.QueryRow(query, p.MemberID, p.TargetMonth, p.TargetYear, p.Amount, p.SlipImage).
		Scan(&p.ID, &p.Status, &p.PaidAt)
}

// UpsertPaymentStatus sets the status for one (member, month, year) key.
// When no row exists yet it inserts one with the default monthly due as the
// amount; when a row exists only the status changes, the slip path and
// amount stay untouched. paid_at is restamped either way.
func UpsertPaymentStatus(db *sql.DB, memberID string, month, year int, status models.PaymentStatus) (*models.Payment, error) {
	p := &models.Payment{
		MemberID:    memberID,
		TargetMonth: month,
		TargetYear:  year,
	}
	query := `INSERT INTO payments (member_id, target_month, target_year, amount, status, paid_at)
			  VALUES ($1, $2, $3, $4, $5, NOW())
			  ON CONFLICT ON CONSTRAINT payments_member_period_key DO UPDATE
			  SET status = EXCLUDED.status,
			      paid_at = NOW()
			  RETURNING id, amount, status, slip_image, paid_at`

	err := db.QueryRow(query, memberID, month, year, models.MonthlyDue, status).
		Scan(&p.ID, &p.Amount, &p.Status, &p.SlipImage, &p.PaidAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// GetPaymentsByYear returns all payment rows for one target year.
func GetPaymentsByYear(db *sql.DB, year int) ([]*models.Payment, error) {
	query := `SELECT id, member_id, target_month, target_year, amount, status, slip_image, paid_at
			  FROM payments WHERE target_year = $1`

	rows, err := db.Query(query, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := []*models.Payment{}
	for rows.Next() {
		p := &models.Payment{}
		if err := rows.Scan(&p.ID, &p.MemberID, &p.TargetMonth, &p.TargetYear,
			&p.Amount, &p.Status, &p.SlipImage, &p.PaidAt); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// GetUnapprovedPayments returns every payment row not yet approved, joined
// with member info, regardless of the member's active flag. The overdue
// filtering happens in Go (see OverdueEntries).
func GetUnapprovedPayments(db *sql.DB) ([]models.UnpaidEntry, error) {
	query := `SELECT p.id, m.name, m.nickname, m.avatar_color, p.status, p.target_month, p.target_year
			  FROM payments p
			  JOIN members m ON p.member_id = m.id
			  WHERE p.status != 'approved'`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []models.UnpaidEntry{}
	for rows.Next() {
		var e models.UnpaidEntry
		if err := rows.Scan(&e.ID, &e.Name, &e.Nickname, &e.AvatarColor,
			&e.Status, &e.TargetMonth, &e.TargetYear); err != nil {
			return nil, err
		}
		e.Type = models.UnpaidOverdue
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// GetPaymentStatusForPeriod maps member id to stored status for one
// (month, year). Members without a row are simply absent from the map.
func GetPaymentStatusForPeriod(db *sql.DB, month, year int) (map[string]models.PaymentStatus, error) {
	query := `SELECT member_id, status FROM payments
			  WHERE target_month = $1 AND target_year = $2`

	rows, err := db.Query(query, month, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	statuses := map[string]models.PaymentStatus{}
	for rows.Next() {
		var memberID string
		var status models.PaymentStatus
		if err := rows.Scan(&memberID, &status); err != nil {
			return nil, err
		}
		statuses[memberID] = status
	}
	return statuses, rows.Err()
}
