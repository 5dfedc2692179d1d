//go:build integration
// +build integration

package database

import (
	"database/sql"
	"os"
	"testing"

	_ "github.com/lib/pq"

	"github.com/TontunHi/it-fund-vr/app/models"
)

// Run with: go test -tags=integration ./app/database/ -run Integration
// Requires a reachable Postgres, e.g.
//   TEST_DATABASE_DSN="host=localhost user=postgres dbname=itfund_test sslmode=disable"
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set, skipping integration test")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("sql.Open: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Fatalf("ping: %v", err)
	}
	if err := RunMigrations(db); err != nil {
		t.Fatalf("migrations: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func periodRowCount(t *testing.T, db *sql.DB, memberID string, month, year int) int {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM payments
		WHERE member_id = $1 AND target_month = $2 AND target_year = $3`,
		memberID, month, year).Scan(&n)
	if err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return n
}

// Both upsert paths write the same (member, month, year) key: a status flip
// never creates a second row, and a re-upload after approval resets the row
// back to pending with the new slip and amount.
func TestPaymentUpsertIntegration(t *testing.T) {
	db := openTestDB(t)

	m := &models.Member{Name: "upsert-test-member"}
	if err := CreateMember(db, m); err != nil {
		t.Fatalf("create member: %v", err)
	}
	t.Cleanup(func() {
		db.Exec(`DELETE FROM payments WHERE member_id = $1`, m.ID)
		db.Exec(`DELETE FROM members WHERE id = $1`, m.ID)
	})

	const month, year = 6, 2031

	slip1 := "slips/2031/06/first.jpg"
	p := &models.Payment{MemberID: m.ID, TargetMonth: month, TargetYear: year, Amount: 100, SlipImage: &slip1}
	if err := UpsertSlipPayment(db, p); err != nil {
		t.Fatalf("first upload: %v", err)
	}
	if p.Status != models.PaymentPending {
		t.Errorf("fresh upload status = %s, want pending", p.Status)
	}
	firstID := p.ID

	approved, err := UpsertPaymentStatus(db, m.ID, month, year, models.PaymentApproved)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if approved.Status != models.PaymentApproved {
		t.Errorf("status after approve = %s, want approved", approved.Status)
	}
	if approved.ID != firstID {
		t.Errorf("approve hit row %s, want existing row %s", approved.ID, firstID)
	}
	if approved.SlipImage == nil || *approved.SlipImage != slip1 {
		t.Errorf("approve must leave the slip untouched, got %v", approved.SlipImage)
	}
	if approved.Amount != 100 {
		t.Errorf("approve must leave the amount untouched, got %v", approved.Amount)
	}

	slip2 := "slips/2031/06/second.jpg"
	p2 := &models.Payment{MemberID: m.ID, TargetMonth: month, TargetYear: year, Amount: 150, SlipImage: &slip2}
	if err := UpsertSlipPayment(db, p2); err != nil {
		t.Fatalf("re-upload: %v", err)
	}
	if p2.Status != models.PaymentPending {
		t.Errorf("re-upload after approval must reset to pending, got %s", p2.Status)
	}
	if p2.ID != firstID {
		t.Errorf("re-upload hit row %s, want existing row %s", p2.ID, firstID)
	}

	var slip sql.NullString
	var amount float64
	err = db.QueryRow(`SELECT slip_image, amount FROM payments WHERE id = $1`, firstID).
		Scan(&slip, &amount)
	if err != nil {
		t.Fatalf("read back row: %v", err)
	}
	if !slip.Valid || slip.String != slip2 {
		t.Errorf("re-upload must overwrite the slip, got %v", slip)
	}
	if amount != 150 {
		t.Errorf("re-upload must overwrite the amount, got %v", amount)
	}

	if n := periodRowCount(t, db, m.ID, month, year); n != 1 {
		t.Errorf("expected exactly 1 row for the period key, got %d", n)
	}
}

// UpsertPaymentStatus on a key with no row inserts one carrying the default
// monthly due and no slip.
func TestPaymentStatusInsertIntegration(t *testing.T) {
	db := openTestDB(t)

	m := &models.Member{Name: "status-insert-member"}
	if err := CreateMember(db, m); err != nil {
		t.Fatalf("create member: %v", err)
	}
	t.Cleanup(func() {
		db.Exec(`DELETE FROM payments WHERE member_id = $1`, m.ID)
		db.Exec(`DELETE FROM members WHERE id = $1`, m.ID)
	})

	p, err := UpsertPaymentStatus(db, m.ID, 1, 2031, models.PaymentApproved)
	if err != nil {
		t.Fatalf("status upsert: %v", err)
	}
	if p.Amount != models.MonthlyDue {
		t.Errorf("inserted amount = %v, want %v", p.Amount, models.MonthlyDue)
	}
	if p.SlipImage != nil {
		t.Errorf("inserted row should carry no slip, got %v", *p.SlipImage)
	}
	if n := periodRowCount(t, db, m.ID, 1, 2031); n != 1 {
		t.Errorf("expected exactly 1 row, got %d", n)
	}
}
