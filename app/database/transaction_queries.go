package database

import (
	"database/sql"
	"log"
	"sort"

	"github.com/TontunHi/it-fund-vr/app/models"
)

// TransactionLimit caps the unified statement at a fixed number of rows.
const TransactionLimit = 100

// GetTransactions merges the three ledgers into one timeline, newest first,
// capped at TransactionLimit rows. Each ledger is projected separately so a
// missing other_incomes table degrades to an empty projection instead of
// failing the whole statement.
func GetTransactions(db *sql.DB) ([]models.Transaction, error) {
	payments, err := approvedPaymentTransactions(db)
	if err != nil {
		return nil, err
	}

	expenses, err := expenseTransactions(db)
	if err != nil {
		return nil, err
	}

	others, err := otherIncomeTransactions(db)
	if err != nil {
		if !isUndefinedTable(err) {
			return nil, err
		}
		log.Println("Warning: table 'other_incomes' does not exist yet")
		others = nil
	}

	return MergeTransactions(TransactionLimit, payments, expenses, others), nil
}

// MergeTransactions combines ledger projections, sorts by date descending
// and truncates to limit.
func MergeTransactions(limit int, lists ...[]models.Transaction) []models.Transaction {
	merged := []models.Transaction{}
	for _, list := range lists {
		merged = append(merged, list...)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date.After(merged[j].Date)
	})

	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}

func approvedPaymentTransactions(db *sql.DB) ([]models.Transaction, error) {
	query := `SELECT p.id, m.name, p.amount, p.paid_at
			  FROM payments p
			  JOIN members m ON p.member_id = m.id
			  WHERE p.status = 'approved'`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	txs := []models.Transaction{}
	for rows.Next() {
		var t models.Transaction
		var name string
		if err := rows.Scan(&t.ID, &name, &t.Amount, &t.Date); err != nil {
			return nil, err
		}
		t.Type = models.TransactionIncome
		t.Category = models.CategoryPayment
		t.Title = "ค่าส่วนกลาง " + name
		txs = append(txs, t)
	}
	return txs, rows.Err()
}

func expenseTransactions(db *sql.DB) ([]models.Transaction, error) {
	query := `SELECT id, title, amount, expense_date, receipt_image FROM expenses`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	txs := []models.Transaction{}
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.Title, &t.Amount, &t.Date, &t.Image); err != nil {
			return nil, err
		}
		t.Type = models.TransactionExpense
		t.Category = models.CategoryExpense
		txs = append(txs, t)
	}
	return txs, rows.Err()
}

func otherIncomeTransactions(db *sql.DB) ([]models.Transaction, error) {
	query := `SELECT id, title, amount, receive_date FROM other_incomes`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	txs := []models.Transaction{}
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.Title, &t.Amount, &t.Date); err != nil {
			return nil, err
		}
		t.Type = models.TransactionIncome
		t.Category = models.CategoryOther
		txs = append(txs, t)
	}
	return txs, rows.Err()
}
