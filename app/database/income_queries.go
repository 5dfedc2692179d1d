package database

import (
	"database/sql"
	"log"

	"github.com/lib/pq"

	"github.com/TontunHi/it-fund-vr/app/models"
)

// undefinedTable is the Postgres error code for a relation that does not
// exist. The other_incomes table is best-effort and may be absent on
// databases bootstrapped before it was introduced.
const undefinedTable = pq.ErrorCode("42P01")

func isUndefinedTable(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == undefinedTable
	}
	return false
}

// GetOtherIncomes lists all miscellaneous income records, newest first.
// An absent table yields an empty list, not an error.
func GetOtherIncomes(db *sql.DB) ([]*models.OtherIncome, error) {
	query := `SELECT id, title, amount, receive_date FROM other_incomes
			  ORDER BY receive_date DESC`

	rows, err := db.Query(query)
	if err != nil {
		if isUndefinedTable(err) {
			log.Println("Warning: table 'other_incomes' does not exist yet")
			return []*models.OtherIncome{}, nil
		}
		return nil, err
	}
	defer rows.Close()

	incomes := []*models.OtherIncome{}
	for rows.Next() {
		oi := &models.OtherIncome{}
		if err := rows.Scan(&oi.ID, &oi.Title, &oi.Amount, &oi.ReceiveDate); err != nil {
			return nil, err
		}
		incomes = append(incomes, oi)
	}
	return incomes, rows.Err()
}

func CreateOtherIncome(db *sql.DB, oi *models.OtherIncome) error {
	query := `INSERT INTO other_incomes (title, amount, receive_date)
			  VALUES ($1, $2, $3)
			  RETURNING id, receive_date`

	return db.QueryRow(query, oi.Title, oi.Amount, oi.ReceiveDate).
		Scan(&oi.ID, &oi.ReceiveDate)
}

func DeleteOtherIncome(db *sql.DB, id string) error {
	result, err := db.Exec(`DELETE FROM other_incomes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// TotalOtherIncome sums the other-income ledger. Any failure here is
// tolerated and reported as zero so the dashboard summary never fails on
// the optional table.
func TotalOtherIncome(db *sql.DB) float64 {
	var total sql.NullFloat64
	err := db.QueryRow(`SELECT SUM(amount) FROM other_incomes`).Scan(&total)
	if err != nil {
		log.Printf("Warning: could not sum other_incomes, treating as 0: %v", err)
		return 0
	}
	return total.Float64
}
