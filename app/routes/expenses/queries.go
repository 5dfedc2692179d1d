package expenses

import (
	"database/sql"

	"github.com/TontunHi/it-fund-vr/app/models"
)

// GetAllExpenses returns every expense joined with the purchaser's name and
// avatar color, newest first.
func GetAllExpenses(db *sql.DB) ([]*models.Expense, error) {
	query := `SELECT e.id, e.title, e.amount, e.description, e.receipt_image, e.created_by,
			  e.expense_date, e.created_at, e.updated_at, m.name, m.avatar_color
			  FROM expenses e
			  LEFT JOIN members m ON e.created_by = m.id
			  ORDER BY e.expense_date DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := []*models.Expense{} // Initialize to empty slice for non-null JSON
	for rows.Next() {
		e := &models.Expense{}
		err := rows.Scan(
			&e.ID, &e.Title, &e.Amount, &e.Description, &e.ReceiptImage, &e.CreatedBy,
			&e.ExpenseDate, &e.CreatedAt, &e.UpdatedAt, &e.BuyerName, &e.AvatarColor,
		)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

func CreateExpense(db *sql.DB, e *models.Expense) error {
	query := `INSERT INTO expenses (title, amount, description, receipt_image, created_by)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, expense_date, created_at, updated_at`

	return db.QueryRow(query, e.Title, e.Amount, e.Description, e.ReceiptImage, e.CreatedBy).
		Scan(&e.ID, &e.ExpenseDate, &e.CreatedAt, &e.UpdatedAt)
}

// UpdateExpense updates title, amount and description. The receipt image is
// only replaced when withReceipt is set, so an edit without a new file keeps
// the old receipt.
func UpdateExpense(db *sql.DB, e *models.Expense, withReceipt bool) error {
	var result sql.Result
	var err error

	if withReceipt {
		query := `UPDATE expenses
				  SET title = $1, amount = $2, description = $3, receipt_image = $4, updated_at = NOW()
				  WHERE id = $5`
		result, err = db.Exec(query, e.Title, e.Amount, e.Description, e.ReceiptImage, e.ID)
	} else {
		query := `UPDATE expenses
				  SET title = $1, amount = $2, description = $3, updated_at = NOW()
				  WHERE id = $4`
		result, err = db.Exec(query, e.Title, e.Amount, e.Description, e.ID)
	}
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

func DeleteExpense(db *sql.DB, id string) error {
	result, err := db.Exec(`DELETE FROM expenses WHERE id = $1`, id)
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
