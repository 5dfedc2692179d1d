package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the schema if it does not exist and applies
// incremental updates. Safe to run on every startup.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	queries := []string{
		`CREATE TABLE IF NOT EXISTS members (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) NOT NULL,
			nickname VARCHAR(100),
			avatar_color VARCHAR(50) NOT NULL DEFAULT 'bg-gray-400',
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS payments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			member_id UUID NOT NULL REFERENCES members(id),
			target_month INT NOT NULL CHECK (target_month BETWEEN 1 AND 12),
			target_year INT NOT NULL,
			amount NUMERIC(10,2) NOT NULL DEFAULT 0,
			status VARCHAR(20) NOT NULL DEFAULT 'pending',
			slip_image TEXT,
			paid_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			CONSTRAINT payments_member_period_key UNIQUE (member_id, target_month, target_year)
		)`,
		`CREATE TABLE IF NOT EXISTS expenses (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			title VARCHAR(255) NOT NULL,
			amount NUMERIC(10,2) NOT NULL,
			description TEXT,
			receipt_image TEXT,
			created_by UUID REFERENCES members(id),
			expense_date TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS other_incomes (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			title VARCHAR(255) NOT NULL,
			amount NUMERIC(10,2) NOT NULL,
			receive_date TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
	}

	for _, q := range queries {
		if _, err := db.Exec(q); err != nil {
			log.Printf("Error creating tables: %v", err)
			return err
		}
	}

	// Indexes and updates for databases created before the unique dues key.
	migrations := []string{
		`CREATE INDEX IF NOT EXISTS idx_payments_member_id ON payments(member_id)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_period ON payments(target_year, target_month)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_status ON payments(status)`,
		`CREATE INDEX IF NOT EXISTS idx_expenses_date ON expenses(expense_date)`,
		`CREATE INDEX IF NOT EXISTS idx_members_is_active ON members(is_active)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			log.Printf("Error running migration: %v", err)
			// Continue as some might be duplicate index errors depending on PG version
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
