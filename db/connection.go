package db

import (
	"counselling-module/config"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

var DB *sql.DB

func InitDB() error {
	var err error
	connStr := config.GetDBConnString()

	DB, err = sql.Open("postgres", connStr)
	if err != nil {
		return fmt.Errorf("error opening database: %w", err)
	}

	// Test the connection
	err = DB.Ping()
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}

	// Create tables
	if err := createTables(); err != nil {
		return fmt.Errorf("error creating tables: %w", err)
	}

	return nil
}

func createTables() error {
	paymentOrderTable := `
	CREATE TABLE IF NOT EXISTS payment_order (
		id SERIAL PRIMARY KEY,
		reference TEXT,
		package_type TEXT,
		name TEXT,
		email TEXT,
		phone_no TEXT,
		whatsapp_no TEXT,
		amount REAL,
		currency TEXT DEFAULT 'INR',
		status TEXT,
		order_id TEXT,
		payment_id TEXT,
		razorpay_sign TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);`

	webhookLogTable := `
	CREATE TABLE IF NOT EXISTS webhook_log (
		id SERIAL PRIMARY KEY,
		event TEXT,
		order_id TEXT,
		signature_valid BOOLEAN,
		payload TEXT,
		received_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);`

	if _, err := DB.Exec(paymentOrderTable); err != nil {
		return fmt.Errorf("error creating payment_order table: %w", err)
	}

	if _, err := DB.Exec(webhookLogTable); err != nil {
		return fmt.Errorf("error creating webhook_log table: %w", err)
	}

	return nil
}
