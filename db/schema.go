package db

import (
	"database/sql"
	"fmt"
)

const Schema = `
-- Create attendance_records table. The log is append-only: rows are
-- inserted in session batches and never updated or deleted.
CREATE TABLE IF NOT EXISTS attendance_records (
    id SERIAL PRIMARY KEY,
    stamped_at VARCHAR(50) NOT NULL,
    record_date VARCHAR(20) NOT NULL,
    record_time VARCHAR(20) NOT NULL,
    section VARCHAR(100) NOT NULL,
    student VARCHAR(100) NOT NULL,
    status VARCHAR(20) NOT NULL
);

-- Session lookup index: the latest session is the maximum stamped_at.
CREATE INDEX IF NOT EXISTS idx_attendance_records_stamped_at
    ON attendance_records (stamped_at);
`

// InitSchema initializes the database schema
func InitSchema(db *sql.DB) error {
	_, err := db.Exec(Schema)
	if err != nil {
		return fmt.Errorf("error initializing database schema: %w", err)
	}
	return nil
}
