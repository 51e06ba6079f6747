package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// Postgres is the durable Repository backed by the attendance_records
// table. Batches are written inside a single transaction, so id
// assignment and timestamp stamping are atomic per batch.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) AppendBatch(entries []Entry) ([]int64, time.Time, error) {
	if len(entries) == 0 {
		return nil, time.Time{}, errors.New("empty batch")
	}

	now := time.Now()
	timestamp := now.Format(TimestampLayout)
	date := now.Format(DateLayout)
	timeOfDay := now.Format(TimeLayout)

	tx, err := s.db.Begin()
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("error starting transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
        INSERT INTO attendance_records (stamped_at, record_date, record_time, section, student, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `)
	if err != nil {
		tx.Rollback()
		return nil, time.Time{}, fmt.Errorf("error preparing insert: %w", err)
	}
	defer stmt.Close()

	ids := make([]int64, 0, len(entries))
	for _, entry := range entries {
		var id int64
		err := stmt.QueryRow(timestamp, date, timeOfDay, entry.Section, entry.Student, entry.Status).Scan(&id)
		if err != nil {
			tx.Rollback()
			return nil, time.Time{}, fmt.Errorf("error inserting record for %s: %w", entry.Student, err)
		}
		ids = append(ids, id)
	}

	if err := tx.Commit(); err != nil {
		return nil, time.Time{}, fmt.Errorf("error committing batch: %w", err)
	}

	return ids, now, nil
}

func (s *Postgres) ListAll() ([]Record, error) {
	rows, err := s.db.Query(`
        SELECT id, stamped_at, record_date, record_time, section, student, status
        FROM attendance_records
        ORDER BY id ASC
    `)
	if err != nil {
		return nil, fmt.Errorf("error fetching records: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

func (s *Postgres) ListLatestSession() ([]Record, error) {
	rows, err := s.db.Query(`
        SELECT id, stamped_at, record_date, record_time, section, student, status
        FROM attendance_records
        WHERE stamped_at = (SELECT MAX(stamped_at) FROM attendance_records)
        ORDER BY id ASC
    `)
	if err != nil {
		return nil, fmt.Errorf("error fetching latest session: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

func scanRecords(rows *sql.Rows) ([]Record, error) {
	records := []Record{}
	for rows.Next() {
		var r Record
		err := rows.Scan(&r.ID, &r.Timestamp, &r.Date, &r.Time, &r.Section, &r.Student, &r.Status)
		if err != nil {
			return nil, fmt.Errorf("error scanning record: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading records: %w", err)
	}
	return records, nil
}
