// Package store persists attendance records. The log is append-only:
// records are written in batches by the session writer and are never
// updated or deleted.
package store

import "time"

// Timestamp formats shared by every Repository implementation. All
// three sort lexicographically in chronological order, so the latest
// session is simply the maximum stamp string.
const (
	TimestampLayout = "2006-01-02 15:04:05"
	DateLayout      = "2006-01-02"
	TimeLayout      = "15:04:05"
)

// Record is one persisted attendance fact. Immutable once written.
type Record struct {
	ID        int64  `json:"id"`
	Timestamp string `json:"timestamp"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Section   string `json:"section"`
	Student   string `json:"student"`
	Status    string `json:"status"`
}

// Entry is a record before the repository has assigned it an id and a
// timestamp.
type Entry struct {
	Section string
	Student string
	Status  string
}

// Repository is the append-only attendance log.
type Repository interface {
	// AppendBatch atomically persists the entries as one session:
	// every record gets an increasing id and the same timestamp. The
	// batch either fully succeeds or fully fails.
	AppendBatch(entries []Entry) (ids []int64, stampedAt time.Time, err error)

	// ListAll returns every record, ordered by id ascending.
	ListAll() ([]Record, error)

	// ListLatestSession returns the records whose timestamp equals the
	// maximum timestamp present, or an empty slice if there are none.
	ListLatestSession() ([]Record, error)
}
