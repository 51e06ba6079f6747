package attendance

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"stampin_backend/store"
)

// CSVHeader is the fixed first row of every export.
var CSVHeader = []string{"id", "date", "time", "section", "student", "status"}

// Exporter serializes the full log as CSV.
type Exporter struct {
	repo store.Repository
}

func NewExporter(repo store.Repository) *Exporter {
	return &Exporter{repo: repo}
}

// ExportCSV renders every record, id ascending, under the fixed
// header. An empty log is a reportable condition, not a blank file.
func (e *Exporter) ExportCSV() ([]byte, error) {
	records, err := e.repo.ListAll()
	if err != nil {
		return nil, &StorageError{Op: "load records for export", Err: err}
	}
	if len(records) == 0 {
		return nil, &ExportError{Reason: "No records to export"}
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(CSVHeader); err != nil {
		return nil, fmt.Errorf("error writing CSV header: %w", err)
	}
	for _, r := range records {
		row := []string{
			strconv.FormatInt(r.ID, 10),
			r.Date,
			r.Time,
			r.Section,
			r.Student,
			r.Status,
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("error writing CSV row for record %d: %w", r.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("error flushing CSV: %w", err)
	}

	return buf.Bytes(), nil
}
