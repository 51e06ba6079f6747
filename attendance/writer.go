package attendance

import (
	"stampin_backend/roster"
	"stampin_backend/store"
)

// Writer validates and persists one attendance-taking event: a section
// plus a student→status map, saved as a batch sharing one timestamp.
type Writer struct {
	repo   store.Repository
	roster *roster.Store
}

func NewWriter(repo store.Repository, r *roster.Store) *Writer {
	return &Writer{repo: repo, roster: r}
}

// Confirmation reports a successful save.
type Confirmation struct {
	Timestamp string
	Date      string
	Time      string
	Section   string
	Saved     int
}

// Save persists one session. All validation runs before any write; on
// a validation failure nothing is stored.
func (w *Writer) Save(sectionCode string, marks map[string]string) (Confirmation, error) {
	section, ok := w.roster.Section(sectionCode)
	if !ok {
		return Confirmation{}, validationErrorf("unknown section %q", sectionCode)
	}
	if len(marks) == 0 {
		return Confirmation{}, validationErrorf("no attendance data for section %q", sectionCode)
	}
	for student, rawStatus := range marks {
		if _, ok := ParseStatus(rawStatus); !ok {
			return Confirmation{}, validationErrorf("invalid status %q for student %q", rawStatus, student)
		}
		if !section.HasStudent(student) {
			return Confirmation{}, validationErrorf("student %q is not on the roster for section %q", student, sectionCode)
		}
	}

	// Walk the roster rather than the map so the batch is stored in
	// roster order.
	entries := make([]store.Entry, 0, len(marks))
	for _, student := range section.Students {
		status, marked := marks[student]
		if !marked {
			continue
		}
		entries = append(entries, store.Entry{
			Section: sectionCode,
			Student: student,
			Status:  status,
		})
	}

	_, stampedAt, err := w.repo.AppendBatch(entries)
	if err != nil {
		return Confirmation{}, &StorageError{Op: "save attendance", Err: err}
	}

	return Confirmation{
		Timestamp: stampedAt.Format(store.TimestampLayout),
		Date:      stampedAt.Format(store.DateLayout),
		Time:      stampedAt.Format(store.TimeLayout),
		Section:   sectionCode,
		Saved:     len(entries),
	}, nil
}
