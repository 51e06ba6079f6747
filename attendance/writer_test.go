package attendance

import (
	"errors"
	"testing"
	"time"

	"stampin_backend/roster"
	"stampin_backend/store"
)

func testRoster(t *testing.T) *roster.Store {
	t.Helper()
	r, err := roster.New([]roster.Section{
		{Code: "CS101", Professor: "Dr. Lee", Students: []string{"alice", "bob"}},
		{Code: "CS102", Professor: "Dr. Kim", Students: []string{"carol", "dave"}},
	})
	if err != nil {
		t.Fatalf("build roster: %v", err)
	}
	return r
}

// failingRepo simulates an unreachable store.
type failingRepo struct{}

func (failingRepo) AppendBatch([]store.Entry) ([]int64, time.Time, error) {
	return nil, time.Time{}, errors.New("connection refused")
}
func (failingRepo) ListAll() ([]store.Record, error) {
	return nil, errors.New("connection refused")
}
func (failingRepo) ListLatestSession() ([]store.Record, error) {
	return nil, errors.New("connection refused")
}

func TestSave_PersistsOneRecordPerStudent(t *testing.T) {
	repo := store.NewMemory()
	writer := NewWriter(repo, testRoster(t))

	confirmation, err := writer.Save("CS101", map[string]string{
		"alice": "Present",
		"bob":   "Absent",
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if confirmation.Saved != 2 {
		t.Fatalf("saved = %d, want 2", confirmation.Saved)
	}
	if confirmation.Section != "CS101" {
		t.Fatalf("section = %q", confirmation.Section)
	}

	records, err := repo.ListAll()
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	for _, r := range records {
		if r.Timestamp != confirmation.Timestamp {
			t.Fatalf("record %d stamp %q differs from confirmation %q", r.ID, r.Timestamp, confirmation.Timestamp)
		}
		if r.Section != "CS101" {
			t.Fatalf("record %d section = %q", r.ID, r.Section)
		}
	}
}

func TestSave_StoresBatchInRosterOrder(t *testing.T) {
	repo := store.NewMemory()
	writer := NewWriter(repo, testRoster(t))

	if _, err := writer.Save("CS101", map[string]string{
		"bob":   "Late",
		"alice": "Present",
	}); err != nil {
		t.Fatalf("save: %v", err)
	}

	records, _ := repo.ListAll()
	if records[0].Student != "alice" || records[1].Student != "bob" {
		t.Fatalf("records not in roster order: %v", records)
	}
}

func TestSave_RejectsUnknownSection(t *testing.T) {
	repo := store.NewMemory()
	writer := NewWriter(repo, testRoster(t))

	_, err := writer.Save("CS999", map[string]string{"alice": "Present"})
	assertValidationError(t, err)
	assertEmptyLog(t, repo)
}

func TestSave_RejectsEmptyAttendanceMap(t *testing.T) {
	repo := store.NewMemory()
	writer := NewWriter(repo, testRoster(t))

	_, err := writer.Save("CS101", map[string]string{})
	assertValidationError(t, err)
	assertEmptyLog(t, repo)
}

func TestSave_RejectsStatusOutsideEnumeration(t *testing.T) {
	repo := store.NewMemory()
	writer := NewWriter(repo, testRoster(t))

	_, err := writer.Save("CS101", map[string]string{
		"alice": "Present",
		"bob":   "Vacationing",
	})
	assertValidationError(t, err)
	assertEmptyLog(t, repo)
}

func TestSave_RejectsStudentOffTheRoster(t *testing.T) {
	repo := store.NewMemory()
	writer := NewWriter(repo, testRoster(t))

	// carol is enrolled in CS102, not CS101.
	_, err := writer.Save("CS101", map[string]string{
		"alice": "Present",
		"carol": "Present",
	})
	assertValidationError(t, err)
	assertEmptyLog(t, repo)
}

func TestSave_SurfacesStorageError(t *testing.T) {
	writer := NewWriter(failingRepo{}, testRoster(t))

	_, err := writer.Save("CS101", map[string]string{"alice": "Present"})
	var storageErr *StorageError
	if !errors.As(err, &storageErr) {
		t.Fatalf("expected StorageError, got %v", err)
	}
}

func TestSave_AllowsPartialRoster(t *testing.T) {
	repo := store.NewMemory()
	writer := NewWriter(repo, testRoster(t))

	confirmation, err := writer.Save("CS101", map[string]string{"alice": "Late"})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if confirmation.Saved != 1 {
		t.Fatalf("saved = %d, want 1", confirmation.Saved)
	}
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func assertEmptyLog(t *testing.T, repo store.Repository) {
	t.Helper()
	records, err := repo.ListAll()
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("log grew despite rejected save: %d records", len(records))
	}
}
