package store

import (
	"errors"
	"sync"
	"time"
)

// Memory is an in-process Repository. It backs the service when no
// database is configured and doubles as the storage fake in tests.
// A single mutex serializes batches; reads return copies.
type Memory struct {
	mu      sync.RWMutex
	records []Record
	nextID  int64
	now     func() time.Time
}

func NewMemory() *Memory {
	return &Memory{nextID: 1, now: time.Now}
}

// SetClock overrides the timestamp source. Test hook.
func (s *Memory) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *Memory) AppendBatch(entries []Entry) ([]int64, time.Time, error) {
	if len(entries) == 0 {
		return nil, time.Time{}, errors.New("empty batch")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	timestamp := now.Format(TimestampLayout)
	date := now.Format(DateLayout)
	timeOfDay := now.Format(TimeLayout)

	ids := make([]int64, 0, len(entries))
	for _, entry := range entries {
		s.records = append(s.records, Record{
			ID:        s.nextID,
			Timestamp: timestamp,
			Date:      date,
			Time:      timeOfDay,
			Section:   entry.Section,
			Student:   entry.Student,
			Status:    entry.Status,
		})
		ids = append(ids, s.nextID)
		s.nextID++
	}

	return ids, now, nil
}

func (s *Memory) ListAll() ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *Memory) ListLatestSession() ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	latest := ""
	for _, r := range s.records {
		if r.Timestamp > latest {
			latest = r.Timestamp
		}
	}

	session := []Record{}
	for _, r := range s.records {
		if r.Timestamp == latest {
			session = append(session, r)
		}
	}
	return session, nil
}
