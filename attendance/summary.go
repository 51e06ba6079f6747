package attendance

import (
	"stampin_backend/roster"
	"stampin_backend/store"
)

// LatestSession describes the most recent save: its timestamp, the
// section and professor it was taken for, and its own status counts.
type LatestSession struct {
	Timestamp string         `json:"timestamp"`
	Section   string         `json:"section"`
	Professor string         `json:"professor"`
	Status    map[string]int `json:"status"`
}

// Summary is the on-demand statistics view over the whole log.
type Summary struct {
	TotalRecords  int            `json:"total_records"`
	OverallStatus map[string]int `json:"overall_status"`
	LatestSession *LatestSession `json:"latest_session,omitempty"`
}

// Summarizer computes Summary from the full repository state.
type Summarizer struct {
	repo   store.Repository
	roster *roster.Store
}

func NewSummarizer(repo store.Repository, r *roster.Store) *Summarizer {
	return &Summarizer{repo: repo, roster: r}
}

// Summarize reads the log once and aggregates it. For a fixed
// repository state the result is deterministic; records tied at the
// maximum timestamp are all counted as one latest session.
func (s *Summarizer) Summarize() (Summary, error) {
	records, err := s.repo.ListAll()
	if err != nil {
		return Summary{}, &StorageError{Op: "load records for summary", Err: err}
	}

	summary := Summary{
		TotalRecords:  len(records),
		OverallStatus: map[string]int{},
	}
	if len(records) == 0 {
		return summary, nil
	}

	latestTimestamp := ""
	for _, r := range records {
		summary.OverallStatus[r.Status]++
		if r.Timestamp > latestTimestamp {
			latestTimestamp = r.Timestamp
		}
	}

	latest := &LatestSession{
		Timestamp: latestTimestamp,
		Status:    map[string]int{},
	}
	for _, r := range records {
		if r.Timestamp != latestTimestamp {
			continue
		}
		// Section and professor come from the first record of the
		// session in id order.
		if latest.Section == "" {
			latest.Section = r.Section
			if professor, ok := s.roster.Professor(r.Section); ok {
				latest.Professor = professor
			}
		}
		latest.Status[r.Status]++
	}
	summary.LatestSession = latest

	return summary, nil
}
