package attendance

// Status is one of the fixed attendance markings. The set is closed:
// writer and readers share the same vocabulary.
type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
	StatusLate    Status = "Late"
	StatusExcused Status = "Excused"
)

var validStatuses = map[Status]bool{
	StatusPresent: true,
	StatusAbsent:  true,
	StatusLate:    true,
	StatusExcused: true,
}

// ParseStatus validates a raw status value against the enumeration.
func ParseStatus(raw string) (Status, bool) {
	s := Status(raw)
	return s, validStatuses[s]
}

// Statuses returns the full enumeration in display order.
func Statuses() []Status {
	return []Status{StatusPresent, StatusAbsent, StatusLate, StatusExcused}
}
