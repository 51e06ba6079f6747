package models

// SaveAttendanceRequest is the body of POST /save-attendance: the
// selected section and the operator's student→status map.
type SaveAttendanceRequest struct {
	Section    string            `json:"section" binding:"required"`
	Attendance map[string]string `json:"attendance" binding:"required"`
}
