package domain

import "time"

// AttendanceStatus is the marked state of a staff member for one day.
type AttendanceStatus string

const (
	Present AttendanceStatus = "PRESENT"
	Absent  AttendanceStatus = "ABSENT"
	HalfDay AttendanceStatus = "HALF_DAY"
)

// AttendanceRecord marks a staff member's attendance for a single date.
// Exactly zero or one record exists per (staff, date); writes are upserts
// on that key.
type AttendanceRecord struct {
	AttendanceID string           `json:"attendanceID"` // Primary key (UUID)
	OwnerID      string           `json:"ownerID"`      // Tenant scope
	StaffID      string           `json:"staffID"`      // FK -> Staff
	Date         time.Time        `json:"date"`         // Date only, UTC midnight
	Status       AttendanceStatus `json:"status"`
	AuditFields
}
