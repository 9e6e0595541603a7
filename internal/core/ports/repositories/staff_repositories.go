package repositories

import (
	"context"
	"time"

	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/core/domain"
)

// StaffReader defines read operations for staff data
type StaffReader interface {
	// FindStaffByID retrieves a staff member by ID, scoped to the owner.
	FindStaffByID(ctx context.Context, ownerID, staffID string) (*domain.Staff, error)

	// ListStaff retrieves staff for an owner; inactive rows are included only
	// when includeInactive is set.
	ListStaff(ctx context.Context, ownerID string, includeInactive bool, limit, offset int) ([]domain.Staff, error)
}

// StaffWriter defines write operations for staff data
type StaffWriter interface {
	// SaveStaff persists a new staff member.
	SaveStaff(ctx context.Context, staff domain.Staff) error

	// UpdateStaff updates an existing staff member's details.
	UpdateStaff(ctx context.Context, staff domain.Staff) error

	// SetStaffActive flips the soft-delete flag ("left company" / rehire).
	SetStaffActive(ctx context.Context, ownerID, staffID string, active bool, now time.Time) error

	// DeleteStaff hard-deletes a staff member. Rare path; attendance, advance
	// and payment history cascade in the store.
	DeleteStaff(ctx context.Context, ownerID, staffID string) error
}

// StaffRepositoryFacade combines all staff-related repository interfaces
type StaffRepositoryFacade interface {
	StaffReader
	StaffWriter
}
