package services

import (
	"context"

	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/core/domain"
	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/dto"
)

// StaffSvcFacade defines the staff management operations.
type StaffSvcFacade interface {
	CreateStaff(ctx context.Context, ownerID string, req dto.CreateStaffRequest) (*domain.Staff, error)
	GetStaffByID(ctx context.Context, ownerID, staffID string) (*domain.Staff, error)
	ListStaff(ctx context.Context, ownerID string, params dto.ListStaffParams) ([]domain.Staff, error)
	UpdateStaff(ctx context.Context, ownerID, staffID string, req dto.UpdateStaffRequest) (*domain.Staff, error)

	// DeactivateStaff marks the staff member as having left; history is kept.
	DeactivateStaff(ctx context.Context, ownerID, staffID string) error

	// ReactivateStaff reverses a deactivation (rehire).
	ReactivateStaff(ctx context.Context, ownerID, staffID string) error

	// DeleteStaff hard-deletes the staff member and cascades payroll history.
	DeleteStaff(ctx context.Context, ownerID, staffID string) error
}
