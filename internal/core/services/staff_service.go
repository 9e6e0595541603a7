package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/core/domain"
	portsrepo "github.com/algoplusmessflow-tech/Messflow-sub000/internal/core/ports/repositories"
	portssvc "github.com/algoplusmessflow-tech/Messflow-sub000/internal/core/ports/services"
	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/dto"
	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/middleware"
)

// staffService provides staff lifecycle operations.
type staffService struct {
	staffRepo portsrepo.StaffRepositoryFacade
}

// NewStaffService creates a new StaffService.
func NewStaffService(staffRepo portsrepo.StaffRepositoryFacade) portssvc.StaffSvcFacade {
	return &staffService{staffRepo: staffRepo}
}

// Ensure staffService implements the portssvc.StaffSvcFacade interface
var _ portssvc.StaffSvcFacade = (*staffService)(nil)

// CreateStaff registers a new staff member, active by default.
func (s *staffService) CreateStaff(ctx context.Context, ownerID string, req dto.CreateStaffRequest) (*domain.Staff, error) {
	now := time.Now().UTC()

	staff := domain.Staff{
		StaffID:       uuid.NewString(),
		OwnerID:       ownerID,
		Name:          req.Name,
		Role:          req.Role,
		Phone:         req.Phone,
		BaseSalary:    req.BaseSalary,
		IsActive:      true,
		BankName:      req.BankName,
		BankAccountNo: req.BankAccountNo,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.staffRepo.SaveStaff(ctx, staff); err != nil {
		return nil, fmt.Errorf("failed to create staff in service: %w", err)
	}

	return &staff, nil
}

// GetStaffByID retrieves a single staff member.
func (s *staffService) GetStaffByID(ctx context.Context, ownerID, staffID string) (*domain.Staff, error) {
	staff, err := s.staffRepo.FindStaffByID(ctx, ownerID, staffID)
	if err != nil {
		return nil, err
	}
	return staff, nil
}

// ListStaff retrieves staff for the owner; inactive rows only when asked for.
func (s *staffService) ListStaff(ctx context.Context, ownerID string, params dto.ListStaffParams) ([]domain.Staff, error) {
	staff, err := s.staffRepo.ListStaff(ctx, ownerID, params.IncludeInactive, params.Limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff in service: %w", err)
	}
	if staff == nil {
		return []domain.Staff{}, nil
	}
	return staff, nil
}

// UpdateStaff applies the provided fields to an existing staff member. The
// active flag is controlled by the dedicated deactivate/reactivate operations.
func (s *staffService) UpdateStaff(ctx context.Context, ownerID, staffID string, req dto.UpdateStaffRequest) (*domain.Staff, error) {
	staff, err := s.staffRepo.FindStaffByID(ctx, ownerID, staffID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		staff.Name = *req.Name
	}
	if req.Role != nil {
		staff.Role = *req.Role
	}
	if req.Phone != nil {
		staff.Phone = *req.Phone
	}
	if req.BaseSalary != nil {
		staff.BaseSalary = *req.BaseSalary
	}
	if req.BankName != nil {
		staff.BankName = *req.BankName
	}
	if req.BankAccountNo != nil {
		staff.BankAccountNo = *req.BankAccountNo
	}
	staff.LastUpdatedAt = time.Now().UTC()

	if err := s.staffRepo.UpdateStaff(ctx, *staff); err != nil {
		return nil, fmt.Errorf("failed to update staff in service: %w", err)
	}

	return staff, nil
}

// DeactivateStaff marks the staff member as having left. Attendance, advance
// and payment history stay in place.
func (s *staffService) DeactivateStaff(ctx context.Context, ownerID, staffID string) error {
	return s.staffRepo.SetStaffActive(ctx, ownerID, staffID, false, time.Now().UTC())
}

// ReactivateStaff reverses a deactivation (rehire).
func (s *staffService) ReactivateStaff(ctx context.Context, ownerID, staffID string) error {
	return s.staffRepo.SetStaffActive(ctx, ownerID, staffID, true, time.Now().UTC())
}

// DeleteStaff hard-deletes the staff member; payroll history cascades.
func (s *staffService) DeleteStaff(ctx context.Context, ownerID, staffID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.staffRepo.DeleteStaff(ctx, ownerID, staffID); err != nil {
		return err
	}

	logger.Info("staff deleted", slog.String("staff_id", staffID))
	return nil
}
