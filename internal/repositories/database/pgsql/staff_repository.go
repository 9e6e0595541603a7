package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/apperrors"
	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/core/domain"
	portsrepo "github.com/algoplusmessflow-tech/Messflow-sub000/internal/core/ports/repositories"
	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxStaffRepository struct {
	pool *pgxpool.Pool
}

// newPgxStaffRepository creates a new repository for staff data.
func newPgxStaffRepository(pool *pgxpool.Pool) portsrepo.StaffRepositoryFacade {
	return &PgxStaffRepository{pool: pool}
}

// Ensure PgxStaffRepository implements portsrepo.StaffRepositoryFacade
var _ portsrepo.StaffRepositoryFacade = (*PgxStaffRepository)(nil)

func toModelStaff(d domain.Staff) models.Staff {
	return models.Staff{
		StaffID:       d.StaffID,
		OwnerID:       d.OwnerID,
		Name:          d.Name,
		Role:          string(d.Role),
		Phone:         d.Phone,
		BaseSalary:    d.BaseSalary,
		IsActive:      d.IsActive,
		BankName:      d.BankName,
		BankAccountNo: d.BankAccountNo,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

func toDomainStaff(m models.Staff) domain.Staff {
	return domain.Staff{
		StaffID:       m.StaffID,
		OwnerID:       m.OwnerID,
		Name:          m.Name,
		Role:          domain.StaffRole(m.Role),
		Phone:         m.Phone,
		BaseSalary:    m.BaseSalary,
		IsActive:      m.IsActive,
		BankName:      m.BankName,
		BankAccountNo: m.BankAccountNo,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

const staffColumns = `staff_id, owner_id, name, role, phone, base_salary, is_active, bank_name, bank_account_no, created_at, last_updated_at`

func scanStaffRow(row pgx.Row) (models.Staff, error) {
	var m models.Staff
	err := row.Scan(
		&m.StaffID,
		&m.OwnerID,
		&m.Name,
		&m.Role,
		&m.Phone,
		&m.BaseSalary,
		&m.IsActive,
		&m.BankName,
		&m.BankAccountNo,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

// SaveStaff inserts a new staff member.
func (r *PgxStaffRepository) SaveStaff(ctx context.Context, staff domain.Staff) error {
	m := toModelStaff(staff)

	query := `
		INSERT INTO staff (` + staffColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.pool.Exec(ctx, query,
		m.StaffID,
		m.OwnerID,
		m.Name,
		m.Role,
		m.Phone,
		m.BaseSalary,
		m.IsActive,
		m.BankName,
		m.BankAccountNo,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return fmt.Errorf("%w: staff with ID %s already exists", apperrors.ErrDuplicate, m.StaffID)
		}
		return fmt.Errorf("failed to save staff %s: %w", m.StaffID, err)
	}
	return nil
}

// FindStaffByID retrieves a staff member by ID, scoped to the owner.
func (r *PgxStaffRepository) FindStaffByID(ctx context.Context, ownerID, staffID string) (*domain.Staff, error) {
	query := `
		SELECT ` + staffColumns + `
		FROM staff
		WHERE staff_id = $1 AND owner_id = $2;
	`
	m, err := scanStaffRow(r.pool.QueryRow(ctx, query, staffID, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find staff by ID %s: %w", staffID, err)
	}

	domainStaff := toDomainStaff(m)
	return &domainStaff, nil
}

// ListStaff retrieves staff for an owner ordered by name. Inactive rows are
// included only when includeInactive is set.
func (r *PgxStaffRepository) ListStaff(ctx context.Context, ownerID string, includeInactive bool, limit, offset int) ([]domain.Staff, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + staffColumns + `
		FROM staff
		WHERE owner_id = $1`
	if !includeInactive {
		query += ` AND is_active = TRUE`
	}
	query += ` ORDER BY name, created_at LIMIT $2 OFFSET $3;`

	rows, err := r.pool.Query(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query staff for owner %s: %w", ownerID, err)
	}
	defer rows.Close()

	staff := []domain.Staff{}
	for rows.Next() {
		m, err := scanStaffRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan staff row: %w", err)
		}
		staff = append(staff, toDomainStaff(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating staff rows: %w", rows.Err())
	}
	return staff, nil
}

// UpdateStaff updates an existing staff member's details.
func (r *PgxStaffRepository) UpdateStaff(ctx context.Context, staff domain.Staff) error {
	m := toModelStaff(staff)

	query := `
		UPDATE staff
		SET name = $3, role = $4, phone = $5, base_salary = $6, bank_name = $7, bank_account_no = $8, last_updated_at = $9
		WHERE staff_id = $1 AND owner_id = $2;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		m.StaffID,
		m.OwnerID,
		m.Name,
		m.Role,
		m.Phone,
		m.BaseSalary,
		m.BankName,
		m.BankAccountNo,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update staff %s: %w", m.StaffID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SetStaffActive flips the soft-delete flag.
func (r *PgxStaffRepository) SetStaffActive(ctx context.Context, ownerID, staffID string, active bool, now time.Time) error {
	query := `
		UPDATE staff
		SET is_active = $3, last_updated_at = $4
		WHERE staff_id = $1 AND owner_id = $2;
	`
	cmdTag, err := r.pool.Exec(ctx, query, staffID, ownerID, active, now)
	if err != nil {
		return fmt.Errorf("failed to set active flag for staff %s: %w", staffID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteStaff hard-deletes a staff member; attendance, advances and salary
// payments cascade.
func (r *PgxStaffRepository) DeleteStaff(ctx context.Context, ownerID, staffID string) error {
	cmdTag, err := r.pool.Exec(ctx,
		`DELETE FROM staff WHERE staff_id = $1 AND owner_id = $2;`,
		staffID, ownerID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete staff %s: %w", staffID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
