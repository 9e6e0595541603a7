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
	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxMemberRepository struct {
	pool *pgxpool.Pool
}

// newPgxMemberRepository creates a new repository for member data.
func newPgxMemberRepository(pool *pgxpool.Pool) portsrepo.MemberRepositoryFacade {
	return &PgxMemberRepository{pool: pool}
}

// Ensure PgxMemberRepository implements portsrepo.MemberRepositoryFacade
var _ portsrepo.MemberRepositoryFacade = (*PgxMemberRepository)(nil)

// Helper to convert domain.Member to models.Member for DB storage
func toModelMember(d domain.Member) models.Member {
	return models.Member{
		MemberID:       d.MemberID,
		OwnerID:        d.OwnerID,
		Name:           d.Name,
		Phone:          d.Phone,
		PlanType:       string(d.PlanType),
		MonthlyFee:     d.MonthlyFee,
		Balance:        d.Balance,
		OpeningBalance: d.OpeningBalance,
		Status:         string(d.Status),
		JoiningDate:    d.JoiningDate,
		PlanExpiryDate: d.PlanExpiryDate,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// Helper to convert models.Member from DB to domain.Member
func toDomainMember(m models.Member) domain.Member {
	return domain.Member{
		MemberID:       m.MemberID,
		OwnerID:        m.OwnerID,
		Name:           m.Name,
		Phone:          m.Phone,
		PlanType:       domain.PlanType(m.PlanType),
		MonthlyFee:     m.MonthlyFee,
		Balance:        m.Balance,
		OpeningBalance: m.OpeningBalance,
		Status:         domain.MemberStatus(m.Status),
		JoiningDate:    m.JoiningDate,
		PlanExpiryDate: m.PlanExpiryDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

const memberColumns = `member_id, owner_id, name, phone, plan_type, monthly_fee, balance, opening_balance, status, joining_date, plan_expiry_date, created_at, last_updated_at`

func scanMemberRow(row pgx.Row) (models.Member, error) {
	var m models.Member
	err := row.Scan(
		&m.MemberID,
		&m.OwnerID,
		&m.Name,
		&m.Phone,
		&m.PlanType,
		&m.MonthlyFee,
		&m.Balance,
		&m.OpeningBalance,
		&m.Status,
		&m.JoiningDate,
		&m.PlanExpiryDate,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

// SaveMember inserts a new member.
func (r *PgxMemberRepository) SaveMember(ctx context.Context, member domain.Member) error {
	m := toModelMember(member)

	query := `
		INSERT INTO members (` + memberColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.pool.Exec(ctx, query,
		m.MemberID,
		m.OwnerID,
		m.Name,
		m.Phone,
		m.PlanType,
		m.MonthlyFee,
		m.Balance,
		m.OpeningBalance,
		m.Status,
		m.JoiningDate,
		m.PlanExpiryDate,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return fmt.Errorf("%w: member with ID %s already exists", apperrors.ErrDuplicate, m.MemberID)
		}
		return fmt.Errorf("failed to save member %s: %w", m.MemberID, err)
	}
	return nil
}

// FindMemberByID retrieves a member by its ID, scoped to the owner.
func (r *PgxMemberRepository) FindMemberByID(ctx context.Context, ownerID, memberID string) (*domain.Member, error) {
	query := `
		SELECT ` + memberColumns + `
		FROM members
		WHERE member_id = $1 AND owner_id = $2;
	`
	m, err := scanMemberRow(r.pool.QueryRow(ctx, query, memberID, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find member by ID %s: %w", memberID, err)
	}

	domainMember := toDomainMember(m)
	return &domainMember, nil
}

// ListMembers retrieves a page of members ordered by joining date descending,
// using token-based pagination for a restartable sequence.
func (r *PgxMemberRepository) ListMembers(ctx context.Context, ownerID string, limit int, nextToken *string) ([]domain.Member, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	args := []interface{}{ownerID}
	query := `
		SELECT ` + memberColumns + `
		FROM members
		WHERE owner_id = $1`

	if nextToken != nil && *nextToken != "" {
		joiningDate, createdAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += ` AND (joining_date, created_at) < ($2, $3)`
		args = append(args, joiningDate, createdAt)
	}

	query += fmt.Sprintf(` ORDER BY joining_date DESC, created_at DESC LIMIT $%d;`, len(args)+1)
	// Fetch one extra row to know whether another page exists.
	args = append(args, limit+1)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query members for owner %s: %w", ownerID, err)
	}
	defer rows.Close()

	members := []domain.Member{}
	for rows.Next() {
		m, err := scanMemberRow(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan member row: %w", err)
		}
		members = append(members, toDomainMember(m))
	}
	if rows.Err() != nil {
		return nil, nil, fmt.Errorf("error iterating member rows: %w", rows.Err())
	}

	var token *string
	if len(members) > limit {
		members = members[:limit]
		last := members[len(members)-1]
		t := pagination.EncodeToken(last.JoiningDate, last.CreatedAt)
		token = &t
	}

	return members, token, nil
}

// UpdateMember updates an existing member's details. The cached balance and
// the opening balance are deliberately not updatable here.
func (r *PgxMemberRepository) UpdateMember(ctx context.Context, member domain.Member) error {
	m := toModelMember(member)

	query := `
		UPDATE members
		SET name = $3, phone = $4, plan_type = $5, monthly_fee = $6, status = $7, plan_expiry_date = $8, last_updated_at = $9
		WHERE member_id = $1 AND owner_id = $2;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		m.MemberID,
		m.OwnerID,
		m.Name,
		m.Phone,
		m.PlanType,
		m.MonthlyFee,
		m.Status,
		m.PlanExpiryDate,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update member %s: %w", m.MemberID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SetMemberBalance overwrites the cached balance; reconciliation only.
func (r *PgxMemberRepository) SetMemberBalance(ctx context.Context, ownerID, memberID string, balance decimal.Decimal, now time.Time) error {
	query := `
		UPDATE members
		SET balance = $3, last_updated_at = $4
		WHERE member_id = $1 AND owner_id = $2;
	`
	cmdTag, err := r.pool.Exec(ctx, query, memberID, ownerID, balance, now)
	if err != nil {
		return fmt.Errorf("failed to set balance for member %s: %w", memberID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteMember hard-deletes a member; the member's transactions cascade.
func (r *PgxMemberRepository) DeleteMember(ctx context.Context, ownerID, memberID string) error {
	query := `DELETE FROM members WHERE member_id = $1 AND owner_id = $2;`

	cmdTag, err := r.pool.Exec(ctx, query, memberID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete member %s: %w", memberID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
