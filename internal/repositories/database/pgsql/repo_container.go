package pgsql

import (
	portsrepo "github.com/algoplusmessflow-tech/Messflow-sub000/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgsql repository onto the shared pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		MemberRepo:  newPgxMemberRepository(pool),
		LedgerRepo:  newPgxLedgerRepository(pool),
		StaffRepo:   newPgxStaffRepository(pool),
		PayrollRepo: newPgxPayrollRepository(pool),
		ExpenseRepo: newPgxExpenseRepository(pool),
	}
}
