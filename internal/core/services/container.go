package services

import (
	portsrepo "github.com/algoplusmessflow-tech/Messflow-sub000/internal/core/ports/repositories"
	portssvc "github.com/algoplusmessflow-tech/Messflow-sub000/internal/core/ports/services"
)

// NewServiceContainer wires every service onto the repository provider.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Member:  NewMemberService(repos.MemberRepo, repos.LedgerRepo),
		Ledger:  NewLedgerService(repos.LedgerRepo, repos.MemberRepo),
		Staff:   NewStaffService(repos.StaffRepo),
		Payroll: NewPayrollService(repos.PayrollRepo, repos.StaffRepo),
		Expense: NewExpenseService(repos.ExpenseRepo),
	}
}
