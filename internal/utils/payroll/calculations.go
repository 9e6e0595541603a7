package payroll

import (
	"time"

	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// monthDays is the fixed divisor used to derive the daily rate from the
// monthly base salary. The payroll period is treated as a 30-day month
// regardless of calendar length.
var monthDays = decimal.NewFromInt(30)

var two = decimal.NewFromInt(2)

// CalculatePayroll derives the monthly payroll breakdown for a staff member
// from the month's attendance records and salary advances.
//
// The function is pure: it never mutates its inputs and identical inputs
// always produce identical output. Attendance deductions are opt-in via
// explicit marking; a month with no attendance rows deducts nothing.
// NetPayable is floored at zero and any excess deduction is not carried
// forward to the next month.
func CalculatePayroll(staff domain.Staff, attendance []domain.AttendanceRecord, advances []domain.SalaryAdvance) domain.PayrollBreakdown {
	dailyRate := staff.BaseSalary.Div(monthDays)

	var presentDays, absentDays, halfDays int
	for _, rec := range attendance {
		switch rec.Status {
		case domain.Present:
			presentDays++
		case domain.Absent:
			absentDays++
		case domain.HalfDay:
			halfDays++
		}
	}

	deduction := dailyRate.Mul(decimal.NewFromInt(int64(absentDays))).
		Add(dailyRate.Div(two).Mul(decimal.NewFromInt(int64(halfDays))))

	advancesTotal := decimal.Zero
	for _, adv := range advances {
		advancesTotal = advancesTotal.Add(adv.Amount)
	}

	netPayable := staff.BaseSalary.Sub(deduction).Sub(advancesTotal)
	if netPayable.IsNegative() {
		netPayable = decimal.Zero
	}

	return domain.PayrollBreakdown{
		BaseSalary:    staff.BaseSalary,
		DailyRate:     dailyRate,
		PresentDays:   presentDays,
		AbsentDays:    absentDays,
		HalfDays:      halfDays,
		Deduction:     deduction,
		AdvancesTotal: advancesTotal,
		NetPayable:    netPayable,
	}
}

// MonthYear formats t as the "yyyy-MM" payroll period key.
func MonthYear(t time.Time) string {
	return t.Format("2006-01")
}

// MonthBounds returns the first instant of t's calendar month and the first
// instant of the following month, in t's location. The advance-clearing
// window for a payroll period is [start, end).
func MonthBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 1, 0)
}
