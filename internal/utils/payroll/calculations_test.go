package payroll_test

import (
	"testing"
	"time"

	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/core/domain"
	"github.com/algoplusmessflow-tech/Messflow-sub000/internal/utils/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func staffWithSalary(base int64) domain.Staff {
	return domain.Staff{
		StaffID:    "staff-1",
		OwnerID:    "owner-1",
		Name:       "Ravi",
		Role:       domain.RoleCook,
		BaseSalary: decimal.NewFromInt(base),
		IsActive:   true,
	}
}

func attendanceWith(status domain.AttendanceStatus, n int) []domain.AttendanceRecord {
	records := make([]domain.AttendanceRecord, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, domain.AttendanceRecord{
			StaffID: "staff-1",
			OwnerID: "owner-1",
			Date:    time.Date(2025, 6, i+1, 0, 0, 0, 0, time.UTC),
			Status:  status,
		})
	}
	return records
}

func TestCalculatePayroll_DeductionsAndAdvances(t *testing.T) {
	staff := staffWithSalary(3000)
	attendance := append(attendanceWith(domain.Absent, 2), attendanceWith(domain.HalfDay, 1)...)
	advances := []domain.SalaryAdvance{
		{StaffID: "staff-1", Amount: decimal.NewFromInt(200)},
	}

	b := payroll.CalculatePayroll(staff, attendance, advances)

	// Daily rate 3000/30 = 100; deduction 2*100 + 1*50 = 250; net 3000-250-200
	assert.True(t, b.DailyRate.Equal(decimal.NewFromInt(100)), "daily rate: %s", b.DailyRate)
	assert.Equal(t, 2, b.AbsentDays)
	assert.Equal(t, 1, b.HalfDays)
	assert.Equal(t, 0, b.PresentDays)
	assert.True(t, b.Deduction.Equal(decimal.NewFromInt(250)), "deduction: %s", b.Deduction)
	assert.True(t, b.AdvancesTotal.Equal(decimal.NewFromInt(200)), "advances: %s", b.AdvancesTotal)
	assert.True(t, b.NetPayable.Equal(decimal.NewFromInt(2550)), "net: %s", b.NetPayable)
}

func TestCalculatePayroll_NoAttendanceDeductsNothing(t *testing.T) {
	staff := staffWithSalary(3000)

	b := payroll.CalculatePayroll(staff, nil, nil)

	assert.True(t, b.Deduction.IsZero())
	assert.True(t, b.AdvancesTotal.IsZero())
	assert.True(t, b.NetPayable.Equal(staff.BaseSalary))
}

func TestCalculatePayroll_PresentDaysDoNotDeduct(t *testing.T) {
	staff := staffWithSalary(3000)
	attendance := attendanceWith(domain.Present, 25)

	b := payroll.CalculatePayroll(staff, attendance, nil)

	assert.Equal(t, 25, b.PresentDays)
	assert.True(t, b.Deduction.IsZero())
	assert.True(t, b.NetPayable.Equal(staff.BaseSalary))
}

func TestCalculatePayroll_NetPayableFlooredAtZero(t *testing.T) {
	staff := staffWithSalary(1000)
	advances := []domain.SalaryAdvance{
		{StaffID: "staff-1", Amount: decimal.NewFromInt(900)},
		{StaffID: "staff-1", Amount: decimal.NewFromInt(400)},
	}

	b := payroll.CalculatePayroll(staff, nil, advances)

	assert.True(t, b.NetPayable.IsZero(), "net payable must not go negative: %s", b.NetPayable)
	// Deduction and advances totals are still reported in full
	assert.True(t, b.AdvancesTotal.Equal(decimal.NewFromInt(1300)))
}

func TestCalculatePayroll_PureAndRepeatable(t *testing.T) {
	staff := staffWithSalary(4500)
	attendance := attendanceWith(domain.Absent, 3)
	advances := []domain.SalaryAdvance{{Amount: decimal.NewFromInt(100)}}

	first := payroll.CalculatePayroll(staff, attendance, advances)
	second := payroll.CalculatePayroll(staff, attendance, advances)

	assert.True(t, first.NetPayable.Equal(second.NetPayable))
	assert.True(t, first.Deduction.Equal(second.Deduction))
	assert.Equal(t, domain.Absent, attendance[0].Status, "inputs must not be mutated")
}

func TestMonthYear(t *testing.T) {
	assert.Equal(t, "2025-06", payroll.MonthYear(time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-12", payroll.MonthYear(time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)))
}

func TestMonthBounds(t *testing.T) {
	from, to := payroll.MonthBounds(time.Date(2025, 6, 15, 12, 30, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), to)
}

func TestMonthBounds_YearRollover(t *testing.T) {
	from, to := payroll.MonthBounds(time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC))

	assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), to)
}
