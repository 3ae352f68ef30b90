package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testStructure() SalaryStructure {
	return SalaryStructure{
		TenantID:   "tenant-1",
		EmployeeID: "emp-1",

		Basic:            dec("50000"),
		HRA:              dec("20000"),
		Conveyance:       dec("1600"),
		MedicalAllowance: dec("1250"),
		SpecialAllowance: dec("7150"),
		Bonus:            dec("5000"),

		ProvidentFund:   dec("6000"),
		ProfessionalTax: dec("200"),
		IncomeTax:       dec("8500"),
		OtherDeductions: dec("300"),
	}
}

func TestBuildPayslip_Totals(t *testing.T) {
	slip := BuildPayslip(testStructure(), DayCounts{WorkingDays: 21, PresentDays: 19, AbsentDays: 1, LeaveDays: 1}, 3, 2024)

	assert.True(t, slip.TotalEarnings.Equal(dec("85000")), "total earnings = %s", slip.TotalEarnings)
	assert.True(t, slip.TotalDeductions.Equal(dec("15000")), "total deductions = %s", slip.TotalDeductions)
	assert.True(t, slip.NetPay.Equal(dec("70000")), "net pay = %s", slip.NetPay)
}

// Net pay must equal total earnings minus total deductions exactly.
func TestBuildPayslip_NetPayInvariant(t *testing.T) {
	structures := []SalaryStructure{
		testStructure(),
		{Basic: dec("0.01"), IncomeTax: dec("0.03")},
		{},
	}
	for _, s := range structures {
		slip := BuildPayslip(s, DayCounts{}, 1, 2025)
		assert.True(t, slip.NetPay.Equal(slip.TotalEarnings.Sub(slip.TotalDeductions)))
	}
}

func TestBuildPayslip_CarriesPeriodAndCounts(t *testing.T) {
	slip := BuildPayslip(testStructure(), DayCounts{WorkingDays: 22, PresentDays: 20, AbsentDays: 2}, 7, 2025)

	assert.Equal(t, "emp-1", slip.EmployeeID)
	assert.Equal(t, "tenant-1", slip.TenantID)
	assert.Equal(t, 7, slip.Month)
	assert.Equal(t, 2025, slip.Year)
	assert.Equal(t, 22, slip.WorkingDays)
	assert.Equal(t, 20, slip.PresentDays)
	assert.Equal(t, 2, slip.AbsentDays)
	assert.Equal(t, PayslipStatusDraft, slip.Status)
}

func TestWorkingDaysInMonth(t *testing.T) {
	// March 2024: 31 days, starts on a Friday, 21 weekdays.
	assert.Equal(t, 21, WorkingDaysInMonth(3, 2024))
	// February 2024: 29 days, starts on a Thursday, 21 weekdays.
	assert.Equal(t, 21, WorkingDaysInMonth(2, 2024))
}
