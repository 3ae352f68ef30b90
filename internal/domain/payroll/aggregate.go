package payroll

import "time"

// DayCounts is the attendance-derived input to payslip generation.
type DayCounts struct {
	WorkingDays int
	PresentDays int
	AbsentDays  int
	LeaveDays   int
}

// BuildPayslip composes a DRAFT payslip for one employee and period from its
// salary structure and attendance day counts. Totals are exact decimal sums;
// net pay is total earnings minus total deductions.
func BuildPayslip(structure SalaryStructure, days DayCounts, month, year int) Payslip {
	earnings := structure.TotalEarnings()
	deductions := structure.TotalDeductions()

	return Payslip{
		TenantID:   structure.TenantID,
		EmployeeID: structure.EmployeeID,
		Month:      month,
		Year:       year,

		Basic:            structure.Basic,
		HRA:              structure.HRA,
		Conveyance:       structure.Conveyance,
		MedicalAllowance: structure.MedicalAllowance,
		SpecialAllowance: structure.SpecialAllowance,
		Bonus:            structure.Bonus,

		ProvidentFund:   structure.ProvidentFund,
		ProfessionalTax: structure.ProfessionalTax,
		IncomeTax:       structure.IncomeTax,
		OtherDeductions: structure.OtherDeductions,

		TotalEarnings:   earnings,
		TotalDeductions: deductions,
		NetPay:          earnings.Sub(deductions),

		WorkingDays: days.WorkingDays,
		PresentDays: days.PresentDays,
		AbsentDays:  days.AbsentDays,
		LeaveDays:   days.LeaveDays,

		Status: PayslipStatusDraft,
	}
}

// WorkingDaysInMonth counts weekdays in the given period.
func WorkingDaysInMonth(month, year int) int {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	days := 0
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			days++
		}
	}
	return days
}
