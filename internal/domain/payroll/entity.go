package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayslipStatus enum
type PayslipStatus string

const (
	PayslipStatusDraft     PayslipStatus = "DRAFT"
	PayslipStatusProcessed PayslipStatus = "PROCESSED"
	PayslipStatusPaid      PayslipStatus = "PAID"
)

// SalaryStructure holds the configured monthly components for one employee.
type SalaryStructure struct {
	ID         string
	TenantID   string
	EmployeeID string

	// Earnings
	Basic            decimal.Decimal
	HRA              decimal.Decimal
	Conveyance       decimal.Decimal
	MedicalAllowance decimal.Decimal
	SpecialAllowance decimal.Decimal
	Bonus            decimal.Decimal

	// Deductions
	ProvidentFund   decimal.Decimal
	ProfessionalTax decimal.Decimal
	IncomeTax       decimal.Decimal
	OtherDeductions decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TotalEarnings sums all earning components.
func (s SalaryStructure) TotalEarnings() decimal.Decimal {
	return s.Basic.
		Add(s.HRA).
		Add(s.Conveyance).
		Add(s.MedicalAllowance).
		Add(s.SpecialAllowance).
		Add(s.Bonus)
}

// TotalDeductions sums all deduction components.
func (s SalaryStructure) TotalDeductions() decimal.Decimal {
	return s.ProvidentFund.
		Add(s.ProfessionalTax).
		Add(s.IncomeTax).
		Add(s.OtherDeductions)
}

// Payslip is the computed monthly compensation statement for one employee.
// At most one payslip exists per (employee, month, year).
type Payslip struct {
	ID         string
	TenantID   string
	EmployeeID string
	Month      int
	Year       int

	Basic            decimal.Decimal
	HRA              decimal.Decimal
	Conveyance       decimal.Decimal
	MedicalAllowance decimal.Decimal
	SpecialAllowance decimal.Decimal
	Bonus            decimal.Decimal

	ProvidentFund   decimal.Decimal
	ProfessionalTax decimal.Decimal
	IncomeTax       decimal.Decimal
	OtherDeductions decimal.Decimal

	TotalEarnings   decimal.Decimal
	TotalDeductions decimal.Decimal
	NetPay          decimal.Decimal

	WorkingDays int
	PresentDays int
	AbsentDays  int
	LeaveDays   int

	Status    PayslipStatus
	PaidOn    *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}
