package payroll

import "errors"

var (
	ErrPayslipNotFound         = errors.New("payslip not found")
	ErrPayslipAlreadyPaid      = errors.New("payslip already paid, cannot modify")
	ErrSalaryStructureNotFound = errors.New("salary structure not found")
	ErrInvalidPeriod           = errors.New("invalid payroll period")
	ErrInvalidStatusTransition = errors.New("invalid payslip status transition")
)
