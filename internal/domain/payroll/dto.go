package payroll

import (
	"github.com/peoplehub/hrms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type UpsertSalaryStructureRequest struct {
	EmployeeID string `json:"-"`

	Basic            decimal.Decimal `json:"basic"`
	HRA              decimal.Decimal `json:"hra"`
	Conveyance       decimal.Decimal `json:"conveyance"`
	MedicalAllowance decimal.Decimal `json:"medical_allowance"`
	SpecialAllowance decimal.Decimal `json:"special_allowance"`
	Bonus            decimal.Decimal `json:"bonus"`

	ProvidentFund   decimal.Decimal `json:"provident_fund"`
	ProfessionalTax decimal.Decimal `json:"professional_tax"`
	IncomeTax       decimal.Decimal `json:"income_tax"`
	OtherDeductions decimal.Decimal `json:"other_deductions"`
}

func (r *UpsertSalaryStructureRequest) Validate() error {
	var errs validator.ValidationErrors

	components := map[string]decimal.Decimal{
		"basic":             r.Basic,
		"hra":               r.HRA,
		"conveyance":        r.Conveyance,
		"medical_allowance": r.MedicalAllowance,
		"special_allowance": r.SpecialAllowance,
		"bonus":             r.Bonus,
		"provident_fund":    r.ProvidentFund,
		"professional_tax":  r.ProfessionalTax,
		"income_tax":        r.IncomeTax,
		"other_deductions":  r.OtherDeductions,
	}
	for field, amount := range components {
		if amount.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: "must be non-negative",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SalaryStructureResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`

	Basic            decimal.Decimal `json:"basic"`
	HRA              decimal.Decimal `json:"hra"`
	Conveyance       decimal.Decimal `json:"conveyance"`
	MedicalAllowance decimal.Decimal `json:"medical_allowance"`
	SpecialAllowance decimal.Decimal `json:"special_allowance"`
	Bonus            decimal.Decimal `json:"bonus"`

	ProvidentFund   decimal.Decimal `json:"provident_fund"`
	ProfessionalTax decimal.Decimal `json:"professional_tax"`
	IncomeTax       decimal.Decimal `json:"income_tax"`
	OtherDeductions decimal.Decimal `json:"other_deductions"`
}

func ToSalaryStructureResponse(s SalaryStructure) SalaryStructureResponse {
	return SalaryStructureResponse{
		ID:         s.ID,
		EmployeeID: s.EmployeeID,

		Basic:            s.Basic,
		HRA:              s.HRA,
		Conveyance:       s.Conveyance,
		MedicalAllowance: s.MedicalAllowance,
		SpecialAllowance: s.SpecialAllowance,
		Bonus:            s.Bonus,

		ProvidentFund:   s.ProvidentFund,
		ProfessionalTax: s.ProfessionalTax,
		IncomeTax:       s.IncomeTax,
		OtherDeductions: s.OtherDeductions,
	}
}

type GeneratePayrollRequest struct {
	Month       int      `json:"-"`
	Year        int      `json:"-"`
	EmployeeIDs []string `json:"employee_ids,omitempty"` // empty = all active employees
}

func (r *GeneratePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "must be between 1 and 12",
		})
	}
	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "must be between 2000 and 2100",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePayslipStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *UpdatePayslipStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, []string{
		string(PayslipStatusDraft), string(PayslipStatusProcessed), string(PayslipStatusPaid),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "must be one of DRAFT, PROCESSED, PAID",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayslipResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	EmployeeCode *string `json:"employee_code,omitempty"`
	Month        int     `json:"month"`
	Year         int     `json:"year"`

	Basic            decimal.Decimal `json:"basic"`
	HRA              decimal.Decimal `json:"hra"`
	Conveyance       decimal.Decimal `json:"conveyance"`
	MedicalAllowance decimal.Decimal `json:"medical_allowance"`
	SpecialAllowance decimal.Decimal `json:"special_allowance"`
	Bonus            decimal.Decimal `json:"bonus"`

	ProvidentFund   decimal.Decimal `json:"provident_fund"`
	ProfessionalTax decimal.Decimal `json:"professional_tax"`
	IncomeTax       decimal.Decimal `json:"income_tax"`
	OtherDeductions decimal.Decimal `json:"other_deductions"`

	TotalEarnings   decimal.Decimal `json:"total_earnings"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetPay          decimal.Decimal `json:"net_pay"`

	WorkingDays int `json:"working_days"`
	PresentDays int `json:"present_days"`
	AbsentDays  int `json:"absent_days"`
	LeaveDays   int `json:"leave_days"`

	Status string  `json:"status"`
	PaidOn *string `json:"paid_on,omitempty"`
}

type PayslipFilter struct {
	Month      *int
	Year       *int
	EmployeeID *string
	Status     *PayslipStatus
	Page       int
	Limit      int
}

type ListPayslipResponse struct {
	Data       []PayslipResponse `json:"data"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
}

func ToPayslipResponse(p Payslip) PayslipResponse {
	resp := PayslipResponse{
		ID:           p.ID,
		EmployeeID:   p.EmployeeID,
		EmployeeName: p.EmployeeName,
		EmployeeCode: p.EmployeeCode,
		Month:        p.Month,
		Year:         p.Year,

		Basic:            p.Basic,
		HRA:              p.HRA,
		Conveyance:       p.Conveyance,
		MedicalAllowance: p.MedicalAllowance,
		SpecialAllowance: p.SpecialAllowance,
		Bonus:            p.Bonus,

		ProvidentFund:   p.ProvidentFund,
		ProfessionalTax: p.ProfessionalTax,
		IncomeTax:       p.IncomeTax,
		OtherDeductions: p.OtherDeductions,

		TotalEarnings:   p.TotalEarnings,
		TotalDeductions: p.TotalDeductions,
		NetPay:          p.NetPay,

		WorkingDays: p.WorkingDays,
		PresentDays: p.PresentDays,
		AbsentDays:  p.AbsentDays,
		LeaveDays:   p.LeaveDays,

		Status: string(p.Status),
	}
	if p.PaidOn != nil {
		str := p.PaidOn.Format("2006-01-02")
		resp.PaidOn = &str
	}
	return resp
}
