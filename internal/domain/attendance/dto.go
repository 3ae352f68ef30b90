package attendance

import (
	"github.com/peoplehub/hrms-backend-go/internal/pkg/validator"
)

type CheckInRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CheckOutRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID            string   `json:"id"`
	EmployeeID    string   `json:"employee_id"`
	EmployeeName  *string  `json:"employee_name,omitempty"`
	EmployeeCode  *string  `json:"employee_code,omitempty"`
	Date          string   `json:"date"`
	CheckIn       *string  `json:"check_in,omitempty"`
	CheckOut      *string  `json:"check_out,omitempty"`
	WorkHours     *float64 `json:"work_hours,omitempty"`
	LateByMinutes int      `json:"late_by_minutes"`
	Status        string   `json:"status"`
}

type ListFilter struct {
	From   *string // "YYYY-MM-DD"
	To     *string
	Status *Status
	Page   int
	Limit  int
}

type ListAttendanceResponse struct {
	Data       []AttendanceResponse `json:"data"`
	TotalCount int64                `json:"total_count"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
}

func ToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:            a.ID,
		EmployeeID:    a.EmployeeID,
		EmployeeName:  a.EmployeeName,
		EmployeeCode:  a.EmployeeCode,
		Date:          a.Date.Format("2006-01-02"),
		WorkHours:     a.WorkHours,
		LateByMinutes: a.LateByMinutes,
		Status:        string(a.Status),
	}
	if a.CheckIn != nil {
		str := a.CheckIn.Format("2006-01-02 15:04:05")
		resp.CheckIn = &str
	}
	if a.CheckOut != nil {
		str := a.CheckOut.Format("2006-01-02 15:04:05")
		resp.CheckOut = &str
	}
	return resp
}
