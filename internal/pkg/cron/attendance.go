package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/peoplehub/hrms-backend-go/internal/domain/attendance"
	"github.com/peoplehub/hrms-backend-go/internal/domain/tenant"
)

type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
	tenantRepo     tenant.TenantRepository
}

func NewAttendanceJobs(attendanceRepo attendance.AttendanceRepository, tenantRepo tenant.TenantRepository) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		tenantRepo:     tenantRepo,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("close_open_attendance_days", 1*time.Hour, j.CloseOpenAttendanceDays)
}

// CloseOpenAttendanceDays backfills an ABSENT record for every active
// employee who has no attendance row for the previous day. Days with a
// check-in but no check-out keep their classified status; work hours stay
// unset for those.
func (j *AttendanceJobs) CloseOpenAttendanceDays(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC)
	if time.Now().UTC().Hour() != 0 {
		return nil
	}
	return j.closeDay(ctx, time.Now().UTC().AddDate(0, 0, -1))
}

func (j *AttendanceJobs) closeDay(ctx context.Context, day time.Time) error {
	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

	// Absences exist on business days only. Payroll counts weekdays as
	// working days, so a weekend ABSENT row would be double-counted.
	if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
		slog.Info("Cron: Skipping attendance day close on weekend", "date", day.Format("2006-01-02"))
		return nil
	}

	slog.Info("Cron: Starting attendance day close", "date", day.Format("2006-01-02"))

	active := tenant.StatusActive
	page := 1
	totalMarked := 0
	for {
		tenants, _, err := j.tenantRepo.List(ctx, &active, page, 100)
		if err != nil {
			return fmt.Errorf("failed to list tenants: %w", err)
		}
		if len(tenants) == 0 {
			break
		}

		for _, t := range tenants {
			marked, err := j.markAbsences(ctx, t.ID, day)
			if err != nil {
				slog.Error("Cron: Failed to close attendance day for tenant", "tenant_id", t.ID, "error", err)
				continue
			}
			totalMarked += marked
		}
		page++
	}

	slog.Info("Cron: Attendance day close finished", "date", day.Format("2006-01-02"), "absent_marked", totalMarked)
	return nil
}

func (j *AttendanceJobs) markAbsences(ctx context.Context, tenantID string, day time.Time) (int, error) {
	employeeIDs, err := j.attendanceRepo.ListEmployeesWithoutRecord(ctx, tenantID, day)
	if err != nil {
		return 0, fmt.Errorf("failed to list employees without record: %w", err)
	}

	marked := 0
	for _, employeeID := range employeeIDs {
		_, err := j.attendanceRepo.Create(ctx, attendance.Attendance{
			TenantID:   tenantID,
			EmployeeID: employeeID,
			Date:       day,
			Status:     attendance.StatusAbsent,
		})
		if err != nil {
			// A record created between listing and insert is fine.
			if err == attendance.ErrDuplicateDay {
				continue
			}
			slog.Error("Cron: Failed to mark absence", "employee_id", employeeID, "error", err)
			continue
		}
		marked++
	}
	return marked, nil
}
