package postgresql

import (
	"context"
	"fmt"

	"github.com/peoplehub/hrms-backend-go/internal/domain/superadmin"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/database"
)

type statsRepositoryImpl struct {
	db *database.DB
}

func NewStatsRepository(db *database.DB) superadmin.StatsRepository {
	return &statsRepositoryImpl{db: db}
}

// CountEmployees implements superadmin.StatsRepository.
func (r *statsRepositoryImpl) CountEmployees(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count employees: %w", err)
	}
	return count, nil
}

// CountUsers implements superadmin.StatsRepository.
func (r *statsRepositoryImpl) CountUsers(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return count, nil
}
