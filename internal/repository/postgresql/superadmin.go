package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/peoplehub/hrms-backend-go/internal/domain/superadmin"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/database"
)

type superAdminRepositoryImpl struct {
	db *database.DB
}

func NewSuperAdminRepository(db *database.DB) superadmin.SuperAdminRepository {
	return &superAdminRepositoryImpl{db: db}
}

const superAdminColumns = `id, email, password_hash, name, created_at, updated_at`

func scanSuperAdmin(row pgx.Row) (*superadmin.SuperAdmin, error) {
	var a superadmin.SuperAdmin
	if err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Name, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

// Create implements superadmin.SuperAdminRepository.
func (r *superAdminRepositoryImpl) Create(ctx context.Context, admin *superadmin.SuperAdmin) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO super_admins (email, password_hash, name)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, admin.Email, admin.PasswordHash, admin.Name).
		Scan(&admin.ID, &admin.CreatedAt, &admin.UpdatedAt)
	if err != nil {
		if database.IsUniqueViolation(err, "super_admins_email_key") {
			return superadmin.ErrSuperAdminEmailExists
		}
		return fmt.Errorf("create super admin: %w", err)
	}
	return nil
}

// GetByID implements superadmin.SuperAdminRepository.
func (r *superAdminRepositoryImpl) GetByID(ctx context.Context, id string) (*superadmin.SuperAdmin, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanSuperAdmin(q.QueryRow(ctx, `SELECT `+superAdminColumns+` FROM super_admins WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, superadmin.ErrSuperAdminNotFound
		}
		return nil, fmt.Errorf("get super admin by id: %w", err)
	}
	return found, nil
}

// GetByEmail implements superadmin.SuperAdminRepository.
func (r *superAdminRepositoryImpl) GetByEmail(ctx context.Context, email string) (*superadmin.SuperAdmin, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanSuperAdmin(q.QueryRow(ctx, `SELECT `+superAdminColumns+` FROM super_admins WHERE email = $1`, email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, superadmin.ErrSuperAdminNotFound
		}
		return nil, fmt.Errorf("get super admin by email: %w", err)
	}
	return found, nil
}
