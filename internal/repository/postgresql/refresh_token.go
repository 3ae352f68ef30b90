package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/peoplehub/hrms-backend-go/internal/domain/auth"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/database"
)

type refreshTokenRepositoryImpl struct {
	db *database.DB
}

func NewRefreshTokenRepository(db *database.DB) auth.RefreshTokenRepository {
	return &refreshTokenRepositoryImpl{db: db}
}

// Save implements auth.RefreshTokenRepository.
func (r *refreshTokenRepositoryImpl) Save(ctx context.Context, subjectKind string, subjectID string, tokenHash string, expiresAt int64) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		INSERT INTO refresh_tokens (subject_kind, subject_id, token_hash, expires_at)
		VALUES ($1, $2, $3, $4)
	`, subjectKind, subjectID, tokenHash, time.Unix(expiresAt, 0).UTC())
	if err != nil {
		return fmt.Errorf("save refresh token: %w", err)
	}
	return nil
}

// IsActive implements auth.RefreshTokenRepository.
func (r *refreshTokenRepositoryImpl) IsActive(ctx context.Context, subjectKind string, subjectID string, tokenHash string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var active bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM refresh_tokens
			WHERE subject_kind = $1 AND subject_id = $2 AND token_hash = $3
			  AND revoked_at IS NULL AND expires_at > NOW()
		)
	`, subjectKind, subjectID, tokenHash).Scan(&active)
	if err != nil {
		return false, fmt.Errorf("check refresh token: %w", err)
	}
	return active, nil
}

// Revoke implements auth.RefreshTokenRepository.
func (r *refreshTokenRepositoryImpl) Revoke(ctx context.Context, tokenHash string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx,
		`UPDATE refresh_tokens SET revoked_at = NOW() WHERE token_hash = $1 AND revoked_at IS NULL`,
		tokenHash)
	if err != nil {
		return fmt.Errorf("revoke refresh token: %w", err)
	}
	return nil
}

// RevokeAllForSubject implements auth.RefreshTokenRepository.
func (r *refreshTokenRepositoryImpl) RevokeAllForSubject(ctx context.Context, subjectKind string, subjectID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx,
		`UPDATE refresh_tokens SET revoked_at = NOW() WHERE subject_kind = $1 AND subject_id = $2 AND revoked_at IS NULL`,
		subjectKind, subjectID)
	if err != nil {
		return fmt.Errorf("revoke refresh tokens for subject: %w", err)
	}
	return nil
}
