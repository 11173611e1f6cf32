package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fashionstore-backend/internal/domains/user"
	"fashionstore-backend/pkg/database"
)

// tokenRepository quản lý one-time auth tokens (verification / password reset)
type tokenRepository struct {
	pool *pgxpool.Pool
}

func NewTokenRepository(pool *pgxpool.Pool) user.TokenRepository {
	return &tokenRepository{pool: pool}
}

func (r *tokenRepository) Create(ctx context.Context, t *user.AuthToken) error {
	query := `
		INSERT INTO auth_tokens (id, user_id, token, purpose, expires_at, used, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		t.ID, t.UserID, t.Token, t.Purpose, t.ExpiresAt, t.Used, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create auth token: %w", err)
	}
	return nil
}

func (r *tokenRepository) FindByToken(ctx context.Context, tokenStr string, purpose user.TokenPurpose) (*user.AuthToken, error) {
	query := `
		SELECT id, user_id, token, purpose, expires_at, used, created_at
		FROM auth_tokens
		WHERE token = $1 AND purpose = $2
	`

	var t user.AuthToken
	err := r.pool.QueryRow(ctx, query, tokenStr, purpose).Scan(
		&t.ID, &t.UserID, &t.Token, &t.Purpose, &t.ExpiresAt, &t.Used, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrTokenNotFound
		}
		return nil, fmt.Errorf("find auth token: %w", err)
	}

	return &t, nil
}

// RedeemVerification consume token và mark user verified trong MỘT transaction.
// Row lock (FOR UPDATE) chặn double-redeem giữa hai concurrent requests.
func (r *tokenRepository) RedeemVerification(ctx context.Context, tokenStr string, now time.Time) (*user.User, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*user.User, error) {
		t, err := r.lockToken(ctx, tx, tokenStr, user.PurposeVerifyEmail)
		if err != nil {
			return nil, err
		}
		if err := t.ValidateAt(now); err != nil {
			return nil, err
		}

		// Effect 1: mark email verified
		_, err = tx.Exec(ctx,
			`UPDATE users SET email_verified = true, email_verified_at = $2, updated_at = $2 WHERE id = $1`,
			t.UserID, now,
		)
		if err != nil {
			return nil, fmt.Errorf("mark verified: %w", err)
		}

		// Effect 2: consume token - cùng transaction với effect 1
		if err := r.markUsed(ctx, tx, t.ID); err != nil {
			return nil, err
		}

		return r.findUserTx(ctx, tx, t.UserID)
	})
}

// RedeemPasswordReset consume token và set password hash mới, atomically
func (r *tokenRepository) RedeemPasswordReset(ctx context.Context, tokenStr, newPasswordHash string, now time.Time) (*user.User, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*user.User, error) {
		t, err := r.lockToken(ctx, tx, tokenStr, user.PurposeResetPassword)
		if err != nil {
			return nil, err
		}
		if err := t.ValidateAt(now); err != nil {
			return nil, err
		}

		_, err = tx.Exec(ctx,
			`UPDATE users SET password_hash = $2, updated_at = $3 WHERE id = $1`,
			t.UserID, newPasswordHash, now,
		)
		if err != nil {
			return nil, fmt.Errorf("reset password: %w", err)
		}

		if err := r.markUsed(ctx, tx, t.ID); err != nil {
			return nil, err
		}

		return r.findUserTx(ctx, tx, t.UserID)
	})
}

// ========================================
// TX HELPERS
// ========================================

func (r *tokenRepository) lockToken(ctx context.Context, tx pgx.Tx, tokenStr string, purpose user.TokenPurpose) (*user.AuthToken, error) {
	query := `
		SELECT id, user_id, token, purpose, expires_at, used, created_at
		FROM auth_tokens
		WHERE token = $1 AND purpose = $2
		FOR UPDATE
	`

	var t user.AuthToken
	err := tx.QueryRow(ctx, query, tokenStr, purpose).Scan(
		&t.ID, &t.UserID, &t.Token, &t.Purpose, &t.ExpiresAt, &t.Used, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrTokenNotFound
		}
		return nil, fmt.Errorf("lock auth token: %w", err)
	}

	return &t, nil
}

func (r *tokenRepository) markUsed(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	if _, err := tx.Exec(ctx, `UPDATE auth_tokens SET used = true WHERE id = $1`, id); err != nil {
		return fmt.Errorf("mark token used: %w", err)
	}
	return nil
}

func (r *tokenRepository) findUserTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*user.User, error) {
	query := `SELECT` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(tx.QueryRow(ctx, query, id))
}
