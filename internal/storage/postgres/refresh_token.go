package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pribylovaa/go-health-record/internal/models"
	"github.com/pribylovaa/go-health-record/internal/storage"
)

// SaveRefreshToken сохраняет новый refresh-токен в БД.
func (s *Storage) SaveRefreshToken(ctx context.Context, token *models.RefreshToken) error {
	const op = "storage.postgres.SaveRefreshToken"

	query := `
        INSERT INTO refresh_tokens(token_hash, user_id, created_at, expires_at, deleted_at)
        VALUES ($1, $2, $3, $4, NULL)
    `

	_, err := s.db.Exec(ctx, query,
		token.TokenHash,
		token.UserID,
		token.CreatedAt,
		token.ExpiresAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ConsumeRefreshToken атомарно помечает живую запись удалённой и возвращает её.
//
// Условный UPDATE по deleted_at IS NULL — точка сериализации ротации:
// из двух конкурирующих вызовов выиграет ровно один, второй не увидит
// ни одной строки и получит storage.ErrNotFound.
func (s *Storage) ConsumeRefreshToken(ctx context.Context, hash string) (*models.RefreshToken, error) {
	const op = "storage.postgres.ConsumeRefreshToken"

	query := `
		UPDATE refresh_tokens
		SET deleted_at = now()
		WHERE token_hash = $1 AND deleted_at IS NULL
		RETURNING token_hash, user_id, created_at, expires_at, deleted_at
	`

	var token models.RefreshToken
	err := s.db.QueryRow(ctx, query, hash).Scan(
		&token.TokenHash,
		&token.UserID,
		&token.CreatedAt,
		&token.ExpiresAt,
		&token.DeletedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &token, nil
}

// InvalidateRefreshToken помечает запись удалённой, если она ещё жива.
// Отсутствие записи не является ошибкой: logout идемпотентен и не должен
// раскрывать, был ли токен действителен.
func (s *Storage) InvalidateRefreshToken(ctx context.Context, hash string) error {
	const op = "storage.postgres.InvalidateRefreshToken"

	query := `
		UPDATE refresh_tokens
		SET deleted_at = now()
		WHERE token_hash = $1 AND deleted_at IS NULL
	`

	if _, err := s.db.Exec(ctx, query, hash); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// PurgeRefreshTokens физически удаляет tombstone-записи, отозванные раньше
// before, и записи, истёкшие раньше before. Возвращает число удалённых строк.
// Свежие tombstone-записи сохраняются: по ним видно повторное предъявление
// уже использованного токена.
func (s *Storage) PurgeRefreshTokens(ctx context.Context, before time.Time) (int64, error) {
	const op = "storage.postgres.PurgeRefreshTokens"

	query := `
        DELETE FROM refresh_tokens
        WHERE (deleted_at IS NOT NULL AND deleted_at < $1) OR expires_at < $1
    `

	cmdTag, err := s.db.Exec(ctx, query, before)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return cmdTag.RowsAffected(), nil
}
