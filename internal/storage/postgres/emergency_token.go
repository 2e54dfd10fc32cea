package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pribylovaa/go-health-record/internal/models"
	"github.com/pribylovaa/go-health-record/internal/storage"
)

// emergencyTokenColumns — единый список колонок таблицы emergency_tokens,
// используемый в SELECT/RETURNING, чтобы гарантировать одинаковый порядок сканирования.
const emergencyTokenColumns = `
user_id, token, active, created_at, updated_at
`

// scanEmergencyToken сканирует одну строку emergency_tokens в доменную модель.
func scanEmergencyToken(row pgx.Row) (*models.EmergencyToken, error) {
	var token models.EmergencyToken

	if err := row.Scan(
		&token.UserID,
		&token.Token,
		&token.Active,
		&token.CreatedAt,
		&token.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &token, nil
}

// EmergencyTokenByUser возвращает запись экстренного токена пользователя.
func (s *Storage) EmergencyTokenByUser(ctx context.Context, userID uuid.UUID) (*models.EmergencyToken, error) {
	const op = "storage.postgres.EmergencyTokenByUser"

	q := `SELECT ` + emergencyTokenColumns + ` FROM emergency_tokens WHERE user_id = $1`

	token, err := scanEmergencyToken(s.db.QueryRow(ctx, q, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return token, nil
}

// UpsertEmergencyToken атомарно создаёт запись либо заменяет значение токена,
// выставляя active=true. Уникальность «одна запись на пользователя»
// обеспечивается первичным ключом user_id; ON CONFLICT делает замену
// атомарной — прежнее значение перестаёт существовать в момент коммита.
func (s *Storage) UpsertEmergencyToken(ctx context.Context, userID uuid.UUID, token string) (*models.EmergencyToken, error) {
	const op = "storage.postgres.UpsertEmergencyToken"

	q := `
		INSERT INTO emergency_tokens (user_id, token, active)
		VALUES ($1, $2, TRUE)
		ON CONFLICT (user_id)
		DO UPDATE SET token = EXCLUDED.token, active = TRUE, updated_at = now()
		RETURNING ` + emergencyTokenColumns

	result, err := scanEmergencyToken(s.db.QueryRow(ctx, q, userID, token))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// SetEmergencyTokenActive переключает флаг active без удаления записи.
func (s *Storage) SetEmergencyTokenActive(ctx context.Context, userID uuid.UUID, active bool) error {
	const op = "storage.postgres.SetEmergencyTokenActive"

	q := `
		UPDATE emergency_tokens
		SET active = $2, updated_at = now()
		WHERE user_id = $1
	`

	cmdTag, err := s.db.Exec(ctx, q, userID, active)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// ActiveEmergencyToken находит запись по буквальному значению токена при
// active=true. Неверное значение и отключённый токен неразличимы: ErrNotFound.
func (s *Storage) ActiveEmergencyToken(ctx context.Context, token string) (*models.EmergencyToken, error) {
	const op = "storage.postgres.ActiveEmergencyToken"

	q := `SELECT ` + emergencyTokenColumns + ` FROM emergency_tokens WHERE token = $1 AND active = TRUE`

	result, err := scanEmergencyToken(s.db.QueryRow(ctx, q, token))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}
