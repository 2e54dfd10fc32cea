package postgres

import (
	"context"
	"fmt"

	"github.com/pribylovaa/go-health-record/internal/models"
)

// SaveAuditEvent сохраняет событие аудита.
func (s *Storage) SaveAuditEvent(ctx context.Context, event *models.AuditEvent) error {
	const op = "storage.postgres.SaveAuditEvent"

	q := `
		INSERT INTO audit_events (id, user_id, resource_type, action, resource_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := s.db.Exec(ctx, q,
		event.ID,
		event.UserID,
		event.ResourceType,
		event.Action,
		event.ResourceID,
		event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
