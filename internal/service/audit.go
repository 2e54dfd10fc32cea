package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-health-record/internal/models"
	"github.com/pribylovaa/go-health-record/internal/pkg/log"
)

// recordAudit фиксирует событие аудита. Аудит вторичен по отношению
// к основной операции: ошибка записи логируется и никогда не влияет
// на её результат.
func (s *Service) recordAudit(ctx context.Context, userID uuid.UUID, resourceType, action string, resourceID *uuid.UUID) {
	event := &models.AuditEvent{
		ID:           uuid.New(),
		UserID:       userID,
		ResourceType: resourceType,
		Action:       action,
		ResourceID:   resourceID,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.storage.SaveAuditEvent(ctx, event); err != nil {
		log.From(ctx).Warn("audit_record_failed",
			slog.String("resource_type", resourceType),
			slog.String("action", action),
			slog.String("err", err.Error()),
		)
	}
}
