package models

import (
	"time"

	"github.com/google/uuid"
)

// AuditEvent — событие аудита: кто, над каким типом ресурса и какое
// действие выполнил. Чувствительные значения сюда не попадают никогда,
// только идентификаторы.
type AuditEvent struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	ResourceType string
	Action       string
	ResourceID   *uuid.UUID
	CreatedAt    time.Time
}

// Типы ресурсов и действия, фиксируемые в аудите.
const (
	AuditResourceAllergy          = "ALLERGY"
	AuditResourceMedication       = "MEDICATION"
	AuditResourceEmergencyContact = "EMERGENCY_CONTACT"

	AuditActionCreate = "CREATE"
	AuditActionRead   = "READ"
)
