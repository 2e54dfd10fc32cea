package models

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken — запись refresh-токена.
//
// В БД хранится только хэш (sha256 → base64) исходного значения;
// само значение существует лишь в ответе клиенту. DeletedAt — маркер
// мягкого удаления: выставляется при ротации, logout и истечении срока,
// физическое удаление выполняет периодическая чистка.
type RefreshToken struct {
	TokenHash string
	UserID    uuid.UUID
	CreatedAt time.Time
	ExpiresAt time.Time
	DeletedAt *time.Time
}
