// models содержит доменные сущности health-record сервиса.
// Эти типы используются слоями бизнес-логики и хранилища.
package models

import (
	"time"

	"github.com/google/uuid"
)

// UserStatus — статус учётной записи.
type UserStatus string

const (
	UserStatusActive  UserStatus = "ACTIVE"
	UserStatusRetired UserStatus = "RETIRED"
)

// User — учётная запись пользователя (credential principal).
//
// Запись никогда не удаляется физически: деактивация выполняется
// сменой статуса на RETIRED (soft-retire).
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Status       UserStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
