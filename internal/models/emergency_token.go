package models

import (
	"time"

	"github.com/google/uuid"
)

// EmergencyToken — экстренный токен доступа.
//
// В отличие от refresh-токена значение хранится в открытом виде:
// токен предназначен для передачи третьим лицам (QR-код, браслет),
// восстановить его из хэша было бы невозможно. Ровно одна запись
// на пользователя; флаг Active позволяет отключить токен без удаления.
type EmergencyToken struct {
	UserID    uuid.UUID
	Token     string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
