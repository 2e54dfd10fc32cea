// storage содержит контракты слоя хранилища health-record сервиса.
//
// Мягкое удаление моделируется явной меткой deleted_at: каждая читающая
// операция сама фильтрует tombstone-записи, без неявных переписываний
// запросов на уровне фреймворка.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-health-record/internal/models"
)

var (
	// ErrNotFound — запись не найдена (пользователь/токен/сущность).
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — нарушение уникальности (email/хэш токена).
	ErrAlreadyExists = errors.New("already exists")
)

// UserStorage выполняет операции над учётными записями.
type UserStorage interface {
	// SaveUser создаёт нового пользователя.
	SaveUser(ctx context.Context, user *models.User) error
	// UserByEmail находит пользователя по нормализованному email.
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	// UserByID находит пользователя по ID.
	UserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// RefreshTokenStorage выполняет операции над refresh-токенами.
type RefreshTokenStorage interface {
	// SaveRefreshToken сохраняет новый refresh-токен.
	SaveRefreshToken(ctx context.Context, token *models.RefreshToken) error
	// ConsumeRefreshToken атомарно помечает живую запись с данным хэшем
	// удалённой и возвращает её. Это точка сериализации ротации: из двух
	// конкурирующих вызовов с одним хэшем ровно один получит запись,
	// второй — ErrNotFound.
	ConsumeRefreshToken(ctx context.Context, hash string) (*models.RefreshToken, error)
	// InvalidateRefreshToken помечает запись удалённой, если она жива.
	// Отсутствие записи ошибкой не считается (идемпотентный logout).
	InvalidateRefreshToken(ctx context.Context, hash string) error
	// PurgeRefreshTokens физически удаляет записи, помеченные удалёнными
	// либо истёкшие раньше before. Возвращает число удалённых строк.
	PurgeRefreshTokens(ctx context.Context, before time.Time) (int64, error)
}

// EmergencyTokenStorage выполняет операции над экстренными токенами.
type EmergencyTokenStorage interface {
	// EmergencyTokenByUser возвращает запись токена пользователя.
	EmergencyTokenByUser(ctx context.Context, userID uuid.UUID) (*models.EmergencyToken, error)
	// UpsertEmergencyToken атомарно создаёт запись либо заменяет значение
	// токена существующей, выставляя active=true. Прежнее значение после
	// вызова необратимо недействительно.
	UpsertEmergencyToken(ctx context.Context, userID uuid.UUID, token string) (*models.EmergencyToken, error)
	// SetEmergencyTokenActive переключает флаг active без удаления записи.
	SetEmergencyTokenActive(ctx context.Context, userID uuid.UUID, active bool) error
	// ActiveEmergencyToken находит запись по буквальному значению токена
	// при active=true; всё остальное — ErrNotFound.
	ActiveEmergencyToken(ctx context.Context, token string) (*models.EmergencyToken, error)
}

// MedicalStorage — данные, которые собирает публичная экстренная проекция
// и в которые сервисный слой пишет зашифрованные поля.
type MedicalStorage interface {
	// UpsertProfile создаёт или обновляет профиль пользователя.
	UpsertProfile(ctx context.Context, profile *models.Profile) error
	// ProfileByUser возвращает профиль пользователя.
	ProfileByUser(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	// UpsertHealthInfo создаёт или обновляет медицинскую сводку.
	UpsertHealthInfo(ctx context.Context, info *models.HealthInfo) error
	// HealthInfoByUser возвращает медицинскую сводку пользователя.
	HealthInfoByUser(ctx context.Context, userID uuid.UUID) (*models.HealthInfo, error)
	// SaveAllergy добавляет аллергию.
	SaveAllergy(ctx context.Context, allergy *models.Allergy) error
	// AllergiesByUser возвращает аллергии в порядке создания.
	AllergiesByUser(ctx context.Context, userID uuid.UUID) ([]models.Allergy, error)
	// SaveMedication добавляет препарат.
	SaveMedication(ctx context.Context, medication *models.Medication) error
	// MedicationsByUser возвращает препараты в порядке создания.
	MedicationsByUser(ctx context.Context, userID uuid.UUID) ([]models.Medication, error)
	// SaveAddress добавляет адрес. Если адрес помечен основным, прежние
	// основные адреса пользователя атомарно теряют флаг.
	SaveAddress(ctx context.Context, address *models.Address) error
	// AddressesByUser возвращает адреса в порядке создания.
	AddressesByUser(ctx context.Context, userID uuid.UUID) ([]models.Address, error)
	// SaveEmergencyContact добавляет экстренный контакт.
	SaveEmergencyContact(ctx context.Context, contact *models.EmergencyContact) error
	// EmergencyContactsByUser возвращает контакты по возрастанию приоритета.
	EmergencyContactsByUser(ctx context.Context, userID uuid.UUID) ([]models.EmergencyContact, error)
}

// AuditStorage пишет события аудита. Чтение событий — задача
// внешних инструментов, сервису оно не нужно.
type AuditStorage interface {
	// SaveAuditEvent сохраняет событие аудита.
	SaveAuditEvent(ctx context.Context, event *models.AuditEvent) error
}

// Storage задаёт контракт работы с БД.
type Storage interface {
	UserStorage
	RefreshTokenStorage
	EmergencyTokenStorage
	MedicalStorage
	AuditStorage
	Close()
}
