package models

import (
	"time"

	"github.com/google/uuid"
)

// Чувствительные свободнотекстовые поля (Phone, Workplace, Notes и т.п.)
// объявлены как *string: nil означает «значение не задано». В БД такие поля
// лежат в зашифрованном виде; шифрование/дешифрование выполняет сервисный
// слой, хранилище оперирует уже готовыми конвертами.

// Profile — профиль пользователя, создаётся при регистрации.
type Profile struct {
	UserID    uuid.UUID
	FullName  *string
	Phone     *string
	BirthDate *string
	Workplace *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HealthInfo — сводные медицинские данные пользователя.
type HealthInfo struct {
	UserID    uuid.UUID
	BloodType string
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Allergy — аллергия пользователя.
type Allergy struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Severity  string
	Notes     *string
	CreatedAt time.Time
}

// Medication — принимаемый препарат.
type Medication struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Dosage    string
	Frequency string
	Notes     *string
	CreatedAt time.Time
}

// Address — почтовый адрес пользователя. Улица, номер дома и индекс
// зашифрованы при хранении; город, регион и страна лежат открыто.
type Address struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Label     string
	Primary   bool
	Street    *string
	Number    *string
	City      *string
	State     *string
	Zip       *string
	Country   *string
	CreatedAt time.Time
}

// EmergencyContact — контакт для экстренной связи.
type EmergencyContact struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Name         string
	Relationship string
	Phone        string
	Priority     int32
	CreatedAt    time.Time
}
