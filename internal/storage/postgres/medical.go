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

// UpsertProfile создаёт или обновляет профиль пользователя.
// Чувствительные поля приходят сюда уже зашифрованными сервисным слоем.
func (s *Storage) UpsertProfile(ctx context.Context, profile *models.Profile) error {
	const op = "storage.postgres.UpsertProfile"

	q := `
		INSERT INTO profiles (user_id, full_name, phone, birth_date, workplace)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id)
		DO UPDATE SET
			full_name = EXCLUDED.full_name,
			phone = EXCLUDED.phone,
			birth_date = EXCLUDED.birth_date,
			workplace = EXCLUDED.workplace,
			updated_at = now()
	`

	_, err := s.db.Exec(ctx, q,
		profile.UserID,
		profile.FullName,
		profile.Phone,
		profile.BirthDate,
		profile.Workplace,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ProfileByUser возвращает профиль пользователя.
func (s *Storage) ProfileByUser(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	const op = "storage.postgres.ProfileByUser"

	q := `
		SELECT user_id, full_name, phone, birth_date, workplace, created_at, updated_at
		FROM profiles
		WHERE user_id = $1
	`

	var profile models.Profile
	err := s.db.QueryRow(ctx, q, userID).Scan(
		&profile.UserID,
		&profile.FullName,
		&profile.Phone,
		&profile.BirthDate,
		&profile.Workplace,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &profile, nil
}

// UpsertHealthInfo создаёт или обновляет медицинскую сводку.
func (s *Storage) UpsertHealthInfo(ctx context.Context, info *models.HealthInfo) error {
	const op = "storage.postgres.UpsertHealthInfo"

	q := `
		INSERT INTO health_info (user_id, blood_type, notes)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id)
		DO UPDATE SET
			blood_type = EXCLUDED.blood_type,
			notes = EXCLUDED.notes,
			updated_at = now()
	`

	if _, err := s.db.Exec(ctx, q, info.UserID, info.BloodType, info.Notes); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// HealthInfoByUser возвращает медицинскую сводку пользователя.
func (s *Storage) HealthInfoByUser(ctx context.Context, userID uuid.UUID) (*models.HealthInfo, error) {
	const op = "storage.postgres.HealthInfoByUser"

	q := `
		SELECT user_id, blood_type, notes, created_at, updated_at
		FROM health_info
		WHERE user_id = $1
	`

	var info models.HealthInfo
	err := s.db.QueryRow(ctx, q, userID).Scan(
		&info.UserID,
		&info.BloodType,
		&info.Notes,
		&info.CreatedAt,
		&info.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &info, nil
}

// SaveAllergy добавляет аллергию.
func (s *Storage) SaveAllergy(ctx context.Context, allergy *models.Allergy) error {
	const op = "storage.postgres.SaveAllergy"

	q := `
		INSERT INTO allergies (id, user_id, name, severity, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := s.db.Exec(ctx, q,
		allergy.ID,
		allergy.UserID,
		allergy.Name,
		allergy.Severity,
		allergy.Notes,
		allergy.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// AllergiesByUser возвращает аллергии пользователя в порядке создания.
func (s *Storage) AllergiesByUser(ctx context.Context, userID uuid.UUID) ([]models.Allergy, error) {
	const op = "storage.postgres.AllergiesByUser"

	q := `
		SELECT id, user_id, name, severity, notes, created_at
		FROM allergies
		WHERE user_id = $1
		ORDER BY created_at ASC
	`

	rows, err := s.db.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []models.Allergy
	for rows.Next() {
		var a models.Allergy
		if err := rows.Scan(&a.ID, &a.UserID, &a.Name, &a.Severity, &a.Notes, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// SaveMedication добавляет препарат.
func (s *Storage) SaveMedication(ctx context.Context, medication *models.Medication) error {
	const op = "storage.postgres.SaveMedication"

	q := `
		INSERT INTO medications (id, user_id, name, dosage, frequency, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := s.db.Exec(ctx, q,
		medication.ID,
		medication.UserID,
		medication.Name,
		medication.Dosage,
		medication.Frequency,
		medication.Notes,
		medication.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// MedicationsByUser возвращает препараты пользователя в порядке создания.
func (s *Storage) MedicationsByUser(ctx context.Context, userID uuid.UUID) ([]models.Medication, error) {
	const op = "storage.postgres.MedicationsByUser"

	q := `
		SELECT id, user_id, name, dosage, frequency, notes, created_at
		FROM medications
		WHERE user_id = $1
		ORDER BY created_at ASC
	`

	rows, err := s.db.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []models.Medication
	for rows.Next() {
		var m models.Medication
		if err := rows.Scan(&m.ID, &m.UserID, &m.Name, &m.Dosage, &m.Frequency, &m.Notes, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// SaveAddress добавляет адрес. Снятие флага с прежних основных адресов
// и вставка выполняются одним оператором, поэтому промежуточное состояние
// с двумя основными адресами снаружи не наблюдаемо.
func (s *Storage) SaveAddress(ctx context.Context, address *models.Address) error {
	const op = "storage.postgres.SaveAddress"

	q := `
		WITH demoted AS (
			UPDATE addresses
			SET is_primary = FALSE
			WHERE user_id = $2 AND is_primary AND $4::boolean
		)
		INSERT INTO addresses (id, user_id, label, is_primary, street, number, city, state, zip, country, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := s.db.Exec(ctx, q,
		address.ID,
		address.UserID,
		address.Label,
		address.Primary,
		address.Street,
		address.Number,
		address.City,
		address.State,
		address.Zip,
		address.Country,
		address.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// AddressesByUser возвращает адреса пользователя в порядке создания.
func (s *Storage) AddressesByUser(ctx context.Context, userID uuid.UUID) ([]models.Address, error) {
	const op = "storage.postgres.AddressesByUser"

	q := `
		SELECT id, user_id, label, is_primary, street, number, city, state, zip, country, created_at
		FROM addresses
		WHERE user_id = $1
		ORDER BY created_at ASC
	`

	rows, err := s.db.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []models.Address
	for rows.Next() {
		var a models.Address
		if err := rows.Scan(&a.ID, &a.UserID, &a.Label, &a.Primary, &a.Street, &a.Number, &a.City, &a.State, &a.Zip, &a.Country, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// SaveEmergencyContact добавляет экстренный контакт.
func (s *Storage) SaveEmergencyContact(ctx context.Context, contact *models.EmergencyContact) error {
	const op = "storage.postgres.SaveEmergencyContact"

	q := `
		INSERT INTO emergency_contacts (id, user_id, name, relationship, phone, priority, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := s.db.Exec(ctx, q,
		contact.ID,
		contact.UserID,
		contact.Name,
		contact.Relationship,
		contact.Phone,
		contact.Priority,
		contact.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// EmergencyContactsByUser возвращает контакты по возрастанию приоритета.
func (s *Storage) EmergencyContactsByUser(ctx context.Context, userID uuid.UUID) ([]models.EmergencyContact, error) {
	const op = "storage.postgres.EmergencyContactsByUser"

	q := `
		SELECT id, user_id, name, relationship, phone, priority, created_at
		FROM emergency_contacts
		WHERE user_id = $1
		ORDER BY priority ASC
	`

	rows, err := s.db.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []models.EmergencyContact
	for rows.Next() {
		var c models.EmergencyContact
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Relationship, &c.Phone, &c.Priority, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}
