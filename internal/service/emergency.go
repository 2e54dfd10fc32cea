package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-health-record/internal/models"
	"github.com/pribylovaa/go-health-record/internal/pkg/log"
	"github.com/pribylovaa/go-health-record/internal/storage"
)

// defaultBloodType — значение в публичной проекции, когда группа крови
// неизвестна.
const defaultBloodType = "UNKNOWN"

// EmergencyToken возвращает экстренный токен пользователя, лениво создавая
// его при первом обращении.
func (s *Service) EmergencyToken(ctx context.Context, userID uuid.UUID) (*models.EmergencyToken, error) {
	const op = "service.emergency.EmergencyToken"

	token, err := s.storage.EmergencyTokenByUser(ctx, userID)
	if err == nil {
		return token, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	value, err := generateOpaqueValue()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	token, err = s.storage.UpsertEmergencyToken(ctx, userID, value)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Info("emergency_token_created",
		slog.String("op", op),
		slog.String("user_id", userID.String()),
	)

	return token, nil
}

// RegenerateEmergencyToken атомарно заменяет значение токена свежей
// случайностью и включает его, существовала запись или нет. Прежнее
// значение немедленно и необратимо перестаёт действовать.
func (s *Service) RegenerateEmergencyToken(ctx context.Context, userID uuid.UUID) (*models.EmergencyToken, error) {
	const op = "service.emergency.RegenerateEmergencyToken"

	value, err := generateOpaqueValue()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	token, err := s.storage.UpsertEmergencyToken(ctx, userID, value)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Info("emergency_token_regenerated",
		slog.String("op", op),
		slog.String("user_id", userID.String()),
	)

	return token, nil
}

// DeactivateEmergencyToken отключает токен, не удаляя запись:
// значение сохраняется и может быть включено обратно.
func (s *Service) DeactivateEmergencyToken(ctx context.Context, userID uuid.UUID) error {
	const op = "service.emergency.DeactivateEmergencyToken"

	if err := s.storage.SetEmergencyTokenActive(ctx, userID, false); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ResolveEmergencyToken разрешает экстренный токен в публичную проекцию.
//
// Путь не требует аутентификации: обладание токеном и есть полномочие.
// Неверное значение, отключённый токен и отсутствующая запись дают один
// и тот же ErrNotFound. Заметки аллергий и препаратов в проекцию не
// попадают никогда.
func (s *Service) ResolveEmergencyToken(ctx context.Context, token string) (*models.EmergencyView, error) {
	const op = "service.emergency.ResolveEmergencyToken"

	record, err := s.storage.ActiveEmergencyToken(ctx, token)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	userID := record.UserID
	view := &models.EmergencyView{BloodType: defaultBloodType}

	profile, err := s.storage.ProfileByUser(ctx, userID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if profile != nil {
		view.FullName = profile.FullName
		view.Phone = s.cipher.Decrypt(profile.Phone)
	}

	health, err := s.storage.HealthInfoByUser(ctx, userID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if health != nil && health.BloodType != "" {
		view.BloodType = health.BloodType
	}

	allergies, err := s.storage.AllergiesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	for _, a := range allergies {
		view.Allergies = append(view.Allergies, models.EmergencyAllergy{
			Name:     a.Name,
			Severity: a.Severity,
		})
	}

	medications, err := s.storage.MedicationsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	for _, m := range medications {
		view.Medications = append(view.Medications, models.EmergencyMedication{
			Name:      m.Name,
			Dosage:    m.Dosage,
			Frequency: m.Frequency,
		})
	}

	// Контакты отдаются полностью, хранилище сортирует по приоритету.
	contacts, err := s.storage.EmergencyContactsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	view.Contacts = contacts

	return view, nil
}
