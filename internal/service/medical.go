package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-health-record/internal/models"
	"github.com/pribylovaa/go-health-record/internal/storage"
)

// Операции над медицинскими данными. Валидация доменных полей (длины,
// перечисления) выполняется на границе и сюда не входит; задача этого
// слоя — шифрование чувствительных полей перед записью и дешифрование
// при чтении.

// UpdateProfile сохраняет профиль пользователя, шифруя телефон, дату
// рождения и место работы.
func (s *Service) UpdateProfile(ctx context.Context, profile *models.Profile) error {
	const op = "service.medical.UpdateProfile"

	phone, err := s.cipher.Encrypt(profile.Phone)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	birthDate, err := s.cipher.Encrypt(profile.BirthDate)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	workplace, err := s.cipher.Encrypt(profile.Workplace)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	stored := &models.Profile{
		UserID:    profile.UserID,
		FullName:  profile.FullName,
		Phone:     phone,
		BirthDate: birthDate,
		Workplace: workplace,
	}

	if err := s.storage.UpsertProfile(ctx, stored); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Profile возвращает профиль пользователя с расшифрованными полями.
// Повреждённый конверт деградирует до отсутствующего значения.
func (s *Service) Profile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	const op = "service.medical.Profile"

	profile, err := s.storage.ProfileByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	profile.Phone = s.cipher.Decrypt(profile.Phone)
	profile.BirthDate = s.cipher.Decrypt(profile.BirthDate)
	profile.Workplace = s.cipher.Decrypt(profile.Workplace)

	return profile, nil
}

// UpdateHealthInfo сохраняет медицинскую сводку, шифруя заметки.
func (s *Service) UpdateHealthInfo(ctx context.Context, info *models.HealthInfo) error {
	const op = "service.medical.UpdateHealthInfo"

	notes, err := s.cipher.Encrypt(info.Notes)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	stored := &models.HealthInfo{
		UserID:    info.UserID,
		BloodType: info.BloodType,
		Notes:     notes,
	}

	if err := s.storage.UpsertHealthInfo(ctx, stored); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// HealthInfo возвращает медицинскую сводку с расшифрованными заметками.
func (s *Service) HealthInfo(ctx context.Context, userID uuid.UUID) (*models.HealthInfo, error) {
	const op = "service.medical.HealthInfo"

	info, err := s.storage.HealthInfoByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	info.Notes = s.cipher.Decrypt(info.Notes)

	return info, nil
}

// AddAllergy добавляет аллергию, шифруя заметки.
func (s *Service) AddAllergy(ctx context.Context, allergy *models.Allergy) (*models.Allergy, error) {
	const op = "service.medical.AddAllergy"

	notes, err := s.cipher.Encrypt(allergy.Notes)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	stored := &models.Allergy{
		ID:        uuid.New(),
		UserID:    allergy.UserID,
		Name:      allergy.Name,
		Severity:  allergy.Severity,
		Notes:     notes,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.storage.SaveAllergy(ctx, stored); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.recordAudit(ctx, stored.UserID, models.AuditResourceAllergy, models.AuditActionCreate, &stored.ID)

	result := *stored
	result.Notes = allergy.Notes

	return &result, nil
}

// Allergies возвращает аллергии пользователя с расшифрованными заметками.
func (s *Service) Allergies(ctx context.Context, userID uuid.UUID) ([]models.Allergy, error) {
	const op = "service.medical.Allergies"

	s.recordAudit(ctx, userID, models.AuditResourceAllergy, models.AuditActionRead, nil)

	allergies, err := s.storage.AllergiesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i := range allergies {
		allergies[i].Notes = s.cipher.Decrypt(allergies[i].Notes)
	}

	return allergies, nil
}

// AddMedication добавляет препарат, шифруя заметки.
func (s *Service) AddMedication(ctx context.Context, medication *models.Medication) (*models.Medication, error) {
	const op = "service.medical.AddMedication"

	notes, err := s.cipher.Encrypt(medication.Notes)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	stored := &models.Medication{
		ID:        uuid.New(),
		UserID:    medication.UserID,
		Name:      medication.Name,
		Dosage:    medication.Dosage,
		Frequency: medication.Frequency,
		Notes:     notes,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.storage.SaveMedication(ctx, stored); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.recordAudit(ctx, stored.UserID, models.AuditResourceMedication, models.AuditActionCreate, &stored.ID)

	result := *stored
	result.Notes = medication.Notes

	return &result, nil
}

// Medications возвращает препараты пользователя с расшифрованными заметками.
func (s *Service) Medications(ctx context.Context, userID uuid.UUID) ([]models.Medication, error) {
	const op = "service.medical.Medications"

	s.recordAudit(ctx, userID, models.AuditResourceMedication, models.AuditActionRead, nil)

	medications, err := s.storage.MedicationsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i := range medications {
		medications[i].Notes = s.cipher.Decrypt(medications[i].Notes)
	}

	return medications, nil
}

// AddAddress добавляет адрес, шифруя улицу, номер дома и почтовый индекс.
// Город, регион и страна в шифровании не нуждаются: по ним адрес не
// восстанавливается. Метка приводится к канонической форме (HOME, WORK).
func (s *Service) AddAddress(ctx context.Context, address *models.Address) (*models.Address, error) {
	const op = "service.medical.AddAddress"

	street, err := s.cipher.Encrypt(address.Street)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	number, err := s.cipher.Encrypt(address.Number)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	zip, err := s.cipher.Encrypt(address.Zip)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	stored := &models.Address{
		ID:        uuid.New(),
		UserID:    address.UserID,
		Label:     strings.ToUpper(strings.TrimSpace(address.Label)),
		Primary:   address.Primary,
		Street:    street,
		Number:    number,
		City:      address.City,
		State:     address.State,
		Zip:       zip,
		Country:   address.Country,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.storage.SaveAddress(ctx, stored); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result := *stored
	result.Street = address.Street
	result.Number = address.Number
	result.Zip = address.Zip

	return &result, nil
}

// Addresses возвращает адреса пользователя с расшифрованными полями.
func (s *Service) Addresses(ctx context.Context, userID uuid.UUID) ([]models.Address, error) {
	const op = "service.medical.Addresses"

	addresses, err := s.storage.AddressesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i := range addresses {
		addresses[i].Street = s.cipher.Decrypt(addresses[i].Street)
		addresses[i].Number = s.cipher.Decrypt(addresses[i].Number)
		addresses[i].Zip = s.cipher.Decrypt(addresses[i].Zip)
	}

	return addresses, nil
}

// AddEmergencyContact добавляет экстренный контакт. Поля контакта входят
// в публичную экстренную проекцию целиком и потому не шифруются.
func (s *Service) AddEmergencyContact(ctx context.Context, contact *models.EmergencyContact) (*models.EmergencyContact, error) {
	const op = "service.medical.AddEmergencyContact"

	stored := &models.EmergencyContact{
		ID:           uuid.New(),
		UserID:       contact.UserID,
		Name:         contact.Name,
		Relationship: contact.Relationship,
		Phone:        contact.Phone,
		Priority:     contact.Priority,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.storage.SaveEmergencyContact(ctx, stored); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.recordAudit(ctx, stored.UserID, models.AuditResourceEmergencyContact, models.AuditActionCreate, &stored.ID)

	return stored, nil
}

// EmergencyContacts возвращает контакты по возрастанию приоритета.
func (s *Service) EmergencyContacts(ctx context.Context, userID uuid.UUID) ([]models.EmergencyContact, error) {
	const op = "service.medical.EmergencyContacts"

	s.recordAudit(ctx, userID, models.AuditResourceEmergencyContact, models.AuditActionRead, nil)

	contacts, err := s.storage.EmergencyContactsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return contacts, nil
}
