package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-health-record/internal/models"
)

// Тесты на запись аудита медицинских операций.
//
// Покрытие:
//  - создание ресурса фиксируется с типом, действием и ID ресурса;
//  - чтение списка фиксируется без ID ресурса;
//  - ошибка записи аудита не влияет на результат основной операции.

// TestAudit_RecordedOnCreate —
// добавление аллергии пишет событие CREATE с ID созданной записи.
func TestAudit_RecordedOnCreate(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	uid := uuid.New()
	var event *models.AuditEvent

	st.EXPECT().SaveAllergy(gomock.Any(), gomock.Any()).Return(nil)
	st.EXPECT().SaveAuditEvent(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e *models.AuditEvent) error {
			event = e
			return nil
		})

	got, err := svc.AddAllergy(context.Background(), &models.Allergy{
		UserID: uid,
		Name:   "Penicillin",
	})
	require.NoError(t, err)

	require.NotNil(t, event)
	require.Equal(t, uid, event.UserID)
	require.Equal(t, models.AuditResourceAllergy, event.ResourceType)
	require.Equal(t, models.AuditActionCreate, event.Action)
	require.NotNil(t, event.ResourceID)
	require.Equal(t, got.ID, *event.ResourceID)
	require.NotEqual(t, uuid.Nil, event.ID)
	require.False(t, event.CreatedAt.IsZero())
}

// TestAudit_RecordedOnRead —
// чтение списка препаратов пишет событие READ без ID ресурса.
func TestAudit_RecordedOnRead(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	uid := uuid.New()
	var event *models.AuditEvent

	st.EXPECT().SaveAuditEvent(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e *models.AuditEvent) error {
			event = e
			return nil
		})
	st.EXPECT().MedicationsByUser(gomock.Any(), uid).Return(nil, nil)

	_, err := svc.Medications(context.Background(), uid)
	require.NoError(t, err)

	require.NotNil(t, event)
	require.Equal(t, models.AuditResourceMedication, event.ResourceType)
	require.Equal(t, models.AuditActionRead, event.Action)
	require.Nil(t, event.ResourceID)
}

// TestAudit_FailureDoesNotAffectOperation —
// недоступность таблицы аудита не мешает основной операции.
func TestAudit_FailureDoesNotAffectOperation(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	uid := uuid.New()
	auditErr := errors.New("audit table gone")

	st.EXPECT().SaveEmergencyContact(gomock.Any(), gomock.Any()).Return(nil)
	st.EXPECT().SaveAuditEvent(gomock.Any(), gomock.Any()).Return(auditErr)

	got, err := svc.AddEmergencyContact(context.Background(), &models.EmergencyContact{
		UserID: uid,
		Name:   "Anna",
		Phone:  "+7 911 000-00-00",
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, got.ID)

	st.EXPECT().SaveAuditEvent(gomock.Any(), gomock.Any()).Return(auditErr)
	st.EXPECT().EmergencyContactsByUser(gomock.Any(), uid).Return([]models.EmergencyContact{*got}, nil)

	contacts, err := svc.EmergencyContacts(context.Background(), uid)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
}
