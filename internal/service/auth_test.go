package service

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-health-record/internal/config"
	"github.com/pribylovaa/go-health-record/internal/crypto"
	"github.com/pribylovaa/go-health-record/internal/models"
	"github.com/pribylovaa/go-health-record/internal/storage"
	"github.com/pribylovaa/go-health-record/mocks"
)

func testCfg() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:       "unit-secret",
		AccessTokenTTL:  30 * time.Second,
		RefreshTokenTTL: 24 * time.Hour,
		Issuer:          "health-record-api",
	}
}

func testCipher(t *testing.T) *crypto.Cipher {
	t.Helper()
	raw := make([]byte, 32)
	for i := range raw {
		raw[i] = byte(i + 1)
	}
	c, err := crypto.New(base64.StdEncoding.EncodeToString(raw))
	require.NoError(t, err)
	return c
}

func newSvc(t *testing.T) (*Service, *mocks.MockStorage, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStorage(ctrl)
	svc := New(st, testCfg(), testCipher(t))
	return svc, st, ctrl
}

func mustHashPW(t *testing.T, pw string) string {
	t.Helper()
	h, err := hashPassword(pw)
	require.NoError(t, err)
	return h
}

func TestRegisterUser_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()
	email := "User@Example.com"
	norm := "user@example.com"
	pw := "Abcdef1!"

	// Сначала UserByEmail → ErrNotFound, потом SaveUser и профиль,
	// затем выпуск пары (SaveRefreshToken).
	st.EXPECT().UserByEmail(gomock.Any(), norm).Return(nil, storage.ErrNotFound)
	st.EXPECT().SaveUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u *models.User) error {
			require.Equal(t, norm, u.Email)
			require.Equal(t, models.UserStatusActive, u.Status)
			require.NotEqual(t, uuid.Nil, u.ID)
			return nil
		})
	st.EXPECT().UpsertProfile(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *models.Profile) error {
			require.NotNil(t, p.FullName)
			require.Equal(t, "Ivan Petrov", *p.FullName)
			return nil
		})
	st.EXPECT().SaveRefreshToken(gomock.Any(), gomock.Any()).Return(nil)

	tp, uid, err := svc.RegisterUser(ctx, email, pw, "  Ivan Petrov  ")
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, uid)
	require.NotEmpty(t, tp.AccessToken)
	require.NotEmpty(t, tp.RefreshToken)

	require.WithinDuration(t, time.Now().Add(svc.cfg.AccessTokenTTL), tp.AccessExpiresAt, 2*time.Second)
}

func TestRegisterUser_EmailAlreadyExists_OnLookup(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	// Если UserByEmail вернул пользователя (err == nil) — email занят.
	st.EXPECT().UserByEmail(gomock.Any(), "user@example.com").
		Return(&models.User{ID: uuid.New(), Email: "user@example.com"}, nil)

	_, _, err := svc.RegisterUser(context.Background(), "user@example.com", "Abcdef1!", "")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrEmailAlreadyRegistered)
}

func TestRegisterUser_DuplicateEmail_CaseInsensitive(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	// Email нормализуется до нижнего регистра ещё до обращения к хранилищу.
	st.EXPECT().UserByEmail(gomock.Any(), "user@example.com").
		Return(&models.User{ID: uuid.New(), Email: "user@example.com"}, nil)

	_, _, err := svc.RegisterUser(context.Background(), "  USER@Example.COM ", "Abcdef1!", "")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrEmailAlreadyRegistered)
}

func TestRegisterUser_UniqueViolation_OnSave(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	// Гонка двух регистраций: проверка прошла, вставка упёрлась в уникальность.
	st.EXPECT().UserByEmail(gomock.Any(), "user@example.com").Return(nil, storage.ErrNotFound)
	st.EXPECT().SaveUser(gomock.Any(), gomock.Any()).Return(storage.ErrAlreadyExists)

	_, _, err := svc.RegisterUser(context.Background(), "user@example.com", "Abcdef1!", "")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrEmailAlreadyRegistered)
}

func TestRegisterUser_StorageLookupError_Propagated(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().UserByEmail(gomock.Any(), "user@example.com").
		Return(nil, errors.New("db down"))

	_, _, err := svc.RegisterUser(context.Background(), "user@example.com", "Abcdef1!", "")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrEmailAlreadyRegistered)
}

func TestLoginUser_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	pw := "Abcdef1!"
	user := &models.User{
		ID:           uuid.New(),
		Email:        "user@example.com",
		PasswordHash: mustHashPW(t, pw),
		Status:       models.UserStatusActive,
	}

	st.EXPECT().UserByEmail(gomock.Any(), "user@example.com").Return(user, nil)
	st.EXPECT().SaveRefreshToken(gomock.Any(), gomock.Any()).Return(nil)

	tp, uid, err := svc.LoginUser(context.Background(), " User@Example.com ", pw)
	require.NoError(t, err)
	require.Equal(t, user.ID, uid)
	require.NotEmpty(t, tp.AccessToken)
	require.NotEmpty(t, tp.RefreshToken)
}

func TestLoginUser_UnknownEmail_SameErrorAsWrongPassword(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().UserByEmail(gomock.Any(), "ghost@example.com").Return(nil, storage.ErrNotFound)

	_, _, errUnknown := svc.LoginUser(context.Background(), "ghost@example.com", "whatever")
	require.ErrorIs(t, errUnknown, ErrInvalidCredentials)

	user := &models.User{
		ID:           uuid.New(),
		Email:        "user@example.com",
		PasswordHash: mustHashPW(t, "Correct1!"),
	}
	st.EXPECT().UserByEmail(gomock.Any(), "user@example.com").Return(user, nil)

	// Неизвестный email и неверный пароль неразличимы для клиента.
	_, _, errWrongPW := svc.LoginUser(context.Background(), "user@example.com", "Wrong1!")
	require.ErrorIs(t, errWrongPW, ErrInvalidCredentials)
}

func TestLoginUser_StorageError_Propagated(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().UserByEmail(gomock.Any(), "user@example.com").Return(nil, errors.New("db down"))

	_, _, err := svc.LoginUser(context.Background(), "user@example.com", "pw")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshTokens_OK_RotatesValue(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	user := &models.User{ID: uuid.New(), Email: "user@example.com"}
	plain := "presented-refresh-token"
	now := time.Now().UTC()

	st.EXPECT().ConsumeRefreshToken(gomock.Any(), hashRefreshToken(plain)).Return(&models.RefreshToken{
		TokenHash: hashRefreshToken(plain),
		UserID:    user.ID,
		CreatedAt: now.Add(-time.Hour),
		ExpiresAt: now.Add(time.Hour),
	}, nil)
	st.EXPECT().UserByID(gomock.Any(), user.ID).Return(user, nil)
	st.EXPECT().SaveRefreshToken(gomock.Any(), gomock.Any()).Return(nil)

	tp, uid, err := svc.RefreshTokens(context.Background(), plain)
	require.NoError(t, err)
	require.Equal(t, user.ID, uid)
	require.NotEmpty(t, tp.RefreshToken)

	// Новое значение не совпадает с предъявленным.
	require.NotEqual(t, plain, tp.RefreshToken)
}

func TestRefreshTokens_UnknownToken(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().ConsumeRefreshToken(gomock.Any(), gomock.Any()).Return(nil, storage.ErrNotFound)

	_, _, err := svc.RefreshTokens(context.Background(), "unknown-token")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestRefreshTokens_ExpiredToken(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	plain := "expired-token"
	now := time.Now().UTC()

	// Истёкшая запись поглощается при первом предъявлении, но пары не даёт.
	st.EXPECT().ConsumeRefreshToken(gomock.Any(), hashRefreshToken(plain)).Return(&models.RefreshToken{
		TokenHash: hashRefreshToken(plain),
		UserID:    uuid.New(),
		CreatedAt: now.Add(-48 * time.Hour),
		ExpiresAt: now.Add(-time.Minute),
	}, nil)

	_, _, err := svc.RefreshTokens(context.Background(), plain)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestRefreshTokens_UserGone(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	plain := "orphan-token"
	now := time.Now().UTC()
	userID := uuid.New()

	st.EXPECT().ConsumeRefreshToken(gomock.Any(), hashRefreshToken(plain)).Return(&models.RefreshToken{
		TokenHash: hashRefreshToken(plain),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}, nil)
	st.EXPECT().UserByID(gomock.Any(), userID).Return(nil, storage.ErrNotFound)

	_, _, err := svc.RefreshTokens(context.Background(), plain)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestLogout_Idempotent(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	plain := "some-refresh-token"

	// Хранилище не возвращает ошибку для отсутствующей записи —
	// повторный logout так же успешен, как первый.
	st.EXPECT().InvalidateRefreshToken(gomock.Any(), hashRefreshToken(plain)).Return(nil).Times(2)

	require.NoError(t, svc.Logout(context.Background(), plain))
	require.NoError(t, svc.Logout(context.Background(), plain))
}

func TestLogout_StorageError_Propagated(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().InvalidateRefreshToken(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	require.Error(t, svc.Logout(context.Background(), "token"))
}

func TestValidateToken_RoundTrip(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	user := &models.User{
		ID:           uuid.New(),
		Email:        "user@example.com",
		PasswordHash: mustHashPW(t, "Abcdef1!"),
	}

	st.EXPECT().UserByEmail(gomock.Any(), "user@example.com").Return(user, nil)
	st.EXPECT().SaveRefreshToken(gomock.Any(), gomock.Any()).Return(nil)

	tp, _, err := svc.LoginUser(context.Background(), "user@example.com", "Abcdef1!")
	require.NoError(t, err)

	uid, email, err := svc.ValidateToken(context.Background(), tp.AccessToken)
	require.NoError(t, err)
	require.Equal(t, user.ID, uid)
	require.Equal(t, user.Email, email)
}
