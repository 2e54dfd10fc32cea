// service содержит бизнес-логику health-record сервиса: регистрацию и
// аутентификацию пользователей, выпуск/ротацию токенов, экстренный доступ
// и шифрование чувствительных полей перед записью в хранилище.
//
// Основные аспекты:
//   - Пакет не хранит состояние запроса внутри Service; экземпляр Service
//     безопасен для конкурентного использования из разных горутин при условии,
//     что переданное хранилище (storage.Storage) потокобезопасно.
//   - Ошибки возвращаются наружу со стабильными sentinel-значениями и далее
//     маппятся границей на транспортные коды (см. комментарии ниже).
package service

import (
	"errors"

	"github.com/pribylovaa/go-health-record/internal/config"
	"github.com/pribylovaa/go-health-record/internal/crypto"
	"github.com/pribylovaa/go-health-record/internal/storage"
)

var (
	// ErrInvalidCredentials — пара логин/пароль неверна или пользователь не найден.
	// Код и сообщение одинаковы для обоих случаев, чтобы не допускать
	// перечисления аккаунтов. Транспорт: codes.Unauthenticated (HTTP 401).
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailAlreadyRegistered — e-mail уже занят другим пользователем.
	// Транспорт: codes.AlreadyExists (HTTP 409).
	ErrEmailAlreadyRegistered = errors.New("email already registered")

	// ErrInvalidToken — access-токен некорректен по формату, подписи
	// или issuer. Транспорт: codes.Unauthenticated (HTTP 401).
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired — срок действия access-токена истёк. Отделён от
	// ErrInvalidToken: граница должна различать «истёк — обнови» и
	// «недействителен — аутентифицируйся заново».
	ErrTokenExpired = errors.New("token expired")

	// ErrInvalidRefreshToken — refresh-токен не найден, уже использован
	// или истёк. Все три случая для вызывающего неразличимы.
	// Транспорт: codes.Unauthenticated (HTTP 401).
	ErrInvalidRefreshToken = errors.New("invalid refresh token")

	// ErrNotFound — экстренный токен не найден либо отключён; также
	// отсутствующая сущность при чтении. Транспорт: codes.NotFound (HTTP 404).
	ErrNotFound = errors.New("not found")

	// ErrRefreshTokenCollision — исчерпаны попытки сгенерировать уникальный
	// refresh-токен (редчайшие коллизии хэша при сохранении в БД).
	// Транспорт: codes.Internal (HTTP 500).
	ErrRefreshTokenCollision = errors.New("refresh token collision")
)

// Service описывает бизнес-логику health-record сервиса.
type Service struct {
	storage storage.Storage
	cfg     config.AuthConfig
	cipher  *crypto.Cipher
}

// New создаёт новый экземпляр Service.
func New(storage storage.Storage, cfg config.AuthConfig, cipher *crypto.Cipher) *Service {
	return &Service{
		storage: storage,
		cfg:     cfg,
		cipher:  cipher,
	}
}
