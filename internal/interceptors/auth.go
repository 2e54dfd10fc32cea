// auth.go реализует проверку access-токена на границе gRPC.
package interceptors

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/pribylovaa/go-health-record/internal/service"
)

// ctxKey — приватный тип ключей контекста пакета.
type ctxKey int

const (
	ctxUserID ctxKey = iota
	ctxUserEmail
)

// TokenValidator проверяет access-токен и возвращает идентификатор
// и email пользователя. Реализуется service.Service.
type TokenValidator interface {
	ValidateToken(ctx context.Context, accessToken string) (uuid.UUID, string, error)
}

// UserIDFromContext возвращает идентификатор аутентифицированного пользователя,
// положенный интерсептором Auth. Второе значение — false, если метод был публичным.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	uid, ok := ctx.Value(ctxUserID).(uuid.UUID)
	return uid, ok
}

// UserEmailFromContext возвращает email аутентифицированного пользователя.
func UserEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(ctxUserEmail).(string)
	return email, ok
}

// Auth возвращает unary-интерсептор, требующий валидный Bearer access-токен
// для всех методов, кроме перечисленных в public (полные имена методов).
//
// Маппинг ошибок:
//   - отсутствующий/пустой заголовок -> codes.Unauthenticated, "missing access token";
//   - просроченный токен             -> codes.Unauthenticated, "access token expired";
//   - любой иной дефект токена       -> codes.Unauthenticated, "invalid access token".
//
// Просроченный и невалидный токены различаются в сообщении, чтобы клиент
// мог инициировать refresh без повторного логина.
func Auth(validator TokenValidator, public map[string]struct{}) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if _, ok := public[info.FullMethod]; ok {
			return handler(ctx, req)
		}

		token := bearerFromMetadata(ctx)
		if token == "" {
			return nil, status.Error(codes.Unauthenticated, "missing access token")
		}

		uid, email, err := validator.ValidateToken(ctx, token)
		if err != nil {
			if errors.Is(err, service.ErrTokenExpired) {
				return nil, status.Error(codes.Unauthenticated, "access token expired")
			}

			return nil, status.Error(codes.Unauthenticated, "invalid access token")
		}

		ctx = context.WithValue(ctx, ctxUserID, uid)
		ctx = context.WithValue(ctx, ctxUserEmail, email)

		return handler(ctx, req)
	}
}

// bearerFromMetadata извлекает "сырой" токен из authorization metadata.
// Схема "Bearer" нечувствительна к регистру.
func bearerFromMetadata(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}

	vals := md.Get("authorization")
	if len(vals) == 0 {
		return ""
	}

	const prefix = "bearer "
	auth := vals[0]
	if len(auth) <= len(prefix) || !strings.EqualFold(auth[:len(prefix)], prefix) {
		return ""
	}

	return strings.TrimSpace(auth[len(prefix):])
}
