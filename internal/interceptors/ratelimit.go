// ratelimit.go реализует лимитирование аутентификационных вызовов по клиенту.
package interceptors

import (
	"context"
	"log/slog"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"github.com/pribylovaa/go-health-record/internal/pkg/log"
	"github.com/pribylovaa/go-health-record/internal/ratelimit"
)

// RateLimit возвращает unary-интерсептор, ограничивающий частоту вызовов
// методов из limited по ключу клиента. Ключ строится из первой записи
// x-forwarded-for (если прокси его проставил), иначе из адреса peer.
//
// Превышение лимита отвечает codes.ResourceExhausted без вызова handler:
// стоимость отклонённого запроса — только поиск бакета.
func RateLimit(limiter *ratelimit.Limiter, limited map[string]struct{}) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if limiter == nil {
			return handler(ctx, req)
		}

		if _, ok := limited[info.FullMethod]; !ok {
			return handler(ctx, req)
		}

		key := clientKeyFromContext(ctx)
		if !limiter.Allow(key) {
			log.From(ctx).Warn("rate_limited",
				slog.String("method", info.FullMethod),
				slog.String("client", key),
			)

			return nil, status.Error(codes.ResourceExhausted, "too many requests")
		}

		return handler(ctx, req)
	}
}

// clientKeyFromContext собирает ключ клиента из metadata и peer.
func clientKeyFromContext(ctx context.Context) string {
	var forwarded string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if v := md.Get("x-forwarded-for"); len(v) > 0 {
			forwarded = v[0]
		}
	}

	var peerAddr string
	if p, ok := peer.FromContext(ctx); ok && p != nil && p.Addr != nil {
		peerAddr = p.Addr.String()
	}

	return ratelimit.ClientKey(forwarded, peerAddr)
}
