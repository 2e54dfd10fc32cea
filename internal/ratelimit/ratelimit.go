// ratelimit ограничивает частоту запросов к auth-эндпоинтам по ключу клиента.
//
// Каждый ключ получает независимый token bucket с непрерывным пополнением:
// устоявшаяся пропускная способность равна сконфигурированной частоте,
// всплески до ёмкости корзины проходят мгновенно. Между корзинами нет
// никакой координации, поэтому общий mutex защищает только саму карту,
// а не счётчики — центральной точкой конкуренции он не становится.
//
// Корзины создаются лениво при первом обращении и живут до конца процесса;
// вытеснения нет — осознанный компромисс с ростом памяти при враждебном
// разнообразии ключей.
package ratelimit

import (
	"errors"
	"strings"
	"sync"

	"golang.org/x/time/rate"
)

// ErrRateLimited — частота запросов клиента превышена.
// Транспорт: codes.ResourceExhausted (HTTP 429).
var ErrRateLimited = errors.New("rate limited")

// fallbackKey используется, когда ни заголовок, ни адрес пира недоступны.
const fallbackKey = "unknown"

// Limiter — карта независимых token bucket по ключам клиентов.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter

	limit rate.Limit
	burst int
}

// New создаёт Limiter: requestsPerMinute — скорость пополнения,
// burst — ёмкость корзины (минимум 1).
func New(requestsPerMinute, burst int) *Limiter {
	if requestsPerMinute < 1 {
		requestsPerMinute = 1
	}
	if burst < 1 {
		burst = 1
	}

	return &Limiter{
		buckets: make(map[string]*rate.Limiter),
		limit:   rate.Limit(float64(requestsPerMinute) / 60.0),
		burst:   burst,
	}
}

// Allow сообщает, пропускается ли очередной запрос клиента.
func (l *Limiter) Allow(clientKey string) bool {
	return l.bucket(clientKey).Allow()
}

// bucket возвращает корзину ключа, создавая её при первом обращении.
func (l *Limiter) bucket(clientKey string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[clientKey]
	if !ok {
		b = rate.NewLimiter(l.limit, l.burst)
		l.buckets[clientKey] = b
	}

	return b
}

// ClientKey выводит ключ клиента: первая запись forwarded-for, иначе адрес
// пира, иначе константа. Значение заголовка дальше не валидируется —
// подмена за доверенным прокси вне рассмотрения.
func ClientKey(forwardedFor, peerAddr string) string {
	if forwardedFor != "" {
		first := forwardedFor
		if idx := strings.IndexByte(first, ','); idx >= 0 {
			first = first[:idx]
		}
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}

	if peerAddr != "" {
		return peerAddr
	}

	return fallbackKey
}
