package rate_limiter

import (
	"net"
	"net/http"
	"strconv"

	"courier-ledger/internal/pkg/actorctx"
	"courier-ledger/internal/pkg/middlewares/route"
	"courier-ledger/pkg/logger"
)

// Middleware ограничивает частоту запросов на клиента: аутентифицированных по user id, остальных по IP.
// capacity уходит в заголовок X-RateLimit-Limit.
func Middleware(log handlerLogger, capacity int, limiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key, role := clientKey(r)
			if limiter.Allow(key) {
				next.ServeHTTP(w, r)
				return
			}

			handlerPath := route.Template(r)
			log.With(
				logger.NewField("method", r.Method),
				logger.NewField("path", r.URL.Path),
				logger.NewField("route", handlerPath),
				logger.NewField("client", key),
			).Warn("rate limit exceeded")

			RateLimitExceededTotal.WithLabelValues(r.Method, handlerPath, role).Inc()

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(capacity))
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)

			_, err := w.Write([]byte(`{"error":"rate limit exceeded, try again later"}`))
			if err != nil {
				log.With(
					logger.NewField("error", err),
					logger.NewField("path", r.URL.Path),
				).Error("failed to write rate limit response")
			}
		})
	}
}

func clientKey(r *http.Request) (key, role string) {
	if actor, ok := actorctx.From(r.Context()); ok {
		return "user:" + actor.UserID, actor.Role.String()
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host, "anonymous"
}
