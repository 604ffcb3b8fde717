package rbac

import (
	"encoding/json"
	"fmt"
	"net/http"

	"courier-ledger/internal/pkg/actorctx"
	"courier-ledger/internal/pkg/middlewares/route"
	"courier-ledger/pkg/logger"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	stringadapter "github.com/casbin/casbin/v2/persist/string-adapter"
)

// NewEnforcer собирает casbin enforcer из встроенной модели и политики ролей.
func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, fmt.Errorf("casbin model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m, stringadapter.NewAdapter(policyText))
	if err != nil {
		return nil, fmt.Errorf("casbin enforcer: %w", err)
	}
	return enforcer, nil
}

type Enforcer interface {
	Enforce(rvals ...any) (bool, error)
}

// Middleware пропускает запрос, только если роль актора имеет доступ к роуту.
// Должен стоять после auth.Middleware.
func Middleware(log handlerLogger, enforcer Enforcer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := actorctx.From(r.Context())
			if !ok {
				writeError(w, log, http.StatusUnauthorized, "unauthenticated")
				return
			}

			obj := route.Template(r)
			allowed, err := enforcer.Enforce(actor.Role.String(), obj, r.Method)
			if err != nil {
				log.With(
					logger.NewField("route", obj),
					logger.NewField("error", err),
				).Error("rbac enforce failed")
				writeError(w, log, http.StatusInternalServerError, "internal error")
				return
			}
			if !allowed {
				log.With(
					logger.NewField("user_id", actor.UserID),
					logger.NewField("role", actor.Role),
					logger.NewField("method", r.Method),
					logger.NewField("route", obj),
				).Warn("access denied")
				writeError(w, log, http.StatusForbidden, "forbidden")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeError(w http.ResponseWriter, log handlerLogger, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": msg}); err != nil {
		log.With(logger.NewField("error", err)).Error("encode JSON response")
	}
}
