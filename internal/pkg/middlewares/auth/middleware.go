package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"courier-ledger/internal/entities"
	"courier-ledger/internal/pkg/actorctx"
	"courier-ledger/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid token")
	ErrInvalidRole  = errors.New("invalid role claim")
)

// Claims - полезная нагрузка токена, который выпускает внешний сервис аутентификации.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type Verifier struct {
	secret []byte
	parser *jwt.Parser
}

func NewVerifier(secret, issuer string) *Verifier {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	return &Verifier{
		secret: []byte(secret),
		parser: jwt.NewParser(opts...),
	}
}

func (v *Verifier) Verify(tokenString string) (entities.Actor, error) {
	claims := &Claims{}
	_, err := v.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return entities.Actor{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	role := entities.Role(claims.Role)
	if !role.IsValid() {
		return entities.Actor{}, fmt.Errorf("%w: %q", ErrInvalidRole, claims.Role)
	}
	if claims.Subject == "" {
		return entities.Actor{}, fmt.Errorf("%w: empty subject", ErrInvalidToken)
	}

	return entities.Actor{UserID: claims.Subject, Role: role}, nil
}

// Middleware проверяет Bearer токен и кладет Actor в контекст запроса.
func Middleware(log handlerLogger, verifier *Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := bearerToken(r)
			if err != nil {
				unauthorized(w, log, err)
				return
			}

			actor, err := verifier.Verify(token)
			if err != nil {
				log.With(
					logger.NewField("path", r.URL.Path),
					logger.NewField("error", err),
				).Warn("token rejected")
				unauthorized(w, log, ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r.WithContext(actorctx.With(r.Context(), actor)))
		})
	}
}

func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", ErrMissingToken
	}
	return strings.TrimSpace(token), nil
}

func unauthorized(w http.ResponseWriter, log handlerLogger, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", `Bearer realm="courier-ledger"`)
	w.WriteHeader(http.StatusUnauthorized)
	if encodeErr := json.NewEncoder(w).Encode(map[string]string{"error": err.Error()}); encodeErr != nil {
		log.With(logger.NewField("error", encodeErr)).Error("encode JSON response")
	}
}
