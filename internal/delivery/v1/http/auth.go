package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/DRSN-tech/catalog-service/internal/domain"
	"github.com/DRSN-tech/catalog-service/pkg/e"
	"github.com/DRSN-tech/catalog-service/pkg/logger"
	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const (
	roleKey         contextKey = "actorRole"
	accessTokenName            = "access_token"
)

// ActorRole достаёт роль пользователя из bearer-токена (заголовок
// Authorization или cookie access_token). Запрос без токена проходит с пустой
// ролью и видит каталог только на чтение; на неверный токен отвечает 401.
func ActorRole(jwtSecret, roleClaim string, logger logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := bearerToken(r)
			if tokenString == "" {
				next.ServeHTTP(w, r)
				return
			}

			role, err := parseRole(tokenString, jwtSecret, roleClaim)
			if err != nil {
				logger.Warnf("%d rejected token: %v", http.StatusUnauthorized, err)
				WriteError(w, e.ErrUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithRole(r.Context(), role)))
		})
	}
}

func WithRole(ctx context.Context, role domain.Role) context.Context {
	return context.WithValue(ctx, roleKey, role)
}

// RoleFromContext возвращает роль; для анонимного запроса — пустую.
func RoleFromContext(ctx context.Context) domain.Role {
	role, ok := ctx.Value(roleKey).(domain.Role)
	if !ok {
		return ""
	}
	return role
}

func bearerToken(r *http.Request) string {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}

	if c, err := r.Cookie(accessTokenName); err == nil {
		return c.Value
	}

	return ""
}

func parseRole(tokenString, jwtSecret, roleClaim string) (domain.Role, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return "", e.Wrap("parse token", e.ErrUnauthorized)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", e.Wrap("token claims", e.ErrUnauthorized)
	}

	role, ok := claims[roleClaim].(string)
	if !ok {
		return "", e.Wrap("role claim "+roleClaim, e.ErrUnauthorized)
	}

	return domain.ParseRole(role), nil
}
