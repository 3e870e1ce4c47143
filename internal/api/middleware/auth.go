package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/haircraft/HairCraft-SchedulingService/internal/api/handlers"
)

const (
	msgMissingToken = "отсутствует токен авторизации"
	msgExpiredToken = "токен авторизации истёк"
	msgInvalidToken = "некорректный токен авторизации"
	msgAdminOnly    = "операция доступна только администратору"
)

// RoleAdmin роль администратора салона в JWT claims
const RoleAdmin = "ADMIN"

type contextKey string

const (
	userIDKey contextKey = "auth_user_id"
	roleKey   contextKey = "auth_role"
)

// Claims структура JWT claims сервиса
type Claims struct {
	UserID int64  `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Logger интерфейс логирования для middleware
type Logger interface {
	Warn(format string, v ...interface{})
}

// Auth middleware проверки JWT токена
// Истекший токен отличается от некорректного: клиент по 401 с сообщением
// об истечении инициирует повторный логин
type Auth struct {
	secret []byte
	logger Logger
}

// NewAuth создает middleware авторизации
func NewAuth(secret string, logger Logger) *Auth {
	return &Auth{secret: []byte(secret), logger: logger}
}

// Middleware проверяет Bearer токен и кладет данные пользователя в контекст
func (a *Auth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			handlers.RespondError(w, http.StatusUnauthorized, msgMissingToken)
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return a.secret, nil
		})

		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				a.logger.Warn("auth: expired token for %s %s", r.Method, r.URL.Path)
				handlers.RespondError(w, http.StatusUnauthorized, msgExpiredToken)
				return
			}
			a.logger.Warn("auth: invalid token for %s %s: %v", r.Method, r.URL.Path, err)
			handlers.RespondError(w, http.StatusUnauthorized, msgInvalidToken)
			return
		}

		if !token.Valid || claims.UserID <= 0 {
			a.logger.Warn("auth: rejected token for %s %s", r.Method, r.URL.Path)
			handlers.RespondError(w, http.StatusUnauthorized, msgInvalidToken)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
		ctx = context.WithValue(ctx, roleKey, claims.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin пропускает запрос только с ролью администратора
// Подключается после Auth.Middleware
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsAdmin(r.Context()) {
			handlers.RespondForbidden(w, msgAdminOnly)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UserIDFromContext возвращает ID авторизованного пользователя
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// IsAdmin сообщает, имеет ли авторизованный пользователь роль администратора
func IsAdmin(ctx context.Context) bool {
	role, ok := ctx.Value(roleKey).(string)
	return ok && role == RoleAdmin
}
