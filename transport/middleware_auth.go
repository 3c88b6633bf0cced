package transport

import (
	"net/http"
	"strings"

	"github.com/blindtreasure/orderview/constant"
	utilsContext "github.com/blindtreasure/orderview/utils/context"
	"github.com/blindtreasure/orderview/utils/errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
)

// AuthMiddleware validates the bearer JWT issued by the commerce backend and
// embeds the user id plus the raw token into the request context. The token
// is forwarded as-is on every upstream call, so the backend stays the single
// authority on session validity.
func AuthMiddleware(jwtSecret string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Public paths
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			// Check Authorization header
			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			token := strings.TrimPrefix(auth, "Bearer ")

			userID, err := parseUserID(token, jwtSecret)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			ctx := utilsContext.WithUser(r.Context(), userID, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// parseUserID verifies the HS256 signature and pulls the subject claim.
func parseUserID(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", jwt.ErrTokenInvalidClaims
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", jwt.ErrTokenInvalidClaims
	}
	return sub, nil
}

// isPublicPath defines which endpoints are public (no auth required)
func isPublicPath(path string) bool {
	return strings.HasPrefix(path, "/swagger/")
}
