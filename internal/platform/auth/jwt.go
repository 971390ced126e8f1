// Package auth resolves the caller's identity from a Bearer token.
// Token issuance lives in the external identity service; this side only
// verifies.
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/example/video-platform/internal/platform/api"
)

type ctxKeyUserID struct{}

func UserIDFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ctxKeyUserID{}).(string)
	return v, ok
}

// WithUserID injects user_id into context. Useful for testing.
func WithUserID(ctx context.Context, uid string) context.Context {
	return context.WithValue(ctx, ctxKeyUserID{}, uid)
}

type Claims struct {
	jwt.RegisteredClaims
}

type JWTVerifier struct {
	Secret []byte
}

func (v JWTVerifier) Parse(tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return v.Secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// bearerSubject extracts and verifies the Bearer token, returning the
// subject claim. Empty string means no usable identity.
func bearerSubject(v JWTVerifier, r *http.Request) string {
	authz := strings.TrimSpace(r.Header.Get("Authorization"))
	if authz == "" {
		return ""
	}
	parts := strings.SplitN(authz, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	claims, err := v.Parse(strings.TrimSpace(parts[1]))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(claims.Subject)
}

// RequireUser rejects requests without a valid Bearer token and injects
// user_id into context.
func RequireUser(verifier JWTVerifier) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			uid := bearerSubject(verifier, r)
			if uid == "" {
				api.Unauthorized(w, "Unauthorized request.")
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), uid)))
		})
	}
}

// OptionalUser injects user_id when a valid Bearer token is present and
// lets anonymous requests through untouched. Read endpoints use this so
// they can personalize isLiked/canUpdate without gating access.
func OptionalUser(verifier JWTVerifier) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if uid := bearerSubject(verifier, r); uid != "" {
				r = r.WithContext(WithUserID(r.Context(), uid))
			}
			next.ServeHTTP(w, r)
		})
	}
}
