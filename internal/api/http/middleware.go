package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"partyrent-backend/internal/domain"
	"partyrent-backend/internal/logger"
	"partyrent-backend/internal/repository"
	"partyrent-backend/internal/security"
)

type contextKey string

const (
	contextKeyTenantID  contextKey = "tenant_id"
	contextKeyRequestID contextKey = "request_id"
)

// TenantID extracts the authenticated tenant from the request context.
func TenantID(ctx context.Context) string {
	if v, ok := ctx.Value(contextKeyTenantID).(string); ok {
		return v
	}
	return ""
}

// RequestIDMiddleware tags every request with an id for log correlation.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)
		ctx := context.WithValue(r.Context(), contextKeyRequestID, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AuthMiddleware authenticates requests either with a tenant API key
// (X-API-Key: "<id>.<secret>", widget and integration traffic) or a staff
// bearer token, and scopes the request to the resolved tenant.
type AuthMiddleware struct {
	apiKeyRepo repository.APIKeyRepository
	tokens     security.TokenManager
}

func NewAuthMiddleware(apiKeyRepo repository.APIKeyRepository, tokens security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{apiKeyRepo: apiKeyRepo, tokens: tokens}
}

func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if presented := r.Header.Get("X-API-Key"); presented != "" {
			tenantID, err := m.authenticateAPIKey(r.Context(), presented)
			if err != nil {
				writeError(w, domain.ErrUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), contextKeyTenantID, tenantID)
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
			claims, err := m.tokens.ValidateToken(strings.TrimPrefix(auth, "Bearer "))
			if err != nil {
				writeError(w, domain.ErrUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), contextKeyTenantID, claims.TenantID)
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		writeError(w, domain.ErrUnauthorized)
	})
}

func (m *AuthMiddleware) authenticateAPIKey(ctx context.Context, presented string) (string, error) {
	keyID, secret, err := security.SplitAPIKey(presented)
	if err != nil {
		return "", err
	}

	key, err := m.apiKeyRepo.GetByID(ctx, keyID)
	if err != nil {
		return "", err
	}
	if key.Status != domain.APIKeyStatusActive || !security.VerifyAPIKey(key.SecretHash, secret) {
		return "", domain.ErrUnauthorized
	}

	if err := m.apiKeyRepo.TouchLastUsed(ctx, keyID); err != nil {
		logger.Warn("Failed to update api key last_used_on", "key_id", keyID, "error", err)
	}
	return key.TenantID, nil
}
