package domain

import "time"

type APIKeyStatus string

const (
	APIKeyStatusActive  APIKeyStatus = "active"
	APIKeyStatusRevoked APIKeyStatus = "revoked"
)

// APIKey authenticates widget and integration traffic for a tenant. Only the
// bcrypt hash of the secret is stored; keys are presented as "<id>.<secret>".
type APIKey struct {
	ID         string       `json:"id"`
	TenantID   string       `json:"tenant_id"`
	Label      string       `json:"label"`
	SecretHash string       `json:"-"`
	Status     APIKeyStatus `json:"status"`
	CreatedOn  time.Time    `json:"created_on"`
	LastUsedOn *time.Time   `json:"last_used_on,omitempty"`
}
