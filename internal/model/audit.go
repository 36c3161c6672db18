package model

import "time"

// Audit actions recorded by the service.
const (
	AuditActionLogin        = "login"
	AuditActionLoginFailed  = "login_failed"
	AuditActionLogout       = "logout"
	AuditActionRegister     = "register"
	AuditActionTokenRefresh = "token_refresh"
	AuditActionUserCreated  = "user_created"
	AuditActionUserUpdated  = "user_updated"
	AuditActionUserDeleted  = "user_deleted"
)

// AuditLog is one security-relevant event. UserID is nil when the actor could
// not be resolved, e.g. a failed login for an unknown email.
type AuditLog struct {
	ID        int64
	UserID    *int64
	Email     string
	Action    string
	IPAddress string
	UserAgent string
	Success   bool
	Detail    string
	CreatedAt time.Time
}
