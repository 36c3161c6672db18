package model

// Scope is the authenticated request scope extracted from a verified access
// token. It carries everything downstream handlers need without a DB lookup.
type Scope struct {
	UserID      int64    `json:"user_id"`
	Email       string   `json:"email"`
	Role        Role     `json:"role"`
	Permissions []string `json:"permissions"`
}

// HasPermission reports whether the scope holds the given permission.
func (s Scope) HasPermission(perm string) bool {
	for _, p := range s.Permissions {
		if p == perm {
			return true
		}
	}
	return false
}

// HasAllPermissions reports whether the scope holds every permission in perms.
func (s Scope) HasAllPermissions(perms ...string) bool {
	for _, perm := range perms {
		if !s.HasPermission(perm) {
			return false
		}
	}
	return true
}

// HasAnyPermission reports whether the scope holds at least one of perms.
func (s Scope) HasAnyPermission(perms ...string) bool {
	for _, perm := range perms {
		if s.HasPermission(perm) {
			return true
		}
	}
	return false
}

// HasRole reports whether the scope's role is in the allowed set.
func (s Scope) HasRole(roles ...Role) bool {
	for _, r := range roles {
		if s.Role == r {
			return true
		}
	}
	return false
}
