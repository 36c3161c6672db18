package permission

import "identity-srv/internal/model"

// Permission strings follow the resource:action[:scope] convention.
const (
	UsersRead       = "users:read"
	UsersWrite      = "users:write"
	UsersDelete     = "users:delete"
	AdminAccess     = "admin:access"
	UsersReadOwn    = "users:read:own"
	ProfileReadOwn  = "profile:read:own"
	ProfileWriteOwn = "profile:write:own"
)

// rolePermissions is the static role to permission mapping. It is fixed at
// compile time so the whole permission surface is auditable in one place.
// Permissions are never stored per user and never accepted from clients.
var rolePermissions = map[model.Role][]string{
	model.RoleAdmin: {
		UsersRead,
		UsersWrite,
		UsersDelete,
		AdminAccess,
	},
	model.RoleUser: {
		UsersReadOwn,
		ProfileReadOwn,
		ProfileWriteOwn,
	},
}

// ForRole resolves a role to its permission list. Unknown roles resolve to an
// empty list. The returned slice is a copy; callers cannot mutate the table.
func ForRole(role model.Role) []string {
	perms, ok := rolePermissions[role]
	if !ok {
		return []string{}
	}
	out := make([]string, len(perms))
	copy(out, perms)
	return out
}
