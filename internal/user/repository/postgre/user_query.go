package postgre

import (
	"fmt"
	"strings"

	"identity-srv/internal/user/repository"
)

// buildListWhere - Build WHERE clause for List
func (r *implRepository) buildListWhere(opt repository.ListOptions) (string, []any) {
	conds := []string{}
	args := []any{}

	if opt.Email != "" {
		args = append(args, "%"+strings.ToLower(opt.Email)+"%")
		conds = append(conds, fmt.Sprintf("lower(email) LIKE $%d", len(args)))
	}
	if opt.Role != "" {
		args = append(args, opt.Role)
		conds = append(conds, fmt.Sprintf("role = $%d", len(args)))
	}
	if opt.IsActive != nil {
		args = append(args, *opt.IsActive)
		conds = append(conds, fmt.Sprintf("is_active = $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// buildUpdateSet - Build SET clause for Update; updated_at is always bumped
func (r *implRepository) buildUpdateSet(opt repository.UpdateOptions) (string, []any) {
	sets := []string{}
	args := []any{}

	add := func(col string, val any) {
		args = append(args, val)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if opt.Email != nil {
		add("email", *opt.Email)
	}
	if opt.FullName != nil {
		add("full_name", *opt.FullName)
	}
	if opt.HashedPassword != nil {
		add("hashed_password", *opt.HashedPassword)
	}
	if opt.Role != nil {
		add("role", *opt.Role)
	}
	if opt.IsActive != nil {
		add("is_active", *opt.IsActive)
	}

	if len(sets) == 0 {
		return "", args
	}

	sets = append(sets, "updated_at = now()")
	return strings.Join(sets, ", "), args
}
