package postgre

import (
	"fmt"
	"strings"

	"identity-srv/internal/audit/repository"
)

// buildListWhere - Build WHERE clause for List
func (r *implRepository) buildListWhere(opt repository.ListOptions) (string, []any) {
	conds := []string{}
	args := []any{}

	if opt.UserID != nil {
		args = append(args, *opt.UserID)
		conds = append(conds, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if opt.Email != "" {
		args = append(args, strings.ToLower(opt.Email))
		conds = append(conds, fmt.Sprintf("lower(email) = $%d", len(args)))
	}
	if opt.Action != "" {
		args = append(args, opt.Action)
		conds = append(conds, fmt.Sprintf("action = $%d", len(args)))
	}
	if opt.From != nil {
		args = append(args, *opt.From)
		conds = append(conds, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if opt.To != nil {
		args = append(args, *opt.To)
		conds = append(conds, fmt.Sprintf("created_at <= $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
