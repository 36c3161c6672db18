package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"identity-srv/internal/audit/repository"
	"identity-srv/internal/model"
)

const auditColumns = `id, user_id, email, action, ip_address, user_agent, success, detail, created_at`

func scanAuditLog(row interface{ Scan(...any) error }) (model.AuditLog, error) {
	var (
		entry  model.AuditLog
		userID sql.NullInt64
	)
	err := row.Scan(
		&entry.ID, &userID, &entry.Email, &entry.Action,
		&entry.IPAddress, &entry.UserAgent, &entry.Success,
		&entry.Detail, &entry.CreatedAt,
	)
	if userID.Valid {
		entry.UserID = &userID.Int64
	}
	return entry, err
}

// Create - Append one audit event
func (r *implRepository) Create(ctx context.Context, opt repository.CreateOptions) (model.AuditLog, error) {
	query := `
		INSERT INTO identity.audit_logs (user_id, email, action, ip_address, user_agent, success, detail, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + auditColumns

	var userID sql.NullInt64
	if opt.UserID != nil {
		userID = sql.NullInt64{Int64: *opt.UserID, Valid: true}
	}

	entry, err := scanAuditLog(r.db.QueryRowContext(ctx, query,
		userID, opt.Email, opt.Action, opt.IPAddress, opt.UserAgent,
		opt.Success, opt.Detail, time.Now(),
	))
	if err != nil {
		return model.AuditLog{}, fmt.Errorf("Create: %w", err)
	}

	return entry, nil
}

// List - List audit events for the filter set, newest first
func (r *implRepository) List(ctx context.Context, opt repository.ListOptions) ([]model.AuditLog, int64, error) {
	where, args := r.buildListWhere(opt)

	var total int64
	countQuery := `SELECT COUNT(*) FROM identity.audit_logs` + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("List: count: %w", err)
	}

	query := `SELECT ` + auditColumns + ` FROM identity.audit_logs` + where +
		fmt.Sprintf(` ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, opt.Limit, opt.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("List: %w", err)
	}
	defer rows.Close()

	entries := []model.AuditLog{}
	for rows.Next() {
		entry, err := scanAuditLog(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("List: scan: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("List: rows: %w", err)
	}

	return entries, total, nil
}
