package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"identity-srv/internal/model"
	"identity-srv/internal/user/repository"
)

const userColumns = `id, email, full_name, hashed_password, role, is_active, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (model.User, error) {
	var u model.User
	err := row.Scan(
		&u.ID, &u.Email, &u.FullName, &u.HashedPassword,
		&u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

// Create - Insert a new user row
func (r *implRepository) Create(ctx context.Context, opt repository.CreateOptions) (model.User, error) {
	now := time.Now()

	query := `
		INSERT INTO identity.users (email, full_name, hashed_password, role, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + userColumns

	u, err := scanUser(r.db.QueryRowContext(ctx, query,
		opt.Email, opt.FullName, opt.HashedPassword, opt.Role, opt.IsActive, now, now,
	))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return model.User{}, repository.ErrDuplicateEmail
		}
		return model.User{}, fmt.Errorf("Create: %w", err)
	}

	return u, nil
}

// GetByID - Fetch a user by primary key
func (r *implRepository) GetByID(ctx context.Context, id int64) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM identity.users WHERE id = $1`

	u, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, repository.ErrNotFound
		}
		return model.User{}, fmt.Errorf("GetByID: %w", err)
	}

	return u, nil
}

// GetByEmail - Fetch a user by email (case-insensitive unique index)
func (r *implRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM identity.users WHERE lower(email) = lower($1)`

	u, err := scanUser(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, repository.ErrNotFound
		}
		return model.User{}, fmt.Errorf("GetByEmail: %w", err)
	}

	return u, nil
}

// List - List users for the filter set, plus the total count for pagination
func (r *implRepository) List(ctx context.Context, opt repository.ListOptions) ([]model.User, int64, error) {
	where, args := r.buildListWhere(opt)

	var total int64
	countQuery := `SELECT COUNT(*) FROM identity.users` + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("List: count: %w", err)
	}

	query := `SELECT ` + userColumns + ` FROM identity.users` + where +
		fmt.Sprintf(` ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, opt.Limit, opt.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("List: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("List: scan: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("List: rows: %w", err)
	}

	return users, total, nil
}

// Update - Patch the set fields on a user row
func (r *implRepository) Update(ctx context.Context, opt repository.UpdateOptions) (model.User, error) {
	set, args := r.buildUpdateSet(opt)
	if len(set) == 0 {
		return r.GetByID(ctx, opt.ID)
	}

	query := fmt.Sprintf(
		`UPDATE identity.users SET %s WHERE id = $%d RETURNING %s`,
		set, len(args)+1, userColumns,
	)
	args = append(args, opt.ID)

	u, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, repository.ErrNotFound
		}
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return model.User{}, repository.ErrDuplicateEmail
		}
		return model.User{}, fmt.Errorf("Update: %w", err)
	}

	return u, nil
}

// Delete - Remove a user row
func (r *implRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM identity.users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Delete: rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}

	return nil
}
