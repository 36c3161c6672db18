package usecase

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"identity-srv/internal/model"
	"identity-srv/internal/user"
	"identity-srv/internal/user/repository"
	"identity-srv/pkg/paginator"
	"identity-srv/pkg/permission"
	"identity-srv/pkg/util"
)

// Create - Create a new user account
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input user.CreateInput) (model.User, error) {
	if err := util.IsEmail(input.Email); err != nil {
		return model.User{}, user.ErrInvalidEmail
	}
	if err := util.IsPassword(input.Password); err != nil {
		return model.User{}, user.ErrWeakPassword
	}
	if !input.Role.IsValid() {
		return model.User{}, user.ErrInvalidRole
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.Create: hash password: %v", err)
		return model.User{}, err
	}

	u, err := uc.repo.Create(ctx, repository.CreateOptions{
		Email:          input.Email,
		FullName:       input.FullName,
		HashedPassword: string(hashed),
		Role:           input.Role,
		IsActive:       input.IsActive,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.User{}, user.ErrEmailTaken
		}
		uc.l.Errorf(ctx, "user.usecase.Create: %v", err)
		return model.User{}, err
	}

	return u, nil
}

// Authenticate - Verify an email/password pair and return the account.
// Not-found and bad-password collapse into one error so callers cannot
// distinguish which credential was wrong.
func (uc *implUseCase) Authenticate(ctx context.Context, email, password string) (model.User, error) {
	u, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.User{}, user.ErrInvalidCredentials
		}
		uc.l.Errorf(ctx, "user.usecase.Authenticate: %v", err)
		return model.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.HashedPassword), []byte(password)); err != nil {
		return model.User{}, user.ErrInvalidCredentials
	}

	if !u.IsActive {
		return model.User{}, user.ErrInactiveUser
	}

	return u, nil
}

// Detail - Fetch one user. Callers without users:read may only fetch themselves.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id int64) (model.User, error) {
	if sc.UserID != id && !sc.HasPermission(permission.UsersRead) {
		return model.User{}, user.ErrForbidden
	}

	return uc.getUser(ctx, id)
}

// List - List users with filters and pagination
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input user.ListInput) ([]model.User, paginator.Paginator, error) {
	input.Paginate.Adjust()

	users, total, err := uc.repo.List(ctx, repository.ListOptions{
		Email:    input.Email,
		Role:     input.Role,
		IsActive: input.IsActive,
		Limit:    int(input.Paginate.Limit),
		Offset:   int(input.Paginate.Offset()),
	})
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.List: %v", err)
		return nil, paginator.Paginator{}, err
	}

	return users, paginator.Paginator{
		Total:       total,
		Count:       int64(len(users)),
		PerPage:     input.Paginate.Limit,
		CurrentPage: input.Paginate.Page,
	}, nil
}

// Update - Patch a user. Self-service callers without users:write may only
// change their own profile fields, never role or activation.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, id int64, input user.UpdateInput) (model.User, error) {
	isSelf := sc.UserID == id
	isAdminWrite := sc.HasPermission(permission.UsersWrite)

	if !isAdminWrite {
		if !isSelf || !sc.HasPermission(permission.ProfileWriteOwn) {
			return model.User{}, user.ErrForbidden
		}
		if input.Role != nil || input.IsActive != nil {
			return model.User{}, user.ErrForbidden
		}
	}

	if input.Email == nil && input.FullName == nil && input.Password == nil &&
		input.Role == nil && input.IsActive == nil {
		return model.User{}, user.ErrNothingToUpdate
	}

	opt := repository.UpdateOptions{
		ID:       id,
		Email:    input.Email,
		FullName: input.FullName,
		Role:     input.Role,
		IsActive: input.IsActive,
	}

	if input.Email != nil {
		if err := util.IsEmail(*input.Email); err != nil {
			return model.User{}, user.ErrInvalidEmail
		}
	}
	if input.Role != nil && !input.Role.IsValid() {
		return model.User{}, user.ErrInvalidRole
	}
	if input.Password != nil {
		if err := util.IsPassword(*input.Password); err != nil {
			return model.User{}, user.ErrWeakPassword
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			uc.l.Errorf(ctx, "user.usecase.Update: hash password: %v", err)
			return model.User{}, err
		}
		hashedStr := string(hashed)
		opt.HashedPassword = &hashedStr
	}

	u, err := uc.repo.Update(ctx, opt)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return model.User{}, user.ErrUserNotFound
		case errors.Is(err, repository.ErrDuplicateEmail):
			return model.User{}, user.ErrEmailTaken
		}
		uc.l.Errorf(ctx, "user.usecase.Update: %v", err)
		return model.User{}, err
	}

	uc.invalidate(ctx, id)

	return u, nil
}

// Delete - Remove a user account. Self-deletion is rejected so an admin
// cannot lock themselves out mid-session.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id int64) error {
	if sc.UserID == id {
		return user.ErrForbidden
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "user.usecase.Delete: %v", err)
		return err
	}

	uc.invalidate(ctx, id)

	return nil
}

// getUser - Cache read-through: redis first, then postgres.
func (uc *implUseCase) getUser(ctx context.Context, id int64) (model.User, error) {
	if uc.cache != nil {
		if u, err := uc.cache.GetUser(ctx, id); err == nil {
			return u, nil
		} else if !errors.Is(err, repository.ErrCacheMiss) {
			uc.l.Warnf(ctx, "user.usecase.getUser: cache read: %v", err)
		}
	}

	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.User{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "user.usecase.getUser: %v", err)
		return model.User{}, err
	}

	if uc.cache != nil {
		if err := uc.cache.SetUser(ctx, u); err != nil {
			uc.l.Warnf(ctx, "user.usecase.getUser: cache write: %v", err)
		}
	}

	return u, nil
}

func (uc *implUseCase) invalidate(ctx context.Context, id int64) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.DeleteUser(ctx, id); err != nil {
		uc.l.Warnf(ctx, "user.usecase.invalidate: %v", err)
	}
}
