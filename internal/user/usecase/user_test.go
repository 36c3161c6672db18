package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"identity-srv/internal/model"
	"identity-srv/internal/user"
	"identity-srv/internal/user/repository"
	"identity-srv/pkg/log"
	"identity-srv/pkg/permission"
)

type fakeRepo struct {
	users  map[int64]model.User
	nextID int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: map[int64]model.User{}, nextID: 1}
}

func (f *fakeRepo) Create(_ context.Context, opt repository.CreateOptions) (model.User, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Email, opt.Email) {
			return model.User{}, repository.ErrDuplicateEmail
		}
	}
	u := model.User{
		ID:             f.nextID,
		Email:          opt.Email,
		FullName:       opt.FullName,
		HashedPassword: opt.HashedPassword,
		Role:           opt.Role,
		IsActive:       opt.IsActive,
	}
	f.users[u.ID] = u
	f.nextID++
	return u, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	return u, nil
}

func (f *fakeRepo) GetByEmail(_ context.Context, email string) (model.User, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return model.User{}, repository.ErrNotFound
}

func (f *fakeRepo) List(_ context.Context, opt repository.ListOptions) ([]model.User, int64, error) {
	matched := []model.User{}
	for id := int64(1); id < f.nextID; id++ {
		u, ok := f.users[id]
		if !ok {
			continue
		}
		if opt.Role != "" && u.Role != opt.Role {
			continue
		}
		if opt.IsActive != nil && u.IsActive != *opt.IsActive {
			continue
		}
		if opt.Email != "" && !strings.Contains(strings.ToLower(u.Email), strings.ToLower(opt.Email)) {
			continue
		}
		matched = append(matched, u)
	}

	total := int64(len(matched))
	if opt.Offset >= len(matched) {
		return []model.User{}, total, nil
	}
	end := opt.Offset + opt.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[opt.Offset:end], total, nil
}

func (f *fakeRepo) Update(_ context.Context, opt repository.UpdateOptions) (model.User, error) {
	u, ok := f.users[opt.ID]
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	if opt.Email != nil {
		u.Email = *opt.Email
	}
	if opt.FullName != nil {
		u.FullName = *opt.FullName
	}
	if opt.HashedPassword != nil {
		u.HashedPassword = *opt.HashedPassword
	}
	if opt.Role != nil {
		u.Role = *opt.Role
	}
	if opt.IsActive != nil {
		u.IsActive = *opt.IsActive
	}
	f.users[opt.ID] = u
	return u, nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

type fakeCache struct {
	users   map[int64]model.User
	hits    int
	deletes int
}

func newFakeCache() *fakeCache {
	return &fakeCache{users: map[int64]model.User{}}
}

func (f *fakeCache) GetUser(_ context.Context, id int64) (model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return model.User{}, repository.ErrCacheMiss
	}
	f.hits++
	return u, nil
}

func (f *fakeCache) SetUser(_ context.Context, u model.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeCache) DeleteUser(_ context.Context, id int64) error {
	delete(f.users, id)
	f.deletes++
	return nil
}

func adminScope() model.Scope {
	return model.Scope{
		UserID:      99,
		Email:       "admin@example.com",
		Role:        model.RoleAdmin,
		Permissions: permission.ForRole(model.RoleAdmin),
	}
}

func selfScope(id int64) model.Scope {
	return model.Scope{
		UserID:      id,
		Role:        model.RoleUser,
		Permissions: permission.ForRole(model.RoleUser),
	}
}

func newTestUseCase(t *testing.T) (user.UseCase, *fakeRepo, *fakeCache) {
	t.Helper()
	repo := newFakeRepo()
	cache := newFakeCache()
	return New(repo, cache, log.NewNop()), repo, cache
}

func mustCreate(t *testing.T, uc user.UseCase, email string, role model.Role) model.User {
	t.Helper()
	u, err := uc.Create(context.Background(), adminScope(), user.CreateInput{
		Email:    email,
		Password: "Secret!1",
		FullName: "Test User",
		Role:     role,
		IsActive: true,
	})
	if err != nil {
		t.Fatalf("Create(%s): %v", email, err)
	}
	return u
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("hashes the password", func(t *testing.T) {
		uc, repo, _ := newTestUseCase(t)
		u := mustCreate(t, uc, "one@example.com", model.RoleUser)

		stored := repo.users[u.ID]
		if stored.HashedPassword == "Secret!1" {
			t.Fatal("password must not be stored in plain text")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(stored.HashedPassword), []byte("Secret!1")); err != nil {
			t.Errorf("stored hash does not match password: %v", err)
		}
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		uc, _, _ := newTestUseCase(t)
		mustCreate(t, uc, "dup@example.com", model.RoleUser)

		_, err := uc.Create(ctx, adminScope(), user.CreateInput{
			Email:    "dup@example.com",
			Password: "Secret!1",
			FullName: "Other",
			Role:     model.RoleUser,
			IsActive: true,
		})
		if !errors.Is(err, user.ErrEmailTaken) {
			t.Errorf("error mismatch: got %v, want %v", err, user.ErrEmailTaken)
		}
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		uc, _, _ := newTestUseCase(t)

		cases := []struct {
			name  string
			input user.CreateInput
			want  error
		}{
			{"bad email", user.CreateInput{Email: "nope", Password: "Secret!1", Role: model.RoleUser}, user.ErrInvalidEmail},
			{"weak password", user.CreateInput{Email: "a@b.co", Password: "weak", Role: model.RoleUser}, user.ErrWeakPassword},
			{"unknown role", user.CreateInput{Email: "a@b.co", Password: "Secret!1", Role: model.Role("X")}, user.ErrInvalidRole},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				if _, err := uc.Create(ctx, adminScope(), tc.input); !errors.Is(err, tc.want) {
					t.Errorf("error mismatch: got %v, want %v", err, tc.want)
				}
			})
		}
	})
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		uc, _, _ := newTestUseCase(t)
		created := mustCreate(t, uc, "login@example.com", model.RoleUser)

		u, err := uc.Authenticate(ctx, "login@example.com", "Secret!1")
		if err != nil {
			t.Fatalf("Authenticate: %v", err)
		}
		if u.ID != created.ID {
			t.Errorf("id mismatch: got %d, want %d", u.ID, created.ID)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		uc, _, _ := newTestUseCase(t)
		mustCreate(t, uc, "login@example.com", model.RoleUser)

		if _, err := uc.Authenticate(ctx, "login@example.com", "Wrong!1"); !errors.Is(err, user.ErrInvalidCredentials) {
			t.Errorf("error mismatch: got %v, want %v", err, user.ErrInvalidCredentials)
		}
	})

	t.Run("unknown email collapses to invalid credentials", func(t *testing.T) {
		uc, _, _ := newTestUseCase(t)
		if _, err := uc.Authenticate(ctx, "ghost@example.com", "Secret!1"); !errors.Is(err, user.ErrInvalidCredentials) {
			t.Errorf("error mismatch: got %v, want %v", err, user.ErrInvalidCredentials)
		}
	})

	t.Run("inactive account", func(t *testing.T) {
		uc, repo, _ := newTestUseCase(t)
		created := mustCreate(t, uc, "login@example.com", model.RoleUser)

		u := repo.users[created.ID]
		u.IsActive = false
		repo.users[created.ID] = u

		if _, err := uc.Authenticate(ctx, "login@example.com", "Secret!1"); !errors.Is(err, user.ErrInactiveUser) {
			t.Errorf("error mismatch: got %v, want %v", err, user.ErrInactiveUser)
		}
	})
}

func TestDetail(t *testing.T) {
	ctx := context.Background()

	t.Run("admin reads anyone", func(t *testing.T) {
		uc, _, _ := newTestUseCase(t)
		created := mustCreate(t, uc, "target@example.com", model.RoleUser)

		u, err := uc.Detail(ctx, adminScope(), created.ID)
		if err != nil {
			t.Fatalf("Detail: %v", err)
		}
		if u.Email != "target@example.com" {
			t.Errorf("email mismatch: got %s", u.Email)
		}
	})

	t.Run("user reads own profile", func(t *testing.T) {
		uc, _, _ := newTestUseCase(t)
		created := mustCreate(t, uc, "self@example.com", model.RoleUser)

		if _, err := uc.Detail(ctx, selfScope(created.ID), created.ID); err != nil {
			t.Errorf("Detail: %v", err)
		}
	})

	t.Run("user cannot read others", func(t *testing.T) {
		uc, _, _ := newTestUseCase(t)
		created := mustCreate(t, uc, "other@example.com", model.RoleUser)

		if _, err := uc.Detail(ctx, selfScope(created.ID+100), created.ID); !errors.Is(err, user.ErrForbidden) {
			t.Errorf("error mismatch: got %v, want %v", err, user.ErrForbidden)
		}
	})

	t.Run("second read is served from cache", func(t *testing.T) {
		uc, _, cache := newTestUseCase(t)
		created := mustCreate(t, uc, "cached@example.com", model.RoleUser)

		if _, err := uc.Detail(ctx, adminScope(), created.ID); err != nil {
			t.Fatalf("Detail: %v", err)
		}
		if _, err := uc.Detail(ctx, adminScope(), created.ID); err != nil {
			t.Fatalf("Detail: %v", err)
		}
		if cache.hits != 1 {
			t.Errorf("cache hits mismatch: got %d, want 1", cache.hits)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, _, _ := newTestUseCase(t)
		if _, err := uc.Detail(ctx, adminScope(), 12345); !errors.Is(err, user.ErrUserNotFound) {
			t.Errorf("error mismatch: got %v, want %v", err, user.ErrUserNotFound)
		}
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newTestUseCase(t)

	mustCreate(t, uc, "a@example.com", model.RoleAdmin)
	for i := 0; i < 20; i++ {
		mustCreate(t, uc, "user"+string(rune('a'+i))+"@example.com", model.RoleUser)
	}

	t.Run("paginates", func(t *testing.T) {
		users, pag, err := uc.List(ctx, adminScope(), user.ListInput{})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if pag.Total != 21 {
			t.Errorf("total mismatch: got %d, want 21", pag.Total)
		}
		if len(users) != 15 {
			t.Errorf("page size mismatch: got %d, want 15", len(users))
		}
		if pag.CurrentPage != 1 {
			t.Errorf("page mismatch: got %d, want 1", pag.CurrentPage)
		}
	})

	t.Run("filters by role", func(t *testing.T) {
		users, pag, err := uc.List(ctx, adminScope(), user.ListInput{Role: model.RoleAdmin})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if pag.Total != 1 || len(users) != 1 {
			t.Errorf("filter mismatch: got %d users, total %d, want 1/1", len(users), pag.Total)
		}
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("self-service profile update", func(t *testing.T) {
		uc, _, _ := newTestUseCase(t)
		created := mustCreate(t, uc, "self@example.com", model.RoleUser)

		name := "Renamed"
		u, err := uc.Update(ctx, selfScope(created.ID), created.ID, user.UpdateInput{FullName: &name})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if u.FullName != "Renamed" {
			t.Errorf("name mismatch: got %s", u.FullName)
		}
	})

	t.Run("self-service cannot escalate role", func(t *testing.T) {
		uc, _, _ := newTestUseCase(t)
		created := mustCreate(t, uc, "self@example.com", model.RoleUser)

		role := model.RoleAdmin
		if _, err := uc.Update(ctx, selfScope(created.ID), created.ID, user.UpdateInput{Role: &role}); !errors.Is(err, user.ErrForbidden) {
			t.Errorf("error mismatch: got %v, want %v", err, user.ErrForbidden)
		}
	})

	t.Run("user cannot update others", func(t *testing.T) {
		uc, _, _ := newTestUseCase(t)
		created := mustCreate(t, uc, "victim@example.com", model.RoleUser)

		name := "Hacked"
		if _, err := uc.Update(ctx, selfScope(created.ID+1), created.ID, user.UpdateInput{FullName: &name}); !errors.Is(err, user.ErrForbidden) {
			t.Errorf("error mismatch: got %v, want %v", err, user.ErrForbidden)
		}
	})

	t.Run("admin changes role and activation", func(t *testing.T) {
		uc, _, _ := newTestUseCase(t)
		created := mustCreate(t, uc, "promote@example.com", model.RoleUser)

		role := model.RoleAdmin
		inactive := false
		u, err := uc.Update(ctx, adminScope(), created.ID, user.UpdateInput{Role: &role, IsActive: &inactive})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if u.Role != model.RoleAdmin || u.IsActive {
			t.Errorf("update mismatch: got role %s active %v", u.Role, u.IsActive)
		}
	})

	t.Run("empty input rejected", func(t *testing.T) {
		uc, _, _ := newTestUseCase(t)
		created := mustCreate(t, uc, "noop@example.com", model.RoleUser)

		if _, err := uc.Update(ctx, adminScope(), created.ID, user.UpdateInput{}); !errors.Is(err, user.ErrNothingToUpdate) {
			t.Errorf("error mismatch: got %v, want %v", err, user.ErrNothingToUpdate)
		}
	})

	t.Run("invalidates cache", func(t *testing.T) {
		uc, _, cache := newTestUseCase(t)
		created := mustCreate(t, uc, "stale@example.com", model.RoleUser)

		if _, err := uc.Detail(ctx, adminScope(), created.ID); err != nil {
			t.Fatalf("Detail: %v", err)
		}

		name := "Fresh"
		if _, err := uc.Update(ctx, adminScope(), created.ID, user.UpdateInput{FullName: &name}); err != nil {
			t.Fatalf("Update: %v", err)
		}
		if cache.deletes != 1 {
			t.Errorf("cache deletes mismatch: got %d, want 1", cache.deletes)
		}

		u, err := uc.Detail(ctx, adminScope(), created.ID)
		if err != nil {
			t.Fatalf("Detail: %v", err)
		}
		if u.FullName != "Fresh" {
			t.Errorf("stale read after update: got %s", u.FullName)
		}
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the user", func(t *testing.T) {
		uc, repo, _ := newTestUseCase(t)
		created := mustCreate(t, uc, "gone@example.com", model.RoleUser)

		if err := uc.Delete(ctx, adminScope(), created.ID); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if _, ok := repo.users[created.ID]; ok {
			t.Error("user should be removed")
		}
	})

	t.Run("self-deletion rejected", func(t *testing.T) {
		uc, _, _ := newTestUseCase(t)
		created := mustCreate(t, uc, "self@example.com", model.RoleUser)

		sc := adminScope()
		sc.UserID = created.ID
		if err := uc.Delete(ctx, sc, created.ID); !errors.Is(err, user.ErrForbidden) {
			t.Errorf("error mismatch: got %v, want %v", err, user.ErrForbidden)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, _, _ := newTestUseCase(t)
		if err := uc.Delete(ctx, adminScope(), 777); !errors.Is(err, user.ErrUserNotFound) {
			t.Errorf("error mismatch: got %v, want %v", err, user.ErrUserNotFound)
		}
	})
}
