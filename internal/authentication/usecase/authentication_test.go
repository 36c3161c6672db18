package usecase

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"sync"
	"testing"
	"time"

	"identity-srv/internal/audit"
	"identity-srv/internal/authentication"
	"identity-srv/internal/model"
	"identity-srv/internal/user"
	pkgJWT "identity-srv/pkg/jwt"
	"identity-srv/pkg/log"
	"identity-srv/pkg/paginator"
)

type fakeUserUC struct {
	users        map[int64]model.User
	passwords    map[string]string
	nextID       int64
	authenticate func(email, password string) (model.User, error)
}

func newFakeUserUC() *fakeUserUC {
	return &fakeUserUC{users: map[int64]model.User{}, passwords: map[string]string{}, nextID: 1}
}

func (f *fakeUserUC) Create(_ context.Context, _ model.Scope, input user.CreateInput) (model.User, error) {
	for _, u := range f.users {
		if u.Email == input.Email {
			return model.User{}, user.ErrEmailTaken
		}
	}
	u := model.User{
		ID:       f.nextID,
		Email:    input.Email,
		FullName: input.FullName,
		Role:     input.Role,
		IsActive: input.IsActive,
	}
	f.users[u.ID] = u
	f.passwords[input.Email] = input.Password
	f.nextID++
	return u, nil
}

func (f *fakeUserUC) Authenticate(_ context.Context, email, password string) (model.User, error) {
	if f.authenticate != nil {
		return f.authenticate(email, password)
	}
	stored, ok := f.passwords[email]
	if !ok || stored != password {
		return model.User{}, user.ErrInvalidCredentials
	}
	for _, u := range f.users {
		if u.Email == email {
			if !u.IsActive {
				return model.User{}, user.ErrInactiveUser
			}
			return u, nil
		}
	}
	return model.User{}, user.ErrInvalidCredentials
}

func (f *fakeUserUC) Detail(_ context.Context, _ model.Scope, id int64) (model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return model.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserUC) List(_ context.Context, _ model.Scope, _ user.ListInput) ([]model.User, paginator.Paginator, error) {
	return nil, paginator.Paginator{}, nil
}

func (f *fakeUserUC) Update(_ context.Context, _ model.Scope, _ int64, _ user.UpdateInput) (model.User, error) {
	return model.User{}, user.ErrUserNotFound
}

func (f *fakeUserUC) Delete(_ context.Context, _ model.Scope, _ int64) error {
	return user.ErrUserNotFound
}

type fakeAuditUC struct {
	events []audit.RecordInput
}

func (f *fakeAuditUC) Record(_ context.Context, input audit.RecordInput) {
	f.events = append(f.events, input)
}

func (f *fakeAuditUC) List(_ context.Context, _ model.Scope, _ audit.ListInput) ([]model.AuditLog, paginator.Paginator, error) {
	return nil, paginator.Paginator{}, nil
}

func (f *fakeAuditUC) lastAction() string {
	if len(f.events) == 0 {
		return ""
	}
	return f.events[len(f.events)-1].Action
}

var (
	jwtOnce    sync.Once
	jwtManager *pkgJWT.Manager
	jwtErr     error
)

func testJWTManager(t *testing.T) *pkgJWT.Manager {
	t.Helper()
	jwtOnce.Do(func() {
		key, err := rsa.GenerateKey(rand.Reader, 2048)
		if err != nil {
			jwtErr = err
			return
		}
		privPEM := pem.EncodeToMemory(&pem.Block{
			Type:  "RSA PRIVATE KEY",
			Bytes: x509.MarshalPKCS1PrivateKey(key),
		})
		pubDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
		if err != nil {
			jwtErr = err
			return
		}
		pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER})

		jwtManager, jwtErr = pkgJWT.New(pkgJWT.Config{
			PrivateKeyPEM: string(privPEM),
			PublicKeyPEM:  string(pubPEM),
			Issuer:        "identity-srv",
			Audience:      []string{"identity-services"},
			AccessTTL:     time.Minute,
			RefreshTTL:    time.Hour,
		})
	})
	if jwtErr != nil {
		t.Fatalf("test jwt manager: %v", jwtErr)
	}
	return jwtManager
}

func newTestAuthUC(t *testing.T) (authentication.UseCase, *fakeUserUC, *fakeAuditUC) {
	t.Helper()
	userUC := newFakeUserUC()
	auditUC := &fakeAuditUC{}
	return New(userUC, auditUC, testJWTManager(t), log.NewNop()), userUC, auditUC
}

func seedUser(t *testing.T, uc authentication.UseCase) model.User {
	t.Helper()
	u, err := uc.Register(context.Background(), authentication.RegisterInput{
		Email:    "user@example.com",
		Password: "Secret!1",
		FullName: "Test User",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	return u
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("issues a token pair", func(t *testing.T) {
		uc, _, auditUC := newTestAuthUC(t)
		seedUser(t, uc)

		out, err := uc.Login(ctx, authentication.LoginInput{Email: "user@example.com", Password: "Secret!1"})
		if err != nil {
			t.Fatalf("Login: %v", err)
		}

		if out.TokenType != "bearer" {
			t.Errorf("token type mismatch: got %s, want bearer", out.TokenType)
		}
		if out.ExpiresIn != 60 {
			t.Errorf("expires_in mismatch: got %d, want 60", out.ExpiresIn)
		}
		if out.AccessToken == "" || out.RefreshToken == "" {
			t.Fatal("both tokens should be issued")
		}
		if out.AccessToken == out.RefreshToken {
			t.Error("access and refresh tokens should differ")
		}

		m := testJWTManager(t)
		if _, err := m.Verify(out.AccessToken, pkgJWT.TokenTypeAccess); err != nil {
			t.Errorf("access token should verify: %v", err)
		}
		if _, err := m.Verify(out.RefreshToken, pkgJWT.TokenTypeRefresh); err != nil {
			t.Errorf("refresh token should verify: %v", err)
		}

		if auditUC.lastAction() != model.AuditActionLogin {
			t.Errorf("audit action mismatch: got %s, want %s", auditUC.lastAction(), model.AuditActionLogin)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		uc, _, auditUC := newTestAuthUC(t)
		seedUser(t, uc)

		_, err := uc.Login(ctx, authentication.LoginInput{Email: "user@example.com", Password: "Wrong!1"})
		if !errors.Is(err, authentication.ErrInvalidCredentials) {
			t.Errorf("error mismatch: got %v, want %v", err, authentication.ErrInvalidCredentials)
		}
		if auditUC.lastAction() != model.AuditActionLoginFailed {
			t.Errorf("audit action mismatch: got %s, want %s", auditUC.lastAction(), model.AuditActionLoginFailed)
		}
	})

	t.Run("inactive account", func(t *testing.T) {
		uc, userUC, _ := newTestAuthUC(t)
		created := seedUser(t, uc)

		u := userUC.users[created.ID]
		u.IsActive = false
		userUC.users[created.ID] = u

		_, err := uc.Login(ctx, authentication.LoginInput{Email: "user@example.com", Password: "Secret!1"})
		if !errors.Is(err, authentication.ErrInactiveUser) {
			t.Errorf("error mismatch: got %v, want %v", err, authentication.ErrInactiveUser)
		}
	})
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a plain active user", func(t *testing.T) {
		uc, _, auditUC := newTestAuthUC(t)
		u := seedUser(t, uc)

		if u.Role != model.RoleUser {
			t.Errorf("role mismatch: got %s, want %s", u.Role, model.RoleUser)
		}
		if !u.IsActive {
			t.Error("new accounts should be active")
		}
		if auditUC.lastAction() != model.AuditActionRegister {
			t.Errorf("audit action mismatch: got %s, want %s", auditUC.lastAction(), model.AuditActionRegister)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		uc, _, _ := newTestAuthUC(t)
		seedUser(t, uc)

		_, err := uc.Register(ctx, authentication.RegisterInput{
			Email:    "user@example.com",
			Password: "Secret!1",
			FullName: "Again",
		})
		if !errors.Is(err, authentication.ErrEmailTaken) {
			t.Errorf("error mismatch: got %v, want %v", err, authentication.ErrEmailTaken)
		}
	})
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()

	t.Run("exchanges a valid refresh token", func(t *testing.T) {
		uc, _, auditUC := newTestAuthUC(t)
		seedUser(t, uc)

		first, err := uc.Login(ctx, authentication.LoginInput{Email: "user@example.com", Password: "Secret!1"})
		if err != nil {
			t.Fatalf("Login: %v", err)
		}

		out, err := uc.Refresh(ctx, authentication.RefreshInput{RefreshToken: first.RefreshToken})
		if err != nil {
			t.Fatalf("Refresh: %v", err)
		}
		if out.AccessToken == "" || out.RefreshToken == "" {
			t.Fatal("refresh should issue a full pair")
		}
		if auditUC.lastAction() != model.AuditActionTokenRefresh {
			t.Errorf("audit action mismatch: got %s, want %s", auditUC.lastAction(), model.AuditActionTokenRefresh)
		}
	})

	t.Run("access token rejected", func(t *testing.T) {
		uc, _, _ := newTestAuthUC(t)
		seedUser(t, uc)

		out, err := uc.Login(ctx, authentication.LoginInput{Email: "user@example.com", Password: "Secret!1"})
		if err != nil {
			t.Fatalf("Login: %v", err)
		}

		if _, err := uc.Refresh(ctx, authentication.RefreshInput{RefreshToken: out.AccessToken}); !errors.Is(err, authentication.ErrInvalidRefreshToken) {
			t.Errorf("error mismatch: got %v, want %v", err, authentication.ErrInvalidRefreshToken)
		}
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		uc, _, _ := newTestAuthUC(t)
		if _, err := uc.Refresh(ctx, authentication.RefreshInput{RefreshToken: "garbage"}); !errors.Is(err, authentication.ErrInvalidRefreshToken) {
			t.Errorf("error mismatch: got %v, want %v", err, authentication.ErrInvalidRefreshToken)
		}
	})

	t.Run("deactivated subject rejected", func(t *testing.T) {
		uc, userUC, _ := newTestAuthUC(t)
		created := seedUser(t, uc)

		out, err := uc.Login(ctx, authentication.LoginInput{Email: "user@example.com", Password: "Secret!1"})
		if err != nil {
			t.Fatalf("Login: %v", err)
		}

		u := userUC.users[created.ID]
		u.IsActive = false
		userUC.users[created.ID] = u

		if _, err := uc.Refresh(ctx, authentication.RefreshInput{RefreshToken: out.RefreshToken}); !errors.Is(err, authentication.ErrInactiveUser) {
			t.Errorf("error mismatch: got %v, want %v", err, authentication.ErrInactiveUser)
		}
	})

	t.Run("deleted subject rejected", func(t *testing.T) {
		uc, userUC, _ := newTestAuthUC(t)
		created := seedUser(t, uc)

		out, err := uc.Login(ctx, authentication.LoginInput{Email: "user@example.com", Password: "Secret!1"})
		if err != nil {
			t.Fatalf("Login: %v", err)
		}

		delete(userUC.users, created.ID)

		if _, err := uc.Refresh(ctx, authentication.RefreshInput{RefreshToken: out.RefreshToken}); !errors.Is(err, authentication.ErrUserNotFound) {
			t.Errorf("error mismatch: got %v, want %v", err, authentication.ErrUserNotFound)
		}
	})
}

func TestMeAndLogout(t *testing.T) {
	ctx := context.Background()

	t.Run("me returns the scoped account", func(t *testing.T) {
		uc, _, _ := newTestAuthUC(t)
		created := seedUser(t, uc)

		u, err := uc.Me(ctx, model.Scope{UserID: created.ID})
		if err != nil {
			t.Fatalf("Me: %v", err)
		}
		if u.Email != "user@example.com" {
			t.Errorf("email mismatch: got %s", u.Email)
		}
	})

	t.Run("logout records an audit event", func(t *testing.T) {
		uc, _, auditUC := newTestAuthUC(t)
		created := seedUser(t, uc)

		uc.Logout(ctx, model.Scope{UserID: created.ID, Email: "user@example.com"}, authentication.RequestMeta{})
		if auditUC.lastAction() != model.AuditActionLogout {
			t.Errorf("audit action mismatch: got %s, want %s", auditUC.lastAction(), model.AuditActionLogout)
		}
	})
}

func TestPublicKeyEndpoints(t *testing.T) {
	uc, _, _ := newTestAuthUC(t)

	if uc.PublicKeyPEM() == "" {
		t.Error("public key PEM should not be empty")
	}

	set := uc.JWKS()
	if len(set.Keys) != 1 {
		t.Fatalf("key count mismatch: got %d, want 1", len(set.Keys))
	}
	if set.Keys[0].Kty != "RSA" {
		t.Errorf("kty mismatch: got %s, want RSA", set.Keys[0].Kty)
	}
}
