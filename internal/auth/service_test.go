package auth

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ainnoce10/ebf-backend/pkg/config"
	"github.com/ainnoce10/ebf-backend/pkg/db/models"
	"github.com/ainnoce10/ebf-backend/pkg/enums"
	pkgerrors "github.com/ainnoce10/ebf-backend/pkg/errors"
	"github.com/ainnoce10/ebf-backend/pkg/security"
)

type fakeUsers struct {
	byEmail map[string]*models.User
	byID    map[uuid.UUID]*models.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byEmail: map[string]*models.User{}, byID: map[uuid.UUID]*models.User{}}
}

func (f *fakeUsers) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	if user, ok := f.byID[id]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if user, ok := f.byEmail[strings.ToLower(strings.TrimSpace(email))]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUsers) Create(_ context.Context, user *models.User) (*models.User, error) {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.byEmail[user.Email] = user
	f.byID[user.ID] = user
	return user, nil
}

type fakeSessions struct {
	active map[string]string
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{active: map[string]string{}}
}

func (f *fakeSessions) Generate(_ context.Context, accessID string) (string, error) {
	token := "refresh-" + accessID
	f.active[accessID] = token
	return token, nil
}

func (f *fakeSessions) Rotate(_ context.Context, oldAccessID, provided string) (string, string, error) {
	stored, ok := f.active[oldAccessID]
	if !ok || stored != provided {
		return "", "", pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid refresh token")
	}
	delete(f.active, oldAccessID)
	newID := uuid.NewString()
	token := "refresh-" + newID
	f.active[newID] = token
	return newID, token, nil
}

func (f *fakeSessions) Revoke(_ context.Context, accessID string) error {
	delete(f.active, accessID)
	return nil
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret-0123456789",
		Issuer:            "ebf-test",
		ExpirationMinutes: 15,
	}
}

func newTestService(t *testing.T) (Service, *fakeUsers, *fakeSessions) {
	t.Helper()
	userRepo := newFakeUsers()
	sessions := newFakeSessions()
	svc, err := NewService(userRepo, sessions, testJWTConfig(), config.PasswordConfig{})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc, userRepo, sessions
}

func seedUser(t *testing.T, repo *fakeUsers, email, password string, role enums.Role) *models.User {
	t.Helper()
	hash, err := security.HashPassword(password, config.PasswordConfig{})
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		FullName:     "Test Operator",
		Role:         role,
	}
	if _, err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestLoginIssuesTokenPair(t *testing.T) {
	svc, repo, _ := newTestService(t)
	seedUser(t, repo, "admin@ebf.ci", "sup3r-secret", enums.RoleAdmin)

	session, err := svc.Login(context.Background(), "admin@ebf.ci", "sup3r-secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if session.Tokens.AccessToken == "" || session.Tokens.RefreshToken == "" {
		t.Error("expected both tokens to be issued")
	}
	if session.Tokens.ExpiresIn != 15*60 {
		t.Errorf("expires_in = %d, want 900", session.Tokens.ExpiresIn)
	}
	if session.User.Role != enums.RoleAdmin {
		t.Errorf("role = %s, want Admin", session.User.Role)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc, repo, _ := newTestService(t)
	seedUser(t, repo, "admin@ebf.ci", "sup3r-secret", enums.RoleAdmin)

	_, err := svc.Login(context.Background(), "admin@ebf.ci", "wrong")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Errorf("expected unauthorized, got %v", err)
	}
}

func TestLoginUnknownEmailLooksLikeWrongPassword(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Login(context.Background(), "ghost@ebf.ci", "whatever")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Errorf("expected unauthorized, got %v", err)
	}
	if typed != nil && typed.Message() != "invalid credentials" {
		t.Errorf("message leaks account existence: %q", typed.Message())
	}
}

func TestRefreshRotatesSession(t *testing.T) {
	svc, repo, sessions := newTestService(t)
	seedUser(t, repo, "admin@ebf.ci", "sup3r-secret", enums.RoleAdmin)

	first, err := svc.Login(context.Background(), "admin@ebf.ci", "sup3r-secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	second, err := svc.Refresh(context.Background(), first.Tokens.AccessToken, first.Tokens.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if second.Tokens.RefreshToken == first.Tokens.RefreshToken {
		t.Error("refresh token was not rotated")
	}

	// the old pair must be dead after rotation
	if _, err := svc.Refresh(context.Background(), first.Tokens.AccessToken, first.Tokens.RefreshToken); err == nil {
		t.Error("expected stale refresh token to be rejected")
	}
	if len(sessions.active) != 1 {
		t.Errorf("expected exactly one active session, got %d", len(sessions.active))
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, repo, _ := newTestService(t)
	seedUser(t, repo, "admin@ebf.ci", "sup3r-secret", enums.RoleAdmin)

	_, err := svc.Register(context.Background(), RegisterInput{
		Email:    "admin@ebf.ci",
		Password: "another-pass",
		FullName: "Duplicate",
		Role:     enums.RoleComptable,
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Errorf("expected conflict, got %v", err)
	}
}

func TestRegisterHashesPassword(t *testing.T) {
	svc, repo, _ := newTestService(t)

	user, err := svc.Register(context.Background(), RegisterInput{
		Email:    "compta@ebf.ci",
		Password: "longenough",
		FullName: "Compta EBF",
		Role:     enums.RoleComptable,
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.PasswordHash == "longenough" {
		t.Fatal("password stored in clear")
	}
	match, err := security.VerifyPassword("longenough", user.PasswordHash)
	if err != nil || !match {
		t.Errorf("stored hash does not verify: match=%v err=%v", match, err)
	}
	if _, ok := repo.byEmail["compta@ebf.ci"]; !ok {
		t.Error("user not persisted under normalized email")
	}
}
