package usecases

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"keybuddy/internal/domain/user"
	vo "keybuddy/internal/domain/user/value_objects"
	"keybuddy/internal/domain/userlog"
	"keybuddy/internal/infrastructure/auth"
	"keybuddy/internal/shared/authorization"
	"keybuddy/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type fakeUserRepo struct {
	users   map[string]*user.User
	updates int
}

func (r *fakeUserRepo) Create(ctx context.Context, u *user.User) error { return nil }
func (r *fakeUserRepo) GetByID(ctx context.Context, id uint) (*user.User, error) {
	for _, u := range r.users {
		if u.ID() == id {
			return u, nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	return r.users[username], nil
}
func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) Update(ctx context.Context, u *user.User) error {
	r.updates++
	return nil
}
func (r *fakeUserRepo) Delete(ctx context.Context, id uint) error { return nil }
func (r *fakeUserRepo) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	return nil, 0, nil
}
func (r *fakeUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, ok := r.users[username]
	return ok, nil
}
func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}
func (r *fakeUserRepo) GetByVerificationToken(ctx context.Context, tokenHash string) (*user.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) GetByPasswordResetToken(ctx context.Context, tokenHash string) (*user.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) CountAdmins(ctx context.Context) (int64, error) { return 1, nil }

type fakeLogRepo struct {
	entries []*userlog.UserLog
}

func (r *fakeLogRepo) Create(ctx context.Context, entry *userlog.UserLog) error {
	r.entries = append(r.entries, entry)
	return nil
}
func (r *fakeLogRepo) List(ctx context.Context, filter userlog.ListFilter) ([]*userlog.UserLog, int64, error) {
	return r.entries, int64(len(r.entries)), nil
}

type fakeTOTP struct {
	validCode string
}

func (f *fakeTOTP) GenerateEnrollment(username string) (*auth.TOTPEnrollment, error) {
	return &auth.TOTPEnrollment{Secret: "SECRET"}, nil
}
func (f *fakeTOTP) Validate(code, secret string) bool {
	return code == f.validCode && secret != ""
}

func newTestUser(t *testing.T, role authorization.UserRole, passwordHash string) *user.User {
	t.Helper()

	username, err := vo.NewUsername("anna")
	if err != nil {
		t.Fatalf("NewUsername() error = %v", err)
	}
	email, err := vo.NewEmail("anna@example.com")
	if err != nil {
		t.Fatalf("NewEmail() error = %v", err)
	}

	u, err := user.NewUser(username, email, "Anna Svensson", role)
	if err != nil {
		t.Fatalf("NewUser() error = %v", err)
	}
	u.SetID(1)
	u.SetPasswordHash(passwordHash)
	if err := u.VerifyEmailByAdmin(); err != nil {
		t.Fatalf("VerifyEmailByAdmin() error = %v", err)
	}
	return u
}

func newLoginUseCase(t *testing.T, u *user.User, totp TOTPService) (*LoginUseCase, *fakeUserRepo, *fakeLogRepo) {
	t.Helper()

	hasher := auth.NewBcryptPasswordHasher(4)
	jwtService := auth.NewJWTService("test-secret", 15, 7)
	userRepo := &fakeUserRepo{users: map[string]*user.User{u.Username().String(): u}}
	logRepo := &fakeLogRepo{}
	if totp == nil {
		totp = &fakeTOTP{}
	}
	return NewLoginUseCase(userRepo, logRepo, hasher, jwtService, totp, testLogger()), userRepo, logRepo
}

func TestLoginUseCase_Execute(t *testing.T) {
	hasher := auth.NewBcryptPasswordHasher(4)
	hash, err := hasher.Hash("correct-password")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	u := newTestUser(t, authorization.RoleUser, hash)
	uc, userRepo, logRepo := newLoginUseCase(t, u, nil)

	result, err := uc.Execute(context.Background(), LoginCommand{
		Username:  "anna",
		Password:  "correct-password",
		IPAddress: "192.168.1.10",
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if result.RequiresTwoFactor {
		t.Error("login without 2FA should complete in one step")
	}
	if result.AccessToken == "" || result.RefreshToken == "" {
		t.Error("login should issue a token pair")
	}
	if u.LastLoginAt() == nil {
		t.Error("login should be recorded on the account")
	}
	if userRepo.updates == 0 {
		t.Error("the updated account should be persisted")
	}
	if len(logRepo.entries) != 1 {
		t.Errorf("activity log entries = %d, want 1", len(logRepo.entries))
	}
}

func TestLoginUseCase_WrongPassword(t *testing.T) {
	hasher := auth.NewBcryptPasswordHasher(4)
	hash, err := hasher.Hash("correct-password")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	uc, _, _ := newLoginUseCase(t, newTestUser(t, authorization.RoleUser, hash), nil)

	if _, err := uc.Execute(context.Background(), LoginCommand{Username: "anna", Password: "wrong"}); err == nil {
		t.Error("Execute() with a wrong password should fail")
	}
}

func TestLoginUseCase_UnknownUser(t *testing.T) {
	uc, _, _ := newLoginUseCase(t, newTestUser(t, authorization.RoleUser, "x"), nil)

	if _, err := uc.Execute(context.Background(), LoginCommand{Username: "nobody", Password: "pw"}); err == nil {
		t.Error("Execute() for an unknown user should fail")
	}
}

func TestLoginUseCase_TwoFactorTwoStep(t *testing.T) {
	hasher := auth.NewBcryptPasswordHasher(4)
	hash, err := hasher.Hash("correct-password")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	u := newTestUser(t, authorization.RoleUser, hash)
	if err := u.EnableTwoFactor("JBSWY3DPEHPK3PXP"); err != nil {
		t.Fatalf("EnableTwoFactor() error = %v", err)
	}

	uc, _, _ := newLoginUseCase(t, u, &fakeTOTP{validCode: "123456"})

	// First step: correct password, no code yet.
	result, err := uc.Execute(context.Background(), LoginCommand{Username: "anna", Password: "correct-password"})
	if err != nil {
		t.Fatalf("Execute() first step error = %v", err)
	}
	if !result.RequiresTwoFactor {
		t.Fatal("first step should ask for the two-factor code")
	}
	if result.AccessToken != "" {
		t.Error("no tokens may be issued before the code is verified")
	}

	// Second step with a wrong code.
	if _, err := uc.Execute(context.Background(), LoginCommand{
		Username: "anna", Password: "correct-password", TwoFactorCode: "999999",
	}); err == nil {
		t.Error("a wrong two-factor code should be rejected")
	}

	// Second step with the right code.
	result, err = uc.Execute(context.Background(), LoginCommand{
		Username: "anna", Password: "correct-password", TwoFactorCode: "123456",
	})
	if err != nil {
		t.Fatalf("Execute() second step error = %v", err)
	}
	if result.RequiresTwoFactor || result.AccessToken == "" {
		t.Errorf("second step should complete the login, got %+v", result)
	}
}

func TestLoginUseCase_AdminBypassesTwoFactor(t *testing.T) {
	hasher := auth.NewBcryptPasswordHasher(4)
	hash, err := hasher.Hash("correct-password")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	u := newTestUser(t, authorization.RoleAdmin, hash)
	if err := u.EnableTwoFactor("JBSWY3DPEHPK3PXP"); err != nil {
		t.Fatalf("EnableTwoFactor() error = %v", err)
	}

	uc, _, _ := newLoginUseCase(t, u, &fakeTOTP{validCode: "123456"})

	result, err := uc.Execute(context.Background(), LoginCommand{Username: "anna", Password: "correct-password"})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if result.RequiresTwoFactor {
		t.Error("administrators log in without a two-factor step")
	}
}

func TestLoginUseCase_UpgradesLegacyHash(t *testing.T) {
	// An unsalted SHA-256 of the password, as stored by old releases.
	legacy := "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8" // "password"

	u := newTestUser(t, authorization.RoleUser, legacy)
	uc, _, _ := newLoginUseCase(t, u, nil)

	if _, err := uc.Execute(context.Background(), LoginCommand{Username: "anna", Password: "password"}); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	hasher := auth.NewBcryptPasswordHasher(4)
	if hasher.IsLegacyHash(u.PasswordHash()) {
		t.Error("the stored hash should be upgraded to bcrypt after login")
	}
	if err := hasher.Verify("password", u.PasswordHash()); err != nil {
		t.Errorf("the upgraded hash should verify: %v", err)
	}
}

func TestLoginUseCase_UnverifiedEmail(t *testing.T) {
	hasher := auth.NewBcryptPasswordHasher(4)
	hash, err := hasher.Hash("correct-password")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	username, _ := vo.NewUsername("anna")
	email, _ := vo.NewEmail("anna@example.com")
	u, err := user.NewUser(username, email, "Anna Svensson", authorization.RoleUser)
	if err != nil {
		t.Fatalf("NewUser() error = %v", err)
	}
	u.SetID(1)
	u.SetPasswordHash(hash)

	uc, _, _ := newLoginUseCase(t, u, nil)

	if _, err := uc.Execute(context.Background(), LoginCommand{Username: "anna", Password: "correct-password"}); err == nil {
		t.Error("an unverified account must not log in")
	}
}
