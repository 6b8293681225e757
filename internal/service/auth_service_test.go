package service

import (
	"context"
	"testing"
	"time"

	"github.com/lshigami/quizdesk/config"
	"github.com/lshigami/quizdesk/internal/auth"
	"github.com/lshigami/quizdesk/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(mode string) (*memStore, AuthService) {
	m := newMemStore()
	cfg := &config.Config{
		Server:          config.Server{Mode: mode},
		JWT:             config.JWT{Secret: "s3cret", ExpireAfter: time.Hour, ResetAfter: 15 * time.Minute},
		RegistrationKey: "let-me-in",
	}
	return m, NewAuthService(fakeAdminRepo{m}, NewMemoryResetTokenStore(), cfg)
}

func register(t *testing.T, svc AuthService, email, password string) *dto.AdminResponse {
	t.Helper()
	admin, err := svc.Register(dto.RegisterDTO{Email: email, Password: password, RegistrationKey: "let-me-in"})
	require.NoError(t, err)
	return admin
}

func TestAuthService_Register(t *testing.T) {
	m, svc := newAuthFixture("debug")

	admin := register(t, svc, "  Teacher@School.UZ ", "secret1")
	assert.Equal(t, "teacher@school.uz", admin.Email)
	assert.NotEqual(t, "secret1", m.admins[admin.ID].PasswordHash)

	_, err := svc.Register(dto.RegisterDTO{Email: "teacher@school.uz", Password: "secret1", RegistrationKey: "let-me-in"})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = svc.Register(dto.RegisterDTO{Email: "other@school.uz", Password: "secret1", RegistrationKey: "wrong"})
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.Register(dto.RegisterDTO{Email: "short@school.uz", Password: "123", RegistrationKey: "let-me-in"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAuthService_RegisterDisabledWithoutKey(t *testing.T) {
	m := newMemStore()
	svc := NewAuthService(fakeAdminRepo{m}, NewMemoryResetTokenStore(), &config.Config{JWT: config.JWT{Secret: "x"}})
	_, err := svc.Register(dto.RegisterDTO{Email: "a@b.c", Password: "secret1", RegistrationKey: ""})
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, m.admins)
}

func TestAuthService_Login(t *testing.T) {
	_, svc := newAuthFixture("debug")
	admin := register(t, svc, "a@b.c", "secret1")

	tok, err := svc.Login(dto.LoginDTO{Email: " A@B.C", Password: "secret1"})
	require.NoError(t, err)
	claims, err := auth.ParseToken(tok.Token, "s3cret", auth.PurposeAccess)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, claims.AdminID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), tok.ExpiresAt, time.Minute)

	_, err = svc.Login(dto.LoginDTO{Email: "a@b.c", Password: "wrong"})
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, err = svc.Login(dto.LoginDTO{Email: "nobody@b.c", Password: "secret1"})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthService_ForgotPasswordSameMessage(t *testing.T) {
	_, svc := newAuthFixture("debug")
	register(t, svc, "a@b.c", "secret1")

	known, err := svc.ForgotPassword(dto.ForgotPasswordDTO{Email: "a@b.c"})
	require.NoError(t, err)
	unknown, err := svc.ForgotPassword(dto.ForgotPasswordDTO{Email: "x@y.z"})
	require.NoError(t, err)

	assert.Equal(t, known.Message, unknown.Message)
	assert.NotEmpty(t, known.ResetToken)
	assert.Empty(t, unknown.ResetToken)
}

func TestAuthService_ForgotPasswordIdenticalOutsideDebug(t *testing.T) {
	for _, mode := range []string{"release", "test", ""} {
		t.Run("mode="+mode, func(t *testing.T) {
			_, svc := newAuthFixture(mode)
			register(t, svc, "a@b.c", "secret1")

			known, err := svc.ForgotPassword(dto.ForgotPasswordDTO{Email: "a@b.c"})
			require.NoError(t, err)
			unknown, err := svc.ForgotPassword(dto.ForgotPasswordDTO{Email: "x@y.z"})
			require.NoError(t, err)

			assert.Equal(t, unknown, known)
			assert.Empty(t, known.ResetToken)
		})
	}
}

func TestAuthService_ResetPasswordIsSingleUse(t *testing.T) {
	_, svc := newAuthFixture("debug")
	register(t, svc, "a@b.c", "secret1")
	forgot, err := svc.ForgotPassword(dto.ForgotPasswordDTO{Email: "a@b.c"})
	require.NoError(t, err)

	ctx := context.Background()
	_, err = svc.Login(dto.LoginDTO{Email: "a@b.c", Password: "brand-new"})
	require.ErrorIs(t, err, ErrUnauthorized)

	require.NoError(t, svc.ResetPassword(ctx, dto.ResetPasswordDTO{Token: forgot.ResetToken, NewPassword: "brand-new"}))
	_, err = svc.Login(dto.LoginDTO{Email: "a@b.c", Password: "brand-new"})
	require.NoError(t, err)

	err = svc.ResetPassword(ctx, dto.ResetPasswordDTO{Token: forgot.ResetToken, NewPassword: "another1"})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthService_ResetPasswordRejectsAccessToken(t *testing.T) {
	_, svc := newAuthFixture("debug")
	register(t, svc, "a@b.c", "secret1")
	tok, err := svc.Login(dto.LoginDTO{Email: "a@b.c", Password: "secret1"})
	require.NoError(t, err)

	err = svc.ResetPassword(context.Background(), dto.ResetPasswordDTO{Token: tok.Token, NewPassword: "brand-new"})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthService_ChangePassword(t *testing.T) {
	_, svc := newAuthFixture("debug")
	admin := register(t, svc, "a@b.c", "secret1")

	err := svc.ChangePassword(admin.ID, dto.ChangePasswordDTO{CurrentPassword: "nope", NewPassword: "secret2"})
	assert.ErrorIs(t, err, ErrUnauthorized)

	require.NoError(t, svc.ChangePassword(admin.ID, dto.ChangePasswordDTO{CurrentPassword: "secret1", NewPassword: "secret2"}))
	_, err = svc.Login(dto.LoginDTO{Email: "a@b.c", Password: "secret2"})
	assert.NoError(t, err)
}

func TestMemoryResetTokenStore(t *testing.T) {
	store := NewMemoryResetTokenStore().(*memoryResetTokenStore)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	ok, err := store.MarkUsed(ctx, "t1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, _ = store.MarkUsed(ctx, "t1", time.Minute)
	assert.False(t, ok)

	now = now.Add(2 * time.Minute)
	ok, _ = store.MarkUsed(ctx, "t1", time.Minute)
	assert.True(t, ok, "entries are forgotten once the token itself has expired")
}
