package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lshigami/quizdesk/config"
	"github.com/lshigami/quizdesk/internal/auth"
	"github.com/lshigami/quizdesk/internal/dto"
	"github.com/lshigami/quizdesk/internal/model"
	"github.com/lshigami/quizdesk/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

const (
	forgotPasswordMessage = "If an account with this email exists, a reset token has been generated"
	minPasswordLength     = 6
)

type AuthService interface {
	Register(req dto.RegisterDTO) (*dto.AdminResponse, error)
	Login(req dto.LoginDTO) (*dto.TokenResponse, error)
	ForgotPassword(req dto.ForgotPasswordDTO) (*dto.ForgotPasswordResponse, error)
	ResetPassword(ctx context.Context, req dto.ResetPasswordDTO) error
	ChangePassword(adminID uint, req dto.ChangePasswordDTO) error
}

type authService struct {
	adminRepo repository.AdminRepository
	tokens    ResetTokenStore
	cfg       *config.Config
}

func NewAuthService(adminRepo repository.AdminRepository, tokens ResetTokenStore, cfg *config.Config) AuthService {
	return &authService{adminRepo: adminRepo, tokens: tokens, cfg: cfg}
}

const debugMode = "debug"

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) Register(req dto.RegisterDTO) (*dto.AdminResponse, error) {
	if s.cfg.RegistrationKey == "" {
		return nil, fmt.Errorf("registration is disabled: %w", ErrUnauthorized)
	}
	if subtle.ConstantTimeCompare([]byte(req.RegistrationKey), []byte(s.cfg.RegistrationKey)) != 1 {
		log.Warn().Msg("Admin registration attempted with a wrong key")
		return nil, fmt.Errorf("invalid registration key: %w", ErrUnauthorized)
	}

	email := normalizeEmail(req.Email)
	if email == "" {
		return nil, validationErrorf("email is required")
	}
	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}
	if _, err := s.adminRepo.FindByEmail(email); err == nil {
		return nil, fmt.Errorf("admin %q: %w", email, ErrConflict)
	} else if !isNotFound(err) {
		return nil, repoError(err, "check admin email")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	admin := model.Admin{Email: email, PasswordHash: string(hash)}
	if err := s.adminRepo.Create(&admin); err != nil {
		log.Error().Err(err).Msg("Failed to create admin")
		return nil, repoError(err, "create admin")
	}
	log.Info().Uint("adminID", admin.ID).Msg("Admin registered")
	return &dto.AdminResponse{ID: admin.ID, Email: admin.Email, CreatedAt: admin.CreatedAt}, nil
}

func (s *authService) Login(req dto.LoginDTO) (*dto.TokenResponse, error) {
	invalid := fmt.Errorf("invalid email or password: %w", ErrUnauthorized)

	admin, err := s.adminRepo.FindByEmail(normalizeEmail(req.Email))
	if err != nil {
		if isNotFound(err) {
			return nil, invalid
		}
		return nil, repoError(err, "find admin")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, invalid
	}

	token, claims, err := auth.GenerateToken(admin.ID, admin.Email, auth.PurposeAccess, s.cfg.JWT.Secret, s.cfg.JWT.ExpireAfter)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{Token: token, ExpiresAt: claims.ExpiresAt.Time, Email: admin.Email}, nil
}

// ForgotPassword issues a short-lived reset token. The response is the same
// whether or not the account exists, except in debug mode where the token of
// an existing account is returned since there is no mail delivery.
func (s *authService) ForgotPassword(req dto.ForgotPasswordDTO) (*dto.ForgotPasswordResponse, error) {
	resp := &dto.ForgotPasswordResponse{Message: forgotPasswordMessage}

	admin, err := s.adminRepo.FindByEmail(normalizeEmail(req.Email))
	if err != nil {
		if isNotFound(err) {
			log.Info().Msg("Password reset requested for an unknown email")
			return resp, nil
		}
		return nil, repoError(err, "find admin")
	}

	token, _, err := auth.GenerateToken(admin.ID, admin.Email, auth.PurposePasswordReset, s.cfg.JWT.Secret, s.cfg.JWT.ResetAfter)
	if err != nil {
		return nil, err
	}
	log.Info().Uint("adminID", admin.ID).Dur("validFor", s.cfg.JWT.ResetAfter).Msg("Password reset token issued")
	if s.cfg.Server.Mode == debugMode {
		resp.ResetToken = token
	}
	return resp, nil
}

// ResetPassword accepts each reset token once.
func (s *authService) ResetPassword(ctx context.Context, req dto.ResetPasswordDTO) error {
	if err := validatePassword(req.NewPassword); err != nil {
		return err
	}
	claims, err := auth.ParseToken(req.Token, s.cfg.JWT.Secret, auth.PurposePasswordReset)
	if err != nil {
		return fmt.Errorf("invalid or expired reset token: %w", ErrUnauthorized)
	}

	admin, err := s.adminRepo.FindByID(claims.AdminID)
	if err != nil {
		return repoError(err, fmt.Sprintf("admin %d", claims.AdminID))
	}
	if admin.Email != claims.Email {
		return fmt.Errorf("reset token does not match the account: %w", ErrUnauthorized)
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	firstUse, err := s.tokens.MarkUsed(ctx, claims.ID, ttl)
	if err != nil {
		log.Error().Err(err).Msg("Failed to record reset token use")
		return fmt.Errorf("record reset token: %w", err)
	}
	if !firstUse {
		return fmt.Errorf("reset token was already used: %w", ErrUnauthorized)
	}

	return s.setPassword(admin.ID, req.NewPassword)
}

func (s *authService) ChangePassword(adminID uint, req dto.ChangePasswordDTO) error {
	if err := validatePassword(req.NewPassword); err != nil {
		return err
	}
	admin, err := s.adminRepo.FindByID(adminID)
	if err != nil {
		return repoError(err, fmt.Sprintf("admin %d", adminID))
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return fmt.Errorf("current password is incorrect: %w", ErrUnauthorized)
		}
		return fmt.Errorf("compare password: %w", err)
	}
	return s.setPassword(admin.ID, req.NewPassword)
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return validationErrorf("new password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

func (s *authService) setPassword(adminID uint, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.adminRepo.UpdatePassword(adminID, string(hash)); err != nil {
		log.Error().Err(err).Uint("adminID", adminID).Msg("Failed to update password")
		return repoError(err, "update password")
	}
	log.Info().Uint("adminID", adminID).Msg("Admin password updated")
	return nil
}
