package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"
	"unicode"

	"sobujigangas/internal/domain/entities"
	"sobujigangas/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidEmail     = errors.New("invalid email")
	ErrInvalidResetCode = errors.New("invalid or expired reset code")
	ErrWeakPassword     = errors.New("password does not meet the policy")
)

// resetCodeTTL is how long a recovery code stays valid.
const resetCodeTTL = 10 * time.Minute

// IPasswordResetUseCase implements the three-step recovery flow:
// send a 6-digit code by e-mail, verify it, then reset the password.

type IPasswordResetUseCase interface {
	SendResetCode(ctx context.Context, email string) error
	VerifyResetCode(ctx context.Context, email, code string) (bool, error)
	ResetPassword(ctx context.Context, email, code, newPassword string) error
}

type PasswordResetUseCase struct {
	codes    interfaces.IPasswordResetRepository
	profiles interfaces.IProfileRepository
	sender   interfaces.IEmailSender
	now      func() time.Time
}

var _ IPasswordResetUseCase = (*PasswordResetUseCase)(nil)

func NewPasswordResetUseCase(codes interfaces.IPasswordResetRepository, profiles interfaces.IProfileRepository, sender interfaces.IEmailSender) *PasswordResetUseCase {
	return &PasswordResetUseCase{codes: codes, profiles: profiles, sender: sender, now: time.Now}
}

// SendResetCode generates and mails a recovery code. An unknown e-mail
// still succeeds so the endpoint cannot be used to enumerate accounts.
// Any previously unused codes for the address are invalidated first.
func (u *PasswordResetUseCase) SendResetCode(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return ErrInvalidEmail
	}

	profile, err := u.profiles.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if profile.ID == "" {
		log.Info().Str("email", email).Msg("reset requested for unknown email")
		return nil
	}

	if err := u.codes.InvalidateActive(ctx, email); err != nil {
		return err
	}

	code, err := generateResetCode()
	if err != nil {
		return err
	}

	now := u.now().UTC()
	if _, err := u.codes.Create(ctx, entities.PasswordResetCode{
		ID:        uuid.NewString(),
		Email:     email,
		Code:      code,
		ExpiresAt: now.Add(resetCodeTTL),
		CreatedAt: now,
	}); err != nil {
		return err
	}

	if err := u.sender.SendPasswordResetCode(ctx, email, profile.Nome, code); err != nil {
		log.Error().Err(err).Str("email", email).Msg("reset code email failed")
		return err
	}
	log.Info().Str("email", email).Msg("reset code sent")
	return nil
}

func (u *PasswordResetUseCase) VerifyResetCode(ctx context.Context, email, code string) (bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	code = strings.TrimSpace(code)
	if email == "" || code == "" {
		return false, ErrInvalidEmail
	}

	rc, err := u.codes.FindActive(ctx, email, code)
	if err != nil {
		return false, err
	}
	return rc.ID != "" && rc.IsUsable(u.now()), nil
}

// ResetPassword re-verifies the code, applies the password policy,
// stores the new bcrypt hash, burns the code and clears the
// senha_temporaria flag.
func (u *PasswordResetUseCase) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	code = strings.TrimSpace(code)
	if email == "" || code == "" {
		return ErrInvalidEmail
	}
	if !IsStrongPassword(newPassword) {
		return ErrWeakPassword
	}

	rc, err := u.codes.FindActive(ctx, email, code)
	if err != nil {
		return err
	}
	if rc.ID == "" || !rc.IsUsable(u.now()) {
		return ErrInvalidResetCode
	}

	profile, err := u.profiles.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if profile.ID == "" {
		return ErrUserNotFound
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := u.profiles.UpdatePassword(ctx, profile.ID, string(hash), false); err != nil {
		return err
	}
	if err := u.codes.MarkUsed(ctx, rc.ID); err != nil {
		return err
	}
	log.Info().Str("user_id", profile.ID).Msg("password reset completed")
	return nil
}

// IsStrongPassword enforces the recovery policy: at least 8 characters
// with upper case, lower case, a digit and a special character.
func IsStrongPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			special = true
		}
	}
	return upper && lower && digit && special
}

func generateResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
