package service

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/nsplatform/backend/internal/errs"
	"github.com/nsplatform/backend/internal/mailer"
	"github.com/nsplatform/backend/internal/model"
	"github.com/nsplatform/backend/internal/repository"
)

// TokenTTL is the validity window of a verification token.
const TokenTTL = 24 * time.Hour

// SendResult reports the outcome of one send in a batch.
type SendResult struct {
	UserID int64
	Email  string
	Err    error
}

// VerificationService drives the UNVERIFIED -> TOKEN_ISSUED -> VERIFIED state machine.
type VerificationService interface {
	// Send issues a fresh token (replacing any live one) and emails the link.
	// The token is durably stored before the send; a delivery failure returns
	// ErrEmailDelivery and leaves the token in place.
	Send(ctx context.Context, u *model.User) error
	// Confirm consumes a token, marking the profile verified.
	Confirm(ctx context.Context, token string) error
	// Resend re-issues the token for the account owning the email.
	Resend(ctx context.Context, email string) error
	// SendBatch sends to every user and collects per-user outcomes.
	SendBatch(ctx context.Context, users []model.User) []SendResult
	// Status loads the verification profile owned by the user.
	Status(ctx context.Context, userID int64) (*model.Profile, error)
}

type VerificationServiceImpl struct {
	users    repository.UserRepository
	profiles repository.ProfileRepository
	mail     mailer.Sender
	now      func() time.Time
}

// NewVerificationService constructs VerificationService.
func NewVerificationService(users repository.UserRepository, profiles repository.ProfileRepository,
	mail mailer.Sender) *VerificationServiceImpl {
	return &VerificationServiceImpl{users: users, profiles: profiles, mail: mail, now: time.Now}
}

// Send stores a fresh 128-bit token, then emails the link.
func (s *VerificationServiceImpl) Send(ctx context.Context, u *model.User) error {
	tok, err := newToken()
	if err != nil {
		return err
	}
	if err := s.profiles.SetToken(ctx, u.ID, tok, s.now()); err != nil {
		return err
	}
	if err := s.mail.SendVerification(u.Email, displayName(u), tok); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrEmailDelivery, err)
	}
	return nil
}

// Confirm verifies the profile holding the token.
// An expired token does not mutate state; the caller must trigger a resend.
func (s *VerificationServiceImpl) Confirm(ctx context.Context, token string) error {
	if token == "" {
		return errs.ErrInvalidToken
	}
	p, err := s.profiles.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			// never issued or already consumed; callers cannot tell which
			return errs.ErrInvalidToken
		}
		return err
	}
	if !p.TokenValid(s.now(), TokenTTL) {
		return errs.ErrTokenExpired
	}
	return s.profiles.MarkVerified(ctx, p.UserID)
}

// Resend issues a new link for the account owning the email.
func (s *VerificationServiceImpl) Resend(ctx context.Context, email string) error {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	p, err := s.profiles.GetByUserID(ctx, u.ID)
	if err != nil {
		return err
	}
	if p.EmailVerified {
		return errs.ErrAlreadyVerified
	}
	return s.Send(ctx, u)
}

// SendBatch sends to each user; one failed send never aborts the batch.
func (s *VerificationServiceImpl) SendBatch(ctx context.Context, users []model.User) []SendResult {
	out := make([]SendResult, 0, len(users))
	for i := range users {
		u := &users[i]
		out = append(out, SendResult{UserID: u.ID, Email: u.Email, Err: s.Send(ctx, u)})
	}
	return out
}

// Status loads the verification profile owned by the user.
func (s *VerificationServiceImpl) Status(ctx context.Context, userID int64) (*model.Profile, error) {
	return s.profiles.GetByUserID(ctx, userID)
}

// newToken returns a 128-bit opaque token in hex.
func newToken() (string, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(id.Bytes()), nil
}

func displayName(u *model.User) string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Login
}
