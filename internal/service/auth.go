// Package service contains application services for identity, verification,
// goals and sessions.
package service

import (
	"context"
	"net/mail"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	pkgcrypto "github.com/nsplatform/backend/internal/crypto"
	"github.com/nsplatform/backend/internal/errs"
	"github.com/nsplatform/backend/internal/limiter"
	"github.com/nsplatform/backend/internal/model"
	"github.com/nsplatform/backend/internal/repository"
)

// RegisterInput collects registration fields.
type RegisterInput struct {
	Login       string
	Email       string
	Phone       string
	DisplayName string
	Password    string
}

// AuthService defines registration and login operations.
type AuthService interface {
	// Register creates a new user with secure password hashing; the unverified
	// profile is created in the same transaction.
	Register(ctx context.Context, in RegisterInput) (*model.User, error)
	// LoginWithIP applies rate-limiting, authenticates the user and rejects
	// unverified accounts with a distinguishable error.
	LoginWithIP(ctx context.Context, login, password, ip string) (model.Tokens, *model.User, error)
}

// AccessClaims is the JWT payload issued on login.
type AccessClaims struct {
	jwt.RegisteredClaims
	Staff bool `json:"staff,omitempty"`
}

type AuthServiceImpl struct {
	users     repository.UserRepository
	profiles  repository.ProfileRepository
	signKey   []byte
	accessTTL time.Duration
	lim       limiter.Limiter
}

// NewAuthService constructs AuthService with required dependencies.
func NewAuthService(users repository.UserRepository, profiles repository.ProfileRepository,
	signKey []byte, accessTTL time.Duration, lim limiter.Limiter) *AuthServiceImpl {
	return &AuthServiceImpl{users: users, profiles: profiles, signKey: signKey, accessTTL: accessTTL, lim: lim}
}

// Register creates a new user record with a per-user salt and its profile.
func (s *AuthServiceImpl) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	if in.Login == "" || in.Email == "" {
		return nil, errs.ErrMissingField
	}
	if in.Password == "" {
		return nil, errs.ErrMissingField
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return nil, errs.ErrMissingField
	}

	hash, salt, err := pkgcrypto.NewPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u := &model.User{
		Login:       in.Login,
		Email:       in.Email,
		DisplayName: in.DisplayName,
		PwdHash:     hash,
		Salt:        salt,
		IsActive:    true,
	}
	if in.Phone != "" {
		u.Phone = &in.Phone
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// LoginWithIP authenticates with rate limiting by (login, ip).
// Correct credentials on an unverified account return ErrUnverified,
// not ErrUnauthorized, so callers can route the user to the resend flow.
func (s *AuthServiceImpl) LoginWithIP(ctx context.Context, login, password, ip string) (model.Tokens, *model.User, error) {
	ipHash := limiter.HashIP(ip)

	allowed, _, err := s.lim.Allow(ctx, login, ipHash)
	if err != nil {
		return model.Tokens{}, nil, err
	}
	if !allowed {
		return model.Tokens{}, nil, errs.ErrRateLimited
	}

	u, err := s.users.GetByLogin(ctx, login)
	if err != nil || !u.IsActive || !pkgcrypto.VerifyPassword([]byte(password), u.Salt, u.PwdHash) {
		if blocked, _, ferr := s.lim.Failure(ctx, login, ipHash); ferr == nil && blocked {
			return model.Tokens{}, nil, errs.ErrRateLimited
		}
		// hide whether the user exists
		return model.Tokens{}, nil, errs.ErrUnauthorized
	}

	p, err := s.profiles.GetByUserID(ctx, u.ID)
	if err != nil {
		return model.Tokens{}, nil, err
	}
	if !p.EmailVerified {
		return model.Tokens{}, nil, errs.ErrUnverified
	}

	// Success: reset counters (best-effort).
	_ = s.lim.Success(ctx, login, ipHash)

	access, exp, err := s.issueAccessToken(u)
	if err != nil {
		return model.Tokens{}, nil, err
	}
	return model.Tokens{AccessToken: access, ExpiresAt: exp}, u, nil
}

// issueAccessToken creates a signed HS256 JWT for the given user.
func (s *AuthServiceImpl) issueAccessToken(u *model.User) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(s.accessTTL)
	claims := AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(u.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
		Staff: u.IsStaff,
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(s.signKey)
	return signed, exp, err
}
