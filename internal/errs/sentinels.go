// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across repo/service layers.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrMissingField indicates a required input field is absent.
	ErrMissingField = errors.New("missing required field")

	// ErrUnauthorized indicates failed authentication/authorization.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRateLimited indicates temporary login lock due to rate limiting.
	ErrRateLimited = errors.New("rate limited")

	// ErrInUse indicates a delete was rejected because dependent rows still reference the row.
	ErrInUse = errors.New("row is referenced by dependent records")

	// ErrInvalidDateRange indicates a session's stop date precedes its start date.
	ErrInvalidDateRange = errors.New("stop date precedes start date")
)

// Identity sentinels.
var (
	// ErrDuplicateLogin indicates the login is already taken.
	ErrDuplicateLogin = errors.New("login already taken")

	// ErrDuplicateEmail indicates the email is already taken.
	ErrDuplicateEmail = errors.New("email already taken")

	// ErrDuplicatePhone indicates the phone number is already taken.
	ErrDuplicatePhone = errors.New("phone already taken")
)

// Verification sentinels.
var (
	// ErrInvalidToken indicates the token matches no profile
	// (never issued or already consumed; callers cannot tell which).
	ErrInvalidToken = errors.New("invalid verification token")

	// ErrTokenExpired indicates the token exists but its validity window has passed.
	ErrTokenExpired = errors.New("verification token expired")

	// ErrAlreadyVerified indicates the profile's email is already confirmed.
	ErrAlreadyVerified = errors.New("email already verified")

	// ErrUnverified indicates the account exists but its email is not confirmed.
	ErrUnverified = errors.New("email not verified")

	// ErrEmailDelivery indicates the verification email could not be sent.
	// The token it carries is already persisted; the send may be retried.
	ErrEmailDelivery = errors.New("email delivery failed")
)

// Backlog and session sentinels.
var (
	// ErrDuplicateGoalName indicates the goal name is already used system-wide.
	ErrDuplicateGoalName = errors.New("goal name already taken")

	// ErrDuplicateWeight indicates the owner already has a goal with this priority weight.
	ErrDuplicateWeight = errors.New("priority weight already used by this user")

	// ErrDuplicateParticipation indicates the (user, session, role) triple already exists.
	ErrDuplicateParticipation = errors.New("user already holds this role in the session")

	// ErrGoalAlreadyInSession indicates the goal is already bound into the session.
	ErrGoalAlreadyInSession = errors.New("goal already added to the session")
)
