package commands

import (
	"errors"
	"time"

	"dispatch/internal/core/application/auth"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrIssueTokenCommandIsNotConstructed = errors.New(
		"IssueTokenCommand must be created via NewIssueTokenCommand constructor",
	)
	ErrUsernameIsRequired = errs.NewValueIsRequiredError("username")
	ErrPasswordIsRequired = errs.NewValueIsRequiredError("password")
)

// IssueTokenCommand is a login: credentials plus the scopes the client wants.
type IssueTokenCommand struct {
	username string
	password string
	scopes   []auth.Scope
	ttl      time.Duration

	guard guard.ConstructorGuard
}

// NewIssueTokenCommand builds a login command. A ttl of zero keeps the
// configured token lifetime.
func NewIssueTokenCommand(username, password string, scopes []auth.Scope, ttl time.Duration) (IssueTokenCommand, error) {
	var usernameErr, passwordErr error
	if username == "" {
		usernameErr = ErrUsernameIsRequired
	}
	if password == "" {
		passwordErr = ErrPasswordIsRequired
	}
	if err := errors.Join(usernameErr, passwordErr); err != nil {
		return IssueTokenCommand{}, err
	}
	return IssueTokenCommand{
		username: username,
		password: password,
		scopes:   scopes,
		ttl:      ttl,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c IssueTokenCommand) Validate() error {
	return c.guard.Validate(ErrIssueTokenCommandIsNotConstructed)
}

func (c IssueTokenCommand) Username() string { return c.username }

func (c IssueTokenCommand) Password() string { return c.password }

func (c IssueTokenCommand) Scopes() []auth.Scope { return c.scopes }

func (c IssueTokenCommand) TTL() time.Duration { return c.ttl }
