package identity

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// SubjectDelimiter separates the username from the backend access key inside
// a bearer token subject. It can never appear in a username.
const SubjectDelimiter = "|"

var (
	// ErrIdentityIsNotConstructed is returned when an Identity was not created via NewIdentity.
	ErrIdentityIsNotConstructed = errors.New("Identity must be created via NewIdentity constructor")
	// ErrUsernameIsRequired is returned for an empty username.
	ErrUsernameIsRequired = errs.NewValueIsRequiredError("username")
	// ErrUsernameContainsDelimiter is returned when a username contains SubjectDelimiter.
	ErrUsernameContainsDelimiter = errs.NewValueIsInvalidErrorWithCause(
		"username", errors.New("must not contain "+SubjectDelimiter))
)

// Identity is a backend user as seen by this service. It is resolved from
// the backend on every request and never cached between requests.
type Identity struct {
	id          kernel.ObjectID
	username    string
	email       string
	displayName string
	active      bool

	guard guard.ConstructorGuard
}

// NewIdentity validates and builds an Identity. The username is the backend
// login and must be usable as the first half of a token subject.
func NewIdentity(id kernel.ObjectID, username, email, displayName string, active bool) (*Identity, error) {
	if err := errors.Join(id.Validate(), ValidateUsername(username)); err != nil {
		return nil, err
	}
	return &Identity{
		id:          id,
		username:    username,
		email:       email,
		displayName: displayName,
		active:      active,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// ValidateUsername checks that username is non-empty and free of SubjectDelimiter.
func ValidateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return ErrUsernameIsRequired
	}
	if strings.Contains(username, SubjectDelimiter) {
		return ErrUsernameContainsDelimiter
	}
	return nil
}

// Validate reports whether the identity was built by NewIdentity.
func (i *Identity) Validate() error {
	if i == nil {
		return ErrIdentityIsNotConstructed
	}
	return i.guard.Validate(ErrIdentityIsNotConstructed)
}

func (i *Identity) ID() kernel.ObjectID { return i.id }

func (i *Identity) Username() string { return i.username }

func (i *Identity) Email() string { return i.email }

// DisplayName falls back to the username when the backend has no name on record.
func (i *Identity) DisplayName() string {
	if i.displayName == "" {
		return i.username
	}
	return i.displayName
}

// IsActive is false for users archived in the backend.
func (i *Identity) IsActive() bool { return i.active }

// AsAssignee returns the assignee value that designates this identity.
func (i *Identity) AsAssignee() Assignee {
	return UserAssignee(i.id)
}
