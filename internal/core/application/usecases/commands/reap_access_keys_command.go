package commands

import (
	"errors"
	"strings"
	"time"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrReapAccessKeysCommandIsNotConstructed = errors.New(
		"ReapAccessKeysCommand must be created via NewReapAccessKeysCommand constructor",
	)
	ErrKeyNameIsRequired = errs.NewValueIsRequiredError("key name")
)

// ReapAccessKeysCommand removes API keys that no unexpired token can carry
// anymore: keys issued before createdBefore under the given name.
type ReapAccessKeysCommand struct {
	keyName       string
	createdBefore time.Time

	guard guard.ConstructorGuard
}

func NewReapAccessKeysCommand(keyName string, createdBefore time.Time) (ReapAccessKeysCommand, error) {
	if strings.TrimSpace(keyName) == "" {
		return ReapAccessKeysCommand{}, ErrKeyNameIsRequired
	}
	return ReapAccessKeysCommand{
		keyName:       keyName,
		createdBefore: createdBefore,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReapAccessKeysCommand) Validate() error {
	return c.guard.Validate(ErrReapAccessKeysCommandIsNotConstructed)
}

func (c ReapAccessKeysCommand) KeyName() string { return c.keyName }

func (c ReapAccessKeysCommand) CreatedBefore() time.Time { return c.createdBefore }
