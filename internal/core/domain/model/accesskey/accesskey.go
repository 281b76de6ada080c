package accesskey

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

const (
	// KeyBytes is the amount of entropy in a raw key.
	KeyBytes = 20
	// PrefixLength is the number of leading raw key characters kept in clear
	// so that a key can be recognised without revealing it.
	PrefixLength = 8
)

var (
	// ErrAccessKeyIsNotConstructed is returned when an AccessKey was not created via Generate or RestoreAccessKey.
	ErrAccessKeyIsNotConstructed = errors.New("AccessKey must be created via Generate or RestoreAccessKey")
	// ErrNameIsRequired is returned for a blank key name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrHashIsInvalid is returned when a stored hash is not a hex SHA-256 digest.
	ErrHashIsInvalid = errs.NewValueIsInvalidError("key hash")
	// ErrKeyAlreadyExists is returned by stores when the identity already has
	// a live key under the same name, e.g. after two concurrent logins.
	ErrKeyAlreadyExists = errors.New("access key already exists")
)

// AccessKey is an API key stored by the backend on behalf of one identity.
// Only a SHA-256 hash of the raw key is kept; the raw key is handed out once,
// by Generate.
type AccessKey struct {
	id         kernel.UUID
	identityID kernel.ObjectID
	name       string
	scope      string
	keyHash    string
	keyPrefix  string
	createdAt  time.Time

	guard guard.ConstructorGuard
}

// Generate creates a fresh random key for identityID. It returns the stored
// representation and the raw key, which cannot be recovered afterwards.
func Generate(identityID kernel.ObjectID, name, scope string, now time.Time) (*AccessKey, string, error) {
	buf := make([]byte, KeyBytes)
	if _, err := rand.Read(buf); err != nil {
		return nil, "", err
	}
	raw := hex.EncodeToString(buf)

	key, err := RestoreAccessKey(kernel.NewUUID(), identityID, name, scope, Hash(raw), raw[:PrefixLength], now)
	if err != nil {
		return nil, "", err
	}
	return key, raw, nil
}

// RestoreAccessKey rebuilds a key read from the backend store.
func RestoreAccessKey(
	id kernel.UUID,
	identityID kernel.ObjectID,
	name, scope, keyHash, keyPrefix string,
	createdAt time.Time,
) (*AccessKey, error) {
	var nameErr, hashErr error
	if strings.TrimSpace(name) == "" {
		nameErr = ErrNameIsRequired
	}
	if b, err := hex.DecodeString(keyHash); err != nil || len(b) != sha256.Size {
		hashErr = ErrHashIsInvalid
	}
	if err := errors.Join(id.Validate(), identityID.Validate(), nameErr, hashErr); err != nil {
		return nil, err
	}
	return &AccessKey{
		id:         id,
		identityID: identityID,
		name:       name,
		scope:      scope,
		keyHash:    keyHash,
		keyPrefix:  keyPrefix,
		createdAt:  createdAt.UTC(),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Hash returns the hex SHA-256 digest under which a raw key is stored.
func Hash(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// Validate reports whether the key was built by a constructor.
func (k *AccessKey) Validate() error {
	if k == nil {
		return ErrAccessKeyIsNotConstructed
	}
	return k.guard.Validate(ErrAccessKeyIsNotConstructed)
}

func (k *AccessKey) ID() kernel.UUID { return k.id }

func (k *AccessKey) IdentityID() kernel.ObjectID { return k.identityID }

func (k *AccessKey) Name() string { return k.name }

func (k *AccessKey) Scope() string { return k.scope }

func (k *AccessKey) KeyHash() string { return k.keyHash }

func (k *AccessKey) KeyPrefix() string { return k.keyPrefix }

func (k *AccessKey) CreatedAt() time.Time { return k.createdAt }

// Check reports whether raw is this key and the key was granted scope.
func (k *AccessKey) Check(raw, scope string) bool {
	if k.scope != scope {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(Hash(raw)), []byte(k.keyHash)) == 1
}
