package kernel

import (
	"fmt"
	"strconv"

	"dispatch/internal/pkg/errs"
)

// ObjectID is the integer primary key the backend record store assigns to
// its records (users, orders, pickings). Valid ids are strictly positive.
type ObjectID int64

// ObjectIDFromString parses a decimal backend id, as received in URL paths.
func ObjectIDFromString(s string) (ObjectID, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("object id", err)
	}
	id := ObjectID(n)
	if err = id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// Validate rejects zero and negative ids.
func (id ObjectID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("object id", fmt.Errorf("%d is not greater than 0", id))
	}
	return nil
}

// Int64 returns the id as stored by the backend.
func (id ObjectID) Int64() int64 {
	return int64(id)
}

func (id ObjectID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
