package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/identity"
	"dispatch/internal/pkg/guard"
)

var ErrGetProfileQueryIsNotConstructed = errors.New(
	"GetProfileQuery must be created via NewGetProfileQuery constructor",
)

// GetProfileQuery describes the authorized user.
type GetProfileQuery struct {
	caller *identity.Identity

	guard guard.ConstructorGuard
}

func NewGetProfileQuery(caller *identity.Identity) (GetProfileQuery, error) {
	if caller.Validate() != nil {
		return GetProfileQuery{}, ErrCallerIsRequired
	}
	return GetProfileQuery{caller: caller, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetProfileQueryIsNotConstructed)
}

func (q GetProfileQuery) Caller() *identity.Identity { return q.caller }

type GetProfileQueryResponse struct {
	Username string
	Email    string
	FullName string
	Disabled bool
}
