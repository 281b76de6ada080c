package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/identity"
	"dispatch/internal/pkg/guard"
)

var ErrGetUserStatsQueryIsNotConstructed = errors.New(
	"GetUserStatsQuery must be created via NewGetUserStatsQuery constructor",
)

// GetUserStatsQuery requests the order counters of the caller.
type GetUserStatsQuery struct {
	caller *identity.Identity

	guard guard.ConstructorGuard
}

func NewGetUserStatsQuery(caller *identity.Identity) (GetUserStatsQuery, error) {
	if caller.Validate() != nil {
		return GetUserStatsQuery{}, ErrCallerIsRequired
	}
	return GetUserStatsQuery{caller: caller, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetUserStatsQueryIsNotConstructed)
}

func (q GetUserStatsQuery) Caller() *identity.Identity { return q.caller }
