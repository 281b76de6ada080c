package queries

import (
	"errors"
	"fmt"
	"slices"

	"dispatch/internal/core/domain/model/identity"
	"dispatch/internal/core/domain/model/picking"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 50
	MaxPageSize     = 100
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
	ErrCallerIsRequired = errs.NewValueIsRequiredError("caller")
	ErrPageIsInvalid    = errs.NewValueIsInvalidErrorWithCause("page", errors.New("must be at least 1"))
	ErrSizeIsInvalid    = errs.NewValueIsInvalidErrorWithCause(
		"size", fmt.Errorf("must be between 1 and %d", MaxPageSize))
)

// ListOrdersQuery lists the jobs visible to a driver, one page at a time.
//
// Example:
//
//	query, err := queries.NewListOrdersQuery(caller, []picking.State{picking.Unassigned}, 0, 0)
//	page, err := handler.Handle(ctx, query) // page 1, 50 items at most
type ListOrdersQuery struct {
	caller *identity.Identity
	states []picking.State
	page   int
	size   int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery builds a listing query. Empty states fall back to
// services.DefaultListStates; a zero page or size takes its default.
func NewListOrdersQuery(caller *identity.Identity, states []picking.State, page, size int) (ListOrdersQuery, error) {
	if page == 0 {
		page = DefaultPage
	}
	if size == 0 {
		size = DefaultPageSize
	}

	var callerErr, pageErr, sizeErr error
	if caller.Validate() != nil {
		callerErr = ErrCallerIsRequired
	}
	if page < 1 {
		pageErr = ErrPageIsInvalid
	}
	if size < 1 || size > MaxPageSize {
		sizeErr = ErrSizeIsInvalid
	}
	stateErrs := make([]error, 0, len(states))
	for _, s := range states {
		if _, err := picking.ParseFilterState(string(s)); err != nil {
			stateErrs = append(stateErrs, err)
		}
	}
	if err := errors.Join(callerErr, pageErr, sizeErr, errors.Join(stateErrs...)); err != nil {
		return ListOrdersQuery{}, err
	}

	if len(states) == 0 {
		states = services.DefaultListStates
	}
	return ListOrdersQuery{
		caller: caller,
		states: slices.Clone(states),
		page:   page,
		size:   size,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Caller() *identity.Identity { return q.caller }

func (q ListOrdersQuery) States() []picking.State { return q.states }

func (q ListOrdersQuery) Page() int { return q.page }

func (q ListOrdersQuery) Size() int { return q.size }

// ListOrdersQueryResponse is one page of the listing.
type ListOrdersQueryResponse struct {
	Items []OrderView
	Total int
	Page  int
	Size  int
	Pages int
}
