package queries

import "context"

// GetProfileQueryHandler answers from the identity the gateway resolved for
// this request, which is never older than the request itself.
type GetProfileQueryHandler struct{}

func NewGetProfileQueryHandler() GetProfileQueryHandler {
	return GetProfileQueryHandler{}
}

func (h GetProfileQueryHandler) Handle(_ context.Context, query GetProfileQuery) (GetProfileQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetProfileQueryResponse{}, err
	}
	caller := query.Caller()
	return GetProfileQueryResponse{
		Username: caller.Username(),
		Email:    caller.Email(),
		FullName: caller.DisplayName(),
		Disabled: !caller.IsActive(),
	}, nil
}
