package commands

import "context"

// ReapAccessKeysCommandHandler deletes stale API keys for every user.
type ReapAccessKeysCommandHandler struct {
	uowFactory AccessKeyUoWFactory
}

func NewReapAccessKeysCommandHandler(uowFactory AccessKeyUoWFactory) ReapAccessKeysCommandHandler {
	return ReapAccessKeysCommandHandler{uowFactory: uowFactory}
}

// Handle returns the number of deleted keys.
func (h ReapAccessKeysCommandHandler) Handle(ctx context.Context, command ReapAccessKeysCommand) (int64, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deleted, err := uow.AccessKeyRepository().DeleteCreatedBefore(ctx, command.KeyName(), command.CreatedBefore())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	return deleted, nil
}
