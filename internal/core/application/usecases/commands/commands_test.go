package commands_test

import (
	"testing"
	"time"

	"dispatch/internal/core/application/auth"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/identity"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAcceptOrderCommand(t *testing.T) {
	cmd, err := commands.NewAcceptOrderCommand(orderID, alice)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, alice, cmd.Caller())

	_, err = commands.NewAcceptOrderCommand(0, nil)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.ErrorIs(t, err, commands.ErrCallerIsRequired)

	_, err = commands.NewAcceptOrderCommand(orderID, &identity.Identity{})
	require.ErrorIs(t, err, commands.ErrCallerIsRequired)
}

func TestNewCancelCommands_RequireReason(t *testing.T) {
	_, err := commands.NewCancelOrderCommand(orderID, alice, "   ")
	require.ErrorIs(t, err, commands.ErrReasonIsRequired)

	_, err = commands.NewCancelJobCommand(orderID, alice, "")
	require.ErrorIs(t, err, commands.ErrReasonIsRequired)

	cmd, err := commands.NewCancelJobCommand(orderID, alice, "  flat tyre ")
	require.NoError(t, err)
	assert.Equal(t, "flat tyre", cmd.Reason())
}

func TestNewDropOffOrderCommand(t *testing.T) {
	at := time.Now()
	cmd, err := commands.NewDropOffOrderCommand(orderID, alice, &at, nil, " ")

	require.NoError(t, err)
	assert.Equal(t, &at, cmd.DropOffAt())
	assert.Nil(t, cmd.CollectedAt())
	assert.Empty(t, cmd.Note())
}

func TestNewIssueTokenCommand(t *testing.T) {
	cmd, err := commands.NewIssueTokenCommand("alice", "secret", []auth.Scope{auth.ScopeOrdersPost}, 0)
	require.NoError(t, err)
	assert.Equal(t, "alice", cmd.Username())
	assert.Equal(t, []auth.Scope{auth.ScopeOrdersPost}, cmd.Scopes())

	_, err = commands.NewIssueTokenCommand("", "", nil, 0)
	require.ErrorIs(t, err, commands.ErrUsernameIsRequired)
	require.ErrorIs(t, err, commands.ErrPasswordIsRequired)
}

func TestNewReapAccessKeysCommand(t *testing.T) {
	_, err := commands.NewReapAccessKeysCommand(" ", time.Now())
	require.ErrorIs(t, err, commands.ErrKeyNameIsRequired)

	var zero commands.ReapAccessKeysCommand
	require.ErrorIs(t, zero.Validate(), commands.ErrReapAccessKeysCommandIsNotConstructed)
}
