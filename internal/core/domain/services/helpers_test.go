package services_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/identity"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/picking"

	"github.com/stretchr/testify/require"
)

const (
	alice kernel.ObjectID = 10
	bob   kernel.ObjectID = 11
	bot   kernel.ObjectID = 1
)

func newOrder(t *testing.T, id kernel.ObjectID, state picking.State, assignee identity.Assignee) *order.Order {
	t.Helper()
	p, err := picking.RestorePicking(id*100, state, assignee)
	require.NoError(t, err)
	o, err := order.RestoreOrder(id, "S"+id.String(), time.Now(), order.Sale, nil, nil, 0, []*picking.Picking{p})
	require.NoError(t, err)
	return o
}

func newOrderWithoutPicking(t *testing.T, id kernel.ObjectID) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(id, "S"+id.String(), time.Now(), order.Sale, nil, nil, 0, nil)
	require.NoError(t, err)
	return o
}

func ids(orders []*order.Order) []kernel.ObjectID {
	out := make([]kernel.ObjectID, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.ID())
	}
	return out
}
