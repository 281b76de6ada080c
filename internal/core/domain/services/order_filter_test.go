package services_test

import (
	"testing"

	"dispatch/internal/core/domain/model/identity"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/picking"
	"dispatch/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestOrderFilter_Apply(t *testing.T) {
	orders := []*order.Order{
		newOrder(t, 1, picking.Assigned, identity.UserAssignee(alice)),
		newOrder(t, 2, picking.Assigned, identity.UserAssignee(bob)),
		newOrder(t, 3, picking.Assigned, identity.NoAssignee()),
		newOrder(t, 4, picking.Empty, identity.UserAssignee(bob)),
		newOrder(t, 5, picking.Done, identity.UserAssignee(alice)),
		newOrderWithoutPicking(t, 6),
		newOrder(t, 7, picking.Assigned, identity.BotAssignee(bot)),
		newOrder(t, 8, picking.Waiting, identity.UserAssignee(alice)),
	}
	filter := services.NewOrderFilter()

	tests := []struct {
		name   string
		caller kernel.ObjectID
		states []picking.State
		want   []kernel.ObjectID
	}{
		{
			name:   "default filter lists orders assigned to caller",
			caller: alice,
			states: nil,
			want:   []kernel.ObjectID{1},
		},
		{
			name:   "bot held picking is not the caller's",
			caller: alice,
			states: []picking.State{picking.Assigned},
			want:   []kernel.ObjectID{1},
		},
		{
			name:   "unassigned lists every unassigned order for any caller",
			caller: bob,
			states: []picking.State{picking.Unassigned},
			want:   []kernel.ObjectID{3, 4},
		},
		{
			name:   "bot held picking is not listed as unassigned",
			caller: alice,
			states: []picking.State{picking.Unassigned, picking.Assigned},
			want:   []kernel.ObjectID{1, 3, 4},
		},
		{
			name:   "union keeps backend order",
			caller: alice,
			states: []picking.State{picking.Unassigned, picking.Done, picking.Assigned},
			want:   []kernel.ObjectID{1, 3, 4, 5},
		},
		{
			name:   "caller with nothing assigned sees nothing by default",
			caller: 99,
			states: nil,
			want:   []kernel.ObjectID{},
		},
		{
			name:   "repeated states do not duplicate results",
			caller: alice,
			states: []picking.State{picking.Waiting, picking.Waiting, picking.Unassigned, picking.Unassigned},
			want:   []kernel.ObjectID{3, 4, 8},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filter.Apply(orders, tt.caller, tt.states)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestOrderFilter_Apply_NeverListsTheSameOrderTwice(t *testing.T) {
	o := newOrder(t, 1, picking.Assigned, identity.NoAssignee())
	filter := services.NewOrderFilter()

	got := filter.Apply([]*order.Order{o, o}, alice, []picking.State{picking.Assigned, picking.Unassigned})

	assert.Equal(t, []kernel.ObjectID{1}, ids(got))
}
