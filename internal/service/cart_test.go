package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/inventory/internal/events"
	"github.com/Skotchmaster/inventory/internal/models"
	"github.com/Skotchmaster/inventory/internal/transport"
)

func TestCartService_Create_AppliesDefaults(t *testing.T) {
	env := newTestEnv(t)

	item, err := env.Cart.CreateCart(context.Background(), transport.CartRequest{})
	require.NoError(t, err)

	assert.NotZero(t, item.ID)
	assert.Nil(t, item.ItemID)
	assert.Equal(t, models.DefaultCartCustomerID, item.CustomerID)
	assert.Equal(t, models.DefaultCartProductID, item.ProductID)
	require.NotNil(t, item.Quantity)
	assert.Equal(t, 0, *item.Quantity)

	require.Len(t, env.Pub.sent, 1)
	assert.Equal(t, "cart_events", env.Pub.sent[0].Topic)
	assert.Equal(t, events.CartCreated, env.Pub.sent[0].Event.Type)
}

func TestCartService_ClientSuppliedItemID(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	a, err := env.Cart.CreateCart(ctx, transport.CartRequest{ItemID: transport.Some("item-1")})
	require.NoError(t, err)
	b, err := env.Cart.CreateCart(ctx, transport.CartRequest{ItemID: transport.Some("item-1")})
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, "item-1", *a.ItemID)
	assert.Equal(t, "item-1", *b.ItemID)
}

func TestCartService_PartialUpdate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.Cart.CreateCart(ctx, transport.CartRequest{
		CustomerID: transport.Some("alice"),
		ProductID:  transport.Some("7"),
		Quantity:   transport.Some(2),
	})
	require.NoError(t, err)

	updated, err := env.Cart.UpdateCart(ctx, created.ID, transport.CartRequest{
		Quantity: transport.Some(5),
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", updated.CustomerID)
	assert.Equal(t, "7", updated.ProductID)
	assert.Equal(t, 5, *updated.Quantity)

	updated, err = env.Cart.UpdateCart(ctx, created.ID, transport.CartRequest{
		Quantity: transport.Null[int](),
	})
	require.NoError(t, err)
	assert.Nil(t, updated.Quantity)
}

func TestCartService_Validation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.Cart.CreateCart(ctx, transport.CartRequest{CustomerID: transport.Null[string]()})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = env.Cart.UpdateCart(ctx, 1, transport.CartRequest{ProductID: transport.Null[string]()})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = env.Cart.CreateCart(ctx, transport.CartRequest{ItemID: transport.Null[string]()})
	assert.ErrorIs(t, err, ErrValidation)

	items, err := env.Cart.ListCart(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartService_NotFoundAndDelete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.Cart.GetCart(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)

	created, err := env.Cart.CreateCart(ctx, transport.CartRequest{CustomerID: transport.Some("bob")})
	require.NoError(t, err)

	deleted, err := env.Cart.DeleteCart(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob", deleted.CustomerID)

	_, err = env.Cart.DeleteCart(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = env.Cart.UpdateCart(ctx, created.ID, transport.CartRequest{})
	assert.ErrorIs(t, err, ErrNotFound)

	items, err := env.Cart.ListCart(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	assert.Equal(t, []string{events.CartCreated, events.CartDeleted}, env.Pub.types())
}
