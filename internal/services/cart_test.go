package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ysfrd/dream-accessory-ecommerce/internal/models"
)

var (
	bracelet = models.Product{ID: 1, Name: "Bracelet", Category: "Jewelry", Price: 10}
	necklace = models.Product{ID: 2, Name: "Necklace", Category: "Jewelry", Price: 5}
)

func TestAddItem_NewLineThenIncrement(t *testing.T) {
	svc := setupCart(t)
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, bracelet))
	require.NoError(t, svc.AddItem(ctx, bracelet))

	items, err := svc.Items(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestSetQuantity_ZeroRemovesLine(t *testing.T) {
	svc := setupCart(t)
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, bracelet))
	require.NoError(t, svc.AddItem(ctx, bracelet))
	require.NoError(t, svc.SetQuantity(ctx, bracelet.ID, 0))

	items, err := svc.Items(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSetQuantity_NoUpperBound(t *testing.T) {
	svc := setupCart(t)
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, bracelet))
	require.NoError(t, svc.SetQuantity(ctx, bracelet.ID, 9999))

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 9999, count)
}

func TestTotal_SumsPriceTimesQuantity(t *testing.T) {
	svc := setupCart(t)
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, bracelet)) // 10 x 1
	require.NoError(t, svc.AddItem(ctx, necklace))
	require.NoError(t, svc.SetQuantity(ctx, necklace.ID, 3)) // 5 x 3

	total, err := svc.Total(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 25.0, total, 1e-9)

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestRemoveItem_AbsentLineIsNoOp(t *testing.T) {
	svc := setupCart(t)
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, bracelet))
	require.NoError(t, svc.RemoveItem(ctx, 42))

	items, err := svc.Items(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestAddItem_SnapshotsPriceAtAddTime(t *testing.T) {
	svc := setupCart(t)
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, bracelet))

	// a later catalog price change must not affect the existing line
	repriced := bracelet
	repriced.Price = 99

	items, err := svc.Items(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.InDelta(t, 10.0, items[0].Product.Price, 1e-9)
}

func TestClear_EmptiesCart(t *testing.T) {
	svc := setupCart(t)
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, bracelet))
	require.NoError(t, svc.AddItem(ctx, necklace))
	require.NoError(t, svc.Clear(ctx))

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	total, err := svc.Total(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)
}
