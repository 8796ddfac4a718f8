package tween

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

type poolItem struct {
	id    int
	dirty bool
}

// TestPoolBound verifies the pool retains at most maxSize instances:
// returning N+1 objects pools exactly N, and the N+1th Get constructs.
func TestPoolBound(t *testing.T) {
	const maxSize = 3

	built := 0
	pool, err := NewPool(maxSize, 0,
		func() *poolItem { built++; return &poolItem{id: built} },
		func(it *poolItem) { it.dirty = false })
	require.NoError(t, err)

	items := make([]*poolItem, maxSize+1)
	for i := range items {
		items[i] = pool.Get()
	}
	require.Equal(t, maxSize+1, built)

	for i, it := range items {
		pooled := pool.Put(it)
		assert.Equal(t, i < maxSize, pooled, "item %d", i)
	}
	assert.Equal(t, maxSize, pool.Len())

	// Exactly maxSize instances come back without construction.
	before := built
	for i := 0; i < maxSize; i++ {
		pool.Get()
	}
	assert.Equal(t, before, built)

	pool.Get()
	assert.Equal(t, before+1, built, "empty pool falls back to the factory")
}

// TestPoolResetCallback verifies the reset callback runs on every Put,
// including puts that end up discarded.
func TestPoolResetCallback(t *testing.T) {
	resets := 0
	pool, err := NewPool(1, 0,
		func() *poolItem { return &poolItem{} },
		func(it *poolItem) { resets++; it.dirty = false })
	require.NoError(t, err)

	a := &poolItem{dirty: true}
	b := &poolItem{dirty: true}

	assert.True(t, pool.Put(a))
	assert.False(t, pool.Put(b), "second put exceeds the bound")
	assert.Equal(t, 2, resets)
	assert.False(t, a.dirty)
	assert.False(t, b.dirty)
}

// TestPoolPreload verifies preload instances are eagerly constructed at
// construction and again on Reset.
func TestPoolPreload(t *testing.T) {
	built := 0
	pool, err := NewPool(4, 2,
		func() *poolItem { built++; return &poolItem{id: built} },
		nil)
	require.NoError(t, err)

	assert.Equal(t, 2, built)
	assert.Equal(t, 2, pool.Len())

	pool.Reset()
	assert.Equal(t, 4, built)
	assert.Equal(t, 2, pool.Len())
}

// TestPoolPreloadClamped verifies a preload above the bound is clamped.
func TestPoolPreloadClamped(t *testing.T) {
	pool, err := NewPool(2, 10, func() *poolItem { return &poolItem{} }, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, pool.Len())
}

// TestPoolConstructionErrors verifies invalid parameters fail fast.
func TestPoolConstructionErrors(t *testing.T) {
	_, err := NewPool(0, 0, func() *poolItem { return &poolItem{} }, nil)
	require.ErrorIs(t, err, ErrInvalidPool)

	_, err = NewPool(-1, 0, func() *poolItem { return &poolItem{} }, nil)
	require.ErrorIs(t, err, ErrInvalidPool)

	_, err = NewPool[*poolItem](4, 0, nil, nil)
	require.ErrorIs(t, err, ErrInvalidPool)
}

// TestPoolRecyclesDrivers verifies the intended use: interpolator
// instances drawn from the pool, run to completion, reset, and reused.
func TestPoolRecyclesDrivers(t *testing.T) {
	subject := &Transform{}
	settings := DefaultSettings()
	settings.Duration = 0.1

	pool, err := NewPool(4, 0,
		func() *Ease {
			tw, err := NewPositionTween(subject, r3.Vec{X: 1}, settings)
			require.NoError(t, err)
			return tw
		},
		func(tw *Ease) { tw.Reset() })
	require.NoError(t, err)

	tw := pool.Get()
	for tw.Update(0.05) {
	}
	require.True(t, tw.IsComplete())
	require.True(t, pool.Put(tw))

	recycled := pool.Get()
	assert.Same(t, tw, recycled)
	assert.False(t, recycled.IsComplete(), "came back reset")

	subject.Position = r3.Vec{X: 9}
	for recycled.Update(0.05) {
	}
	assert.Equal(t, r3.Vec{X: 1}, subject.Position)
}
