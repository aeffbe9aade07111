package closer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloseAllRunsInReverseOrderOnce(t *testing.T) {
	t.Parallel()

	c := New()
	var order []string
	c.AddNamed("logger", func(context.Context) error {
		order = append(order, "logger")
		return nil
	})
	c.AddNamed("input", func(context.Context) error {
		order = append(order, "input")
		return nil
	})

	require.NoError(t, c.CloseAll(context.Background()))
	require.NoError(t, c.CloseAll(context.Background()))

	assert.Equal(t, []string{"input", "logger"}, order)
}

func TestCloseAllJoinsErrors(t *testing.T) {
	t.Parallel()

	c := New()
	boom := errors.New("sync failed")
	called := false
	c.AddNamed("logger", func(context.Context) error { return boom })
	c.AddNamed("input", func(context.Context) error {
		called = true
		return nil
	})

	err := c.CloseAll(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "logger")
	assert.True(t, called)
}

func TestCloseAllSkipsWhenContextDone(t *testing.T) {
	t.Parallel()

	c := New()
	called := false
	c.AddNamed("input", func(context.Context) error {
		called = true
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.CloseAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
