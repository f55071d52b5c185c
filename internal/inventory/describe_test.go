package inventory

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/larder/pkg/types"
)

func TestDescribeEntry(t *testing.T) {
	m := New()
	seed(t, m, types.Item{Key: "a", Quantity: 1}, types.Item{Key: "b", Quantity: 2})

	_, ok := m.DescribeEntry("ghost")
	assert.False(t, ok)

	d, ok := m.DescribeEntry("a")
	require.True(t, ok)
	assert.Equal(t, types.Descriptor{
		Key: "a", Quantity: 1, Writable: true, Enumerable: true, Configurable: true,
		State: types.StateExtensible,
	}, d)

	m.Seal()
	d, _ = m.DescribeEntry("a")
	assert.True(t, d.Writable)
	assert.False(t, d.Configurable)
	assert.Equal(t, types.StateExtensible, d.State)

	_, err := m.FreezeEntry("b")
	require.NoError(t, err)
	d, _ = m.DescribeEntry("b")
	assert.True(t, d.Writable)
	assert.Equal(t, types.StateFrozen, d.State)

	m.Freeze()
	all := m.Descriptors()
	require.Len(t, all, 2)
	for _, d := range all {
		assert.False(t, d.Writable)
		assert.False(t, d.Configurable)
		assert.Equal(t, types.StateFrozen, d.State)
	}
	assert.Equal(t, "a", all[0].Key)
	assert.Equal(t, "b", all[1].Key)
}

func TestLogContentsAndDescriptors(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	m := New(WithLogger(logger))

	_, err := m.AddOrIncrement("widget", 4)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "inventory contents")
	assert.Contains(t, buf.String(), "widget")

	buf.Reset()
	m.LogDescriptors("ghost")
	assert.Empty(t, buf.String())

	m.LogDescriptors("widget")
	assert.Contains(t, buf.String(), "all descriptors")
}
