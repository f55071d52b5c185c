package inventory

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/larder/pkg/types"
)

// recorder collects every notification a Manager reports.
type recorder struct {
	got []types.Notification
}

func (r *recorder) Notify(n types.Notification) error {
	r.got = append(r.got, n)
	return nil
}

func (r *recorder) last(t *testing.T) types.Notification {
	t.Helper()
	require.NotEmpty(t, r.got, "expected a notification")
	return r.got[len(r.got)-1]
}

func newRecorded(t *testing.T) (*Manager, *recorder) {
	t.Helper()
	rec := &recorder{}
	return New(WithNotifier(rec)), rec
}

// seed adds each key with its quantity and fails the test on error.
func seed(t *testing.T, m *Manager, items ...types.Item) {
	t.Helper()
	for _, it := range items {
		_, err := m.AddOrIncrement(it.Key, it.Quantity)
		require.NoError(t, err)
	}
}
