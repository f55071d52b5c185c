package inventory

import (
	"github.com/mesh-intelligence/larder/pkg/types"
)

// DescribeEntry returns the descriptor of the entry under key.
// The boolean is false when the key is absent.
func (m *Manager) DescribeEntry(key string) (types.Descriptor, bool) {
	e, ok := m.coll.entries[key]
	if !ok {
		return types.Descriptor{}, false
	}
	return m.describe(key, e), true
}

// Descriptors returns a descriptor for every entry in insertion order.
func (m *Manager) Descriptors() []types.Descriptor {
	out := make([]types.Descriptor, 0, len(m.coll.order))
	for _, k := range m.coll.order {
		out = append(out, m.describe(k, m.coll.entries[k]))
	}
	return out
}

func (m *Manager) describe(key string, e *Entry) types.Descriptor {
	return types.Descriptor{
		Key:          key,
		Quantity:     e.quantity,
		Writable:     !m.coll.flags.Frozen(),
		Enumerable:   true,
		Configurable: !m.coll.flags.Sealed(),
		State:        e.flags.State(),
	}
}

// LogContents writes the keys, values, and entries of the collection to the
// diagnostic logger at debug level.
func (m *Manager) LogContents() {
	items := m.Snapshot()
	keys := make([]string, len(items))
	values := make([]int64, len(items))
	for i, it := range items {
		keys[i] = it.Key
		values[i] = it.Quantity
	}
	m.logger.Debug("inventory contents",
		"collection", m.coll.id,
		"state", m.coll.flags.State(),
		"keys", keys,
		"values", values,
		"entries", items,
	)
}

// LogDescriptors writes the descriptor of key and of every entry to the
// diagnostic logger. Nothing is logged for an absent key.
func (m *Manager) LogDescriptors(key string) {
	d, ok := m.DescribeEntry(key)
	if !ok {
		return
	}
	m.logger.Debug("descriptor", "entry", d)
	m.logger.Debug("all descriptors", "entries", m.Descriptors())
}
