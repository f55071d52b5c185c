package inventory

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/mesh-intelligence/larder/pkg/types"
)

// Manager owns one live Collection and enforces its mutability rules.
// Every reported outcome, success or failure, is handed to the configured
// Notifier. A Manager is driven by one goroutine and is not safe for
// concurrent use.
type Manager struct {
	coll     *Collection
	notifier types.Notifier
	logger   *slog.Logger
	now      func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithNotifier sets the collaborator that receives every reported outcome.
func WithNotifier(n types.Notifier) Option {
	return func(m *Manager) { m.notifier = n }
}

// WithLogger sets the diagnostic logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) { m.logger = l }
}

// WithClock overrides the notification timestamp source.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// New creates a Manager holding an empty, extensible collection.
func New(opts ...Option) *Manager {
	m := &Manager{
		coll:   newCollection(),
		logger: slog.New(slog.DiscardHandler),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Collection returns the live collection. After Unfreeze the previously
// returned collection is stale and stays frozen.
func (m *Manager) Collection() *Collection { return m.coll }

// ID returns the identity of the live collection.
func (m *Manager) ID() string { return m.coll.id }

// State returns the collection-level mutability state.
func (m *Manager) State() types.MutabilityState { return m.coll.flags.State() }

// DeepFrozen reports whether the collection and all of its entries are frozen.
func (m *Manager) DeepFrozen() bool { return m.coll.deepFrozen() }

// AddOrIncrement adds quantity to the entry under key, creating the entry
// when the key is new. A new key requires an extensible collection; an
// existing key requires an unfrozen entry.
func (m *Manager) AddOrIncrement(key string, quantity int64) (*types.Outcome, error) {
	if key == "" {
		return nil, m.fail(types.OpAdd, key, types.ErrInvalidKey)
	}

	e, ok := m.coll.entries[key]
	if !ok {
		if !m.coll.flags.CanAdd() {
			return nil, m.fail(types.OpAdd, key, types.ErrNotExtensible)
		}
		m.coll.insert(key, &Entry{quantity: quantity})
		return m.report(&types.Outcome{
			Op:       types.OpAdd,
			Key:      key,
			Quantity: quantity,
			Message:  fmt.Sprintf("Added new item: %s with quantity %d.", key, quantity),
		}), nil
	}

	if !e.flags.CanEdit() {
		return nil, m.fail(types.OpIncrement, key, types.ErrEntryFrozen)
	}
	total, err := types.AddQuantity(e.quantity, quantity)
	if err != nil {
		return nil, m.fail(types.OpIncrement, key, err)
	}
	e.quantity = total
	return m.report(&types.Outcome{
		Op:       types.OpIncrement,
		Key:      key,
		Quantity: total,
		Message:  fmt.Sprintf("Updated %s's quantity to %d.", key, total),
	}), nil
}

// SubmitAdd parses raw as a quantity and calls AddOrIncrement. A quantity
// that is not an integer fails with ErrInvalidQuantity and changes nothing.
func (m *Manager) SubmitAdd(key, raw string) (*types.Outcome, error) {
	quantity, err := types.ParseQuantity(raw)
	if err != nil {
		return nil, m.fail(types.OpAdd, key, err)
	}
	return m.AddOrIncrement(key, quantity)
}

// EditQuantity overwrites the quantity of an existing entry. Collection
// seal and extensibility do not apply; only the entry's frozen flag does.
func (m *Manager) EditQuantity(key string, quantity int64) (*types.Outcome, error) {
	e, ok := m.coll.entries[key]
	if !ok {
		return nil, m.fail(types.OpEdit, key, fmt.Errorf("%w: %s", types.ErrNotFound, key))
	}
	if !e.flags.CanEdit() {
		return nil, m.fail(types.OpEdit, key, types.ErrEntryFrozen)
	}
	e.quantity = quantity
	return m.report(&types.Outcome{
		Op:       types.OpEdit,
		Key:      key,
		Quantity: quantity,
		Message:  fmt.Sprintf("Updated %s's quantity to %d.", key, quantity),
	}), nil
}

// SubmitEdit parses raw as a quantity and calls EditQuantity.
func (m *Manager) SubmitEdit(key, raw string) (*types.Outcome, error) {
	quantity, err := types.ParseQuantity(raw)
	if err != nil {
		return nil, m.fail(types.OpEdit, key, err)
	}
	return m.EditQuantity(key, quantity)
}

// DeleteItem removes the entry under key. It fails with ErrSealed on a
// sealed (or frozen) collection. Deleting an absent key is a silent no-op:
// both return values are nil.
func (m *Manager) DeleteItem(key string) (*types.Outcome, error) {
	if !m.coll.flags.CanRemove() {
		return nil, m.fail(types.OpDelete, key, types.ErrSealed)
	}
	if _, ok := m.coll.entries[key]; !ok {
		return nil, nil
	}
	m.coll.remove(key)
	return m.report(&types.Outcome{
		Op:      types.OpDelete,
		Key:     key,
		Message: fmt.Sprintf("Deleted item: %s.", key),
	}), nil
}

// Freeze deep-freezes the collection and every entry reachable from it.
// Idempotent. Only Unfreeze leaves the frozen state.
func (m *Manager) Freeze() *types.Outcome {
	n := deepFreeze(m.coll)
	m.logger.Debug("deep freeze", "collection", m.coll.id, "frozen_objects", n)
	return m.report(&types.Outcome{
		Op:      types.OpFreeze,
		Message: "Inventory has been frozen. No further modifications allowed.",
	})
}

// FreezeEntry freezes a single entry without touching the collection or
// anything the entry references. Idempotent.
func (m *Manager) FreezeEntry(key string) (*types.Outcome, error) {
	e, ok := m.coll.entries[key]
	if !ok {
		return nil, m.fail(types.OpFreezeEntry, key, fmt.Errorf("%w: %s", types.ErrNotFound, key))
	}
	e.freeze()
	return m.report(&types.Outcome{
		Op:       types.OpFreezeEntry,
		Key:      key,
		Quantity: e.quantity,
		Message:  fmt.Sprintf("Item %s has been frozen.", key),
	}), nil
}

// Unfreeze replaces the live collection with an unlocked clone holding the
// same keys and quantities. References to the old collection and its
// entries stay frozen.
func (m *Manager) Unfreeze() *types.Outcome {
	previous := m.coll.id
	m.coll = m.coll.clone()
	m.logger.Debug("collection replaced", "previous", previous, "current", m.coll.id)
	return m.report(&types.Outcome{
		Op:      types.OpUnfreeze,
		Message: "Inventory has been unfrozen. All items are editable again.",
	})
}

// Seal forbids adding and removing keys. Entries stay editable. Idempotent.
func (m *Manager) Seal() *types.Outcome {
	m.coll.flags.Seal()
	return m.report(&types.Outcome{
		Op:      types.OpSeal,
		Message: "Inventory has been sealed. No further additions or deletions allowed, but modifications are still possible.",
	})
}

// PreventExtensions forbids adding new keys. Idempotent.
func (m *Manager) PreventExtensions() *types.Outcome {
	m.coll.flags.PreventExtensions()
	return m.report(&types.Outcome{
		Op:      types.OpPreventExtensions,
		Message: "Inventory is now non-extensible. No new items can be added.",
	})
}

// Snapshot returns the current contents in insertion order.
func (m *Manager) Snapshot() []types.Item {
	items := make([]types.Item, 0, len(m.coll.order))
	for _, k := range m.coll.order {
		items = append(items, types.Item{Key: k, Quantity: m.coll.entries[k].quantity})
	}
	return items
}

// report logs the collection contents and hands a successful outcome to
// the notifier. It returns o for chaining.
func (m *Manager) report(o *types.Outcome) *types.Outcome {
	m.LogContents()
	m.notify(types.Notification{
		Op:       o.Op,
		Key:      o.Key,
		Quantity: o.Quantity,
		Message:  o.Message,
	})
	return o
}

// fail hands a failed outcome to the notifier and returns err unchanged.
func (m *Manager) fail(op, key string, err error) error {
	m.notify(types.Notification{
		Op:      op,
		Key:     key,
		Message: err.Error(),
		Failed:  true,
	})
	return err
}

func (m *Manager) notify(n types.Notification) {
	if m.notifier == nil {
		return
	}
	n.Time = m.now()
	n.CollectionID = m.coll.id
	if err := m.notifier.Notify(n); err != nil {
		m.logger.Warn("notify failed", "op", n.Op, "key", n.Key, "error", err)
	}
}
