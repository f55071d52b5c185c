// Package inventory implements the locking collection manager: a keyed,
// insertion-ordered collection of quantity entries whose mutability is
// governed by extensible, sealed, and frozen flags at both the collection
// and the entry level.
package inventory

import (
	"github.com/google/uuid"

	"github.com/mesh-intelligence/larder/pkg/types"
)

// node is any object a deep freeze can reach.
type node interface {
	isFrozen() bool
	freeze()
	children() []node
}

// Entry is one keyed record in a Collection. Entries are owned by their
// collection; callers read them but change them only through the Manager.
type Entry struct {
	quantity int64
	flags    types.Flags

	// refs holds objects reachable from the entry other than its quantity.
	// A deep freeze walks them.
	refs []node
}

// Quantity returns the entry's current quantity.
func (e *Entry) Quantity() int64 { return e.quantity }

// Flags returns the entry's own mutability flags.
func (e *Entry) Flags() types.Flags { return e.flags }

func (e *Entry) isFrozen() bool   { return e.flags.Frozen() }
func (e *Entry) freeze()          { e.flags.Freeze() }
func (e *Entry) children() []node { return e.refs }

// Collection is an insertion-ordered mapping from key to Entry with its own
// mutability flags. Each collection has a UUID v7 identity; a clone gets a
// new one.
type Collection struct {
	id      string
	flags   types.Flags
	order   []string
	entries map[string]*Entry
}

func newCollection() *Collection {
	return &Collection{
		id:      uuid.Must(uuid.NewV7()).String(),
		entries: make(map[string]*Entry),
	}
}

// ID returns the collection identity.
func (c *Collection) ID() string { return c.id }

// Flags returns the collection-level mutability flags.
func (c *Collection) Flags() types.Flags { return c.flags }

// Len returns the number of entries.
func (c *Collection) Len() int { return len(c.order) }

// Get returns the entry stored under key.
func (c *Collection) Get(key string) (*Entry, bool) {
	e, ok := c.entries[key]
	return e, ok
}

// Keys returns the keys in insertion order.
func (c *Collection) Keys() []string {
	keys := make([]string, len(c.order))
	copy(keys, c.order)
	return keys
}

func (c *Collection) insert(key string, e *Entry) {
	c.entries[key] = e
	c.order = append(c.order, key)
}

func (c *Collection) remove(key string) {
	delete(c.entries, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}

func (c *Collection) isFrozen() bool { return c.flags.Frozen() }
func (c *Collection) freeze()        { c.flags.Freeze() }

func (c *Collection) children() []node {
	nodes := make([]node, 0, len(c.order))
	for _, k := range c.order {
		nodes = append(nodes, c.entries[k])
	}
	return nodes
}

// deepFrozen reports whether the collection and every entry are frozen.
func (c *Collection) deepFrozen() bool {
	if !c.flags.Frozen() {
		return false
	}
	for _, e := range c.entries {
		if !e.flags.Frozen() {
			return false
		}
	}
	return true
}

// clone returns a new collection with a new identity and new entries that
// copy each entry's quantity. No flags are carried over.
func (c *Collection) clone() *Collection {
	fresh := newCollection()
	for _, k := range c.order {
		fresh.insert(k, &Entry{quantity: c.entries[k].quantity})
	}
	return fresh
}
