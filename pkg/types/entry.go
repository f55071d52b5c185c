package types

// Item is one row of an inventory snapshot.
type Item struct {
	Key      string `json:"key"`
	Quantity int64  `json:"quantity"`
}

// Descriptor describes how an entry may be changed, in the vocabulary of
// property descriptors: Writable is false once the collection is frozen,
// Configurable is false once it is sealed. State is the entry's own
// mutability state.
type Descriptor struct {
	Key          string          `json:"key"`
	Quantity     int64           `json:"quantity"`
	Writable     bool            `json:"writable"`
	Enumerable   bool            `json:"enumerable"`
	Configurable bool            `json:"configurable"`
	State        MutabilityState `json:"state"`
}
