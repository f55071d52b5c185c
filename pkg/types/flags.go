package types

// MutabilityState names the strictest restriction a set of Flags enforces.
type MutabilityState string

// Mutability states, from least to most restrictive.
const (
	StateExtensible    MutabilityState = "extensible"
	StateNonExtensible MutabilityState = "non-extensible"
	StateSealed        MutabilityState = "sealed"
	StateFrozen        MutabilityState = "frozen"
)

// Flags tracks the three mutability flags of a collection or entry.
// The zero value is fully unlocked (extensible, unsealed, unfrozen).
//
// Flags only move toward more restriction: sealing clears extensibility and
// freezing also seals. There is no method that relaxes a flag; a fresh
// Flags value is the only way back.
type Flags struct {
	nonExtensible bool
	sealed        bool
	frozen        bool
}

// Extensible reports whether new keys may be inserted.
func (f Flags) Extensible() bool { return !f.nonExtensible }

// Sealed reports whether key insertion and removal are forbidden.
func (f Flags) Sealed() bool { return f.sealed }

// Frozen reports whether all structural and content changes are forbidden.
func (f Flags) Frozen() bool { return f.frozen }

// PreventExtensions clears extensibility. Idempotent.
func (f *Flags) PreventExtensions() {
	f.nonExtensible = true
}

// Seal forbids insertion and removal. Idempotent.
func (f *Flags) Seal() {
	f.nonExtensible = true
	f.sealed = true
}

// Freeze forbids every change. Idempotent.
func (f *Flags) Freeze() {
	f.nonExtensible = true
	f.sealed = true
	f.frozen = true
}

// State returns the strictest state the flags describe.
func (f Flags) State() MutabilityState {
	switch {
	case f.frozen:
		return StateFrozen
	case f.sealed:
		return StateSealed
	case f.nonExtensible:
		return StateNonExtensible
	default:
		return StateExtensible
	}
}

// CanAdd reports whether a new key may be inserted.
func (f Flags) CanAdd() bool { return f.Extensible() }

// CanRemove reports whether an existing key may be removed.
func (f Flags) CanRemove() bool { return !f.sealed }

// CanEdit reports whether existing content may be changed in place.
func (f Flags) CanEdit() bool { return !f.frozen }
