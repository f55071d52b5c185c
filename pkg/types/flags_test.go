package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlagsTransitions(t *testing.T) {
	tests := []struct {
		name       string
		apply      func(f *Flags)
		wantState  MutabilityState
		wantAdd    bool
		wantRemove bool
		wantEdit   bool
	}{
		{
			name:       "zero value is extensible",
			apply:      func(f *Flags) {},
			wantState:  StateExtensible,
			wantAdd:    true,
			wantRemove: true,
			wantEdit:   true,
		},
		{
			name:       "prevent extensions blocks add only",
			apply:      func(f *Flags) { f.PreventExtensions() },
			wantState:  StateNonExtensible,
			wantRemove: true,
			wantEdit:   true,
		},
		{
			name:      "seal blocks add and remove",
			apply:     func(f *Flags) { f.Seal() },
			wantState: StateSealed,
			wantEdit:  true,
		},
		{
			name:      "freeze blocks everything",
			apply:     func(f *Flags) { f.Freeze() },
			wantState: StateFrozen,
		},
		{
			name:      "seal after freeze stays frozen",
			apply:     func(f *Flags) { f.Freeze(); f.Seal(); f.PreventExtensions() },
			wantState: StateFrozen,
		},
		{
			name:      "prevent extensions after seal stays sealed",
			apply:     func(f *Flags) { f.Seal(); f.PreventExtensions() },
			wantState: StateSealed,
			wantEdit:  true,
		},
		{
			name:       "idempotent prevent extensions",
			apply:      func(f *Flags) { f.PreventExtensions(); f.PreventExtensions() },
			wantState:  StateNonExtensible,
			wantRemove: true,
			wantEdit:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f Flags
			tt.apply(&f)
			assert.Equal(t, tt.wantState, f.State())
			assert.Equal(t, tt.wantAdd, f.CanAdd())
			assert.Equal(t, tt.wantRemove, f.CanRemove())
			assert.Equal(t, tt.wantEdit, f.CanEdit())
		})
	}
}

func TestFlagsFreezeImpliesSealAndNonExtensible(t *testing.T) {
	var f Flags
	f.Freeze()
	assert.True(t, f.Frozen())
	assert.True(t, f.Sealed())
	assert.False(t, f.Extensible())
}
