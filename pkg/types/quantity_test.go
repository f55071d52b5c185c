package types

import (
	"errors"
	"math"
	"testing"
)

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int64
		wantErr error
	}{
		{name: "positive", raw: "4", want: 4},
		{name: "negative", raw: "-3", want: -3},
		{name: "zero", raw: "0", want: 0},
		{name: "surrounding whitespace", raw: "  12\n", want: 12},
		{name: "explicit plus", raw: "+7", want: 7},
		{name: "empty", raw: "", wantErr: ErrInvalidQuantity},
		{name: "blank", raw: "   ", wantErr: ErrInvalidQuantity},
		{name: "letters", raw: "abc", wantErr: ErrInvalidQuantity},
		{name: "trailing garbage", raw: "12abc", wantErr: ErrInvalidQuantity},
		{name: "decimal", raw: "1.5", wantErr: ErrInvalidQuantity},
		{name: "out of range", raw: "99999999999999999999", wantErr: ErrInvalidQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseQuantity(tt.raw)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestAddQuantity(t *testing.T) {
	t.Run("sum", func(t *testing.T) {
		got, err := AddQuantity(4, 2)
		if err != nil {
			t.Fatal(err)
		}
		if got != 6 {
			t.Fatalf("expected 6, got %d", got)
		}
	})

	t.Run("negative delta", func(t *testing.T) {
		got, err := AddQuantity(4, -10)
		if err != nil {
			t.Fatal(err)
		}
		if got != -6 {
			t.Fatalf("expected -6, got %d", got)
		}
	})

	t.Run("overflow", func(t *testing.T) {
		_, err := AddQuantity(math.MaxInt64, 1)
		if !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})

	t.Run("underflow", func(t *testing.T) {
		_, err := AddQuantity(math.MinInt64, -1)
		if !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})
}
