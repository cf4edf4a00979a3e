package bsr

import (
	"testing"
)

func TestDynamicLetters(t *testing.T) {
	f, m, s, z := mustLetter('f'), mustLetter('m'), mustLetter('s'), mustLetter('z')

	tests := []struct {
		kind DynamicKind
		want []CellKind
	}{
		{DynamicFF, []CellKind{f, f}},
		{DynamicSFZ, []CellKind{s, f, z}},
		{DynamicMF, []CellKind{m, f}},
		{DynamicFP, []CellKind{f, mustLetter('p')}},
		{DynamicSFZP, []CellKind{s, f, z, mustLetter('p')}},
		{DynamicN, []CellKind{mustLetter('n')}},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			want := NewCellsList(1, tt.want...)
			if got := DynamicLetters(1, tt.kind); !got.Equal(want) {
				t.Errorf("DynamicLetters() = %s, want %s", got, want)
			}

			d := NewDynamic(1, tt.kind)
			if got := d.Letters(); !got.Equal(want) {
				t.Errorf("Letters() = %s, want %s", got, want)
			}
			full := NewCellsList(1, CellWordSign)
			full.AppendCellsList(want)
			if got := d.CellsList(); !got.Equal(full) {
				t.Errorf("CellsList() = %s, want %s", got, full)
			}
		})
	}
}

func TestDynamicSpellingsAreDistinct(t *testing.T) {
	seen := make(map[string]DynamicKind)
	for kind := DynamicF; kind <= DynamicN; kind++ {
		cells := DynamicLetters(1, kind).String()
		if other, ok := seen[cells]; ok {
			t.Errorf("%s and %s share the cells %s", kind, other, cells)
		}
		seen[cells] = kind
	}
}

func TestDynamicKindFromString(t *testing.T) {
	for kind := DynamicF; kind <= DynamicN; kind++ {
		got, ok := DynamicKindFromString(kind.String())
		if !ok || got != kind {
			t.Errorf("DynamicKindFromString(%q) = %v, %t, want %v, true", kind.String(), got, ok, kind)
		}
	}
	if _, ok := DynamicKindFromString("xyz"); ok {
		t.Error("DynamicKindFromString(\"xyz\") ok = true, want false")
	}
}
