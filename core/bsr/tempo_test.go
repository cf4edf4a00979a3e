package bsr

import (
	"testing"

	mferrors "github.com/jacques-menu/musicformats-sub010/core/errors"
)

func TestParsePerMinute(t *testing.T) {
	tests := []struct {
		input   string
		want    PerMinute
		wantErr bool
	}{
		{input: "88", want: PerMinute{Min: 88}},
		{input: "88-96", want: PerMinute{Min: 88, Max: 96}},
		{input: " 60 - 66 ", want: PerMinute{Min: 60, Max: 66}},
		{input: "abc", wantErr: true},
		{input: "", wantErr: true},
		{input: "88-", wantErr: true},
		{input: "88-96-100", wantErr: true},
		{input: "88-0", wantErr: true},
		{input: "96-88", wantErr: true},
		{input: "88-88", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePerMinute(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParsePerMinute(%q) = %v, want error", tt.input, got)
				}
				var pe *mferrors.ParseError
				if !mferrors.As(err, &pe) {
					t.Errorf("error %v is not a *ParseError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePerMinute(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParsePerMinute(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPerMinuteIsRange(t *testing.T) {
	if (PerMinute{Min: 88}).IsRange() {
		t.Error("88 IsRange() = true, want false")
	}
	pm := PerMinute{Min: 88, Max: 96}
	if !pm.IsRange() || pm.String() != "88-96" {
		t.Errorf("IsRange() = %t, String() = %q, want true, \"88-96\"", pm.IsRange(), pm.String())
	}
}

func TestNewTempoIllFormed(t *testing.T) {
	for _, input := range []string{"abc", ""} {
		_, err := NewTempo(17, TempoSpec{Kind: TempoPerMinute, BeatUnit: DurationQuarter, PerMinute: input})
		if err == nil {
			t.Fatalf("NewTempo(%q) error = nil, want internal error", input)
		}
		if !mferrors.Is(err, mferrors.ErrInternal) {
			t.Errorf("NewTempo(%q) error = %v, want ErrInternal", input, err)
		}
		var ie *mferrors.InternalError
		if mferrors.As(err, &ie) && ie.Line != 17 {
			t.Errorf("Line = %d, want 17", ie.Line)
		}
	}
}

func TestNewTempoKeepsPerMinute(t *testing.T) {
	tempo := mustTempo(t, TempoSpec{Kind: TempoPerMinute, BeatUnit: DurationQuarter, PerMinute: "88-96"})
	if got := tempo.PerMinute(); got != (PerMinute{Min: 88, Max: 96}) {
		t.Errorf("PerMinute() = %+v, want 88-96", got)
	}
}
