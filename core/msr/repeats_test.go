package msr

import (
	"fmt"
	"testing"

	mferrors "github.com/jacques-menu/musicformats-sub010/core/errors"
)

func testVoice() *Voice {
	return NewVoice(1, 1, NewContext("test.xml"))
}

type repeatOp int

const (
	opSetCommonPart repeatOp = iota
	opHookedEnding
	opHooklessEnding
	opComplete
	opAppend
)

func (o repeatOp) String() string {
	return [...]string{"SetCommonPart", "AddEnding(hooked)", "AddEnding(hookless)", "Complete", "AppendVoiceElement"}[o]
}

func (o repeatOp) apply(r *Repeat) error {
	switch o {
	case opSetCommonPart:
		return r.SetCommonPart(NewRepeatCommonPart(2))
	case opHookedEnding:
		return r.AddEnding(NewRepeatEnding(3, "1", EndingHooked))
	case opHooklessEnding:
		return r.AddEnding(NewRepeatEnding(4, "2", EndingHookless))
	case opComplete:
		return r.Complete(5)
	default:
		return r.AppendVoiceElement(6, NewSegment(6, r.Voice()))
	}
}

// repeatIn returns a repeat driven into phase through legal calls.
func repeatIn(t *testing.T, phase RepeatBuildPhase) *Repeat {
	t.Helper()
	r := NewRepeat(1, 2, testVoice())
	steps := map[RepeatBuildPhase][]repeatOp{
		RepeatJustCreated:  nil,
		RepeatInCommonPart: {opSetCommonPart},
		RepeatInEndings:    {opSetCommonPart, opHookedEnding},
		RepeatCompleted:    {opSetCommonPart, opComplete},
	}[phase]
	for _, op := range steps {
		if err := op.apply(r); err != nil {
			t.Fatalf("%s while reaching %s: %v", op, phase, err)
		}
	}
	if r.Phase() != phase {
		t.Fatalf("setup phase = %s, want %s", r.Phase(), phase)
	}
	return r
}

func TestRepeatTransitions(t *testing.T) {
	tests := []struct {
		from    RepeatBuildPhase
		op      repeatOp
		want    RepeatBuildPhase
		wantErr bool
	}{
		{RepeatJustCreated, opSetCommonPart, RepeatInCommonPart, false},
		{RepeatJustCreated, opHookedEnding, RepeatJustCreated, true},
		{RepeatJustCreated, opHooklessEnding, RepeatJustCreated, true},
		{RepeatJustCreated, opComplete, RepeatJustCreated, true},
		{RepeatJustCreated, opAppend, RepeatJustCreated, true},

		{RepeatInCommonPart, opSetCommonPart, RepeatInCommonPart, true},
		{RepeatInCommonPart, opHookedEnding, RepeatInEndings, false},
		{RepeatInCommonPart, opHooklessEnding, RepeatCompleted, false},
		{RepeatInCommonPart, opComplete, RepeatCompleted, false},
		{RepeatInCommonPart, opAppend, RepeatInCommonPart, false},

		{RepeatInEndings, opSetCommonPart, RepeatInEndings, true},
		{RepeatInEndings, opHookedEnding, RepeatInEndings, false},
		{RepeatInEndings, opHooklessEnding, RepeatCompleted, false},
		{RepeatInEndings, opComplete, RepeatCompleted, false},
		{RepeatInEndings, opAppend, RepeatInEndings, false},

		{RepeatCompleted, opSetCommonPart, RepeatCompleted, true},
		{RepeatCompleted, opHookedEnding, RepeatCompleted, true},
		{RepeatCompleted, opHooklessEnding, RepeatCompleted, true},
		{RepeatCompleted, opComplete, RepeatCompleted, true},
		{RepeatCompleted, opAppend, RepeatCompleted, true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%s", tt.from, tt.op), func(t *testing.T) {
			r := repeatIn(t, tt.from)
			err := tt.op.apply(r)
			if tt.wantErr {
				if !mferrors.Is(err, mferrors.ErrBuildPhase) {
					t.Errorf("error = %v, want ErrBuildPhase", err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if r.Phase() != tt.want {
				t.Errorf("phase = %s, want %s", r.Phase(), tt.want)
			}
		})
	}
}

func TestRepeatPhaseNeverMovesBack(t *testing.T) {
	ops := []repeatOp{opSetCommonPart, opHookedEnding, opHooklessEnding, opComplete, opAppend}

	var walk func(prefix []repeatOp, depth int)
	walk = func(prefix []repeatOp, depth int) {
		if depth == 0 {
			r := NewRepeat(1, 2, testVoice())
			previous := r.Phase()
			for i, op := range prefix {
				_ = op.apply(r)
				if r.Phase() < previous {
					t.Fatalf("sequence %v: phase went from %s back to %s at step %d", prefix, previous, r.Phase(), i)
				}
				previous = r.Phase()
			}
			return
		}
		for _, op := range ops {
			walk(append(append([]repeatOp(nil), prefix...), op), depth-1)
		}
	}
	walk(nil, 4)
}

func TestHooklessEndingAfterCommonPartWarns(t *testing.T) {
	v := testVoice()
	r := NewRepeat(1, 2, v)
	if err := r.SetCommonPart(NewRepeatCommonPart(1)); err != nil {
		t.Fatal(err)
	}
	if err := r.AddEnding(NewRepeatEnding(7, "1", EndingHookless)); err != nil {
		t.Fatalf("AddEnding() error = %v", err)
	}
	if got := v.Context().WarningsNumber(); got != 1 {
		t.Errorf("warnings = %d, want 1", got)
	}
	if r.Phase() != RepeatCompleted {
		t.Errorf("phase = %s, want Completed", r.Phase())
	}
}

func TestRepeatEndingInternalNumbers(t *testing.T) {
	r := repeatIn(t, RepeatInCommonPart)
	for _, number := range []string{"1", "2"} {
		if err := r.AddEnding(NewRepeatEnding(1, number, EndingHooked)); err != nil {
			t.Fatal(err)
		}
	}
	if err := r.AddEnding(NewRepeatEnding(1, "3", EndingHookless)); err != nil {
		t.Fatal(err)
	}
	for i, e := range r.Endings() {
		if e.InternalNumber() != i+1 {
			t.Errorf("ending %q internal number = %d, want %d", e.Number(), e.InternalNumber(), i+1)
		}
		if e.Repeat() != r {
			t.Errorf("ending %q up-link does not point to its repeat", e.Number())
		}
	}
}

func TestRepeatAppendsGoToCurrentPart(t *testing.T) {
	r := repeatIn(t, RepeatInCommonPart)
	if err := r.AppendSegment(1, NewSegment(1, r.Voice())); err != nil {
		t.Fatal(err)
	}
	if err := r.AddEnding(NewRepeatEnding(2, "1", EndingHooked)); err != nil {
		t.Fatal(err)
	}
	if err := r.AppendSegment(3, NewSegment(3, r.Voice())); err != nil {
		t.Fatal(err)
	}
	if got := len(r.CommonPart().Elements()); got != 1 {
		t.Errorf("common part elements = %d, want 1", got)
	}
	if got := len(r.Endings()[0].Elements()); got != 1 {
		t.Errorf("ending elements = %d, want 1", got)
	}
}

func TestRepeatNullArguments(t *testing.T) {
	r := NewRepeat(1, 2, testVoice())
	if err := r.SetCommonPart(nil); !mferrors.Is(err, mferrors.ErrInternal) {
		t.Errorf("SetCommonPart(nil) error = %v, want ErrInternal", err)
	}
	if err := r.AddEnding(nil); !mferrors.Is(err, mferrors.ErrInternal) {
		t.Errorf("AddEnding(nil) error = %v, want ErrInternal", err)
	}
}

func TestBuildPhaseErrorCarriesSource(t *testing.T) {
	r := NewRepeat(1, 2, testVoice())
	err := r.Complete(12)
	var bpe *mferrors.BuildPhaseError
	if !mferrors.As(err, &bpe) {
		t.Fatalf("error = %T, want *BuildPhaseError", err)
	}
	if bpe.SourceName != "test.xml" || bpe.Line != 12 {
		t.Errorf("error location = %s:%d, want test.xml:12", bpe.SourceName, bpe.Line)
	}
}
