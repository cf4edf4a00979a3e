package errors

import (
	"errors"
	"fmt"
	"sync"
	"testing"
)

func TestInternalError(t *testing.T) {
	tests := []struct {
		name     string
		err      *InternalError
		wantMsg  string
		wantBase error
	}{
		{
			name:     "with source",
			err:      &InternalError{SourceName: "song.xml", Line: 42, Message: "repeat never completed"},
			wantMsg:  "song.xml:42: internal error: repeat never completed",
			wantBase: ErrInternal,
		},
		{
			name:     "without source",
			err:      &InternalError{Line: 7, Message: "null uplink"},
			wantMsg:  "<unknown>:7: internal error: null uplink",
			wantBase: ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if got := tt.err.Unwrap(); !errors.Is(got, tt.wantBase) {
				t.Errorf("Unwrap() = %v, want %v", got, tt.wantBase)
			}
		})
	}

	t.Run("with underlying error", func(t *testing.T) {
		underlying := fmt.Errorf("bad grammar")
		err := &InternalError{SourceName: "a.xml", Line: 1, Message: "tempo", Err: underlying}
		if got := err.Unwrap(); got != underlying {
			t.Errorf("Unwrap() = %v, want %v", got, underlying)
		}
	})
}

func TestMsrError(t *testing.T) {
	err := NewMsr("in.xml", 12, "cannot add hooked ending %q", "1")
	want := `in.xml:12: cannot add hooked ending "1"`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("errors.Is(err, ErrInvalidInput) = false, want true")
	}
}

func TestBuildPhaseError(t *testing.T) {
	err := NewBuildPhase("in.xml", 3, "AddRepeatEnding", "JustCreated", "no common part yet")
	want := "in.xml:3: AddRepeatEnding in phase JustCreated: no common part yet"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrBuildPhase) {
		t.Errorf("errors.Is(err, ErrBuildPhase) = false, want true")
	}
	if !errors.Is(err, ErrInternal) {
		t.Errorf("errors.Is(err, ErrInternal) = false, want true")
	}
	var bpe *BuildPhaseError
	if !As(fmt.Errorf("wrapped: %w", err), &bpe) {
		t.Fatal("As() = false, want true")
	}
	if bpe.Operation != "AddRepeatEnding" {
		t.Errorf("Operation = %q, want %q", bpe.Operation, "AddRepeatEnding")
	}
}

func TestParseError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ParseError
		wantMsg  string
		wantBase error
	}{
		{
			name:     "with path",
			err:      &ParseError{Format: "MusicXML", Path: "a.xml", Message: "unexpected EOF"},
			wantMsg:  "failed to parse MusicXML at a.xml: unexpected EOF",
			wantBase: ErrInvalidInput,
		},
		{
			name:     "without path",
			err:      &ParseError{Format: "tempo per minute", Message: "'abc' is ill-formed"},
			wantMsg:  "failed to parse tempo per minute: 'abc' is ill-formed",
			wantBase: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if got := tt.err.Unwrap(); !errors.Is(got, tt.wantBase) {
				t.Errorf("Unwrap() = %v, want %v", got, tt.wantBase)
			}
		})
	}
}

func TestNotFoundAndUnsupported(t *testing.T) {
	nf := NewNotFound("voice", "P1/1/2")
	if got, want := nf.Error(), "voice not found: P1/1/2"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !Is(nf, ErrNotFound) {
		t.Error("Is(nf, ErrNotFound) = false, want true")
	}

	us := NewUnsupported("clef", "not supported in Braille")
	if got, want := us.Error(), "unsupported clef: not supported in Braille"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !Is(us, ErrUnsupported) {
		t.Error("Is(us, ErrUnsupported) = false, want true")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "ctx") != nil {
		t.Error("Wrap(nil) should return nil")
	}
	base := errors.New("base")
	err := Wrap(base, "ctx")
	if err.Error() != "ctx: base" {
		t.Errorf("Wrap() = %q, want %q", err.Error(), "ctx: base")
	}
	if !errors.Is(err, base) {
		t.Error("Wrap() should preserve the chain")
	}
}

func TestWrapf(t *testing.T) {
	if Wrapf(nil, "ctx %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}
	err := Wrapf(errors.New("base"), "measure %d", 3)
	if err.Error() != "measure 3: base" {
		t.Errorf("Wrapf() = %q, want %q", err.Error(), "measure 3: base")
	}
}

func TestWarnings(t *testing.T) {
	var ws Warnings
	ws.Add("a.xml", 10, "clef %s is not supported in Braille", "percussion")
	ws.Add("a.xml", 20, "hookless ending right after the common part")

	if ws.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", ws.Len())
	}
	list := ws.List()
	if list[0].Line != 10 || list[1].Line != 20 {
		t.Errorf("List() order = %v, want insertion order", list)
	}
	want := "a.xml:10: warning: clef percussion is not supported in Braille\n" +
		"a.xml:20: warning: hookless ending right after the common part\n"
	if got := ws.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestWarningsConcurrentAdd(t *testing.T) {
	var ws Warnings
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ws.Add("x", i, "w%d", i)
		}(i)
	}
	wg.Wait()
	if ws.Len() != 50 {
		t.Errorf("Len() = %d, want 50", ws.Len())
	}
}

func TestWithSource(t *testing.T) {
	ie := &InternalError{Line: 5, Message: "tempo", Err: errors.New("parse")}
	err := WithSource(fmt.Errorf("pass: %w", ie), "song.xml")
	if ie.SourceName != "song.xml" {
		t.Errorf("SourceName = %q, want %q", ie.SourceName, "song.xml")
	}
	if !errors.Is(err, ErrInternal) {
		t.Error("errors.Is(err, ErrInternal) = false, want true")
	}

	kept := &MsrError{SourceName: "a.xml", Line: 1, Message: "x"}
	WithSource(kept, "b.xml")
	if kept.SourceName != "a.xml" {
		t.Errorf("SourceName = %q, want it unchanged", kept.SourceName)
	}

	if WithSource(nil, "x") != nil {
		t.Error("WithSource(nil) should return nil")
	}
}
