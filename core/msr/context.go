package msr

import (
	"fmt"

	"github.com/google/uuid"

	mferrors "github.com/jacques-menu/musicformats-sub010/core/errors"
	"github.com/jacques-menu/musicformats-sub010/internal/logging"
)

// ClefKeyTimeOrderKind is the order in which a ClefKeyTimeSignatureGroup
// browses its members.
type ClefKeyTimeOrderKind int

const (
	OrderClefKeyTime ClefKeyTimeOrderKind = iota
	OrderKeyTimeClef
)

func (k ClefKeyTimeOrderKind) String() string {
	switch k {
	case OrderClefKeyTime:
		return "clef-key-time"
	case OrderKeyTimeClef:
		return "key-time-clef"
	default:
		return fmt.Sprintf("ClefKeyTimeOrderKind(%d)", int(k))
	}
}

// ParseClefKeyTimeOrder maps "clef-key-time" and "key-time-clef" onto
// their kinds.
func ParseClefKeyTimeOrder(s string) (ClefKeyTimeOrderKind, error) {
	switch s {
	case "", "clef-key-time":
		return OrderClefKeyTime, nil
	case "key-time-clef":
		return OrderKeyTimeClef, nil
	default:
		return OrderClefKeyTime, mferrors.NewParse("clef-key-time order", "", fmt.Sprintf("unknown order %q", s))
	}
}

// ClefKeyTimeOrderer is implemented by visitors that choose the order in
// which clef, key and time signature groups are browsed. Visitors built on
// a Context get it by embedding it.
type ClefKeyTimeOrderer interface {
	ClefKeyTimeOrder() ClefKeyTimeOrderKind
}

// Context is the configuration of one translation pass. It is set up before
// the pass starts and not changed while it runs.
type Context struct {
	// SourceName is the input the score was read from, "-" for stdin.
	SourceName string

	// RunID identifies the run in logs and in the ledger.
	RunID uuid.UUID

	// Order is the clef-key-time browsing order.
	Order ClefKeyTimeOrderKind

	// SanityChecks enables the argument checks of constructors.
	SanityChecks bool

	// PadStanzasWithSkips inserts a skip syllable when a stanza lags behind
	// the note it is attached to.
	PadStanzasWithSkips bool

	// Warnings collects the non-fatal diagnostics of the pass.
	Warnings *mferrors.Warnings
}

// NewContext returns a context with sanity checks on, the clef-key-time
// order and a fresh run ID.
func NewContext(sourceName string) *Context {
	return &Context{
		SourceName:   sourceName,
		RunID:        uuid.New(),
		Order:        OrderClefKeyTime,
		SanityChecks: true,
		Warnings:     &mferrors.Warnings{},
	}
}

// ClefKeyTimeOrder returns the browsing order of clef, key and time
// signature groups. A nil context uses the clef-key-time order.
func (c *Context) ClefKeyTimeOrder() ClefKeyTimeOrderKind {
	if c == nil {
		return OrderClefKeyTime
	}
	return c.Order
}

// Source returns the input source name, empty for a nil context.
func (c *Context) Source() string {
	if c == nil {
		return ""
	}
	return c.SourceName
}

// Warn records and logs a warning. A nil context only logs it.
func (c *Context) Warn(line int, format string, args ...any) {
	message := fmt.Sprintf(format, args...)
	if c == nil {
		logging.TranslationWarning("", line, message)
		return
	}
	if c.Warnings != nil {
		c.Warnings.Add(c.SourceName, line, "%s", message)
	}
	logging.TranslationWarning(c.SourceName, line, message, "run_id", c.RunID.String())
}

// WarningsNumber returns the number of warnings recorded so far.
func (c *Context) WarningsNumber() int {
	if c == nil || c.Warnings == nil {
		return 0
	}
	return c.Warnings.Len()
}

// InternalError returns an internal error located in the context's source.
func (c *Context) InternalError(line int, format string, args ...any) error {
	return mferrors.NewInternal(c.Source(), line, format, args...)
}

// Sanity reports whether constructor argument checks are enabled. They are
// on for a nil context.
func (c *Context) Sanity() bool {
	return c == nil || c.SanityChecks
}
