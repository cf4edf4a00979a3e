package msr2msr

import (
	"slices"

	"github.com/jacques-menu/musicformats-sub010/core/msr"
	"github.com/jacques-menu/musicformats-sub010/core/visit"
)

// Options controls what the MSR to MSR pass changes on the way.
type Options struct {
	// KeepParts lists the IDs of the only parts to keep. Empty keeps them
	// all.
	KeepParts []string `json:"keep_parts,omitempty"`

	// IgnoreParts lists the IDs of parts to drop. It applies after
	// KeepParts.
	IgnoreParts []string `json:"ignore_parts,omitempty"`

	// InsertPageBreakAfterMeasure lists the numbers of the measures a page
	// break follows.
	InsertPageBreakAfterMeasure []string `json:"insert_page_break_after_measure,omitempty"`

	// CoalesceEmptyMeasures turns runs of two or more rest-only measures
	// into multiple measure rests.
	CoalesceEmptyMeasures bool `json:"coalesce_empty_measures"`

	// ConvertWordsToTempo turns the words attached to notes into
	// words-only tempos placed before the note.
	ConvertWordsToTempo bool `json:"convert_words_to_tempo"`

	// ConvertTemposToRehearsalMarks turns tempos into rehearsal marks.
	ConvertTemposToRehearsalMarks bool `json:"convert_tempos_to_rehearsal_marks"`

	// CreateImplicitInitialRepeatBarLine gives a repeat starting a voice
	// without a forward repeat sign an explicit one.
	CreateImplicitInitialRepeatBarLine bool `json:"create_implicit_initial_repeat_bar_line"`
}

// partFilter rejects the parts the options drop, nil when none is.
func (o Options) partFilter() visit.Filter {
	if len(o.KeepParts) == 0 && len(o.IgnoreParts) == 0 {
		return nil
	}
	return func(e visit.Element) bool {
		p, ok := e.(*msr.Part)
		if !ok {
			return true
		}
		if len(o.KeepParts) > 0 && !slices.Contains(o.KeepParts, p.ID()) {
			return false
		}
		return !slices.Contains(o.IgnoreParts, p.ID())
	}
}

// both accepts what every non-nil filter of fs accepts.
func both(fs ...visit.Filter) visit.Filter {
	var active []visit.Filter
	for _, f := range fs {
		if f != nil {
			active = append(active, f)
		}
	}
	switch len(active) {
	case 0:
		return nil
	case 1:
		return active[0]
	}
	return func(e visit.Element) bool {
		for _, f := range active {
			if !f(e) {
				return false
			}
		}
		return true
	}
}
