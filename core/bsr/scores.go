package bsr

import (
	"fmt"
	"strings"

	"github.com/jacques-menu/musicformats-sub010/core/visit"
)

// Score is the root of a BSR tree.
type Score struct {
	element
	transcriptionNotes *TranscriptionNotes
	pages              []*Page
}

// NewScore returns a score with empty transcription notes and no page.
func NewScore(line int) *Score {
	Initialize()
	s := &Score{transcriptionNotes: NewTranscriptionNotes(line)}
	s.line = line
	return s
}

// TranscriptionNotes returns the transcriber's notes.
func (s *Score) TranscriptionNotes() *TranscriptionNotes { return s.transcriptionNotes }

// Pages returns the pages in order.
func (s *Score) Pages() []*Page { return s.pages }

// AppendPage appends p.
func (s *Score) AppendPage(p *Page) {
	s.pages = append(s.pages, p)
}

func (s *Score) BrowseData(b *visit.Browser) error {
	if err := b.Browse(s.transcriptionNotes); err != nil {
		return err
	}
	return visit.BrowseAll(b, s.pages)
}

func (s *Score) ShortString() string {
	return fmt.Sprintf("Score [%d pages, line %d]", len(s.pages), s.line)
}

type shortStringer interface {
	ShortString() string
}

// String dumps the whole tree, one node per line, indented by depth.
func (s *Score) String() string {
	var b strings.Builder
	_ = visit.Walk(s, func(e visit.Element, depth int) {
		b.WriteString(strings.Repeat("  ", depth))
		if ss, ok := e.(shortStringer); ok {
			b.WriteString(ss.ShortString())
		} else {
			fmt.Fprint(&b, e)
		}
		b.WriteByte('\n')
	})
	return b.String()
}
