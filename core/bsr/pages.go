package bsr

import (
	"fmt"

	"github.com/jacques-menu/musicformats-sub010/core/visit"
)

// Page is a Braille page.
type Page struct {
	element
	printPageNumber   int
	braillePageNumber int
	linesPerPage      int
	heading           *PageHeading
	musicHeading      *MusicHeading
	lines             []*Line
}

// NewPage returns an empty page. The braille page number starts out equal
// to the print page number.
func NewPage(line, printPageNumber, linesPerPage int) *Page {
	Initialize()
	p := &Page{
		printPageNumber:   printPageNumber,
		braillePageNumber: printPageNumber,
		linesPerPage:      linesPerPage,
	}
	p.line = line
	return p
}

// NewbornClone returns an empty page with the same numbers.
func (p *Page) NewbornClone() *Page {
	clone := NewPage(p.line, p.printPageNumber, p.linesPerPage)
	clone.braillePageNumber = p.braillePageNumber
	return clone
}

func (p *Page) PrintPageNumber() int        { return p.printPageNumber }
func (p *Page) BraillePageNumber() int      { return p.braillePageNumber }
func (p *Page) LinesPerPage() int           { return p.linesPerPage }
func (p *Page) PageHeading() *PageHeading   { return p.heading }
func (p *Page) MusicHeading() *MusicHeading { return p.musicHeading }
func (p *Page) Lines() []*Line              { return p.lines }

func (p *Page) SetPageHeading(h *PageHeading)   { p.heading = h }
func (p *Page) SetMusicHeading(h *MusicHeading) { p.musicHeading = h }

// AppendLine appends l.
func (p *Page) AppendLine(l *Line) {
	p.lines = append(p.lines, l)
}

// RowsNumber is the number of physical rows used so far, headings
// included.
func (p *Page) RowsNumber() int {
	n := 0
	if p.heading != nil {
		n++
	}
	if p.musicHeading != nil && p.musicHeading.CellsNumber() > 0 {
		n++
	}
	for _, l := range p.lines {
		n += l.RowsNumber()
	}
	return n
}

// IsFull reports whether no row is left on the page.
func (p *Page) IsFull() bool {
	return p.linesPerPage > 0 && p.RowsNumber() >= p.linesPerPage
}

func (p *Page) BrowseData(b *visit.Browser) error {
	if p.heading != nil {
		if err := b.Browse(p.heading); err != nil {
			return err
		}
	}
	if p.musicHeading != nil {
		if err := b.Browse(p.musicHeading); err != nil {
			return err
		}
	}
	return visit.BrowseAll(b, p.lines)
}

func (p *Page) ShortString() string {
	return fmt.Sprintf("Page [print %d, braille %d, %d lines, line %d]",
		p.printPageNumber, p.braillePageNumber, len(p.lines), p.line)
}

func (p *Page) String() string { return p.ShortString() }

// PageHeading is the running head of a page: a title and the page
// numbers.
type PageHeading struct {
	element
	title             string
	printPageNumber   int
	braillePageNumber int
}

// NewPageHeading returns a page heading.
func NewPageHeading(line int, title string, printPageNumber, braillePageNumber int) *PageHeading {
	Initialize()
	h := &PageHeading{
		title:             title,
		printPageNumber:   printPageNumber,
		braillePageNumber: braillePageNumber,
	}
	h.line = line
	return h
}

func (h *PageHeading) Title() string { return h.title }

// CellsList is the title, a blank cell and the braille page number.
func (h *PageHeading) CellsList() *CellsList {
	result := NewCellsList(h.line)
	if h.title != "" {
		result.AppendCellsList(TextCells(h.line, h.title))
		result.AppendCellKind(CellBlank)
	}
	result.AppendCellsList(NewNumber(h.line, h.braillePageNumber, true).CellsList())
	return result
}

func (h *PageHeading) BrowseData(*visit.Browser) error { return nil }

func (h *PageHeading) String() string {
	return fmt.Sprintf("PageHeading [%q, print %d, braille %d, line %d]",
		h.title, h.printPageNumber, h.braillePageNumber, h.line)
}

// MusicHeading precedes the music of the first page: the tempo, the key
// and the time signature.
type MusicHeading struct {
	element
	tempo         *Tempo
	key           *Key
	timeSignature *TimeSignature
}

// NewMusicHeading returns an empty music heading.
func NewMusicHeading(line int) *MusicHeading {
	Initialize()
	h := &MusicHeading{}
	h.line = line
	return h
}

func (h *MusicHeading) Tempo() *Tempo                 { return h.tempo }
func (h *MusicHeading) Key() *Key                     { return h.key }
func (h *MusicHeading) TimeSignature() *TimeSignature { return h.timeSignature }

func (h *MusicHeading) SetTempo(t *Tempo)                  { h.tempo = t }
func (h *MusicHeading) SetKey(k *Key)                      { h.key = k }
func (h *MusicHeading) SetTimeSignature(ts *TimeSignature) { h.timeSignature = ts }

// CellsList is the tempo, then the key and time signature written
// together, separated from the tempo by a blank cell.
func (h *MusicHeading) CellsList() *CellsList {
	result := NewCellsList(h.line)
	if h.tempo != nil {
		result.AppendCellsList(h.tempo.CellsList())
	}
	if h.key == nil && h.timeSignature == nil {
		return result
	}
	if h.tempo != nil {
		result.AppendCellKind(CellBlank)
	}
	if h.key != nil {
		result.AppendCellsList(h.key.CellsList())
	}
	if h.timeSignature != nil {
		result.AppendCellsList(h.timeSignature.CellsList())
	}
	return result
}

// CellsNumber returns the number of cells of the heading.
func (h *MusicHeading) CellsNumber() int {
	return h.CellsList().CellsNumber()
}

func (h *MusicHeading) BrowseData(b *visit.Browser) error {
	if h.tempo != nil {
		if err := b.Browse(h.tempo); err != nil {
			return err
		}
	}
	if h.key != nil {
		if err := b.Browse(h.key); err != nil {
			return err
		}
	}
	if h.timeSignature != nil {
		return b.Browse(h.timeSignature)
	}
	return nil
}

func (h *MusicHeading) ShortString() string {
	return fmt.Sprintf("MusicHeading [tempo: %t, key: %t, time: %t, line %d]",
		h.tempo != nil, h.key != nil, h.timeSignature != nil, h.line)
}

func (h *MusicHeading) String() string {
	return fmt.Sprintf("MusicHeading [%s, line %d]", h.CellsList(), h.line)
}

// TranscriptionNotes gathers the transcriber's notes printed before the
// music.
type TranscriptionNotes struct {
	element
	notes []*TranscriptionNote
}

// NewTranscriptionNotes returns an empty list of notes.
func NewTranscriptionNotes(line int) *TranscriptionNotes {
	tn := &TranscriptionNotes{}
	tn.line = line
	return tn
}

// Append appends n.
func (tn *TranscriptionNotes) Append(n *TranscriptionNote) {
	tn.notes = append(tn.notes, n)
}

// Notes returns the notes in order.
func (tn *TranscriptionNotes) Notes() []*TranscriptionNote { return tn.notes }

func (tn *TranscriptionNotes) BrowseData(b *visit.Browser) error {
	return visit.BrowseAll(b, tn.notes)
}

func (tn *TranscriptionNotes) ShortString() string {
	return fmt.Sprintf("TranscriptionNotes [%d notes, line %d]", len(tn.notes), tn.line)
}

func (tn *TranscriptionNotes) String() string { return tn.ShortString() }

// TranscriptionNote is one transcriber's note.
type TranscriptionNote struct {
	element
	text string
}

// NewTranscriptionNote returns a note with text.
func NewTranscriptionNote(line int, text string) *TranscriptionNote {
	Initialize()
	n := &TranscriptionNote{text: text}
	n.line = line
	return n
}

// Text returns the note's text.
func (n *TranscriptionNote) Text() string { return n.text }

// CellsList spells the text.
func (n *TranscriptionNote) CellsList() *CellsList {
	return TextCells(n.line, n.text)
}

func (n *TranscriptionNote) BrowseData(*visit.Browser) error { return nil }

func (n *TranscriptionNote) String() string {
	return fmt.Sprintf("TranscriptionNote [%q, line %d]", n.text, n.line)
}
