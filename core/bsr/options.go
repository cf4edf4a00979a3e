package bsr

// Options controls the layout of the Braille score.
type Options struct {
	// CellsPerLine is the width of a Braille line.
	CellsPerLine int `json:"cells_per_line"`

	// LinesPerPage is the number of rows on a page, headings included.
	LinesPerPage int `json:"lines_per_page"`

	// LineNumbers writes the line number at the end of each regular row.
	LineNumbers bool `json:"line_numbers"`

	// NoTempos drops tempo indications.
	NoTempos bool `json:"no_tempos"`

	// IncludeClefs writes clef signs in measures.
	IncludeClefs bool `json:"include_clefs"`

	// NoteValueSize writes a value size indicator when notes switch between
	// larger and smaller values.
	NoteValueSize bool `json:"note_value_size"`

	// ServiceName is named in the first transcription note.
	ServiceName string `json:"service_name"`
}

// DefaultOptions returns the options of a 30 by 27 cells page.
func DefaultOptions() Options {
	return Options{
		CellsPerLine: 30,
		LinesPerPage: 27,
		IncludeClefs: true,
		ServiceName:  "musicformats",
	}
}
