package lpsr

import (
	"strings"

	"github.com/jacques-menu/musicformats-sub010/core/msr"
)

// Options controls the LilyPond output.
type Options struct {
	// Version is written in the \version statement.
	Version string `json:"version"`

	// Midi adds a \midi block to the score.
	Midi bool `json:"midi"`
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{Version: "2.24.0"}
}

// Header is the \header block.
type Header struct {
	Title    string
	Composer string
	Rights   string
}

// Score is an LPSR score: the MSR score it was built from, plus the
// LilyPond music of each of its voices.
type Score struct {
	msr    *msr.Score
	header Header
	parts  []*Part
}

func (s *Score) MsrScore() *msr.Score { return s.msr }
func (s *Score) Header() Header       { return s.header }
func (s *Score) Parts() []*Part       { return s.parts }

// Voices returns the voices of all parts, in score order.
func (s *Score) Voices() []*Voice {
	var vs []*Voice
	for _, p := range s.parts {
		for _, st := range p.Staves {
			vs = append(vs, st.Voices...)
		}
	}
	return vs
}

type Part struct {
	ID     string
	Name   string
	Staves []*Staff
}

type Staff struct {
	Number int
	Voices []*Voice
}

// Voice is the music of one MSR voice, stored in the LilyPond variable
// Name.
type Voice struct {
	Name   string
	Music  *Seq
	Lyrics []*Lyrics
}

// Lyrics holds one stanza, stored in the variable Name.
type Lyrics struct {
	Name      string
	Syllables []string
}

func (l *Lyrics) String() string {
	return `\lyricmode { ` + strings.Join(l.Syllables, " ") + ` }`
}

var digitNames = [...]string{"Zero", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine"}

// variableName turns the words into a LilyPond variable name. Only letters
// are allowed, so digits are spelled out and everything else is dropped.
func variableName(words ...string) string {
	var b strings.Builder
	for _, w := range words {
		for i, r := range w {
			switch {
			case r >= '0' && r <= '9':
				b.WriteString(digitNames[r-'0'])
			case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
				if i == 0 && b.Len() > 0 {
					b.WriteString(strings.ToUpper(string(r)))
				} else {
					b.WriteRune(r)
				}
			}
		}
	}
	return b.String()
}
