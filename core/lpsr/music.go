package lpsr

import (
	"fmt"
	"strings"

	"github.com/jacques-menu/musicformats-sub010/core/rational"
)

// Elem is a piece of LilyPond music.
type Elem interface {
	String() string
}

// Duration is a LilyPond duration. Log is 0 for a whole note, 2 for a
// quarter; -1, -2 and -3 are breve, longa and maxima.
type Duration struct {
	Log  int
	Dots int
}

func (d Duration) String() string {
	var s string
	switch d.Log {
	case -1:
		s = `\breve`
	case -2:
		s = `\longa`
	case -3:
		s = `\maxima`
	default:
		s = fmt.Sprint(1 << uint(d.Log))
	}
	return s + strings.Repeat(".", d.Dots)
}

// Pitch is a LilyPond pitch. Octave 0 is the octave of c', Notename 0 is
// c, Alteration is in semitones.
type Pitch struct {
	Octave     int
	Notename   int
	Alteration int
}

var alterationSuffixes = [...]string{"eses", "es", "", "is", "isis"}

func (p Pitch) String() string {
	name := string("cdefgab"[p.Notename%7])
	if a := p.Alteration + 2; a >= 0 && a < len(alterationSuffixes) {
		name += alterationSuffixes[a]
	}
	switch {
	case p.Octave >= 0:
		return name + strings.Repeat("'", p.Octave+1)
	default:
		return name + strings.Repeat(",", -p.Octave-1)
	}
}

// postEvents is what follows a note: tie, dynamics, text.
type postEvents struct {
	Tie  bool
	Post []string
}

func (e postEvents) String() string {
	var b strings.Builder
	if e.Tie {
		b.WriteByte('~')
	}
	for _, p := range e.Post {
		b.WriteString(p)
	}
	return b.String()
}

type Note struct {
	Pitch
	Duration
	postEvents
}

func (n Note) String() string {
	return n.Pitch.String() + n.Duration.String() + n.postEvents.String()
}

type Rest struct {
	Duration
	postEvents
}

func (r Rest) String() string {
	return "r" + r.Duration.String() + r.postEvents.String()
}

type Skip struct {
	Duration
}

func (s Skip) String() string {
	return "s" + s.Duration.String()
}

type Chord struct {
	Pitches []Pitch
	Duration
	postEvents
}

func (c Chord) String() string {
	ps := make([]string, len(c.Pitches))
	for i, p := range c.Pitches {
		ps[i] = p.String()
	}
	return "<" + strings.Join(ps, " ") + ">" + c.Duration.String() + c.postEvents.String()
}

// MultiRest is a run of Count full-measure rests of length Measure.
type MultiRest struct {
	Measure rational.Rational
	Count   int
}

func (m MultiRest) String() string {
	if m.Measure.Equal(rational.FromInt(1)) || m.Measure.IsZero() {
		return fmt.Sprintf("R1*%d", m.Count)
	}
	return fmt.Sprintf("R1*%d/%d*%d", m.Measure.Num(), m.Measure.Den(), m.Count)
}

// Tuplet plays Music in Normal/Actual of its written length.
type Tuplet struct {
	Actual, Normal int
	Music          *Seq
}

func (t *Tuplet) String() string {
	return fmt.Sprintf(`\tuplet %d/%d %s`, t.Actual, t.Normal, t.Music)
}

// Command is a LilyPond command written as is, such as \break.
type Command string

func (c Command) String() string { return string(c) }

// BarCheck is the "|" written after each measure.
type BarCheck struct{}

func (BarCheck) String() string { return "|" }

// Seq is sequential music.
type Seq struct {
	Elems []Elem
}

func (s *Seq) Append(e ...Elem) { s.Elems = append(s.Elems, e...) }

func (s *Seq) String() string {
	if len(s.Elems) == 0 {
		return "{ }"
	}
	return fmt.Sprintf("{ %s }", compound(s.Elems))
}

func compound(elems []Elem) string {
	strs := make([]string, len(elems))
	for i, e := range elems {
		strs[i] = e.String()
	}
	return strings.Join(strs, " ")
}

// RepeatKind is a LilyPond repeat type.
type RepeatKind string

const (
	RepeatVolta   RepeatKind = "volta"
	RepeatPercent RepeatKind = "percent"
)

// Repeat is \repeat Kind Times Music, followed by the alternatives if any.
type Repeat struct {
	Kind         RepeatKind
	Times        int
	Music        *Seq
	Alternatives []*Seq
}

func (r *Repeat) String() string {
	s := fmt.Sprintf(`\repeat %s %d %s`, r.Kind, r.Times, r.Music)
	if len(r.Alternatives) == 0 {
		return s
	}
	alts := make([]Elem, len(r.Alternatives))
	for i, a := range r.Alternatives {
		alts[i] = a
	}
	return s + ` \alternative { ` + compound(alts) + ` }`
}

// quote returns s as a LilyPond string.
func quote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(s) + `"`
}
