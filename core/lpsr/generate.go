package lpsr

import (
	"fmt"
	"io"
	"strings"
)

// generator writes a score, keeping the first write error.
type generator struct {
	w    io.Writer
	opts Options
	err  error
}

func (g *generator) printf(indent int, format string, args ...any) {
	if g.err != nil {
		return
	}
	_, g.err = fmt.Fprintf(g.w, strings.Repeat("  ", indent)+format+"\n", args...)
}

func (g *generator) score(s *Score) {
	version := g.opts.Version
	if version == "" {
		version = DefaultOptions().Version
	}
	g.printf(0, `\version %s`, quote(version))
	g.printf(0, "")

	g.header(s.header)

	for _, v := range s.Voices() {
		g.printf(0, "%s = %s", v.Name, v.Music)
		for _, l := range v.Lyrics {
			g.printf(0, "%s = %s", l.Name, l)
		}
		g.printf(0, "")
	}

	g.printf(0, `\score {`)
	g.printf(1, "<<")
	for _, p := range s.parts {
		for i, st := range p.Staves {
			with := ""
			if i == 0 && p.Name != "" {
				with = ` \with { instrumentName = ` + quote(p.Name) + ` }`
			}
			g.printf(2, `\new Staff = %s%s <<`, quote(fmt.Sprintf("%s %d", p.ID, st.Number)), with)
			for _, v := range st.Voices {
				g.printf(3, `\new Voice = %s \%s`, quote(v.Name), v.Name)
				for _, l := range v.Lyrics {
					g.printf(3, `\new Lyrics \lyricsto %s \%s`, quote(v.Name), l.Name)
				}
			}
			g.printf(2, ">>")
		}
	}
	g.printf(1, ">>")
	g.printf(1, `\layout { }`)
	if g.opts.Midi {
		g.printf(1, `\midi { }`)
	}
	g.printf(0, "}")
}

func (g *generator) header(h Header) {
	if h == (Header{}) {
		return
	}
	g.printf(0, `\header {`)
	for _, f := range []struct{ name, value string }{
		{"title", h.Title},
		{"composer", h.Composer},
		{"copyright", h.Rights},
	} {
		if f.value != "" {
			g.printf(1, "%s = %s", f.name, quote(f.value))
		}
	}
	g.printf(0, "}")
	g.printf(0, "")
}
