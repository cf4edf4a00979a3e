package msr

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	mferrors "github.com/jacques-menu/musicformats-sub010/core/errors"
	"github.com/jacques-menu/musicformats-sub010/core/visit"
)

// PathToVoice designates one voice of a score as "partID/staff/voice".
type PathToVoice struct {
	PartID      string
	StaffNumber int
	VoiceNumber int
}

//nolint:govet // participle grammar tags are not standard struct tags
type pathGrammar struct {
	Part  string `@Name`
	Staff int    `"/" @Name`
	Voice int    `"/" @Name`
}

var pathLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Name", Pattern: `[^/\s]+`},
	{Name: "Slash", Pattern: `/`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var pathParser = participle.MustBuild[pathGrammar](
	participle.Lexer(pathLexer),
	participle.Elide("Whitespace"),
)

// ParsePathToVoice decodes "partID/staff/voice", as in "P1/1/2".
func ParsePathToVoice(s string) (PathToVoice, error) {
	if strings.TrimSpace(s) == "" {
		return PathToVoice{}, mferrors.NewParse("path to voice", "", "empty string")
	}
	parsed, err := pathParser.ParseString("", s)
	if err != nil {
		return PathToVoice{}, &mferrors.ParseError{
			Format:  "path to voice",
			Message: fmt.Sprintf("%q is not partID/staff/voice", s),
			Err:     err,
		}
	}
	if parsed.Staff < 1 || parsed.Voice < 1 {
		return PathToVoice{}, mferrors.NewParse("path to voice", "",
			fmt.Sprintf("%q: staff and voice numbers start at 1", s))
	}
	return PathToVoice{PartID: parsed.Part, StaffNumber: parsed.Staff, VoiceNumber: parsed.Voice}, nil
}

func (p PathToVoice) String() string {
	return fmt.Sprintf("%s/%d/%d", p.PartID, p.StaffNumber, p.VoiceNumber)
}

// Resolve returns the voice p designates in score.
func (p PathToVoice) Resolve(score *Score) (*Voice, error) {
	for _, part := range score.Parts() {
		if part.id != p.PartID {
			continue
		}
		st := part.Staff(p.StaffNumber)
		if st == nil {
			return nil, mferrors.NewNotFound("staff", fmt.Sprintf("%s/%d", p.PartID, p.StaffNumber))
		}
		v := st.Voice(p.VoiceNumber)
		if v == nil {
			return nil, mferrors.NewNotFound("voice", p.String())
		}
		return v, nil
	}
	return nil, mferrors.NewNotFound("part", p.PartID)
}

// Filter returns a browser filter that only enters the part, staff and
// voice on the path. Everything above and below them is browsed.
func (p PathToVoice) Filter() visit.Filter {
	return func(e visit.Element) bool {
		switch x := e.(type) {
		case *Part:
			return x.id == p.PartID
		case *Staff:
			return x.number == p.StaffNumber
		case *Voice:
			return x.number == p.VoiceNumber
		}
		return true
	}
}
