package bsr

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	mferrors "github.com/jacques-menu/musicformats-sub010/core/errors"
)

// PerMinute is the decoded "per minute" text of a metronome mark.
type PerMinute struct {
	// Min is the single value, or the lower bound of a range.
	Min int `json:"min"`

	// Max is the upper bound of a range, 0 for a single value.
	Max int `json:"max,omitempty"`
}

// IsRange reports whether p is a min-max range.
func (p PerMinute) IsRange() bool { return p.Max > 0 }

func (p PerMinute) String() string {
	if p.IsRange() {
		return fmt.Sprintf("%d-%d", p.Min, p.Max)
	}
	return fmt.Sprint(p.Min)
}

// perMinuteGrammar accepts "88" and "88-96", with optional blanks around
// the numbers and the hyphen.
//
//nolint:govet // participle grammar tags are not standard struct tags
type perMinuteGrammar struct {
	Min int  `@Int`
	Max *int `( "-" @Int )?`
}

var perMinuteLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Punct", Pattern: `-`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var perMinuteParser = participle.MustBuild[perMinuteGrammar](
	participle.Lexer(perMinuteLexer),
	participle.Elide("Whitespace"),
)

// ParsePerMinute decodes a per-minute string. Anything but a number or a
// range of two increasing numbers is an error.
func ParsePerMinute(s string) (PerMinute, error) {
	if strings.TrimSpace(s) == "" {
		return PerMinute{}, mferrors.NewParse("tempo per minute", "", "empty string")
	}

	parsed, err := perMinuteParser.ParseString("", s)
	if err != nil {
		return PerMinute{}, &mferrors.ParseError{
			Format:  "tempo per minute",
			Message: fmt.Sprintf("%q is ill-formed", s),
			Err:     err,
		}
	}

	result := PerMinute{Min: parsed.Min}
	if parsed.Max != nil {
		if *parsed.Max <= parsed.Min {
			return PerMinute{}, mferrors.NewParse("tempo per minute", "",
				fmt.Sprintf("%q: range end %d is not above its start %d", s, *parsed.Max, parsed.Min))
		}
		result.Max = *parsed.Max
	}
	return result, nil
}
