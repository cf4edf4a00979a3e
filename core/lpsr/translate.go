// Package lpsr holds the LilyPond score representation and writes it out
// as LilyPond text.
//
// An LPSR score keeps the MSR score it was built from and adds, for every
// voice, a LilyPond music expression and the lyrics of its stanzas. Repeats
// become \repeat volta with their endings as \alternative, measure and beat
// repeats become \repeat percent, and multiple measure rests become R1*n.
package lpsr

import (
	"io"
	"time"

	mferrors "github.com/jacques-menu/musicformats-sub010/core/errors"
	"github.com/jacques-menu/musicformats-sub010/core/msr"
	"github.com/jacques-menu/musicformats-sub010/core/visit"
	"github.com/jacques-menu/musicformats-sub010/internal/logging"
)

// TranslateMsrToLpsr returns the LPSR score of score. A nil ctx uses the
// defaults of msr.NewContext with an unnamed source.
func TranslateMsrToLpsr(score *msr.Score, ctx *msr.Context, passID, passDescription string) (*Score, error) {
	if ctx == nil {
		ctx = msr.NewContext("")
	}
	if score == nil {
		return nil, ctx.InternalError(0, "MSR score to translate to LPSR is null")
	}

	start := time.Now()
	warningsBefore := ctx.WarningsNumber()
	logging.PassStarted(passID, passDescription, ctx.Source(), "run_id", ctx.RunID.String())

	t := newTranslator(ctx)
	if err := visit.NewBrowser(t).Browse(score); err != nil {
		err = mferrors.WithSource(err, ctx.Source())
		logging.PassFailed(passID, err, "run_id", ctx.RunID.String())
		return nil, err
	}

	logging.PassFinished(passID, time.Since(start), ctx.WarningsNumber()-warningsBefore,
		"voices", len(t.result.Voices()), "run_id", ctx.RunID.String())
	return t.result, nil
}

// Generate writes s to w as a LilyPond file.
func Generate(w io.Writer, s *Score, opts Options) error {
	if s == nil {
		return mferrors.NewInternal("", 0, "LPSR score to generate is null")
	}
	g := &generator{w: w, opts: opts}
	g.score(s)
	if g.err != nil {
		return mferrors.Wrapf(g.err, "writing LilyPond output")
	}
	return nil
}
