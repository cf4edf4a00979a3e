// Package msr2msr rebuilds an MSR score into a new one, optionally limited
// to a single voice and transformed on the way.
//
// The source score is never modified. The result is built from newborn
// clones of the nodes browsed, so it shares nothing with the source.
package msr2msr

import (
	"time"

	mferrors "github.com/jacques-menu/musicformats-sub010/core/errors"
	"github.com/jacques-menu/musicformats-sub010/core/msr"
	"github.com/jacques-menu/musicformats-sub010/core/visit"
	"github.com/jacques-menu/musicformats-sub010/internal/logging"
)

// TranslateMsrToMsr returns a new score built from score under opts. A nil
// ctx uses the defaults of msr.NewContext with an unnamed source.
func TranslateMsrToMsr(score *msr.Score, ctx *msr.Context, opts Options, passID, passDescription string) (*msr.Score, error) {
	return translate(score, ctx, opts, passID, passDescription, nil)
}

// TranslateMsrToMsrAlongPathToVoice is TranslateMsrToMsr restricted to the
// voice path designates. The result holds that voice only, inside copies
// of its staff, part, part group and score. A path that names no voice of
// score is a not-found error.
func TranslateMsrToMsrAlongPathToVoice(score *msr.Score, ctx *msr.Context, opts Options, passID, passDescription string, path msr.PathToVoice) (*msr.Score, error) {
	if score != nil {
		if _, err := path.Resolve(score); err != nil {
			return nil, err
		}
	}
	return translate(score, ctx, opts, passID, passDescription, path.Filter())
}

func translate(score *msr.Score, ctx *msr.Context, opts Options, passID, passDescription string, pathFilter visit.Filter) (*msr.Score, error) {
	if ctx == nil {
		ctx = msr.NewContext("")
	}
	if score == nil {
		return nil, ctx.InternalError(0, "MSR score to translate to MSR is null")
	}

	start := time.Now()
	warningsBefore := ctx.WarningsNumber()
	logging.PassStarted(passID, passDescription, ctx.Source(), "run_id", ctx.RunID.String())

	var browserOpts []visit.Option
	if f := both(pathFilter, opts.partFilter()); f != nil {
		browserOpts = append(browserOpts, visit.WithFilter(f))
	}

	t := newTranslator(ctx, opts)
	if err := visit.NewBrowser(t, browserOpts...).Browse(score); err != nil {
		err = mferrors.WithSource(err, ctx.Source())
		logging.PassFailed(passID, err, "run_id", ctx.RunID.String())
		return nil, err
	}

	logging.PassFinished(passID, time.Since(start), ctx.WarningsNumber()-warningsBefore,
		"parts", len(t.result.Parts()), "run_id", ctx.RunID.String())
	return t.result, nil
}
