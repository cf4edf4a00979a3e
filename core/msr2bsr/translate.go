// Package msr2bsr translates an MSR score into a Braille score.
//
// The translation is a single browse of the MSR tree. Pages and lines are
// started as the score and its breaks are met, and each measure is fitted
// into the current line once complete. Key, time and tempo go into the
// music heading the first time they appear, and into the line afterwards.
package msr2bsr

import (
	"time"

	"github.com/jacques-menu/musicformats-sub010/core/bsr"
	mferrors "github.com/jacques-menu/musicformats-sub010/core/errors"
	"github.com/jacques-menu/musicformats-sub010/core/msr"
	"github.com/jacques-menu/musicformats-sub010/core/visit"
	"github.com/jacques-menu/musicformats-sub010/internal/logging"
)

// TranslateMsrToBsr returns the Braille score of score. passID and
// passDescription only label the log records of the pass.
//
// A nil ctx uses the defaults of msr.NewContext with an unnamed source.
// Errors carry the source name of ctx.
func TranslateMsrToBsr(score *msr.Score, ctx *msr.Context, opts bsr.Options, passID, passDescription string) (*bsr.Score, error) {
	if ctx == nil {
		ctx = msr.NewContext("")
	}
	if score == nil {
		return nil, ctx.InternalError(0, "MSR score to translate to BSR is null")
	}
	if opts.ServiceName == "" {
		opts.ServiceName = bsr.DefaultOptions().ServiceName
	}

	start := time.Now()
	warningsBefore := ctx.WarningsNumber()
	logging.PassStarted(passID, passDescription, ctx.Source(), "run_id", ctx.RunID.String())

	t := newTranslator(ctx, opts)
	if err := visit.NewBrowser(t).Browse(score); err != nil {
		err = mferrors.WithSource(err, ctx.Source())
		logging.PassFailed(passID, err, "run_id", ctx.RunID.String())
		return nil, err
	}

	logging.PassFinished(passID, time.Since(start), ctx.WarningsNumber()-warningsBefore,
		"pages", len(t.result.Pages()), "run_id", ctx.RunID.String())
	return t.result, nil
}
