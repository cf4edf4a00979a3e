// Command musicformats translates MusicXML scores to Braille music and
// LilyPond, and runs the MSR to MSR pass on its own for inspection.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"

	"github.com/jacques-menu/musicformats-sub010/core/bsr"
	"github.com/jacques-menu/musicformats-sub010/core/cas"
	mferrors "github.com/jacques-menu/musicformats-sub010/core/errors"
	"github.com/jacques-menu/musicformats-sub010/core/lpsr"
	"github.com/jacques-menu/musicformats-sub010/core/msr"
	"github.com/jacques-menu/musicformats-sub010/core/msr2bsr"
	"github.com/jacques-menu/musicformats-sub010/core/msr2msr"
	"github.com/jacques-menu/musicformats-sub010/core/musicxml"
	"github.com/jacques-menu/musicformats-sub010/core/sqlite"
	"github.com/jacques-menu/musicformats-sub010/internal/archive"
	"github.com/jacques-menu/musicformats-sub010/internal/ledger"
	"github.com/jacques-menu/musicformats-sub010/internal/logging"
	"github.com/jacques-menu/musicformats-sub010/internal/validation"
)

const version = "0.1.0"

// stdout receives translation output when no --output is given.
var stdout io.Writer = os.Stdout

// CLI defines the command-line interface for musicformats.
var CLI struct {
	// Global flags
	LogLevel  string `name:"log-level" help:"Log level" enum:"debug,trace,info,warn,error" default:"warn"`
	LogFormat string `name:"log-format" help:"Log format" enum:"text,json" default:"text"`
	LedgerDB  string `name:"ledger-db" help:"SQLite run ledger to record translations in" type:"path" env:"MUSICFORMATS_LEDGER"`
	Store     string `help:"Directory keeping every output by fingerprint" type:"path"`

	// Commands (noun-first organization)
	Xml2brl Xml2brlCmd  `cmd:"" name:"xml2brl" help:"Translate MusicXML to Braille music"`
	Xml2ly  Xml2lyCmd   `cmd:"" name:"xml2ly" help:"Translate MusicXML to LilyPond"`
	Xml2xml Xml2xmlCmd  `cmd:"" name:"xml2xml" help:"Run the MSR to MSR pass and summarize the result"`
	Ledger  LedgerGroup `cmd:"" help:"Run ledger operations"`
	Version VersionCmd  `cmd:"" help:"Print version information"`
}

// LedgerGroup contains run ledger operations.
type LedgerGroup struct {
	List LedgerListCmd `cmd:"" help:"List recorded runs, most recent first"`
	Show LedgerShowCmd `cmd:"" help:"Print the stored output of a run"`
}

// InputFlags name the score to read and how to read it.
type InputFlags struct {
	File        string   `arg:"" help:"MusicXML file (.musicxml, .xml, .mxl, optionally .xz or .gz), - for stdin"`
	Order       string   `help:"Browsing order of clef, key and time" enum:"clef-key-time,key-time-clef" default:"clef-key-time"`
	PadStanzas  bool     `name:"pad-stanzas" help:"Insert skips where a stanza lags behind its notes"`
	NoSanity    bool     `name:"no-sanity" help:"Disable the argument checks of the builders"`
	KeepParts   []string `name:"keep-part" help:"Keep only these part IDs"`
	IgnoreParts []string `name:"ignore-part" help:"Drop these part IDs"`
	PageBreaks  []string `name:"page-break-after" help:"Insert a page break after these measure numbers"`
	Coalesce    bool     `help:"Turn runs of empty measures into multiple measure rests"`
	WordsTempo  bool     `name:"words-to-tempo" help:"Turn words into tempo indications"`
	TempoMarks  bool     `name:"tempos-to-rehearsal-marks" help:"Turn tempos into rehearsal marks"`
	InitialBar  bool     `name:"implicit-initial-repeat" help:"Give a repeat opening the score an explicit start bar line"`
}

// Xml2brlCmd translates a MusicXML file to Unicode Braille.
type Xml2brlCmd struct {
	InputFlags    `embed:""`
	Output        string `short:"o" help:"Output file, compressed when ending in .xz or .gz" type:"path"`
	CellsPerLine  int    `name:"cells-per-line" help:"Braille cells per line" default:"30"`
	LinesPerPage  int    `name:"lines-per-page" help:"Braille lines per page" default:"27"`
	LineNumbers   bool   `name:"line-numbers" help:"Write line numbers at the end of lines"`
	NoTempos      bool   `name:"no-tempos" help:"Drop tempo indications"`
	NoClefs       bool   `name:"no-clefs" help:"Do not write clef signs"`
	NoteValueSize bool   `name:"note-value-size" help:"Write value size indicators"`
}

func (c *Xml2brlCmd) Run() error {
	opts := bsr.DefaultOptions()
	opts.CellsPerLine = c.CellsPerLine
	opts.LinesPerPage = c.LinesPerPage
	opts.LineNumbers = c.LineNumbers
	opts.NoTempos = c.NoTempos
	opts.IncludeClefs = !c.NoClefs
	opts.NoteValueSize = c.NoteValueSize

	return translate(c.InputFlags, nil, "msr2bsr", c.Output, func(score *msr.Score, ctx *msr.Context) (string, error) {
		b, err := msr2bsr.TranslateMsrToBsr(score, ctx, opts, "msr2bsr", "translate MSR to BSR")
		if err != nil {
			return "", err
		}
		return b.Unicode(), nil
	})
}

// Xml2lyCmd translates a MusicXML file to LilyPond.
type Xml2lyCmd struct {
	InputFlags `embed:""`
	Output     string `short:"o" help:"Output file, compressed when ending in .xz or .gz" type:"path"`
	LyVersion  string `name:"ly-version" help:"LilyPond version to declare" default:"2.24.0"`
	Midi       bool   `help:"Add a MIDI block to the score"`
}

func (c *Xml2lyCmd) Run() error {
	opts := lpsr.DefaultOptions()
	opts.Version = c.LyVersion
	opts.Midi = c.Midi

	return translate(c.InputFlags, nil, "msr2lpsr", c.Output, func(score *msr.Score, ctx *msr.Context) (string, error) {
		l, err := lpsr.TranslateMsrToLpsr(score, ctx, "msr2lpsr", "translate MSR to LPSR")
		if err != nil {
			return "", err
		}
		var b strings.Builder
		if err := lpsr.Generate(&b, l, opts); err != nil {
			return "", err
		}
		return b.String(), nil
	})
}

// Xml2xmlCmd runs the MSR to MSR pass, possibly along one voice, and prints
// what the resulting score holds.
type Xml2xmlCmd struct {
	InputFlags `embed:""`
	Path       string `help:"Keep only this voice, as partID/staff/voice"`
	Dump       bool   `help:"Append a deep dump of the resulting score"`
	DumpDepth  int    `name:"dump-depth" help:"Levels shown by --dump, 0 for the default" default:"0"`
}

func (c *Xml2xmlCmd) Run() error {
	var path *msr.PathToVoice
	if c.Path != "" {
		p, err := msr.ParsePathToVoice(c.Path)
		if err != nil {
			return err
		}
		path = &p
	}

	return translate(c.InputFlags, path, "msr2msr", "", func(score *msr.Score, _ *msr.Context) (string, error) {
		summary, err := msr.Summarize(score)
		if err != nil {
			return "", err
		}
		flat, err := msr.FlatView(score)
		if err != nil {
			return "", err
		}
		out := summary.String() + "\n" + flat
		if c.Dump {
			out += "\n" + msr.DebugStringDepth(score, c.DumpDepth)
		}
		return out, nil
	})
}

// LedgerListCmd lists the runs of the ledger. With --store, runs whose
// output is kept in the store are marked "stored".
type LedgerListCmd struct {
	Limit int `help:"Show at most this many runs, 0 for all" default:"20"`
}

func (c *LedgerListCmd) Run() error {
	ctx := context.Background()
	l, err := openLedgerReadOnly(ctx)
	if err != nil {
		return err
	}
	defer l.Close()

	var store *cas.Store
	if CLI.Store != "" {
		if store, err = cas.NewStore(CLI.Store); err != nil {
			return err
		}
	}

	runs, err := l.List(ctx, c.Limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(stdout, "No runs recorded.")
		return nil
	}
	for _, r := range runs {
		line := fmt.Sprintf("%s  %s  %-8s  %s  %3d warnings  %s",
			r.ID, r.Started.Format(time.RFC3339), r.Pass, r.Fingerprint[:min(12, len(r.Fingerprint))], r.Warnings, r.Input)
		if store != nil && store.Exists(r.Fingerprint) {
			line += "  stored"
		}
		fmt.Fprintln(stdout, line)
	}
	return nil
}

// LedgerShowCmd prints the output a recorded run produced, as kept in the
// store.
type LedgerShowCmd struct {
	ID string `arg:"" help:"Run ID, as printed by ledger list"`
}

func (c *LedgerShowCmd) Run() error {
	id, err := uuid.Parse(c.ID)
	if err != nil {
		return mferrors.Wrapf(mferrors.ErrInvalidInput, "run id %q: %v", c.ID, err)
	}
	if CLI.Store == "" {
		return fmt.Errorf("no store: give --store")
	}
	ctx := logging.WithRunID(context.Background(), id.String())
	l, err := openLedgerReadOnly(ctx)
	if err != nil {
		return err
	}
	defer l.Close()

	run, err := l.Find(ctx, id)
	if err != nil {
		return err
	}
	store, err := cas.NewStore(CLI.Store)
	if err != nil {
		return err
	}
	out, err := store.Get(run.Fingerprint)
	if err != nil {
		return mferrors.Wrapf(err, "output of run %s", id)
	}
	_, err = stdout.Write(out)
	return err
}

// openLedgerReadOnly opens the ledger named by --ledger-db for reading.
func openLedgerReadOnly(ctx context.Context) (*ledger.Ledger, error) {
	if CLI.LedgerDB == "" {
		return nil, fmt.Errorf("no ledger: give --ledger-db or set MUSICFORMATS_LEDGER")
	}
	return ledger.OpenReadOnly(ctx, CLI.LedgerDB)
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	info := sqlite.GetInfo()
	fmt.Fprintf(stdout, "musicformats version %s\n", version)
	fmt.Fprintf(stdout, "ledger driver: %s (%s)\n", info.Package, info.DriverType)
	return nil
}

// newContext builds the translation context for the input flags.
func newContext(in InputFlags) (*msr.Context, error) {
	order, err := msr.ParseClefKeyTimeOrder(in.Order)
	if err != nil {
		return nil, err
	}
	ctx := msr.NewContext(in.File)
	ctx.Order = order
	ctx.PadStanzasWithSkips = in.PadStanzas
	ctx.SanityChecks = !in.NoSanity
	return ctx, nil
}

func (in InputFlags) msr2msrOptions() msr2msr.Options {
	return msr2msr.Options{
		KeepParts:                          in.KeepParts,
		IgnoreParts:                        in.IgnoreParts,
		InsertPageBreakAfterMeasure:        in.PageBreaks,
		CoalesceEmptyMeasures:              in.Coalesce,
		ConvertWordsToTempo:                in.WordsTempo,
		ConvertTemposToRehearsalMarks:      in.TempoMarks,
		CreateImplicitInitialRepeatBarLine: in.InitialBar,
	}
}

// load reads the input score, from stdin when the file is "-".
func load(in InputFlags, ctx *msr.Context) (*msr.Score, error) {
	if in.File == "-" {
		return musicxml.Load(os.Stdin, ctx)
	}
	kind, err := validation.ValidateInput(in.File)
	if err != nil {
		return nil, mferrors.Wrapf(err, "checking %s", in.File)
	}
	logging.Debug("reading input", "file", in.File, "type", string(kind))
	r, err := archive.Open(in.File)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return musicxml.Load(r, ctx)
}

// translate loads the input, runs the MSR to MSR pass, along path when it
// is not nil, and then pass, writes what pass returns and records the run.
func translate(in InputFlags, path *msr.PathToVoice, passID, output string, pass func(*msr.Score, *msr.Context) (string, error)) error {
	start := time.Now()
	if output != "" {
		if err := validation.ValidateOutput(output); err != nil {
			return mferrors.Wrapf(err, "checking %s", output)
		}
	}
	ctx, err := newContext(in)
	if err != nil {
		return err
	}
	score, err := load(in, ctx)
	if err != nil {
		return err
	}
	if path != nil {
		score, err = msr2msr.TranslateMsrToMsrAlongPathToVoice(score, ctx, in.msr2msrOptions(), "msr2msr", "apply the MSR options along "+path.String(), *path)
	} else {
		score, err = msr2msr.TranslateMsrToMsr(score, ctx, in.msr2msrOptions(), "msr2msr", "apply the MSR options")
	}
	if err != nil {
		return err
	}
	out, err := pass(score, ctx)
	if err != nil {
		return err
	}

	if output == "" {
		if _, err := io.WriteString(stdout, out); err != nil {
			return mferrors.Wrap(err, "writing output")
		}
	} else if err := archive.WriteFile(output, []byte(out)); err != nil {
		return err
	}

	return record(ledger.Run{
		ID:       ctx.RunID,
		Input:    in.File,
		Pass:     passID,
		Warnings: ctx.WarningsNumber(),
		Started:  start,
		Duration: time.Since(start),
	}, []byte(out))
}

// record fingerprints out, keeps it in the store and adds the run to the
// ledger, for those of --store and --ledger-db that are given. A fingerprint
// differing from the previous run of the same pass over the same input is
// logged.
func record(run ledger.Run, out []byte) error {
	run.Fingerprint = cas.Fingerprint(out)

	if CLI.Store != "" {
		store, err := cas.NewStore(CLI.Store)
		if err != nil {
			return err
		}
		if _, err := store.Put(out); err != nil {
			return err
		}
	}

	if CLI.LedgerDB == "" {
		return nil
	}
	ctx := logging.WithRunID(context.Background(), run.ID.String())
	l, err := ledger.Open(ctx, CLI.LedgerDB)
	if err != nil {
		return err
	}
	defer l.Close()

	prev, err := l.Last(ctx, run.Input, run.Pass)
	switch {
	case err == nil && prev.Fingerprint != run.Fingerprint:
		logging.WarnContext(ctx, "run_fingerprint_changed",
			"input", run.Input, "pass", run.Pass,
			"previous_run_id", prev.ID.String(), "previous", prev.Fingerprint, "current", run.Fingerprint)
	case err != nil && !mferrors.Is(err, mferrors.ErrNotFound):
		return err
	}
	_, err = l.Record(ctx, run)
	return err
}

func initLogging() {
	format := logging.FormatText
	if CLI.LogFormat == "json" {
		format = logging.FormatJSON
	}
	logging.InitLogger(logging.ParseLevel(CLI.LogLevel), format)
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("musicformats"),
		kong.Description("musicformats - MusicXML to Braille music and LilyPond"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	initLogging()
	err := ctx.Run(ctx)
	ctx.FatalIfErrorf(err)
}
