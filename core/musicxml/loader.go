package musicxml

import (
	"io"
	"os"

	"github.com/antchfx/xmlquery"

	mferrors "github.com/jacques-menu/musicformats-sub010/core/errors"
	"github.com/jacques-menu/musicformats-sub010/core/msr"
	"github.com/jacques-menu/musicformats-sub010/internal/logging"
)

// Load reads the MusicXML partwise document in r into a new MSR score.
// ctx names the source and collects the warnings; a nil ctx uses the
// defaults of msr.NewContext with an unnamed source.
//
// Malformed XML and documents that are not score-partwise give errors
// matching ErrInvalidInput, timewise scores one matching ErrUnsupported.
// Errors found while building the voices carry their input line.
func Load(r io.Reader, ctx *msr.Context) (*msr.Score, error) {
	if ctx == nil {
		ctx = msr.NewContext("")
	}
	doc, err := parse(r, ctx.Source())
	if err != nil {
		return nil, err
	}

	root := xmlquery.QuerySelector(doc, exprPartwise)
	if root == nil {
		if xmlquery.QuerySelector(doc, exprTimewise) != nil {
			return nil, mferrors.NewUnsupported("score-timewise", "only partwise MusicXML is read")
		}
		return nil, mferrors.NewParse("MusicXML", ctx.Source(), "no score-partwise root element")
	}

	score := msr.NewScore(root.LineNumber)
	score.SetIdentification(identification(root))
	group := msr.NewPartGroup(root.LineNumber, 1, "")
	score.AppendPartGroup(group)

	names := make(map[string]string)
	for _, sp := range xmlquery.QuerySelectorAll(root, exprScoreParts) {
		names[sp.SelectAttr("id")] = text(sp, "part-name")
	}

	measures := 0
	for _, pn := range xmlquery.QuerySelectorAll(root, exprParts) {
		id := pn.SelectAttr("id")
		if _, ok := names[id]; !ok {
			ctx.Warn(pn.LineNumber, "part %q is not in the part list", id)
		}
		part := msr.NewPart(pn.LineNumber, id, names[id])
		group.AppendPart(part)

		pb := newPartBuilder(ctx, part)
		for _, mn := range xmlquery.QuerySelectorAll(pn, exprMeasures) {
			if err := pb.measure(mn); err != nil {
				return nil, mferrors.WithSource(err, ctx.Source())
			}
			measures++
		}
		if err := pb.finish(pn.LineNumber); err != nil {
			return nil, mferrors.WithSource(err, ctx.Source())
		}
	}

	logging.ScoreLoaded(ctx.Source(), len(score.Parts()), measures, "run_id", ctx.RunID.String())
	return score, nil
}

// LoadFile is Load on the file at path, with a context named after it.
func LoadFile(path string, ctx *msr.Context) (*msr.Score, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, mferrors.Wrapf(err, "opening MusicXML file %s", path)
	}
	defer f.Close()

	if ctx == nil {
		ctx = msr.NewContext(path)
	}
	return Load(f, ctx)
}

func identification(root *xmlquery.Node) msr.Identification {
	return msr.Identification{
		WorkTitle:     queryText(root, exprWorkTitle),
		MovementTitle: queryText(root, exprMovement),
		Composer:      queryText(root, exprCreator),
		Rights:        queryText(root, exprRights),
	}
}
