// Package musicxml reads MusicXML partwise documents into MSR scores.
//
// Only the subset needed by the translation passes is read: parts and
// their names, measures, attributes, notes with their lyrics, bar lines
// with repeats and endings, and dynamics, words, metronome and rehearsal
// directions. Other elements are skipped with a debug log.
//
// Parsing goes through xmlquery, which uses encoding/xml underneath and
// therefore never fetches external entities.
package musicxml

import (
	"io"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"

	mferrors "github.com/jacques-menu/musicformats-sub010/core/errors"
)

// Precompiled expressions, relative to the node they are evaluated on.
var (
	exprPartwise   = xpath.MustCompile("/score-partwise")
	exprTimewise   = xpath.MustCompile("/score-timewise")
	exprScoreParts = xpath.MustCompile("part-list/score-part")
	exprParts      = xpath.MustCompile("part")
	exprMeasures   = xpath.MustCompile("measure")
	exprCreator    = xpath.MustCompile("identification/creator[@type='composer']")
	exprRights     = xpath.MustCompile("identification/rights")
	exprWorkTitle  = xpath.MustCompile("work/work-title")
	exprMovement   = xpath.MustCompile("movement-title")
)

// parse reads a MusicXML document, keeping the line number of each node.
// Undeclared entities are rejected.
func parse(r io.Reader, path string) (*xmlquery.Node, error) {
	doc, err := xmlquery.ParseWithOptions(r, xmlquery.ParserOptions{
		Decoder:         &xmlquery.DecoderOptions{Strict: true, Entity: map[string]string{}},
		WithLineNumbers: true,
	})
	if err != nil {
		pe := mferrors.NewParse("MusicXML", path, err.Error())
		pe.Err = err
		return nil, pe
	}
	return doc, nil
}

// child returns the first child element of n called name, nil if none.
func child(n *xmlquery.Node, name string) *xmlquery.Node {
	if n == nil {
		return nil
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode && c.Data == name {
			return c
		}
	}
	return nil
}

// elements returns the child elements of n, in document order, none if n
// is nil.
func elements(n *xmlquery.Node) []*xmlquery.Node {
	if n == nil {
		return nil
	}
	var result []*xmlquery.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			result = append(result, c)
		}
	}
	return result
}

// childrenNamed returns the child elements of n called name.
func childrenNamed(n *xmlquery.Node, name string) []*xmlquery.Node {
	var result []*xmlquery.Node
	for _, c := range elements(n) {
		if c.Data == name {
			result = append(result, c)
		}
	}
	return result
}

// text returns the trimmed text of the child name of n, "" if absent.
func text(n *xmlquery.Node, name string) string {
	if c := child(n, name); c != nil {
		return strings.TrimSpace(c.InnerText())
	}
	return ""
}

// integer returns the child name of n as an int, def if absent or not a
// number.
func integer(n *xmlquery.Node, name string, def int) int {
	if v, err := strconv.Atoi(text(n, name)); err == nil {
		return v
	}
	return def
}

// attrInt returns the attribute name of n as an int, def if absent or not
// a number.
func attrInt(n *xmlquery.Node, name string, def int) int {
	if v, err := strconv.Atoi(strings.TrimSpace(n.SelectAttr(name))); err == nil {
		return v
	}
	return def
}

func queryText(n *xmlquery.Node, expr *xpath.Expr) string {
	if found := xmlquery.QuerySelector(n, expr); found != nil {
		return strings.TrimSpace(found.InnerText())
	}
	return ""
}
