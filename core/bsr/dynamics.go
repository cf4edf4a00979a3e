package bsr

import "fmt"

// DynamicKind is a dynamic marking.
type DynamicKind int

const (
	DynamicNone DynamicKind = iota
	DynamicF
	DynamicFF
	DynamicFFF
	DynamicFFFF
	DynamicFFFFF
	DynamicFFFFFF
	DynamicP
	DynamicPP
	DynamicPPP
	DynamicPPPP
	DynamicPPPPP
	DynamicPPPPPP
	DynamicMF
	DynamicMP
	DynamicFP
	DynamicFZ
	DynamicPF
	DynamicRF
	DynamicSF
	DynamicRFZ
	DynamicSFZ
	DynamicSFP
	DynamicSFPP
	DynamicSFFZ
	DynamicSFZP
	DynamicN
)

// dynamicSpellings are written letter for letter.
var dynamicSpellings = map[DynamicKind]string{
	DynamicF:      "f",
	DynamicFF:     "ff",
	DynamicFFF:    "fff",
	DynamicFFFF:   "ffff",
	DynamicFFFFF:  "fffff",
	DynamicFFFFFF: "ffffff",
	DynamicP:      "p",
	DynamicPP:     "pp",
	DynamicPPP:    "ppp",
	DynamicPPPP:   "pppp",
	DynamicPPPPP:  "ppppp",
	DynamicPPPPPP: "pppppp",
	DynamicMF:     "mf",
	DynamicMP:     "mp",
	DynamicFP:     "fp",
	DynamicFZ:     "fz",
	DynamicPF:     "pf",
	DynamicRF:     "rf",
	DynamicSF:     "sf",
	DynamicRFZ:    "rfz",
	DynamicSFZ:    "sfz",
	DynamicSFP:    "sfp",
	DynamicSFPP:   "sfpp",
	DynamicSFFZ:   "sffz",
	DynamicSFZP:   "sfzp",
	DynamicN:      "n",
}

// DynamicKindFromString returns the kind spelled s, e.g. "mf".
func DynamicKindFromString(s string) (DynamicKind, bool) {
	for k, spelling := range dynamicSpellings {
		if spelling == s {
			return k, true
		}
	}
	return DynamicNone, false
}

func (k DynamicKind) String() string {
	if s, ok := dynamicSpellings[k]; ok {
		return s
	}
	return "none"
}

// DynamicLetters returns the letter cells of k, without the word sign.
func DynamicLetters(line int, k DynamicKind) *CellsList {
	result := NewCellsList(line)
	for _, r := range dynamicSpellings[k] {
		result.AppendCellKind(mustLetter(r))
	}
	return result
}

// Dynamic is a dynamic marking: the word sign followed by its letters.
type Dynamic struct {
	leaf
	kind DynamicKind
}

// NewDynamic returns a dynamic with its cells built.
func NewDynamic(line int, kind DynamicKind) *Dynamic {
	Initialize()
	d := &Dynamic{kind: kind}
	d.line = line
	d.cells = d.buildCellsList()
	return d
}

// Kind returns the dynamic kind.
func (d *Dynamic) Kind() DynamicKind { return d.kind }

// Letters returns the letter cells, without the word sign.
func (d *Dynamic) Letters() *CellsList {
	return DynamicLetters(d.line, d.kind)
}

func (d *Dynamic) buildCellsList() *CellsList {
	result := NewCellsList(d.line, CellWordSign)
	result.AppendCellsList(DynamicLetters(d.line, d.kind))
	return result
}

func (d *Dynamic) String() string {
	return fmt.Sprintf("Dynamic [%s, %s, line %d]", d.kind, d.cells, d.line)
}
