package bsr

import (
	"fmt"
	"unicode"
)

// Words is free text, such as an expression or a tempo indication, preceded
// by the word sign.
type Words struct {
	leaf
	contents string
}

// NewWords returns words with their cells built.
func NewWords(line int, contents string) *Words {
	Initialize()
	w := &Words{contents: contents}
	w.line = line
	w.cells = w.buildCellsList()
	return w
}

// Contents returns the text.
func (w *Words) Contents() string { return w.contents }

func (w *Words) buildCellsList() *CellsList {
	result := NewCellsList(w.line, CellWordSign)
	result.AppendCellsList(TextCells(w.line, w.contents))
	return result
}

// TextCells spells text one character at a time. Capitals get the capital
// sign, digit runs the number sign, and characters with no Braille
// equivalent the full cell.
func TextCells(line int, text string) *CellsList {
	result := NewCellsList(line)
	inNumber := false
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9':
			if !inNumber {
				result.AppendCellKind(CellNumberSign)
				inNumber = true
			}
			result.AppendCellKind(UpperDigit(int(r - '0')))
			continue
		case r == ' ':
			result.AppendCellKind(CellBlank)
		case unicode.IsUpper(r) && r < unicode.MaxASCII:
			result.AppendCellKind(CellCapitalSign)
			result.AppendCellKind(textCell(unicode.ToLower(r)))
		default:
			result.AppendCellKind(textCell(r))
		}
		inNumber = false
	}
	return result
}

func textCell(r rune) CellKind {
	if c, ok := Letter(r); ok {
		return c
	}
	if c, ok := punctuationCells[r]; ok {
		return c
	}
	return CellUnknown
}

func (w *Words) String() string {
	return fmt.Sprintf("Words [%q, %s, line %d]", w.contents, w.cells, w.line)
}
