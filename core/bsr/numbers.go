package bsr

import (
	"fmt"
	"strconv"
)

// Number is a number written with upper digits, optionally preceded by the
// number sign.
type Number struct {
	leaf
	value        int
	signIsNeeded bool
}

// NewNumber returns a number with its cells built. Negative values are
// written as their absolute value.
func NewNumber(line, value int, signIsNeeded bool) *Number {
	Initialize()
	n := &Number{value: value, signIsNeeded: signIsNeeded}
	n.line = line
	n.cells = n.buildCellsList()
	return n
}

// Value returns the number.
func (n *Number) Value() int { return n.value }

// SignIsNeeded tells whether the number sign is written.
func (n *Number) SignIsNeeded() bool { return n.signIsNeeded }

func (n *Number) buildCellsList() *CellsList {
	result := NewCellsList(n.line)
	if n.signIsNeeded {
		result.AppendCellKind(CellNumberSign)
	}
	result.AppendCellsList(upperDigits(n.line, n.value))
	return result
}

func upperDigits(line, value int) *CellsList {
	if value < 0 {
		value = -value
	}
	result := NewCellsList(line)
	for _, r := range strconv.Itoa(value) {
		result.AppendCellKind(UpperDigit(int(r - '0')))
	}
	return result
}

func lowerDigits(line, value int) *CellsList {
	if value < 0 {
		value = -value
	}
	result := NewCellsList(line)
	for _, r := range strconv.Itoa(value) {
		result.AppendCellKind(LowerDigit(int(r - '0')))
	}
	return result
}

func (n *Number) String() string {
	return fmt.Sprintf("Number [%d, sign: %t, %s, line %d]", n.value, n.signIsNeeded, n.cells, n.line)
}
