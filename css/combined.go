package css

import (
	"fmt"
	"io"
	"strings"
)

// Selector is the capability shared by the two selector shapes: a simple
// selector and a combination of two selectors. Only those two
// implementations exist.
type Selector interface {
	fmt.Stringer
	io.WriterTo
}

// CombinedSelector joins two selectors with a combinator symbol. Operands
// are held by reference and are not copied; they are expected to be left
// alone once combined. The combinator is passed through verbatim - this
// type does not check that it is one of the CSS combinators.
type CombinedSelector struct {
	left       Selector
	combinator string
	right      Selector
}

// Combine joins left and right with the given combinator. Either operand
// may itself be a combined selector, nesting stringifies left to right.
func Combine(left Selector, combinator string, right Selector) *CombinedSelector {
	return &CombinedSelector{left: left, combinator: combinator, right: right}
}

// WriteTo writes "left combinator right" with single spaces around the
// combinator, implementing io.WriterTo.
func (c *CombinedSelector) WriteTo(w io.Writer) (int64, error) {
	var total int64

	n, err := c.left.WriteTo(w)
	total += n
	if err != nil {
		return total, err
	}

	m, err := io.WriteString(w, " "+c.combinator+" ")
	total += int64(m)
	if err != nil {
		return total, err
	}

	n, err = c.right.WriteTo(w)
	total += n
	return total, err
}

// String returns the combined selector text.
func (c *CombinedSelector) String() string {
	var sb strings.Builder
	c.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}
