// Package css builds CSS selector strings from typed parts.
//
// A selector is assembled part by part (element, id, classes, attributes,
// pseudo-classes, pseudo-element) and serialized in canonical category
// order. Parts must be added in that order; singleton parts may be set only
// once. The package performs no validation of part content - whatever text
// is supplied ends up in the output verbatim.
package css

import (
	"fmt"
	"io"
	"strings"
)

// Category identifies the kind of a selector part. Values are ordered:
// serialization emits categories in ascending order and a selector accepts
// parts only in non-descending category order.
type Category int

const (
	CategoryNone          Category = iota // no parts recorded yet
	CategoryElement                       // element name (e.g. "div")
	CategoryID                            // #id
	CategoryClass                         // .class
	CategoryAttribute                     // [attr]
	CategoryPseudoClass                   // :pseudo-class
	CategoryPseudoElement                 // ::pseudo-element
)

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case CategoryElement:
		return "element"
	case CategoryID:
		return "id"
	case CategoryClass:
		return "class"
	case CategoryAttribute:
		return "attribute"
	case CategoryPseudoClass:
		return "pseudo-class"
	case CategoryPseudoElement:
		return "pseudo-element"
	default:
		return "none"
	}
}

// Singleton returns true for categories that may appear at most once per
// selector.
func (c Category) Singleton() bool {
	return c == CategoryElement || c == CategoryID || c == CategoryPseudoElement
}

// Canonical messages for the two ways a part can be rejected.
const (
	msgDuplicate = "part of this type is already present in the selector"
	msgOrder     = "selector parts must be added in order: element, id, class, attribute, pseudo-class, pseudo-element"
)

// PartError reports a selector part rejected either because its singleton
// category was already set or because a later category has already been
// recorded. The failed call leaves the selector unchanged.
type PartError struct {
	Part Category // category of the rejected part
	Last Category // most recently recorded category
}

// Duplicate reports whether the part was rejected as a repeated singleton
// (as opposed to being out of order).
func (e *PartError) Duplicate() bool {
	return e.Part == e.Last
}

func (e *PartError) Error() string {
	if e.Duplicate() {
		return fmt.Sprintf("cannot add %s: %s", e.Part, msgDuplicate)
	}
	return fmt.Sprintf("cannot add %s after %s: %s", e.Part, e.Last, msgOrder)
}

// SimpleSelector accumulates parts of one compound selector, for example
// div#id.cls[attr]:hover::before. The zero value is an empty selector ready
// for use.
type SimpleSelector struct {
	element       string
	id            string
	classes       []string
	attributes    []string
	pseudoClasses []string
	pseudoElement string

	// category of the most recently added part, enforces ordering
	last Category
}

// advance records a singleton part: any part at or below the current
// position is rejected.
func (s *SimpleSelector) advance(c Category) error {
	if c <= s.last {
		return &PartError{Part: c, Last: s.last}
	}
	s.last = c
	return nil
}

// extend records a multi-valued part: repeats at the current position are
// fine, only strictly earlier categories are rejected.
func (s *SimpleSelector) extend(c Category) error {
	if c < s.last {
		return &PartError{Part: c, Last: s.last}
	}
	s.last = c
	return nil
}

// SetElement sets the element name. Fails if the element is already set or
// any later part has been added.
func (s *SimpleSelector) SetElement(value string) error {
	if err := s.advance(CategoryElement); err != nil {
		return err
	}
	s.element = value
	return nil
}

// SetID sets the id part. Fails if the id is already set or any later part
// has been added.
func (s *SimpleSelector) SetID(value string) error {
	if err := s.advance(CategoryID); err != nil {
		return err
	}
	s.id = value
	return nil
}

// AddClass appends a class. Classes may repeat and keep insertion order.
func (s *SimpleSelector) AddClass(value string) error {
	if err := s.extend(CategoryClass); err != nil {
		return err
	}
	s.classes = append(s.classes, value)
	return nil
}

// AddAttribute appends an attribute expression. The text between the
// brackets is emitted verbatim, no syntax checking.
func (s *SimpleSelector) AddAttribute(value string) error {
	if err := s.extend(CategoryAttribute); err != nil {
		return err
	}
	s.attributes = append(s.attributes, value)
	return nil
}

// AddPseudoClass appends a pseudo-class. Pseudo-classes may repeat and keep
// insertion order.
func (s *SimpleSelector) AddPseudoClass(value string) error {
	if err := s.extend(CategoryPseudoClass); err != nil {
		return err
	}
	s.pseudoClasses = append(s.pseudoClasses, value)
	return nil
}

// SetPseudoElement sets the pseudo-element, the last possible part of a
// selector. Fails if already set.
func (s *SimpleSelector) SetPseudoElement(value string) error {
	if err := s.advance(CategoryPseudoElement); err != nil {
		return err
	}
	s.pseudoElement = value
	return nil
}

// WriteTo writes the selector text to w in canonical category order,
// implementing io.WriterTo. Absent parts contribute nothing.
func (s *SimpleSelector) WriteTo(w io.Writer) (int64, error) {
	var total int64

	write := func(parts ...string) error {
		for _, p := range parts {
			n, err := io.WriteString(w, p)
			total += int64(n)
			if err != nil {
				return err
			}
		}
		return nil
	}

	if s.element != "" {
		if err := write(s.element); err != nil {
			return total, err
		}
	}
	if s.id != "" {
		if err := write("#", s.id); err != nil {
			return total, err
		}
	}
	for _, c := range s.classes {
		if err := write(".", c); err != nil {
			return total, err
		}
	}
	for _, a := range s.attributes {
		if err := write("[", a, "]"); err != nil {
			return total, err
		}
	}
	for _, p := range s.pseudoClasses {
		if err := write(":", p); err != nil {
			return total, err
		}
	}
	if s.pseudoElement != "" {
		if err := write("::", s.pseudoElement); err != nil {
			return total, err
		}
	}
	return total, nil
}

// String returns the selector text.
func (s *SimpleSelector) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}
