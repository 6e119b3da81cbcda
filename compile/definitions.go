// Package compile turns YAML selector sheets into serialized CSS selector
// text using the css builder.
package compile

import (
	"bytes"
	"errors"
	"fmt"

	yaml "gopkg.in/yaml.v3"

	"csb/css"
)

// Sheet is a parsed selector sheet document.
type Sheet struct {
	Version   int          `yaml:"version"`
	Selectors []Definition `yaml:"selectors"`
}

// Definition is one named selector in a sheet. The node part describes
// either a simple selector (ordered parts) or a combination of two nodes.
type Definition struct {
	Name string `yaml:"name"`
	Node Node   `yaml:",inline"`
}

// Node describes a selector. Exactly one of Parts or Combine must be
// present.
type Node struct {
	Parts   []Part       `yaml:"parts,omitempty"`
	Combine *CombineNode `yaml:"combine,omitempty"`
}

// CombineNode joins two selector nodes with a combinator symbol. The symbol
// is passed to the builder verbatim.
type CombineNode struct {
	Left       *Node  `yaml:"left"`
	Combinator string `yaml:"combinator"`
	Right      *Node  `yaml:"right"`
}

// Part is a single selector part. Exactly one field must be set; parts are
// applied in the order they are listed, so the css package ordering rules
// apply to the sheet as written.
type Part struct {
	Element       *string `yaml:"element,omitempty"`
	ID            *string `yaml:"id,omitempty"`
	Class         *string `yaml:"class,omitempty"`
	Attribute     *string `yaml:"attribute,omitempty"`
	PseudoClass   *string `yaml:"pseudo_class,omitempty"`
	PseudoElement *string `yaml:"pseudo_element,omitempty"`
}

// apply adds the part to the selector being built.
func (p *Part) apply(s *css.SimpleSelector) error {
	set := 0
	var add func() error

	if p.Element != nil {
		set, add = set+1, func() error { return s.SetElement(*p.Element) }
	}
	if p.ID != nil {
		set, add = set+1, func() error { return s.SetID(*p.ID) }
	}
	if p.Class != nil {
		set, add = set+1, func() error { return s.AddClass(*p.Class) }
	}
	if p.Attribute != nil {
		set, add = set+1, func() error { return s.AddAttribute(*p.Attribute) }
	}
	if p.PseudoClass != nil {
		set, add = set+1, func() error { return s.AddPseudoClass(*p.PseudoClass) }
	}
	if p.PseudoElement != nil {
		set, add = set+1, func() error { return s.SetPseudoElement(*p.PseudoElement) }
	}

	if set != 1 {
		return fmt.Errorf("a part must have exactly one of element, id, class, attribute, pseudo_class, pseudo_element (got %d)", set)
	}
	return add()
}

// ParseSheet decodes a selector sheet, rejecting unknown fields the same
// way the program configuration does.
func ParseSheet(data []byte) (*Sheet, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var sheet Sheet
	if err := dec.Decode(&sheet); err != nil {
		return nil, fmt.Errorf("failed to decode selector sheet: %w", err)
	}
	if sheet.Version != 1 {
		return nil, fmt.Errorf("unsupported selector sheet version %d", sheet.Version)
	}
	if len(sheet.Selectors) == 0 {
		return nil, errors.New("selector sheet defines no selectors")
	}
	return &sheet, nil
}
