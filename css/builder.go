package css

// Entry points for starting a selector chain. Each constructor creates an
// empty SimpleSelector and applies one part; the first part of an empty
// selector can never violate ordering, so these do not return an error.
// Further parts are added through the Set*/Add* methods, which do.

// Element starts a selector with an element name.
func Element(value string) *SimpleSelector {
	s := &SimpleSelector{}
	s.SetElement(value) //nolint:errcheck
	return s
}

// ID starts a selector with an id part.
func ID(value string) *SimpleSelector {
	s := &SimpleSelector{}
	s.SetID(value) //nolint:errcheck
	return s
}

// Class starts a selector with a class.
func Class(value string) *SimpleSelector {
	s := &SimpleSelector{}
	s.AddClass(value) //nolint:errcheck
	return s
}

// Attr starts a selector with an attribute expression.
func Attr(value string) *SimpleSelector {
	s := &SimpleSelector{}
	s.AddAttribute(value) //nolint:errcheck
	return s
}

// PseudoClass starts a selector with a pseudo-class.
func PseudoClass(value string) *SimpleSelector {
	s := &SimpleSelector{}
	s.AddPseudoClass(value) //nolint:errcheck
	return s
}

// PseudoElement starts a selector with a pseudo-element. Nothing else can
// be added to such a selector afterwards.
func PseudoElement(value string) *SimpleSelector {
	s := &SimpleSelector{}
	s.SetPseudoElement(value) //nolint:errcheck
	return s
}
