package css_test

import (
	"testing"

	"csb/css"
)

func TestBuilder_EntryPoints(t *testing.T) {
	tests := []struct {
		name string
		sel  css.Selector
		want string
	}{
		{"element", css.Element("div"), "div"},
		{"id", css.ID("main"), "#main"},
		{"class", css.Class("container"), ".container"},
		{"attr", css.Attr(`data-kind="x"`), `[data-kind="x"]`},
		{"pseudo-class", css.PseudoClass("hover"), ":hover"},
		{"pseudo-element", css.PseudoElement("before"), "::before"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sel.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuilder_EachCallStartsFreshSelector(t *testing.T) {
	a := css.Element("div")
	b := css.Element("span")

	if err := a.SetID("x"); err != nil {
		t.Fatalf("SetID() error = %v", err)
	}
	if got, want := b.String(), "span"; got != want {
		t.Errorf("second selector = %q, want %q (must not share state)", got, want)
	}
}
