package compile_test

import (
	"strings"
	"testing"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"csb/compile"
)

func mustParse(t *testing.T, doc string) *compile.Sheet {
	t.Helper()
	sheet, err := compile.ParseSheet([]byte(doc))
	if err != nil {
		t.Fatalf("ParseSheet() error = %v", err)
	}
	return sheet
}

func compiledText(res *compile.Result, slug string) (string, bool) {
	for _, c := range res.Selectors {
		if c.Slug == slug {
			return c.Text, true
		}
	}
	return "", false
}

func TestCompile_SimpleSelectors(t *testing.T) {
	sheet := mustParse(t, `
version: 1
selectors:
  - name: Focused PNG links
    parts:
      - element: a
      - attribute: href$=".png"
      - pseudo_class: focus
  - name: main editable
    parts:
      - id: main
      - class: container
      - class: editable
`)

	res, err := compile.NewCompiler(zap.NewNop()).Compile(sheet)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	if len(res.Selectors) != 2 {
		t.Fatalf("Compile() produced %d selectors, want 2", len(res.Selectors))
	}

	if got, ok := compiledText(res, "focused-png-links"); !ok || got != `a[href$=".png"]:focus` {
		t.Errorf("focused-png-links = %q (found %v)", got, ok)
	}
	if got, ok := compiledText(res, "main-editable"); !ok || got != "#main.container.editable" {
		t.Errorf("main-editable = %q (found %v)", got, ok)
	}
}

func TestCompile_Combined(t *testing.T) {
	sheet := mustParse(t, `
version: 1
selectors:
  - name: list items
    combine:
      left:
        combine:
          left: { parts: [{element: ul}] }
          combinator: ">"
          right: { parts: [{element: li}] }
      combinator: "+"
      right: { parts: [{class: active}] }
`)

	res, err := compile.NewCompiler(nil).Compile(sheet)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	if got, ok := compiledText(res, "list-items"); !ok || got != "ul > li + .active" {
		t.Errorf("list-items = %q (found %v)", got, ok)
	}
}

func TestCompile_BadSelectorDoesNotStopSheet(t *testing.T) {
	sheet := mustParse(t, `
version: 1
selectors:
  - name: broken
    parts:
      - class: x
      - id: late
  - name: fine
    parts:
      - element: p
`)

	res, err := compile.NewCompiler(zap.NewNop()).Compile(sheet)
	if err == nil {
		t.Fatal("expected error for out-of-order parts")
	}
	if n := len(multierr.Errors(err)); n != 1 {
		t.Errorf("accumulated %d errors, want 1", n)
	}
	if !strings.Contains(err.Error(), `"broken"`) {
		t.Errorf("error %q should name the failing selector", err)
	}

	// the good selector still compiled
	if got, ok := compiledText(res, "fine"); !ok || got != "p" {
		t.Errorf("fine = %q (found %v)", got, ok)
	}
}

func TestCompile_PartWithSeveralKeys(t *testing.T) {
	sheet := mustParse(t, `
version: 1
selectors:
  - name: bad part
    parts:
      - element: a
        id: b
`)

	_, err := compile.NewCompiler(zap.NewNop()).Compile(sheet)
	if err == nil {
		t.Fatal("expected error for part with two keys")
	}
	if !strings.Contains(err.Error(), "exactly one") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCompile_NodeNeedsPartsOrCombine(t *testing.T) {
	sheet := mustParse(t, `
version: 1
selectors:
  - name: empty
`)

	_, err := compile.NewCompiler(zap.NewNop()).Compile(sheet)
	if err == nil {
		t.Fatal("expected error for node without parts or combine")
	}
}

func TestParseSheet_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"bad version", "version: 2\nselectors: [{name: x, parts: [{element: a}]}]"},
		{"no selectors", "version: 1\nselectors: []"},
		{"unknown field", "version: 1\nrules: []"},
		{"malformed yaml", "version: [1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := compile.ParseSheet([]byte(tt.doc)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestResult_Encode_PreservesOrder(t *testing.T) {
	sheet := mustParse(t, `
version: 1
selectors:
  - name: zeta
    parts: [{element: b}]
  - name: alpha
    parts: [{element: a}]
`)

	res, err := compile.NewCompiler(zap.NewNop()).Compile(sheet)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	out, err := res.Encode()
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	text := string(out)
	if strings.Index(text, "zeta:") > strings.Index(text, "alpha:") {
		t.Errorf("output should keep sheet order:\n%s", text)
	}
}

func TestCompile_DuplicateNamesLaterWins(t *testing.T) {
	sheet := mustParse(t, `
version: 1
selectors:
  - name: Link
    parts: [{element: a}]
  - name: link
    parts: [{element: b}]
`)

	res, err := compile.NewCompiler(zap.NewNop()).Compile(sheet)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	if len(res.Selectors) != 1 {
		t.Fatalf("Compile() produced %d selectors, want 1", len(res.Selectors))
	}
	if got, _ := compiledText(res, "link"); got != "b" {
		t.Errorf("link = %q, want %q", got, "b")
	}
}
