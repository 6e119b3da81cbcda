package jsonutil_test

import (
	"testing"

	"csb/jsonutil"
	"csb/shape"
)

func TestMarshalUnmarshal_RoundTrip(t *testing.T) {
	text, err := jsonutil.Marshal(map[string]any{"name": "box", "size": 3})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	v, err := jsonutil.Unmarshal(text)
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	m, ok := v.(map[string]any)
	if !ok {
		t.Fatalf("Unmarshal() returned %T, want map[string]any", v)
	}
	if m["name"] != "box" {
		t.Errorf("name = %v, want box", m["name"])
	}
	// JSON numbers decode as float64
	if m["size"] != float64(3) {
		t.Errorf("size = %v, want 3", m["size"])
	}
}

func TestUnmarshal_Invalid(t *testing.T) {
	if _, err := jsonutil.Unmarshal("{not json"); err == nil {
		t.Error("expected error for malformed text")
	}
}

func TestRebind_Rect(t *testing.T) {
	// a rectangle decoded as a plain structure has no behavior
	v, err := jsonutil.Unmarshal(`{"width": 10, "height": 20}`)
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	// rebinding to the concrete type restores it
	r, err := jsonutil.Rebind[shape.Rect](v)
	if err != nil {
		t.Fatalf("Rebind() error = %v", err)
	}
	if got := r.Area(); got != 200 {
		t.Errorf("Area() = %v, want 200", got)
	}
}

func TestRebind_ExtraFieldsIgnored(t *testing.T) {
	v, err := jsonutil.Unmarshal(`{"width": 2, "height": 3, "color": "red"}`)
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	r, err := jsonutil.Rebind[shape.Rect](v)
	if err != nil {
		t.Fatalf("Rebind() error = %v", err)
	}
	if got := r.Area(); got != 6 {
		t.Errorf("Area() = %v, want 6", got)
	}
}
