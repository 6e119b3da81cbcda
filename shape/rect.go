// Package shape holds simple geometric value types.
package shape

// Rect is an axis-aligned rectangle. Fields are JSON-tagged so a rectangle
// decoded from a generic document can be rebound to this type.
type Rect struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewRect creates a rectangle with the given dimensions.
func NewRect(width, height float64) *Rect {
	return &Rect{Width: width, Height: height}
}

// Area returns width times height.
func (r *Rect) Area() float64 {
	return r.Width * r.Height
}
