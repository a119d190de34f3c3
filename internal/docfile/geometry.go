package docfile

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/grindlemire/boxflow"
)

// Rect is an encoded rectangle.
type Rect struct {
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

func rectOf(r boxflow.Rect) Rect {
	return Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// Box is the computed geometry of one item. Bounds are relative to the
// parent's bounds; Content is relative to the item's own bounds.
type Box struct {
	ID       string `json:"id" yaml:"id"`
	Kind     string `json:"kind" yaml:"kind"`
	Display  string `json:"display" yaml:"display"`
	Bounds   Rect   `json:"bounds" yaml:"bounds"`
	Content  Rect   `json:"content" yaml:"content"`
	Children []*Box `json:"children,omitempty" yaml:"children,omitempty"`
}

// Snapshot captures the geometry of the item and its subtree.
func Snapshot(it *boxflow.Item) *Box {
	b := &Box{
		ID:      it.ID(),
		Kind:    it.Kind(),
		Display: it.Display().String(),
		Bounds:  rectOf(it.Bounds()),
		Content: rectOf(it.ContentBounds()),
	}
	for _, c := range it.Children() {
		b.Children = append(b.Children, Snapshot(c))
	}
	return b
}

// Walk visits b and its descendants, parents first, passing the absolute
// position of each box's origin.
func (b *Box) Walk(fn func(b *Box, x, y float64)) {
	b.walk(0, 0, fn)
}

func (b *Box) walk(px, py float64, fn func(*Box, float64, float64)) {
	x, y := px+b.Bounds.X, py+b.Bounds.Y
	fn(b, x, y)
	for _, c := range b.Children {
		c.walk(x, y, fn)
	}
}

// Encode writes the boxes to w in the given output format, "json" or "yaml".
func Encode(w io.Writer, format string, boxes ...*Box) error {
	var v any = boxes
	if len(boxes) == 1 {
		v = boxes[0]
	}

	switch Format(format) {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
