package testing

import (
	"fmt"
	"image"
	"math"
	"sort"
	"strings"

	"github.com/go-drift/freecorner/pkg/graphics"
)

// DisplayOp represents a serialized canvas drawing operation.
type DisplayOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

// String formats the op as name(key=value, ...) with keys sorted.
func (o DisplayOp) String() string {
	if len(o.Params) == 0 {
		return o.Op
	}
	var sb strings.Builder
	sb.WriteString(o.Op)
	sb.WriteByte('(')
	for i, k := range sortedKeys(o.Params) {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s=%v", k, o.Params[k])
	}
	sb.WriteByte(')')
	return sb.String()
}

// Recorder implements graphics.Canvas and records every call as a
// DisplayOp. Paths are reduced to their bounds and command count.
type Recorder struct {
	ops  []DisplayOp
	size graphics.Size
}

// NewRecorder returns an empty recorder reporting size as its canvas size.
func NewRecorder(size graphics.Size) *Recorder {
	return &Recorder{size: size}
}

// Ops returns the recorded operations in call order.
func (c *Recorder) Ops() []DisplayOp {
	return c.ops
}

// OpNames returns just the operation names in call order.
func (c *Recorder) OpNames() []string {
	names := make([]string, len(c.ops))
	for i, op := range c.ops {
		names[i] = op.Op
	}
	return names
}

// Find returns the recorded operations named op.
func (c *Recorder) Find(op string) []DisplayOp {
	var out []DisplayOp
	for _, o := range c.ops {
		if o.Op == op {
			out = append(out, o)
		}
	}
	return out
}

// Reset discards all recorded operations.
func (c *Recorder) Reset() {
	c.ops = nil
}

func (c *Recorder) Save() {
	c.ops = append(c.ops, DisplayOp{Op: "save"})
}

func (c *Recorder) Restore() {
	c.ops = append(c.ops, DisplayOp{Op: "restore"})
}

func (c *Recorder) Translate(dx, dy float64) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "translate",
		Params: sortedMap("dx", round2(dx), "dy", round2(dy)),
	})
}

func (c *Recorder) ClipRect(rect graphics.Rect) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "clipRect",
		Params: sortedMap("rect", serializeRect(rect)),
	})
}

func (c *Recorder) ClipPath(path *graphics.Path, op graphics.ClipOp, antialias bool) {
	c.ops = append(c.ops, DisplayOp{
		Op: "clipPath",
		Params: sortedMap(
			"bounds", serializeRect(path.Bounds()),
			"commands", float64(len(path.Commands)),
			"op", op.String(),
			"antialias", antialias,
		),
	})
}

func (c *Recorder) Clear(color graphics.Color) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "clear",
		Params: sortedMap("color", serializeColor(color)),
	})
}

func (c *Recorder) DrawRect(rect graphics.Rect, paint graphics.Paint) {
	params := serializePaint(paint)
	params["rect"] = serializeRect(rect)
	c.ops = append(c.ops, DisplayOp{Op: "drawRect", Params: params})
}

func (c *Recorder) DrawPath(path *graphics.Path, paint graphics.Paint) {
	params := serializePaint(paint)
	params["bounds"] = serializeRect(path.Bounds())
	c.ops = append(c.ops, DisplayOp{Op: "drawPath", Params: params})
}

func (c *Recorder) DrawImageRect(_ image.Image, srcRect, dstRect graphics.Rect, quality graphics.FilterQuality) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawImageRect",
		Params: sortedMap(
			"src", serializeRect(srcRect),
			"dst", serializeRect(dstRect),
			"quality", float64(quality),
		),
	})
}

func (c *Recorder) Size() graphics.Size {
	return c.size
}

// SerializeDisplayList replays a DisplayList through a Recorder.
func SerializeDisplayList(dl *graphics.DisplayList) []DisplayOp {
	canvas := NewRecorder(dl.Size())
	dl.Paint(canvas)
	return canvas.ops
}

// --- Serialization helpers ---

func serializePaint(p graphics.Paint) map[string]any {
	m := sortedMap("color", serializeColor(p.Color), "style", p.Style.String())
	if p.Style != graphics.PaintStyleFill {
		m["strokeWidth"] = round2(p.StrokeWidth)
	}
	return m
}

func serializeRect(r graphics.Rect) map[string]any {
	return sortedMap(
		"left", round2(r.Left),
		"top", round2(r.Top),
		"right", round2(r.Right),
		"bottom", round2(r.Bottom),
	)
}

func serializeColor(c graphics.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// round2 rounds a float64 to 2 decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// sortedMap creates a map from alternating key-value pairs.
// Keys are sorted alphabetically when the map is marshaled.
func sortedMap(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		m[kvs[i].(string)] = kvs[i+1]
	}
	return m
}

// sortedKeys returns the keys of a map in sorted order.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
