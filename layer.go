package sketch

import (
	"image"
	"math"

	"github.com/google/uuid"
)

// LayerID identifies a layer for its whole lifetime. It never changes when
// the layer is moved, hidden or restored by undo.
type LayerID string

// newLayerID returns a random identifier in canonical UUID form.
func newLayerID() LayerID {
	return LayerID(uuid.NewString())
}

// layer is one raster surface of the stack. The layer owns its pixels; there
// is no separate render list.
type layer struct {
	id      LayerID
	pixels  *Pixmap
	frame   Rect // placement on the canvas; size equals the pixmap size
	visible bool
	opacity float64
}

// newLayer creates a visible, fully opaque, transparent layer of the given
// size placed at the canvas origin.
func newLayer(width, height int) *layer {
	return &layer{
		id:      newLayerID(),
		pixels:  NewPixmap(width, height),
		frame:   R(0, 0, float64(width), float64(height)),
		visible: true,
		opacity: 1,
	}
}

// offset returns the top-left corner of the layer on the canvas.
func (l *layer) offset() Point {
	return l.frame.Min
}

// pixelOffset returns the whole-pixel placement of l on the canvas.
func (l *layer) pixelOffset() image.Point {
	o := l.offset()
	return image.Pt(int(math.Round(o.X)), int(math.Round(o.Y)))
}

// canvasRect returns the canvas region covered by l.
func (l *layer) canvasRect() image.Rectangle {
	return l.pixels.Bounds().Add(l.pixelOffset())
}

// LayerInfo is a read-only description of a layer.
type LayerInfo struct {
	ID      LayerID
	Index   int
	Active  bool
	Visible bool
	Opacity float64
	Frame   Rect
}
