package sketch

import (
	"image"

	"github.com/gogpu/sketch/internal/blend"
	"github.com/gogpu/sketch/internal/raster"
)

// compositor paints the segments of one stroke onto a layer.
//
// The target pixmap doubles as the live preview. ref is a copy of the target
// taken when the stroke began and mask is the coverage accumulated so far;
// every repaint rebuilds a region of the target from ref and mask, so no
// pixel is ever blended twice by the same stroke.
type compositor struct {
	backend raster.Backend

	target *Pixmap
	ref    *Pixmap
	mask   *image.Alpha
	brush  Brush

	shape image.Rectangle // coverage region of the current shape
	dirty image.Rectangle // union of every repainted region
}

func newCompositor(backend raster.Backend) *compositor {
	return &compositor{backend: backend}
}

// active reports whether a stroke is in progress.
func (c *compositor) active() bool {
	return c.target != nil
}

// begin starts a stroke on target with brush.
func (c *compositor) begin(target *Pixmap, brush Brush) {
	c.target = target
	c.ref = target.Clone()
	c.mask = image.NewAlpha(target.Bounds())
	c.brush = brush
	c.shape = image.Rectangle{}
	c.dirty = image.Rectangle{}
}

// add merges the coverage of seg into the stroke and repaints its dirty
// region. It returns the repainted region.
func (c *compositor) add(seg Segment) image.Rectangle {
	r := c.coverage(seg)
	c.repaint(r)
	return r
}

// replace swaps the coverage of the previous shape for that of seg and
// repaints both regions. A missing segment only removes the previous shape.
func (c *compositor) replace(seg Segment, ok bool) image.Rectangle {
	old := c.shape
	raster.ClearRect(c.mask, old)

	var r image.Rectangle
	if ok {
		r = c.coverage(seg)
	}
	c.shape = r

	region := old.Union(r)
	c.repaint(region)
	return region
}

// coverage renders seg into the accumulated mask and returns the region it
// may have touched, clipped to the layer.
func (c *compositor) coverage(seg Segment) image.Rectangle {
	r := seg.Dirty.Pixels().Intersect(c.mask.Rect)
	if r.Empty() {
		return image.Rectangle{}
	}
	style := raster.Style{Width: seg.Brush.Width, Fill: seg.Fill}
	raster.Merge(c.mask, c.backend.Render(seg.Path.rasterElements(), style, r))
	return r
}

func (c *compositor) repaint(r image.Rectangle) {
	if r.Empty() {
		return
	}
	blend.Paint(c.target.rgba(), c.ref.rgba(), c.mask, r, c.brush.source(), c.brush.mode())
	c.dirty = c.dirty.Union(r)
	Logger().Debug("sketch: repaint", "rect", r)
}

// commit ends the stroke. The target keeps the painted pixels; the returned
// pixmap holds the pixels from before the stroke and belongs to the caller.
func (c *compositor) commit() (before *Pixmap, dirty image.Rectangle) {
	before, dirty = c.ref, c.dirty
	c.reset()
	return before, dirty
}

// cancel ends the stroke and restores the target verbatim.
func (c *compositor) cancel() {
	if c.active() {
		blend.Copy(c.target.rgba(), c.ref.rgba(), c.dirty)
	}
	c.reset()
}

func (c *compositor) reset() {
	c.target = nil
	c.ref = nil
	c.mask = nil
	c.shape = image.Rectangle{}
	c.dirty = image.Rectangle{}
}
