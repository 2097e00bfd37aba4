package sketch

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// Canvas is a multi-layer drawing surface with undo and redo.
//
// Every mutating call records exactly one history entry, except calls that
// change nothing, cancelled strokes and queries.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	width  int
	height int

	stack layerStack
	hist  history
	comp  *compositor
	sess  session

	brushes     BrushSettings
	drawMode    DrawMode
	fill        bool
	enabled     bool
	moving      bool
	devices     DeviceSet
	tap         TapAction
	listener    Listener
	beginFilter BeginFilter
}

// NewCanvas creates a canvas of the given size holding one transparent
// layer, which is active.
func NewCanvas(width, height int, opts ...CanvasOption) *Canvas {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	c := &Canvas{
		width:       width,
		height:      height,
		hist:        history{limit: o.historyLimit},
		comp:        newCompositor(o.rasterizer.backend()),
		brushes:     NewBrushSettings(o.brush),
		drawMode:    o.drawMode,
		fill:        o.fill,
		enabled:     true,
		devices:     o.devices,
		tap:         o.tap,
		listener:    o.listener,
		beginFilter: o.beginFilter,
	}
	l := newLayer(width, height)
	c.stack.reset([]*layer{l}, l.id)
	return c
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// Bounds returns the canvas pixel rectangle.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// LayerCount returns the number of layers.
func (c *Canvas) LayerCount() int {
	return c.stack.len()
}

// ActiveLayer returns the index of the active layer.
func (c *Canvas) ActiveLayer() int {
	return c.stack.activeIndex()
}

// ActiveLayerID returns the identity of the active layer.
func (c *Canvas) ActiveLayerID() LayerID {
	return c.stack.active
}

// Layers describes every layer, bottom first.
func (c *Canvas) Layers() []LayerInfo {
	infos := make([]LayerInfo, c.stack.len())
	for i, l := range c.stack.layers {
		infos[i] = LayerInfo{
			ID:      l.id,
			Index:   i,
			Active:  l.id == c.stack.active,
			Visible: l.visible,
			Opacity: l.opacity,
			Frame:   l.frame,
		}
	}
	return infos
}

// LayerImage returns a copy of the pixels of the layer at index.
func (c *Canvas) LayerImage(index int) (*Pixmap, error) {
	if err := c.stack.checkIndex("layer image", index); err != nil {
		return nil, err
	}
	return c.stack.at(index).pixels.Clone(), nil
}

// AddLayer inserts a transparent layer directly above the active layer and
// makes it active.
func (c *Canvas) AddLayer() LayerID {
	return c.addLayer(newLayer(c.width, c.height), "Add Layer")
}

// AddLayerImage inserts a layer showing img, scaled to the canvas size,
// directly above the active layer and makes it active.
func (c *Canvas) AddLayerImage(img image.Image) LayerID {
	l := newLayer(c.width, c.height)
	if img != nil && !img.Bounds().Empty() {
		draw.CatmullRom.Scale(l.pixels.rgba(), l.pixels.Bounds(), img, img.Bounds(), draw.Src, nil)
	}
	return c.addLayer(l, "Add Image")
}

func (c *Canvas) addLayer(l *layer, label string) LayerID {
	c.abortSession()
	at := c.stack.activeIndex() + 1
	c.record(label, c.doInsert(at, l, l.id))
	Logger().Debug("sketch: layer added", "id", l.id, "index", at)
	return l.id
}

// DeleteLayer removes the layer at index. The last remaining layer cannot
// be deleted: ErrLastLayer is returned and a toast is sent. When the active
// layer is deleted, the layer below it becomes active, or the new bottom
// layer when it was the bottom one.
func (c *Canvas) DeleteLayer(index int) error {
	if err := c.checkIndex("delete layer", index); err != nil {
		return err
	}
	if c.stack.len() == 1 {
		Logger().Warn("sketch: delete layer rejected", "reason", "last layer")
		c.notify(Notification{Kind: NotifyToast, Layer: c.stack.active, Message: msgLastLayer})
		return ErrLastLayer
	}
	c.abortSession()

	active := c.stack.active
	if c.stack.at(index).id == active {
		fallback := index - 1
		if fallback < 0 {
			fallback = 1
		}
		active = c.stack.at(fallback).id
	}
	c.record("Delete Layer", c.doRemove(index, active))
	return nil
}

// MoveLayer moves the layer at from so that it ends up at index to.
// Moving a layer onto itself is a no-op.
func (c *Canvas) MoveLayer(from, to int) error {
	if err := c.checkIndex("move layer", from); err != nil {
		return err
	}
	if err := c.checkIndex("move layer", to); err != nil {
		return err
	}
	if from == to {
		return nil
	}
	c.abortSession()
	c.record("Move Layer", c.doMove(from, to))
	return nil
}

// HideLayer hides the layer at index.
func (c *Canvas) HideLayer(index int) error {
	return c.setVisible("hide layer", "Hide Layer", index, false)
}

// ShowLayer shows the layer at index.
func (c *Canvas) ShowLayer(index int) error {
	return c.setVisible("show layer", "Show Layer", index, true)
}

func (c *Canvas) setVisible(op, label string, index int, visible bool) error {
	if err := c.checkIndex(op, index); err != nil {
		return err
	}
	l := c.stack.at(index)
	if l.visible == visible {
		return nil
	}
	c.abortSession()
	c.record(label, c.doVisible(l.id, visible))
	return nil
}

// SetActiveLayer makes the layer at index receive new strokes.
func (c *Canvas) SetActiveLayer(index int) error {
	if err := c.checkIndex("set active layer", index); err != nil {
		return err
	}
	id := c.stack.at(index).id
	if id == c.stack.active {
		return nil
	}
	c.abortSession()
	c.record("Select Layer", c.doActive(id))
	return nil
}

// SetLayerOpacity sets the opacity used when the layer at index is
// composited. The value is clamped to [0, 1].
func (c *Canvas) SetLayerOpacity(index int, opacity float64) error {
	if err := c.checkIndex("set layer opacity", index); err != nil {
		return err
	}
	opacity = clamp01(opacity)
	l := c.stack.at(index)
	if l.opacity == opacity {
		return nil
	}
	c.abortSession()
	c.record("Layer Opacity", c.doOpacity(l.id, opacity))
	return nil
}

// Undo reverts the newest recorded change. It reports false when there is
// nothing to undo.
func (c *Canvas) Undo() bool {
	c.abortSession()
	label, ok := c.hist.stepBack()
	if ok {
		Logger().Debug("sketch: undo", "action", label)
		c.notify(Notification{Kind: NotifyHistory, Dirty: c.Bounds()})
	}
	return ok
}

// Redo re-applies the newest undone change. It reports false when there is
// nothing to redo.
func (c *Canvas) Redo() bool {
	c.abortSession()
	label, ok := c.hist.stepForward()
	if ok {
		Logger().Debug("sketch: redo", "action", label)
		c.notify(Notification{Kind: NotifyHistory, Dirty: c.Bounds()})
	}
	return ok
}

// CanUndo reports whether Undo would change anything.
func (c *Canvas) CanUndo() bool { return c.hist.canUndo() }

// CanRedo reports whether Redo would change anything.
func (c *Canvas) CanRedo() bool { return c.hist.canRedo() }

// UndoName returns the label of the change Undo would revert, or "".
func (c *Canvas) UndoName() string { return c.hist.undoLabel() }

// RedoName returns the label of the change Redo would re-apply, or "".
func (c *Canvas) RedoName() string { return c.hist.redoLabel() }

// Clear drops every layer and the whole history, leaving one transparent
// active layer.
func (c *Canvas) Clear() {
	c.abortSession()
	l := newLayer(c.width, c.height)
	c.stack.reset([]*layer{l}, l.id)
	c.hist.reset()
	Logger().Info("sketch: canvas cleared")
	c.notify(Notification{Kind: NotifyHistory, Layer: l.id, Dirty: c.Bounds()})
}

// SetBrush replaces the live brush. The stroke in progress, if any, keeps
// the brush it started with.
func (c *Canvas) SetBrush(b Brush) error {
	if err := b.Validate(); err != nil {
		return err
	}
	c.brushes.Set(b)
	return nil
}

// Brush returns the live brush.
func (c *Canvas) Brush() Brush {
	return c.brushes.Current()
}

// DoubleTap performs the configured stylus double-tap action and reports
// whether the live brush changed.
func (c *Canvas) DoubleTap() bool {
	return c.brushes.DoubleTap(c.tap)
}

// SetTapAction changes what DoubleTap does.
func (c *Canvas) SetTapAction(a TapAction) { c.tap = a }

// SetDrawMode selects the geometry of strokes started afterwards.
func (c *Canvas) SetDrawMode(m DrawMode) { c.drawMode = m }

// DrawMode returns the current draw mode.
func (c *Canvas) DrawMode() DrawMode { return c.drawMode }

// SetFillMode selects filled or outlined ellipses and rectangles.
func (c *Canvas) SetFillMode(fill bool) { c.fill = fill }

// FillMode reports whether shapes are filled.
func (c *Canvas) FillMode() bool { return c.fill }

// SetAllowedDevices restricts which input devices may start strokes.
func (c *Canvas) SetAllowedDevices(s DeviceSet) { c.devices = s }

// SetEnabled gates all pointer input. Disabling cancels an interaction in
// progress.
func (c *Canvas) SetEnabled(enabled bool) {
	if !enabled {
		c.abortSession()
	}
	c.enabled = enabled
}

// Enabled reports whether pointer input is accepted.
func (c *Canvas) Enabled() bool { return c.enabled }

// SetMovingMode diverts pointer input from drawing to dragging the active
// layer. Switching cancels an interaction in progress.
func (c *Canvas) SetMovingMode(moving bool) {
	if moving != c.moving {
		c.abortSession()
	}
	c.moving = moving
}

// MovingMode reports whether pointer input drags the active layer.
func (c *Canvas) MovingMode() bool { return c.moving }

// checkIndex validates index for a layer edit and logs the rejection.
func (c *Canvas) checkIndex(op string, index int) error {
	err := c.stack.checkIndex(op, index)
	if err != nil {
		Logger().Warn("sketch: "+op+" rejected", "err", err)
	}
	return err
}

// record pushes an inverse entry and tells the listener.
func (c *Canvas) record(label string, inverse entry) {
	inverse.label = label
	c.hist.record(inverse)
	Logger().Debug("sketch: history push", "action", label, "depth", len(c.hist.undo))
	c.notify(Notification{Kind: NotifyHistory, Layer: c.stack.active, Dirty: c.Bounds()})
}

func (c *Canvas) notify(n Notification) {
	if c.listener != nil {
		c.listener.Notify(n)
	}
}

// The do* primitives perform one mutation without recording it and return
// the entry that reverses it. History entries are built only from them.

func (c *Canvas) doInsert(index int, l *layer, active LayerID) entry {
	prev := c.stack.active
	c.stack.insert(index, l)
	c.stack.active = active
	c.stack.mustIndex(active)
	return entry{apply: func() entry { return c.doRemove(index, prev) }}
}

func (c *Canvas) doRemove(index int, active LayerID) entry {
	prev := c.stack.active
	l := c.stack.remove(index)
	c.stack.active = active
	c.stack.mustIndex(active)
	return entry{apply: func() entry { return c.doInsert(index, l, prev) }}
}

func (c *Canvas) doMove(from, to int) entry {
	c.stack.move(from, to)
	return entry{apply: func() entry { return c.doMove(to, from) }}
}

func (c *Canvas) doVisible(id LayerID, visible bool) entry {
	l := c.stack.byID(id)
	old := l.visible
	l.visible = visible
	return entry{apply: func() entry { return c.doVisible(id, old) }}
}

func (c *Canvas) doActive(id LayerID) entry {
	c.stack.mustIndex(id)
	prev := c.stack.active
	c.stack.active = id
	return entry{apply: func() entry { return c.doActive(prev) }}
}

func (c *Canvas) doOpacity(id LayerID, opacity float64) entry {
	l := c.stack.byID(id)
	old := l.opacity
	l.opacity = opacity
	return entry{apply: func() entry { return c.doOpacity(id, old) }}
}

func (c *Canvas) doFrame(id LayerID, frame Rect) entry {
	l := c.stack.byID(id)
	old := l.frame
	l.frame = frame
	return entry{apply: func() entry { return c.doFrame(id, old) }}
}

// doPixels swaps in pm as the layer pixels. The pixmap is owned by the layer
// afterwards; the replaced one moves into the returned entry.
func (c *Canvas) doPixels(id LayerID, pm *Pixmap) entry {
	l := c.stack.byID(id)
	old := l.pixels
	l.pixels = pm
	return entry{apply: func() entry { return c.doPixels(id, old) }}
}

// String describes the canvas for debugging.
func (c *Canvas) String() string {
	return fmt.Sprintf("Canvas(%dx%d, %d layers, active %d)", c.width, c.height, c.stack.len(), c.stack.activeIndex())
}
