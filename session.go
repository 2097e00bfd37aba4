package sketch

import "image"

// Phase is the lifecycle stage of a pointer event.
type Phase int

const (
	PhaseBegin Phase = iota
	PhaseMove
	PhaseEnd
	PhaseCancel
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseBegin:
		return "Begin"
	case PhaseMove:
		return "Move"
	case PhaseEnd:
		return "End"
	case PhaseCancel:
		return "Cancel"
	default:
		return "Unknown"
	}
}

// DeviceType is the kind of input device behind a pointer.
type DeviceType int

const (
	DeviceFinger DeviceType = iota
	DevicePencil
	DeviceMouse
)

// String returns the device type name.
func (d DeviceType) String() string {
	switch d {
	case DeviceFinger:
		return "Finger"
	case DevicePencil:
		return "Pencil"
	case DeviceMouse:
		return "Mouse"
	default:
		return "Unknown"
	}
}

// DeviceSet is a set of device types.
type DeviceSet uint8

// AllDevices accepts every device type.
const AllDevices = DeviceSet(1<<DeviceFinger | 1<<DevicePencil | 1<<DeviceMouse)

// Devices returns the set holding the given device types.
func Devices(types ...DeviceType) DeviceSet {
	var s DeviceSet
	for _, t := range types {
		if t >= 0 && t < 8 {
			s |= 1 << t
		}
	}
	return s
}

// Has reports whether t is in the set.
func (s DeviceSet) Has(t DeviceType) bool {
	return t >= 0 && t < 8 && s&(1<<t) != 0
}

// Pointer is one contact point of a pointer event, in canvas coordinates.
type Pointer struct {
	Pos    Point
	Device DeviceType
}

// PointerEvent is one input event delivered by the host.
type PointerEvent struct {
	Phase    Phase
	Pointers []Pointer
}

type sessionState int

const (
	stateIdle sessionState = iota
	stateDrawing
	stateMoving
)

// session is the state of the single interaction in progress.
type session struct {
	state sessionState
	layer LayerID

	// drawing
	builder    strokeBuilder
	origin     image.Point // layer placement when the stroke began
	pendingTap bool        // no move has arrived since begin

	// moving
	grab  Point // pointer position when the drag began
	frame Rect  // layer frame when the drag began
}

// HandlePointer feeds one input event into the canvas. It reports whether
// the event was consumed.
//
// Begin and move events carrying a non-finite position are rejected. An end
// event with a non-finite position ends the interaction without a final
// sample.
func (c *Canvas) HandlePointer(ev PointerEvent) bool {
	switch ev.Phase {
	case PhaseBegin:
		if !allFinite(ev.Pointers) {
			return false
		}
		return c.beginSession(ev.Pointers)
	case PhaseMove:
		if !allFinite(ev.Pointers) {
			return false
		}
		return c.moveSession(ev.Pointers)
	case PhaseEnd:
		ptrs := ev.Pointers
		if !allFinite(ptrs) {
			ptrs = nil
		}
		return c.endSession(ptrs)
	case PhaseCancel:
		return c.cancelSession()
	}
	return false
}

func (c *Canvas) beginSession(ptrs []Pointer) bool {
	if !c.enabled || len(ptrs) == 0 || c.sess.state != stateIdle {
		return false
	}
	p := ptrs[0]
	if !c.devices.Has(p.Device) {
		return false
	}
	l := c.stack.activeLayer()
	if !l.visible {
		c.notify(Notification{Kind: NotifyToast, Layer: l.id, Message: msgLayerHidden})
		return false
	}

	if c.moving {
		c.sess = session{state: stateMoving, layer: l.id, grab: p.Pos, frame: l.frame}
		c.notify(Notification{Kind: NotifyBegin, Layer: l.id})
		return true
	}

	if c.beginFilter != nil && !c.beginFilter(p) {
		return false
	}
	c.sess = session{
		state:      stateDrawing,
		layer:      l.id,
		origin:     l.pixelOffset(),
		pendingTap: true,
	}
	c.sess.builder.begin(c.sess.local(p.Pos), c.drawMode, c.fill, c.brushes.Current())
	c.comp.begin(l.pixels, c.sess.builder.brush)
	c.notify(Notification{Kind: NotifyBegin, Layer: l.id})
	return true
}

func (c *Canvas) moveSession(ptrs []Pointer) bool {
	if !c.enabled || len(ptrs) != 1 {
		return false
	}
	p := ptrs[0]

	switch c.sess.state {
	case stateDrawing:
		c.sess.pendingTap = false
		seg, ok := c.sess.builder.move(c.sess.local(p.Pos))
		var dirty image.Rectangle
		switch {
		case c.sess.builder.mode.shape():
			dirty = c.comp.replace(seg, ok)
		case ok:
			dirty = c.comp.add(seg)
		}
		c.notify(Notification{Kind: NotifyProgress, Layer: c.sess.layer, Dirty: c.toCanvas(dirty, c.sess.origin)})
		return true

	case stateMoving:
		l := c.stack.byID(c.sess.layer)
		before := l.canvasRect()
		l.frame = c.sess.frame.Translate(p.Pos.Sub(c.sess.grab))
		c.notify(Notification{Kind: NotifyProgress, Layer: l.id, Dirty: before.Union(l.canvasRect())})
		return true
	}
	return false
}

func (c *Canvas) endSession(ptrs []Pointer) bool {
	switch c.sess.state {
	case stateDrawing:
		if c.sess.pendingTap {
			if seg, ok := c.sess.builder.dot(); ok {
				c.comp.add(seg)
			}
		}
		id, origin := c.sess.layer, c.sess.origin
		label := "Stroke"
		if c.sess.builder.brush.Blend == BlendClear {
			label = "Erase"
		}
		before, dirty := c.comp.commit()
		c.sess = session{}
		if !dirty.Empty() {
			c.record(label, entry{apply: func() entry { return c.doPixels(id, before) }})
			Logger().Debug("sketch: stroke committed", "layer", id, "dirty", dirty)
		}
		c.notify(Notification{Kind: NotifyFinish, Layer: id, Dirty: c.toCanvas(dirty, origin)})
		return true

	case stateMoving:
		if len(ptrs) > 0 {
			c.moveSession(ptrs[:1])
		}
		l := c.stack.byID(c.sess.layer)
		start := c.sess.frame
		c.sess = session{}
		if l.frame != start {
			moved := l.frame
			l.frame = start
			c.record("Reposition Layer", c.doFrame(l.id, moved))
		}
		c.notify(Notification{Kind: NotifyFinish, Layer: l.id, Dirty: c.Bounds()})
		return true
	}
	return false
}

func (c *Canvas) cancelSession() bool {
	if c.sess.state == stateIdle {
		return false
	}
	id := c.sess.layer
	c.abortSession()
	c.notify(Notification{Kind: NotifyCancel, Layer: id, Dirty: c.Bounds()})
	return true
}

// abortSession drops the interaction in progress, restoring the layer it
// touched. It records nothing.
func (c *Canvas) abortSession() {
	switch c.sess.state {
	case stateDrawing:
		c.comp.cancel()
	case stateMoving:
		if i := c.stack.indexOf(c.sess.layer); i >= 0 {
			c.stack.at(i).frame = c.sess.frame
		}
	}
	c.sess = session{}
}

func allFinite(ptrs []Pointer) bool {
	for _, p := range ptrs {
		if !p.Pos.finite() {
			return false
		}
	}
	return true
}

// local converts a canvas position to the pixel space of the stroke layer.
func (s *session) local(p Point) Point {
	return p.Sub(Pt(float64(s.origin.X), float64(s.origin.Y)))
}

// toCanvas converts a region in layer pixel space to canvas space.
func (c *Canvas) toCanvas(r image.Rectangle, origin image.Point) image.Rectangle {
	return r.Add(origin).Intersect(c.Bounds())
}
