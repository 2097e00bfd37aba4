package sketch

// CanvasOption configures a Canvas during creation.
//
// Example:
//
//	// Default: black brush of width 3, freehand, every input device
//	c := sketch.NewCanvas(800, 600)
//
//	// Pencil-only input with a host listener
//	c := sketch.NewCanvas(800, 600,
//	    sketch.WithAllowedDevices(sketch.Devices(sketch.DevicePencil)),
//	    sketch.WithListener(sketch.ListenerFunc(onEvent)),
//	)
type CanvasOption func(*canvasOptions)

// BeginFilter is consulted before a stroke begins; returning false vetoes it.
type BeginFilter func(p Pointer) bool

// canvasOptions holds optional configuration for Canvas creation.
type canvasOptions struct {
	brush        Brush
	drawMode     DrawMode
	fill         bool
	devices      DeviceSet
	tap          TapAction
	listener     Listener
	rasterizer   RasterizerMode
	beginFilter  BeginFilter
	historyLimit int
}

// defaultOptions returns the default canvas options.
func defaultOptions() canvasOptions {
	return canvasOptions{
		brush:    DefaultBrush(),
		drawMode: DrawFreehand,
		devices:  AllDevices,
		tap:      TapSwitchEraser,
	}
}

// WithBrush sets the initial brush. An invalid brush is ignored and the
// default brush is kept.
func WithBrush(b Brush) CanvasOption {
	return func(o *canvasOptions) {
		if b.Validate() == nil {
			o.brush = b
		}
	}
}

// WithDrawMode sets the initial draw mode.
func WithDrawMode(m DrawMode) CanvasOption {
	return func(o *canvasOptions) {
		o.drawMode = m
	}
}

// WithFillMode makes ellipse and rectangle strokes filled instead of outlined.
func WithFillMode(fill bool) CanvasOption {
	return func(o *canvasOptions) {
		o.fill = fill
	}
}

// WithAllowedDevices restricts which input devices may start strokes.
func WithAllowedDevices(s DeviceSet) CanvasOption {
	return func(o *canvasOptions) {
		o.devices = s
	}
}

// WithTapAction sets what Canvas.DoubleTap does.
func WithTapAction(a TapAction) CanvasOption {
	return func(o *canvasOptions) {
		o.tap = a
	}
}

// WithListener registers the receiver of canvas notifications.
func WithListener(l Listener) CanvasOption {
	return func(o *canvasOptions) {
		o.listener = l
	}
}

// WithRasterizer selects the coverage rasterizer.
func WithRasterizer(m RasterizerMode) CanvasOption {
	return func(o *canvasOptions) {
		o.rasterizer = m
	}
}

// WithBeginFilter installs a veto consulted before each stroke begins.
func WithBeginFilter(f BeginFilter) CanvasOption {
	return func(o *canvasOptions) {
		o.beginFilter = f
	}
}

// WithHistoryLimit caps the number of undo entries kept. Zero or a negative
// value means unlimited.
func WithHistoryLimit(n int) CanvasOption {
	return func(o *canvasOptions) {
		if n < 0 {
			n = 0
		}
		o.historyLimit = n
	}
}
