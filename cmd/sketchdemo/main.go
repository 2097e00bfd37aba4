// Command sketchdemo demonstrates the sketch drawing engine.
//
// It replays a scripted drawing session, then writes the flattened result
// as PNG, optionally as PDF, and saves the layer document as JSON. A saved
// document can be loaded back with -load to continue from it.
package main

import (
	"flag"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/export"
)

func main() {
	var (
		width   = flag.Int("width", 800, "canvas width")
		height  = flag.Int("height", 600, "canvas height")
		output  = flag.String("output", "sketch.png", "PNG output file")
		pdf     = flag.String("pdf", "", "optional PDF output file")
		doc     = flag.String("doc", "sketch.json", "document output file")
		load    = flag.String("load", "", "document to restore before drawing")
		raster  = flag.String("raster", "native", "rasterizer: native or gg")
		verbose = flag.Bool("v", false, "log canvas activity")
	)
	flag.Parse()

	if *verbose {
		sketch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	mode := sketch.RasterizerNative
	if *raster == "gg" {
		mode = sketch.RasterizerGG
	}

	strokes := 0
	c := sketch.NewCanvas(*width, *height,
		sketch.WithRasterizer(mode),
		sketch.WithListener(sketch.ListenerFunc(func(n sketch.Notification) {
			switch n.Kind {
			case sketch.NotifyFinish:
				strokes++
			case sketch.NotifyToast:
				log.Printf("toast: %s", n.Message)
			}
		})),
	)

	if *load != "" {
		if err := restore(c, *load); err != nil {
			log.Fatalf("Failed to load %s: %v", *load, err)
		}
	}

	drawWave(c, *width, *height)
	drawShapes(c)
	eraseStripe(c, *width, *height)
	c.Undo()
	c.Redo()

	if err := export.SavePNG(*output, c); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	if *pdf != "" {
		if err := export.SavePDF(*pdf, c, export.PDFOptions{Title: "sketchdemo", Layers: true}); err != nil {
			log.Fatalf("Failed to save PDF: %v", err)
		}
	}
	if *doc != "" {
		if err := save(c, *doc); err != nil {
			log.Fatalf("Failed to save document: %v", err)
		}
	}

	log.Printf("Sketch saved to %s (%dx%d, %d layers, %d strokes)\n",
		*output, c.Width(), c.Height(), c.LayerCount(), strokes)
}

// drag replays one pointer interaction through the canvas.
func drag(c *sketch.Canvas, pts ...sketch.Point) {
	if len(pts) == 0 {
		return
	}
	ev := func(ph sketch.Phase, p sketch.Point) sketch.PointerEvent {
		return sketch.PointerEvent{Phase: ph, Pointers: []sketch.Pointer{{Pos: p, Device: sketch.DevicePencil}}}
	}
	c.HandlePointer(ev(sketch.PhaseBegin, pts[0]))
	for _, p := range pts[1:] {
		c.HandlePointer(ev(sketch.PhaseMove, p))
	}
	c.HandlePointer(ev(sketch.PhaseEnd, pts[len(pts)-1]))
}

func drawWave(c *sketch.Canvas, w, h int) {
	_ = c.SetBrush(sketch.Brush{Color: sketch.Hex("#3498db"), Width: 6, Opacity: 1})

	var pts []sketch.Point
	for x := 20.0; x < float64(w)-20; x += 8 {
		y := float64(h)/2 + math.Sin(x/40)*float64(h)/6
		pts = append(pts, sketch.Pt(x, y))
	}
	drag(c, pts...)
}

func drawShapes(c *sketch.Canvas) {
	c.AddLayer()
	_ = c.SetBrush(sketch.Brush{Color: sketch.RGB(1, 0.5, 0), Width: 4, Opacity: 0.8})

	c.SetDrawMode(sketch.DrawRect)
	c.SetFillMode(true)
	drag(c, sketch.Pt(60, 60), sketch.Pt(140, 120), sketch.Pt(200, 160))

	c.SetDrawMode(sketch.DrawEllipse)
	c.SetFillMode(false)
	drag(c, sketch.Pt(260, 60), sketch.Pt(400, 180))

	c.SetDrawMode(sketch.DrawLine)
	drag(c, sketch.Pt(60, 220), sketch.Pt(400, 240))

	c.SetDrawMode(sketch.DrawFreehand)
	_ = c.SetLayerOpacity(c.ActiveLayer(), 0.75)

	c.SetMovingMode(true)
	drag(c, sketch.Pt(0, 0), sketch.Pt(20, 10))
	c.SetMovingMode(false)
}

func eraseStripe(c *sketch.Canvas, w, h int) {
	if err := c.SetActiveLayer(0); err != nil {
		return
	}
	c.DoubleTap() // switch to the eraser
	drag(c, sketch.Pt(float64(w)/2, 0), sketch.Pt(float64(w)/2, float64(h)/2), sketch.Pt(float64(w)/2, float64(h)))
	c.DoubleTap()
}

func save(c *sketch.Canvas, path string) error {
	d, err := c.Document()
	if err != nil {
		return err
	}
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := d.Encode(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func restore(c *sketch.Canvas, path string) error {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer f.Close()

	d, err := sketch.DecodeDocument(f)
	if err != nil {
		return err
	}
	return c.Restore(d)
}
