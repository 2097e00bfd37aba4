package sketch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

// LayerRecord is the persisted form of one layer.
type LayerRecord struct {
	UUID      string  `json:"uuid"`
	Image     []byte  `json:"image"` // PNG
	Frame     string  `json:"frame"` // "{{x, y}, {w, h}}"
	IsVisible bool    `json:"isVisible"`
	Opacity   float32 `json:"opacity"`
}

// Document is a persisted snapshot of the layer stack, bottom first.
type Document struct {
	Layers []LayerRecord `json:"layers"`
}

// Document captures the current layers. A stroke in progress is not
// included.
func (c *Canvas) Document() (*Document, error) {
	c.abortSession()
	doc := &Document{Layers: make([]LayerRecord, 0, c.stack.len())}
	for _, l := range c.stack.layers {
		var buf bytes.Buffer
		if err := l.pixels.EncodePNG(&buf); err != nil {
			return nil, fmt.Errorf("sketch: encode layer %s: %w", l.id, err)
		}
		doc.Layers = append(doc.Layers, LayerRecord{
			UUID:      string(l.id),
			Image:     buf.Bytes(),
			Frame:     FormatFrame(l.frame),
			IsVisible: l.visible,
			Opacity:   float32(l.opacity),
		})
	}
	return doc, nil
}

// Encode writes the document as JSON.
func (d *Document) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("sketch: encode document: %w", err)
	}
	return nil
}

// DecodeDocument reads a JSON document. Layer records are validated by
// Restore, not here.
func DecodeDocument(r io.Reader) (*Document, error) {
	var d Document
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("sketch: decode document: %w", err)
	}
	return &d, nil
}

// Restore replaces every layer with the layers of d and makes the last one
// active. History is reset.
//
// An empty document returns ErrEmptyDocument. A record with a missing or
// undecodable image, a corrupt frame, or an invalid or duplicate uuid
// returns ErrMalformedLayer. In both cases the canvas is left unchanged.
func (c *Canvas) Restore(d *Document) error {
	if d == nil || len(d.Layers) == 0 {
		Logger().Warn("sketch: restore rejected", "err", ErrEmptyDocument)
		return ErrEmptyDocument
	}

	layers := make([]*layer, 0, len(d.Layers))
	seen := make(map[LayerID]bool, len(d.Layers))
	for i, rec := range d.Layers {
		l, err := c.decodeLayer(rec)
		if err != nil {
			err = fmt.Errorf("sketch: layer %d: %w", i, err)
			Logger().Warn("sketch: restore rejected", "err", err)
			return err
		}
		if seen[l.id] {
			err = fmt.Errorf("sketch: layer %d: %w: duplicate uuid %s", i, ErrMalformedLayer, l.id)
			Logger().Warn("sketch: restore rejected", "err", err)
			return err
		}
		seen[l.id] = true
		layers = append(layers, l)
	}

	c.abortSession()
	c.stack.reset(layers, layers[len(layers)-1].id)
	c.hist.reset()
	Logger().Info("sketch: document restored", "layers", len(layers))
	c.notify(Notification{Kind: NotifyHistory, Layer: c.stack.active, Dirty: c.Bounds()})
	return nil
}

// decodeLayer builds a layer from rec. Images of another size are resampled
// to the canvas size.
func (c *Canvas) decodeLayer(rec LayerRecord) (*layer, error) {
	id, err := uuid.Parse(rec.UUID)
	if err != nil {
		return nil, fmt.Errorf("%w: uuid: %w", ErrMalformedLayer, err)
	}
	if len(rec.Image) == 0 {
		return nil, fmt.Errorf("%w: missing image", ErrMalformedLayer)
	}
	pm, err := DecodePNG(bytes.NewReader(rec.Image))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedLayer, err)
	}
	frame, err := ParseFrame(rec.Frame)
	if err != nil {
		return nil, err
	}

	if pm.Width() != c.width || pm.Height() != c.height {
		scaled := NewPixmap(c.width, c.height)
		draw.CatmullRom.Scale(scaled.rgba(), scaled.Bounds(), pm.rgba(), pm.Bounds(), draw.Src, nil)
		pm = scaled
	}

	return &layer{
		id:      LayerID(id.String()),
		pixels:  pm,
		frame:   Rect{Min: frame.Min, Max: frame.Min.Add(Pt(float64(c.width), float64(c.height)))},
		visible: rec.IsVisible,
		opacity: clamp01(float64(rec.Opacity)),
	}, nil
}

// FormatFrame formats r as "{{x, y}, {w, h}}".
func FormatFrame(r Rect) string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	return "{{" + f(r.Min.X) + ", " + f(r.Min.Y) + "}, {" + f(r.Width()) + ", " + f(r.Height()) + "}}"
}

// ParseFrame parses a frame written by FormatFrame. Whitespace around the
// numbers is optional. Negative sizes and non-finite values are rejected.
func ParseFrame(s string) (Rect, error) {
	fail := func(reason string) (Rect, error) {
		return Rect{}, fmt.Errorf("%w: frame %q: %s", ErrMalformedLayer, s, reason)
	}

	t := strings.TrimSpace(s)
	if !strings.HasPrefix(t, "{") || !strings.HasSuffix(t, "}") {
		return fail("missing braces")
	}
	t = t[1 : len(t)-1]

	open := strings.Index(t, "{")
	mid := strings.Index(t, "}")
	if open < 0 || mid < open {
		return fail("missing origin")
	}
	origin := t[open+1 : mid]
	rest := strings.TrimSpace(t[mid+1:])
	if !strings.HasPrefix(rest, ",") {
		return fail("missing separator")
	}
	rest = strings.TrimSpace(rest[1:])
	if !strings.HasPrefix(rest, "{") || !strings.HasSuffix(rest, "}") {
		return fail("missing size")
	}
	size := rest[1 : len(rest)-1]

	if strings.Count(origin, ",") != 1 || strings.Count(size, ",") != 1 {
		return fail("expected two values per pair")
	}

	var v [4]float64
	for i, part := range append(strings.Split(origin, ","), strings.Split(size, ",")...) {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return fail("bad number")
		}
		v[i] = f
	}
	if v[2] < 0 || v[3] < 0 {
		return fail("negative size")
	}
	return Rect{Min: Pt(v[0], v[1]), Max: Pt(v[0]+v[2], v[1]+v[3])}, nil
}
