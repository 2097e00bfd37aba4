package blend

// Mode is a Porter-Duff compositing operator used when painting a mask.
type Mode uint8

const (
	// ModeSourceOver paints the source color over the destination.
	ModeSourceOver Mode = iota

	// ModeDestinationOut removes destination coverage where the source is
	// opaque. The source color is ignored; only its alpha matters.
	ModeDestinationOut
)

// String returns the operator name.
func (m Mode) String() string {
	switch m {
	case ModeSourceOver:
		return "SourceOver"
	case ModeDestinationOut:
		return "DestinationOut"
	default:
		return "Unknown"
	}
}

// Func is the signature for blend operations.
// All values are premultiplied alpha, 0-255.
type Func func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

// FuncFor returns the blend function for the given mode.
// Returns source-over for unknown modes.
func FuncFor(m Mode) Func {
	if m == ModeDestinationOut {
		return destinationOut
	}
	return sourceOver
}

// sourceOver composites source over destination.
// Formula: S + D * (1 - Sa)
func sourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return addDiv255(sr, mulDiv255(dr, invSa)),
		addDiv255(sg, mulDiv255(dg, invSa)),
		addDiv255(sb, mulDiv255(db, invSa)),
		addDiv255(sa, mulDiv255(da, invSa))
}

// destinationOut shows destination where source is transparent.
// Formula: D * (1 - Sa)
func destinationOut(_, _, _, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return mulDiv255(dr, invSa), mulDiv255(dg, invSa), mulDiv255(db, invSa), mulDiv255(da, invSa)
}
