package sketch

import (
	"errors"
	"fmt"
)

// Sentinel errors for sketch. Returned errors wrap them with context;
// compare with errors.Is.
var (
	// ErrInvalidIndex is returned when a layer index is outside [0, count).
	ErrInvalidIndex = errors.New("sketch: layer index out of range")

	// ErrLastLayer is returned when deleting the only remaining layer.
	ErrLastLayer = errors.New("sketch: cannot delete the last layer")

	// ErrEmptyDocument is returned when restoring a document without layers.
	ErrEmptyDocument = errors.New("sketch: document has no layers")

	// ErrMalformedLayer is returned when a document layer record cannot be
	// decoded: missing or undecodable image, or a corrupt frame.
	ErrMalformedLayer = errors.New("sketch: malformed layer record")

	// ErrInvalidBrush is returned for a brush with a non-positive width, an
	// opacity outside [0, 1] or an unknown blend mode.
	ErrInvalidBrush = errors.New("sketch: invalid brush")
)

// indexError wraps ErrInvalidIndex with the operation and the offending index.
func indexError(op string, index, count int) error {
	return fmt.Errorf("sketch: %s: index %d of %d layers: %w", op, index, count, ErrInvalidIndex)
}
