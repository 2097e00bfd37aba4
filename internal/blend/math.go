// Package blend composites coverage masks onto premultiplied RGBA pixels.
//
// All arithmetic works on premultiplied 8-bit values. A paint operation
// always reads from a reference image and writes to a destination image, so
// repainting a region with a grown mask never compounds earlier coverage.
package blend

// mulDiv255 multiplies two byte values and divides by 255 with proper rounding.
// Formula: (a * b + 127) / 255
func mulDiv255(a, b byte) byte {
	return byte((uint16(a)*uint16(b) + 127) / 255)
}

// addDiv255 adds two byte values with clamping to 255.
func addDiv255(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}
