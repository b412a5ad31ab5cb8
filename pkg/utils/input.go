// Package utils provides small shared helpers for geometry, easing and text.
package utils

// PointInRect reports whether the point (px, py) lies inside the rectangle
// defined by its top-left corner (x, y) and size (width, height).
// Bounds are inclusive.
func PointInRect(px, py, x, y, width, height float64) bool {
	return px >= x && px <= x+width && py >= y && py <= y+height
}
