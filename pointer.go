package hero

// NormalizePointer converts absolute viewport coordinates into a PointerVector:
// the offset from the viewport center divided by the viewport size on each
// axis, roughly in [-0.5, 0.5]. A zero-sized axis yields 0 on that axis.
func NormalizePointer(x, y, width, height float64) Vec2 {
	var v Vec2
	if width > 0 {
		v.X = finite((x-width/2)/width, 0)
	}
	if height > 0 {
		v.Y = finite((y-height/2)/height, 0)
	}
	return v
}
