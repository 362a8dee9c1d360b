package geom

// RemoveDuplicatesAndCollinear repeatedly scans a vertex loop for one
// removable point — a duplicate of its neighbor, or a point collinear
// with both neighbors within epsilon radians — and removes it, stopping
// when the loop is down to a triangle or no removable point remains.
//
// InitCCW rejects a degenerate loop outright rather than cleaning it up,
// so callers building a polygon from external, possibly noisy data
// (digitized coordinates, a WKT export, a generator) should run it
// through this first.
func RemoveDuplicatesAndCollinear(pts []XY, epsilon float32) []XY {
	pts = append([]XY(nil), pts...)

	for len(pts) > 3 {
		n := len(pts)
		removeAt := -1
		for i := 0; i < n; i++ {
			prev := pts[(i-1+n)%n]
			cur := pts[i]
			next := pts[(i+1)%n]

			if cur == prev || cur == next {
				removeAt = i
				break
			}

			toPrev := prev.Sub(cur)
			toNext := next.Sub(cur)
			if toPrev.Len() == 0 || toNext.Len() == 0 {
				removeAt = i
				break
			}
			angle := OrientedAngle(toPrev, toNext)
			if angle < 0 {
				angle = -angle
			}
			// A straight pass-through has toPrev and toNext anti-parallel,
			// i.e. an oriented angle of magnitude pi.
			if pi32-angle < epsilon {
				removeAt = i
				break
			}
		}
		if removeAt < 0 {
			break
		}
		pts = append(pts[:removeAt], pts[removeAt+1:]...)
	}

	return pts
}

const pi32 = 3.14159265358979323846
