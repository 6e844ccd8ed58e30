package warpfield

// trailPoint is one remembered screen position with the color it was drawn
// in, so the fade gradient survives until the point is erased.
type trailPoint struct {
	x, y  int
	color Color
}

// trail is a fixed-capacity record of recently drawn positions, newest
// first. It backs both the accretion-particle fade trail and the
// falling-star trail/stretch-sample list. The backing slice is allocated
// once at construction and never grows.
type trail struct {
	pts []trailPoint
	n   int
}

// newTrail creates a trail that holds at most capacity points.
func newTrail(capacity int) trail {
	return trail{pts: make([]trailPoint, capacity)}
}

// len returns the number of live points.
func (t *trail) len() int { return t.n }

// cap returns the fixed capacity.
func (t *trail) cap() int { return len(t.pts) }

// at returns the i-th live point, newest first. i must be in [0, len).
func (t *trail) at(i int) trailPoint { return t.pts[i] }

// pushFront inserts p as the newest point, shifting the rest back and
// dropping the oldest when full.
func (t *trail) pushFront(p trailPoint) {
	hi := t.n
	if hi >= len(t.pts) {
		hi = len(t.pts) - 1
	}
	for i := hi; i > 0; i-- {
		t.pts[i] = t.pts[i-1]
	}
	t.pts[0] = p
	if t.n < len(t.pts) {
		t.n++
	}
}

// pushBack appends p as the oldest point if there is room; a full trail
// drops it. Used for the synthetic points a draw pass adds after the fact.
func (t *trail) pushBack(p trailPoint) bool {
	if t.n >= len(t.pts) {
		return false
	}
	t.pts[t.n] = p
	t.n++
	return true
}

// setColor recolors the i-th live point.
func (t *trail) setColor(i int, c Color) { t.pts[i].color = c }

// clear drops all points. The backing array is retained.
func (t *trail) clear() { t.n = 0 }
