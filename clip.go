package waveguide

// Box sides, in clockwise order.
const (
	sideLeft = iota
	sideTop
	sideRight
	sideBottom
	sideNone = -1
)

// Clip clips p to the axis-aligned rectangle spanned by xb and yb. Bounds may
// be infinite, and each pair may be given in either order.
//
// If p and the rectangle do not overlap, the result is empty. If p lies
// entirely within the rectangle, p is returned unchanged. Otherwise the
// boundary of p is walked edge by edge, keeping the parts inside the
// rectangle. Where the boundary leaves the rectangle through one side and
// comes back through another, the rectangle corners in between that lie
// inside p are inserted.
//
// The result is a valid simple polygon for convex inputs.
func (p Polygon) Clip(xb, yb [2]float64) Polygon {
	box := NewBounds(xb, yb)
	if p.IsEmpty() {
		return nil
	}
	bbox := p.BoundingBox()
	if !bbox.Overlaps(box) {
		return nil
	}
	if box.ContainsBounds(bbox) {
		return p.Clone()
	}

	// Walk in the same rotational sense as p so that the corners we insert
	// keep the orientation of the result consistent.
	step := 1
	if p.SignedArea() > 0 {
		step = 3
	}
	addCorners := func(out Polygon, from, to int) Polygon {
		for s := from; s != to; s = (s + step) % 4 {
			next := (s + step) % 4
			c := box.corner(s, next)
			if p.Contains(c) {
				out = append(out, c)
			}
		}
		return out
	}

	var out Polygon
	exitSide := sideNone
	firstEntry := sideNone
	visible := false
	prev := p[len(p)-1]
	for _, cur := range p {
		t0, t1, in, exit, ok := clipSegment(prev, cur, box)
		prev0 := prev
		prev = cur
		if !ok {
			continue
		}
		visible = true
		d := cur.Sub(prev0)
		if in != sideNone {
			if exitSide == sideNone {
				if firstEntry == sideNone {
					firstEntry = in
				}
			} else if exitSide != in {
				out = addCorners(out, exitSide, in)
			}
			out = append(out, prev0.Translate(d.Mul(t0)))
		}
		if exit != sideNone {
			out = append(out, prev0.Translate(d.Mul(t1)))
			exitSide = exit
		} else {
			out = append(out, cur)
		}
	}

	if !visible {
		// No edge reaches into the box, so the box is either entirely
		// inside p or entirely outside it.
		if box.IsInf() || !p.Contains(box.Center()) {
			return nil
		}
		corners := Polygon{
			{box.X0, box.Y0},
			{box.X0, box.Y1},
			{box.X1, box.Y1},
			{box.X1, box.Y0},
		}
		if step != 1 {
			corners = corners.Reverse()
		}
		return corners
	}
	if exitSide != sideNone && firstEntry != sideNone && exitSide != firstEntry {
		out = addCorners(out, exitSide, firstEntry)
	}

	out = out.Compress(false)
	if out.IsEmpty() {
		return nil
	}
	return out
}

// clipSegment clips the segment a→b to box using the Liang–Barsky
// algorithm. It returns the parameter range [t0, t1] of the visible part,
// the side through which the segment enters the box (if t0 > 0) and the
// side through which it leaves (if t1 < 1).
func clipSegment(a, b Point, box Bounds) (t0, t1 float64, in, out int, ok bool) {
	d := b.Sub(a)
	t0, t1 = 0, 1
	in, out = sideNone, sideNone
	checks := [4]struct {
		p, q float64
		side int
	}{
		{-d.X, a.X - box.X0, sideLeft},
		{d.X, box.X1 - a.X, sideRight},
		{-d.Y, a.Y - box.Y0, sideBottom},
		{d.Y, box.Y1 - a.Y, sideTop},
	}
	for _, c := range checks {
		if c.p == 0 {
			if c.q < 0 {
				return 0, 0, sideNone, sideNone, false
			}
			continue
		}
		r := c.q / c.p
		if c.p < 0 {
			if r > t0 {
				t0 = r
				in = c.side
			}
		} else if r < t1 {
			t1 = r
			out = c.side
		}
	}
	if t0 > t1 {
		return 0, 0, sideNone, sideNone, false
	}
	return t0, t1, in, out, true
}
