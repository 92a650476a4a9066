package geometry

// Contains reports whether the point lies inside the polygon, holes
// excluded, using even-odd ray casting. The edge rule is half-open: each
// segment counts its crossing over the vertex interval [a.Lat, b.Lat), so
// a point exactly on a border shared by two districts is assigned to
// exactly one of them, and the assignment is stable for a given dataset.
func (pg Polygon) Contains(p Point) bool {
	inside := false
	for _, ring := range pg {
		if ring.crossings(p)%2 == 1 {
			inside = !inside
		}
	}
	return inside
}

// Contains reports whether any of the district's polygons contain the point.
func (d *District) Contains(p Point) bool {
	for _, pg := range d.Polygons {
		if pg.Contains(p) {
			return true
		}
	}
	return false
}

func (r Ring) crossings(p Point) int {
	n := 0
	j := len(r) - 1
	for i := range r {
		a, b := r[j], r[i]
		if (a.Lat > p.Lat) != (b.Lat > p.Lat) {
			x := (b.Lng-a.Lng)*(p.Lat-a.Lat)/(b.Lat-a.Lat) + a.Lng
			if p.Lng < x {
				n++
			}
		}
		j = i
	}
	return n
}
