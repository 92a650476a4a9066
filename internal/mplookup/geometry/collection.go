package geometry

import (
	"fmt"
	"sort"

	"github.com/dhconnelly/rtreego"
)

// bboxPad keeps degenerate bounding boxes (single-point or axis-aligned
// slivers) valid for the R-tree, which requires positive side lengths.
const bboxPad = 1e-9

// Collection holds every district boundary plus an R-tree over their
// bounding boxes so a lookup only ray-casts the handful of districts whose
// box contains the point, instead of all 300+.
type Collection struct {
	districts []*District
	tree      *rtreego.Rtree
}

type districtEntry struct {
	rect rtreego.Rect
	idx  int
}

func (e *districtEntry) Bounds() rtreego.Rect { return e.rect }

func newCollection(districts []*District) (*Collection, error) {
	tree := rtreego.NewTree(2, 25, 50)
	for i, d := range districts {
		rect, err := rtreego.NewRectFromPoints(
			rtreego.Point{d.bbox[0] - bboxPad, d.bbox[1] - bboxPad},
			rtreego.Point{d.bbox[2] + bboxPad, d.bbox[3] + bboxPad},
		)
		if err != nil {
			return nil, fmt.Errorf("district %q bounding box: %w", d.Name, err)
		}
		tree.Insert(&districtEntry{rect: rect, idx: i})
	}
	return &Collection{districts: districts, tree: tree}, nil
}

// Len reports how many districts the collection holds.
func (c *Collection) Len() int { return len(c.districts) }

// Names returns the district names in dataset order. Districts whose name
// property was not recognized appear as empty strings.
func (c *Collection) Names() []string {
	names := make([]string, len(c.districts))
	for i, d := range c.districts {
		names[i] = d.Name
	}
	return names
}

// Locate returns the first district, in dataset order, whose boundary
// contains the point. Candidates come from the R-tree unordered, so they
// are re-sorted into dataset order before the exact test: when boundaries
// overlap (a dataset defect), the same district wins on every run.
func (c *Collection) Locate(p Point) (*District, bool) {
	hits := c.tree.SearchIntersect(rtreego.Point{p.Lng, p.Lat}.ToRect(bboxPad))

	idxs := make([]int, 0, len(hits))
	for _, h := range hits {
		idxs = append(idxs, h.(*districtEntry).idx)
	}
	sort.Ints(idxs)

	for _, i := range idxs {
		if c.districts[i].Contains(p) {
			return c.districts[i], true
		}
	}
	return nil, false
}
