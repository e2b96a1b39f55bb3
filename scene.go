package threed

import (
	"fmt"
	"math"
	"sort"
)

// RenderMode selects how the draw order is resolved.
type RenderMode int

const (
	// RenderPainters resolves the draw order by depth sorting with iterative 3D and 2D splitting.
	RenderPainters RenderMode = iota
	// RenderBSP resolves the draw order with a binary space partitioning tree.
	RenderBSP
)

// Default tolerances and limits for new scenes. PlaneEps is the camera-space distance below which a point counts as lying on a plane, DepthEps the depth difference below which two fragments count as equally deep, and MaxSplitDepth the number of split generations allowed per original fragment before depth comparison is forced.
var (
	PlaneEps      = 1e-9
	DepthEps      = 1e-9
	MaxSplitDepth = 16
)

// Scene renders a tree of 3D objects as an ordered sequence of 2D vector paths with hidden surfaces removed. A Scene must not be shared between concurrent renders; use one Scene per viewport.
type Scene struct {
	Mode RenderMode

	// Tolerances, initialized from the package defaults and adjustable per scene.
	PlaneEps      float64
	DepthEps      float64
	MaxSplitDepth int

	fragments  FragmentVector
	draworder  []int
	cam        *Camera
	screenM    Matrix
	invScreenM Matrix
}

// NewScene returns a scene using the given render mode.
func NewScene(mode RenderMode) *Scene {
	return &Scene{
		Mode:          mode,
		PlaneEps:      PlaneEps,
		DepthEps:      DepthEps,
		MaxSplitDepth: MaxSplitDepth,
	}
}

// Render flattens the object tree into fragments, resolves a back-to-front draw order and issues the fragments as vector paths to the canvas, mapped onto the viewport rectangle (x1,y1)-(x2,y2). It returns only after all drawing calls have been issued.
func (s *Scene) Render(root Object, canvas Canvas, cam *Camera, x1, y1, x2, y2 float64) error {
	if err := cam.check(); err != nil {
		return err
	} else if x2 <= x1 || y2 <= y1 {
		return fmt.Errorf("viewport rectangle (%g,%g)-(%g,%g) is empty", x1, y1, x2, y2)
	}

	s.fragments = FragmentVector{}
	s.draworder = s.draworder[:0]
	s.cam = cam
	// map normalized device coordinates in [-1,1] onto the viewport, flipping y so +y is up
	s.screenM = Identity.Translate((x1+x2)/2.0, (y1+y2)/2.0).Scale((x2-x1)/2.0, -(y2-y1)/2.0)
	s.invScreenM = s.screenM.Inv()

	root.AddFragments(cam.ViewM, &s.fragments)

	if s.Mode == RenderBSP {
		s.renderBSP()
	} else {
		s.renderPainters()
	}

	linescale := math.Min(x2-x1, y2-y1) / 1000.0
	s.doDrawing(canvas, linescale)
	return nil
}

// DrawOrder returns the positions of the live fragments in the order they were drawn by the last render.
func (s *Scene) DrawOrder() []int {
	return s.draworder
}

// Fragments returns the fragment store of the last render.
func (s *Scene) Fragments() *FragmentVector {
	return &s.fragments
}

// projectFragments clips all live fragments against the near plane and computes their screen coordinates. Fragments entirely before the near plane are clipped away; fragments straddling it are cut and only the piece in front survives.
func (s *Scene) projectFragments() {
	near := s.cam.near
	for i := 0; i < s.fragments.Len(); i++ {
		f := s.fragments.At(i)
		if !f.live() {
			continue
		}

		var front, back []Vec3
		if f.Kind == FragmentPolygon {
			if len(f.Points) < 3 || polygonArea3(f.Points) < s.PlaneEps {
				f.clipped = true
				continue
			}
			front, back = splitPolygonByPlane(f.Points, Vec3{0.0, 0.0, 1.0}, near, s.PlaneEps)
		} else {
			if f.Points[1].Sub(f.Points[0]).Length() < s.PlaneEps {
				f.clipped = true
				continue
			}
			front, back = splitSegmentByPlane(f.Points[0], f.Points[1], Vec3{0.0, 0.0, 1.0}, near, s.PlaneEps)
		}
		if front == nil {
			f.clipped = true
			continue
		} else if back != nil {
			// the front piece is appended and projected later in this loop
			s.fragments.supersede(i, [][]Vec3{front})
			continue
		}
		s.project(f)
	}
}

// project fills in the screen coordinates and depth extent of a fragment whose points all lie before the near plane.
func (s *Scene) project(f *Fragment) {
	f.Screen = make([]Point, len(f.Points))
	for i, p := range f.Points {
		f.Screen[i] = s.screenM.Dot(s.cam.projectPoint(p))
	}
	f.updateDepth()
}

// coarseLess orders fragment positions back to front by maximum depth, breaking ties by creation order.
func (s *Scene) coarseLess(i, j int) bool {
	fi, fj := s.fragments.At(i), s.fragments.At(j)
	if fi.maxDepth != fj.maxDepth {
		return fj.maxDepth < fi.maxDepth
	}
	return fi.index < fj.index
}

// renderPainters resolves the draw order with the painter's algorithm: a coarse depth sort followed by pairwise resolution, cutting fragments in 3D where they intersect and along screen silhouettes where their projections overlap ambiguously, until every pair orders unambiguously.
func (s *Scene) renderPainters() {
	s.projectFragments()

	s.draworder = s.draworder[:0]
	for i := 0; i < s.fragments.Len(); i++ {
		if s.fragments.At(i).live() {
			s.draworder = append(s.draworder, i)
		}
	}
	sort.Slice(s.draworder, func(a, b int) bool {
		return s.coarseLess(s.draworder[a], s.draworder[b])
	})

	// Each pass scans pairs with overlapping depth ranges. Splits strictly shrink fragments and are bounded per fragment, and reorderings are bounded per pass, so the loop terminates; the pass limit forces depth-comparison fallback for anything left.
	maxPasses := 2*len(s.draworder) + 8
	for pass := 0; pass < maxPasses; pass++ {
		if !s.resolvePass() {
			break
		}
	}
}

// resolvePass performs one scan over the draw order, resolving ambiguous pairs. It reports whether anything changed.
func (s *Scene) resolvePass() bool {
	changed := false
	for i1 := 0; i1 < len(s.draworder); i1++ {
		f1 := s.fragments.At(s.draworder[i1])
		for i2 := i1 + 1; i2 < len(s.draworder); i2++ {
			f2 := s.fragments.At(s.draworder[i2])
			if f2.maxDepth <= f1.minDepth+s.DepthEps {
				// f2 is wholly nearer and drawn later, unambiguous
				continue
			}
			if !screenOverlap(f1, f2) {
				continue
			}

			if f1.gen < s.MaxSplitDepth && f2.gen < s.MaxSplitDepth {
				if n1, n2 := splitIntersectIn3D(&s.fragments, s.draworder[i1], s.draworder[i2], s.PlaneEps); 0 < n1 || 0 < n2 {
					s.insertFragmentsIntoDrawOrder(i1, n1, i2, n2)
					changed = true
					f1 = s.fragments.At(s.draworder[i1])
					continue
				}
			}

			// no 3D crossing: cut the farther fragment along the nearer one's silhouette so the covered piece orders independently from the rest
			cmp := s.fineZCompare(s.draworder[i1], s.draworder[i2])
			far, near := i1, i2
			if 0 < cmp {
				far, near = i2, i1
			}
			if s.fragments.At(s.draworder[far]).gen < s.MaxSplitDepth {
				if n := splitProjected(&s.fragments, s.draworder[far], s.draworder[near], s.PlaneEps); 0 < n {
					if far == i1 {
						s.insertFragmentsIntoDrawOrder(i1, n, i2, 0)
					} else {
						s.insertFragmentsIntoDrawOrder(i1, 0, i2, n)
					}
					changed = true
					f1 = s.fragments.At(s.draworder[i1])
					continue
				}
			}
			if cmp <= 0 {
				// f1 is wholly behind f2 over the overlap, the order stands
				continue
			}

			// no cut possible: f2 is wholly behind f1 over the overlap, move it in front of f1 in the order
			idx := s.draworder[i2]
			copy(s.draworder[i1+1:i2+1], s.draworder[i1:i2])
			s.draworder[i1] = idx
			changed = true
			f1 = s.fragments.At(s.draworder[i1])
		}
	}
	return changed
}

// insertFragmentsIntoDrawOrder replaces the superseded entries at draw order positions idx1 and idx2 by the newnum1 and newnum2 fragments just appended to the store, then re-sorts only the affected subrange by depth. A newnum of zero keeps the original entry. idx1 must be less than idx2.
func (s *Scene) insertFragmentsIntoDrawOrder(idx1, newnum1, idx2, newnum2 int) {
	base := s.fragments.Len() - newnum1 - newnum2
	for i := base; i < s.fragments.Len(); i++ {
		s.project(s.fragments.At(i))
	}

	order := make([]int, 0, len(s.draworder)+newnum1+newnum2)
	order = append(order, s.draworder[:idx1]...)
	if newnum1 == 0 {
		order = append(order, s.draworder[idx1])
	} else {
		for i := 0; i < newnum1; i++ {
			order = append(order, base+i)
		}
	}
	order = append(order, s.draworder[idx1+1:idx2]...)
	if newnum2 == 0 {
		order = append(order, s.draworder[idx2])
	} else {
		for i := 0; i < newnum2; i++ {
			order = append(order, base+newnum1+i)
		}
	}
	order = append(order, s.draworder[idx2+1:]...)
	s.draworder = order

	end := idx2 + max(newnum1, 1) + max(newnum2, 1) - 1
	sub := s.draworder[idx1:end]
	sort.Slice(sub, func(a, b int) bool {
		return s.coarseLess(sub[a], sub[b])
	})
}

// doDrawing walks the draw order and issues each fragment as a vector path to the canvas. No geometric decisions are made here.
func (s *Scene) doDrawing(canvas Canvas, linescale float64) {
	for _, idx := range s.draworder {
		f := s.fragments.At(idx)
		if !f.live() || len(f.Screen) < 2 {
			continue
		}
		hideLine := f.Style.Line == nil || f.Style.Line.Hide
		hideSurface := f.Style.Surface == nil || f.Style.Surface.Hide
		if f.Kind == FragmentPolygon && (!hideSurface || !hideLine) {
			canvas.DrawPath(f.Screen, true, f.Style, linescale)
		} else if f.Kind == FragmentLine && !hideLine {
			canvas.DrawPath(f.Screen, false, f.Style, linescale)
		}
	}
}
