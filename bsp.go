package threed

import "sort"

// bspNode is one node of a binary space partitioning tree. The node's plane is the supporting plane of its splitter fragment; same holds the splitter and any coplanar fragments. A node with no plane (frag < 0) is a leaf of fragments that cannot split, such as a set of lines.
type bspNode struct {
	frag  int
	n     Vec3
	d     float64
	same  []int
	front *bspNode
	back  *bspNode
}

// bspCandidates bounds how many splitter candidates are scored per node.
const bspCandidates = 8

// renderBSP resolves the draw order by building a binary space partitioning tree over the projected fragments and traversing it relative to the eye. The tree lives in camera space, where the eye sits at the origin, and is discarded after traversal.
func (s *Scene) renderBSP() {
	s.projectFragments()

	var live []int
	for i := 0; i < s.fragments.Len(); i++ {
		if s.fragments.At(i).live() {
			live = append(live, i)
		}
	}
	root := s.buildBSP(live)
	s.draworder = s.draworder[:0]
	s.traverseBSP(root)
}

// straddlesPlane returns true if the fragment extends beyond eps to both sides of the plane dot(n,p)=d.
func straddlesPlane(f *Fragment, n Vec3, d, eps float64) bool {
	hasFront, hasBack := false, false
	for _, p := range f.Points {
		dist := n.Dot(p) - d
		if eps < dist {
			hasFront = true
		} else if dist < -eps {
			hasBack = true
		}
	}
	return hasFront && hasBack
}

// buildBSP recursively partitions the fragments at the given store positions. The splitter is the polygon whose plane straddles the fewest other fragments, scored over a bounded number of candidates; straddling fragments are cut in 3D and their pieces redistributed.
func (s *Scene) buildBSP(idxs []int) *bspNode {
	if len(idxs) == 0 {
		return nil
	}

	best, bestCount := -1, len(idxs)+1
	tried := 0
	for k, idx := range idxs {
		f := s.fragments.At(idx)
		if f.Kind != FragmentPolygon {
			continue
		}
		n, d, ok := f.Plane()
		if !ok {
			continue
		}
		count := 0
		for _, other := range idxs {
			if other != idx && straddlesPlane(s.fragments.At(other), n, d, s.PlaneEps) {
				count++
			}
		}
		if count < bestCount {
			best, bestCount = k, count
		}
		tried++
		if bestCount == 0 || bspCandidates <= tried {
			break
		}
	}
	if best < 0 {
		// no polygon to split on, emit as a depth-sorted leaf
		leaf := &bspNode{frag: -1, same: append([]int{}, idxs...)}
		sort.Slice(leaf.same, func(a, b int) bool {
			return s.coarseLess(leaf.same[a], leaf.same[b])
		})
		return leaf
	}

	node := &bspNode{frag: idxs[best]}
	node.n, node.d, _ = s.fragments.At(node.frag).Plane()
	node.same = []int{node.frag}

	var frontSet, backSet []int
	classify := func(idx int) {
		f := s.fragments.At(idx)
		var front, back []Vec3
		if f.Kind == FragmentPolygon {
			front, back = splitPolygonByPlane(f.Points, node.n, node.d, s.PlaneEps)
		} else {
			front, back = splitSegmentByPlane(f.Points[0], f.Points[1], node.n, node.d, s.PlaneEps)
		}
		switch {
		case front != nil && back != nil:
			if f.gen < s.MaxSplitDepth {
				base := s.fragments.Len()
				s.fragments.supersede(idx, [][]Vec3{front, back})
				s.project(s.fragments.At(base))
				s.project(s.fragments.At(base + 1))
				frontSet = append(frontSet, base)
				backSet = append(backSet, base+1)
				return
			}
			// split budget exhausted, place by centroid
			if 0.0 <= node.n.Dot(f.Centroid())-node.d {
				frontSet = append(frontSet, idx)
			} else {
				backSet = append(backSet, idx)
			}
		case front != nil:
			frontSet = append(frontSet, idx)
		case back != nil:
			backSet = append(backSet, idx)
		default:
			// coplanar with the splitter
			node.same = append(node.same, idx)
		}
	}
	for k, idx := range idxs {
		if k != best {
			classify(idx)
		}
	}

	// coplanar lines draw on top of coplanar polygons, otherwise keep creation order
	sort.Slice(node.same, func(a, b int) bool {
		fa, fb := s.fragments.At(node.same[a]), s.fragments.At(node.same[b])
		if fa.Kind != fb.Kind {
			return fa.Kind == FragmentPolygon
		}
		return fa.index < fb.index
	})

	node.front = s.buildBSP(frontSet)
	node.back = s.buildBSP(backSet)
	return node
}

// traverseBSP emits the in-order traversal of the tree relative to the eye at the camera-space origin: at each node the side away from the eye first, then the node's fragments, then the near side. This yields a back-to-front order by construction.
func (s *Scene) traverseBSP(node *bspNode) {
	if node == nil {
		return
	}
	if node.frag < 0 {
		s.draworder = append(s.draworder, node.same...)
		return
	}
	eyeInFront := 0.0 < -node.d
	if eyeInFront {
		s.traverseBSP(node.back)
	} else {
		s.traverseBSP(node.front)
	}
	s.draworder = append(s.draworder, node.same...)
	if eyeInFront {
		s.traverseBSP(node.front)
	} else {
		s.traverseBSP(node.back)
	}
}
