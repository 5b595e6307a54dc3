package merge

import (
	"math"
	"sort"
)

// weightedEdge is a minimum-spanning-tree candidate between two lines.
type weightedEdge struct {
	i, j int
	w    float64
}

// split re-tests a component at region level and breaks it at its most
// deviating spanning-tree edge until every piece is coherent. The returned
// pieces partition component.
func (p Policy) split(component []int, features []Features) [][]int {
	switch len(component) {
	case 0:
		return nil
	case 1:
		return [][]int{component}
	case 2:
		a, b := features[component[0]], features[component[1]]
		near := a.Quad.Distance(b.Quad) < (1+p.SplitGamma)*math.Max(a.Thickness, b.Thickness)
		if near && angleBetween(a, b) < 0.2*math.Pi {
			return [][]int{component}
		}
		return [][]int{{component[0]}, {component[1]}}
	}

	tree := spanningTree(component, features)
	sort.Slice(tree, func(x, y int) bool {
		if tree[x].w != tree[y].w {
			return tree[x].w > tree[y].w
		}
		if tree[x].i != tree[y].i {
			return tree[x].i < tree[y].i
		}
		return tree[x].j < tree[y].j
	})

	var mean, fontSize float64
	for _, e := range tree {
		mean += e.w
	}
	mean /= float64(len(tree))
	var variance float64
	for _, e := range tree {
		variance += (e.w - mean) * (e.w - mean)
	}
	std := math.Sqrt(variance / float64(len(tree)))
	for _, i := range component {
		fontSize += features[i].Thickness
	}
	fontSize /= float64(len(component))

	widest := tree[0].w
	withinSpread := widest <= mean+std*p.SplitSigma || widest <= fontSize*(1+p.SplitGamma)
	if withinSpread && std < p.SplitStdFactor*fontSize {
		return [][]int{component}
	}

	// Drop the widest edge and recurse into both halves.
	local := make(map[int]int, len(component))
	for k, i := range component {
		local[i] = k
	}
	d := NewDisjointSet(len(component))
	for _, e := range tree[1:] {
		d.Union(local[e.i], local[e.j])
	}
	var out [][]int
	for _, g := range d.Groups() {
		piece := make([]int, len(g))
		for k, l := range g {
			piece[k] = component[l]
		}
		out = append(out, p.split(piece, features)...)
	}
	return out
}

// spanningTree runs Kruskal's algorithm over the complete graph of a
// component, weighting each pair by polygon distance.
func spanningTree(component []int, features []Features) []weightedEdge {
	edges := make([]weightedEdge, 0, len(component)*(len(component)-1)/2)
	for x := 0; x < len(component); x++ {
		for y := x + 1; y < len(component); y++ {
			i, j := component[x], component[y]
			edges = append(edges, weightedEdge{i: i, j: j, w: features[i].Quad.Distance(features[j].Quad)})
		}
	}
	sort.Slice(edges, func(a, b int) bool {
		if edges[a].w != edges[b].w {
			return edges[a].w < edges[b].w
		}
		if edges[a].i != edges[b].i {
			return edges[a].i < edges[b].i
		}
		return edges[a].j < edges[b].j
	})

	local := make(map[int]int, len(component))
	for k, i := range component {
		local[i] = k
	}
	d := NewDisjointSet(len(component))
	tree := make([]weightedEdge, 0, len(component)-1)
	for _, e := range edges {
		if d.Union(local[e.i], local[e.j]) {
			tree = append(tree, e)
		}
	}
	return tree
}

// angleBetween returns the absolute difference of the two text-flow angles.
func angleBetween(a, b Features) float64 {
	return math.Abs(math.Atan2(a.Direction.Y, a.Direction.X) - math.Atan2(b.Direction.Y, b.Direction.X))
}

// refine applies split to every component until no piece changes.
func (p Policy) refine(components [][]int, features []Features) [][]int {
	out := make([][]int, 0, len(components))
	for _, c := range components {
		out = append(out, p.split(c, features)...)
	}
	for _, c := range out {
		sort.Ints(c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })
	return out
}
