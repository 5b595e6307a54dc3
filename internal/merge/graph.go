package merge

// Edge is an unordered pair of compatible line indices with I < J.
type Edge struct {
	I int `json:"i"`
	J int `json:"j"`
}

// Graph is the compatibility graph of one page: nodes are line indices
// [0, N) and edges join compatible pairs. It is not mutated after BuildGraph
// returns.
type Graph struct {
	N     int
	Edges []Edge
}

// BuildGraph tests every unordered pair of lines once and records the
// compatible ones. The number of tests is quadratic in len(features).
func BuildGraph(features []Features, policy Policy) *Graph {
	g := &Graph{N: len(features)}
	for i := 0; i < len(features); i++ {
		for j := i + 1; j < len(features); j++ {
			if policy.Compatible(features[i], features[j]) {
				g.Edges = append(g.Edges, Edge{I: i, J: j})
			}
		}
	}
	return g
}

// HasEdge reports whether i and j are directly compatible.
func (g *Graph) HasEdge(i, j int) bool {
	if i > j {
		i, j = j, i
	}
	for _, e := range g.Edges {
		if e.I == i && e.J == j {
			return true
		}
	}
	return false
}

// Components returns the connected components of the graph.
func (g *Graph) Components() [][]int {
	return Partition(g.N, g.Edges)
}

// Partition groups [0, n) into the connected components induced by edges.
// Each component is ascending and components are ordered by their smallest
// member; the order of edges does not affect the result.
func Partition(n int, edges []Edge) [][]int {
	d := NewDisjointSet(n)
	for _, e := range edges {
		d.Union(e.I, e.J)
	}
	return d.Groups()
}
