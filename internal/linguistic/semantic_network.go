// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package linguistic

// defaultTraversalDepth bounds Neighbors' breadth-first expansion when
// the caller does not specify a depth.
const defaultTraversalDepth = 2

// semanticNode is an arena record: peers reference each other by index
// into SemanticNetwork.nodes, never by pointer, so the network can be
// serialized or rebuilt without chasing owning references.
type semanticNode struct {
	objectID string
	edges    []semanticEdge
}

// semanticEdge is one weighted, undirected relation to another node,
// identified by its index in SemanticNetwork.nodes.
type semanticEdge struct {
	to     int
	weight float64 // relation strength in [0,1]; collocation PMI, synonymy, etc.
}

// SemanticNetwork is an undirected graph of LanguageObjects connected
// by relational edges (synonymy, collocation, thematic association).
// Nodes are arena-allocated and edges are index-based, per the design
// note against owning references between peers: removing a node would
// otherwise require walking every other node's pointer set.
type SemanticNetwork struct {
	nodes   []semanticNode
	indexOf map[string]int
}

// NewSemanticNetwork returns an empty network.
func NewSemanticNetwork() *SemanticNetwork {
	return &SemanticNetwork{
		indexOf: make(map[string]int),
	}
}

// AddNode registers id if not already present and returns its index.
func (n *SemanticNetwork) AddNode(id string) int {
	if idx, ok := n.indexOf[id]; ok {
		return idx
	}
	idx := len(n.nodes)
	n.nodes = append(n.nodes, semanticNode{objectID: id})
	n.indexOf[id] = idx
	return idx
}

// AddEdge relates a and b with the given weight, adding both endpoints
// if absent. The edge is undirected: it is recorded on both nodes.
func (n *SemanticNetwork) AddEdge(a, b string, weight float64) {
	if a == b {
		return
	}
	ai := n.AddNode(a)
	bi := n.AddNode(b)
	n.nodes[ai].edges = append(n.nodes[ai].edges, semanticEdge{to: bi, weight: weight})
	n.nodes[bi].edges = append(n.nodes[bi].edges, semanticEdge{to: ai, weight: weight})
}

// Degree returns the number of edges incident to id, or 0 if id is
// absent from the network.
func (n *SemanticNetwork) Degree(id string) int {
	idx, ok := n.indexOf[id]
	if !ok {
		return 0
	}
	return len(n.nodes[idx].edges)
}

// RelationalDensity scores id's connectivity relative to the densest
// node currently in the network, normalized into [0,1]. An isolated or
// absent node scores 0; the most-connected node in the network scores
// 1. This is the raw signal behind the z(w) vector's R component.
func (n *SemanticNetwork) RelationalDensity(id string) float64 {
	if len(n.nodes) == 0 {
		return 0
	}
	maxDegree := 0
	for i := range n.nodes {
		if d := len(n.nodes[i].edges); d > maxDegree {
			maxDegree = d
		}
	}
	if maxDegree == 0 {
		return 0
	}
	return float64(n.Degree(id)) / float64(maxDegree)
}

// Neighbors returns every node reachable from id within depth hops,
// using a breadth-limited expansion with a visited set so cycles in
// the underlying graph never revisit a node or loop indefinitely.
func (n *SemanticNetwork) Neighbors(id string, depth int) []string {
	if depth <= 0 {
		depth = defaultTraversalDepth
	}
	start, ok := n.indexOf[id]
	if !ok {
		return nil
	}

	visited := map[int]bool{start: true}
	frontier := []int{start}
	var result []string

	for d := 0; d < depth && len(frontier) > 0; d++ {
		var next []int
		for _, idx := range frontier {
			for _, edge := range n.nodes[idx].edges {
				if visited[edge.to] {
					continue
				}
				visited[edge.to] = true
				next = append(next, edge.to)
				result = append(result, n.nodes[edge.to].objectID)
			}
		}
		frontier = next
	}
	return result
}

// NodeCount returns the number of registered nodes.
func (n *SemanticNetwork) NodeCount() int {
	return len(n.nodes)
}
