// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Ownership:
//   - Clones share no maps with the source; mutating one never affects the other.

package core

// CloneEmpty returns a new Graph with the same vertices and no edges.
// Complexity: O(V)
func (g *Graph[V]) CloneEmpty() *Graph[V] {
	clone := &Graph[V]{adjacency: make(map[V]map[V]struct{}, g.Size())}
	if g == nil {
		return clone
	}
	for v := range g.adjacency {
		clone.adjacency[v] = make(map[V]struct{})
	}

	return clone
}

// Clone returns a deep, independent copy of the Graph.
// Complexity: O(V + E)
func (g *Graph[V]) Clone() *Graph[V] {
	clone := &Graph[V]{adjacency: make(map[V]map[V]struct{}, g.Size())}
	if g == nil {
		return clone
	}
	for v, set := range g.adjacency {
		cp := make(map[V]struct{}, len(set))
		for u := range set {
			cp[u] = struct{}{}
		}
		clone.adjacency[v] = cp
	}

	return clone
}

// Clear removes every vertex and edge, leaving an empty, reusable graph.
// Complexity: O(1) (map reallocation)
func (g *Graph[V]) Clear() {
	g.adjacency = make(map[V]map[V]struct{})
}
