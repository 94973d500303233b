// internal/maze/edges.go
package maze

import "sort"

// Edge is an open passage between two adjacent cells, stored with
// From < To. Weight is always 1 in this design.
type Edge struct {
	From   int `json:"from"`
	To     int `json:"to"`
	Weight int `json:"weight"`
}

type edgeKey struct {
	from, to int
}

func normalize(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{from: a, to: b}
}

// EdgeSet holds the carved passages. Normalizing the pair order before
// insertion is the dedup mechanism.
type EdgeSet struct {
	edges map[edgeKey]struct{}
}

// NewEdgeSet creates an empty edge set.
func NewEdgeSet() *EdgeSet {
	return &EdgeSet{edges: make(map[edgeKey]struct{})}
}

// Add inserts the passage between a and b. It returns false if the edge
// was already present.
func (s *EdgeSet) Add(a, b int) bool {
	key := normalize(a, b)
	if _, exists := s.edges[key]; exists {
		return false
	}
	s.edges[key] = struct{}{}
	return true
}

// Remove deletes the passage between a and b if present.
func (s *EdgeSet) Remove(a, b int) bool {
	key := normalize(a, b)
	if _, exists := s.edges[key]; !exists {
		return false
	}
	delete(s.edges, key)
	return true
}

// Contains reports whether a passage exists between a and b.
func (s *EdgeSet) Contains(a, b int) bool {
	_, exists := s.edges[normalize(a, b)]
	return exists
}

// Len returns the number of passages.
func (s *EdgeSet) Len() int {
	return len(s.edges)
}

// Edges returns all passages sorted by (From, To) so that serialization
// is deterministic for a given carve.
func (s *EdgeSet) Edges() []Edge {
	result := make([]Edge, 0, len(s.edges))
	for key := range s.edges {
		result = append(result, Edge{From: key.from, To: key.to, Weight: 1})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].From != result[j].From {
			return result[i].From < result[j].From
		}
		return result[i].To < result[j].To
	})
	return result
}

// Degrees computes the per-cell passage count keyed by linear id.
func (s *EdgeSet) Degrees() map[int]int {
	deg := make(map[int]int)
	for key := range s.edges {
		deg[key.from]++
		deg[key.to]++
	}
	return deg
}
