package graph

// vertexSet maintains vertex membership plus stable insertion order. Both
// adjacency-list variants embed one; the matrix backend keeps its own
// index-based catalog because removal there must also compact indices.
type vertexSet[V comparable] struct {
	members map[V]struct{}
	order   []V
}

// newVertexSet builds a set from the initial vertices. Duplicates collapse:
// constructor input has set semantics.
func newVertexSet[V comparable](vs ...V) *vertexSet[V] {
	s := &vertexSet[V]{members: make(map[V]struct{}, len(vs))}
	for _, v := range vs {
		s.insert(v)
	}

	return s
}

// has reports membership. O(1).
func (s *vertexSet[V]) has(v V) bool {
	_, ok := s.members[v]

	return ok
}

// insert adds v if missing and reports whether it was added.
func (s *vertexSet[V]) insert(v V) bool {
	if s.has(v) {
		return false
	}
	s.members[v] = struct{}{}
	s.order = append(s.order, v)

	return true
}

// add inserts v or returns ErrDuplicateVertex.
func (s *vertexSet[V]) add(v V) error {
	if !s.insert(v) {
		return ErrDuplicateVertex
	}

	return nil
}

// addAll inserts every vertex in vs, all-or-nothing. A member already in the
// set, or repeated within vs itself, fails the whole batch with
// ErrDuplicateVertex before anything is inserted.
func (s *vertexSet[V]) addAll(vs []V) error {
	seen := make(map[V]struct{}, len(vs))
	for _, v := range vs {
		if s.has(v) {
			return ErrDuplicateVertex
		}
		if _, dup := seen[v]; dup {
			return ErrDuplicateVertex
		}
		seen[v] = struct{}{}
	}
	for _, v := range vs {
		s.insert(v)
	}

	return nil
}

// remove deletes v or returns ErrVertexNotFound. O(n) for the order slice.
func (s *vertexSet[V]) remove(v V) error {
	if !s.has(v) {
		return ErrVertexNotFound
	}
	delete(s.members, v)
	for i, u := range s.order {
		if u == v {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	return nil
}

// list returns the vertices in insertion order as a fresh slice.
func (s *vertexSet[V]) list() []V {
	out := make([]V, len(s.order))
	copy(out, s.order)

	return out
}

// size returns the number of members. O(1).
func (s *vertexSet[V]) size() int {
	return len(s.members)
}
