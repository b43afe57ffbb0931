package advanced

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Remove the first occurrence of v from the slice, preserving order.
func removeVertexID(list []VertexID, v VertexID) []VertexID {
	for i, item := range list {
		if item == v {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

func removeTriangleID(list []TriangleID, t TriangleID) []TriangleID {
	for i, item := range list {
		if item == t {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

func containsVertexID(list []VertexID, v VertexID) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
