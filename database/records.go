package database

// Identifiable is implemented by every record that carries an integer id.
type Identifiable interface {
	GetID() int
}

// FindByID returns the record with the given id, if present.
func FindByID[T Identifiable](records []T, id int) (T, bool) {
	for _, r := range records {
		if r.GetID() == id {
			return r, true
		}
	}
	var zero T
	return zero, false
}

// IndexByID returns the position of the record with the given id, or -1.
func IndexByID[T Identifiable](records []T, id int) int {
	for i, r := range records {
		if r.GetID() == id {
			return i
		}
	}
	return -1
}

// NextID allocates the next id for an insertion: max(existing)+1, or 1 for
// an empty collection. It is computed fresh from the live records each
// time, so deleting the max-id record frees that id for reuse.
func NextID[T Identifiable](records []T) int {
	max := 0
	for _, r := range records {
		if r.GetID() > max {
			max = r.GetID()
		}
	}
	return max + 1
}

// RemoveByID deletes the record with the given id, preserving order, and
// returns the removed record.
func RemoveByID[T Identifiable](records []T, id int) ([]T, T, bool) {
	var zero T
	i := IndexByID(records, id)
	if i < 0 {
		return records, zero, false
	}
	removed := records[i]
	return append(records[:i], records[i+1:]...), removed, true
}
