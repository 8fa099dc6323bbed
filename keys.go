package brain

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// Node ids are strings. Ids that look like array indices ("0", "1", ...) order
// numerically ahead of every other id, which orders lexicographically. Layers
// keep their ids in this order, so every sum over a layer is taken in the same
// order no matter how the layer was built or restored.

// arrayIndex returns the integer value of id and true if id is a canonical
// non-negative decimal (no sign, no leading zeros)
func arrayIndex(id string) (int, bool) {
	if id == "" || (len(id) > 1 && id[0] == '0') {
		return 0, false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '0' || id[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(id)
	if err != nil {
		return 0, false
	}
	return n, true
}

// compareIDs orders two node ids
func compareIDs(a, b string) int {
	ai, aok := arrayIndex(a)
	bi, bok := arrayIndex(b)
	switch {
	case aok && bok:
		return cmp.Compare(ai, bi)
	case aok:
		return -1
	case bok:
		return 1
	}
	return strings.Compare(a, b)
}

// sortedIDs returns the keys of m in node id order
func sortedIDs[V any](m map[string]V) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, compareIDs)
	return ids
}

// insertID inserts id into the ordered slice ids, returning the new slice.
// ids must not already contain id.
func insertID(ids []string, id string) []string {
	i, _ := slices.BinarySearchFunc(ids, id, compareIDs)
	return slices.Insert(ids, i, id)
}

// Vector returns values keyed by their index, for using a network with
// array-like inputs and targets
func Vector(values []float32) map[string]float32 {
	m := make(map[string]float32, len(values))
	for i, v := range values {
		m[strconv.Itoa(i)] = v
	}
	return m
}

// sequence returns the values of ids in order if ids are exactly "0".."n-1".
// ids must be in node id order.
func sequence(ids []string, values map[string]float32) ([]float32, bool) {
	seq := make([]float32, len(ids))
	for i, id := range ids {
		if n, ok := arrayIndex(id); !ok || n != i {
			return nil, false
		}
		seq[i] = values[id]
	}
	return seq, true
}
