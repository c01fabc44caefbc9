package pointer

import (
	"strconv"

	"github.com/mcncl/gopointer/internal/models"
)

// Get returns the value that pointer refers to within root.
// The empty pointer returns root itself. Get never modifies root.
func Get(root models.JSONValue, pointer string) (models.JSONValue, error) {
	if pointer == "" {
		return root, nil
	}

	tokens, err := Parse(pointer)
	if err != nil {
		return nil, err
	}

	node := root
	for _, raw := range tokens {
		node, err = child(node, pointer, Decode(raw))
		if err != nil {
			return nil, err
		}
	}
	return node, nil
}

// child resolves one decoded token against node. A missing object key is
// reported as KeyNotFound; Set translates it where a key may be created.
func child(node models.JSONValue, pointer, tok string) (models.JSONValue, error) {
	switch n := node.(type) {
	case *models.JSONArray:
		idx, err := index(n, pointer, tok)
		if err != nil {
			return nil, err
		}
		return n.At(idx), nil
	case *models.JSONObject:
		v, ok := n.Get(tok)
		if !ok {
			return nil, newError(KindKeyNotFound, pointer, tok, "key %q not found", tok)
		}
		return v, nil
	default:
		return nil, newError(KindTypeMismatch, pointer, tok,
			"cannot descend into scalar value (%s) with token %q", models.TypeName(node), tok)
	}
}

// index converts tok into an index that exists in arr
func index(arr *models.JSONArray, pointer, tok string) (int, error) {
	if !IsIndex(tok) {
		return 0, newError(KindTypeMismatch, pointer, tok, "array indices must be integers, got %q", tok)
	}
	idx, err := strconv.Atoi(tok)
	if err != nil || idx >= arr.Len() {
		// Atoi only fails here on overflow, which is out of range for any array.
		return 0, newError(KindIndexOutOfRange, pointer, tok,
			"index %s out of range for array of length %d", tok, arr.Len())
	}
	return idx, nil
}
