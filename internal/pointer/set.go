package pointer

import (
	"errors"

	"github.com/mcncl/gopointer/internal/models"
)

// target is where the terminal write of a Set lands: either a key of an
// object, an existing index of an array, or the end of an array.
type target struct {
	object *models.JSONObject
	array  *models.JSONArray
	key    string
	index  int
	append bool
}

// Set writes value at the location pointer refers to within root.
//
// Only the final token may name a location that does not exist yet: a new
// object key, or the end of an array through "-". Missing parents are never
// created. Nothing is modified unless Set returns nil.
func Set(root models.JSONValue, pointer string, value models.JSONValue) error {
	if pointer == "" {
		return &Error{Kind: KindEmptyPointer, Message: ErrEmptyPointer.Message}
	}

	tokens, err := Parse(pointer)
	if err != nil {
		return err
	}

	t, err := locate(root, pointer, tokens)
	if err != nil {
		return err
	}

	switch {
	case t.append:
		t.array.Append(value)
	case t.array != nil:
		t.array.Put(t.index, value)
	default:
		t.object.Set(t.key, value)
	}
	return nil
}

// locate walks every token but the last and resolves the last one against
// the container reached.
func locate(root models.JSONValue, pointer string, tokens []string) (target, error) {
	last := len(tokens) - 1
	node := root
	for _, raw := range tokens[:last] {
		tok := Decode(raw)

		if _, isArray := node.(*models.JSONArray); isArray && tok == AppendMarker {
			return target{}, newError(KindDashNotLast, pointer, tok, "%s", ErrDashNotLast.Message)
		}

		next, err := child(node, pointer, tok)
		if errors.Is(err, ErrKeyNotFound) {
			return target{}, newError(KindIntermediatePathMissing, pointer, tok,
				"key %q not found: %s", tok, ErrIntermediatePathMissing.Message)
		}
		if err != nil {
			return target{}, err
		}
		node = next
	}

	tok := Decode(tokens[last])
	switch n := node.(type) {
	case *models.JSONArray:
		if tok == AppendMarker {
			return target{array: n, append: true}, nil
		}
		idx, err := index(n, pointer, tok)
		if err != nil {
			return target{}, err
		}
		return target{array: n, index: idx}, nil
	case *models.JSONObject:
		return target{object: n, key: tok}, nil
	default:
		return target{}, newError(KindTypeMismatch, pointer, tok,
			"cannot set token %q on scalar value (%s)", tok, models.TypeName(node))
	}
}
