package pointer

import (
	"errors"
	"strconv"

	"github.com/mcncl/gopointer/internal/models"
)

// SkipChildren can be returned by a WalkFunc to skip the members of the
// container it was just called with.
var SkipChildren = errors.New("skip children")

// WalkFunc is called for every value visited by Walk with the pointer that
// addresses it. Returning an error other than SkipChildren stops the walk.
type WalkFunc func(pointer string, value models.JSONValue) error

// Walk visits root and every value below it in document order, parents
// before their members. The root is visited with the empty pointer.
func Walk(root models.JSONValue, fn WalkFunc) error {
	return walk("", root, fn)
}

func walk(pointer string, node models.JSONValue, fn WalkFunc) error {
	if err := fn(pointer, node); err != nil {
		if errors.Is(err, SkipChildren) {
			return nil
		}
		return err
	}

	switch n := node.(type) {
	case *models.JSONArray:
		for i, item := range n.Items() {
			if err := walk(pointer+"/"+strconv.Itoa(i), item, fn); err != nil {
				return err
			}
		}
	case *models.JSONObject:
		for _, key := range n.Keys() {
			v, _ := n.Get(key)
			if err := walk(pointer+"/"+Escape(key), v, fn); err != nil {
				return err
			}
		}
	}
	return nil
}
