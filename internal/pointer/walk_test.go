package pointer

import (
	"errors"
	"testing"

	"github.com/mcncl/gopointer/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalk_VisitsInDocumentOrder(t *testing.T) {
	root := models.NewJSONObject()
	root.Set("z", models.NewJSONArray("a", models.MustFromNative(map[string]interface{}{"k": true})))
	root.Set("a/b", nil)
	root.Set("m~n", "tilde")

	var visited []string
	err := Walk(root, func(p string, _ models.JSONValue) error {
		visited = append(visited, p)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"", "/z", "/z/0", "/z/1", "/z/1/k", "/a~1b", "/m~0n"}, visited)
}

func TestWalk_PointersResolveToVisitedValues(t *testing.T) {
	doc := rfcDocument()

	err := Walk(doc, func(p string, v models.JSONValue) error {
		got, err := Get(doc, p)
		if err != nil {
			return err
		}
		if !models.Equal(v, got) {
			t.Errorf("Get(%q) = %v, walk visited %v", p, got, v)
		}
		return nil
	})
	require.NoError(t, err)
}

func TestWalk_SkipChildren(t *testing.T) {
	doc := models.MustFromNative(map[string]interface{}{
		"keep": []interface{}{1, 2},
		"skip": []interface{}{3, 4},
	})

	var visited []string
	err := Walk(doc, func(p string, _ models.JSONValue) error {
		visited = append(visited, p)
		if p == "/skip" {
			return SkipChildren
		}
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"", "/keep", "/keep/0", "/keep/1", "/skip"}, visited)
}

func TestWalk_StopsOnError(t *testing.T) {
	stop := errors.New("stop")
	count := 0

	err := Walk(rfcDocument(), func(string, models.JSONValue) error {
		count++
		if count == 2 {
			return stop
		}
		return nil
	})

	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 2, count)
}
