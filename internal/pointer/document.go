package pointer

import "github.com/mcncl/gopointer/internal/models"

// Document binds a root value for repeated Get and Set calls.
// Like the functions it wraps, it does no locking.
type Document struct {
	root models.JSONValue
}

// NewDocument creates a Document over root
func NewDocument(root models.JSONValue) *Document {
	return &Document{root: root}
}

// Root returns the bound value
func (d *Document) Root() models.JSONValue {
	return d.root
}

// Get is Get(d.Root(), pointer)
func (d *Document) Get(pointer string) (models.JSONValue, error) {
	return Get(d.root, pointer)
}

// Set is Set(d.Root(), pointer, value)
func (d *Document) Set(pointer string, value models.JSONValue) error {
	return Set(d.root, pointer, value)
}
