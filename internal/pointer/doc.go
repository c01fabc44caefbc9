// Package pointer resolves and writes JSON Pointers (RFC 6901) against
// values from the models package.
//
// A pointer is either empty, referring to the whole document, or a sequence
// of "/"-prefixed reference tokens in which "~1" stands for "/" and "~0" for
// "~". A token is applied as an index to arrays and as a key to objects:
//
//	{"foo": ["bar", "baz"], "a/b": 1}
//
//	""       the whole document
//	"/foo/0" "bar"
//	"/a~1b"  1
//
// Set mutates the tree in place and never creates missing parents. Only
// its final token may name a new object key, or "-" for appending to an
// array. Parsed pointers are not cached and no locking is done.
package pointer
