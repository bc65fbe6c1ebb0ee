package vart

import "github.com/pkg/errors"

var (
	ErrNotFound          = errors.New("vart: key not found")
	ErrEmptyTree         = errors.New("vart: tree is empty")
	ErrIteratorExhausted = errors.New("vart: iterator exhausted")
)

// GetErr is Get with error-returning semantics instead of an ok bool.
func (t *Tree) GetErr(key Key) (any, error) {
	v, ok := t.Get(key)
	if ok {
		return v, nil
	}
	if t.root == nil {
		return nil, errors.Wrap(ErrEmptyTree, "get")
	}
	return nil, errors.Wrap(ErrNotFound, "get")
}

// MustKey returns the iterator's current key, or a wrapped
// ErrIteratorExhausted once Next has returned false.
func (it *Iterator) MustKey() (Key, error) {
	if it.cur == nil {
		return nil, errors.Wrap(ErrIteratorExhausted, "key")
	}
	return it.cur.key, nil
}
