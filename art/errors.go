package art

import "github.com/pkg/errors"

// Sentinel errors for the error-returning convenience wrappers below. Most
// of this package's API reports absence via an ok bool (§6), the usual Go
// idiom for a map-like type; these exist for callers that want the
// wrapped-error style instead, the way the teacher's iterator surfaces
// exhaustion as an error rather than a second return value.
var (
	ErrNotFound          = errors.New("art: key not found")
	ErrEmptyTree         = errors.New("art: tree is empty")
	ErrIteratorExhausted = errors.New("art: iterator exhausted")
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
