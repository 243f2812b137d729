package dom

import "github.com/pkg/errors"

var (
	// ErrEmptyTag is returned for an element whose Tag is empty.
	ErrEmptyTag = errors.New("dom: empty tag name")
	// ErrInvalidTag is returned for a tag name that cannot be serialized,
	// e.g. one containing whitespace, '/' or '>'.
	ErrInvalidTag = errors.New("dom: invalid tag name")
	// ErrInvalidAttribute is returned for an attribute name that is empty
	// or contains whitespace, quotes, '/', '=' or '>'. html.Render writes
	// names unescaped.
	ErrInvalidAttribute = errors.New("dom: invalid attribute name")
	// ErrTooDeep is returned when elements nest deeper than the builder's
	// maximum depth. Content thunks that reference their own element end
	// here.
	ErrTooDeep = errors.New("dom: maximum depth exceeded")
	// ErrNotDocumentRoot is returned by Document for a root other than
	// <html>.
	ErrNotDocumentRoot = errors.New("dom: document root must be <html>")
)
