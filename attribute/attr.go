// Package attribute defines the typed attribute values carried by element
// descriptors and the ordered list they are reported in.
package attribute

import (
	"fmt"
	"strconv"
	"strings"
)

// Attr is a single name/value pair. Boolean attributes are present with an
// empty value.
// https://dom.spec.whatwg.org/#attr
type Attr struct {
	Name  string
	Value string
}

// List is an ordered set of attributes keyed by name. It plays the role of
// https://dom.spec.whatwg.org/#namednodemap for descriptors.
type List []Attr

// Ptr returns a pointer to v. Optional numeric attributes are pointers so
// that zero stays distinguishable from unset.
func Ptr[T any](v T) *T {
	return &v
}

func (l List) index(name string) int {
	for i := range l {
		if l[i].Name == name {
			return i
		}
	}
	return -1
}

// Len returns the number of attributes.
func (l List) Len() int { return len(l) }

// Get returns the value stored for name.
func (l List) Get(name string) (string, bool) {
	i := l.index(strings.ToLower(name))
	if i < 0 {
		return "", false
	}
	return l[i].Value, true
}

// Has reports whether name is present.
func (l List) Has(name string) bool {
	return l.index(strings.ToLower(name)) >= 0
}

// Names returns the attribute names in order.
func (l List) Names() []string {
	names := make([]string, 0, len(l))
	for _, a := range l {
		names = append(names, a.Name)
	}
	return names
}

// Set stores value under name. An existing entry keeps its position.
func (l *List) Set(name, value string) {
	name = strings.ToLower(name)
	if i := l.index(name); i >= 0 {
		(*l)[i].Value = value
		return
	}
	*l = append(*l, Attr{Name: name, Value: value})
}

// Remove deletes name if present.
func (l *List) Remove(name string) {
	i := l.index(strings.ToLower(name))
	if i < 0 {
		return
	}
	*l = append((*l)[:i], (*l)[i+1:]...)
}

// SetString sets name unless value is empty.
func (l *List) SetString(name, value string) {
	if value == "" {
		return
	}
	l.Set(name, value)
}

// SetBool sets the boolean attribute name when on is true.
func (l *List) SetBool(name string, on bool) {
	if !on {
		return
	}
	l.Set(name, "")
}

// SetInt sets name when v is not nil.
func (l *List) SetInt(name string, v *int) {
	if v == nil {
		return
	}
	l.Set(name, strconv.Itoa(*v))
}

// SetFloat sets name when v is not nil, using the shortest representation.
func (l *List) SetFloat(name string, v *float64) {
	if v == nil {
		return
	}
	l.Set(name, strconv.FormatFloat(*v, 'f', -1, 64))
}

// SetStringer sets name from v unless v is nil or renders empty.
func (l *List) SetStringer(name string, v fmt.Stringer) {
	if v == nil {
		return
	}
	l.SetString(name, v.String())
}

// SetTokens sets name to the space separated tokens, skipping empty ones.
func (l *List) SetTokens(name string, tokens []string) {
	l.SetString(name, joinTokens(tokens, " "))
}

// SetToggle sets an enumerated true/false attribute when v is not nil.
func (l *List) SetToggle(name string, v *bool) {
	if v == nil {
		return
	}
	l.Set(name, strconv.FormatBool(*v))
}

func joinTokens(tokens []string, sep string) string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return strings.Join(out, sep)
}
