package element

// WalkResult controls a Walk.
type WalkResult int

const (
	// WalkContinue descends into the children of the current node.
	WalkContinue WalkResult = iota
	// WalkSkip does not descend into the children of the current node.
	WalkSkip
	// WalkStop ends the walk.
	WalkStop
)

// MaxWalkDepth is the deepest element nesting Walk visits.
const MaxWalkDepth = 512

// Walk calls fn for n and its descendants in document order. Fragments
// are flattened and not passed to fn. Content thunks are evaluated as the
// walk reaches them; elements nested deeper than MaxWalkDepth are not
// visited, so self-referencing content terminates. It reports false if fn
// stopped the walk.
func Walk(n Node, fn func(Node) WalkResult) bool {
	return walk(n, fn, 0)
}

func walk(n Node, fn func(Node) WalkResult, depth int) bool {
	switch n := n.(type) {
	case nil:
		return true
	case Fragment:
		for _, c := range n {
			if !walk(c, fn, depth) {
				return false
			}
		}
		return true
	}

	e, isElement := n.(Element)
	if isElement {
		if depth++; depth > MaxWalkDepth {
			return true
		}
	}
	switch fn(n) {
	case WalkStop:
		return false
	case WalkSkip:
		return true
	}
	if isElement {
		return walk(e.Children(), fn, depth)
	}
	return true
}

// Query calls fn for each node of type T under n, n included.
//
//	var links int
//	element.Query(doc, func(a element.A) element.WalkResult {
//	    links++
//	    return element.WalkContinue
//	})
func Query[T Node](n Node, fn func(T) WalkResult) {
	Walk(n, func(n Node) WalkResult {
		if t, ok := n.(T); ok {
			return fn(t)
		}
		return WalkContinue
	})
}
