package element

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sample() Node {
	return Div{Contents: Contents{Content: Wrap(
		P{Contents: Contents{Content: Wrap(
			Text("a"),
			A{Href: "/x", Contents: Contents{Content: Wrap(Text("b"))}},
		)}},
		Group(
			Comment("c"),
			A{Href: "/y"},
		),
	)}}
}

func TestWalkOrder(t *testing.T) {
	var seen []string
	Walk(sample(), func(n Node) WalkResult {
		switch n := n.(type) {
		case Element:
			seen = append(seen, n.Tag())
		case Text:
			seen = append(seen, "#"+string(n))
		case Comment:
			seen = append(seen, "!"+string(n))
		}
		return WalkContinue
	})
	assert.Equal(t, []string{"div", "p", "#a", "a", "#b", "!c", "a"}, seen)
}

func TestWalkSkipAndStop(t *testing.T) {
	var seen []string
	done := Walk(sample(), func(n Node) WalkResult {
		e, ok := n.(Element)
		if !ok {
			return WalkContinue
		}
		seen = append(seen, e.Tag())
		if e.Tag() == "p" {
			return WalkSkip
		}
		return WalkContinue
	})
	assert.True(t, done)
	assert.Equal(t, []string{"div", "p", "a"}, seen)

	var count int
	done = Walk(sample(), func(Node) WalkResult {
		count++
		if count == 2 {
			return WalkStop
		}
		return WalkContinue
	})
	assert.False(t, done)
	assert.Equal(t, 2, count)
}

func TestQuery(t *testing.T) {
	var hrefs []string
	Query(sample(), func(a A) WalkResult {
		hrefs = append(hrefs, a.Href.String())
		return WalkContinue
	})
	assert.Equal(t, []string{"/x", "/y"}, hrefs)

	var n int
	Query(nil, func(Text) WalkResult {
		n++
		return WalkContinue
	})
	assert.Zero(t, n)
}

func TestWalkSelfReferencingContent(t *testing.T) {
	var loop func() Node
	loop = func() Node {
		return Div{Contents: Contents{Content: loop}}
	}

	var divs int
	done := Walk(loop(), func(n Node) WalkResult {
		divs++
		return WalkContinue
	})
	assert.True(t, done)
	assert.Equal(t, MaxWalkDepth, divs)

	var queried int
	Query(loop(), func(Div) WalkResult {
		queried++
		return WalkContinue
	})
	assert.Equal(t, MaxWalkDepth, queried)
}
