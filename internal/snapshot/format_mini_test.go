package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Scenario 4 (§8): Mini nav link collapse.
func TestMiniCollapse_NavLinkCollapse(t *testing.T) {
	img := DOMNode{Tag: strPtr("img"), Attrs: om(
		kv("alt", rawString("icon")),
		kv("src", rawString("x.svg")),
	)}
	innerDivA := DOMNode{Tag: strPtr("div"), Children: []DOMNode{img}}

	text := DOMNode{Text: strPtr("DC")}
	p := DOMNode{Tag: strPtr("p"), Children: []DOMNode{text}}
	innerDivB := DOMNode{Tag: strPtr("div"), Children: []DOMNode{p}}

	middleDiv := DOMNode{Tag: strPtr("div"), Children: []DOMNode{innerDivA, innerDivB}}
	outerDiv := DOMNode{Tag: strPtr("div"), Attrs: om(kv("role", rawString("group"))), Children: []DOMNode{middleDiv}}

	root := DOMNode{
		Tag: strPtr("a"),
		Attrs: om(
			kv("aria-label", rawString("DC")),
			kv("href", rawString("/channel/dc")),
		),
		Children: []DOMNode{outerDiv},
	}

	collapsed, ok := miniCollapse(root)
	assert.True(t, ok)

	out := formatMini([]DOMNode{collapsed}, Options{})
	assert.Equal(t, "- a aria-label=\"DC\" href=\"/channel/dc\"\n  - img alt=\"icon\" src=\"x.svg\"\n  - \"DC\"", out)
}

// Scenario 5 (§8): Mini preserves attrs.
func TestMiniCollapse_PreservesAttrs(t *testing.T) {
	home := DOMNode{Text: strPtr("Home")}
	a := DOMNode{Tag: strPtr("a"), Attrs: om(kv("href", rawString("/"))), Children: []DOMNode{home}}
	div := DOMNode{Tag: strPtr("div"), Attrs: om(kv("id", rawString("root"))), Children: []DOMNode{a}}

	collapsed, ok := miniCollapse(div)
	assert.True(t, ok)

	out := formatMini([]DOMNode{collapsed}, Options{})
	assert.Equal(t, "- div id=\"root\"\n  - a href=\"/\" \"Home\"", out)
}

func TestMiniCollapse_Idempotent(t *testing.T) {
	img := DOMNode{Tag: strPtr("img"), Attrs: om(kv("alt", rawString("icon")))}
	wrapper := DOMNode{Tag: strPtr("div"), Children: []DOMNode{img}}

	once, ok1 := miniCollapse(wrapper)
	assert.True(t, ok1)
	twice, ok2 := miniCollapse(once)
	assert.True(t, ok2)

	assert.Equal(t, once, twice)
}

func TestFlattenFragments_Idempotent(t *testing.T) {
	leaf := DOMNode{Tag: strPtr("span")}
	fragment := DOMNode{Children: []DOMNode{leaf}}
	nodes := []DOMNode{fragment}

	once := flattenFragments(nodes)
	twice := flattenFragments(once)

	assert.Equal(t, once, twice)
	assert.Equal(t, []DOMNode{leaf}, once)
}
