package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGlobMatch_ExactWithoutStar(t *testing.T) {
	assert.True(t, globMatch("Button", "button"))
	assert.False(t, globMatch("Button", "ButtonGroup"))
}

func TestGlobMatch_PrefixPattern(t *testing.T) {
	assert.True(t, globMatch("Comic*", "ComicCard"))
	assert.True(t, globMatch("Comic*", "comiclist"))
	assert.False(t, globMatch("Comic*", "NavBar"))
}

func TestGlobMatch_SuffixPattern(t *testing.T) {
	assert.True(t, globMatch("*Card", "ComicCard"))
	assert.False(t, globMatch("*Card", "ComicCardHeader"))
}

func TestGlobMatch_MiddleSegments(t *testing.T) {
	assert.True(t, globMatch("Comic*Card", "ComicSuperCard"))
	assert.False(t, globMatch("Comic*Card", "Comic"))
}

func TestGlobMatch_CaseInsensitive(t *testing.T) {
	assert.True(t, globMatch("COMIC*", "comiccard"))
}

func TestNameMatches_SubstringWhenNoStar(t *testing.T) {
	assert.True(t, nameMatches("omic", "ComicCard"))
	assert.False(t, nameMatches("zzz", "ComicCard"))
}

func TestHasInteractiveDescendant_SelfCounts(t *testing.T) {
	host := TreeNode{Name: "button", Tag: strPtr("button")}
	assert.True(t, hasInteractiveDescendant(host))
}

func TestHasInteractiveDescendant_NestedDescendant(t *testing.T) {
	button := TreeNode{Name: "button", Tag: strPtr("button")}
	wrapper := TreeNode{Name: "Wrapper", IsComponent: true, Children: []TreeNode{button}}
	assert.True(t, hasInteractiveDescendant(wrapper))
}

func TestHasInteractiveDescendant_NoneFound(t *testing.T) {
	div := TreeNode{Name: "div", Tag: strPtr("div")}
	wrapper := TreeNode{Name: "Wrapper", IsComponent: true, Children: []TreeNode{div}}
	assert.False(t, hasInteractiveDescendant(wrapper))
}

func TestFlattenFragments_ExpandsInPlace(t *testing.T) {
	inner := DOMNode{Tag: strPtr("span")}
	fragment := DOMNode{Children: []DOMNode{inner}}
	outer := DOMNode{Tag: strPtr("div"), Children: []DOMNode{fragment}}

	got := flattenFragments([]DOMNode{outer})

	assert.Len(t, got, 1)
	assert.Len(t, got[0].Children, 1)
	assert.Equal(t, "span", *got[0].Children[0].Tag)
}

func TestMiniCollapse_DropsEmptyStructuralWrapper(t *testing.T) {
	empty := DOMNode{Tag: strPtr("div")}

	_, ok := miniCollapse(empty)

	assert.False(t, ok)
}

func TestMiniCollapse_DropsWhitespaceOnlyText(t *testing.T) {
	whitespace := DOMNode{Text: strPtr("   ")}

	_, ok := miniCollapse(whitespace)

	assert.False(t, ok)
}

func TestIsMeaningfulAttr(t *testing.T) {
	assert.False(t, isMeaningfulAttr("aria-hidden"))
	assert.False(t, isMeaningfulAttr("role"))
	assert.False(t, isMeaningfulAttr("tabindex"))
	assert.False(t, isMeaningfulAttr("hidden"))
	assert.False(t, isMeaningfulAttr("dir"))
	assert.False(t, isMeaningfulAttr("lang"))
	assert.True(t, isMeaningfulAttr("id"))
	assert.True(t, isMeaningfulAttr("href"))
}
