package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Scenario 1 (§8): Basic fiber tree.
func TestFormatFiber_BasicTree(t *testing.T) {
	button := TreeNode{
		Name:        "button",
		IsComponent: false,
		Tag:         strPtr("button"),
		AriaName:    strPtr("Click me"),
		RefID:       strPtr("e1"),
	}
	navBar := TreeNode{Name: "NavBar", IsComponent: true, Children: []TreeNode{button}}
	app := TreeNode{Name: "App", IsComponent: true, Children: []TreeNode{navBar}}

	out := formatFiber([]TreeNode{app}, Options{})

	assert.Equal(t, "- App\n  - NavBar\n    - button \"Click me\" [ref=e1]", out)
}

// Scenario 2 (§8): Interactive filter promotes.
func TestFormatFiber_InteractiveFilterPromotes(t *testing.T) {
	buttonOK := TreeNode{Name: "button", Tag: strPtr("button"), AriaName: strPtr("OK"), RefID: strPtr("e1")}
	div := TreeNode{Name: "div", Tag: strPtr("div"), Children: []TreeNode{buttonOK}}
	home := TreeNode{Name: "a", Tag: strPtr("a"), AriaName: strPtr("Home"), RefID: strPtr("e2")}
	app := TreeNode{Name: "App", IsComponent: true, Children: []TreeNode{div, home}}

	out := formatFiber([]TreeNode{app}, Options{Interactive: true})

	assert.Equal(t, "- App\n  - button \"OK\" [ref=e1]\n  - a \"Home\" [ref=e2]", out)
}

// Scenario 3 (§8): Glob filter prefix.
func TestFormatFiber_GlobFilterPrefix(t *testing.T) {
	comicCard := TreeNode{Name: "ComicCard", IsComponent: true}
	comicList := TreeNode{Name: "ComicList", IsComponent: true}
	navBar := TreeNode{Name: "NavBar", IsComponent: true}
	app := TreeNode{Name: "App", IsComponent: true, Children: []TreeNode{comicCard, comicList, navBar}}

	out := formatFiber([]TreeNode{app}, Options{Filter: "Comic*"})

	assert.Equal(t, "- ComicCard\n- ComicList", out)
}

func TestFormatFiber_CompactDropsSubtreeWithoutInteractiveDescendant(t *testing.T) {
	decorative := TreeNode{Name: "Decorative", IsComponent: true}
	withButton := TreeNode{
		Name:        "WithButton",
		IsComponent: true,
		Children: []TreeNode{
			{Name: "button", Tag: strPtr("button")},
		},
	}
	app := TreeNode{Name: "App", IsComponent: true, Children: []TreeNode{decorative, withButton}}

	out := formatFiber([]TreeNode{app}, Options{Compact: true})

	assert.Equal(t, "- App\n  - WithButton\n    - button", out)
}

func TestFormatFiber_MaxDepthZeroYieldsAtMostOneLinePerRoot(t *testing.T) {
	child := TreeNode{Name: "Child", IsComponent: true}
	app := TreeNode{Name: "App", IsComponent: true, Children: []TreeNode{child}}

	out := formatFiber([]TreeNode{app}, Options{MaxDepth: intPtr(0)})

	assert.Equal(t, "- App", out)
}
