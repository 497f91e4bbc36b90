package snapshot

import "fmt"

// This file holds the two in-page probes (C1): JavaScript payloads
// evaluated via the transport's Eval call. Both are opaque to the rest of
// the engine beyond their documented JSON schemas (§4.1) — nothing else in
// this package inspects their source, only the shape of what they return.

// domWalkerScript recursively walks document.documentElement and returns a
// single DOMNode-shaped tree (§4.1 "DOM walker").
const domWalkerScript = `(function() {
  var SKIP_TAGS = {script:1, style:1, noscript:1, link:1, head:1, meta:1};
  var DROP_ATTRS = {style:1, class:1};

  function truncate(s, max) {
    if (s.length <= max) return s;
    return s.slice(0, max) + "...";
  }

  function keepAttr(name) {
    if (DROP_ATTRS[name]) return false;
    if (name.indexOf("data-") === 0) {
      return name.indexOf("data-testid") === 0 || name.indexOf("data-gc-") === 0;
    }
    return true;
  }

  function walkText(node) {
    var t = (node.nodeValue || "").trim();
    if (t === "") return null;
    return { text: truncate(t, 80) };
  }

  function walkElement(el) {
    var tag = el.tagName.toLowerCase();
    if (SKIP_TAGS[tag]) return null;

    var attrs = {};
    for (var i = 0; i < el.attributes.length; i++) {
      var a = el.attributes[i];
      if (!keepAttr(a.name)) continue;
      attrs[a.name] = truncate(a.value, 100);
    }

    if (tag === "svg") {
      return { tag: tag, attrs: attrs, children: [] };
    }

    var children = [];
    for (var j = 0; j < el.childNodes.length; j++) {
      var child = walkNode(el.childNodes[j]);
      if (child !== null) children.push(child);
    }
    return { tag: tag, attrs: attrs, children: children };
  }

  function walkNode(node) {
    if (node.nodeType === 3) return walkText(node);
    if (node.nodeType === 1) return walkElement(node);
    return null;
  }

  return walkNode(document.documentElement);
})()`

// fiberWalkerScript locates React fiber roots and walks each one into the
// unified TreeNode shape (§4.1 "Fiber walker"), honoring the
// globalThis.__MAX_DEPTH side channel the dispatcher sets in its prelude.
const fiberWalkerScript = `(function() {
  var maxDepth = (typeof globalThis.__MAX_DEPTH === "number") ? globalThis.__MAX_DEPTH : 200;

  function findRootContainers() {
    var out = [];
    var all = document.querySelectorAll("*");
    for (var i = 0; i < all.length; i++) {
      var el = all[i];
      for (var key in el) {
        if (key.indexOf("__reactContainer") === 0 || key.indexOf("__reactFiber") === 0) {
          out.push(el[key]);
        }
      }
    }
    return out;
  }

  function isMinifiedName(name) {
    return /^[A-Z]$/.test(name);
  }

  var allMinified = true;
  var anyComponentSeen = false;

  function fiberName(fiber) {
    var t = fiber.type;
    if (typeof t === "string") return t;
    if (t && t.displayName) return t.displayName;
    if (t && t.name) return t.name;
    return "Anonymous";
  }

  function isHostFiber(fiber) {
    return typeof fiber.type === "string";
  }

  function propsOf(fiber) {
    var out = {};
    var p = fiber.memoizedProps || fiber.pendingProps;
    if (!p) return out;
    for (var k in p) {
      if (k === "children") continue;
      var v = p[k];
      if (typeof v === "function" || typeof v === "object") continue;
      out[k] = v;
    }
    return out;
  }

  function walkFiber(fiber, depth) {
    if (!fiber || depth > maxDepth) return null;
    var host = isHostFiber(fiber);
    var name = fiberName(fiber);
    if (!host) {
      anyComponentSeen = true;
      if (!isMinifiedName(name)) allMinified = false;
    }

    var node = {
      name: name,
      is_component: !host,
      props: propsOf(fiber)
    };

    if (host) {
      node.tag = name;
      var el = fiber.stateNode;
      if (el && el.getAttribute) {
        var aria = el.getAttribute("aria-label");
        if (aria) node.aria_name = aria;
        var attrs = {};
        for (var i = 0; i < el.attributes.length; i++) {
          attrs[el.attributes[i].name] = el.attributes[i].value;
        }
        node.html_attrs = attrs;
      }
    }

    var children = [];
    var child = fiber.child;
    while (child) {
      var c = walkFiber(child, depth + 1);
      if (c !== null) children.push(c);
      child = child.sibling;
    }
    node.children = children;
    return node;
  }

  var roots = findRootContainers();
  if (roots.length === 0) {
    return { found: false, tree: [], all_minified: false };
  }

  var tree = [];
  for (var r = 0; r < roots.length; r++) {
    var node = walkFiber(roots[r], 0);
    if (node !== null) tree.push(node);
  }

  return {
    found: tree.length > 0,
    tree: tree,
    all_minified: anyComponentSeen && allMinified
  };
})()`

// defaultMaxDepth is the fiber walker's default when the caller does not
// set a max depth (§4.1, §4.6).
const defaultMaxDepth = 200

// buildFiberWalkerScript prepends the globalThis.__MAX_DEPTH prelude the
// spec requires be set within the evaluated expression itself (§9
// "Global-depth smuggling"), rather than relying on any persistent global.
func buildFiberWalkerScript(maxDepth *int) string {
	depth := defaultMaxDepth
	if maxDepth != nil {
		depth = *maxDepth
	}
	return fmt.Sprintf("globalThis.__MAX_DEPTH = %d;\n%s", depth, fiberWalkerScript)
}
