package boxflow

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grindlemire/boxflow/pkg/document"
)

func TestDirty_NestedScopesSweepOnce(t *testing.T) {
	doc := document.New()
	root := addNode(t, doc, document.NoHandle, p("width", 100), p("height", 100))
	child := addNode(t, doc, root)
	grandchild := addNode(t, doc, child)

	log := &relayoutLog{}
	tree := newTestTree(t, doc, root, WithRelayoutHook(log.hook))
	log.reset()
	before := tree.Cascades()

	tree.begin()
	tree.markDirty(itemOf(t, tree, grandchild))
	tree.markDirty(itemOf(t, tree, root))

	tree.begin()
	tree.markDirty(itemOf(t, tree, child))
	tree.end()
	assert.Empty(t, log.handles, "inner scope must not sweep")

	tree.end()
	assert.Equal(t, []document.Handle{root, child, grandchild}, log.handles)
	assert.Equal(t, before+1, tree.Cascades())
}

func TestDirty_EmptyScope(t *testing.T) {
	doc := document.New()
	root := addNode(t, doc, document.NoHandle)
	tree := newTestTree(t, doc, root)
	before := tree.Cascades()

	tree.begin()
	tree.end()
	assert.Equal(t, before, tree.Cascades())
}

func TestDirty_MarkDirty(t *testing.T) {
	type tc struct {
		mark func(tree *Tree, root, child *Item)
		want func(root, child document.Handle) []document.Handle
	}

	tests := map[string]tc{
		"same item twice is laid out once": {
			mark: func(tree *Tree, root, child *Item) {
				tree.markDirty(child)
				tree.markDirty(child)
			},
			want: func(_, child document.Handle) []document.Handle { return []document.Handle{child} },
		},
		"detached item is ignored": {
			mark: func(tree *Tree, root, child *Item) {
				tree.detach(child.Handle())
				tree.markDirty(child)
			},
			want: func(document.Handle, document.Handle) []document.Handle { return nil },
		},
		"parents before children regardless of marking order": {
			mark: func(tree *Tree, root, child *Item) {
				tree.markDirty(child)
				tree.markDirty(root)
			},
			want: func(root, child document.Handle) []document.Handle { return []document.Handle{root, child} },
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			doc := document.New()
			root := addNode(t, doc, document.NoHandle)
			child := addNode(t, doc, root)

			log := &relayoutLog{}
			tree := newTestTree(t, doc, root, WithRelayoutHook(log.hook))
			log.reset()

			tree.begin()
			tt.mark(tree, tree.Root(), itemOf(t, tree, child))
			tree.end()
			assert.Equal(t, tt.want(root, child), log.handles)
		})
	}
}

func TestDirty_ItemsDoneInACascadeAreNotQueuedAgain(t *testing.T) {
	doc := document.New()
	root := addNode(t, doc, document.NoHandle)
	child := addNode(t, doc, root)

	var tree *Tree
	log := &relayoutLog{}
	requeue := func(it *Item) {
		log.hook(it)
		if tree != nil {
			tree.markDirty(tree.Root())
		}
	}
	tree = newTestTree(t, doc, root, WithRelayoutHook(requeue))
	log.reset()

	tree.Relayout()
	assert.Equal(t, []document.Handle{root, child}, log.handles)
}

func boundsByNode(tree *Tree) map[document.Handle]Rect {
	out := make(map[document.Handle]Rect)
	tree.Walk(func(it *Item) bool {
		out[it.Handle()] = it.Bounds()
		return true
	})
	return out
}

func TestDirty_NestedContainersMatchAFreshBuild(t *testing.T) {
	type write struct {
		node  string
		key   string
		value any
	}
	type tc struct {
		writes []write
	}

	tests := map[string]tc{
		"padding on the outer container": {
			writes: []write{{node: "mid", key: "padding", value: 5}},
		},
		"border on the outer container": {
			writes: []write{{node: "mid", key: "border-width", value: "1 2 3 4"}},
		},
		"margin on the outer container": {
			writes: []write{{node: "mid", key: "margin", value: 6}},
		},
		"padding on the inner container": {
			writes: []write{{node: "inner", key: "padding", value: 7}},
		},
		"border on the inner container": {
			writes: []write{{node: "inner", key: "border-width", value: "2 0"}},
		},
		"padding set and cleared": {
			writes: []write{
				{node: "inner", key: "padding", value: 7},
				{node: "mid", key: "padding", value: 3},
				{node: "inner", key: "padding", value: 0},
			},
		},
		"chrome on both levels": {
			writes: []write{
				{node: "mid", key: "border-width", value: 2},
				{node: "inner", key: "padding", value: "4 8"},
				{node: "leaf", key: "height", value: 35},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			doc := document.New()
			root := addNode(t, doc, document.NoHandle)
			mid := addNode(t, doc, root, p("flex-direction", "row"), p("padding", 2))
			inner := addNode(t, doc, mid)
			leaf := addNode(t, doc, inner, p("width", 30), p("height", 20))
			addNode(t, doc, inner, p("width", 40), p("height", 10))
			addNode(t, doc, mid, p("width", 50))
			addNode(t, doc, root, p("height", 15))
			nodes := map[string]document.Handle{"mid": mid, "inner": inner, "leaf": leaf}

			live := newTestTree(t, doc, root)
			live.Root().SetSize(300, 200)
			for _, w := range tt.writes {
				set(t, doc, nodes[w.node], w.key, w.value)
			}
			got := boundsByNode(live)
			live.Close()

			fresh := newTestTree(t, doc, root)
			fresh.Root().SetSize(300, 200)
			assert.Equal(t, boundsByNode(fresh), got, "live tree differs from a fresh build")
		})
	}
}
