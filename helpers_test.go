package boxflow

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/grindlemire/boxflow/pkg/document"
)

type prop struct {
	key   string
	value document.Var
}

func p(key string, v any) prop {
	return prop{key: key, value: document.Of(v)}
}

// addNode creates a node with props and appends it to parent unless parent
// is NoHandle.
func addNode(t *testing.T, doc *document.Document, parent document.Handle, props ...prop) document.Handle {
	t.Helper()
	h := doc.CreateNode("Component")
	for _, pr := range props {
		require.NoError(t, doc.Set(h, pr.key, pr.value))
	}
	if parent != document.NoHandle {
		require.NoError(t, doc.Append(parent, h))
	}
	return h
}

func set(t *testing.T, doc *document.Document, h document.Handle, key string, v any) {
	t.Helper()
	require.NoError(t, doc.Set(h, key, document.Of(v)))
}

func newTestTree(t *testing.T, doc *document.Document, root document.Handle, opts ...TreeOption) *Tree {
	t.Helper()
	opts = append([]TreeOption{WithLogger(zaptest.NewLogger(t))}, opts...)
	tree, err := NewTree(doc, root, opts...)
	require.NoError(t, err)
	t.Cleanup(tree.Close)
	return tree
}

func itemOf(t *testing.T, tree *Tree, h document.Handle) *Item {
	t.Helper()
	it, ok := tree.Item(h)
	require.True(t, ok, "no item for node %d", h)
	return it
}
