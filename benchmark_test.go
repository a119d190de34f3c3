package boxflow

import (
	"testing"

	"github.com/grindlemire/boxflow/pkg/document"
)

// buildDocument creates a document tree with the given branching factor and
// depth. Directions alternate at each level and every child grows.
// Total nodes = (branching^(depth+1) - 1) / (branching - 1)
func buildDocument(branching, depth int) (*document.Document, document.Handle) {
	doc := document.New()
	root := doc.CreateNode("Window")
	doc.Set(root, "width", document.Int(1000))
	doc.Set(root, "height", document.Int(1000))
	doc.Set(root, "flex-direction", document.String("row"))

	addChildrenRecursive(doc, root, "row", branching, depth-1)
	return doc, root
}

func addChildrenRecursive(doc *document.Document, parent document.Handle, dir string, branching, remainingDepth int) {
	if remainingDepth < 0 {
		return
	}
	childDir := "column"
	if dir == "column" {
		childDir = "row"
	}
	for range branching {
		child := doc.CreateNode("Component")
		doc.Set(child, "flex-grow", document.Int(1))
		doc.Set(child, "flex-direction", document.String(childDir))
		doc.Append(parent, child)
		addChildrenRecursive(doc, child, childDir, branching, remainingDepth-1)
	}
}

// buildLinearDocument creates a root with n fixed-size children.
func buildLinearDocument(n int) (*document.Document, document.Handle) {
	doc := document.New()
	root := doc.CreateNode("Window")
	doc.Set(root, "width", document.Int(10000))
	doc.Set(root, "height", document.Int(1000))
	doc.Set(root, "flex-direction", document.String("row"))

	for range n {
		child := doc.CreateNode("Component")
		doc.Set(child, "width", document.Int(10))
		doc.Set(child, "height", document.Int(100))
		doc.Append(root, child)
	}
	return doc, root
}

func firstLeaf(doc *document.Document, h document.Handle) document.Handle {
	for doc.NumChildren(h) > 0 {
		h = doc.Children(h)[0]
	}
	return h
}

func newBenchTree(b *testing.B, doc *document.Document, root document.Handle) *Tree {
	b.Helper()
	tree, err := NewTree(doc, root)
	if err != nil {
		b.Fatalf("NewTree: %v", err)
	}
	b.Cleanup(tree.Close)
	return tree
}

// BenchmarkNewTree measures building items for ~121 nodes and laying them
// out for the first time.
func BenchmarkNewTree(b *testing.B) {
	doc, root := buildDocument(3, 4)

	b.ReportAllocs()
	for b.Loop() {
		tree, err := NewTree(doc, root)
		if err != nil {
			b.Fatal(err)
		}
		tree.Close()
	}
}

// BenchmarkRelayout_100Nodes forces a full relayout of ~121 nodes.
func BenchmarkRelayout_100Nodes(b *testing.B) {
	doc, root := buildDocument(3, 4)
	tree := newBenchTree(b, doc, root)
	b.Logf("Item count: %d", tree.Len())

	for b.Loop() {
		tree.Relayout()
	}
}

// BenchmarkRelayout_1000Nodes forces a full relayout of a flat row of 1000
// items.
func BenchmarkRelayout_1000Nodes(b *testing.B) {
	doc, root := buildLinearDocument(999)
	tree := newBenchTree(b, doc, root)

	for b.Loop() {
		tree.Relayout()
	}
}

// BenchmarkPropertyChange_Leaf measures the cascade that follows a single
// leaf property write. The leaf alternates between two sizes so every write
// is a real change.
func BenchmarkPropertyChange_Leaf(b *testing.B) {
	doc, root := buildDocument(3, 4)
	newBenchTree(b, doc, root)
	leaf := firstLeaf(doc, root)

	sizes := [2]document.Var{document.Int(10), document.Int(20)}
	i := 0
	b.ReportAllocs()
	for b.Loop() {
		doc.Set(leaf, "min-width", sizes[i%2])
		i++
	}
}

// BenchmarkPropertyChange_RootVsLeaf compares a write at the top of the tree
// with one at the bottom.
func BenchmarkPropertyChange_RootVsLeaf(b *testing.B) {
	doc, root := buildDocument(3, 4)
	newBenchTree(b, doc, root)
	leaf := firstLeaf(doc, root)

	b.Run("root", func(b *testing.B) {
		i := 0
		for b.Loop() {
			doc.Set(root, "padding", document.Int(i%2))
			i++
		}
	})

	b.Run("leaf", func(b *testing.B) {
		i := 0
		for b.Loop() {
			doc.Set(leaf, "padding", document.Int(i%2))
			i++
		}
	})
}
