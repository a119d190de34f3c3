// Package boxflow lays out a tree of items described by a property document.
//
// Each document node becomes an Item with a box model (size, padding, border,
// margin) and a render target implementing Component. Items are containers
// for their children: display "flex" lays children out with the flexbox
// algorithm, "grid" with the grid algorithm and "block" places them at their
// x/y coordinates.
//
// A Tree mirrors one document subtree and keeps it laid out. Every property
// write is handled synchronously before the write returns:
//
//	doc := document.New()
//	root := doc.CreateNode("Component")
//	doc.Set(root, "flex-direction", document.String("row"))
//	tree, _ := boxflow.NewTree(doc, root)
//	tree.Root().SetSize(300, 100)
//
//	child := doc.CreateNode("Component")
//	doc.Append(root, child)
//	doc.Set(child, "flex-grow", document.Int(1)) // child is now 300 wide
//
// Users import this package for the public API; the geometry types are
// re-exported from the internal layout package.
package boxflow
