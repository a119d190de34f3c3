// Package docfile reads property documents from YAML, JSON and TOML files
// and writes the geometry a Tree computes for them.
//
// Every format describes the same node shape:
//
//	kind: Window          # optional, defaults to Component
//	id: root              # optional, stored as the "id" property
//	props:
//	  display: flex
//	  width: 400
//	children:
//	  - props: {flex-grow: 1}
//
// Property values must be scalars. YAML and JSON keep the property order of
// the file; TOML properties are applied in key order.
package docfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/grindlemire/boxflow/pkg/document"
)

// Format names a document file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// DefaultKind is the node kind used when a file node names none.
const DefaultKind = "Component"

var (
	// ErrUnknownFormat is returned for a file extension or format name that
	// no decoder handles.
	ErrUnknownFormat = errors.New("unknown document format")
	// ErrUnknownField is returned for a node field other than kind, id,
	// props and children.
	ErrUnknownField = errors.New("unknown node field")
	// ErrNotScalar is returned for a property value that is a list or a map.
	ErrNotScalar = errors.New("property value is not a scalar")
	// ErrEmpty is returned for a file holding no node at all.
	ErrEmpty = errors.New("empty document")
)

// Prop is one property of a file node.
type Prop struct {
	Key   string
	Value document.Var
}

// Node is a decoded document node and its subtree.
type Node struct {
	Kind     string
	Props    []Prop
	Children []*Node
}

// Get returns the value stored under key.
func (n *Node) Get(key string) (document.Var, bool) {
	for _, p := range n.Props {
		if p.Key == key {
			return p.Value, true
		}
	}
	return document.Var{}, false
}

func (n *Node) set(key string, v document.Var) {
	if v.IsNone() {
		return
	}
	for i := range n.Props {
		if n.Props[i].Key == key {
			n.Props[i].Value = v
			return
		}
	}
	n.Props = append(n.Props, Prop{Key: key, Value: v})
}

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Decode parses data in the given format.
func Decode(data []byte, f Format) (*Node, error) {
	switch f {
	case FormatYAML:
		return decodeYAML(data)
	case FormatJSON:
		return decodeJSON(data)
	case FormatTOML:
		return decodeTOML(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// Load reads and decodes the file at path, picking the format from its
// extension.
func Load(path string) (*Node, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	n, err := Decode(data, f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return n, nil
}

// BuildOption configures Build.
type BuildOption func(*builder)

// WithIDs sets the generator used for nodes that carry no id. The default
// generates random UUIDs.
func WithIDs(next func() string) BuildOption {
	return func(b *builder) {
		b.nextID = next
	}
}

type builder struct {
	doc    *document.Document
	nextID func() string
}

// Build creates n and its subtree in doc and returns the handle of n. Every
// created node has an "id" property so its geometry can be reported.
func Build(doc *document.Document, n *Node, opts ...BuildOption) (document.Handle, error) {
	if n == nil {
		return document.NoHandle, ErrEmpty
	}
	b := &builder{doc: doc, nextID: uuid.NewString}
	for _, opt := range opts {
		opt(b)
	}
	return b.build(n)
}

func (b *builder) build(n *Node) (document.Handle, error) {
	kind := n.Kind
	if kind == "" {
		kind = DefaultKind
	}
	h := b.doc.CreateNode(kind)

	if _, ok := n.Get("id"); !ok {
		if err := b.doc.Set(h, "id", document.String(b.nextID())); err != nil {
			return document.NoHandle, err
		}
	}
	for _, p := range n.Props {
		if err := b.doc.Set(h, p.Key, p.Value); err != nil {
			return document.NoHandle, fmt.Errorf("failed to set %s: %w", p.Key, err)
		}
	}

	for _, c := range n.Children {
		ch, err := b.build(c)
		if err != nil {
			return document.NoHandle, err
		}
		if err := b.doc.Append(h, ch); err != nil {
			return document.NoHandle, err
		}
	}
	return h, nil
}
