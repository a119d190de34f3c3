package docfile

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/grindlemire/boxflow/pkg/document"
)

func decodeYAML(data []byte) (*Node, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, ErrEmpty
	}
	return yamlNode(root.Content[0])
}

// yamlNode walks the mapping by hand; decoding into a Go map would lose the
// property order.
func yamlNode(y *yaml.Node) (*Node, error) {
	y = resolveAlias(y)
	if y.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: node must be a mapping", y.Line)
	}

	n := &Node{}
	for i := 0; i+1 < len(y.Content); i += 2 {
		key, val := y.Content[i], resolveAlias(y.Content[i+1])
		switch key.Value {
		case "kind":
			v, err := yamlScalar(key.Value, val)
			if err != nil {
				return nil, err
			}
			n.Kind = v.String()
		case "id":
			v, err := yamlScalar(key.Value, val)
			if err != nil {
				return nil, err
			}
			n.set("id", v)
		case "props":
			if val.Kind != yaml.MappingNode {
				return nil, fmt.Errorf("line %d: props must be a mapping", val.Line)
			}
			for j := 0; j+1 < len(val.Content); j += 2 {
				pk := val.Content[j].Value
				v, err := yamlScalar(pk, resolveAlias(val.Content[j+1]))
				if err != nil {
					return nil, err
				}
				n.set(pk, v)
			}
		case "children":
			if val.Kind != yaml.SequenceNode {
				return nil, fmt.Errorf("line %d: children must be a list", val.Line)
			}
			for _, c := range val.Content {
				child, err := yamlNode(c)
				if err != nil {
					return nil, err
				}
				n.Children = append(n.Children, child)
			}
		default:
			return nil, fmt.Errorf("line %d: %w %q", key.Line, ErrUnknownField, key.Value)
		}
	}
	return n, nil
}

func yamlScalar(key string, y *yaml.Node) (document.Var, error) {
	if y.Kind != yaml.ScalarNode {
		return document.Var{}, fmt.Errorf("line %d: %s: %w", y.Line, key, ErrNotScalar)
	}
	var v any
	if err := y.Decode(&v); err != nil {
		return document.Var{}, fmt.Errorf("line %d: %s: %w", y.Line, key, err)
	}
	return document.Of(v), nil
}

func resolveAlias(y *yaml.Node) *yaml.Node {
	for y.Kind == yaml.AliasNode && y.Alias != nil {
		y = y.Alias
	}
	return y
}
