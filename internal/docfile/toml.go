package docfile

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/grindlemire/boxflow/pkg/document"
)

func decodeTOML(data []byte) (*Node, error) {
	if strings.TrimSpace(string(data)) == "" {
		return nil, ErrEmpty
	}
	var raw map[string]any
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, fmt.Errorf("parse toml: %w", err)
	}
	return tomlNode(raw)
}

func tomlNode(raw map[string]any) (*Node, error) {
	n := &Node{}
	for _, field := range slices.Sorted(maps.Keys(raw)) {
		val := raw[field]
		switch field {
		case "kind":
			v, err := tomlScalar(field, val)
			if err != nil {
				return nil, err
			}
			n.Kind = v.String()
		case "id":
			v, err := tomlScalar(field, val)
			if err != nil {
				return nil, err
			}
			n.set("id", v)
		case "props":
			props, ok := val.(map[string]any)
			if !ok {
				return nil, errors.New("props must be a table")
			}
			for _, key := range slices.Sorted(maps.Keys(props)) {
				v, err := tomlScalar(key, props[key])
				if err != nil {
					return nil, err
				}
				n.set(key, v)
			}
		case "children":
			tables, err := tomlTables(val)
			if err != nil {
				return nil, err
			}
			for _, t := range tables {
				child, err := tomlNode(t)
				if err != nil {
					return nil, err
				}
				n.Children = append(n.Children, child)
			}
		default:
			return nil, fmt.Errorf("%w %q", ErrUnknownField, field)
		}
	}
	return n, nil
}

func tomlTables(val any) ([]map[string]any, error) {
	switch x := val.(type) {
	case []map[string]any:
		return x, nil
	case []any:
		tables := make([]map[string]any, 0, len(x))
		for _, e := range x {
			t, ok := e.(map[string]any)
			if !ok {
				return nil, errors.New("children must be an array of tables")
			}
			tables = append(tables, t)
		}
		return tables, nil
	default:
		return nil, errors.New("children must be an array of tables")
	}
}

func tomlScalar(key string, val any) (document.Var, error) {
	switch val.(type) {
	case map[string]any, []any, []map[string]any:
		return document.Var{}, fmt.Errorf("%s: %w", key, ErrNotScalar)
	}
	return document.Of(val), nil
}
