package docfile

import (
	"errors"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/grindlemire/boxflow/pkg/document"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// jsonDecoder streams the input so properties keep their order.
type jsonDecoder struct {
	err error
}

func decodeJSON(data []byte) (*Node, error) {
	iter := jsoniter.ParseBytes(json, data)
	if iter.WhatIsNext() == jsoniter.InvalidValue {
		if iter.Error == nil || errors.Is(iter.Error, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("parse json: %w", iter.Error)
	}

	d := &jsonDecoder{}
	n := d.node(iter)
	if iter.Error != nil {
		return nil, fmt.Errorf("parse json: %w", iter.Error)
	}
	if d.err != nil {
		return nil, d.err
	}
	return n, nil
}

func (d *jsonDecoder) fail(err error) bool {
	if d.err == nil {
		d.err = err
	}
	return false
}

func (d *jsonDecoder) node(iter *jsoniter.Iterator) *Node {
	if iter.WhatIsNext() != jsoniter.ObjectValue {
		d.fail(errors.New("node must be an object"))
		iter.Skip()
		return nil
	}

	n := &Node{}
	iter.ReadObjectCB(func(it *jsoniter.Iterator, field string) bool {
		switch field {
		case "kind":
			v, ok := d.scalar(it, field)
			if !ok {
				return false
			}
			n.Kind = v.String()
		case "id":
			v, ok := d.scalar(it, field)
			if !ok {
				return false
			}
			n.set("id", v)
		case "props":
			if it.WhatIsNext() != jsoniter.ObjectValue {
				return d.fail(errors.New("props must be an object"))
			}
			it.ReadObjectCB(func(it *jsoniter.Iterator, key string) bool {
				v, ok := d.scalar(it, key)
				if ok {
					n.set(key, v)
				}
				return ok
			})
		case "children":
			if it.WhatIsNext() != jsoniter.ArrayValue {
				return d.fail(errors.New("children must be an array"))
			}
			it.ReadArrayCB(func(it *jsoniter.Iterator) bool {
				child := d.node(it)
				if child == nil {
					return false
				}
				n.Children = append(n.Children, child)
				return true
			})
		default:
			return d.fail(fmt.Errorf("%w %q", ErrUnknownField, field))
		}
		return d.err == nil && it.Error == nil
	})
	return n
}

func (d *jsonDecoder) scalar(it *jsoniter.Iterator, key string) (document.Var, bool) {
	switch it.WhatIsNext() {
	case jsoniter.StringValue:
		return document.String(it.ReadString()), true
	case jsoniter.NumberValue:
		return document.Number(it.ReadFloat64()), true
	case jsoniter.BoolValue:
		return document.Bool(it.ReadBool()), true
	case jsoniter.NilValue:
		it.ReadNil()
		return document.Var{}, true
	default:
		return document.Var{}, d.fail(fmt.Errorf("%s: %w", key, ErrNotScalar))
	}
}
