package codec

import (
	"fmt"
	"io"
	"math/big"
	"slices"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"

	"github.com/hasbyte1/go-utils/dot"
)

type hclCodec struct{}

func (hclCodec) Name() string { return "hcl" }

// Decode reads HCL native syntax. Attributes become leaves and blocks become
// nested maps keyed by block type then labels, so
//
//	service "web" { port = 80 }
//
// decodes to service → web → port. Expressions are evaluated without
// variables or functions.
func (hclCodec) Decode(r io.Reader, _ *dot.Flattener) (*dot.Map, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("codec: read HCL: %w", err)
	}
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, "input.hcl")
	if diags.HasErrors() {
		return nil, fmt.Errorf("codec: parse HCL: %w", diags)
	}
	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("codec: parse HCL: unexpected body %T", file.Body)
	}
	out := dot.NewMap()
	if err := decodeBody(out, body); err != nil {
		return nil, err
	}
	return out, nil
}

func (hclCodec) Encode(io.Writer, *dot.Map) error {
	return fmt.Errorf("%w: hcl", ErrReadOnly)
}

type bodyItem struct {
	start int
	attr  *hclsyntax.Attribute
	block *hclsyntax.Block
}

// decodeBody writes body's attributes and blocks into dst in source order.
func decodeBody(dst *dot.Map, body *hclsyntax.Body) error {
	items := make([]bodyItem, 0, len(body.Attributes)+len(body.Blocks))
	for _, a := range body.Attributes {
		items = append(items, bodyItem{start: a.SrcRange.Start.Byte, attr: a})
	}
	for _, b := range body.Blocks {
		items = append(items, bodyItem{start: b.TypeRange.Start.Byte, block: b})
	}
	slices.SortFunc(items, func(a, b bodyItem) int { return a.start - b.start })

	for _, it := range items {
		if it.attr != nil {
			val, diags := it.attr.Expr.Value(nil)
			if diags.HasErrors() {
				return fmt.Errorf("codec: evaluate HCL attribute %q: %w", it.attr.Name, diags)
			}
			native, err := ctyToNative(val)
			if err != nil {
				return fmt.Errorf("codec: HCL attribute %q: %w", it.attr.Name, err)
			}
			dst.Set(it.attr.Name, native)
			continue
		}
		target := dst
		for _, key := range append([]string{it.block.Type}, it.block.Labels...) {
			child, err := childMap(target, key, it.block.DefRange())
			if err != nil {
				return err
			}
			target = child
		}
		if err := decodeBody(target, it.block.Body); err != nil {
			return err
		}
	}
	return nil
}

func childMap(m *dot.Map, key string, rng hcl.Range) (*dot.Map, error) {
	existing, ok := m.Get(key)
	if !ok {
		child := dot.NewMap()
		m.Set(key, child)
		return child, nil
	}
	child, isMap := existing.(*dot.Map)
	if !isMap {
		return nil, fmt.Errorf("codec: HCL block at %s: %q is already an attribute", rng, key)
	}
	return child, nil
}

// ctyToNative converts a cty.Value to plain Go values: objects and maps
// become *dot.Map with sorted keys, lists, sets and tuples []any, whole
// numbers int64 and other numbers float64.
func ctyToNative(v cty.Value) (any, error) {
	if v.IsNull() || !v.IsKnown() {
		return nil, nil
	}
	ty := v.Type()
	switch {
	case ty == cty.String:
		return v.AsString(), nil
	case ty == cty.Number:
		bf := v.AsBigFloat()
		if bf.IsInt() {
			if i, acc := bf.Int64(); acc == big.Exact {
				return i, nil
			}
		}
		f, _ := bf.Float64()
		return f, nil
	case ty == cty.Bool:
		return v.True(), nil
	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		out := make([]any, 0, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			native, err := ctyToNative(elem)
			if err != nil {
				return nil, err
			}
			out = append(out, native)
		}
		return out, nil
	case ty.IsObjectType() || ty.IsMapType():
		out := dot.NewMap()
		for it := v.ElementIterator(); it.Next(); {
			key, elem := it.Element()
			native, err := ctyToNative(elem)
			if err != nil {
				return nil, fmt.Errorf("in attribute %q: %w", key.AsString(), err)
			}
			out.Set(key.AsString(), native)
		}
		return out, nil
	}
	return nil, fmt.Errorf("unsupported cty type %s", ty.FriendlyName())
}
