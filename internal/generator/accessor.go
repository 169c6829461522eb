package generator

import (
	"fmt"

	"github.com/JPGoodale/melior/internal/schema"
)

// Accessors read fields back from a constructed operation; they have no
// typestate concerns. Positional categories index from the front up to the
// variadic field (if any) and from the back behind it, so the variadic slice
// is whatever remains between the fixed fields.

func buildAccessors(op *schema.Operation, typeName string) []accessorModel {
	var out []accessorModel
	for _, fields := range [][]schema.Field{op.Results, op.Operands, op.Regions, op.Successors} {
		out = append(out, positionalAccessors(op, typeName, fields)...)
	}
	for _, f := range op.Attributes {
		out = append(out, attributeAccessor(op, typeName, f))
	}
	return out
}

func positionalAccessors(op *schema.Operation, typeName string, fields []schema.Field) []accessorModel {
	variadicAt := -1
	for i, f := range fields {
		if isVariadic(f) {
			variadicAt = i
		}
	}

	var out []accessorModel
	for i, f := range fields {
		p := plumbing[f.Kind]
		m := accessorModel{
			Op:       typeName,
			Method:   schema.ExportedName(f.Name),
			Name:     f.Name,
			ElemType: p.elemType,
			ZeroExpr: p.zeroExpr,
			Item:     p.item,
			Num:      p.num,
			FullName: op.FullName(),
		}
		switch {
		case isVariadic(f):
			m.Kind = accessorVariadic
			m.SliceFn = sliceExpr(p, i, len(fields)-i-1)
			m.Doc = fieldDoc(fmt.Sprintf("%s returns the `%s` %s.", m.Method, f.Name, p.nounPlural), f)
		case variadicAt == -1 || i < variadicAt:
			m.Index = i
			if isOptional(f) {
				m.Kind = accessorOptional
				m.Doc = fieldDoc(fmt.Sprintf("%s returns the `%s` %s if present.", m.Method, f.Name, p.noun), f)
			} else {
				m.Kind = accessorValue
				m.Doc = fieldDoc(fmt.Sprintf("%s returns the `%s` %s.", m.Method, f.Name, p.noun), f)
			}
		default:
			// Fixed field behind the variadic one: indexed from the back.
			m.Back = len(fields) - i
			if isOptional(f) {
				m.Kind = accessorOptionalBack
				m.Doc = fieldDoc(fmt.Sprintf("%s returns the `%s` %s if present.", m.Method, f.Name, p.noun), f)
			} else {
				m.Kind = accessorValueBack
				m.Doc = fieldDoc(fmt.Sprintf("%s returns the `%s` %s.", m.Method, f.Name, p.noun), f)
			}
		}
		out = append(out, m)
	}
	return out
}

// sliceExpr renders the variadic accessor's slice of the category list,
// bounded by the fixed field counts on each side.
func sliceExpr(p kindPlumbing, lead, trail int) string {
	list := "op.operation." + p.list + "()"
	count := "op.operation." + p.num + "()"
	switch {
	case lead == 0 && trail == 0:
		return list
	case trail == 0:
		return fmt.Sprintf("%s[%d:]", list, lead)
	case lead == 0:
		return fmt.Sprintf("%s[:%s-%d]", list, count, trail)
	default:
		return fmt.Sprintf("%s[%d : %s-%d]", list, lead, count, trail)
	}
}

func attributeAccessor(op *schema.Operation, typeName string, f schema.Field) accessorModel {
	m := accessorModel{
		Op:       typeName,
		Method:   schema.ExportedName(f.Name),
		Name:     f.Name,
		FullName: op.FullName(),
	}
	if isOptional(f) {
		m.Kind = accessorAttributeOptional
		m.Doc = fieldDoc(fmt.Sprintf("%s returns the `%s` attribute if present.", m.Method, f.Name), f)
	} else {
		m.Kind = accessorAttribute
		m.Doc = fieldDoc(fmt.Sprintf("%s returns the `%s` attribute.", m.Method, f.Name), f)
	}
	return m
}
