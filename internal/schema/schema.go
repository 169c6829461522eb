// Package schema holds the in-memory model of a dialect descriptor: one
// Dialect with its Operations, each operation an ordered set of typed fields
// per category (results, operands, regions, successors, attributes) tagged
// with a cardinality. The model is built once per descriptor file and is not
// mutated afterwards.
package schema

import (
	"go/token"

	"github.com/cockroachdb/errors"
)

// Cardinality describes how many runtime items a field may hold.
type Cardinality int

const (
	Required Cardinality = iota // exactly one
	Optional                    // zero or one
	Variadic                    // zero or more
)

func (c Cardinality) String() string {
	switch c {
	case Required:
		return "required"
	case Optional:
		return "optional"
	case Variadic:
		return "variadic"
	}
	return "unknown"
}

// ParseCardinality maps a descriptor cardinality tag to its enum value. The
// empty string means required, matching ODS where plain fields are singular.
func ParseCardinality(s string) (Cardinality, error) {
	switch s {
	case "", "required":
		return Required, nil
	case "optional":
		return Optional, nil
	case "variadic":
		return Variadic, nil
	}
	return 0, errors.Newf("unknown cardinality %q", s)
}

// FieldKind is the field category within an operation.
type FieldKind int

const (
	KindResult FieldKind = iota
	KindOperand
	KindRegion
	KindSuccessor
	KindAttribute
)

func (k FieldKind) String() string {
	switch k {
	case KindResult:
		return "result"
	case KindOperand:
		return "operand"
	case KindRegion:
		return "region"
	case KindSuccessor:
		return "successor"
	case KindAttribute:
		return "attribute"
	}
	return "unknown"
}

// Field is one named slot of an operation. Type is the declared element type
// as written in the descriptor; it is carried into documentation only, since
// the host IR types operations dynamically.
type Field struct {
	Name        string
	Kind        FieldKind
	Type        string
	Cardinality Cardinality
	Doc         string
}

// Operation describes one IR operation of a dialect.
type Operation struct {
	Dialect     string
	Name        string
	Summary     string
	Description string

	Results    []Field
	Operands   []Field
	Regions    []Field
	Successors []Field
	Attributes []Field

	// InferResultTypes delegates result typing to the host IR at build time;
	// when set, result fields do not participate in the builder typestate.
	InferResultTypes bool
}

// FullName returns the qualified operation name, e.g. "arith.addi".
func (o *Operation) FullName() string {
	return o.Dialect + "." + o.Name
}

// Fields returns every field of the operation in declaration order:
// results, operands, regions, successors, attributes.
func (o *Operation) Fields() []Field {
	fields := make([]Field, 0, len(o.Results)+len(o.Operands)+len(o.Regions)+len(o.Successors)+len(o.Attributes))
	fields = append(fields, o.Results...)
	fields = append(fields, o.Operands...)
	fields = append(fields, o.Regions...)
	fields = append(fields, o.Successors...)
	fields = append(fields, o.Attributes...)
	return fields
}

// RequiredFields returns the fields that take part in the builder typestate,
// in declaration order. Results are skipped when their types are inferred.
func (o *Operation) RequiredFields() []Field {
	var fields []Field
	for _, f := range o.Fields() {
		if f.Cardinality != Required {
			continue
		}
		if f.Kind == KindResult && o.InferResultTypes {
			continue
		}
		fields = append(fields, f)
	}
	return fields
}

// Dialect is a parsed dialect descriptor.
type Dialect struct {
	Name       string
	Operations []Operation
}

// reservedMethods are method names the wrapper surface always defines; a
// field mangling to one of these would shadow it.
var reservedMethods = map[string]bool{
	"Name":      true,
	"Operation": true,
	"Build":     true,
}

// reservedParams are identifiers the generated constructors and setters bind
// themselves; a field whose parameter name matches would shadow them.
var reservedParams = map[string]bool{
	"context":  true,
	"location": true,
	"b":        true,
}

// Validate checks the structural invariants a descriptor must satisfy before
// generation. Violations are schema-author errors; generation stops at the
// first one rather than emitting a partially-correct definition.
func (d *Dialect) Validate() error {
	if !token.IsIdentifier(d.Name) {
		return errors.Newf("dialect name %q is not an identifier", d.Name)
	}
	seenOps := map[string]bool{}
	for i := range d.Operations {
		op := &d.Operations[i]
		if op.Name == "" {
			return errors.Newf("dialect %s: operation %d has no name", d.Name, i)
		}
		if seenOps[op.Name] {
			return errors.Newf("dialect %s: duplicate operation %q", d.Name, op.Name)
		}
		seenOps[op.Name] = true
		if err := validateOperation(op); err != nil {
			return errors.Wrapf(err, "operation %s", op.FullName())
		}
	}
	return nil
}

func validateOperation(op *Operation) error {
	categories := []struct {
		kind   FieldKind
		fields []Field
	}{
		{KindResult, op.Results},
		{KindOperand, op.Operands},
		{KindRegion, op.Regions},
		{KindSuccessor, op.Successors},
		{KindAttribute, op.Attributes},
	}

	seen := map[string]bool{}
	for _, c := range categories {
		variadics := 0
		for _, f := range c.fields {
			if f.Kind != c.kind {
				return errors.Newf("field %q tagged %s but listed under %s", f.Name, f.Kind, c.kind)
			}
			if !token.IsIdentifier(f.Name) {
				return errors.Newf("%s name %q is not an identifier", c.kind, f.Name)
			}
			if seen[f.Name] {
				return errors.Newf("duplicate field name %q", f.Name)
			}
			seen[f.Name] = true
			if reservedMethods[ExportedName(f.Name)] {
				return errors.Newf("field name %q collides with the generated %s method", f.Name, ExportedName(f.Name))
			}
			if reservedParams[ParamName(f.Name)] {
				return errors.Newf("field name %q collides with the generated %q parameter", f.Name, ParamName(f.Name))
			}
			if f.Cardinality == Variadic {
				if c.kind == KindAttribute {
					return errors.Newf("attribute %q cannot be variadic", f.Name)
				}
				variadics++
			}
		}
		if variadics > 1 {
			return errors.Newf("category %s has %d variadic fields, at most one is allowed", c.kind, variadics)
		}
	}
	return nil
}
