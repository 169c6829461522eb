package ir

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Operation is a constructed operation. Instances are created through an
// OperationBuilder only and are immutable afterwards.
type Operation struct {
	name       string
	location   Location
	results    []Value
	operands   []Value
	regions    []*Region
	successors []*Block
	attributes []NamedAttribute
}

func (o *Operation) Name() string { return o.name }

func (o *Operation) Location() Location { return o.location }

func (o *Operation) NumResults() int { return len(o.results) }

func (o *Operation) Result(i int) Value { return o.results[i] }

func (o *Operation) Results() []Value { return o.results }

func (o *Operation) NumOperands() int { return len(o.operands) }

func (o *Operation) Operand(i int) Value { return o.operands[i] }

func (o *Operation) Operands() []Value { return o.operands }

func (o *Operation) NumRegions() int { return len(o.regions) }

func (o *Operation) Region(i int) *Region { return o.regions[i] }

func (o *Operation) Regions() []*Region { return o.regions }

func (o *Operation) NumSuccessors() int { return len(o.successors) }

func (o *Operation) Successor(i int) *Block { return o.successors[i] }

func (o *Operation) Successors() []*Block { return o.successors }

// Attribute looks up an attribute by name. The second return reports
// presence; absent attributes yield the zero Attribute.
func (o *Operation) Attribute(name string) (Attribute, bool) {
	for _, a := range o.attributes {
		if a.Name == name {
			return a.Attribute, true
		}
	}
	return Attribute{}, false
}

// Attributes returns the attribute set in insertion order.
func (o *Operation) Attributes() []NamedAttribute { return o.attributes }

// Verify checks the structural invariants of the operation: a qualified
// "dialect.op" name and uniquely named attributes.
func (o *Operation) Verify() error {
	if !isQualifiedName(o.name) {
		return errors.Newf("operation name %q is not of the form dialect.op", o.name)
	}
	seen := map[string]bool{}
	for _, a := range o.attributes {
		if seen[a.Name] {
			return errors.Newf("operation %s: duplicate attribute %q", o.name, a.Name)
		}
		seen[a.Name] = true
	}
	return nil
}

func isQualifiedName(name string) bool {
	dialect, op, ok := strings.Cut(name, ".")
	return ok && dialect != "" && op != ""
}
