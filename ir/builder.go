package ir

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// OperationBuilder accumulates the parts of an operation before Build
// assembles and verifies it. Every appender accepts a sequence and returns
// the receiver for chaining. A builder is single-use and not safe for
// concurrent use.
type OperationBuilder struct {
	name        string
	location    Location
	resultTypes []Type
	operands    []Value
	regions     []*Region
	successors  []*Block
	attributes  []NamedAttribute
	inferTypes  bool

	// Positions of named slots, so Set* calls replace in place.
	resultSlots    map[string]int
	operandSlots   map[string]int
	regionSlots    map[string]int
	successorSlots map[string]int
}

// NewOperationBuilder creates a builder for the named operation.
func NewOperationBuilder(name string, location Location) *OperationBuilder {
	return &OperationBuilder{name: name, location: location}
}

// AddResults appends result types.
func (b *OperationBuilder) AddResults(types ...Type) *OperationBuilder {
	b.resultTypes = append(b.resultTypes, types...)
	return b
}

// AddOperands appends operands.
func (b *OperationBuilder) AddOperands(values ...Value) *OperationBuilder {
	b.operands = append(b.operands, values...)
	return b
}

// AddRegions appends regions.
func (b *OperationBuilder) AddRegions(regions ...*Region) *OperationBuilder {
	b.regions = append(b.regions, regions...)
	return b
}

// AddSuccessors appends successor blocks.
func (b *OperationBuilder) AddSuccessors(blocks ...*Block) *OperationBuilder {
	b.successors = append(b.successors, blocks...)
	return b
}

// AddAttributes appends named attributes. Duplicate names are rejected at
// Build time.
func (b *OperationBuilder) AddAttributes(attributes ...NamedAttribute) *OperationBuilder {
	b.attributes = append(b.attributes, attributes...)
	return b
}

// The Set* methods store one item under a name. The first call appends; a
// later call under the same name replaces the stored item at its position.
// They serve singular fields that may be set repeatedly with last-wins
// semantics, next to the appenders used for everything else.

func slotIndex(slots *map[string]int, name string, next int) (int, bool) {
	if i, ok := (*slots)[name]; ok {
		return i, true
	}
	if *slots == nil {
		*slots = map[string]int{}
	}
	(*slots)[name] = next
	return next, false
}

// SetResult sets the result type stored under name.
func (b *OperationBuilder) SetResult(name string, t Type) *OperationBuilder {
	if i, ok := slotIndex(&b.resultSlots, name, len(b.resultTypes)); ok {
		b.resultTypes[i] = t
	} else {
		b.resultTypes = append(b.resultTypes, t)
	}
	return b
}

// SetOperand sets the operand stored under name.
func (b *OperationBuilder) SetOperand(name string, value Value) *OperationBuilder {
	if i, ok := slotIndex(&b.operandSlots, name, len(b.operands)); ok {
		b.operands[i] = value
	} else {
		b.operands = append(b.operands, value)
	}
	return b
}

// SetRegion sets the region stored under name.
func (b *OperationBuilder) SetRegion(name string, region *Region) *OperationBuilder {
	if i, ok := slotIndex(&b.regionSlots, name, len(b.regions)); ok {
		b.regions[i] = region
	} else {
		b.regions = append(b.regions, region)
	}
	return b
}

// SetSuccessor sets the successor block stored under name.
func (b *OperationBuilder) SetSuccessor(name string, block *Block) *OperationBuilder {
	if i, ok := slotIndex(&b.successorSlots, name, len(b.successors)); ok {
		b.successors[i] = block
	} else {
		b.successors = append(b.successors, block)
	}
	return b
}

// SetAttribute sets the attribute, replacing any attribute already stored
// under the same name.
func (b *OperationBuilder) SetAttribute(attribute NamedAttribute) *OperationBuilder {
	for i, a := range b.attributes {
		if a.Name == attribute.Name {
			b.attributes[i] = attribute
			return b
		}
	}
	b.attributes = append(b.attributes, attribute)
	return b
}

// EnableResultTypeInference asks Build to derive result types instead of
// taking them from AddResults. The in-memory host derives a single result
// typed after the last operand.
func (b *OperationBuilder) EnableResultTypeInference() *OperationBuilder {
	b.inferTypes = true
	return b
}

// Build assembles the operation and verifies it structurally.
func (b *OperationBuilder) Build() (*Operation, error) {
	resultTypes := b.resultTypes
	if b.inferTypes {
		if len(resultTypes) > 0 {
			return nil, errors.Newf("operation %s: result types both supplied and inferred", b.name)
		}
		if len(b.operands) == 0 {
			return nil, errors.Newf("operation %s: cannot infer result types without operands", b.name)
		}
		resultTypes = []Type{b.operands[len(b.operands)-1].Type()}
	}

	op := &Operation{
		name:       b.name,
		location:   b.location,
		operands:   b.operands,
		regions:    b.regions,
		successors: b.successors,
		attributes: b.attributes,
	}
	op.results = make([]Value, len(resultTypes))
	for i, t := range resultTypes {
		op.results[i] = Value{
			name:  fmt.Sprintf("%s#%d", b.name, i),
			typ:   t,
			owner: op,
			index: i,
		}
	}

	if err := op.Verify(); err != nil {
		return nil, err
	}
	return op, nil
}
