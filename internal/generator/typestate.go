package generator

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/JPGoodale/melior/internal/schema"
)

// The typestate of a builder is the set of required fields already supplied.
// Go cannot scope a method to one instantiation of a generic type, so every
// state is materialized as its own struct type: the all-unset entry state is
// the exported <Op>Builder, and each further state is an unexported sibling
// named after the fields it holds. Transition methods exist only on states
// missing their field, and Build only on the all-set state, which makes
// omitted and repeated required fields unrepresentable at compile time.

// maxRequiredFields caps the state enumeration; the lattice has 2^k states.
const maxRequiredFields = 8

// state is a bitmask over the required fields, in declaration order.
type state uint16

func (s state) has(i int) bool { return s&(1<<i) != 0 }

func (s state) with(i int) state { return s | 1<<i }

type typeState struct {
	fields   []schema.Field
	entry    string // entry state type name
	fullName string // qualified operation name
}

// newTypeState enumerates the required fields of an operation (results
// excluded when their types are inferred) and fixes the state naming.
func newTypeState(op *schema.Operation, typeName string) (*typeState, error) {
	fields := op.RequiredFields()
	if len(fields) > maxRequiredFields {
		return nil, errors.Newf(
			"operation %s has %d required fields; the builder state space is 2^k and generation is capped at %d",
			op.FullName(), len(fields), maxRequiredFields,
		)
	}
	return &typeState{fields: fields, entry: typeName + "Builder", fullName: op.FullName()}, nil
}

func (t *typeState) count() int { return len(t.fields) }

// allSet is the only state carrying Build.
func (t *typeState) allSet() state { return state(1<<len(t.fields)) - 1 }

// states returns every state in ascending bitmask order. The order is only
// significant for deterministic emission.
func (t *typeState) states() []state {
	all := make([]state, 0, 1<<len(t.fields))
	for s := state(0); s <= t.allSet(); s++ {
		all = append(all, s)
	}
	return all
}

// name returns the state's type name. The entry state keeps the exported
// builder name; any other state appends the names of its set fields.
func (t *typeState) name(s state) string {
	if s == 0 {
		return t.entry
	}
	var b strings.Builder
	b.WriteString(strings.ToLower(t.entry[:1]))
	b.WriteString(t.entry[1:])
	for i, f := range t.fields {
		if s.has(i) {
			b.WriteString(schema.ExportedName(f.Name))
		}
	}
	return b.String()
}

// setNames lists the names of the fields a state holds, in order.
func (t *typeState) setNames(s state) []string {
	var names []string
	for i, f := range t.fields {
		if s.has(i) {
			names = append(names, f.Name)
		}
	}
	return names
}

// fieldNames lists every required field name in declaration order.
func (t *typeState) fieldNames() []string {
	names := make([]string, len(t.fields))
	for i, f := range t.fields {
		names[i] = f.Name
	}
	return names
}
