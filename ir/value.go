package ir

// Type is a value type. Types with equal names compare equal.
type Type struct {
	name string
}

func (t Type) Name() string { return t.name }

// Value is an SSA-like value: either a free value created by the caller or a
// result owned by a built operation. Values are comparable; a result read
// back from an operation equals itself on every read.
type Value struct {
	name  string
	typ   Type
	owner *Operation
	index int
}

// NewValue creates a free value, usable as an operand.
func NewValue(name string, typ Type) Value {
	return Value{name: name, typ: typ}
}

func (v Value) Name() string { return v.name }

func (v Value) Type() Type { return v.typ }

// Owner returns the operation defining this value, or nil for free values.
func (v Value) Owner() *Operation { return v.owner }
