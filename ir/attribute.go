package ir

// Attribute is a constant datum attached to an operation by name. The zero
// Attribute is the absent representation optional accessors return.
type Attribute struct {
	value string
}

// StringAttribute creates an attribute from its textual form.
func StringAttribute(value string) Attribute {
	return Attribute{value: value}
}

func (a Attribute) String() string { return a.value }

// NamedAttribute pairs an attribute with the name it is stored under.
type NamedAttribute struct {
	Name      string
	Attribute Attribute
}
