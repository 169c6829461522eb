package generator

import "github.com/JPGoodale/melior/internal/schema"

// Pure field classification: everything the other phases need to know about
// a field follows from its kind and cardinality tags.

func isRequired(f schema.Field) bool { return f.Cardinality == schema.Required }

func isOptional(f schema.Field) bool { return f.Cardinality == schema.Optional }

func isVariadic(f schema.Field) bool { return f.Cardinality == schema.Variadic }

// kindPlumbing maps a field category onto the host IR surface: the setter
// parameter type, the sequence-accepting appender, and the read methods.
type kindPlumbing struct {
	paramType  string // element type of setter parameters
	addCall    string
	setCall    string // keyed last-wins variant for singular optional fields
	elemType   string // accessor element type
	zeroExpr   string // absent representation
	item       string
	num        string
	list       string
	noun       string
	nounPlural string
}

var plumbing = map[schema.FieldKind]kindPlumbing{
	schema.KindResult: {
		paramType:  "ir.Type",
		addCall:    "AddResults",
		setCall:    "SetResult",
		elemType:   "ir.Value",
		zeroExpr:   "ir.Value{}",
		item:       "Result",
		num:        "NumResults",
		list:       "Results",
		noun:       "result",
		nounPlural: "results",
	},
	schema.KindOperand: {
		paramType:  "ir.Value",
		addCall:    "AddOperands",
		setCall:    "SetOperand",
		elemType:   "ir.Value",
		zeroExpr:   "ir.Value{}",
		item:       "Operand",
		num:        "NumOperands",
		list:       "Operands",
		noun:       "operand",
		nounPlural: "operands",
	},
	schema.KindRegion: {
		paramType:  "*ir.Region",
		addCall:    "AddRegions",
		setCall:    "SetRegion",
		elemType:   "*ir.Region",
		zeroExpr:   "nil",
		item:       "Region",
		num:        "NumRegions",
		list:       "Regions",
		noun:       "region",
		nounPlural: "regions",
	},
	schema.KindSuccessor: {
		paramType:  "*ir.Block",
		addCall:    "AddSuccessors",
		setCall:    "SetSuccessor",
		elemType:   "*ir.Block",
		zeroExpr:   "nil",
		item:       "Successor",
		num:        "NumSuccessors",
		list:       "Successors",
		noun:       "successor",
		nounPlural: "successors",
	},
	schema.KindAttribute: {
		paramType: "ir.Attribute",
		addCall:   "AddAttributes",
		setCall:   "SetAttribute",
		noun:      "attribute",
	},
}

// setterParamType returns the setter parameter type for a field; variadic
// fields take a Go variadic parameter, singular fields a single value.
func setterParamType(f schema.Field) string {
	p := plumbing[f.Kind]
	if isVariadic(f) {
		return "..." + p.paramType
	}
	return p.paramType
}

// setterCall returns the host method a setter invokes. Required and variadic
// fields append; a singular optional field may be set repeatedly, so it goes
// through the keyed replacer and the last call wins.
func setterCall(f schema.Field) string {
	if isOptional(f) {
		return plumbing[f.Kind].setCall
	}
	return plumbing[f.Kind].addCall
}

// setterAddArg returns the argument expression handed to the host call. The
// appenders are sequence-accepting, so singular fields pass a singleton and
// variadic fields splat their parameter. Keyed replacers take the descriptor
// field name first, and attributes are wrapped with theirs.
func setterAddArg(f schema.Field) string {
	name := schema.ParamName(f.Name)
	if f.Kind == schema.KindAttribute {
		return `ir.NamedAttribute{Name: "` + f.Name + `", Attribute: ` + name + `}`
	}
	if isVariadic(f) {
		return name + "..."
	}
	if isOptional(f) {
		return `"` + f.Name + `", ` + name
	}
	return name
}
