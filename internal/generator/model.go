package generator

// This file houses the render models built by the generator phases
// (classify -> typestate -> model -> render). Every fragment carries its doc
// comment pre-joined and its expressions pre-rendered so the templates stay
// purely structural.

// Config holds generation settings for the dialect generator.
type Config struct {
	Inputs  []string // dialect descriptor files (YAML or JSON)
	Output  string   // output filename, or "-" for stdout
	Package string   // output package name (empty = first dialect name)
	Header  string   // optional file prepended verbatim to the output
	Command string   // full invocation command line
	Version string   // meliorgen build version
}

// fileModel is the root template model for a generated file.
type fileModel struct {
	Version    string
	Source     string
	Command    string
	Package    string
	IRImport   string
	Operations []operationModel
}

// operationModel is one operation's worth of generated definitions, emitted
// in order: wrapper struct, name constant, Name, Operation, the narrowing
// conversion, accessors, builder states, builder constructor, transitions,
// setters, Build, default constructor.
type operationModel struct {
	TypeName  string // e.g. AddiOp
	ConstName string // e.g. AddiOpName
	FullName  string // e.g. arith.addi
	Doc       string

	Accessors   []accessorModel
	Builder     builderModel
	Constructor constructorModel
}

// accessor template dispatch names
const (
	accessorValue             = "accessor_value"
	accessorValueBack         = "accessor_value_back"
	accessorOptional          = "accessor_optional"
	accessorOptionalBack      = "accessor_optional_back"
	accessorVariadic          = "accessor_variadic"
	accessorAttribute         = "accessor_attribute"
	accessorAttributeOptional = "accessor_attribute_optional"
)

// accessorModel captures one read accessor over a constructed operation.
type accessorModel struct {
	Kind     string // template name
	Doc      string
	Op       string // receiver type
	Method   string
	Name     string // descriptor field name
	ElemType string // ir.Value, *ir.Region, ...
	ZeroExpr string // absent representation for optional kinds
	Item     string // single-item read, e.g. Operand
	Num      string // count read, e.g. NumOperands
	Index    int    // front index
	Back     int    // distance from the back for back-indexed fields
	SliceFn  string // variadic slice expression, pre-rendered
	FullName string // operation name, for panic text
}

// stateModel is one builder state type. The all-unset entry state is the
// only exported one.
type stateModel struct {
	Doc  string
	Name string
}

// methodModel is a builder method: a required-field transition (Recv and Ret
// differ) or an optional/variadic setter (Recv == Ret).
type methodModel struct {
	Doc       string
	Recv      string
	Method    string
	Param     string
	ParamType string // includes "..." for variadic setters
	Ret       string
	AddCall   string // host appender, e.g. AddOperands
	AddArg    string // pre-rendered argument expression
}

// buildModel is the Build method on the all-set state.
type buildModel struct {
	Doc      string
	Recv     string
	Op       string
	FullName string
	Infer    string // "" or ".EnableResultTypeInference()"
}

type builderModel struct {
	Entry     string // entry state type, e.g. AddiOpBuilder
	ConstName string
	FullName  string
	Op        string
	NewDoc    string

	States      []stateModel
	Transitions []methodModel
	Setters     []methodModel
	Build       buildModel
}

// constructorModel is the all-required-at-once convenience constructor.
type constructorModel struct {
	Doc      string
	FuncName string
	Params   string // full pre-rendered parameter list
	Op       string
	Entry    string
	Chain    string // pre-rendered required setter chain
}
