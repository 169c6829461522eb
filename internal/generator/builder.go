package generator

import (
	"fmt"
	"strings"

	"github.com/JPGoodale/melior/internal/schema"
)

// buildBuilderModel lays out the builder state family for one operation: a
// struct type per typestate, the entry constructor, the required-field
// transitions, the state-preserving optional/variadic setters and Build.
func buildBuilderModel(op *schema.Operation, typeName string, ts *typeState) builderModel {
	b := builderModel{
		Entry:     ts.entry,
		ConstName: typeName + "Name",
		FullName:  op.FullName(),
		Op:        typeName,
		NewDoc: comment(fmt.Sprintf(
			"New%s creates a builder for the `%s` operation.", ts.entry, op.FullName(),
		)),
	}

	for _, s := range ts.states() {
		b.States = append(b.States, stateModel{
			Name: ts.name(s),
			Doc:  stateDoc(ts, s),
		})
	}

	// One transition per (required field, state without it): consuming the
	// receiver state and returning the state with the field set is what makes
	// double-setting inexpressible.
	for i, f := range ts.fields {
		for _, s := range ts.states() {
			if s.has(i) {
				continue
			}
			b.Transitions = append(b.Transitions, methodModel{
				Doc:       setterDoc(f),
				Recv:      ts.name(s),
				Method:    schema.ExportedName(f.Name),
				Param:     schema.ParamName(f.Name),
				ParamType: setterParamType(f),
				Ret:       ts.name(s.with(i)),
				AddCall:   plumbing[f.Kind].addCall,
				AddArg:    setterAddArg(f),
			})
		}
	}

	// Optional and variadic fields stay orthogonal to the typestate: their
	// setter exists on every state and returns it unchanged. Singular
	// optional setters replace on repeat, so any number of calls stays
	// buildable.
	for _, f := range op.Fields() {
		if isRequired(f) {
			continue
		}
		if f.Kind == schema.KindResult && op.InferResultTypes {
			continue
		}
		for _, s := range ts.states() {
			b.Setters = append(b.Setters, methodModel{
				Doc:       setterDoc(f),
				Recv:      ts.name(s),
				Method:    schema.ExportedName(f.Name),
				Param:     schema.ParamName(f.Name),
				ParamType: setterParamType(f),
				Ret:       ts.name(s),
				AddCall:   setterCall(f),
				AddArg:    setterAddArg(f),
			})
		}
	}

	infer := ""
	if op.InferResultTypes {
		infer = ".EnableResultTypeInference()"
	}
	b.Build = buildModel{
		Doc: comment(
			"Build finalizes the operation. It panics when the assembled operation",
			"fails host verification; the builder states already rule out missing",
			"required fields.",
		),
		Recv:     ts.name(ts.allSet()),
		Op:       typeName,
		FullName: op.FullName(),
		Infer:    infer,
	}
	return b
}

func stateDoc(ts *typeState, s state) string {
	if s == 0 {
		if ts.count() == 0 {
			return comment(fmt.Sprintf("%s builds `%s` operations.", ts.entry, ts.fullName))
		}
		return comment(
			fmt.Sprintf("%s builds `%s` operations (required: %s).",
				ts.entry, ts.fullName, strings.Join(ts.fieldNames(), ", ")),
			"Required setters move the builder to a new state type; Build exists only",
			"once every required field has been set.",
		)
	}
	return comment(fmt.Sprintf(
		"%s is the builder state with %s set.", ts.name(s), joinNatural(ts.setNames(s)),
	))
}

func setterDoc(f schema.Field) string {
	method := schema.ExportedName(f.Name)
	if isVariadic(f) {
		return fieldDoc(fmt.Sprintf("%s appends to the `%s` %s.", method, f.Name, setterNounPlural(f)), f)
	}
	return fieldDoc(fmt.Sprintf("%s sets the `%s` %s.", method, f.Name, setterNoun(f)), f)
}

// Results are supplied to the builder as types, not values; their setter
// documentation says so.
func setterNoun(f schema.Field) string {
	if f.Kind == schema.KindResult {
		return "result type"
	}
	return plumbing[f.Kind].noun
}

func setterNounPlural(f schema.Field) string {
	if f.Kind == schema.KindResult {
		return "result types"
	}
	return plumbing[f.Kind].nounPlural
}

// buildConstructorModel renders the default constructor: every required
// field positionally in declaration order, then Build.
func buildConstructorModel(op *schema.Operation, typeName string, ts *typeState) constructorModel {
	params := strings.Builder{}
	chain := strings.Builder{}
	params.WriteString("context *ir.Context, ")
	for _, f := range ts.fields {
		name := schema.ParamName(f.Name)
		params.WriteString(name)
		params.WriteString(" ")
		params.WriteString(plumbing[f.Kind].paramType)
		params.WriteString(", ")
		chain.WriteString(".")
		chain.WriteString(schema.ExportedName(f.Name))
		chain.WriteString("(")
		chain.WriteString(name)
		chain.WriteString(")")
	}
	params.WriteString("location ir.Location")

	return constructorModel{
		Doc: comment(
			fmt.Sprintf("New%s builds the `%s` operation from its required fields, in", typeName, op.FullName()),
			"declaration order. Optional and variadic fields must be supplied through",
			"the builder.",
		),
		FuncName: "New" + typeName,
		Params:   params.String(),
		Op:       typeName,
		Entry:    ts.entry,
		Chain:    chain.String(),
	}
}
