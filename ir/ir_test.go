package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextInternsTypes(t *testing.T) {
	ctx := NewContext()
	a := ctx.Type("i64")
	b := ctx.Type("i64")
	assert.Equal(t, a, b)
	assert.Equal(t, "i64", a.Name())
	assert.NotEqual(t, a, ctx.Type("i32"))
}

func TestLocationString(t *testing.T) {
	assert.Equal(t, "loc(unknown)", UnknownLocation().String())
	assert.Equal(t, `loc("foo.mlir":7:2)`, NewLocation("foo.mlir", 7, 2).String())
}

func TestBuilderAssemblesOperation(t *testing.T) {
	ctx := NewContext()
	i64 := ctx.Type("i64")
	x := NewValue("x", i64)
	y := NewValue("y", i64)
	body := NewRegion()
	body.AppendBlock(NewBlock("entry"))
	dest := NewBlock("exit")

	op, err := NewOperationBuilder("test.op", NewLocation("t.mlir", 1, 1)).
		AddResults(i64, i64).
		AddOperands(x, y).
		AddRegions(body).
		AddSuccessors(dest).
		AddAttributes(NamedAttribute{Name: "flag", Attribute: StringAttribute("on")}).
		Build()
	require.NoError(t, err)

	assert.Equal(t, "test.op", op.Name())
	assert.Equal(t, `loc("t.mlir":1:1)`, op.Location().String())
	assert.Equal(t, 2, op.NumResults())
	assert.Equal(t, 2, op.NumOperands())
	assert.Equal(t, 1, op.NumRegions())
	assert.Equal(t, 1, op.NumSuccessors())
	assert.Equal(t, x, op.Operand(0))
	assert.Equal(t, []Value{x, y}, op.Operands())
	assert.Equal(t, dest, op.Successor(0))
	assert.Equal(t, "entry", op.Region(0).Blocks()[0].Label())

	attr, ok := op.Attribute("flag")
	require.True(t, ok)
	assert.Equal(t, "on", attr.String())
	_, ok = op.Attribute("absent")
	assert.False(t, ok)
}

func TestResultValues(t *testing.T) {
	ctx := NewContext()
	i64 := ctx.Type("i64")

	op, err := NewOperationBuilder("test.op", UnknownLocation()).
		AddResults(i64, i64).
		Build()
	require.NoError(t, err)

	r0 := op.Result(0)
	r1 := op.Result(1)
	assert.Equal(t, i64, r0.Type())
	assert.Same(t, op, r0.Owner())
	assert.NotEqual(t, r0, r1)
	// A result read back twice is the same value.
	assert.Equal(t, r0, op.Result(0))
	// Free values have no owner.
	assert.Nil(t, NewValue("x", i64).Owner())
}

func TestSetOperandReplacesInPlace(t *testing.T) {
	ctx := NewContext()
	i64 := ctx.Type("i64")
	a := NewValue("a", i64)
	b := NewValue("b", i64)
	c := NewValue("c", i64)

	op, err := NewOperationBuilder("test.op", UnknownLocation()).
		AddOperands(a).
		SetOperand("extra", b).
		SetOperand("extra", c).
		Build()
	require.NoError(t, err)

	// The slot keeps its position; the later call overwrote it.
	require.Equal(t, 2, op.NumOperands())
	assert.Equal(t, a, op.Operand(0))
	assert.Equal(t, c, op.Operand(1))
}

func TestSetSlotsAcrossCategories(t *testing.T) {
	ctx := NewContext()
	i32 := ctx.Type("i32")
	i64 := ctx.Type("i64")
	early := NewRegion()
	late := NewRegion()
	exit := NewBlock("exit")

	op, err := NewOperationBuilder("test.op", UnknownLocation()).
		SetResult("out", i32).
		SetResult("out", i64).
		SetRegion("body", early).
		SetRegion("body", late).
		SetSuccessor("dest", NewBlock("tmp")).
		SetSuccessor("dest", exit).
		Build()
	require.NoError(t, err)

	require.Equal(t, 1, op.NumResults())
	assert.Equal(t, i64, op.Result(0).Type())
	require.Equal(t, 1, op.NumRegions())
	assert.Same(t, late, op.Region(0))
	require.Equal(t, 1, op.NumSuccessors())
	assert.Same(t, exit, op.Successor(0))
}

func TestSetAttributeReplaces(t *testing.T) {
	op, err := NewOperationBuilder("test.op", UnknownLocation()).
		SetAttribute(NamedAttribute{Name: "flag", Attribute: StringAttribute("a")}).
		AddAttributes(NamedAttribute{Name: "other", Attribute: StringAttribute("x")}).
		SetAttribute(NamedAttribute{Name: "flag", Attribute: StringAttribute("b")}).
		Build()
	require.NoError(t, err)

	require.Len(t, op.Attributes(), 2)
	attr, ok := op.Attribute("flag")
	require.True(t, ok)
	assert.Equal(t, "b", attr.String())
	assert.Equal(t, "flag", op.Attributes()[0].Name)
}

func TestVerifyRejectsUnqualifiedName(t *testing.T) {
	for _, name := range []string{"addi", ".addi", "arith.", ""} {
		_, err := NewOperationBuilder(name, UnknownLocation()).Build()
		require.Error(t, err, name)
		assert.ErrorContains(t, err, "not of the form dialect.op")
	}
}

func TestVerifyRejectsDuplicateAttributes(t *testing.T) {
	_, err := NewOperationBuilder("test.op", UnknownLocation()).
		AddAttributes(
			NamedAttribute{Name: "flag", Attribute: StringAttribute("a")},
			NamedAttribute{Name: "flag", Attribute: StringAttribute("b")},
		).
		Build()
	require.Error(t, err)
	assert.ErrorContains(t, err, `duplicate attribute "flag"`)
}

func TestResultTypeInference(t *testing.T) {
	ctx := NewContext()
	i1 := ctx.Type("i1")
	f32 := ctx.Type("f32")

	op, err := NewOperationBuilder("test.select", UnknownLocation()).
		AddOperands(NewValue("c", i1), NewValue("a", f32), NewValue("b", f32)).
		EnableResultTypeInference().
		Build()
	require.NoError(t, err)
	require.Equal(t, 1, op.NumResults())
	assert.Equal(t, f32, op.Result(0).Type())
}

func TestInferenceErrors(t *testing.T) {
	ctx := NewContext()
	i64 := ctx.Type("i64")

	_, err := NewOperationBuilder("test.op", UnknownLocation()).
		AddResults(i64).
		EnableResultTypeInference().
		Build()
	require.Error(t, err)
	assert.ErrorContains(t, err, "both supplied and inferred")

	_, err = NewOperationBuilder("test.op", UnknownLocation()).
		EnableResultTypeInference().
		Build()
	require.Error(t, err)
	assert.ErrorContains(t, err, "without operands")
}

func TestNameMismatchError(t *testing.T) {
	err := NameMismatchError{Expected: "arith.addi", Actual: "arith.subi"}
	assert.Equal(t, `operation name mismatch: expected "arith.addi", got "arith.subi"`, err.Error())
}
