package generator

import (
	"fmt"

	"github.com/JPGoodale/melior/internal/schema"
)

// buildOperationModel assembles every generated fragment for one operation:
// wrapper, conversions, accessors, builder family and default constructor.
func buildOperationModel(op *schema.Operation) (operationModel, error) {
	typeName := schema.ExportedName(op.Name) + "Op"
	ts, err := newTypeState(op, typeName)
	if err != nil {
		return operationModel{}, err
	}

	return operationModel{
		TypeName:    typeName,
		ConstName:   typeName + "Name",
		FullName:    op.FullName(),
		Doc:         operationDoc(op, typeName),
		Accessors:   buildAccessors(op, typeName),
		Builder:     buildBuilderModel(op, typeName, ts),
		Constructor: buildConstructorModel(op, typeName, ts),
	}, nil
}

func operationDoc(op *schema.Operation, typeName string) string {
	lines := []string{fmt.Sprintf("%s is the `%s` operation.", typeName, op.FullName())}
	if op.Summary != "" {
		lines = append(lines, "", op.Summary)
	}
	if desc := descriptionLines(op.Description); len(desc) > 0 {
		lines = append(lines, "")
		lines = append(lines, desc...)
	}
	return comment(lines...)
}
