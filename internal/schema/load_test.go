package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDescriptor(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const yamlDescriptor = `dialect: arith
operations:
  - name: addi
    summary: Integer addition.
    description: |
      Adds two integers.
    results:
      - name: result
        type: integer
    operands:
      - name: lhs
      - name: rhs
    attributes:
      - name: overflow
        cardinality: optional
`

func TestLoadYAML(t *testing.T) {
	path := writeDescriptor(t, "arith.yaml", yamlDescriptor)

	d, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "arith", d.Name)
	require.Len(t, d.Operations, 1)

	op := d.Operations[0]
	assert.Equal(t, "arith.addi", op.FullName())
	assert.Equal(t, "Integer addition.", op.Summary)
	assert.Equal(t, "Adds two integers.", op.Description)
	require.Len(t, op.Results, 1)
	assert.Equal(t, KindResult, op.Results[0].Kind)
	require.Len(t, op.Operands, 2)
	assert.Equal(t, Required, op.Operands[0].Cardinality)
	require.Len(t, op.Attributes, 1)
	assert.Equal(t, Optional, op.Attributes[0].Cardinality)
}

func TestLoadJSON(t *testing.T) {
	path := writeDescriptor(t, "cf.json", `{
  "dialect": "cf",
  "operations": [
    {
      "name": "br",
      "operands": [{"name": "args", "cardinality": "variadic"}],
      "successors": [{"name": "dest"}]
    }
  ]
}`)

	d, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "cf", d.Name)
	op := d.Operations[0]
	assert.Equal(t, "cf.br", op.FullName())
	require.Len(t, op.Operands, 1)
	assert.Equal(t, Variadic, op.Operands[0].Cardinality)
	require.Len(t, op.Successors, 1)
	assert.Equal(t, KindSuccessor, op.Successors[0].Kind)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "read descriptor")
}

func TestLoadMalformed(t *testing.T) {
	path := writeDescriptor(t, "broken.yaml", "dialect: [oops\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorContains(t, err, "decode descriptor")
}

func TestLoadBadCardinality(t *testing.T) {
	path := writeDescriptor(t, "bad.yaml", `dialect: d
operations:
  - name: op
    operands:
      - name: x
        cardinality: many
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorContains(t, err, `unknown cardinality "many"`)
}

func TestLoadValidates(t *testing.T) {
	path := writeDescriptor(t, "dup.yaml", `dialect: d
operations:
  - name: op
    operands:
      - name: x
      - name: x
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorContains(t, err, `duplicate field name "x"`)
}
