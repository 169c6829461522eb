package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const descriptor = `dialect: arith
operations:
  - name: addi
    results:
      - name: result
    operands:
      - name: lhs
      - name: rhs
`

func TestRootCommandGeneratesFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "arith.yaml")
	require.NoError(t, os.WriteFile(in, []byte(descriptor), 0o644))
	out := filepath.Join(dir, "arith_gen.go")

	cmd := newRootCommand()
	cmd.SetOut(io.Discard)
	cmd.SetArgs([]string{"--out", out, in})
	require.NoError(t, cmd.Execute())

	generated, err := os.ReadFile(out)
	require.NoError(t, err)
	text := string(generated)
	assert.Contains(t, text, "; DO NOT EDIT.")
	assert.Contains(t, text, "// Command: meliorgen --out="+out+" "+in)
	assert.Contains(t, text, "package arith")
}

func TestRootCommandPackageFlag(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "arith.yaml")
	require.NoError(t, os.WriteFile(in, []byte(descriptor), 0o644))
	out := filepath.Join(dir, "arith_gen.go")

	cmd := newRootCommand()
	cmd.SetOut(io.Discard)
	cmd.SetArgs([]string{"--out", out, "--package", "arithops", in})
	require.NoError(t, cmd.Execute())

	generated, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(generated), "package arithops")
	assert.Contains(t, string(generated), "--package=arithops")
}

func TestRootCommandRequiresDescriptors(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(nil)
	require.Error(t, cmd.Execute())
}

func TestDeriveVersion(t *testing.T) {
	assert.NotEmpty(t, deriveVersion())
}
