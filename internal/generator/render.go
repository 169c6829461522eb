package generator

import (
	"bytes"
	"go/format"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/tools/imports"
	gofumpt "mvdan.cc/gofumpt/format"

	"github.com/JPGoodale/melior/internal/schema"
)

// irImportPath is the host IR package every generated file depends on.
const irImportPath = "github.com/JPGoodale/melior/ir"

// Run orchestrates descriptor loading, model building and file emission.
func Run(cfg Config) error {
	if len(cfg.Inputs) == 0 {
		return errors.New("no descriptor files provided")
	}

	var dialects []*schema.Dialect
	for _, in := range cfg.Inputs {
		d, err := schema.Load(in)
		if err != nil {
			return err
		}
		dialects = append(dialects, d)
	}

	var header []byte
	if cfg.Header != "" {
		h, err := os.ReadFile(cfg.Header)
		if err != nil {
			return errors.Wrap(err, "read header")
		}
		header = h
	}

	out, err := Generate(dialects, header, cfg)
	if err != nil {
		return err
	}

	if cfg.Output == "-" {
		_, err := os.Stdout.Write(out)
		return err
	}
	return errors.Wrap(os.WriteFile(cfg.Output, out, 0o644), "write output")
}

// Generate renders the dialects into one formatted Go source file.
func Generate(dialects []*schema.Dialect, header []byte, cfg Config) ([]byte, error) {
	if err := ensureTemplates(); err != nil {
		return nil, err
	}

	pkg := cfg.Package
	if pkg == "" {
		pkg = dialects[0].Name
	}
	sources := make([]string, len(cfg.Inputs))
	for i, in := range cfg.Inputs {
		sources[i] = filepath.Base(in)
	}

	data := fileModel{
		Version:  cfg.Version,
		Source:   strings.Join(sources, ", "),
		Command:  cfg.Command,
		Package:  pkg,
		IRImport: irImportPath,
	}
	for _, d := range dialects {
		for i := range d.Operations {
			m, err := buildOperationModel(&d.Operations[i])
			if err != nil {
				return nil, err
			}
			data.Operations = append(data.Operations, m)
		}
	}

	var out bytes.Buffer
	out.Write(header)
	for i, f := range data.fragments() {
		if i > 0 {
			out.WriteString("\n\n")
		}
		if err := fragmentTmpl.ExecuteTemplate(&out, f.name, f.data); err != nil {
			return nil, errors.Wrapf(err, "render %s", f.name)
		}
	}
	out.WriteString("\n")

	// A generated file that does not format is a generator bug; fail loudly
	// instead of emitting it.
	formatted, err := format.Source(out.Bytes())
	if err != nil {
		return nil, errors.Wrap(err, "format generated code")
	}
	outName := cfg.Output
	if outName == "" || outName == "-" {
		outName = "generated.go"
	}
	processed, err := imports.Process(outName, formatted, nil)
	if err != nil {
		return nil, errors.Wrap(err, "fix imports")
	}
	final, err := gofumpt.Source(processed, gofumpt.Options{})
	if err != nil {
		return nil, errors.Wrap(err, "gofumpt generated code")
	}
	return final, nil
}

// fragment pairs a template name with its model; the file is the ordered
// concatenation of fragments separated by blank lines.
type fragment struct {
	name string
	data any
}

func (m *fileModel) fragments() []fragment {
	frags := []fragment{{tmplHeader, m}}
	for i := range m.Operations {
		op := &m.Operations[i]
		frags = append(frags,
			fragment{tmplOpStruct, op},
			fragment{tmplOpConst, op},
			fragment{tmplOpName, op},
			fragment{tmplOpView, op},
			fragment{tmplOpFrom, op},
		)
		for j := range op.Accessors {
			frags = append(frags, fragment{op.Accessors[j].Kind, &op.Accessors[j]})
		}
		b := &op.Builder
		for j := range b.States {
			frags = append(frags, fragment{tmplBuilderState, &b.States[j]})
		}
		frags = append(frags, fragment{tmplBuilderNew, b})
		for j := range b.Transitions {
			frags = append(frags, fragment{tmplBuilderMethod, &b.Transitions[j]})
		}
		for j := range b.Setters {
			frags = append(frags, fragment{tmplBuilderMethod, &b.Setters[j]})
		}
		frags = append(frags,
			fragment{tmplBuilderBuild, &b.Build},
			fragment{tmplConstructor, &op.Constructor},
		)
	}
	return frags
}
