package generator

import (
	"embed"
	"sync"
	"text/template"

	"github.com/cockroachdb/errors"
)

const (
	tmplHeader   = "header"
	tmplOpStruct = "op_struct"
	tmplOpConst  = "op_const"
	tmplOpName   = "op_name"
	tmplOpView   = "op_view"
	tmplOpFrom   = "op_from"

	tmplBuilderState  = "builder_state"
	tmplBuilderNew    = "builder_new"
	tmplBuilderMethod = "builder_method"
	tmplBuilderBuild  = "builder_build"
	tmplConstructor   = "constructor"
)

const templatePattern = "templates/*.gtpl"

//go:embed templates/*.gtpl
var templatesFS embed.FS

var (
	fragmentTmpl *template.Template
	tmplInitOnce sync.Once
	tmplInitErr  error
)

// validateTemplates ensures all required templates are defined.
func validateTemplates() error {
	required := []string{
		tmplHeader,
		tmplOpStruct,
		tmplOpConst,
		tmplOpName,
		tmplOpView,
		tmplOpFrom,
		tmplBuilderState,
		tmplBuilderNew,
		tmplBuilderMethod,
		tmplBuilderBuild,
		tmplConstructor,

		// accessor templates, dispatched by accessorModel.Kind
		accessorValue,
		accessorValueBack,
		accessorOptional,
		accessorOptionalBack,
		accessorVariadic,
		accessorAttribute,
		accessorAttributeOptional,
	}
	for _, name := range required {
		if fragmentTmpl.Lookup(name) == nil {
			return errors.Newf("required template %q not found", name)
		}
	}
	return nil
}

// ensureTemplates parses and validates templates exactly once.
func ensureTemplates() error {
	tmplInitOnce.Do(func() {
		var t *template.Template
		t, tmplInitErr = template.New(tmplHeader).ParseFS(templatesFS, templatePattern)
		if tmplInitErr != nil {
			return
		}
		fragmentTmpl = t
		tmplInitErr = validateTemplates()
	})
	return tmplInitErr
}
