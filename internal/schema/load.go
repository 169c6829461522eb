package schema

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Descriptor file shapes. Cardinality is a plain string tag so both YAML and
// JSON sources share one decode path; the empty tag means required.

type fileField struct {
	Name        string `yaml:"name" json:"name"`
	Type        string `yaml:"type" json:"type"`
	Cardinality string `yaml:"cardinality" json:"cardinality"`
	Doc         string `yaml:"doc" json:"doc"`
}

type fileOperation struct {
	Name             string      `yaml:"name" json:"name"`
	Summary          string      `yaml:"summary" json:"summary"`
	Description      string      `yaml:"description" json:"description"`
	Results          []fileField `yaml:"results" json:"results"`
	Operands         []fileField `yaml:"operands" json:"operands"`
	Regions          []fileField `yaml:"regions" json:"regions"`
	Successors       []fileField `yaml:"successors" json:"successors"`
	Attributes       []fileField `yaml:"attributes" json:"attributes"`
	InferResultTypes bool        `yaml:"infer_result_types" json:"infer_result_types"`
}

type fileDialect struct {
	Dialect    string          `yaml:"dialect" json:"dialect"`
	Operations []fileOperation `yaml:"operations" json:"operations"`
}

// Load reads and validates one dialect descriptor. Files ending in .json are
// decoded as JSON, everything else as YAML.
func Load(path string) (*Dialect, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read descriptor")
	}

	var fd fileDialect
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = gojson.Unmarshal(raw, &fd)
	} else {
		err = yaml.Unmarshal(raw, &fd)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "decode descriptor %s", path)
	}

	d, err := fd.model()
	if err != nil {
		return nil, errors.Wrapf(err, "descriptor %s", path)
	}
	if err := d.Validate(); err != nil {
		return nil, errors.Wrapf(err, "descriptor %s", path)
	}
	return d, nil
}

func (fd *fileDialect) model() (*Dialect, error) {
	d := &Dialect{Name: fd.Dialect}
	for _, fo := range fd.Operations {
		op := Operation{
			Dialect:          fd.Dialect,
			Name:             fo.Name,
			Summary:          fo.Summary,
			Description:      strings.TrimSpace(fo.Description),
			InferResultTypes: fo.InferResultTypes,
		}
		categories := []struct {
			kind FieldKind
			in   []fileField
			out  *[]Field
		}{
			{KindResult, fo.Results, &op.Results},
			{KindOperand, fo.Operands, &op.Operands},
			{KindRegion, fo.Regions, &op.Regions},
			{KindSuccessor, fo.Successors, &op.Successors},
			{KindAttribute, fo.Attributes, &op.Attributes},
		}
		for _, c := range categories {
			for _, ff := range c.in {
				card, err := ParseCardinality(ff.Cardinality)
				if err != nil {
					return nil, errors.Wrapf(err, "operation %s, %s %q", fo.Name, c.kind, ff.Name)
				}
				*c.out = append(*c.out, Field{
					Name:        ff.Name,
					Kind:        c.kind,
					Type:        ff.Type,
					Cardinality: card,
					Doc:         ff.Doc,
				})
			}
		}
		d.Operations = append(d.Operations, op)
	}
	return d, nil
}
