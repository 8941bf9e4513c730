package schema

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/forms/internal/errors"
	"github.com/vango-dev/forms/pkg/form"
)

// Definition is a whole form.
type Definition struct {
	Title  string     `json:"title,omitempty" yaml:"title,omitempty" jsonschema:"description=Heading shown above the form"`
	Submit string     `json:"submit,omitempty" yaml:"submit,omitempty" jsonschema:"description=Submit button label,default=Submit"`
	Fields []FieldDef `json:"fields" yaml:"fields" jsonschema:"minItems=1"`

	// Source is the file or name the definition was parsed from.
	Source string `json:"-" yaml:"-"`
}

// FieldDef is one field of a definition.
type FieldDef struct {
	Kind        string      `json:"kind" yaml:"kind" jsonschema:"enum=text,enum=password,enum=textarea,enum=radio,enum=checkbox,enum=checkboxes,enum=select,enum=datepicker,enum=autocomplete,enum=static"`
	Slug        string      `json:"slug,omitempty" yaml:"slug,omitempty" jsonschema:"pattern=^[a-z0-9_-]+$"`
	Label       string      `json:"label,omitempty" yaml:"label,omitempty"`
	Placeholder string      `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Default     string      `json:"default,omitempty" yaml:"default,omitempty" jsonschema:"description=Initial value; dates use YYYY-MM-DD and checkboxes true"`
	Rows        int         `json:"rows,omitempty" yaml:"rows,omitempty" jsonschema:"minimum=1"`
	Options     []OptionDef `json:"options,omitempty" yaml:"options,omitempty"`
	EmptyOption bool        `json:"emptyOption,omitempty" yaml:"emptyOption,omitempty"`
	Dropdown    bool        `json:"dropdown,omitempty" yaml:"dropdown,omitempty"`
	NoResults   string      `json:"noResults,omitempty" yaml:"noResults,omitempty"`
	HTML        string      `json:"html,omitempty" yaml:"html,omitempty" jsonschema:"description=Markup for static fields; sanitized before rendering"`
	Rules       []RuleDef   `json:"rules,omitempty" yaml:"rules,omitempty"`

	// Line is the position of the field in a YAML source, or 0.
	Line int `json:"-" yaml:"-"`
}

// OptionDef is one option of a radio, select, checkboxes or autocomplete field.
type OptionDef struct {
	Label string `json:"label" yaml:"label"`
	Slug  string `json:"slug" yaml:"slug"`
}

// RuleDef is one validation rule. Exactly one of NotEmpty, Pattern,
// MinLength and Equals is set. NotEmpty carries its own message.
type RuleDef struct {
	NotEmpty  string `json:"notEmpty,omitempty" yaml:"notEmpty,omitempty" jsonschema:"description=Message shown when the value is blank"`
	Pattern   string `json:"pattern,omitempty" yaml:"pattern,omitempty" jsonschema:"description=Regular expression the value must contain a match of"`
	MinLength int    `json:"minLength,omitempty" yaml:"minLength,omitempty" jsonschema:"minimum=1"`
	Equals    string `json:"equals,omitempty" yaml:"equals,omitempty" jsonschema:"description=Slug of a field whose value must be identical"`
	Message   string `json:"message,omitempty" yaml:"message,omitempty"`

	re *regexp.Regexp
}

// Load reads and parses a definition file.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("F021").Wrap(err).WithSuggestion("Check that " + path + " exists and is readable")
	}
	return Parse(data, path)
}

// Parse decodes a definition and validates it. Sources ending in .json, or
// data starting with '{', are decoded as JSON; everything else as YAML.
func Parse(data []byte, source string) (*Definition, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("F020").WithLocation(source, 1, 0)
	}

	var def Definition
	if isJSON(data, source) {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&def); err != nil {
			return nil, errors.New("F021").Wrap(err).WithLocation(source, 0, 0)
		}
	} else {
		if err := decodeYAML(data, &def); err != nil {
			return nil, err.WithLocation(source, err.Location.Line, err.Location.Column)
		}
	}

	def.Source = source
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

func isJSON(data []byte, source string) bool {
	if strings.EqualFold(filepath.Ext(source), ".json") {
		return true
	}
	return bytes.HasPrefix(bytes.TrimSpace(data), []byte("{"))
}

// decodeYAML decodes through a yaml.Node so field lines can be recorded.
func decodeYAML(data []byte, def *Definition) *errors.FormError {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		fe := errors.New("F021").Wrap(err)
		fe.Location = &errors.Location{Line: yamlErrorLine(err)}
		return fe
	}
	if err := root.Decode(def); err != nil {
		fe := errors.New("F021").Wrap(err)
		fe.Location = &errors.Location{Line: yamlErrorLine(err)}
		return fe
	}

	if seq := lookup(&root, "fields"); seq != nil && seq.Kind == yaml.SequenceNode {
		for i, item := range seq.Content {
			if i < len(def.Fields) {
				def.Fields[i].Line = item.Line
			}
		}
	}
	return nil
}

// lookup returns the value node of key in the document's top-level mapping.
func lookup(root *yaml.Node, key string) *yaml.Node {
	node := root
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

var yamlLine = regexp.MustCompile(`line (\d+)`)

func yamlErrorLine(err error) int {
	m := yamlLine.FindStringSubmatch(err.Error())
	if m == nil {
		return 0
	}
	line, _ := strconv.Atoi(m[1])
	return line
}

// Validate checks kinds and rules, compiles patterns, and runs form.Lint
// over the compiled fields. Problems are returned together.
func (d *Definition) Validate() error {
	if len(d.Fields) == 0 {
		return errors.New("F020").WithLocation(d.Source, 1, 0).
			WithSuggestion("Add at least one entry under fields")
	}

	var errs []error
	slugs := make(map[string]bool, len(d.Fields))
	for _, f := range d.Fields {
		slugs[f.Slug] = true
	}

	for i := range d.Fields {
		f := &d.Fields[i]
		if _, ok := form.ParseKind(f.Kind); !ok {
			errs = append(errs, d.locate(errors.New("F022").WithField(f.Slug).
				WithDetail(fmt.Sprintf("%q is not a field kind.", f.Kind)), f))
			continue
		}
		for j := range f.Rules {
			if err := f.Rules[j].compile(slugs); err != nil {
				errs = append(errs, d.locate(err.WithField(f.Slug), f))
			}
		}
	}
	if len(errs) > 0 {
		return stderrors.Join(errs...)
	}

	for _, fe := range errors.All(form.Lint(d.Compile()...)) {
		errs = append(errs, d.locate(fe, d.field(fe.Field)))
	}
	return stderrors.Join(errs...)
}

func (r *RuleDef) compile(slugs map[string]bool) *errors.FormError {
	set := 0
	for _, on := range []bool{r.NotEmpty != "", r.Pattern != "", r.MinLength != 0, r.Equals != ""} {
		if on {
			set++
		}
	}
	if set != 1 {
		return errors.New("F023").WithSuggestion("Set exactly one of notEmpty, pattern, minLength or equals")
	}

	switch {
	case r.Pattern != "":
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return errors.New("F023").Wrap(err)
		}
		r.re = re
	case r.MinLength < 0:
		return errors.New("F023").WithDetail("minLength must be positive.")
	case r.Equals != "" && !slugs[r.Equals]:
		return errors.New("F024").WithSuggestion(fmt.Sprintf("No field has slug %q", r.Equals))
	}
	return nil
}

func (d *Definition) field(slug string) *FieldDef {
	for i := range d.Fields {
		if d.Fields[i].Slug == slug {
			return &d.Fields[i]
		}
	}
	return nil
}

func (d *Definition) locate(fe *errors.FormError, f *FieldDef) *errors.FormError {
	if f == nil || f.Line == 0 || d.Source == "" {
		return fe
	}
	return fe.WithLocation(d.Source, f.Line, 0)
}

// SubmitLabel returns the submit button text.
func (d *Definition) SubmitLabel() string {
	if d.Submit == "" {
		return "Submit"
	}
	return d.Submit
}
