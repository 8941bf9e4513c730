package schema

import "github.com/invopop/jsonschema"

// JSONSchema describes the definition file format.
func JSONSchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}
	s := r.Reflect(&Definition{})
	s.Title = "formkit form definition"
	return s
}
