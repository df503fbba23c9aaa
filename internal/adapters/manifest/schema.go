package manifest

import (
	"bytes"
	_ "embed"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// schemaResource is absolute so validation errors do not name the working directory.
const schemaResource = "https://weft.trai.ch/schemas/plugin-cache-manifest.schema.json"

//go:embed manifest.schema.json
var schemaJSON []byte

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		return nil, err
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaResource, doc); err != nil {
		return nil, err
	}
	return compiler.Compile(schemaResource)
})

// validateShape parses data and checks it against the manifest JSON Schema.
// It does not look at the schema version value beyond its type.
func validateShape(data []byte) error {
	sch, err := compiledSchema()
	if err != nil {
		return err
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return err
	}
	return sch.Validate(inst)
}
