package config

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/invopop/jsonschema"
	"github.com/re-cinq/gauss/internal/gaussian"
	schemacheck "github.com/santhosh-tekuri/jsonschema/v5"
)

var (
	schemaOnce sync.Once
	schemaJSON []byte
	schemaErr  error

	compiledOnce sync.Once
	compiled     *schemacheck.Schema
	compiledErr  error
)

// Schema returns the JSON Schema of a job file as indented JSON.
func Schema() ([]byte, error) {
	schemaOnce.Do(func() {
		r := &jsonschema.Reflector{
			FieldNameTag:   "yaml",
			ExpandedStruct: true,
			Anonymous:      true,
		}
		s := r.Reflect(&gaussian.Job{})
		s.Title = "gauss.yaml"
		s.Description = "Gaussian 16 job: link 0 resources, route section, title card, charge and multiplicity."
		schemaJSON, schemaErr = json.MarshalIndent(s, "", "  ")
	})
	return schemaJSON, schemaErr
}

func jobSchema() (*schemacheck.Schema, error) {
	compiledOnce.Do(func() {
		raw, err := Schema()
		if err != nil {
			compiledErr = err
			return
		}
		compiled, compiledErr = schemacheck.CompileString("job.schema.json", string(raw))
	})
	return compiled, compiledErr
}

// checkSchema checks a decoded YAML tree for unknown keys, missing fields and
// wrong types before it is decoded into a gaussian.Job.
func checkSchema(tree any) error {
	schema, err := jobSchema()
	if err != nil {
		return fmt.Errorf("compile job schema: %w", err)
	}

	// Round-trip through JSON so the checker only sees JSON types.
	payload, err := json.Marshal(tree)
	if err != nil {
		return fmt.Errorf("encode job: %w", err)
	}
	var decoded any
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return fmt.Errorf("decode job: %w", err)
	}

	if err := schema.Validate(decoded); err != nil {
		return fmt.Errorf("job does not match schema: %w", err)
	}
	return nil
}
