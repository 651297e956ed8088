package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/re-cinq/gauss/internal/gaussian"
	"gopkg.in/yaml.v3"
)

// SourceError reports a job file that could not be read or decoded. It is
// never a validation failure; those come from gaussian.Validate.
type SourceError struct {
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("failed to parse config: %v", e.Err)
	}
	return fmt.Sprintf("failed to parse config file %s: %v", e.Path, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// Load reads a job file. In YAML a missing GPU is written as `gpu: ~` or
// left out entirely.
func Load(path string) (gaussian.Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return gaussian.Job{}, &SourceError{Path: path, Err: fmt.Errorf("reading config: %w", err)}
	}

	job, err := decode(data)
	if err != nil {
		return gaussian.Job{}, &SourceError{Path: path, Err: err}
	}
	return job, nil
}

// Parse decodes a job from YAML bytes.
func Parse(data []byte) (gaussian.Job, error) {
	job, err := decode(data)
	if err != nil {
		return gaussian.Job{}, &SourceError{Err: err}
	}
	return job, nil
}

func decode(data []byte) (gaussian.Job, error) {
	var tree any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return gaussian.Job{}, fmt.Errorf("parsing yaml: %w", err)
	}
	if tree == nil {
		return gaussian.Job{}, errors.New("config is empty")
	}

	if err := checkSchema(tree); err != nil {
		return gaussian.Job{}, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var job gaussian.Job
	if err := dec.Decode(&job); err != nil && !errors.Is(err, io.EOF) {
		return gaussian.Job{}, fmt.Errorf("decoding job: %w", err)
	}
	return job, nil
}
