package params

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load decodes a YAML document over Default() and validates the result.
// Keys not listed in Names() are rejected; an empty document yields the defaults.
func Load(r io.Reader) (Params, error) {
	p := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Params{}, fmt.Errorf("params: decode: %w", err)
	}

	if err := p.Validate(); err != nil {
		return Params{}, err
	}

	return p, nil
}

// LoadFile reads and decodes the YAML file at path.
func LoadFile(path string) (Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Params{}, fmt.Errorf("params: read %s: %w", path, err)
	}

	return Load(bytes.NewReader(data))
}

// YAML renders p with the same keys Load accepts.
func (p Params) YAML() ([]byte, error) {
	return yaml.Marshal(p)
}
