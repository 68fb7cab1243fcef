package store

import (
	"fmt"

	"github.com/lixenwraith/synaptic/parameter"
)

// encodePreset serializes a preset for storage after re-checking the
// boundary contract; a store must never hold an invalid record
func encodePreset(p parameter.Set) ([]byte, error) {
	if err := parameter.Validate(p); err != nil {
		return nil, err
	}
	return parameter.Encode(p)
}

// decodePreset deserializes and validates a stored payload
func decodePreset(name string, data []byte) (parameter.Set, error) {
	p, err := parameter.Parse(data)
	if err != nil {
		return parameter.Set{}, fmt.Errorf("decode preset %s: %w", name, err)
	}
	return p, nil
}
