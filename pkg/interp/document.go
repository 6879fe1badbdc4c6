package interp

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/BurntSushi/toml"
)

// PopulateJSON bulk-populates the record from a JSON document, applying the
// same per-field validation as SetField. The operation is atomic: one
// invalid token fails the whole decode and the record keeps its prior state.
func (c *Config) PopulateJSON(data []byte) error {
	scratch := c.Clone()
	if err := json.Unmarshal(data, scratch); err != nil {
		return fmt.Errorf("failed to decode config document: %w", err)
	}
	*c = *scratch
	return nil
}

// PopulateTOML bulk-populates the record from a TOML document with the same
// atomicity as PopulateJSON.
func (c *Config) PopulateTOML(data []byte) error {
	scratch := c.Clone()
	if err := toml.Unmarshal(data, scratch); err != nil {
		return fmt.Errorf("failed to decode config document: %w", err)
	}
	*c = *scratch
	return nil
}

// MarshalJSONDocument renders the record as an indented JSON document. Unset
// fields are omitted entirely so absence round-trips.
func (c *Config) MarshalJSONDocument() ([]byte, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode config document: %w", err)
	}
	return append(data, '\n'), nil
}

// MarshalTOMLDocument renders the record as a TOML document, omitting unset
// fields.
func (c *Config) MarshalTOMLDocument() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, fmt.Errorf("failed to encode config document: %w", err)
	}
	return buf.Bytes(), nil
}
