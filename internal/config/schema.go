package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// SchemaJSON returns the JSON schema for the configuration as pretty-printed
// JSON, for editor completion and the `config schema` command.
func SchemaJSON() ([]byte, error) {
	r := new(jsonschema.Reflector)
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/bnema/webnotify/config.schema.json"
	schema.Title = "Webnotify Configuration"
	schema.Description = "Configuration schema for webnotify, the desktop-notification permission service"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
