package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema string

// VerifyAgainstEmbeddedSchema checks that every key of the config is described by the embedded
// JSON schema and that required fields are set. It detects a schema that fell behind the Config struct.
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	var schema map[string]any
	if err := json.Unmarshal([]byte(embeddedSchema), &schema); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	// convert config to JSON for validation
	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	var configMap map[string]any
	if err := json.Unmarshal(configData, &configMap); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	defs, _ := schema["$defs"].(map[string]any)
	if unknown := unknownKeys(resolveRef(schema, defs), configMap, defs, ""); len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("keys not described by schema: %s", strings.Join(unknown, ", "))
	}

	if err := validateRequiredFields(cfg); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// unknownKeys walks config values and collects keys missing from the schema properties
func unknownKeys(schema, value map[string]any, defs map[string]any, prefix string) []string {
	props, _ := schema["properties"].(map[string]any)
	var res []string
	for key, v := range value {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		propSchema, ok := props[key].(map[string]any)
		if !ok {
			res = append(res, path)
			continue
		}
		propSchema = resolveRef(propSchema, defs)
		switch val := v.(type) {
		case map[string]any:
			res = append(res, unknownKeys(propSchema, val, defs, path)...)
		case []any:
			itemSchema, ok := propSchema["items"].(map[string]any)
			if !ok {
				continue
			}
			itemSchema = resolveRef(itemSchema, defs)
			for i, elem := range val {
				if m, ok := elem.(map[string]any); ok {
					res = append(res, unknownKeys(itemSchema, m, defs, fmt.Sprintf("%s[%d]", path, i))...)
				}
			}
		}
	}
	return res
}

// resolveRef follows a local "#/$defs/Name" reference
func resolveRef(schema, defs map[string]any) map[string]any {
	ref, ok := schema["$ref"].(string)
	if !ok {
		return schema
	}
	if def, ok := defs[strings.TrimPrefix(ref, "#/$defs/")].(map[string]any); ok {
		return def
	}
	return schema
}

// validateRequiredFields performs basic validation of required fields
func validateRequiredFields(cfg *Config) error {
	// check server config
	if cfg.Server.Listen == "" {
		return fmt.Errorf("server.listen is required")
	}
	if cfg.Server.Timeout == 0 {
		return fmt.Errorf("server.timeout is required")
	}
	if cfg.Schedule.PollInterval == 0 {
		return fmt.Errorf("schedule.poll_interval is required")
	}
	for i, src := range cfg.Sources {
		if src.URL == "" {
			return fmt.Errorf("sources[%d].url is required", i)
		}
	}
	return nil
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() (*jsonschema.Schema, error) {
	return jsonschema.Reflect(&Config{}), nil
}
