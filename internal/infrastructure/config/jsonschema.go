package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	xdg "github.com/bnema/shellgrid/internal/config"
	"github.com/invopop/jsonschema"
)

// GenerateSchemaFile writes the JSON schema of config.toml to path, so
// editors with TOML schema support can complete and validate settings.
func GenerateSchemaFile(path string) error {
	data, err := SchemaJSON()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), xdg.DirPerm); err != nil {
		return fmt.Errorf("failed to create schema directory: %w", err)
	}
	if err := os.WriteFile(path, data, xdg.FilePerm); err != nil {
		return fmt.Errorf("failed to write schema file: %w", err)
	}
	return nil
}

// SchemaJSON returns the indented JSON schema for Config.
func SchemaJSON() ([]byte, error) {
	r := &jsonschema.Reflector{
		FieldNameTag:   "json",
		DoNotReference: true,
	}
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/bnema/shellgrid/config.schema.json"
	schema.Title = "shellgrid configuration"
	schema.Description = "Workbench layout settings observed by shellgrid"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
