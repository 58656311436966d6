package workflow

import (
	"bytes"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Document pairs the raw decoded mapping of a workflow configuration with
// its typed view. Validation always runs against the raw mapping so that
// content problems are reported instead of breaking the decode.
type Document struct {
	Path string

	// Raw is the decoded top-level mapping. Nil when the document's top
	// level is not a mapping; the validator then reports every required
	// field as missing rather than failing the load.
	Raw map[string]any

	// Config is the typed view. Zero-valued when DecodeErr is set.
	Config Config

	// DecodeErr records a typed-decode failure (e.g. a scalar where a
	// list belongs). The raw mapping stays available for validation.
	DecodeErr error
}

// Parse decodes workflow configuration YAML. Syntax errors are structural
// failures; schema problems are left for Validate.
func Parse(data []byte, source string) (*Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("workflow: %s is empty", source)
	}

	var node any
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("workflow: parse %s: %w", source, err)
	}

	doc := &Document{Path: source}
	doc.Raw, _ = node.(map[string]any)

	if err := yaml.Unmarshal(data, &doc.Config); err != nil {
		doc.DecodeErr = err
	}

	return doc, nil
}

// LoadFile reads and decodes a workflow configuration file.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("workflow: read %s: %w", path, err)
	}

	return Parse(data, path)
}

// LoadFileWithEnv loads a configuration and merges variables from a
// dotenv file beneath the config's own variables block. Explicit config
// variables always win over dotenv entries.
func LoadFileWithEnv(path, envFile string) (*Document, error) {
	doc, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	if envFile == "" {
		return doc, nil
	}

	envVars, err := godotenv.Read(envFile)
	if err != nil {
		return nil, fmt.Errorf("workflow: read env file %s: %w", envFile, err)
	}

	if doc.Config.Variables == nil {
		doc.Config.Variables = make(map[string]string, len(envVars))
	}
	for key, value := range envVars {
		if _, ok := doc.Config.Variables[key]; !ok {
			doc.Config.Variables[key] = value
		}
	}

	return doc, nil
}

// Validate runs the schema validator over the document's raw mapping.
func (d *Document) Validate() []string {
	return NewValidator().Validate(d.Raw)
}
