package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

// JSON is the decoder used for RPC payloads and snapshots. Numbers stay as
// json.Number so that balances above 2^53 survive decoding.
var JSON = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

// DecodeData decodes a YAML or JSON document into v. format is a file
// extension such as ".yml" or ".json".
func DecodeData(data []byte, format string, v any) error {
	switch strings.ToLower(format) {
	case ".yml", ".yaml":
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to unmarshal yaml: %w", err)
		}
	case ".json", "":
		if err := JSON.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to unmarshal json: %w", err)
		}
	default:
		return fmt.Errorf("unsupported document format %q", format)
	}
	return nil
}

// DecodeFile reads a YAML or JSON file, chosen by its extension, into v.
func DecodeFile(filePath string, v any) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filePath, err)
	}
	if err := DecodeData(data, filepath.Ext(filePath), v); err != nil {
		return fmt.Errorf("%s: %w", filePath, err)
	}
	return nil
}
