package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/statements/internal/model"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// formatFor picks a serialization format from a file extension.
func formatFor(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return formatJSON, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	}
	return "", fmt.Errorf("cannot tell the format of %s: use a .json, .yaml or .yml file", path)
}

// readDigest loads a digest from a JSON or YAML file.
func readDigest(path string) (*model.Digest, error) {
	format, err := formatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading digest: %w", err)
	}

	var d model.Digest
	switch format {
	case formatJSON:
		err = json.Unmarshal(data, &d)
	case formatYAML:
		err = yaml.Unmarshal(data, &d)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing digest %s: %w", path, err)
	}
	return &d, nil
}

// writeDigest serializes d to w in format.
func writeDigest(w io.Writer, d *model.Digest, format string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("encoding digest: %w", err)
		}
		return nil
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("encoding digest: %w", err)
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown output format %q", format)
}
