package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/structuraltools/goiscc/internal/design"
)

// readDesign loads a design record from a JSON or YAML file, chosen
// by extension.
func readDesign(path string) (*design.Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading design file: %w", err)
	}

	var input design.Input
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &input); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &input); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}
	return &input, nil
}
