package topology_loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// Encode serializes schema in the format named by ext, the inverse of Decode.
func Encode(schema *Schema, ext string) ([]byte, error) {
	switch strings.ToLower(ext) {
	case ".json":
		return json.MarshalIndent(schema, "", "  ")
	case ".yaml", ".yml":
		return yaml.Marshal(schema)
	case ".toml":
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(schema); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

func SaveFile(path string, schema *Schema) error {
	data, err := Encode(schema, filepath.Ext(path))
	if err != nil {
		return fmt.Errorf("encode topology for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write topology file %s: %w", path, err)
	}
	log.Infof("SaveFile, file: %s, edges: %d", path, len(schema.Edges))
	return nil
}
