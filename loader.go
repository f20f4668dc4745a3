package localepath

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadConfig reads a Config from a JSON or YAML file in an fs.FS, dispatching
// on the file extension (.json, .yaml, .yml, case-insensitive). The decoded
// configuration is not validated; it is handed to New as-is.
func LoadConfig(fsys fs.FS, filePath string) (Config, error) {
	data, err := fs.ReadFile(fsys, filePath)
	if err != nil {
		return Config{}, fmt.Errorf("reading %q: %w", filePath, err)
	}

	var unmarshal func([]byte, any) error
	switch strings.ToLower(path.Ext(filePath)) {
	case ".json":
		unmarshal = json.Unmarshal
	case ".yaml", ".yml":
		unmarshal = func(data []byte, v any) error {
			return yaml.Unmarshal(data, v)
		}
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnsupportedFileType, filePath)
	}

	var cfg Config
	if err := unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: parsing %q: %s", ErrInvalidConfigFile, filePath, err)
	}

	return cfg, nil
}
