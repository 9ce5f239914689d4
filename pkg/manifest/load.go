package manifest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"

	apperr "github.com/driftpro/logoexport/pkg/errors"
)

// Format is a manifest file encoding.
type Format string

// Supported manifest encodings.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// MaxFileSize limits manifest input to prevent memory exhaustion (1MB).
const MaxFileSize = 1 << 20

// ParseFormat parses a format name ("toml", "yaml" or "yml").
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", apperr.New(apperr.ErrCodeInvalidFormat, "invalid manifest format: %q (must be 'toml' or 'yaml')", s)
}

// FormatFromPath infers the manifest format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", apperr.New(apperr.ErrCodeInvalidFormat, "manifest %s has no extension (want .toml, .yaml or .yml)", path)
	}
	return ParseFormat(ext)
}

// Load reads a manifest file, choosing the decoder from its extension.
// Load does not validate; call [Manifest.Validate] on the result.
func Load(path string) (*Manifest, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, apperr.Filesystem(err, "read manifest %s", path)
	}
	if info.Size() > MaxFileSize {
		return nil, apperr.New(apperr.ErrCodeInvalidManifest, "manifest %s exceeds %d bytes", path, MaxFileSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.Filesystem(err, "read manifest %s", path)
	}

	m, err := Decode(data, format)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInvalidManifest, err, "parse manifest %s", path)
	}
	return m, nil
}

// Decode parses manifest data. Unknown keys are rejected in both formats so
// that typos ("sise", "filname") fail loudly instead of producing zero values.
func Decode(data []byte, format Format) (*Manifest, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("empty manifest")
	}

	var m Manifest
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &m)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
		}
	case FormatYAML:
		if err := yaml.UnmarshalWithOptions(data, &m, yaml.Strict()); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	return &m, nil
}

// Encode serializes the manifest in the given format.
func Encode(m *Manifest, format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(m); err != nil {
			return nil, apperr.Wrap(apperr.ErrCodeInternal, err, "encode manifest as toml")
		}
		return buf.Bytes(), nil
	case FormatYAML:
		data, err := yaml.Marshal(m)
		if err != nil {
			return nil, apperr.Wrap(apperr.ErrCodeInternal, err, "encode manifest as yaml")
		}
		return data, nil
	}
	return nil, apperr.New(apperr.ErrCodeInvalidFormat, "unsupported manifest format %q", format)
}
