// Package config resolves logoexport settings from a project file, the
// environment, and built-in defaults.
//
// Precedence, highest first: command-line flags (applied by the CLI),
// LOGOEXPORT_* environment variables, logoexport.toml in the working
// directory, then [Defaults].
//
// Example logoexport.toml:
//
//	base_dir    = "build/logos"
//	source_dir  = "assets/svg"
//	manifest    = "logos.toml"
//	concurrency = 4
//	tools       = ["svgexport", "inkscape"]
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	apperr "github.com/driftpro/logoexport/pkg/errors"
	"github.com/driftpro/logoexport/pkg/instructions"
)

// FileName is the project config file looked up in the working directory.
const FileName = "logoexport.toml"

// EnvPrefix prefixes every environment variable the tool reads.
const EnvPrefix = "LOGOEXPORT_"

// Config holds resolved settings.
type Config struct {
	BaseDir     string   `toml:"base_dir"`
	SourceDir   string   `toml:"source_dir"`
	Manifest    string   `toml:"manifest"`
	Concurrency int      `toml:"concurrency"`
	NoCache     bool     `toml:"no_cache"`
	Tools       []string `toml:"tools"`
}

// Defaults returns the built-in settings.
func Defaults() Config {
	return Config{
		BaseDir:     instructions.DefaultBaseDir,
		SourceDir:   instructions.DefaultSourceDir,
		Concurrency: runtime.GOMAXPROCS(0),
	}
}

// Load resolves settings for a run in dir: defaults, then dir/logoexport.toml
// if present, then the environment read through getenv.
func Load(dir string, getenv func(string) string) (Config, error) {
	cfg := Defaults()
	if err := cfg.mergeFile(filepath.Join(dir, FileName)); err != nil {
		return cfg, err
	}
	if err := cfg.mergeEnv(getenv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return apperr.Filesystem(err, "read config %s", path)
	}

	var file Config
	md, err := toml.Decode(string(data), &file)
	if err != nil {
		return apperr.Wrap(apperr.ErrCodeInvalidInput, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return apperr.New(apperr.ErrCodeInvalidInput, "config %s: unknown keys %v", path, undecoded)
	}

	if md.IsDefined("base_dir") {
		c.BaseDir = file.BaseDir
	}
	if md.IsDefined("source_dir") {
		c.SourceDir = file.SourceDir
	}
	if md.IsDefined("manifest") {
		c.Manifest = file.Manifest
	}
	if md.IsDefined("concurrency") {
		c.Concurrency = file.Concurrency
	}
	if md.IsDefined("no_cache") {
		c.NoCache = file.NoCache
	}
	if md.IsDefined("tools") {
		c.Tools = file.Tools
	}
	return nil
}

func (c *Config) mergeEnv(getenv func(string) string) error {
	if getenv == nil {
		return nil
	}
	if v := getenv(EnvPrefix + "BASE_DIR"); v != "" {
		c.BaseDir = v
	}
	if v := getenv(EnvPrefix + "SOURCE_DIR"); v != "" {
		c.SourceDir = v
	}
	if v := getenv(EnvPrefix + "MANIFEST"); v != "" {
		c.Manifest = v
	}
	if v := getenv(EnvPrefix + "CONCURRENCY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return apperr.Wrap(apperr.ErrCodeInvalidInput, err, "%sCONCURRENCY", EnvPrefix)
		}
		c.Concurrency = n
	}
	if v := getenv(EnvPrefix + "NO_CACHE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return apperr.Wrap(apperr.ErrCodeInvalidInput, err, "%sNO_CACHE", EnvPrefix)
		}
		c.NoCache = b
	}
	if v := getenv(EnvPrefix + "TOOLS"); v != "" {
		c.Tools = splitList(v)
	}
	return nil
}

// Validate checks paths, concurrency, and tool names.
func (c Config) Validate() error {
	if err := apperr.ValidatePath(c.BaseDir); err != nil {
		return err
	}
	if err := apperr.ValidatePath(c.SourceDir); err != nil {
		return err
	}
	if c.Concurrency < 1 {
		return apperr.New(apperr.ErrCodeInvalidInput, "concurrency must be at least 1, got %d", c.Concurrency)
	}
	_, err := c.ResolveTools()
	return err
}

// ResolveTools maps Tools to converter definitions. An empty list selects
// every known tool.
func (c Config) ResolveTools() ([]instructions.Tool, error) {
	if len(c.Tools) == 0 {
		return instructions.DefaultTools(), nil
	}
	tools := make([]instructions.Tool, 0, len(c.Tools))
	for _, name := range c.Tools {
		t, ok := instructions.LookupTool(name)
		if !ok {
			return nil, apperr.New(apperr.ErrCodeInvalidInput, "unknown tool %q", name)
		}
		tools = append(tools, t)
	}
	return tools, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
