// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/rs/zerolog"
	"github.com/walteh/wsfmt/pkg/format"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📚 Config represents the complete run configuration. Whitespace settings
// are kept as plain strings and integers so the same struct decodes from
// YAML and HCL files and maps onto command line flags; Options converts and
// validates them into the engine's typed form.
type Config struct {
	CheckOnly      bool     `json:"check_only,omitempty" yaml:"check_only,omitempty" hcl:"check_only,optional"`                // Report changes without writing files
	FollowSymlinks bool     `json:"follow_symlinks,omitempty" yaml:"follow_symlinks,omitempty" hcl:"follow_symlinks,optional"` // Follow symbolic links during discovery
	Exclude        string   `json:"exclude,omitempty" yaml:"exclude,omitempty" hcl:"exclude,optional"`                         // Regular expression of paths to exclude
	IgnoreGlobs    []string `json:"ignore_globs,omitempty" yaml:"ignore_globs,omitempty" hcl:"ignore_globs,optional"`          // Glob patterns of paths to ignore
	Color          string   `json:"color,omitempty" yaml:"color,omitempty" hcl:"color,optional"`                               // Colored output: auto, on or off

	NewLineMarker                    string `json:"new_line_marker,omitempty" yaml:"new_line_marker,omitempty" hcl:"new_line_marker,optional"`
	AddNewLineMarkerAtEndOfFile      bool   `json:"add_new_line_marker_at_end_of_file,omitempty" yaml:"add_new_line_marker_at_end_of_file,omitempty" hcl:"add_new_line_marker_at_end_of_file,optional"`
	RemoveNewLineMarkerFromEndOfFile bool   `json:"remove_new_line_marker_from_end_of_file,omitempty" yaml:"remove_new_line_marker_from_end_of_file,omitempty" hcl:"remove_new_line_marker_from_end_of_file,optional"`
	NormalizeNewLineMarkers          bool   `json:"normalize_new_line_markers,omitempty" yaml:"normalize_new_line_markers,omitempty" hcl:"normalize_new_line_markers,optional"`
	RemoveTrailingWhitespace         bool   `json:"remove_trailing_whitespace,omitempty" yaml:"remove_trailing_whitespace,omitempty" hcl:"remove_trailing_whitespace,optional"`
	RemoveLeadingEmptyLines          bool   `json:"remove_leading_empty_lines,omitempty" yaml:"remove_leading_empty_lines,omitempty" hcl:"remove_leading_empty_lines,optional"`
	RemoveTrailingEmptyLines         bool   `json:"remove_trailing_empty_lines,omitempty" yaml:"remove_trailing_empty_lines,omitempty" hcl:"remove_trailing_empty_lines,optional"`
	NormalizeEmptyFiles              string `json:"normalize_empty_files,omitempty" yaml:"normalize_empty_files,omitempty" hcl:"normalize_empty_files,optional"`
	NormalizeWhitespaceOnlyFiles     string `json:"normalize_whitespace_only_files,omitempty" yaml:"normalize_whitespace_only_files,omitempty" hcl:"normalize_whitespace_only_files,optional"`
	NormalizeNonStandardWhitespace   string `json:"normalize_non_standard_whitespace,omitempty" yaml:"normalize_non_standard_whitespace,omitempty" hcl:"normalize_non_standard_whitespace,optional"`
	ReplaceTabsWithSpaces            int    `json:"replace_tabs_with_spaces,omitempty" yaml:"replace_tabs_with_spaces,omitempty" hcl:"replace_tabs_with_spaces,optional"`
}

// DefaultConfig returns the configuration used when no file and no flags
// say otherwise: nothing is fixed, tabs are kept and output color follows
// the terminal.
func DefaultConfig() *Config {
	return &Config{
		Color:                          "auto",
		NewLineMarker:                  "auto",
		NormalizeEmptyFiles:            "ignore",
		NormalizeWhitespaceOnlyFiles:   "ignore",
		NormalizeNonStandardWhitespace: "ignore",
		ReplaceTabsWithSpaces:          -1,
	}
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// defaultFileNames are probed in order when no explicit config is given.
var defaultFileNames = []string{".wsfmt.yaml", ".wsfmt.yml", ".wsfmt.hcl", ".wsfmt.json"}

// FindDefault returns the first default config file present in dir, if any.
func FindDefault(dir string) (string, bool) {
	for _, name := range defaultFileNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path, true
		}
	}
	return "", false
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	if _, err := cfg.Options(); err != nil {
		return err
	}

	switch cfg.Color {
	case "auto", "on", "off":
	default:
		return errors.Errorf("unknown color mode %q (want auto, on or off)", cfg.Color)
	}

	if cfg.Exclude != "" {
		if _, err := regexp.Compile(cfg.Exclude); err != nil {
			return errors.Errorf("compiling exclude pattern %q: %w", cfg.Exclude, err)
		}
	}

	for _, glob := range cfg.IgnoreGlobs {
		if !doublestar.ValidatePattern(glob) {
			return errors.Errorf("invalid ignore glob %q", glob)
		}
	}

	return nil
}

// Options converts the configuration into the engine's typed Options,
// applying the rule that removing the end of file marker only makes sense
// together with removing trailing empty lines.
func (cfg *Config) Options() (format.Options, error) {
	opts := format.DefaultOptions()

	marker, err := format.ParseMarkerMode(cfg.NewLineMarker)
	if err != nil {
		return opts, errors.Errorf("parsing new_line_marker: %w", err)
	}
	opts.NewLineMarker = marker

	emptyFiles, err := format.ParseTrivialFileMode(cfg.NormalizeEmptyFiles)
	if err != nil {
		return opts, errors.Errorf("parsing normalize_empty_files: %w", err)
	}
	opts.NormalizeEmptyFiles = emptyFiles

	whitespaceFiles, err := format.ParseTrivialFileMode(cfg.NormalizeWhitespaceOnlyFiles)
	if err != nil {
		return opts, errors.Errorf("parsing normalize_whitespace_only_files: %w", err)
	}
	opts.NormalizeWhitespaceOnlyFiles = whitespaceFiles

	nonStandard, err := format.ParseNonStandardMode(cfg.NormalizeNonStandardWhitespace)
	if err != nil {
		return opts, errors.Errorf("parsing normalize_non_standard_whitespace: %w", err)
	}
	opts.NormalizeNonStandardWhitespace = nonStandard

	opts.AddNewLineMarkerAtEndOfFile = cfg.AddNewLineMarkerAtEndOfFile
	opts.RemoveNewLineMarkerFromEndOfFile = cfg.RemoveNewLineMarkerFromEndOfFile
	opts.NormalizeNewLineMarkers = cfg.NormalizeNewLineMarkers
	opts.RemoveTrailingWhitespace = cfg.RemoveTrailingWhitespace
	opts.RemoveLeadingEmptyLines = cfg.RemoveLeadingEmptyLines
	opts.RemoveTrailingEmptyLines = cfg.RemoveTrailingEmptyLines
	opts.ReplaceTabsWithSpaces = cfg.ReplaceTabsWithSpaces

	// Removing the end of file marker leaves trailing empty lines without
	// one, so those lines have to go too.
	if opts.RemoveNewLineMarkerFromEndOfFile {
		opts.RemoveTrailingEmptyLines = true
	}

	if err := opts.Validate(); err != nil {
		return opts, err
	}

	return opts, nil
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	mode := "format"
	if cfg.CheckOnly {
		mode = "check"
	}
	return fmt.Sprintf("%s (marker=%s, tabs=%d)", mode, cfg.NewLineMarker, cfg.ReplaceTabsWithSpaces)
}

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

func init() {
	Register(&YAMLParser{})
}

func (p *YAMLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml")
}

func (p *YAMLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	cfg := DefaultConfig()
	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		// An empty file is an empty config, not an error.
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return nil, errors.Errorf("parsing YAML: %w", err)
	}

	return cfg, nil
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

func init() {
	Register(&HCLParser{})
}

func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "wsfmt.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	cfg := DefaultConfig()
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, cfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	return cfg, nil
}
