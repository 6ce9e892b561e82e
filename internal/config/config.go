// Package config merges textab's CLI settings from built-in defaults,
// a TOML config file, and TEXTAB_ environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/textab/textab"
)

// Config carries the CLI settings. Later sources override earlier
// ones: defaults, then the config file, then environment variables.
type Config struct {
	Variant       string      `koanf:"variant" toml:"variant"`
	DocumentClass string      `koanf:"document_class" toml:"document_class"`
	PresetDir     string      `koanf:"preset_dir" toml:"preset_dir"`
	Color         bool        `koanf:"color" toml:"color"`
	Style         StyleConfig `koanf:"style" toml:"style"`
}

// StyleConfig mirrors textab.Style in file-friendly form. Line styles
// and fonts are spelled out as strings.
type StyleConfig struct {
	AllRowLines          bool   `koanf:"all_row_lines" toml:"all_row_lines"`
	AllColumnLines       bool   `koanf:"all_column_lines" toml:"all_column_lines"`
	HeaderRowEmphasis    bool   `koanf:"header_row_emphasis" toml:"header_row_emphasis"`
	HeaderRowLine        string `koanf:"header_row_line" toml:"header_row_line"`
	HeaderColumnEmphasis bool   `koanf:"header_column_emphasis" toml:"header_column_emphasis"`
	HeaderColumnLine     string `koanf:"header_column_line" toml:"header_column_line"`
	OuterHorizontal      bool   `koanf:"outer_horizontal" toml:"outer_horizontal"`
	OuterVertical        bool   `koanf:"outer_vertical" toml:"outer_vertical"`
	Title                string `koanf:"title" toml:"title"`
	HeaderFont           string `koanf:"header_font" toml:"header_font"`
	DataFont             string `koanf:"data_font" toml:"data_font"`
}

// Default returns the built-in configuration, matching the encoder's
// default style.
func Default() *Config {
	def := textab.DefaultStyle()
	return &Config{
		Variant:       textab.Tabular.String(),
		DocumentClass: "article",
		Color:         true,
		Style: StyleConfig{
			AllRowLines:          def.AllRowLines,
			AllColumnLines:       def.AllColumnLines,
			HeaderRowEmphasis:    def.HeaderRows.Enabled,
			HeaderRowLine:        def.HeaderRows.Line.String(),
			HeaderColumnEmphasis: def.HeaderColumns.Enabled,
			HeaderColumnLine:     def.HeaderColumns.Line.String(),
			OuterHorizontal:      def.OuterHorizontal,
			OuterVertical:        def.OuterVertical,
			HeaderFont:           def.HeaderFont.String(),
			DataFont:             def.DataFont.String(),
		},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "textab", "config.toml")
}

// Load merges defaults, the TOML config file, and TEXTAB_ environment
// variables, in that order. An empty path selects DefaultPath and is
// skipped when the file does not exist; an explicit path must exist.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaultMap(), "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("load config from %s: %w", path, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	// TEXTAB_STYLE__ALL_ROW_LINES=false overrides style.all_row_lines.
	// Double underscore nests; single underscores stay part of the key.
	err := k.Load(env.Provider("TEXTAB_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "TEXTAB_")), "__", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// WriteDefault writes the built-in configuration to path as a starter
// file, creating parent directories. It refuses to overwrite an
// existing file. An empty path selects DefaultPath.
func WriteDefault(path string) (string, error) {
	if path == "" {
		path = DefaultPath()
	}
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config file %s already exists", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}
	data, err := gotoml.Marshal(Default())
	if err != nil {
		return "", fmt.Errorf("encode default config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write config file %s: %w", path, err)
	}
	return path, nil
}

// ToStyle converts the file form into the encoder's style value.
// Unknown line styles fall back to single lines; unknown or empty
// fonts fall back to the defaults.
func (sc StyleConfig) ToStyle() textab.Style {
	rowLine, _ := textab.ParseLineStyle(sc.HeaderRowLine)
	colLine, _ := textab.ParseLineStyle(sc.HeaderColumnLine)
	headerFont, ok := textab.ParseFontStyle(sc.HeaderFont)
	if !ok || headerFont == textab.FontUnset {
		headerFont = textab.FontBold
	}
	dataFont, ok := textab.ParseFontStyle(sc.DataFont)
	if !ok || dataFont == textab.FontUnset {
		dataFont = textab.FontNormal
	}
	title := sc.Title
	if title == "" {
		title = textab.DefaultTitle
	}
	return textab.Style{
		AllRowLines:     sc.AllRowLines,
		AllColumnLines:  sc.AllColumnLines,
		HeaderRows:      textab.HeaderEmphasis{Enabled: sc.HeaderRowEmphasis, Line: rowLine},
		HeaderColumns:   textab.HeaderEmphasis{Enabled: sc.HeaderColumnEmphasis, Line: colLine},
		OuterHorizontal: sc.OuterHorizontal,
		OuterVertical:   sc.OuterVertical,
		IncludeTitle:    sc.Title != "",
		TitleText:       title,
		HeaderFont:      headerFont,
		DataFont:        dataFont,
	}
}

func defaultMap() map[string]any {
	d := Default()
	return map[string]any{
		"variant":        d.Variant,
		"document_class": d.DocumentClass,
		"preset_dir":     d.PresetDir,
		"color":          d.Color,
		"style": map[string]any{
			"all_row_lines":          d.Style.AllRowLines,
			"all_column_lines":       d.Style.AllColumnLines,
			"header_row_emphasis":    d.Style.HeaderRowEmphasis,
			"header_row_line":        d.Style.HeaderRowLine,
			"header_column_emphasis": d.Style.HeaderColumnEmphasis,
			"header_column_line":     d.Style.HeaderColumnLine,
			"outer_horizontal":       d.Style.OuterHorizontal,
			"outer_vertical":         d.Style.OuterVertical,
			"title":                  d.Style.Title,
			"header_font":            d.Style.HeaderFont,
			"data_font":              d.Style.DataFont,
		},
	}
}
