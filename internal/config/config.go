package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/svgrn/pkg/svgrn"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// OptionsConfig mirrors svgrn.Options. Nil fields are unset.
type OptionsConfig struct {
	Format          *bool `yaml:"format,omitempty"`
	FillProp        *bool `yaml:"fill_prop,omitempty"`
	StrokeProp      *bool `yaml:"stroke_prop,omitempty"`
	WidthHeightProp *bool `yaml:"width_height_prop,omitempty"`
	RmStyle         *bool `yaml:"rm_style,omitempty"`
}

// ProjectConfig is the content of .svgrn.yaml.
type ProjectConfig struct {
	Output      string        `yaml:"output,omitempty"`
	Force       *bool         `yaml:"force,omitempty"`
	Parser      string        `yaml:"parser,omitempty"`
	Concurrency int           `yaml:"concurrency,omitempty"`
	Options     OptionsConfig `yaml:"options"`
}

const ConfigFileName = svgrn.ProjectConfigFileName

// Load reads .svgrn.yaml from dir.
func Load(dir string) (*ProjectConfig, error) {
	data, err := os.ReadFile(filepath.Join(dir, ConfigFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadForSource loads the config that applies to sourcePath: the directory
// itself, or the directory containing the file.
func LoadForSource(sourcePath string) (*ProjectConfig, error) {
	return Load(SourceDir(sourcePath))
}

// SourceDir is the directory a source path's config lives in.
func SourceDir(sourcePath string) string {
	if info, err := os.Stat(sourcePath); err == nil && info.IsDir() {
		return sourcePath
	}
	return filepath.Dir(sourcePath)
}

// ApplyTo copies every set value into cfg. Relative output directories are
// resolved against base, the directory the config was loaded from.
func (p *ProjectConfig) ApplyTo(cfg *svgrn.ConvertConfig, base string) {
	if p.Output != "" {
		out := p.Output
		if !filepath.IsAbs(out) {
			out = filepath.Join(base, out)
		}
		cfg.OutputDir = out
	}
	if p.Force != nil {
		cfg.Force = *p.Force
	}
	if p.Parser != "" {
		cfg.Parser = svgrn.ParserMode(p.Parser)
	}
	if p.Concurrency != 0 {
		cfg.Concurrency = p.Concurrency
	}

	setBool(&cfg.Options.FormatOutput, p.Options.Format)
	setBool(&cfg.Options.FillProp, p.Options.FillProp)
	setBool(&cfg.Options.StrokeProp, p.Options.StrokeProp)
	setBool(&cfg.Options.WidthHeightProp, p.Options.WidthHeightProp)
	setBool(&cfg.Options.StripStyle, p.Options.RmStyle)
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
