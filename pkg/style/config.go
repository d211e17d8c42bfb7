package style

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/graphlens/graphlens/pkg/errors"
)

// Config is the TOML visualization config file.
//
// Example:
//
//	[palette]
//	colors = ["#e41a1c", "#377eb8", "#4daf4a"]
//	fallback = "#808080"
//
//	[size]
//	min = 15
//	max = 70
//	metric = "pagerank_for_size"
//
//	[color]
//	key = "node_group_for_color"
//
//	[display]
//	attr = "name"
//
//	[tooltip]
//	fields = ["name", "description", "labels"]
//
//	[tooltip.titles]
//	name = "Name"
//	labels = "Labels"
//	description = "Description"
type Config struct {
	Palette struct {
		Colors   []string `toml:"colors"`
		Fallback string   `toml:"fallback"`
	} `toml:"palette"`
	Size struct {
		Min    float64 `toml:"min"`
		Max    float64 `toml:"max"`
		Metric string  `toml:"metric"`
	} `toml:"size"`
	Color struct {
		Key string `toml:"key"`
	} `toml:"color"`
	Display struct {
		Attr string `toml:"attr"`
	} `toml:"display"`
	Tooltip struct {
		Fields []string          `toml:"fields"`
		Titles map[string]string `toml:"titles"`
	} `toml:"tooltip"`
}

// LoadConfig reads and validates a TOML visualization config file.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s not found", path)
		}
		return cfg, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if len(c.Palette.Colors) > 0 {
		if err := errors.ValidatePalette(c.Palette.Colors); err != nil {
			return err
		}
	}
	if c.Palette.Fallback != "" {
		if err := errors.ValidateHexColor(c.Palette.Fallback); err != nil {
			return err
		}
	}
	if c.Size.Metric != "" {
		if err := errors.ValidateAttributeKey(c.Size.Metric); err != nil {
			return err
		}
	}
	if c.Color.Key != "" {
		if err := errors.ValidateAttributeKey(c.Color.Key); err != nil {
			return err
		}
	}
	if c.Display.Attr != "" {
		if err := errors.ValidateAttributeKey(c.Display.Attr); err != nil {
			return err
		}
	}
	if c.Size.Min < 0 || c.Size.Max < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "size bounds cannot be negative")
	}
	if c.Size.Min > 0 && c.Size.Max > 0 && c.Size.Min > c.Size.Max {
		return errors.New(errors.ErrCodeInvalidConfig, "size.min (%v) exceeds size.max (%v)", c.Size.Min, c.Size.Max)
	}
	return nil
}

// Apply overlays the config's non-zero settings onto opts.
func (c Config) Apply(opts *Options) {
	if len(c.Palette.Colors) > 0 {
		opts.Palette = c.Palette.Colors
	}
	if c.Palette.Fallback != "" {
		opts.Fallback = c.Palette.Fallback
	}
	if c.Size.Min > 0 {
		opts.MinSize = c.Size.Min
	}
	if c.Size.Max > 0 {
		opts.MaxSize = c.Size.Max
	}
	if c.Size.Metric != "" {
		opts.SizeKey = c.Size.Metric
	}
	if c.Color.Key != "" {
		opts.ColorKey = c.Color.Key
	}
}
