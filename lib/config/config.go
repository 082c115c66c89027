package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	yaml "github.com/goccy/go-yaml"

	"github.com/rajputrajat/min-gl/lib/display"
	"github.com/rajputrajat/min-gl/lib/utils"
)

type Config struct {
	Window      *WindowCfg
	ClearColour string `yaml:"clear_colour"`
	LogEvents   bool   `yaml:"log_events"`
	Api         *ApiCfg
}

type WindowCfg struct {
	Width      int
	Height     int
	Title      string
	Fullscreen bool
	Decorated  bool
	MSAA       int
	VSync      bool
	Icon       CfgPath
}

type ApiCfg struct {
	Bind           string
	EnableProfiler bool `yaml:"enable_profiler"`
}

// CfgPath is a path inside the config file, resolved relative to the
// directory the config file lives in.
type CfgPath string

// UnmarshalBase is a hack that must be thrown into the sun
var UnmarshalBase string

func (c *CfgPath) UnmarshalYAML(b []byte) error {
	var path string

	err := yaml.Unmarshal(b, &path)
	if err != nil {
		return err
	}

	if filepath.IsAbs(path) {
		*c = CfgPath(path)
	} else {
		*c = CfgPath(filepath.Join(UnmarshalBase, path))
	}
	return nil
}

func Parse(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %s", filename, err)
	}
	defer func() {
		_ = f.Close()
	}()

	absFilename, err := filepath.Abs(filename)
	if err != nil {
		return nil, fmt.Errorf("somehow, %s is malformed: %w", filename, err)
	}
	UnmarshalBase = filepath.Dir(absFilename)

	m := yaml.NewDecoder(f)
	cfg := &Config{}
	err = m.Decode(cfg)
	if err != nil {
		return nil, err
	}
	err = cfg.Validate()
	if err != nil {
		return nil, err
	}
	return cfg, err
}

func (c *Config) Validate() error {
	if c.Window == nil {
		return fmt.Errorf("a window section must be defined")
	}
	err := c.Window.Validate()
	if err != nil {
		return fmt.Errorf("window config is invalid: %w", err)
	}

	if c.ClearColour == "" {
		return fmt.Errorf("please set clear_colour in the config")
	}
	if !utils.ColourValidate(c.ClearColour) {
		return fmt.Errorf("%s is not a valid RGBA hex colour", c.ClearColour)
	}

	if c.Api != nil && c.Api.Bind == "" {
		return fmt.Errorf("api section needs a bind address")
	}
	return nil
}

func (w *WindowCfg) Validate() error {
	if w.Title == "" {
		return fmt.Errorf("window title must be specified")
	}
	opt := w.DisplayOptions()
	return opt.Validate()
}

// DisplayOptions maps the window section onto display options.
func (w *WindowCfg) DisplayOptions() display.Options {
	return display.Options{
		Width:      w.Width,
		Height:     w.Height,
		Title:      w.Title,
		Fullscreen: w.Fullscreen,
		Decorated:  w.Decorated,
		MSAA:       w.MSAA,
		VSync:      w.VSync,
	}
}

func (c *Config) String() string {
	var b strings.Builder
	b.WriteString("Window:\n")
	b.WriteString(fmt.Sprintf("  %dx%d %q\n", c.Window.Width, c.Window.Height, c.Window.Title))
	flags := []string{}
	if c.Window.Fullscreen {
		flags = append(flags, "fullscreen")
	}
	if c.Window.Decorated {
		flags = append(flags, "decorated")
	}
	if c.Window.MSAA > 0 {
		flags = append(flags, fmt.Sprintf("msaa=%d", c.Window.MSAA))
	}
	if c.Window.VSync {
		flags = append(flags, "vsync")
	}
	if len(flags) > 0 {
		b.WriteString(fmt.Sprintf("  %s\n", strings.Join(flags, " ")))
	}
	if c.Window.Icon != "" {
		b.WriteString(fmt.Sprintf("  icon: %s\n", c.Window.Icon))
	}

	b.WriteString(fmt.Sprintf("\nClear colour: %s\n", c.ClearColour))

	if c.Api != nil {
		b.WriteString(fmt.Sprintf("\nApi:\n  %s\n", c.Api.Bind))
	}

	return b.String()
}
